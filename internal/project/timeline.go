package project

// Milestone is one dated step of a program. Date is shown as written.
type Milestone struct {
	Title       string
	Date        string
	Description string
}

// Program is a named schedule of milestones.
type Program struct {
	Name       string
	Milestones []Milestone
}

// Announced reports whether any milestone carries a date.
func (p Program) Announced() bool {
	for _, m := range p.Milestones {
		if m.Date != "" && m.Date != "NA" {
			return true
		}
	}
	return false
}

// Timeline returns the program schedules in display order.
func Timeline() []Program {
	return []Program{
		{
			Name: "Winter of Code",
			Milestones: []Milestone{
				{"Proposal Submission", "Till 20th December", "We accept proposals from contributors"},
				{"Landing Page Public", "Till 4th or 5th January", "Public landing page will be available"},
				{"Project Work Begins", "First week of January", "Contributors start working on selected projects"},
				{"Mid Evaluations", "Tentative", "Mid-term evaluation of project progress"},
				{"Program Ends", "Mid March", "Winter of Code program concludes"},
			},
		},
		{
			Name: "Summer of Code",
			Milestones: []Milestone{
				{"Proposal Submission", "NA", "NA"},
				{"Landing Page Public", "NA", "NA"},
				{"Project Work Begins", "NA", "NA"},
				{"Mid Evaluations", "NA", "NA"},
				{"Program Ends", "NA", "NA"},
			},
		},
	}
}
