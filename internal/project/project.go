// Package project holds the archive's record types and the pure helpers the
// terminal and the projects page share: filtering, tabs, mentors, links.
package project

import (
	"strings"
)

// Status is the lifecycle column of a sheet row, lower-cased.
type Status string

const (
	StatusUndefined Status = ""
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
	StatusArchived  Status = "archived"
)

// ParseStatus normalizes a raw sheet value.
func ParseStatus(raw string) Status {
	return Status(strings.ToLower(strings.TrimSpace(raw)))
}

// Effective maps an undefined status to completed, which is how rows that
// predate the status column are shown.
func (s Status) Effective() Status {
	if s == StatusUndefined {
		return StatusCompleted
	}
	return s
}

// Title is the tab label for s.
func (s Status) Title() string {
	switch s.Effective() {
	case StatusOngoing:
		return "Ongoing"
	case StatusArchived:
		return "Archived"
	case StatusCompleted:
		return "Completed"
	default:
		return strings.ToUpper(string(s[:1])) + string(s[1:])
	}
}

type Mentor struct {
	Name     string
	Role     string
	Email    string
	LinkedIn string
	GitHub   string
}

// Project is one archive entry. Values are replaced wholesale on refetch and
// never mutated in place.
type Project struct {
	ID            string
	Name          string
	Description   string
	TechStack     []string
	Mentors       []Mentor
	Category      string
	Status        Status
	CurrentDesc   string
	LiveLinks     []string
	ProjectGithub string
	ProjectDoc    string
}

// MaxMentors is the number of mentor column groups in the sheet.
const MaxMentors = 3

// NamedMentors returns the mentors with a non-empty name.
func (p Project) NamedMentors() []Mentor {
	var out []Mentor
	for _, m := range p.Mentors {
		if m.Name != "" {
			out = append(out, m)
		}
	}
	return out
}

// MentorSummary is the footer text of a project card.
func (p Project) MentorSummary() string {
	switch {
	case len(p.Mentors) >= 3:
		return "3 mentors"
	case len(p.Mentors) == 2:
		return "2 mentors"
	default:
		return "1 mentor"
	}
}

// Category labels shown on cards.
const (
	LabelWinterOfCode = "WoC '26"
	LabelRaid         = "SoC X RAID"
	LabelArchive      = "Projects Archive"
)

// CategoryLabel picks the badge for a project card.
func (p Project) CategoryLabel() string {
	if p.Status == StatusOngoing {
		return LabelWinterOfCode
	}
	category := strings.ToLower(strings.TrimSpace(p.Category))
	if category == "soc x raid" || category == "1" || strings.Contains(category, "raid") {
		return LabelRaid
	}
	return LabelArchive
}

// Summary is what a card shows under the title: the current-work summary for
// completed projects, the description otherwise.
func (p Project) Summary() string {
	if p.Status == StatusCompleted {
		if p.CurrentDesc != "" {
			return p.CurrentDesc
		}
		return "No summary provided."
	}
	return p.Description
}

// NormalizeLink prefixes https:// when link has no http(s) scheme.
func NormalizeLink(link string) string {
	link = strings.TrimSpace(link)
	if link == "" || strings.HasPrefix(link, "http") {
		return link
	}
	return "https://" + link
}

// Links gathers every outbound link of p: live links, repository, doc and
// links embedded in the description texts. Normalized and de-duplicated.
func (p Project) Links() []string {
	var candidates []string
	candidates = append(candidates, p.LiveLinks...)
	candidates = append(candidates, p.ProjectGithub, p.ProjectDoc)
	candidates = append(candidates, ExtractLinks(p.Description)...)
	candidates = append(candidates, ExtractLinks(p.CurrentDesc)...)

	seen := make(map[string]bool, len(candidates))
	var out []string
	for _, c := range candidates {
		link := NormalizeLink(c)
		if link == "" || seen[link] {
			continue
		}
		seen[link] = true
		out = append(out, link)
	}
	return out
}
