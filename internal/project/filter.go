package project

import (
	"sort"
	"strings"
)

// Filter is the search/tech state shared by the terminal and the projects
// page. An empty field does not constrain.
type Filter struct {
	Query string
	Tech  string
}

// Active reports whether any constraint is set.
func (f Filter) Active() bool {
	return f.Query != "" || f.Tech != ""
}

// Match reports whether name or description contains Query and some tech
// stack entry equals Tech, both case-insensitively.
func (f Filter) Match(p Project) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}
	if f.Tech != "" {
		found := false
		for _, tech := range p.TechStack {
			if strings.EqualFold(tech, f.Tech) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Apply returns the matching subsequence of projects. The result is never nil
// and applying the same filter again returns an equal slice.
func (f Filter) Apply(projects []Project) []Project {
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// TechStacks lists every distinct tech across projects, sorted.
func TechStacks(projects []Project) []string {
	set := make(map[string]struct{})
	for _, p := range projects {
		for _, tech := range p.TechStack {
			set[tech] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for tech := range set {
		out = append(out, tech)
	}
	sort.Strings(out)
	return out
}

// ForTab keeps the projects whose effective status is tab.
func ForTab(projects []Project, tab Status) []Project {
	want := tab.Effective()
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if p.Status.Effective() == want {
			out = append(out, p)
		}
	}
	return out
}

// FindByID looks a project up by its id.
func FindByID(projects []Project, id string) (Project, bool) {
	for _, p := range projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// AllMentors flattens the named mentors of every project, in order.
func AllMentors(projects []Project) []Mentor {
	var out []Mentor
	for _, p := range projects {
		out = append(out, p.NamedMentors()...)
	}
	return out
}
