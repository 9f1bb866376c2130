package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/devluplabs/socterm/internal/project"
)

type detailTab int

const (
	tabOverview detailTab = iota
	tabLinks
	tabDocs
	tabMentors
	detailTabCount
)

func (t detailTab) String() string {
	switch t {
	case tabLinks:
		return "Links"
	case tabDocs:
		return "Docs"
	case tabMentors:
		return "Mentors"
	default:
		return "Overview"
	}
}

type detailPage struct {
	tab detailTab
}

// detailProject resolves the project of the current route.
func (m Model) detailProject() (project.Project, bool) {
	return project.FindByID(m.term.Projects(), m.route.ProjectID)
}

// detailLinks lists the links the `o` key opens on the current tab.
func (m Model) detailLinks(p project.Project) []string {
	switch m.detail.tab {
	case tabDocs:
		var links []string
		for _, l := range []string{p.ProjectDoc, p.ProjectGithub} {
			if l = project.NormalizeLink(l); l != "" {
				links = append(links, l)
			}
		}
		return links
	case tabMentors:
		var links []string
		for _, mentor := range p.NamedMentors() {
			for _, l := range []string{mentor.LinkedIn, mentor.GitHub} {
				if l = project.NormalizeLink(l); l != "" {
					links = append(links, l)
				}
			}
		}
		return links
	default:
		return p.Links()
	}
}

func firstMentorEmail(p project.Project) string {
	for _, mentor := range p.NamedMentors() {
		if mentor.Email != "" {
			return mentor.Email
		}
	}
	return ""
}

func (m Model) updateDetail(msg tea.KeyMsg) (Model, tea.Cmd) {
	p, ok := m.detailProject()
	switch {
	case key.Matches(msg, m.keys.NextTab):
		m.detail.tab = (m.detail.tab + 1) % detailTabCount
		m.refreshPage(true)
	case key.Matches(msg, m.keys.PrevTab):
		m.detail.tab = (m.detail.tab + detailTabCount - 1) % detailTabCount
		m.refreshPage(true)
	case key.Matches(msg, m.keys.OpenLink):
		if !ok {
			break
		}
		links := m.detailLinks(p)
		if len(links) == 0 {
			return m.showToast("No links on this tab")
		}
		return m, m.openURL(links[0])
	case key.Matches(msg, m.keys.CopyEmail):
		if !ok {
			break
		}
		email := firstMentorEmail(p)
		if email == "" {
			return m.showToast("No mentor email to copy")
		}
		return m, m.copyText(email)
	default:
		var cmd tea.Cmd
		m.page, cmd = m.page.Update(msg)
		return m, cmd
	}
	return m, nil
}

// detailMarkdown is the glamour source of the current tab.
func (m Model) detailMarkdown(p project.Project) string {
	var sb strings.Builder
	switch m.detail.tab {
	case tabOverview:
		fmt.Fprintf(&sb, "# %s\n\n", p.Name)
		fmt.Fprintf(&sb, "**%s** · %s\n\n", p.CategoryLabel(), p.Status.Title())
		sb.WriteString("## Description\n\n")
		sb.WriteString(orPlaceholder(p.Description, "No description provided."))
		sb.WriteString("\n\n")
		if p.Status.Effective() != project.StatusOngoing {
			sb.WriteString("## Summary\n\n")
			sb.WriteString(orPlaceholder(p.CurrentDesc, "No summary provided."))
			sb.WriteString("\n\n")
		}
		sb.WriteString("## Tech Stack\n\n")
		if len(p.TechStack) == 0 {
			sb.WriteString("_Not specified._\n")
		}
		for _, tech := range p.TechStack {
			fmt.Fprintf(&sb, "- `%s`\n", tech)
		}

	case tabLinks:
		sb.WriteString("## Links\n\n")
		links := p.Links()
		if len(links) == 0 {
			sb.WriteString("_No links available for this project._\n")
		}
		for i, l := range links {
			fmt.Fprintf(&sb, "%d. [%s](%s)\n", i+1, l, l)
		}

	case tabDocs:
		sb.WriteString("## Documentation\n\n")
		if doc := project.NormalizeLink(p.ProjectDoc); doc != "" {
			fmt.Fprintf(&sb, "- Project doc: [%s](%s)\n", doc, doc)
		} else {
			sb.WriteString("- Project doc: _not published_\n")
		}
		if repo := project.NormalizeLink(p.ProjectGithub); repo != "" {
			fmt.Fprintf(&sb, "- Repository: [%s](%s)\n", repo, repo)
		} else {
			sb.WriteString("- Repository: _not published_\n")
		}

	case tabMentors:
		mentors := p.NamedMentors()
		fmt.Fprintf(&sb, "## Mentors (%d)\n\n", len(mentors))
		if len(mentors) == 0 {
			sb.WriteString("_No mentors listed._\n")
		}
		for _, mentor := range mentors {
			fmt.Fprintf(&sb, "### %s\n\n_%s_\n\n", mentor.Name, mentor.Role)
			if mentor.Email != "" {
				fmt.Fprintf(&sb, "- Email: %s\n", mentor.Email)
			}
			if mentor.LinkedIn != "" {
				fmt.Fprintf(&sb, "- LinkedIn: %s\n", project.NormalizeLink(mentor.LinkedIn))
			}
			if mentor.GitHub != "" {
				fmt.Fprintf(&sb, "- GitHub: %s\n", project.NormalizeLink(mentor.GitHub))
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func orPlaceholder(s, placeholder string) string {
	if strings.TrimSpace(s) == "" {
		return "_" + placeholder + "_"
	}
	return s
}

// detailHeader is the tab bar above the detail viewport.
func (m Model) detailHeader() string {
	var tabs []string
	for t := tabOverview; t < detailTabCount; t++ {
		style := m.styles.Tab
		if t == m.detail.tab {
			style = m.styles.TabOn
		}
		tabs = append(tabs, style.Render(t.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) detailContent() string {
	p, ok := m.detailProject()
	if !ok {
		if m.loading {
			return m.spinner.View() + m.styles.Accent.Render(" Loading project...")
		}
		return m.styles.Error.Render(fmt.Sprintf("Project with ID %s not found.", m.route.ProjectID)) +
			"\n" + m.styles.Dim.Render("esc to go back")
	}
	return m.markdown.Render(m.detailMarkdown(p), m.ui.Width()-2)
}
