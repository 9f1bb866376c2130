package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/devluplabs/socterm/internal/project"
	"github.com/devluplabs/socterm/internal/terminal"
)

// renderEntries formats the scrollback for the terminal viewport.
func renderEntries(entries []terminal.Entry, st Styles, width int) string {
	var sb strings.Builder
	sb.Grow(len(entries) * 80)

	for _, e := range entries {
		switch e.Type {
		case terminal.EntryCommand:
			sb.WriteString(st.Prompt.Render("❯ "))
			sb.WriteString(st.Command.Render(e.Content))
		case terminal.EntryError:
			sb.WriteString(st.Error.Render(e.Content))
		case terminal.EntryHelp:
			sb.WriteString(st.Accent.Render(e.Content))
		case terminal.EntryCode:
			sb.WriteString(st.Code.Render(e.Content))
		case terminal.EntryForm:
			sb.WriteString(st.Success.Render(e.Content))
		case terminal.EntryProject:
			if e.Project != nil {
				sb.WriteString(renderProjectCard(*e.Project, st, width, false))
			} else {
				sb.WriteString(st.Text.Render(e.Content))
			}
		case terminal.EntryMentor:
			sb.WriteString(renderMentorList(e.Content, e.Mentors, st))
		default:
			sb.WriteString(st.Text.Render(e.Content))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderMentorList(title string, mentors []project.Mentor, st Styles) string {
	var sb strings.Builder
	sb.WriteString(st.Accent.Bold(true).Render(title))
	for _, m := range mentors {
		sb.WriteString("\n")
		sb.WriteString(renderMentor(m, st, "  │ "))
	}
	return sb.String()
}

func renderMentor(m project.Mentor, st Styles, indent string) string {
	lines := []string{
		st.Text.Bold(true).Render(m.Name),
		st.Dim.Render(m.Role),
	}
	if m.Email != "" {
		lines = append(lines, st.Accent.Render(m.Email))
	}
	if m.LinkedIn != "" {
		lines = append(lines, st.Accent.Render("LinkedIn Profile: "+m.LinkedIn))
	}
	if m.GitHub != "" {
		lines = append(lines, st.Accent.Render("GitHub Profile: "+m.GitHub))
	}
	for i := range lines {
		lines[i] = st.Dim.Render(indent) + lines[i]
	}
	return strings.Join(lines, "\n")
}

// renderProjectCard draws the card used in the scrollback and on the
// projects page.
func renderProjectCard(p project.Project, st Styles, width int, selected bool) string {
	inner := width - 4
	if inner < 20 {
		inner = 20
	}

	summary := p.Summary()
	if p.Status == project.StatusCompleted {
		summary = st.Success.Render("Summary: ") + st.Dim.Render(summary)
	} else {
		summary = st.Dim.Render(summary)
	}

	chips := make([]string, 0, len(p.TechStack))
	for _, tech := range p.TechStack {
		chips = append(chips, st.Chip.Render(tech))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		st.Title.Render(p.Name)+"  "+st.Badge.Render(p.CategoryLabel()),
		lipgloss.NewStyle().Width(inner).Render(summary),
		lipgloss.NewStyle().Width(inner).Render(strings.Join(chips, " ")),
		st.Dim.Render(fmt.Sprintf("%s · view %s", p.MentorSummary(), p.ID)),
	)

	card := st.Card
	if selected {
		card = st.Selected
	}
	return card.Width(inner).Render(body)
}
