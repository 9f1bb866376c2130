package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/devluplabs/socterm/internal/project"
	"github.com/devluplabs/socterm/internal/terminal"
)

// projectsPage is the tabbed, filterable project list. The filter itself
// lives in the terminal so `search` and `filter` commands carry over.
type projectsPage struct {
	tab       int
	cursor    int
	search    textinput.Model
	searching bool
}

func newProjectsPage() projectsPage {
	ti := textinput.New()
	ti.Placeholder = "Search projects..."
	ti.Prompt = "🔍 "
	ti.CharLimit = 64
	return projectsPage{search: ti}
}

func (m Model) tabs() []project.Status {
	tabs := []project.Status{project.StatusOngoing, project.StatusCompleted}
	if m.opts.Config.ShowArchived {
		tabs = append(tabs, project.StatusArchived)
	}
	return tabs
}

func (m Model) currentTab() project.Status {
	tabs := m.tabs()
	if m.projects.tab >= len(tabs) {
		return tabs[0]
	}
	return tabs[m.projects.tab]
}

// visibleProjects is the filtered list for the selected tab.
func (m Model) visibleProjects() []project.Project {
	return project.ForTab(m.term.FilteredProjects(), m.currentTab())
}

// enterProjects syncs the search box with the terminal filter and opens the
// first tab that has something to show.
func (m *Model) enterProjects() {
	m.projects.search.SetValue(m.term.SearchQuery())
	m.projects.searching = false
	m.projects.search.Blur()
	m.projects.cursor = 0

	filtered := m.term.FilteredProjects()
	for i, tab := range m.tabs() {
		if len(project.ForTab(filtered, tab)) > 0 {
			m.projects.tab = i
			return
		}
	}
	m.projects.tab = 0
}

func (m Model) updateProjects(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.projects.searching {
		switch msg.Type {
		case tea.KeyEnter, tea.KeyEsc:
			m.projects.searching = false
			m.projects.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.projects.search, cmd = m.projects.search.Update(msg)
		m.term.SetSearchQuery(strings.TrimSpace(m.projects.search.Value()))
		m.projects.cursor = 0
		return m, cmd
	}

	visible := m.visibleProjects()
	switch {
	case key.Matches(msg, m.keys.NextTab):
		m.projects.tab = (m.projects.tab + 1) % len(m.tabs())
		m.projects.cursor = 0
	case key.Matches(msg, m.keys.PrevTab):
		m.projects.tab = (m.projects.tab + len(m.tabs()) - 1) % len(m.tabs())
		m.projects.cursor = 0
	case key.Matches(msg, m.keys.Up):
		if m.projects.cursor > 0 {
			m.projects.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.projects.cursor < len(visible)-1 {
			m.projects.cursor++
		}
	case key.Matches(msg, m.keys.Search):
		m.projects.searching = true
		return m, m.projects.search.Focus()
	case key.Matches(msg, m.keys.CycleTech):
		m.term.SetTechFilter(nextTech(project.TechStacks(m.term.Projects()), m.term.TechFilter()))
		m.projects.cursor = 0
	case key.Matches(msg, m.keys.ClearAll):
		m.term.ClearFilters()
		m.projects.search.SetValue("")
		m.projects.cursor = 0
	case key.Matches(msg, m.keys.Open):
		if m.projects.cursor < len(visible) {
			return m.navigate(terminal.Route{Page: terminal.PageProjectDetail, ProjectID: visible[m.projects.cursor].ID})
		}
	}
	return m, nil
}

// nextTech cycles none → first → ... → last → none.
func nextTech(techs []string, current string) string {
	if len(techs) == 0 {
		return ""
	}
	if current == "" {
		return techs[0]
	}
	for i, t := range techs {
		if strings.EqualFold(t, current) {
			if i+1 < len(techs) {
				return techs[i+1]
			}
			return ""
		}
	}
	return techs[0]
}

func (m Model) projectsView() string {
	st := m.styles
	width := m.ui.Width()
	var sb strings.Builder

	current := m.currentTab()
	title := map[project.Status]string{
		project.StatusOngoing:   "Live Projects",
		project.StatusCompleted: "Completed Projects",
		project.StatusArchived:  "Archived Projects",
	}[current]
	sb.WriteString(st.Title.Render(title) + "\n")

	var tabs []string
	for _, tab := range m.tabs() {
		style := st.Tab
		if tab == current {
			style = st.TabOn
		}
		tabs = append(tabs, style.Render(tab.Title()))
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n")

	sb.WriteString(m.projects.search.View())
	if tech := m.term.TechFilter(); tech != "" {
		sb.WriteString("  " + st.Dim.Render("tech: ") + st.Chip.Render(tech))
	}
	sb.WriteString("\n\n")

	if m.loading {
		sb.WriteString(m.spinner.View() + st.Accent.Render(" Loading projects..."))
		return sb.String()
	}

	visible := m.visibleProjects()
	if len(visible) == 0 {
		sb.WriteString(st.Error.Render(fmt.Sprintf("No %s Projects Available! Try Again Later", current.Title())) + "\n")
		sb.WriteString(st.Accent.Render("press x to clear filters"))
		return sb.String()
	}

	// Keep the cursor's card on screen by dropping cards above it.
	start := 0
	budget := m.ui.BodyHeight() - lipgloss.Height(sb.String())
	for start < m.projects.cursor {
		height := 0
		for _, p := range visible[start : m.projects.cursor+1] {
			height += lipgloss.Height(renderProjectCard(p, st, width, false))
		}
		if height <= budget {
			break
		}
		start++
	}

	cards := make([]string, 0, len(visible)-start)
	for i, p := range visible[start:] {
		card := renderProjectCard(p, st, width, start+i == m.projects.cursor)
		if current == project.StatusArchived {
			card = st.Dim.Faint(true).Render(card)
		}
		cards = append(cards, card)
	}
	sb.WriteString(strings.Join(cards, "\n"))
	return sb.String()
}
