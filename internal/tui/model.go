package tui

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/devluplabs/socterm/internal/analytics"
	"github.com/devluplabs/socterm/internal/config"
	"github.com/devluplabs/socterm/internal/events"
	"github.com/devluplabs/socterm/internal/sheets"
	"github.com/devluplabs/socterm/internal/terminal"
	"github.com/skratchdot/open-golang/open"
	"go.uber.org/zap"
)

// Version is set by the main package.
var Version string

const (
	navigationDelay = 500 * time.Millisecond
	toastDuration   = 2 * time.Second
)

// Loader produces the project list. sheets.Client is the production one.
type Loader interface {
	Load(ctx context.Context) sheets.LoadResult
}

type Options struct {
	Config *config.Config
	Loader Loader
	Bus    events.Bus
	// Tracker, when nil, is created and attached to Bus.
	Tracker  *analytics.Tracker
	Logger   *zap.Logger
	OpenURL  func(string) error
	CopyText func(string) error
	Rand     *rand.Rand
}

type Model struct {
	opts     Options
	term     *terminal.Terminal
	ui       *UIState
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	palette  Palette
	styles   Styles
	inverted bool
	markdown *MarkdownRenderer
	logger   *zap.Logger

	route   terminal.Route
	back    []terminal.Route
	loading bool

	projects projectsPage
	detail   detailPage
	page     viewport.Model

	showHelp bool
	toast    string
	toastID  int

	// Each timed sequence carries a generation; ticks from an older
	// generation are dropped.
	navGen      int
	animGen     int
	colorsFrame int
	liveGen     int
	live        bool
}

// NewModel wires the terminal, analytics and loader for one session.
func NewModel(opts Options) Model {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Bus == nil {
		bus := events.NewMemoryBus()
		logger := opts.Logger
		bus.OnError(func(e events.Event, err error) {
			logger.Warn("event handler failed", zap.String("type", e.Type()), zap.Error(err))
		})
		opts.Bus = bus
	}
	if opts.Tracker == nil {
		opts.Tracker = analytics.NewTracker()
		opts.Tracker.Attach(opts.Bus)
	}
	if opts.Loader == nil {
		opts.Loader = sheets.NewClientFromConfig(opts.Config, opts.Logger.Named("sheets"))
	}
	if opts.OpenURL == nil {
		opts.OpenURL = open.Start
	}
	if opts.CopyText == nil {
		opts.CopyText = clipboard.WriteAll
	}

	cfg := opts.Config
	term := terminal.New(terminal.Options{
		HistoryLimit:     cfg.HistoryLimit,
		ApplicationsOpen: cfg.ApplicationsOpen,
		ApplyFormURL:     cfg.ApplyFormURL,
		LiveStatsEvery:   cfg.LiveStatsEvery(),
		Stats:            opts.Tracker,
		Bus:              opts.Bus,
		Rand:             opts.Rand,
		Logger:           opts.Logger,
	})

	ui := NewUIState()
	ui.SetPlaceholder("Loading projects...")

	m := Model{
		opts:        opts,
		term:        term,
		ui:          ui,
		keys:        newKeyMap(),
		help:        help.New(),
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
		markdown:    GetMarkdownRenderer(),
		logger:      opts.Logger,
		route:       terminal.Route{Page: terminal.PageHome},
		loading:     true,
		projects:    newProjectsPage(),
		page:        viewport.New(80, 20),
		colorsFrame: -1,
	}
	m.applyPalette()
	m.refreshTerminal()
	m.publishPageView()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.loadProjects())
}

func (m Model) loadProjects() tea.Cmd {
	loader := m.opts.Loader
	return func() tea.Msg {
		return ProjectsLoadedMsg{Result: loader.Load(context.Background())}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui.UpdateSize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		m.refreshTerminal()
		m.refreshPage(false)
		return m, nil

	case ProjectsLoadedMsg:
		return m.handleProjectsLoaded(msg.Result)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case navigateMsg:
		if msg.Gen != m.navGen {
			return m, nil
		}
		return m.navigate(msg.Route)

	case animationTickMsg:
		return m.handleAnimationTick(msg)

	case liveStatsTickMsg:
		if msg.Gen != m.liveGen || !m.live {
			return m, nil
		}
		m.term.Append(m.term.StatsEntry())
		m.refreshTerminal()
		return m, liveStatsTick(m.liveGen, m.term.LiveStatsEvery())

	case toastExpiredMsg:
		if msg.ID == m.toastID {
			m.toast = ""
		}
		return m, nil

	case openURLResultMsg:
		if msg.Err != nil {
			m.logger.Warn("open url failed", zap.String("url", msg.URL), zap.Error(msg.Err))
			return m.showToast("Could not open " + msg.URL)
		}
		return m.showToast("Opened " + msg.URL)

	case copyResultMsg:
		if msg.Err != nil {
			m.logger.Warn("clipboard write failed", zap.Error(msg.Err))
			return m.showToast("Could not copy to clipboard")
		}
		return m.showToast("Copied " + msg.Text)

	case tea.MouseMsg:
		var cmd tea.Cmd
		if m.route.Page == terminal.PageHome {
			*m.ui.Viewport(), cmd = m.ui.Viewport().Update(msg)
		} else {
			m.page, cmd = m.page.Update(msg)
		}
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleProjectsLoaded(res sheets.LoadResult) (tea.Model, tea.Cmd) {
	m.loading = false
	m.ui.SetPlaceholder("Type a command...")
	m.term.SetProjects(res.Projects)
	if res.Fallback {
		m.logger.Warn("using mock projects", zap.Error(res.Err))
		m.term.NotifyFallback()
	}
	m.opts.Bus.Publish(events.NewEvent(events.TypeProjectsLoaded, events.ProjectsLoadedData{
		Count:    len(res.Projects),
		Fallback: res.Fallback,
	}))

	switch m.route.Page {
	case terminal.PageProjects:
		m.enterProjects()
	case terminal.PageProjectDetail:
		m.publishProjectView()
	}
	m.refreshTerminal()
	m.refreshPage(false)

	if res.Fallback {
		return m.showToast("Failed to load projects. Showing sample data.")
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.term.CheckKonami(msg.String()) {
		m.inverted = !m.inverted
		m.applyPalette()
		m.refreshTerminal()
		m.refreshPage(false)
		var cmd tea.Cmd
		m, cmd = m.showToast("Konami code activated!")
		cmds = append(cmds, cmd)
	}

	next, cmd := m.dispatchKey(msg)
	return next, tea.Batch(append(cmds, cmd)...)
}

func (m Model) dispatchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		if m.live {
			m.stopLive()
			m.term.Append(terminal.Entry{Type: terminal.EntryResponse, Content: "Live stats stopped."})
			m.refreshTerminal()
			return m, nil
		}
		return m, tea.Quit
	}

	if m.route.Page == terminal.PageProjects && m.projects.searching {
		return m.updateProjects(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Home):
		return m.shortcut(terminal.Route{Page: terminal.PageHome}, "Navigated to Home")
	case key.Matches(msg, m.keys.Projects):
		return m.shortcut(terminal.Route{Page: terminal.PageProjects}, "Navigated to Projects")
	case key.Matches(msg, m.keys.Timeline):
		return m.shortcut(terminal.Route{Page: terminal.PageTimeline}, "Navigated to Timeline")
	case key.Matches(msg, m.keys.Stats):
		return m.shortcut(terminal.Route{Page: terminal.PageStats}, "Navigated to Stats")
	case key.Matches(msg, m.keys.Contact):
		return m.shortcut(terminal.Route{Page: terminal.PageContact}, "Navigated to Contact")
	case key.Matches(msg, m.keys.Terminal):
		return m.shortcut(terminal.Route{Page: terminal.PageHome}, "Terminal focused")
	}

	if m.route.Page == terminal.PageHome {
		return m.updateHome(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Back):
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		return m.goBack()
	}

	switch m.route.Page {
	case terminal.PageProjects:
		return m.updateProjects(msg)
	case terminal.PageProjectDetail:
		return m.updateDetail(msg)
	default:
		var cmd tea.Cmd
		m.page, cmd = m.page.Update(msg)
		return m, cmd
	}
}

func (m Model) shortcut(r terminal.Route, toast string) (Model, tea.Cmd) {
	m.showHelp = false
	m, navCmd := m.navigate(r)
	m, toastCmd := m.showToast(toast)
	return m, tea.Batch(navCmd, toastCmd)
}

func (m Model) updateHome(msg tea.KeyMsg) (Model, tea.Cmd) {
	input := m.ui.Input()
	switch msg.Type {
	case tea.KeyEnter:
		line := input.Value()
		input.Reset()
		return m.execute(line)
	case tea.KeyUp:
		if line, ok := m.term.Recall().Up(); ok {
			input.SetValue(line)
			input.CursorEnd()
		}
		return m, nil
	case tea.KeyDown:
		input.SetValue(m.term.Recall().Down())
		input.CursorEnd()
		return m, nil
	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		*m.ui.Viewport(), cmd = m.ui.Viewport().Update(msg)
		return m, cmd
	case tea.KeyEsc:
		input.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	return m, cmd
}

// execute runs one prompt line and schedules whatever it asked for.
func (m Model) execute(line string) (Model, tea.Cmd) {
	if strings.TrimSpace(line) == "" {
		return m, nil
	}
	m.stopLive()

	effect := m.term.Execute(line)
	m.refreshTerminal()

	var cmds []tea.Cmd
	if effect.Navigate != nil {
		m.navGen++
		gen, route := m.navGen, *effect.Navigate
		cmds = append(cmds, tea.Tick(navigationDelay, func(time.Time) tea.Msg {
			return navigateMsg{Route: route, Gen: gen}
		}))
	}
	if effect.Animation != terminal.AnimationNone {
		m.animGen++
		m.colorsFrame = -1
		cmds = append(cmds, animationTick(m.animGen, effect.Animation, 0))
	}
	if effect.LiveStats {
		m.live = true
		m.liveGen++
		cmds = append(cmds, liveStatsTick(m.liveGen, m.term.LiveStatsEvery()))
	}
	if effect.OpenURL != "" {
		cmds = append(cmds, m.openURL(effect.OpenURL))
	}
	return m, tea.Batch(cmds...)
}

func animationTick(gen int, kind terminal.Animation, frame int) tea.Cmd {
	return tea.Tick(kind.Interval(), func(time.Time) tea.Msg {
		return animationTickMsg{Gen: gen, Kind: kind, Frame: frame}
	})
}

func liveStatsTick(gen int, every time.Duration) tea.Cmd {
	return tea.Tick(every, func(time.Time) tea.Msg {
		return liveStatsTickMsg{Gen: gen}
	})
}

func (m Model) handleAnimationTick(msg animationTickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.animGen {
		return m, nil
	}

	if msg.Kind == terminal.AnimationColors {
		if msg.Frame >= msg.Kind.Frames() {
			m.colorsFrame = -1
			m.refreshTerminal()
			return m, nil
		}
		m.colorsFrame = msg.Frame
		m.refreshTerminal()
		return m, animationTick(msg.Gen, msg.Kind, msg.Frame+1)
	}

	entry, ok := m.term.AnimationFrame(msg.Kind, msg.Frame)
	if !ok {
		return m, nil
	}
	m.term.Append(entry)
	m.refreshTerminal()
	return m, animationTick(msg.Gen, msg.Kind, msg.Frame+1)
}

// stopTimers invalidates the running animation and live stats.
func (m *Model) stopTimers() {
	m.animGen++
	m.colorsFrame = -1
	m.stopLive()
}

func (m *Model) stopLive() {
	if m.live {
		m.liveGen++
		m.live = false
	}
}

func (m Model) navigate(r terminal.Route) (Model, tea.Cmd) {
	m.navGen++
	if r == m.route {
		return m, nil
	}
	m.back = append(m.back, m.route)
	return m.enter(r), nil
}

func (m Model) goBack() (Model, tea.Cmd) {
	m.navGen++
	prev := terminal.Route{Page: terminal.PageHome}
	if n := len(m.back); n > 0 {
		prev = m.back[n-1]
		m.back = m.back[:n-1]
	}
	if prev == m.route {
		return m, nil
	}
	return m.enter(prev), nil
}

func (m Model) enter(r terminal.Route) Model {
	if m.route.Page == terminal.PageHome && r.Page != terminal.PageHome {
		m.stopTimers()
	}
	m.route = r
	m.showHelp = false

	switch r.Page {
	case terminal.PageHome:
		m.term.SetView(terminal.ViewTerminal)
		m.ui.Input().Focus()
		m.refreshTerminal()
	case terminal.PageProjects:
		m.ui.Input().Blur()
		m.enterProjects()
	case terminal.PageProjectDetail:
		m.ui.Input().Blur()
		m.detail = detailPage{}
	default:
		m.ui.Input().Blur()
	}

	m.publishPageView()
	if r.Page == terminal.PageProjectDetail {
		m.publishProjectView()
	}
	m.refreshPage(true)
	return m
}

func (m Model) publishPageView() {
	m.opts.Bus.Publish(events.NewEvent(events.TypePageView, events.PageViewData{Route: m.route.Path()}))
}

func (m Model) publishProjectView() {
	p, ok := m.detailProject()
	if !ok {
		return
	}
	m.opts.Bus.Publish(events.NewEvent(events.TypeProjectViewed, events.ProjectViewedData{ID: p.ID, Name: p.Name}))
}

func (m Model) showToast(text string) (Model, tea.Cmd) {
	m.toastID++
	m.toast = text
	id := m.toastID
	return m, tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{ID: id}
	})
}

func (m Model) openURL(url string) tea.Cmd {
	open := m.opts.OpenURL
	return func() tea.Msg {
		return openURLResultMsg{URL: url, Err: open(url)}
	}
}

func (m Model) copyText(text string) tea.Cmd {
	write := m.opts.CopyText
	return func() tea.Msg {
		return copyResultMsg{Text: text, Err: write(text)}
	}
}

func (m *Model) applyPalette() {
	p := PaletteFor(m.opts.Config.Theme)
	if m.inverted {
		p = p.Inverted()
	}
	m.palette = p
	m.styles = NewStyles(p)
	m.spinner.Style = m.styles.Accent
}

// refreshTerminal re-renders the scrollback and pins it to the bottom.
func (m *Model) refreshTerminal() {
	st := m.styles
	if m.colorsFrame >= 0 {
		c := lipgloss.Color(terminal.Rainbow[m.colorsFrame%len(terminal.Rainbow)])
		st.Text = st.Text.Foreground(c)
		st.Command = st.Command.Foreground(c)
		st.Accent = st.Accent.Foreground(c)
		st.Prompt = st.Prompt.Foreground(c)
	}
	vp := m.ui.Viewport()
	vp.SetContent(renderEntries(m.term.History(), st, m.ui.Width()))
	vp.GotoBottom()
}

// refreshPage renders the content of the timeline, stats, contact and detail pages
// into the page viewport.
func (m *Model) refreshPage(top bool) {
	height := m.ui.BodyHeight()
	var content string
	switch m.route.Page {
	case terminal.PageProjectDetail:
		height--
		content = m.detailContent()
	case terminal.PageStats:
		content = m.statsContent()
	case terminal.PageContact:
		content = m.contactContent()
	case terminal.PageTimeline:
		content = m.timelineContent()
	default:
		return
	}
	m.page.Width = m.ui.Width()
	m.page.Height = height
	m.page.SetContent(content)
	if top {
		m.page.GotoTop()
	}
}

var pageNames = []struct {
	page terminal.Page
	name string
}{
	{terminal.PageHome, "Home"},
	{terminal.PageProjects, "Projects"},
	{terminal.PageTimeline, "Timeline"},
	{terminal.PageStats, "Stats"},
	{terminal.PageContact, "Contact"},
}

func (m Model) headerView() string {
	current := m.route.Page
	if current == terminal.PageProjectDetail {
		current = terminal.PageProjects
	}
	parts := []string{m.styles.Header.Render("DevlUp Labs SoC")}
	for _, p := range pageNames {
		style := m.styles.Tab
		if p.page == current {
			style = m.styles.TabOn
		}
		parts = append(parts, style.Render(p.name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) bodyView() string {
	if m.showHelp {
		return m.help.FullHelpView(m.keys.FullHelp())
	}
	switch m.route.Page {
	case terminal.PageHome:
		return m.ui.Viewport().View()
	case terminal.PageProjects:
		return lipgloss.NewStyle().MaxHeight(m.ui.BodyHeight()).Render(m.projectsView())
	case terminal.PageProjectDetail:
		return m.detailHeader() + "\n" + m.page.View()
	default:
		return m.page.View()
	}
}

func (m Model) statusView() string {
	if m.toast != "" {
		return m.styles.Toast.Render(m.toast)
	}
	if m.loading {
		return m.spinner.View() + m.styles.Accent.Render(" Loading projects...")
	}
	status := fmt.Sprintf("%s · %d projects", m.route.Path(), len(m.term.Projects()))
	if f := m.term.Filter(); f.Active() {
		status += fmt.Sprintf(" · %d shown", len(m.term.FilteredProjects()))
	}
	if Version != "" {
		status += " · v" + Version
	}
	out := m.styles.Dim.Render(status)
	if m.live {
		out += " " + m.styles.Success.Render("● live")
	}
	return out
}

func (m Model) View() string {
	if !m.ui.IsReady() {
		return "Initializing..."
	}

	prompt := m.styles.Dim.Render("esc back · ? shortcuts")
	if m.route.Page == terminal.PageHome {
		prompt = m.ui.Input().View()
	}

	return fmt.Sprintf("%s\n%s\n%s\n%s\n%s",
		m.headerView(),
		m.bodyView(),
		prompt,
		m.statusView(),
		m.help.ShortHelpView(m.keys.ShortHelp()),
	)
}
