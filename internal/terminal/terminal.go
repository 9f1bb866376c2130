// Package terminal is the command interpreter behind the home page. It owns
// the scrollback, the loaded projects and the filter state, and turns each
// input line into entries plus an Effect for the UI to carry out.
//
// A Terminal is not safe for concurrent use; Bubble Tea's update loop is its
// only caller.
package terminal

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/devluplabs/socterm/internal/events"
	"github.com/devluplabs/socterm/internal/project"
	"go.uber.org/zap"
)

// Reporter produces the analytics report printed by `stats`.
type Reporter interface {
	Report() string
}

type Options struct {
	HistoryLimit     int
	ApplicationsOpen bool
	ApplyFormURL     string
	// LiveStatsEvery is the `stats --live` refresh period.
	LiveStatsEvery time.Duration
	Stats          Reporter
	Bus            events.Bus
	Rand           *rand.Rand
	Logger         *zap.Logger
}

type Terminal struct {
	history  *History
	recall   *Recall
	parser   *CommandParser
	projects []project.Project
	view     View
	filter   project.Filter
	konami   int

	opts   Options
	rng    *rand.Rand
	logger *zap.Logger
}

var konamiCode = []string{"up", "up", "down", "down", "left", "right", "left", "right", "b", "a"}

// New creates a terminal showing the welcome banner.
func New(opts Options) *Terminal {
	if opts.HistoryLimit == 0 {
		opts.HistoryLimit = DefaultHistoryLimit
	}
	if opts.LiveStatsEvery <= 0 {
		opts.LiveStatsEvery = 10 * time.Second
	}
	t := &Terminal{
		history:  NewHistory(opts.HistoryLimit),
		recall:   NewRecall(),
		parser:   NewCommandParser(),
		projects: []project.Project{},
		opts:     opts,
		rng:      opts.Rand,
		logger:   opts.Logger,
	}
	if t.rng == nil {
		t.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if t.logger == nil {
		t.logger = zap.NewNop()
	}
	t.history.Add(Entry{Type: EntryResponse, Content: welcomeText})
	return t
}

func (t *Terminal) History() []Entry { return t.history.Entries() }

// Recall is the input recall buffer for the prompt.
func (t *Terminal) Recall() *Recall { return t.recall }

func (t *Terminal) View() View { return t.view }

func (t *Terminal) SetView(v View) { t.view = v }

func (t *Terminal) Filter() project.Filter { return t.filter }

func (t *Terminal) SearchQuery() string { return t.filter.Query }

func (t *Terminal) SetSearchQuery(q string) { t.filter.Query = q }

func (t *Terminal) TechFilter() string { return t.filter.Tech }

func (t *Terminal) SetTechFilter(tech string) { t.filter.Tech = tech }

// ClearFilters resets both the search query and the tech filter.
func (t *Terminal) ClearFilters() { t.filter = project.Filter{} }

// Projects returns the loaded projects.
func (t *Terminal) Projects() []project.Project { return t.projects }

// SetProjects replaces the project list wholesale.
func (t *Terminal) SetProjects(projects []project.Project) {
	if projects == nil {
		projects = []project.Project{}
	}
	t.projects = projects
}

// FilteredProjects applies the current filter to the loaded projects.
func (t *Terminal) FilteredProjects() []project.Project {
	return t.filter.Apply(t.projects)
}

// LiveStatsEvery is the refresh period announced by `stats --live`.
func (t *Terminal) LiveStatsEvery() time.Duration { return t.opts.LiveStatsEvery }

// Append adds entries produced outside Execute, such as animation frames.
func (t *Terminal) Append(entries ...Entry) {
	t.history.Add(entries...)
}

// NotifyFallback records that the mock projects replaced the sheet.
func (t *Terminal) NotifyFallback() {
	t.history.Add(Entry{Type: EntryError, Content: fallbackText})
}

// StatsEntry renders the analytics report as a code entry.
func (t *Terminal) StatsEntry() Entry {
	report := "Analytics are not available."
	if t.opts.Stats != nil {
		report = t.opts.Stats.Report()
	}
	return Entry{Type: EntryCode, Content: report}
}

// Execute runs one input line. A blank line does nothing.
func (t *Terminal) Execute(line string) Effect {
	cmd := t.parser.Parse(line)
	if cmd == nil {
		return Effect{}
	}

	t.recall.Push(line)
	t.history.Add(Entry{Type: EntryCommand, Content: cmd.Raw})
	t.publish(cmd)
	t.logger.Debug("execute", zap.String("command", FormatCommandType(cmd.Type)), zap.Int("args", len(cmd.Args)))

	switch cmd.Type {
	case CommandTypeHelp:
		t.add(EntryHelp, helpText)

	case CommandTypeClear:
		t.history.Clear()

	case CommandTypeProjects:
		return t.showProjects()

	case CommandTypeList:
		if kind := cmd.Arg(0); kind != "" && !strings.EqualFold(kind, "projects") {
			t.add(EntryError, fmt.Sprintf(`Unknown list type: %s. Type "help" for available commands.`, kind))
			return Effect{}
		}
		return t.showProjects()

	case CommandTypeSearch:
		query := cmd.Rest()
		if query == "" {
			t.add(EntryError, "Please specify a search query. Example: search AI")
			return Effect{}
		}
		t.filter.Query = query
		t.view = ViewProjects
		t.add(EntryResponse, "Searching projects for: "+query)
		return navigate(PageProjects, "")

	case CommandTypeFilter:
		tech := cmd.Rest()
		if tech == "" {
			t.add(EntryError, "Please specify a technology. Example: filter React")
			return Effect{}
		}
		t.filter.Tech = tech
		t.view = ViewProjects
		t.add(EntryResponse, "Filtering projects by technology: "+tech)
		return navigate(PageProjects, "")

	case CommandTypeView:
		if cmd.Arg(0) == "" {
			t.add(EntryError, "Please specify a project ID. Example: view 1")
			return Effect{}
		}
		return t.viewProject(cmd.Arg(0))

	case CommandTypeProjectID:
		return t.viewProject(cmd.Name)

	case CommandTypeStats:
		return t.stats(cmd)

	case CommandTypeMentors:
		mentors := project.AllMentors(t.projects)
		t.history.Add(Entry{
			Type:    EntryMentor,
			Content: fmt.Sprintf("Project Mentors (%d):", len(mentors)),
			Mentors: mentors,
		})

	case CommandTypeApply:
		if !t.opts.ApplicationsOpen || t.opts.ApplyFormURL == "" {
			t.add(EntryResponse, applyClosedText)
			return Effect{}
		}
		t.view = ViewForm
		t.add(EntryForm, applyOpeningText)
		t.add(EntryResponse, applyFormText)
		return Effect{OpenURL: t.opts.ApplyFormURL}

	case CommandTypeShortcuts:
		t.add(EntryCode, shortcutsText)

	case CommandTypeMatrix:
		t.add(EntryResponse, "Entering the Matrix...")
		t.add(EntryCode, "Initializing matrix mode...")
		return Effect{Animation: AnimationMatrix}

	case CommandTypeHack:
		t.add(EntryCode, "> Hack initiated. Please wait...")
		return Effect{Animation: AnimationHack}

	case CommandTypeCoffee:
		t.add(EntryCode, coffeeArt)
		t.add(EntryResponse, "Coffee break! Every good developer needs caffeine ☕")

	case CommandTypeFortune:
		quote := programmingQuotes[t.rng.Intn(len(programmingQuotes))]
		t.add(EntryCode, `"`+quote+`"`)

	case CommandTypeCowsay:
		message := cmd.Rest()
		if message == "" {
			message = cowsayDefault
		}
		t.add(EntryCode, cowsay(message))

	case CommandTypeColors:
		t.add(EntryCode, "Taste the rainbow!")
		t.add(EntryCode, rainbowText)
		return Effect{Animation: AnimationColors}

	case CommandTypeKonami:
		t.add(EntryResponse, konamiHintText)

	case CommandTypeAbout:
		t.add(EntryResponse, aboutText)
		t.add(EntryCode, aboutDetails)

	case CommandTypeEasterEgg:
		t.add(EntryResponse, easterEggText)

	default:
		t.add(EntryError, fmt.Sprintf(`Unknown command: %s. Type "help" for available commands.`, cmd.Raw))
	}

	return Effect{}
}

func (t *Terminal) add(typ EntryType, content string) {
	t.history.Add(Entry{Type: typ, Content: content})
}

func (t *Terminal) publish(cmd *Command) {
	if t.opts.Bus == nil {
		return
	}
	t.opts.Bus.Publish(events.NewEvent(events.TypeCommandExecuted, events.CommandData{
		Name:  FormatCommandType(cmd.Type),
		Known: cmd.Type != CommandTypeUnknown,
	}))
}

func (t *Terminal) showProjects() Effect {
	t.view = ViewProjects
	t.add(EntryResponse, projectsText)
	return navigate(PageProjects, "")
}

func (t *Terminal) viewProject(id string) Effect {
	p, ok := project.FindByID(t.projects, id)
	if !ok {
		t.add(EntryError, fmt.Sprintf("Project with ID %s not found.", id))
		return Effect{}
	}
	t.history.Add(Entry{Type: EntryProject, Content: p.Name, Project: &p})
	return navigate(PageProjectDetail, p.ID)
}

func (t *Terminal) stats(cmd *Command) Effect {
	switch {
	case cmd.HasArg("--view") && (cmd.HasArg("analytics") || cmd.HasArg("dashboard")):
		t.add(EntryResponse, "Opening analytics dashboard...")
		return navigate(PageStats, "")

	case cmd.HasArg("--live"):
		t.add(EntryResponse, fmt.Sprintf(
			"Live analytics mode. Stats will update every %d seconds. Press Ctrl+C to exit.",
			int(t.opts.LiveStatsEvery/time.Second)))
		t.history.Add(t.StatsEntry())
		return Effect{LiveStats: true}

	default:
		t.history.Add(t.StatsEntry())
		return Effect{}
	}
}

// AnimationFrame returns frame i of a. ok is false once the animation has
// no more entries to show; the colors animation never produces entries.
func (t *Terminal) AnimationFrame(a Animation, i int) (Entry, bool) {
	if i < 0 || i >= a.Frames() {
		return Entry{}, false
	}
	switch a {
	case AnimationMatrix:
		line := make([]rune, matrixWidth)
		for j := range line {
			line[j] = matrixGlyphs[t.rng.Intn(len(matrixGlyphs))]
		}
		return Entry{Type: EntryCode, Content: string(line)}, true

	case AnimationHack:
		glyph := progressGlyphs[t.rng.Intn(len(progressGlyphs))]
		return Entry{Type: EntryCode, Content: fmt.Sprintf("%c %s", glyph, hackMessages[i])}, true

	default:
		return Entry{}, false
	}
}

// CheckKonami feeds one key press into the Konami code matcher. It returns
// true when the sequence completes, after recording the activation message.
func (t *Terminal) CheckKonami(key string) bool {
	if key != konamiCode[t.konami] {
		t.konami = 0
		return false
	}
	t.konami++
	if t.konami < len(konamiCode) {
		return false
	}
	t.konami = 0
	t.add(EntryResponse, konamiText)
	return true
}
