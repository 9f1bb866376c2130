package terminal

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/devluplabs/socterm/internal/events"
	"github.com/devluplabs/socterm/internal/project"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedReport string

func (r fixedReport) Report() string { return string(r) }

func newTestTerminal(opts Options) *Terminal {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(1))
	}
	term := New(opts)
	term.SetProjects(project.MockProjects())
	return term
}

// since returns the entries appended after the first n.
func since(term *Terminal, n int) []Entry {
	return term.History()[n:]
}

func TestNewShowsWelcome(t *testing.T) {
	term := New(Options{})
	history := term.History()
	require.Len(t, history, 1)
	assert.Equal(t, EntryResponse, history[0].Type)
	assert.True(t, strings.HasPrefix(history[0].Content, "Welcome to DevlUp Labs Summer of Code Terminal!"))
}

func TestExecuteBlankLineIsNoop(t *testing.T) {
	term := newTestTerminal(Options{})
	before := term.History()

	assert.Equal(t, Effect{}, term.Execute("   "))
	assert.Equal(t, before, term.History())
	assert.Equal(t, 0, term.Recall().Len())
}

func TestExecuteEchoesCommand(t *testing.T) {
	term := newTestTerminal(Options{})
	n := len(term.History())

	term.Execute("  HELP  ")

	entries := since(term, n)
	require.Len(t, entries, 2)
	assert.Equal(t, Entry{Type: EntryCommand, Content: "HELP"}, entries[0])
	assert.Equal(t, EntryHelp, entries[1].Type)
	assert.Contains(t, entries[1].Content, "Available commands:")
}

func TestClearAlwaysEmptiesHistory(t *testing.T) {
	for _, alias := range []string{"clear", "cls", "c", "CLEAR"} {
		term := newTestTerminal(Options{})
		term.Execute("help")
		term.Execute("mentors")

		term.Execute(alias)
		assert.Empty(t, term.History(), alias)
	}
}

func TestClearKeepsRecall(t *testing.T) {
	term := newTestTerminal(Options{})
	term.Execute("help")
	term.Execute("clear")

	line, ok := term.Recall().Up()
	assert.True(t, ok)
	assert.Equal(t, "clear", line)
}

func TestViewProject(t *testing.T) {
	for _, input := range []string{"view 2", "v 2", "2"} {
		t.Run(input, func(t *testing.T) {
			term := newTestTerminal(Options{})
			n := len(term.History())

			effect := term.Execute(input)

			entries := since(term, n)
			require.Len(t, entries, 2)
			assert.Equal(t, EntryProject, entries[1].Type)
			require.NotNil(t, entries[1].Project)
			assert.Equal(t, "Cross-Platform Mobile Game", entries[1].Project.Name)

			require.NotNil(t, effect.Navigate)
			assert.Equal(t, Route{Page: PageProjectDetail, ProjectID: "2"}, *effect.Navigate)
		})
	}
}

func TestViewMissingProjectYieldsOneErrorAndNoNavigation(t *testing.T) {
	for _, input := range []string{"view 99", "99"} {
		t.Run(input, func(t *testing.T) {
			term := newTestTerminal(Options{})
			n := len(term.History())

			effect := term.Execute(input)

			var errs []Entry
			for _, e := range since(term, n) {
				if e.Type == EntryError {
					errs = append(errs, e)
				}
			}
			require.Len(t, errs, 1)
			assert.Equal(t, "Project with ID 99 not found.", errs[0].Content)
			assert.Nil(t, effect.Navigate)
		})
	}
}

func TestViewWithoutID(t *testing.T) {
	term := newTestTerminal(Options{})
	effect := term.Execute("view")

	history := term.History()
	assert.Equal(t, "Please specify a project ID. Example: view 1", history[len(history)-1].Content)
	assert.Nil(t, effect.Navigate)
}

func TestProjectsNavigates(t *testing.T) {
	for _, input := range []string{"projects", "p", "ls", "list", "list projects"} {
		term := newTestTerminal(Options{})
		effect := term.Execute(input)

		require.NotNil(t, effect.Navigate, input)
		assert.Equal(t, PageProjects, effect.Navigate.Page)
		assert.Equal(t, ViewProjects, term.View())
	}
}

func TestListUnknownType(t *testing.T) {
	term := newTestTerminal(Options{})
	effect := term.Execute("list mentors")

	history := term.History()
	last := history[len(history)-1]
	assert.Equal(t, EntryError, last.Type)
	assert.Equal(t, `Unknown list type: mentors. Type "help" for available commands.`, last.Content)
	assert.Nil(t, effect.Navigate)
	assert.Equal(t, ViewTerminal, term.View())
}

func TestSearchAndFilterSetState(t *testing.T) {
	term := newTestTerminal(Options{})

	effect := term.Execute("search smart home")
	require.NotNil(t, effect.Navigate)
	assert.Equal(t, "smart home", term.SearchQuery())
	assert.Equal(t, ViewProjects, term.View())

	term.Execute("filter react")
	assert.Equal(t, "react", term.TechFilter())
	assert.Equal(t, []string{"3"}, idsOf(term.FilteredProjects()))

	term.ClearFilters()
	assert.Len(t, term.FilteredProjects(), 5)
}

func TestSearchTwiceIsIdempotent(t *testing.T) {
	term := newTestTerminal(Options{})

	term.Execute("search build")
	first := term.FilteredProjects()
	term.Execute("search build")
	second := term.FilteredProjects()

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second search changed the result (-first +second):\n%s", diff)
	}
}

func TestSearchAndFilterRequireArgument(t *testing.T) {
	term := newTestTerminal(Options{})

	term.Execute("search")
	history := term.History()
	assert.Equal(t, "Please specify a search query. Example: search AI", history[len(history)-1].Content)

	effect := term.Execute("f")
	history = term.History()
	assert.Equal(t, "Please specify a technology. Example: filter React", history[len(history)-1].Content)
	assert.Nil(t, effect.Navigate)
	assert.Equal(t, project.Filter{}, term.Filter())
}

func TestUnknownCommand(t *testing.T) {
	term := newTestTerminal(Options{})
	term.Execute("sudo make me a sandwich")

	history := term.History()
	last := history[len(history)-1]
	assert.Equal(t, EntryError, last.Type)
	assert.Equal(t, `Unknown command: sudo make me a sandwich. Type "help" for available commands.`, last.Content)
}

func TestMentors(t *testing.T) {
	term := newTestTerminal(Options{})
	term.Execute("m")

	history := term.History()
	last := history[len(history)-1]
	assert.Equal(t, EntryMentor, last.Type)
	assert.Equal(t, "Project Mentors (5):", last.Content)
	assert.Len(t, last.Mentors, 5)
}

func TestApply(t *testing.T) {
	t.Run("closed", func(t *testing.T) {
		term := newTestTerminal(Options{ApplyFormURL: "https://forms.example/apply"})
		effect := term.Execute("apply")

		history := term.History()
		assert.Equal(t, "Applications are currently closed. Please check back later.", history[len(history)-1].Content)
		assert.Equal(t, Effect{}, effect)
		assert.Equal(t, ViewTerminal, term.View())
	})

	t.Run("open", func(t *testing.T) {
		term := newTestTerminal(Options{ApplicationsOpen: true, ApplyFormURL: "https://forms.example/apply"})
		n := len(term.History())
		effect := term.Execute("a")

		assert.Equal(t, "https://forms.example/apply", effect.OpenURL)
		assert.Equal(t, ViewForm, term.View())
		assert.Equal(t, EntryForm, since(term, n)[1].Type)
	})
}

func TestStats(t *testing.T) {
	t.Run("report", func(t *testing.T) {
		term := newTestTerminal(Options{Stats: fixedReport("REPORT")})
		effect := term.Execute("stats")

		history := term.History()
		assert.Equal(t, Entry{Type: EntryCode, Content: "REPORT"}, history[len(history)-1])
		assert.Equal(t, Effect{}, effect)
	})

	t.Run("dashboard", func(t *testing.T) {
		term := newTestTerminal(Options{Stats: fixedReport("REPORT")})
		effect := term.Execute("stats --view dashboard")

		require.NotNil(t, effect.Navigate)
		assert.Equal(t, PageStats, effect.Navigate.Page)
	})

	t.Run("live", func(t *testing.T) {
		term := newTestTerminal(Options{Stats: fixedReport("REPORT"), LiveStatsEvery: 10 * time.Second})
		n := len(term.History())
		effect := term.Execute("stats --live")

		assert.True(t, effect.LiveStats)
		entries := since(term, n)
		require.Len(t, entries, 3)
		assert.Equal(t, "Live analytics mode. Stats will update every 10 seconds. Press Ctrl+C to exit.", entries[1].Content)
		assert.Equal(t, "REPORT", entries[2].Content)
	})

	t.Run("no reporter", func(t *testing.T) {
		term := newTestTerminal(Options{})
		assert.Equal(t, "Analytics are not available.", term.StatsEntry().Content)
	})
}

func TestEasterEggs(t *testing.T) {
	tests := []struct {
		input     string
		animation Animation
		contains  string
	}{
		{"matrix", AnimationMatrix, "Initializing matrix mode..."},
		{"hacker", AnimationHack, "> Hack initiated. Please wait..."},
		{"colors!", AnimationColors, "Taste the rainbow!"},
		{"coffee", AnimationNone, "caffeine"},
		{"fortune", AnimationNone, " - "},
		{"konami", AnimationNone, "↑ ↑ ↓ ↓"},
		{"about", AnimationNone, "terminal-themed platform"},
		{"eastereggs", AnimationNone, "Easter Egg Hunt"},
		{"keys", AnimationNone, "KEYBOARD SHORTCUTS"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			term := newTestTerminal(Options{})
			n := len(term.History())
			effect := term.Execute(tt.input)

			assert.Equal(t, tt.animation, effect.Animation)
			var text strings.Builder
			for _, e := range since(term, n)[1:] {
				text.WriteString(e.Content)
			}
			assert.Contains(t, text.String(), tt.contains)
		})
	}
}

func TestCowsay(t *testing.T) {
	term := newTestTerminal(Options{})
	term.Execute("cowsay Hello Go")

	history := term.History()
	content := history[len(history)-1].Content
	assert.Contains(t, content, " < Hello Go >\n")
	assert.Contains(t, content, "  "+strings.Repeat("_", 10)+"\n")
	assert.Contains(t, content, "  "+strings.Repeat("‾", 10)+"\n")

	term.Execute("cowsay")
	history = term.History()
	assert.Contains(t, history[len(history)-1].Content, "Moo! Type a message after cowsay!")
}

func TestAnimationFrames(t *testing.T) {
	term := newTestTerminal(Options{})

	for i := 0; i < AnimationMatrix.Frames(); i++ {
		entry, ok := term.AnimationFrame(AnimationMatrix, i)
		require.True(t, ok)
		assert.Equal(t, 40, len([]rune(entry.Content)))
	}
	_, ok := term.AnimationFrame(AnimationMatrix, 20)
	assert.False(t, ok)

	assert.Equal(t, 8, AnimationHack.Frames())
	entry, ok := term.AnimationFrame(AnimationHack, 7)
	require.True(t, ok)
	assert.Contains(t, entry.Content, "Hack complete!")

	_, ok = term.AnimationFrame(AnimationColors, 0)
	assert.False(t, ok)

	assert.Equal(t, 200*time.Millisecond, AnimationMatrix.Interval())
	assert.Equal(t, 800*time.Millisecond, AnimationHack.Interval())
}

func TestCheckKonami(t *testing.T) {
	term := newTestTerminal(Options{})
	sequence := []string{"up", "up", "down", "down", "left", "right", "left", "right", "b"}

	for _, key := range sequence {
		assert.False(t, term.CheckKonami(key))
	}
	assert.True(t, term.CheckKonami("a"))

	history := term.History()
	assert.Equal(t, "🎮 KONAMI CODE ACTIVATED! You've unlocked dark mode!", history[len(history)-1].Content)

	// a mismatch resets the matcher
	term.CheckKonami("up")
	term.CheckKonami("x")
	for _, key := range sequence[1:] {
		term.CheckKonami(key)
	}
	assert.False(t, term.CheckKonami("a"))
}

func TestExecutePublishesCommandEvents(t *testing.T) {
	bus := events.NewMemoryBus()
	var got []events.CommandData
	bus.Subscribe(events.TypeCommandExecuted, events.HandlerFunc(func(e events.Event) error {
		got = append(got, e.Data().(events.CommandData))
		return nil
	}))

	term := newTestTerminal(Options{Bus: bus})
	term.Execute("3")
	term.Execute("bogus")
	term.Execute("  ")

	assert.Equal(t, []events.CommandData{
		{Name: "view", Known: true},
		{Name: "unknown", Known: false},
	}, got)
}

func TestNotifyFallback(t *testing.T) {
	term := New(Options{})
	term.NotifyFallback()

	history := term.History()
	assert.Equal(t, Entry{Type: EntryError, Content: "Unable to fetch live project data. Displaying mock projects instead."}, history[len(history)-1])
}

func idsOf(projects []project.Project) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.ID)
	}
	return out
}

func TestShortcutsListTimeline(t *testing.T) {
	term := newTestTerminal(Options{})
	n := len(term.History())

	term.Execute("shortcuts")

	entries := since(term, n)
	require.Len(t, entries, 2)
	assert.Contains(t, entries[1].Content, "Alt+T       - Navigate to Timeline page")
	assert.Equal(t, "/timeline", Route{Page: PageTimeline}.Path())
}
