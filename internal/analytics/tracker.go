// Package analytics keeps in-memory statistics for the current session and
// renders the report shown by `stats` and the stats page.
package analytics

import (
	"fmt"
	"sync"
	"time"

	"github.com/devluplabs/socterm/internal/events"
	"github.com/google/uuid"
)

// Tracker counts session activity from the event bus. It is safe for
// concurrent use; live-stats ticks read it off the UI goroutine.
type Tracker struct {
	mu sync.Mutex

	sessionID      string
	start          time.Time
	now            func() time.Time
	pageViews      map[string]int
	commands       map[string]int
	unknown        int
	projectViews   map[string]int
	hourly         [24]int
	projectsLoaded int
	fallback       bool
}

func NewTracker() *Tracker {
	return newTrackerAt(time.Now)
}

func newTrackerAt(now func() time.Time) *Tracker {
	return &Tracker{
		sessionID:    uuid.NewString(),
		start:        now(),
		now:          now,
		pageViews:    make(map[string]int),
		commands:     make(map[string]int),
		projectViews: make(map[string]int),
	}
}

// Attach subscribes t to every event type it counts.
func (t *Tracker) Attach(bus events.Bus) {
	for _, typ := range []string{
		events.TypeCommandExecuted,
		events.TypePageView,
		events.TypeProjectViewed,
		events.TypeProjectsLoaded,
	} {
		bus.Subscribe(typ, t)
	}
}

func (t *Tracker) CanHandle(event events.Event) bool {
	return event.Data() != nil
}

// Priority runs the tracker after UI handlers.
func (t *Tracker) Priority() int {
	return 100
}

func (t *Tracker) Handle(event events.Event) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch data := event.Data().(type) {
	case events.CommandData:
		if data.Known {
			t.commands[data.Name]++
		} else {
			t.unknown++
		}
	case events.PageViewData:
		t.pageViews[data.Route]++
	case events.ProjectViewedData:
		t.projectViews[data.Name]++
		return nil
	case events.ProjectsLoadedData:
		t.projectsLoaded = data.Count
		t.fallback = data.Fallback
		return nil
	default:
		return fmt.Errorf("analytics: unexpected payload %T for %s", data, event.Type())
	}

	t.hourly[event.Timestamp().Hour()]++
	return nil
}

// Snapshot is a point-in-time copy of the tracker's counters.
type Snapshot struct {
	SessionID       string
	Start           time.Time
	PageViews       map[string]int
	Commands        map[string]int
	UnknownCommands int
	ProjectViews    map[string]int
	Hourly          [24]int
	ProjectsLoaded  int
	Fallback        bool
}

// TotalPageViews sums the per-route counts.
func (s Snapshot) TotalPageViews() int {
	return sum(s.PageViews)
}

// TotalCommands counts every executed command, unknown ones included.
func (s Snapshot) TotalCommands() int {
	return sum(s.Commands) + s.UnknownCommands
}

func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	return Snapshot{
		SessionID:       t.sessionID,
		Start:           t.start,
		PageViews:       copyCounts(t.pageViews),
		Commands:        copyCounts(t.commands),
		UnknownCommands: t.unknown,
		ProjectViews:    copyCounts(t.projectViews),
		Hourly:          t.hourly,
		ProjectsLoaded:  t.projectsLoaded,
		Fallback:        t.fallback,
	}
}

// Report renders the current snapshot.
func (t *Tracker) Report() string {
	return FormatReport(t.Snapshot(), t.now())
}

func copyCounts(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func sum(m map[string]int) int {
	total := 0
	for _, v := range m {
		total += v
	}
	return total
}
