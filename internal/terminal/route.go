package terminal

import "time"

// View is the interpreter's notion of what the home page shows.
type View int

const (
	ViewTerminal View = iota
	ViewProjects
	ViewForm
)

func (v View) String() string {
	switch v {
	case ViewProjects:
		return "projects"
	case ViewForm:
		return "form"
	default:
		return "terminal"
	}
}

// Page is a top-level screen of the application.
type Page int

const (
	PageHome Page = iota
	PageProjects
	PageProjectDetail
	PageStats
	PageContact
	PageTimeline
)

// Route is a page plus, for the detail page, the project id.
type Route struct {
	Page      Page
	ProjectID string
}

// Path renders r the way the archive's web routes were written.
func (r Route) Path() string {
	switch r.Page {
	case PageProjects:
		return "/projects"
	case PageProjectDetail:
		return "/projects/" + r.ProjectID
	case PageStats:
		return "/stats"
	case PageContact:
		return "/contact"
	case PageTimeline:
		return "/timeline"
	default:
		return "/"
	}
}

// Animation is a timed sequence the UI drives after a command.
type Animation int

const (
	AnimationNone Animation = iota
	AnimationMatrix
	AnimationHack
	AnimationColors
)

// Interval is the delay between frames.
func (a Animation) Interval() time.Duration {
	switch a {
	case AnimationMatrix, AnimationColors:
		return 200 * time.Millisecond
	case AnimationHack:
		return 800 * time.Millisecond
	default:
		return 0
	}
}

// Frames is the number of frames before the animation stops.
func (a Animation) Frames() int {
	switch a {
	case AnimationMatrix:
		return matrixFrames
	case AnimationHack:
		return len(hackMessages)
	case AnimationColors:
		return colorsFrames
	default:
		return 0
	}
}

// Effect tells the UI what to do after Execute. The zero value means nothing.
type Effect struct {
	Navigate  *Route
	Animation Animation
	LiveStats bool
	OpenURL   string
}

func navigate(page Page, id string) Effect {
	return Effect{Navigate: &Route{Page: page, ProjectID: id}}
}
