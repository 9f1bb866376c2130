package terminal

import "github.com/devluplabs/socterm/internal/project"

// EntryType selects how an entry is rendered.
type EntryType int

const (
	EntryCommand EntryType = iota
	EntryResponse
	EntryError
	EntryHelp
	EntryProject
	EntryMentor
	EntryCode
	EntryForm
)

func (t EntryType) String() string {
	switch t {
	case EntryCommand:
		return "command"
	case EntryResponse:
		return "response"
	case EntryError:
		return "error"
	case EntryHelp:
		return "help"
	case EntryProject:
		return "project"
	case EntryMentor:
		return "mentor"
	case EntryCode:
		return "code"
	case EntryForm:
		return "form"
	default:
		return "unknown"
	}
}

// Entry is one line group in the terminal scrollback. Project is set for
// project entries, Mentors for mentor entries.
type Entry struct {
	Type    EntryType
	Content string
	Project *project.Project
	Mentors []project.Mentor
}
