package tui

import (
	"github.com/devluplabs/socterm/internal/sheets"
	"github.com/devluplabs/socterm/internal/terminal"
)

// Message types for tea.Model

type ProjectsLoadedMsg struct {
	Result sheets.LoadResult
}

// navigateMsg is the delayed navigation scheduled by a command.
type navigateMsg struct {
	Route terminal.Route
	Gen   int
}

type animationTickMsg struct {
	Gen   int
	Kind  terminal.Animation
	Frame int
}

type liveStatsTickMsg struct {
	Gen int
}

type toastExpiredMsg struct {
	ID int
}

type openURLResultMsg struct {
	URL string
	Err error
}

type copyResultMsg struct {
	Text string
	Err  error
}
