package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// chromeHeight 视口之外占用的行数：标题、输入框、状态栏和帮助栏
const chromeHeight = 5

// UIState 管理所有页面共享的视口和输入框
type UIState struct {
	viewport viewport.Model
	input    textinput.Model
	ready    bool
	width    int
	height   int
}

func NewUIState() *UIState {
	ti := textinput.New()
	ti.Placeholder = "Type a command..."
	ti.Prompt = "❯ "
	ti.CharLimit = 256
	ti.Width = 80
	ti.Focus()

	vp := viewport.New(80, 20)

	return &UIState{
		viewport: vp,
		input:    ti,
		width:    80,
		height:   24,
	}
}

func (s *UIState) Viewport() *viewport.Model { return &s.viewport }

func (s *UIState) Input() *textinput.Model { return &s.input }

func (s *UIState) IsReady() bool { return s.ready }

func (s *UIState) Width() int { return s.width }

func (s *UIState) Height() int { return s.height }

// BodyHeight 标题下方可用于页面的高度
func (s *UIState) BodyHeight() int {
	if h := s.height - chromeHeight; h > 3 {
		return h
	}
	return 3
}

// UpdateSize 根据窗口大小调整视口和输入框
func (s *UIState) UpdateSize(width, height int) {
	s.width, s.height = width, height
	if !s.ready {
		s.viewport = viewport.New(width, s.BodyHeight())
		s.viewport.YPosition = 1
		s.ready = true
	} else {
		s.viewport.Width = width
		s.viewport.Height = s.BodyHeight()
	}
	s.input.Width = width - 4
}

// SetPlaceholder 设置输入框占位符（加载项目时使用）
func (s *UIState) SetPlaceholder(text string) {
	s.input.Placeholder = text
}
