package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer 按换行宽度缓存 glamour 渲染器
type MarkdownRenderer struct {
	mu        sync.Mutex
	renderers map[int]*glamour.TermRenderer
	style     string
}

var (
	globalMarkdownRenderer *MarkdownRenderer
	rendererOnce           sync.Once
)

// GetMarkdownRenderer 获取共享的渲染器
func GetMarkdownRenderer() *MarkdownRenderer {
	rendererOnce.Do(func() {
		globalMarkdownRenderer = NewMarkdownRenderer("dark")
	})
	return globalMarkdownRenderer
}

func NewMarkdownRenderer(style string) *MarkdownRenderer {
	return &MarkdownRenderer{
		renderers: make(map[int]*glamour.TermRenderer),
		style:     style,
	}
}

// Render 按宽度渲染 markdown，渲染失败时原样返回
func (r *MarkdownRenderer) Render(md string, width int) string {
	if width < 20 {
		width = 20
	}

	r.mu.Lock()
	tr, ok := r.renderers[width]
	if !ok {
		var err error
		tr, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle(r.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			r.mu.Unlock()
			return md
		}
		r.renderers[width] = tr
	}
	r.mu.Unlock()

	out, err := tr.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}
