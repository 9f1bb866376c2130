package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryLimitDropsOldest(t *testing.T) {
	h := NewHistory(3)
	for _, c := range []string{"a", "b", "c", "d", "e"} {
		h.Add(Entry{Type: EntryResponse, Content: c})
	}

	entries := h.Entries()
	assert.Len(t, entries, 3)
	assert.Equal(t, "c", entries[0].Content)
	assert.Equal(t, "e", entries[2].Content)
}

func TestHistoryUnlimited(t *testing.T) {
	h := NewHistory(0)
	for i := 0; i < 1000; i++ {
		h.Add(Entry{})
	}
	assert.Equal(t, 1000, h.Len())

	h.Clear()
	assert.Equal(t, 0, h.Len())
	assert.NotNil(t, h.Entries())
}

func TestHistoryEntriesIsACopy(t *testing.T) {
	h := NewHistory(10)
	h.Add(Entry{Content: "original"})

	entries := h.Entries()
	entries[0].Content = "changed"

	assert.Equal(t, "original", h.Entries()[0].Content)
}

func TestRecall(t *testing.T) {
	r := NewRecall()

	_, ok := r.Up()
	assert.False(t, ok)
	assert.Equal(t, "", r.Down())

	r.Push("help")
	r.Push("projects")
	r.Push("view 2")

	line, ok := r.Up()
	assert.True(t, ok)
	assert.Equal(t, "view 2", line)
	line, _ = r.Up()
	assert.Equal(t, "projects", line)
	line, _ = r.Up()
	assert.Equal(t, "help", line)
	line, _ = r.Up()
	assert.Equal(t, "help", line, "stays on the oldest line")

	assert.Equal(t, "projects", r.Down())
	assert.Equal(t, "view 2", r.Down())
	assert.Equal(t, "", r.Down(), "past the newest clears the input")
	assert.Equal(t, "", r.Down())

	r.Push("stats")
	line, _ = r.Up()
	assert.Equal(t, "stats", line, "push resets the cursor")
}
