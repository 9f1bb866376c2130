package terminal

// DefaultHistoryLimit caps the scrollback when no limit is configured.
const DefaultHistoryLimit = 500

// History is the terminal scrollback. Entries are only appended or cleared
// all at once.
type History struct {
	entries    []Entry
	maxEntries int
}

// NewHistory creates a history keeping at most maxEntries entries; zero or
// less keeps everything.
func NewHistory(maxEntries int) *History {
	return &History{
		entries:    []Entry{},
		maxEntries: maxEntries,
	}
}

func (h *History) Add(entries ...Entry) {
	h.entries = append(h.entries, entries...)
	h.limit()
}

// Entries returns a copy of the scrollback.
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) Len() int {
	return len(h.entries)
}

func (h *History) Clear() {
	h.entries = []Entry{}
}

// limit drops the oldest entries beyond maxEntries.
func (h *History) limit() {
	if h.maxEntries > 0 && len(h.entries) > h.maxEntries {
		h.entries = h.entries[len(h.entries)-h.maxEntries:]
	}
}
