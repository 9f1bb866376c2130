package terminal

// Recall walks previously submitted input lines with the arrow keys. It is
// separate from History and survives `clear`.
type Recall struct {
	lines []string
	index int
}

func NewRecall() *Recall {
	return &Recall{index: -1}
}

// Push records a submitted line and resets the cursor.
func (r *Recall) Push(line string) {
	r.lines = append(r.lines, line)
	r.index = -1
}

// Up moves to the next older line. ok is false when there is nothing to recall.
func (r *Recall) Up() (line string, ok bool) {
	if len(r.lines) == 0 {
		return "", false
	}
	if r.index < len(r.lines)-1 {
		r.index++
	}
	return r.lines[len(r.lines)-1-r.index], true
}

// Down moves to the next newer line; past the newest it returns "".
func (r *Recall) Down() string {
	if r.index > -1 {
		r.index--
	}
	if r.index < 0 {
		return ""
	}
	return r.lines[len(r.lines)-1-r.index]
}

func (r *Recall) Len() int {
	return len(r.lines)
}
