package navigation

// DefaultTranscriptCap matches the number of lines the terminal panel shows
const DefaultTranscriptCap = 6

// Transcript is an append-only bounded line log; the oldest line is dropped first
type Transcript struct {
	lines []string
	cap   int
}

// NewTranscript creates an empty transcript holding at most capacity lines, non-positive selects the default
func NewTranscript(capacity int) *Transcript {
	if capacity <= 0 {
		capacity = DefaultTranscriptCap
	}
	return &Transcript{
		lines: make([]string, 0, capacity),
		cap:   capacity,
	}
}

// Append adds lines in order, evicting from the front past the cap
func (t *Transcript) Append(lines ...string) {
	for _, l := range lines {
		if len(t.lines) == t.cap {
			copy(t.lines, t.lines[1:])
			t.lines = t.lines[:t.cap-1]
		}
		t.lines = append(t.lines, l)
	}
}

// Lines returns a copy of the retained lines, oldest first
func (t *Transcript) Lines() []string {
	out := make([]string, len(t.lines))
	copy(out, t.lines)
	return out
}

// Last returns the newest line, empty when the transcript is empty
func (t *Transcript) Last() string {
	if len(t.lines) == 0 {
		return ""
	}
	return t.lines[len(t.lines)-1]
}

// Len returns the number of retained lines
func (t *Transcript) Len() int {
	return len(t.lines)
}

// Cap returns the line limit
func (t *Transcript) Cap() int {
	return t.cap
}

// Clear drops every line
func (t *Transcript) Clear() {
	clear(t.lines)
	t.lines = t.lines[:0]
}
