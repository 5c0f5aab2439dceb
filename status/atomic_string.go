package status

import (
	"sync/atomic"

	"github.com/mattn/go-runewidth"
)

// MaxStringWidth caps stored strings to what the debug overlay can show in one column
const MaxStringWidth = 36

// AtomicString holds a display string; the zero value reads ""
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the value, cut to MaxStringWidth cells on a rune boundary
func (s *AtomicString) Store(val string) {
	if runewidth.StringWidth(val) > MaxStringWidth {
		val = runewidth.Truncate(val, MaxStringWidth, "…")
	}
	s.ptr.Store(&val)
}

// Load returns the current value
func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
