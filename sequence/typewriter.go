package sequence

import (
	"time"

	"github.com/lixenwraith/mind-palace/engine"
)

// Typewriter reveals text one rune per interval after an initial delay
type Typewriter struct {
	text     []rune
	shown    int
	delay    time.Duration
	interval time.Duration
	timer    *engine.Timer
}

// NewTypewriter creates a hidden line; Mount starts the reveal
func NewTypewriter(text string, delay time.Duration) *Typewriter {
	return &Typewriter{text: []rune(text), delay: delay, interval: TypeInterval}
}

// Mount reveals the first rune after the delay, then one per interval
func (t *Typewriter) Mount(scope *engine.Scope) {
	scope.After(t.delay, func() {
		if t.tick() {
			t.timer = scope.Every(t.interval, func() {
				if !t.tick() {
					t.timer.Cancel()
				}
			})
		}
	})
}

// tick reveals one rune and reports whether more remain
func (t *Typewriter) tick() bool {
	if t.shown < len(t.text) {
		t.shown++
	}
	return t.shown < len(t.text)
}

// Visible returns the revealed prefix
func (t *Typewriter) Visible() string {
	return string(t.text[:t.shown])
}

// Done reports whether the whole line is visible
func (t *Typewriter) Done() bool {
	return t.shown == len(t.text)
}

// Text returns the full line
func (t *Typewriter) Text() string {
	return string(t.text)
}
