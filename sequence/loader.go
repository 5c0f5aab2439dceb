// Package sequence implements the scripted, timer-driven text effects: the loading
// screen's command typer, the boot progress bar, typewriter lines and the title glitch.
package sequence

import (
	"time"

	"github.com/lixenwraith/mind-palace/engine"
)

// Loader timing
const (
	TypeInterval = 30 * time.Millisecond
	CommandPause = 200 * time.Millisecond
	historyKeep  = 5 // lines kept before each finished command's two lines
)

// SuccessLine follows every finished command in the loader history
const SuccessLine = "✓ SUCCESS"

// StatusLabel maps progress percent to the cosmic status shown under progress bars
func StatusLabel(progress float64) string {
	switch {
	case progress < 25:
		return "INITIALIZING"
	case progress < 50:
		return "LOADING"
	case progress < 75:
		return "CONNECTING"
	case progress < 100:
		return "FINALIZING"
	}
	return "TRANSCENDENT"
}

// Loader types a fixed list of commands one rune per interval, pausing between commands
type Loader struct {
	commands [][]rune
	prompt   string
	every    time.Duration
	pause    time.Duration
	index    int
	typed    int
	history  []string
	progress float64
	complete bool

	scope      *engine.Scope
	typing     *engine.Timer
	onComplete func()
}

// NewLoader creates a loader over commands; nothing runs until Mount
func NewLoader(commands []string) *Loader {
	l := &Loader{
		commands: make([][]rune, len(commands)),
		history:  make([]string, 0, historyKeep+2),
		prompt:   "$ ",
		every:    TypeInterval,
		pause:    CommandPause,
	}
	for i, c := range commands {
		l.commands[i] = []rune(c)
	}
	return l
}

// Configure overrides the history prompt and timing; zero durations keep the defaults
func (l *Loader) Configure(prompt string, every, pause time.Duration) *Loader {
	l.prompt = prompt
	if every > 0 {
		l.every = every
	}
	if pause > 0 {
		l.pause = pause
	}
	return l
}

// OnComplete registers fn to run once the last command finishes
func (l *Loader) OnComplete(fn func()) {
	l.onComplete = fn
}

// Mount starts typing the first command on scope
func (l *Loader) Mount(scope *engine.Scope) {
	l.scope = scope
	l.begin()
}

func (l *Loader) begin() {
	if l.index >= len(l.commands) {
		l.finish()
		return
	}
	l.typed = 0
	l.typing = l.scope.Every(l.every, l.tick)
}

func (l *Loader) tick() {
	cmd := l.commands[l.index]
	if l.typed < len(cmd) {
		l.typed++
		return
	}

	l.typing.Cancel()
	if len(l.history) > historyKeep {
		l.history = append(l.history[:0], l.history[len(l.history)-historyKeep:]...)
	}
	l.history = append(l.history, l.prompt+string(cmd), SuccessLine)

	l.scope.After(l.pause, func() {
		l.index++
		l.progress = min(100, l.progress+100/float64(len(l.commands)))
		l.begin()
	})
}

func (l *Loader) finish() {
	if l.complete {
		return
	}
	l.complete = true
	if l.onComplete != nil {
		l.onComplete()
	}
}

// Prompt returns the prefix used for history lines
func (l *Loader) Prompt() string {
	return l.prompt
}

// Current returns the partially typed command, empty once complete
func (l *Loader) Current() string {
	if l.complete || l.index >= len(l.commands) {
		return ""
	}
	return string(l.commands[l.index][:l.typed])
}

// History returns the finished command lines, at most seven
func (l *Loader) History() []string {
	return l.history
}

// Progress returns percent in [0, 100]
func (l *Loader) Progress() float64 {
	return l.progress
}

// Index returns the command being typed
func (l *Loader) Index() int {
	return l.index
}

// Complete reports whether every command finished
func (l *Loader) Complete() bool {
	return l.complete
}

// Duration returns the time a full run takes from Mount
func (l *Loader) Duration() time.Duration {
	var total time.Duration
	for _, c := range l.commands {
		total += time.Duration(len(c)+1)*l.every + l.pause
	}
	return total
}
