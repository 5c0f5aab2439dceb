package sequence

import (
	"time"

	"github.com/lixenwraith/mind-palace/audio"
	"github.com/lixenwraith/mind-palace/engine"
)

// Boot timing
const (
	BootInterval = 100 * time.Millisecond
	BootStep     = 10
	BootSettle   = 200 * time.Millisecond
)

// BootCompleteTone plays when the progress bar settles
var BootCompleteTone = audio.Tone{Freq: 800, Duration: 500 * time.Millisecond, Wave: audio.WaveSine}

// BootTickTone is the rising blip for progress p
func BootTickTone(p int) audio.Tone {
	return audio.Tone{Freq: float64(400 + p*4), Duration: 50 * time.Millisecond, Wave: audio.WaveSquare}
}

// Boot advances a progress bar by BootStep every BootInterval, then settles and completes once
type Boot struct {
	progress int
	done     bool
	player   audio.Player
	scope    *engine.Scope
	timer    *engine.Timer
	onDone   func()
}

// NewBoot creates a boot sequence at zero progress
func NewBoot(player audio.Player, onDone func()) *Boot {
	if player == nil {
		player = audio.Discard
	}
	return &Boot{player: player, onDone: onDone}
}

// Mount starts the progress timer on scope
func (b *Boot) Mount(scope *engine.Scope) {
	b.scope = scope
	b.timer = scope.Every(BootInterval, b.step)
}

func (b *Boot) step() {
	if b.progress >= 100 {
		b.timer.Cancel()
		b.scope.After(BootSettle, b.complete)
		return
	}
	b.player.Play(BootTickTone(b.progress))
	b.progress += BootStep
}

func (b *Boot) complete() {
	if b.done {
		return
	}
	b.done = true
	b.player.Play(BootCompleteTone)
	if b.onDone != nil {
		b.onDone()
	}
}

// Progress returns percent in [0, 100]
func (b *Boot) Progress() int {
	return min(100, b.progress)
}

// Done reports whether the completion callback ran
func (b *Boot) Done() bool {
	return b.done
}
