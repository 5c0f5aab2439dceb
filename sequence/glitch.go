package sequence

import (
	"time"

	"github.com/lixenwraith/mind-palace/audio"
	"github.com/lixenwraith/mind-palace/engine"
	"github.com/lixenwraith/mind-palace/vmath"
)

// Glitch timing and ranges
const (
	GlitchInterval = 2 * time.Second
	GlitchHold     = 200 * time.Millisecond
	GlitchChance   = 0.2
)

// Glitch periodically corrupts a title, jolts the chaos meters and rotates the featured thought
type Glitch struct {
	title     []rune
	shown     []rune
	chaos     float64
	intensity float64
	thought   int
	thoughts  int

	rng    *vmath.FastRand
	player audio.Player
	scope  *engine.Scope
	fires  int
}

// NewGlitch creates a glitch over title choosing among thoughts entries
func NewGlitch(title string, thoughts int, rng *vmath.FastRand, player audio.Player) *Glitch {
	if player == nil {
		player = audio.Discard
	}
	g := &Glitch{
		title:     []rune(title),
		chaos:     50,
		intensity: 0.3,
		thoughts:  thoughts,
		rng:       rng,
		player:    player,
	}
	g.shown = append([]rune(nil), g.title...)
	g.thought = g.pickThought()
	return g
}

// Mount fires every GlitchInterval until scope closes
func (g *Glitch) Mount(scope *engine.Scope) {
	g.scope = scope
	scope.Every(GlitchInterval, g.Fire)
}

// Fire corrupts each title rune with GlitchChance into printable ASCII, restoring after GlitchHold
func (g *Glitch) Fire() {
	g.fires++
	for i, r := range g.title {
		if g.rng.Float64() > 1-GlitchChance {
			g.shown[i] = rune(33 + g.rng.Intn(94))
		} else {
			g.shown[i] = r
		}
	}
	if g.scope != nil {
		g.scope.After(GlitchHold, g.restore)
	}

	g.chaos = 30 + g.rng.Float64()*70
	g.intensity = 0.2 + g.rng.Float64()*0.6
	g.player.Play(audio.Tone{Freq: 100 + g.rng.Float64()*200, Duration: 100 * time.Millisecond, Wave: audio.WaveSaw})
	g.thought = g.pickThought()
}

func (g *Glitch) restore() {
	copy(g.shown, g.title)
}

// pickThought cascades down the list: each entry wins with the share left to it
func (g *Glitch) pickThought() int {
	for i := 0; i < g.thoughts-1; i++ {
		if g.rng.Float64() > float64(g.thoughts-1-i)/float64(g.thoughts) {
			return i
		}
	}
	return max(0, g.thoughts-1)
}

// Title returns the currently displayed title
func (g *Glitch) Title() string {
	return string(g.shown)
}

// Glitched reports whether the title is currently corrupted
func (g *Glitch) Glitched() bool {
	return string(g.shown) != string(g.title)
}

// Chaos returns the chaos meter percent in [30, 100]
func (g *Glitch) Chaos() float64 {
	return g.chaos
}

// Intensity returns the singularity vortex alpha in [0.2, 0.8]
func (g *Glitch) Intensity() float64 {
	return g.intensity
}

// Thought returns the featured thought index
func (g *Glitch) Thought() int {
	return g.thought
}

// Fires returns how many glitches ran
func (g *Glitch) Fires() int {
	return g.fires
}
