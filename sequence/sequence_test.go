package sequence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/mind-palace/audio"
	"github.com/lixenwraith/mind-palace/engine"
	"github.com/lixenwraith/mind-palace/vmath"
)

type harness struct {
	clock *engine.MockTimeProvider
	sched *engine.Scheduler
	scope *engine.Scope
}

func newHarness() *harness {
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	sched := engine.NewScheduler(clock)
	return &harness{clock: clock, sched: sched, scope: sched.NewScope("test")}
}

func (h *harness) run(d time.Duration) {
	h.clock.Run(h.sched, d, 10*time.Millisecond)
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		p    float64
		want string
	}{
		{0, "INITIALIZING"},
		{24.9, "INITIALIZING"},
		{25, "LOADING"},
		{50, "CONNECTING"},
		{75, "FINALIZING"},
		{99, "FINALIZING"},
		{100, "TRANSCENDENT"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusLabel(tt.p), "progress %v", tt.p)
	}
}

func TestLoaderTypesAndAdvances(t *testing.T) {
	h := newHarness()
	l := NewLoader([]string{"ab", "c"})
	done := 0
	l.OnComplete(func() { done++ })
	l.Mount(h.scope)

	h.run(30 * time.Millisecond)
	assert.Equal(t, "a", l.Current())

	h.run(30 * time.Millisecond)
	assert.Equal(t, "ab", l.Current())
	assert.Empty(t, l.History())

	h.run(30 * time.Millisecond)
	assert.Equal(t, []string{"$ ab", SuccessLine}, l.History())
	assert.Zero(t, l.Progress(), "progress moves after the pause")

	h.run(200 * time.Millisecond)
	assert.Equal(t, 1, l.Index())
	assert.Equal(t, 50.0, l.Progress())
	assert.Empty(t, l.Current())

	h.run(260 * time.Millisecond)
	assert.True(t, l.Complete())
	assert.Equal(t, 100.0, l.Progress())
	assert.Equal(t, 1, done)
	assert.Equal(t, 550*time.Millisecond, l.Duration())

	timers, _ := h.sched.Pending()
	assert.Zero(t, timers)
}

func TestLoaderHistoryWindow(t *testing.T) {
	h := newHarness()
	cmds := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	l := NewLoader(cmds)
	l.Mount(h.scope)
	h.run(l.Duration())

	require.True(t, l.Complete())
	hist := l.History()
	assert.LessOrEqual(t, len(hist), 7)
	assert.Equal(t, "$ h", hist[len(hist)-2])
	assert.Equal(t, SuccessLine, hist[len(hist)-1])
}

func TestLoaderStopsWithScope(t *testing.T) {
	h := newHarness()
	l := NewLoader([]string{"abcdef"})
	l.Mount(h.scope)
	h.run(60 * time.Millisecond)
	h.scope.Close()
	h.run(time.Second)

	assert.Equal(t, "ab", l.Current())
	assert.False(t, l.Complete())
}

func TestLoaderEmpty(t *testing.T) {
	h := newHarness()
	l := NewLoader(nil)
	done := false
	l.OnComplete(func() { done = true })
	l.Mount(h.scope)
	assert.True(t, done)
	assert.True(t, l.Complete())
}

func TestBootSequence(t *testing.T) {
	h := newHarness()
	rec := &audio.Recorder{}
	completed := 0
	b := NewBoot(rec, func() { completed++ })
	b.Mount(h.scope)

	h.run(500 * time.Millisecond)
	assert.Equal(t, 50, b.Progress())

	h.run(790 * time.Millisecond)
	assert.Equal(t, 100, b.Progress())
	assert.False(t, b.Done(), "settles before completing")

	h.run(10 * time.Millisecond)
	assert.True(t, b.Done())
	assert.Equal(t, 1, completed)

	tones := rec.Tones()
	require.Len(t, tones, 11)
	assert.Equal(t, 400.0, tones[0].Freq)
	assert.Equal(t, 760.0, tones[9].Freq)
	assert.Equal(t, audio.WaveSquare, tones[0].Wave)
	assert.Equal(t, BootCompleteTone, tones[10])

	h.run(time.Second)
	assert.Equal(t, 1, completed)
	assert.Len(t, rec.Tones(), 11)
}

func TestBootNilPlayer(t *testing.T) {
	h := newHarness()
	b := NewBoot(nil, nil)
	b.Mount(h.scope)
	assert.NotPanics(t, func() { h.run(2 * time.Second) })
	assert.True(t, b.Done())
}

func TestTypewriter(t *testing.T) {
	h := newHarness()
	tw := NewTypewriter("abc", 100*time.Millisecond)
	tw.Mount(h.scope)

	h.run(90 * time.Millisecond)
	assert.Empty(t, tw.Visible())

	h.run(10 * time.Millisecond)
	assert.Equal(t, "a", tw.Visible())

	h.run(30 * time.Millisecond)
	assert.Equal(t, "ab", tw.Visible())

	h.run(30 * time.Millisecond)
	assert.Equal(t, "abc", tw.Visible())
	assert.True(t, tw.Done())
	assert.Zero(t, h.scope.Live())
}

func TestTypewriterMultibyte(t *testing.T) {
	h := newHarness()
	tw := NewTypewriter("∞✓", 0)
	tw.Mount(h.scope)
	h.run(10 * time.Millisecond)
	assert.Equal(t, "∞", tw.Visible())
	h.run(30 * time.Millisecond)
	assert.Equal(t, "∞✓", tw.Visible())
}

func TestGlitchFiresAndRestores(t *testing.T) {
	h := newHarness()
	rec := &audio.Recorder{}
	g := NewGlitch("LIMBIC SYSTEM", 3, vmath.NewFastRand(5), rec)
	g.Mount(h.scope)

	h.run(GlitchInterval)
	glitched := false
	for i := 0; i < 20; i++ {
		if g.Glitched() {
			glitched = true
		}
		assert.GreaterOrEqual(t, g.Chaos(), 30.0)
		assert.LessOrEqual(t, g.Chaos(), 100.0)
		assert.GreaterOrEqual(t, g.Intensity(), 0.2)
		assert.LessOrEqual(t, g.Intensity(), 0.8)
		assert.GreaterOrEqual(t, g.Thought(), 0)
		assert.Less(t, g.Thought(), 3)

		h.run(GlitchHold)
		assert.Equal(t, "LIMBIC SYSTEM", g.Title())
		h.run(GlitchInterval - GlitchHold)
	}
	assert.True(t, glitched)
	assert.Equal(t, 21, g.Fires())

	for _, tone := range rec.Tones() {
		assert.Equal(t, audio.WaveSaw, tone.Wave)
		assert.GreaterOrEqual(t, tone.Freq, 100.0)
		assert.Less(t, tone.Freq, 300.0)
		assert.Equal(t, 100*time.Millisecond, tone.Duration)
	}
}

func TestGlitchCorruptsPrintableASCII(t *testing.T) {
	g := NewGlitch("AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", 1, vmath.NewFastRand(9), nil)
	for i := 0; i < 10; i++ {
		g.Fire()
		for _, r := range g.Title() {
			assert.GreaterOrEqual(t, r, rune(33))
			assert.LessOrEqual(t, r, rune(126))
		}
	}
	assert.Zero(t, g.Thought())
}

func TestLoaderConfigure(t *testing.T) {
	h := newHarness()
	l := NewLoader([]string{"> READY."}).Configure("", 50*time.Millisecond, 300*time.Millisecond)
	l.Mount(h.scope)

	assert.Equal(t, 9*50*time.Millisecond+300*time.Millisecond, l.Duration())
	h.run(450 * time.Millisecond)
	assert.Equal(t, []string{"> READY.", SuccessLine}, l.History())
	h.run(300 * time.Millisecond)
	assert.True(t, l.Complete())
}
