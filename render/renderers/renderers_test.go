package renderers

import (
	"strings"
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/mind-palace/audio"
	"github.com/lixenwraith/mind-palace/contact"
	"github.com/lixenwraith/mind-palace/content"
	"github.com/lixenwraith/mind-palace/engine"
	"github.com/lixenwraith/mind-palace/galaxy"
	"github.com/lixenwraith/mind-palace/monitor"
	"github.com/lixenwraith/mind-palace/navigation"
	"github.com/lixenwraith/mind-palace/render"
	"github.com/lixenwraith/mind-palace/sequence"
	"github.com/lixenwraith/mind-palace/shell"
	"github.com/lixenwraith/mind-palace/starfield"
	"github.com/lixenwraith/mind-palace/status"
	"github.com/lixenwraith/mind-palace/vmath"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// screenText joins every row of the cell layer, empty cells as spaces
func screenText(buf *render.RenderBuffer) string {
	w, h := buf.Size()
	var sb strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r := buf.Cell(x, y).Rune
			if r == 0 {
				r = ' '
			}
			sb.WriteRune(r)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func frame(w, h int) render.RenderContext {
	return render.RenderContext{Now: epoch, Width: w, Height: h}
}

type fixture struct {
	clock *engine.MockTimeProvider
	sched *engine.Scheduler
	scope *engine.Scope
	nav   *navigation.Navigator
	shell *shell.Shell
	hits  *HitMap
	cnt   *content.Content
}

func newFixture() *fixture {
	clock := engine.NewMockTimeProvider(epoch)
	sched := engine.NewScheduler(clock)
	transcript := navigation.NewTranscript(6)
	f := &fixture{
		clock: clock,
		sched: sched,
		scope: sched.NewScope("test"),
		nav:   navigation.NewNavigator(transcript, audio.Discard, vmath.NewFastRand(1)),
		hits:  NewHitMap(),
		cnt:   content.Default(),
	}
	f.shell = shell.New(transcript, audio.Discard, nil)
	return f
}

func (f *fixture) run(d time.Duration) {
	f.clock.Run(f.sched, d, 10*time.Millisecond)
}

func TestLayoutKeepsRoomClearOfPanels(t *testing.T) {
	open := ComputeLayout(160, 50, true)
	assert.GreaterOrEqual(t, open.Room.Y, open.Nav.Y+open.Nav.H)
	assert.GreaterOrEqual(t, open.Room.Y, open.Monitor.Y+open.Monitor.H)
	assert.LessOrEqual(t, open.Room.Y+open.Room.H, open.Terminal.Y)
	assert.Equal(t, TerminalMax, open.Terminal.W)

	closed := ComputeLayout(160, 50, false)
	assert.Greater(t, closed.Room.H, open.Room.H)
	assert.Equal(t, 49, closed.Room.Y+closed.Room.H)
}

func TestLayoutDegenerate(t *testing.T) {
	l := ComputeLayout(10, 5, true)
	assert.GreaterOrEqual(t, l.Room.H, 0)
	assert.GreaterOrEqual(t, l.Room.W, 0)
}

func TestGalaxyRendererLightsCore(t *testing.T) {
	buf := render.NewRenderBuffer(80, 24)
	pw, ph := buf.PixelSize()
	sys := galaxy.New(galaxy.Loading(), pw, ph, vmath.NewFastRand(7), epoch)
	sys.Tick(epoch)

	NewGalaxyRenderer(sys).Render(frame(80, 24), buf)

	c := sys.Center()
	core := buf.Pixel(int(c.X), int(c.Y))
	assert.Greater(t, render.Luma(core), 0, "core glow is visible through the veil")
}

func TestGalaxyRendererCosmicConstellation(t *testing.T) {
	without := render.NewRenderBuffer(80, 24)
	with := render.NewRenderBuffer(80, 24)
	pw, ph := without.PixelSize()

	a := galaxy.New(galaxy.Cosmic(), pw, ph, vmath.NewFastRand(3), epoch)
	b := galaxy.New(galaxy.Cosmic(), pw, ph, vmath.NewFastRand(3), epoch)
	b.SetPointer(b.Center())
	require.NotEmpty(t, b.Constellation(), "seeded field has linked stars near the center")

	NewGalaxyRenderer(a).Render(frame(80, 24), without)
	NewGalaxyRenderer(b).Render(frame(80, 24), with)

	link := b.Constellation()[0]
	mid := link.From.Add(link.To).Scale(0.5)
	assert.NotEqual(t, without.Pixel(int(mid.X), int(mid.Y)), with.Pixel(int(mid.X), int(mid.Y)))
}

func TestParticleRendererFadesWithLife(t *testing.T) {
	spec := starfield.EmitterSpec{Cap: 4, Decay: 0.5, Shrink: 1, SizeMin: 2, SizeMax: 2, Palette: []colorful.Color{starfield.Green}}
	e := starfield.NewEmitter(spec, vmath.NewFastRand(1))
	e.Spawn(vmath.V2(20, 20))

	r := NewParticleRenderer(1, 0, e)
	fresh := render.NewRenderBuffer(40, 20)
	r.Render(frame(40, 20), fresh)
	assert.Greater(t, int(fresh.Pixel(20, 20).G), 0)

	e.Step()
	faded := render.NewRenderBuffer(40, 20)
	r.Render(frame(40, 20), faded)
	assert.Less(t, int(faded.Pixel(20, 20).G), int(fresh.Pixel(20, 20).G))

	e.Step()
	gone := render.NewRenderBuffer(40, 20)
	r.Render(frame(40, 20), gone)
	assert.Equal(t, render.RGBBlack, gone.Pixel(20, 20))
}

func TestPointerRendererNeedsPointer(t *testing.T) {
	r := NewPointerRenderer(0.1)
	buf := render.NewRenderBuffer(40, 20)
	ctx := frame(40, 20)

	r.Render(ctx, buf)
	assert.Equal(t, render.RGBBlack, buf.Pixel(20, 20))

	ctx.Pointer = vmath.V2(20.5, 20.5)
	ctx.PointerSeen = true
	r.Render(ctx, buf)
	p := buf.Pixel(20, 20)
	assert.Greater(t, int(p.B), int(p.G), "violet-blue glow")
}

func TestNavPanelRegistersRooms(t *testing.T) {
	f := newFixture()
	f.nav.CompleteBoot()
	buf := render.NewRenderBuffer(120, 40)

	NewNavPanel(f.nav, f.hits).Render(frame(120, 40), buf)
	text := screenText(buf)
	assert.Contains(t, text, "NEURAL PATHWAYS")
	for _, room := range navigation.MenuRooms() {
		assert.Contains(t, text, room.Label())
	}
	require.Equal(t, len(navigation.MenuRooms()), f.hits.Len())

	nav := ComputeLayout(120, 40, false).Nav
	target, ok := f.hits.At(nav.X+1, nav.Y+1)
	require.True(t, ok)
	assert.Equal(t, ActionNavigate, target.Action)
	assert.Equal(t, navigation.Welcome, target.Room)

	target, ok = f.hits.At(nav.X+nav.W-3, nav.Y+3)
	require.True(t, ok)
	assert.Equal(t, navigation.Synapse, target.Room)
}

type audioFlag bool

func (a audioFlag) Enabled() bool { return bool(a) }

func TestMonitorPanel(t *testing.T) {
	f := newFixture()
	g := monitor.NewGauges(vmath.NewFastRand(1), nil)
	buf := render.NewRenderBuffer(120, 40)

	NewMonitorPanel(g, audioFlag(false), f.hits).Render(frame(120, 40), buf)
	text := screenText(buf)
	assert.Contains(t, text, "GALAXY MONITOR")
	assert.Contains(t, text, "RAM: Coffee")
	assert.Contains(t, text, "23%")
	assert.Contains(t, text, "AUDIO OFF")

	m := ComputeLayout(120, 40, false).Monitor
	target, ok := f.hits.At(m.X+m.W-3, m.Y+1)
	require.True(t, ok)
	assert.Equal(t, ActionAudio, target.Action)
}

func TestTerminalPanel(t *testing.T) {
	f := newFixture()
	f.nav.CompleteBoot()
	f.nav.NavigateTo(navigation.PrefrontalCortex)
	p := NewTerminalPanel(f.shell, f.nav, f.cnt.Prompt(), f.cnt.Terminal.Placeholder, f.hits)

	assert.False(t, p.IsVisible())
	assert.True(t, p.Toggle())

	o := render.NewOrchestrator(120, 40)
	o.Register(p, render.PriorityTerminal)
	o.RenderFrame(frame(120, 40))
	text := screenText(o.Buffer())
	assert.Contains(t, text, "shivanshi@galaxy-brain:/prefrontal_cortex")
	assert.Contains(t, text, "cd /prefrontal_cortex")
	assert.Contains(t, text, "Enter cosmic command...")

	term := ComputeLayout(120, 40, true).Terminal
	target, ok := f.hits.At(term.X+term.W-2, term.Y+1)
	require.True(t, ok)
	assert.Equal(t, ActionCloseTerminal, target.Action)

	p.SetOpen(false)
	f.hits.Reset()
	o.RenderFrame(frame(120, 40))
	assert.NotContains(t, screenText(o.Buffer()), "Enter cosmic command...")
	assert.Zero(t, f.hits.Len())
}

func TestTerminalHighlightsCommands(t *testing.T) {
	f := newFixture()
	f.nav.CompleteBoot()
	f.shell.Evaluate("whoami")
	p := NewTerminalPanel(f.shell, f.nav, f.cnt.Prompt(), "", f.hits)
	buf := render.NewRenderBuffer(120, 40)
	p.Render(frame(120, 40), buf)

	term := ComputeLayout(120, 40, true).Terminal
	cmd := buf.Cell(term.X+1, term.Y+2)
	require.Equal(t, '$', cmd.Rune)
	assert.Equal(t, render.RgbTerminalGreen, cmd.Fg)
	assert.Equal(t, rgbLightGray, buf.Cell(term.X+1, term.Y+3).Fg)
}

func TestWelcomeRoomTypesLines(t *testing.T) {
	f := newFixture()
	f.nav.CompleteBoot()
	view := &RoomView{}
	for _, line := range f.cnt.Welcome.Lines {
		tw := sequence.NewTypewriter(line.Text, line.Delay)
		tw.Mount(f.scope)
		view.Lines = append(view.Lines, tw)
	}
	r := NewRoomRenderer(f.nav, f.cnt, view, nil, f.hits)

	buf := render.NewRenderBuffer(160, 50)
	r.Render(frame(160, 50), buf)
	text := screenText(buf)
	assert.Contains(t, text, "SHIVANSHI.EXE")
	assert.NotContains(t, text, "Digital Architect")
	assert.Equal(t, len(f.cnt.Welcome.Stats), f.hits.Len())

	f.run(10 * time.Second)
	f.hits.Reset()
	r.Render(frame(160, 50), buf)
	assert.Contains(t, screenText(buf), f.cnt.Welcome.Lines[0].Text)

	room := ComputeLayout(160, 50, false).Room
	target, ok := f.hits.At(room.X+room.W/2, room.Y+7)
	require.True(t, ok)
	assert.Equal(t, ActionTone, target.Action)
	assert.NotZero(t, target.Tone.Freq)
}

func TestChaosRoomShowsGlitchState(t *testing.T) {
	f := newFixture()
	f.nav.CompleteBoot()
	f.nav.NavigateTo(navigation.LimbicSystem)
	g := sequence.NewGlitch(f.cnt.Chaos.Header.Title, len(f.cnt.Chaos.Generator.Thoughts), vmath.NewFastRand(5), audio.Discard)
	g.Fire()
	r := NewRoomRenderer(f.nav, f.cnt, &RoomView{Glitch: g}, nil, f.hits)

	buf := render.NewRenderBuffer(160, 50)
	r.Render(frame(160, 50), buf)
	text := screenText(buf)
	assert.Contains(t, text, f.cnt.Chaos.Generator.Thoughts[g.Thought()])
	assert.Contains(t, text, "Creative Chaos")
}

func TestSynapseRoomTargets(t *testing.T) {
	f := newFixture()
	f.nav.CompleteBoot()
	f.nav.NavigateTo(navigation.Synapse)
	form := contact.New(f.scope, audio.Discard)
	r := NewRoomRenderer(f.nav, f.cnt, &RoomView{Form: form}, nil, f.hits)

	buf := render.NewRenderBuffer(160, 50)
	r.Render(frame(160, 50), buf)
	text := screenText(buf)
	assert.Contains(t, text, "Quantum Transmission Interface")
	assert.Contains(t, text, form.ButtonLabel())
	assert.Contains(t, text, contact.Fields[1].Placeholder)

	focus, submit := 0, 0
	w, h := buf.Size()
	seen := map[contact.Field]bool{}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			target, ok := f.hits.At(x, y)
			if !ok {
				continue
			}
			switch target.Action {
			case ActionFocus:
				if !seen[target.Field] {
					seen[target.Field] = true
					focus++
				}
			case ActionSubmit:
				submit++
			}
		}
	}
	assert.Equal(t, 3, focus)
	assert.Positive(t, submit)
}

func TestEveryRoomRenders(t *testing.T) {
	f := newFixture()
	f.nav.CompleteBoot()
	r := NewRoomRenderer(f.nav, f.cnt, &RoomView{}, nil, f.hits)
	titles := map[navigation.Room]string{
		navigation.PrefrontalCortex: "Neural Dreams",
		navigation.TemporalLobe:     "Memory Core Access",
		navigation.LimbicSystem:     "LIMBIC SYSTEM",
		navigation.MotorCortex:      "Core Processes",
		navigation.Synapse:          "SYNAPSE",
	}
	for room, want := range titles {
		f.nav.NavigateTo(room)
		buf := render.NewRenderBuffer(160, 50)
		assert.NotPanics(t, func() { r.Render(frame(160, 50), buf) }, room.String())
		assert.Contains(t, screenText(buf), want, room.String())

		small := render.NewRenderBuffer(60, 30)
		assert.NotPanics(t, func() { r.Render(frame(60, 30), small) }, room.String())
	}
}

func TestLoadingScreen(t *testing.T) {
	f := newFixture()
	script := f.cnt.Loading.Active()
	loader := sequence.NewLoader(script.Lines).Configure(script.Prompt, script.TypeEvery, script.Pause)
	loader.Mount(f.scope)
	s := NewLoadingScreen(loader, f.cnt.Loading, f.cnt.Boot)

	f.run(loader.Duration() / 2)
	buf := render.NewRenderBuffer(100, 30)
	s.Render(frame(100, 30), buf)
	text := screenText(buf)
	assert.Contains(t, text, f.cnt.Loading.Title)
	assert.Contains(t, text, sequence.SuccessLine)
	assert.Contains(t, text, sequence.StatusLabel(loader.Progress()))

	f.run(loader.Duration())
	require.True(t, loader.Complete())
	buf.Clear()
	s.Render(frame(100, 30), buf)
	assert.Contains(t, screenText(buf), "100%")
	assert.Contains(t, screenText(buf), "TRANSCENDENT")
}

func TestBootScreen(t *testing.T) {
	f := newFixture()
	boot := sequence.NewBoot(audio.Discard, nil)
	boot.Mount(f.scope)
	s := NewBootScreen(boot, f.cnt.Boot)

	f.run(550 * time.Millisecond)
	buf := render.NewRenderBuffer(100, 30)
	s.Render(frame(100, 30), buf)
	text := screenText(buf)
	assert.Contains(t, text, f.cnt.Boot.Title)
	assert.Contains(t, text, "50%")
	assert.Contains(t, text, "CONNECTING")
}

func TestDebugRendererToggle(t *testing.T) {
	reg := status.NewRegistry()
	reg.Ints.Get("frames").Store(42)
	d := NewDebugRenderer(reg)
	assert.False(t, d.IsVisible())
	assert.True(t, d.Toggle())

	buf := render.NewRenderBuffer(60, 10)
	d.Render(frame(60, 10), buf)
	text := screenText(buf)
	assert.Contains(t, text, "frames")
	assert.Contains(t, text, "42")
}
