package app

import (
	"log"
	"time"

	"github.com/lixenwraith/mind-palace/contact"
	"github.com/lixenwraith/mind-palace/content"
	"github.com/lixenwraith/mind-palace/engine"
	"github.com/lixenwraith/mind-palace/galaxy"
	"github.com/lixenwraith/mind-palace/navigation"
	"github.com/lixenwraith/mind-palace/render"
	"github.com/lixenwraith/mind-palace/render/renderers"
	"github.com/lixenwraith/mind-palace/sequence"
	"github.com/lixenwraith/mind-palace/starfield"
	"github.com/lixenwraith/mind-palace/vmath"
)

// StageKind identifies the top-level screen being shown
type StageKind uint8

const (
	StageNone StageKind = iota
	StageLoading
	StageBoot
	StageMain
)

var stageNames = [...]string{"none", "loading", "boot", "main"}

func (k StageKind) String() string {
	if int(k) < len(stageNames) {
		return stageNames[k]
	}
	return "unknown"
}

// Main stage cadence
const (
	ParticleStep = 50 * time.Millisecond
	SparkEvery   = 300 * time.Millisecond
	TrailChance  = 0.3
	particleGlow = 2.0
)

// stage is a mounted screen; closing its scope cancels its timers and unregisters its renderers
type stage struct {
	kind  StageKind
	scope *engine.Scope
}

// mainStage is the state shared by the room, the panels and the particle layer
type mainStage struct {
	cosmic *galaxy.Subsystem
	trail  *starfield.Emitter
	sparks *starfield.Emitter
	view   *renderers.RoomView
	room   *engine.Scope // replaced on every room entry
}

// beginStage closes the mounted stage and opens a scope for kind
func (s *Session) beginStage(kind StageKind) *stage {
	if s.stage != nil {
		s.stage.scope.Close()
	}
	st := &stage{kind: kind, scope: s.scope.Child(kind.String())}
	s.stage = st
	s.focus = focusTerminal
	log.Printf("session: stage %s", kind)
	return st
}

// mount registers r for the lifetime of scope
func (s *Session) mount(scope *engine.Scope, r render.SystemRenderer, priority render.RenderPriority) {
	reg := s.orch.Register(r, priority)
	scope.Defer(reg.Remove)
}

// newGalaxy sizes a subsystem to the viewport as it is now
func (s *Session) newGalaxy(p galaxy.Preset) *galaxy.Subsystem {
	pw, ph := s.orch.Buffer().PixelSize()
	return galaxy.New(p, pw, ph, s.rng.Fork(), s.sched.Now())
}

// script returns the configured loading script, falling back to the content default
func (s *Session) script() content.Script {
	if sc, ok := s.content.Loading.Scripts[s.cfg.Loading.Script]; ok {
		return sc
	}
	return s.content.Loading.Active()
}

func (s *Session) enterLoading() {
	st := s.beginStage(StageLoading)

	g := s.newGalaxy(galaxy.Loading())
	g.Mount(st.scope)
	s.mount(st.scope, renderers.NewGalaxyRenderer(g), render.PriorityGalaxy)

	sc := s.script()
	loader := sequence.NewLoader(sc.Lines).Configure(sc.Prompt, sc.TypeEvery, sc.Pause)
	s.mount(st.scope, renderers.NewLoadingScreen(loader, s.content.Loading, s.content.Boot), render.PriorityOverlay)

	if d := s.cfg.Loading.Duration.Duration; d > 0 {
		st.scope.After(d, s.leaveLoading)
	} else {
		loader.OnComplete(s.leaveLoading)
	}
	loader.Mount(st.scope)
}

// leaveLoading schedules the terminal reveal on the session scope, then boots
func (s *Session) leaveLoading() {
	s.scope.After(s.cfg.Loading.TerminalDelay.Duration, func() {
		s.terminal.SetOpen(s.cfg.Terminal.Open)
	})
	s.enterBoot()
}

func (s *Session) enterBoot() {
	st := s.beginStage(StageBoot)

	g := s.newGalaxy(galaxy.Boot())
	g.Mount(st.scope)
	s.mount(st.scope, renderers.NewGalaxyRenderer(g), render.PriorityGalaxy)

	boot := sequence.NewBoot(s.audio, func() {
		s.enterMain()
		s.nav.CompleteBoot()
	})
	s.mount(st.scope, renderers.NewBootScreen(boot, s.content.Boot), render.PriorityOverlay)
	boot.Mount(st.scope)
}

func (s *Session) enterMain() {
	st := s.beginStage(StageMain)

	cosmic := s.newGalaxy(galaxy.Cosmic())
	cosmic.Mount(st.scope)
	if s.pointerSeen {
		cosmic.SetPointer(s.pointer)
	}

	pw, ph := s.orch.Buffer().PixelSize()
	starScale := cosmic.StarScale()
	m := &mainStage{
		cosmic: cosmic,
		trail:  starfield.NewEmitter(starfield.TrailSpec(starScale), s.rng.Fork()),
		sparks: starfield.NewEmitter(starfield.SparkSpec(starScale), s.rng.Fork()),
		view:   &renderers.RoomView{},
	}
	s.main = m
	st.scope.Defer(func() { s.main = nil })

	s.gauges.Mount(st.scope)
	st.scope.Every(ParticleStep, func() {
		m.trail.Step()
		m.sparks.Step()
	})
	st.scope.Every(SparkEvery, func() {
		m.sparks.Spawn(vmath.V2(s.rng.Float64()*float64(pw), s.rng.Float64()*float64(ph)))
	})

	s.mount(st.scope, renderers.NewGalaxyRenderer(cosmic), render.PriorityBackground)
	s.mount(st.scope, renderers.NewParticleRenderer(starScale, particleGlow, m.sparks, m.trail), render.PriorityParticle)
	s.mount(st.scope, renderers.NewPointerRenderer(starScale), render.PriorityPointer)
	s.mount(st.scope, renderers.NewRoomRenderer(s.nav, s.content, m.view, s.terminal, s.hits), render.PriorityRoom)
	s.mount(st.scope, renderers.NewNavPanel(s.nav, s.hits), render.PriorityUI)
	s.mount(st.scope, renderers.NewMonitorPanel(s.gauges, s.audio, s.hits), render.PriorityUI)
	s.mount(st.scope, s.terminal, render.PriorityTerminal)
}

// enterRoom rebuilds the room view on a fresh scope so timers and form state never leak across rooms
func (s *Session) enterRoom(_, to navigation.Room) {
	m := s.main
	if m == nil {
		return
	}
	if m.room != nil {
		m.room.Close()
	}
	m.room = s.stage.scope.Child(to.String())
	*m.view = renderers.RoomView{}
	if s.focus == focusForm {
		s.focus = focusTerminal
	}

	switch to {
	case navigation.Welcome:
		for _, line := range s.content.Welcome.Lines {
			tw := sequence.NewTypewriter(line.Text, line.Delay)
			tw.Mount(m.room)
			m.view.Lines = append(m.view.Lines, tw)
		}
	case navigation.LimbicSystem:
		chaos := s.content.Chaos
		g := sequence.NewGlitch(chaos.Header.Title, len(chaos.Generator.Thoughts), s.rng.Fork(), s.audio)
		g.Mount(m.room)
		m.view.Glitch = g
	case navigation.Synapse:
		m.view.Form = contact.New(m.room, s.audio)
	}
}
