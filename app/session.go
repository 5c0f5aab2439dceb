// Package app wires stages, input routing and the render pipeline of one interactive session.
// Everything runs on the loop goroutine; the only other goroutine polls terminal events.
package app

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/lixenwraith/mind-palace/audio"
	"github.com/lixenwraith/mind-palace/config"
	"github.com/lixenwraith/mind-palace/content"
	"github.com/lixenwraith/mind-palace/core"
	"github.com/lixenwraith/mind-palace/engine"
	"github.com/lixenwraith/mind-palace/monitor"
	"github.com/lixenwraith/mind-palace/navigation"
	"github.com/lixenwraith/mind-palace/render"
	"github.com/lixenwraith/mind-palace/render/renderers"
	"github.com/lixenwraith/mind-palace/shell"
	"github.com/lixenwraith/mind-palace/status"
	"github.com/lixenwraith/mind-palace/vmath"
)

// Session owns every long-lived resource of one run
type Session struct {
	ID      uuid.UUID
	cfg     *config.Config
	content *content.Content
	screen  tcell.Screen

	clock *engine.PausableClock
	sched *engine.Scheduler
	scope *engine.Scope
	rng   *vmath.FastRand
	audio *audio.Engine
	reg   *status.Registry

	orch   *render.Orchestrator
	hits   *renderers.HitMap
	width  int
	height int
	frame  uint64

	pointer     vmath.Vec2
	pointerSeen bool
	buttons     tcell.ButtonMask
	quit        bool

	nav      *navigation.Navigator
	shell    *shell.Shell
	gauges   *monitor.Gauges
	terminal *renderers.TerminalPanel
	debug    *renderers.DebugRenderer
	focus    inputFocus

	stage *stage
	main  *mainStage
}

// NewSession builds a session drawing to screen; out is the audio device and may be nil
// clock defaults to the monotonic wall clock; nothing is mounted until Start
func NewSession(cfg *config.Config, c *content.Content, screen tcell.Screen, out audio.Output, clock engine.TimeProvider) *Session {
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(clock.Now().UnixNano())
	}

	acfg := cfg.Audio.Engine()
	audio.ApplyEnv(&acfg)

	s := &Session{
		ID:      uuid.Must(uuid.NewV7()),
		cfg:     cfg,
		content: c,
		screen:  screen,
		clock:   engine.NewPausableClock(clock),
		rng:     vmath.NewFastRand(seed),
		audio:   audio.NewEngine(acfg, out),
		reg:     status.NewRegistry(),
		hits:    renderers.NewHitMap(),
	}
	s.sched = engine.NewScheduler(s.clock)
	s.scope = s.sched.NewScope("session")

	s.width, s.height = screen.Size()
	s.orch = render.NewOrchestrator(s.width, s.height)

	transcript := navigation.NewTranscript(cfg.Terminal.Transcript)
	s.nav = navigation.NewNavigator(transcript, s.audio, s.rng.Fork())
	s.nav.OnEnter(s.enterRoom)
	s.shell = shell.New(transcript, s.audio, s.audio)
	s.gauges = monitor.NewGauges(s.rng.Fork(), s.reg)
	s.terminal = renderers.NewTerminalPanel(s.shell, s.nav, c.Prompt(), c.Terminal.Placeholder, s.hits)
	s.debug = renderers.NewDebugRenderer(s.reg)
	if cfg.Debug {
		s.debug.Toggle()
	}
	s.orch.Register(s.debug, render.PriorityDebug)

	s.reg.Strings.Get("session.id").Store(s.ID.String())
	s.reg.Ints.Get("session.seed").Store(int64(seed))
	return s
}

// Start enables audio when configured and mounts the first stage
func (s *Session) Start() {
	log.Printf("session %s: start %dx%d", s.ID, s.width, s.height)
	if s.cfg.Audio.Enabled {
		if err := s.audio.Enable(); err != nil {
			log.Printf("session: audio: %v", err)
		}
	}
	if s.cfg.SkipIntro {
		s.terminal.SetOpen(s.cfg.Terminal.Open)
		s.enterMain()
		s.nav.CompleteBoot()
		return
	}
	s.enterLoading()
}

// Step runs due timers, then renders and presents one frame
func (s *Session) Step() {
	s.sched.Pump()
	s.frame++
	s.hits.Reset()
	s.orch.Present(s.renderContext(), s.screen)
	s.publish()
}

func (s *Session) renderContext() render.RenderContext {
	return render.RenderContext{
		Now:         s.sched.Now(),
		Frame:       s.frame,
		Width:       s.width,
		Height:      s.height,
		Pointer:     s.pointer,
		PointerSeen: s.pointerSeen,
	}
}

func (s *Session) publish() {
	s.reg.Ints.Get("frame").Store(int64(s.frame))
	s.reg.Strings.Get("stage").Store(s.Stage().String())
	s.reg.Strings.Get("room").Store(s.nav.Room().String())
	s.reg.Bools.Get("audio.enabled").Store(s.audio.Enabled())
	s.reg.Bools.Get("clock.paused").Store(s.clock.IsPaused())
	timers, frames := s.sched.Pending()
	s.reg.Ints.Get("sched.timers").Store(int64(timers))
	s.reg.Ints.Get("sched.frames").Store(int64(frames))
	if m := s.main; m != nil {
		s.reg.Ints.Get("particles.trail").Store(int64(m.trail.Len()))
		s.reg.Ints.Get("particles.sparks").Store(int64(m.sparks.Len()))
	}
}

// Run drives the session until ctx ends or the user quits
// Terminal events arrive from a poller goroutine; frames tick at the configured rate
func (s *Session) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	ticker := time.NewTicker(s.cfg.FrameInterval())
	defer ticker.Stop()

	s.Start()
	s.Step()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !s.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			s.Step()
		}
	}
}

// Close tears down every stage and releases the audio device; idempotent
func (s *Session) Close() {
	if s.scope.Closed() {
		return
	}
	s.scope.Close()
	s.audio.Close()
	log.Printf("session %s: closed after %d frames", s.ID, s.frame)
}

// Stage returns the mounted stage, StageNone before Start
func (s *Session) Stage() StageKind {
	if s.stage == nil {
		return StageNone
	}
	return s.stage.kind
}

func (s *Session) Navigator() *navigation.Navigator { return s.nav }
func (s *Session) Shell() *shell.Shell { return s.shell }
func (s *Session) Audio() *audio.Engine { return s.audio }
func (s *Session) Gauges() *monitor.Gauges { return s.gauges }
func (s *Session) Terminal() *renderers.TerminalPanel { return s.terminal }
func (s *Session) Debug() *renderers.DebugRenderer { return s.debug }
func (s *Session) Registry() *status.Registry { return s.reg }
func (s *Session) Hits() *renderers.HitMap { return s.hits }
func (s *Session) Scheduler() *engine.Scheduler { return s.sched }
func (s *Session) Clock() *engine.PausableClock { return s.clock }
func (s *Session) Orchestrator() *render.Orchestrator { return s.orch }
func (s *Session) Frame() uint64 { return s.frame }
func (s *Session) Quit() bool { return s.quit }

// Room returns the live state of the current room, nil outside the main stage
func (s *Session) Room() *renderers.RoomView {
	if s.main == nil {
		return nil
	}
	return s.main.view
}

// Pointer returns the last pointer position in pixel space
func (s *Session) Pointer() (vmath.Vec2, bool) {
	return s.pointer, s.pointerSeen
}
