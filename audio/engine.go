// Package audio synthesizes the feedback tones and the ambient drone.
// The output device is opened lazily on first enable and at most once per engine.
package audio

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// ErrNoOutput is returned when the audio device cannot be opened
var ErrNoOutput = errors.New("audio output unavailable")

// Player plays fire-and-forget tones; Engine is the production implementation
type Player interface {
	Play(t Tone) bool
}

type discard struct{}

func (discard) Play(Tone) bool { return false }

// Discard is a Player that drops every tone
var Discard Player = discard{}

// Output is the sink streams are played into
type Output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Lock()
	Unlock()
	Close()
}

// speakerOutput plays through the system device
type speakerOutput struct{}

// SpeakerOutput returns the system audio device
func SpeakerOutput() Output { return speakerOutput{} }

func (speakerOutput) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}
func (speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }
func (speakerOutput) Lock() { speaker.Lock() }
func (speakerOutput) Unlock() { speaker.Unlock() }
func (speakerOutput) Close() { speaker.Close() }

// Engine owns the session's single audio resource
// Enable opens the output on first use; later enables reuse it
type Engine struct {
	mu  sync.Mutex
	cfg Config
	out Output

	enabled     bool
	initialized bool
	silent      bool // init failed, tones are dropped
	inits       int
	closed      bool

	mixer *beep.Mixer
	drone *beep.Ctrl
}

// NewEngine creates a disabled engine; nothing touches out until Enable
func NewEngine(cfg Config, out Output) *Engine {
	return &Engine{cfg: cfg, out: out}
}

// Enable turns audio on, initializing the output exactly once
// An init failure is returned once; the engine then stays enabled but silent
func (e *Engine) Enable() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.enabled = true

	if !e.initialized {
		e.initialized = true
		if err := e.init(); err != nil {
			e.silent = true
			return err
		}
	}
	e.setDronePaused(false)
	return nil
}

// init opens the output and starts the mixer with the paused drone
func (e *Engine) init() error {
	e.inits++
	if e.out == nil {
		return ErrNoOutput
	}
	rate := beep.SampleRate(e.cfg.SampleRate)
	if err := e.out.Init(rate, rate.N(e.cfg.Buffer)); err != nil {
		return fmt.Errorf("%w: %w", ErrNoOutput, err)
	}

	e.mixer = &beep.Mixer{}
	if e.cfg.DroneGain > 0 {
		e.drone = &beep.Ctrl{Streamer: DroneStreamer(e.cfg), Paused: true}
		e.mixer.Add(e.drone)
	}
	e.out.Play(e.mixer)
	return nil
}

// Disable mutes tones and pauses the drone; the output stays open
func (e *Engine) Disable() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enabled = false
	e.setDronePaused(true)
}

func (e *Engine) setDronePaused(paused bool) {
	if e.drone == nil {
		return
	}
	e.out.Lock()
	e.drone.Paused = paused
	e.out.Unlock()
}

// Toggle flips the enabled state and returns the new state
func (e *Engine) Toggle() (bool, error) {
	if e.Enabled() {
		e.Disable()
		return false, nil
	}
	err := e.Enable()
	return true, err
}

// Play queues t; false when disabled, silent or closed
func (e *Engine) Play(t Tone) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.enabled || e.silent || e.closed || e.mixer == nil {
		return false
	}
	if t.Freq <= 0 || t.Duration <= 0 {
		return false
	}
	s := ToneStreamer(t, e.cfg)
	e.out.Lock()
	e.mixer.Add(s)
	e.out.Unlock()
	return true
}

// Close stops every stream and releases the device
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.closed = true
	e.enabled = false
	if e.mixer != nil {
		e.out.Lock()
		e.mixer.Clear()
		e.out.Unlock()
		e.out.Close()
	}
}

// Enabled reports the user-facing toggle state
func (e *Engine) Enabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.enabled
}

// Initialized reports whether the output was ever opened or attempted
func (e *Engine) Initialized() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.initialized
}

// Silent reports whether initialization failed
func (e *Engine) Silent() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.silent
}

// Inits returns how many times the output was initialized, never more than one
func (e *Engine) Inits() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.inits
}

// DronePlaying reports whether the ambient drone is audible
func (e *Engine) DronePlaying() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.drone != nil && !e.drone.Paused
}

// Active returns the number of streams in the mixer, drone included
func (e *Engine) Active() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.mixer == nil {
		return 0
	}
	e.out.Lock()
	defer e.out.Unlock()
	return e.mixer.Len()
}
