package engine

import (
	"time"
)

type timerKind uint8

const (
	kindAfter timerKind = iota
	kindEvery
	kindFrame
)

// maxCatchUp bounds how many times an interval timer fires in one Pump after a stall
const maxCatchUp = 2

// Timer is a cancellable registration on a Scheduler
type Timer struct {
	id       uint64
	kind     timerKind
	interval time.Duration
	deadline time.Time
	fire     func()
	frame    func(dt time.Duration)
	done     bool
}

// Cancel guarantees the callback never runs again, safe to call repeatedly and from inside callbacks
func (t *Timer) Cancel() {
	if t != nil {
		t.done = true
	}
}

// Active reports whether the timer can still fire
func (t *Timer) Active() bool {
	return t != nil && !t.done
}

// Scheduler runs one-shot, fixed-interval and per-frame callbacks on the caller's goroutine
// Not safe for concurrent use: the event loop owns it and is the only caller of Pump
type Scheduler struct {
	clock     TimeProvider
	timers    []*Timer
	frames    []*Timer
	nextID    uint64
	lastFrame time.Time
	pumps     uint64
}

// NewScheduler creates a scheduler reading time from clock
func NewScheduler(clock TimeProvider) *Scheduler {
	return &Scheduler{
		clock:     clock,
		timers:    make([]*Timer, 0, 32),
		frames:    make([]*Timer, 0, 8),
		lastFrame: clock.Now(),
	}
}

// Now returns the scheduler's current time
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

// After runs fn once, d after registration
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	t := s.newTimer(kindAfter, d)
	t.fire = fn
	s.timers = append(s.timers, t)
	return t
}

// Every runs fn each d until cancelled, first run is d after registration
func (s *Scheduler) Every(d time.Duration, fn func()) *Timer {
	if d <= 0 {
		d = time.Millisecond
	}
	t := s.newTimer(kindEvery, d)
	t.fire = fn
	s.timers = append(s.timers, t)
	return t
}

// Frame runs fn on every Pump with the elapsed time since the previous Pump
func (s *Scheduler) Frame(fn func(dt time.Duration)) *Timer {
	t := s.newTimer(kindFrame, 0)
	t.frame = fn
	s.frames = append(s.frames, t)
	return t
}

func (s *Scheduler) newTimer(kind timerKind, d time.Duration) *Timer {
	s.nextID++
	return &Timer{
		id:       s.nextID,
		kind:     kind,
		interval: d,
		deadline: s.clock.Now().Add(d),
	}
}

// Pump fires every due timer then every frame callback
// Registrations made during Pump are first considered on the next Pump
func (s *Scheduler) Pump() {
	now := s.clock.Now()
	s.pumps++

	due := s.timers
	for _, t := range due {
		if t.done {
			continue
		}
		switch t.kind {
		case kindAfter:
			if !now.Before(t.deadline) {
				t.done = true
				t.fire()
			}
		case kindEvery:
			for n := 0; n < maxCatchUp && !t.done && !now.Before(t.deadline); n++ {
				t.deadline = t.deadline.Add(t.interval)
				t.fire()
			}
			// Resync when far behind instead of bursting
			if now.Sub(t.deadline) > 2*t.interval {
				t.deadline = now.Add(t.interval)
			}
		}
	}

	dt := now.Sub(s.lastFrame)
	s.lastFrame = now
	frames := s.frames
	for _, f := range frames {
		if !f.done {
			f.frame(dt)
		}
	}

	s.compact()
}

// compact drops finished timers, keeping registrations made during Pump
func (s *Scheduler) compact() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.done {
			live = append(live, t)
		}
	}
	clear(s.timers[len(live):])
	s.timers = live

	liveFrames := s.frames[:0]
	for _, f := range s.frames {
		if !f.done {
			liveFrames = append(liveFrames, f)
		}
	}
	clear(s.frames[len(liveFrames):])
	s.frames = liveFrames
}

// Pending returns the number of live timers and frame callbacks
func (s *Scheduler) Pending() (timers, frames int) {
	for _, t := range s.timers {
		if !t.done {
			timers++
		}
	}
	for _, f := range s.frames {
		if !f.done {
			frames++
		}
	}
	return timers, frames
}

// Pumps returns how many times Pump ran
func (s *Scheduler) Pumps() uint64 {
	return s.pumps
}
