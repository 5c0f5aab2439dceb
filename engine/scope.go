package engine

import (
	"slices"
	"time"
)

// Scope owns timer registrations for one mounted view; Close cancels all of them
// Registrations on a closed scope return an inert timer that never fires
type Scope struct {
	name     string
	sched    *Scheduler
	timers   []*Timer
	cleanups []func()
	children []*Scope
	parent   *Scope
	closed   bool
}

// NewScope creates a root scope on the scheduler
func (s *Scheduler) NewScope(name string) *Scope {
	return &Scope{name: name, sched: s}
}

// Name returns the scope label used in logs
func (sc *Scope) Name() string {
	return sc.name
}

// Scheduler returns the owning scheduler
func (sc *Scope) Scheduler() *Scheduler {
	return sc.sched
}

// Child creates a nested scope closed together with its parent
func (sc *Scope) Child(name string) *Scope {
	child := &Scope{name: sc.name + "/" + name, sched: sc.sched, parent: sc}
	if sc.closed {
		child.closed = true
		return child
	}
	sc.children = append(sc.children, child)
	return child
}

// After registers a one-shot timer owned by the scope
func (sc *Scope) After(d time.Duration, fn func()) *Timer {
	if sc.closed {
		return inert()
	}
	return sc.track(sc.sched.After(d, fn))
}

// Every registers an interval timer owned by the scope
func (sc *Scope) Every(d time.Duration, fn func()) *Timer {
	if sc.closed {
		return inert()
	}
	return sc.track(sc.sched.Every(d, fn))
}

// Frame registers a per-frame callback owned by the scope
func (sc *Scope) Frame(fn func(dt time.Duration)) *Timer {
	if sc.closed {
		return inert()
	}
	return sc.track(sc.sched.Frame(fn))
}

// Defer registers fn to run when the scope closes, in reverse order of registration
func (sc *Scope) Defer(fn func()) {
	if sc.closed {
		fn()
		return
	}
	sc.cleanups = append(sc.cleanups, fn)
}

func (sc *Scope) track(t *Timer) *Timer {
	// Drop finished handles so long-lived scopes do not grow with one-shots
	live := sc.timers[:0]
	for _, old := range sc.timers {
		if old.Active() {
			live = append(live, old)
		}
	}
	clear(sc.timers[len(live):])
	sc.timers = append(live, t)
	return t
}

// Close cancels every owned timer and child scope, then runs deferred cleanups; idempotent
func (sc *Scope) Close() {
	if sc.closed {
		return
	}
	sc.closed = true

	// Closing children detach themselves; the slice is released first
	children := sc.children
	sc.children = nil
	for _, child := range children {
		child.Close()
	}
	for _, t := range sc.timers {
		t.Cancel()
	}
	for i := len(sc.cleanups) - 1; i >= 0; i-- {
		sc.cleanups[i]()
	}
	sc.timers = nil
	sc.cleanups = nil

	if p := sc.parent; p != nil {
		p.detach(sc)
		sc.parent = nil
	}
}

func (sc *Scope) detach(child *Scope) {
	for i, c := range sc.children {
		if c == child {
			sc.children = slices.Delete(sc.children, i, i+1)
			return
		}
	}
}

// Children returns the number of open child scopes
func (sc *Scope) Children() int {
	return len(sc.children)
}

// Closed reports whether Close ran
func (sc *Scope) Closed() bool {
	return sc.closed
}

// Live returns the number of active timers directly owned by the scope
func (sc *Scope) Live() int {
	n := 0
	for _, t := range sc.timers {
		if t.Active() {
			n++
		}
	}
	return n
}

func inert() *Timer {
	return &Timer{done: true}
}
