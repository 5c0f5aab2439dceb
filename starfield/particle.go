package starfield

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/mind-palace/vmath"
)

// Particle is a transient point owned by the emitter that spawned it
type Particle struct {
	ID    uint64
	Pos   vmath.Vec2
	Vel   vmath.Vec2
	Life  float64
	Size  float64
	Color colorful.Color
}

// EmitterSpec configures spawn randomization and per-step decay
type EmitterSpec struct {
	Cap     int     // buffer cap, oldest dropped first
	Decay   float64 // life lost per step
	Shrink  float64 // size multiplier per step
	Jitter  float64 // spawn offset range, +-Jitter on each axis
	Speed   float64 // velocity range, +-Speed on each axis
	SizeMin float64
	SizeMax float64
	Palette []colorful.Color
}

// Advance applies one decay step; ok is false once life reaches zero and the particle must be dropped
func Advance(p Particle, spec EmitterSpec) (Particle, bool) {
	p.Pos = p.Pos.Add(p.Vel)
	p.Life -= spec.Decay
	p.Size *= spec.Shrink
	if p.Life <= 0 {
		return p, false
	}
	return p, true
}

// StepsToExpire returns how many Advance calls retire a fresh particle
func StepsToExpire(spec EmitterSpec) int {
	if spec.Decay <= 0 {
		return -1
	}
	steps := 0
	for life := 1.0; life > 0; life -= spec.Decay {
		steps++
	}
	return steps
}

// Emitter owns a capped FIFO buffer of particles
type Emitter struct {
	spec      EmitterSpec
	rng       *vmath.FastRand
	particles []Particle
	nextID    uint64
}

// NewEmitter creates an emitter drawing randomness from rng
func NewEmitter(spec EmitterSpec, rng *vmath.FastRand) *Emitter {
	return &Emitter{
		spec:      spec,
		rng:       rng,
		particles: make([]Particle, 0, spec.Cap),
	}
}

// Spawn creates a particle near origin and appends it, dropping the oldest past the cap
func (e *Emitter) Spawn(origin vmath.Vec2) Particle {
	e.nextID++
	p := Particle{
		ID: e.nextID,
		Pos: origin.Add(vmath.V2(
			e.rng.Range(-e.spec.Jitter, e.spec.Jitter),
			e.rng.Range(-e.spec.Jitter, e.spec.Jitter),
		)),
		Vel: vmath.V2(
			e.rng.Range(-e.spec.Speed, e.spec.Speed),
			e.rng.Range(-e.spec.Speed, e.spec.Speed),
		),
		Life: 1,
		Size: e.rng.Range(e.spec.SizeMin, e.spec.SizeMax),
	}
	if n := len(e.spec.Palette); n > 0 {
		p.Color = e.spec.Palette[e.rng.Intn(n)]
	}

	if e.spec.Cap > 0 && len(e.particles) >= e.spec.Cap {
		drop := len(e.particles) - e.spec.Cap + 1
		e.particles = append(e.particles[:0], e.particles[drop:]...)
	}
	e.particles = append(e.particles, p)
	return p
}

// Step advances every particle and compacts expired ones in place, returns survivors
func (e *Emitter) Step() int {
	alive := e.particles[:0]
	for _, p := range e.particles {
		if next, ok := Advance(p, e.spec); ok {
			alive = append(alive, next)
		}
	}
	e.particles = alive
	return len(e.particles)
}

// Particles returns the live buffer, callers must not retain it across Step
func (e *Emitter) Particles() []Particle {
	return e.particles
}

// Len returns the number of live particles
func (e *Emitter) Len() int {
	return len(e.particles)
}

// Reset drops every particle
func (e *Emitter) Reset() {
	e.particles = e.particles[:0]
}
