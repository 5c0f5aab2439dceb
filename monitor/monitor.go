// Package monitor simulates the cosmetic system gauges shown in the galaxy monitor panel.
package monitor

import (
	"time"

	"github.com/lixenwraith/mind-palace/engine"
	"github.com/lixenwraith/mind-palace/status"
	"github.com/lixenwraith/mind-palace/vmath"
)

// Interval between gauge refreshes
const Interval = 2 * time.Second

// CoffeeLow is the coffee level below which the gauge shows as critical
const CoffeeLow = 30

// Stats holds the four gauge percentages, each in [0, 100]
type Stats struct {
	Creativity  float64
	Coffee      float64
	Inspiration float64
	Cosmic      float64
}

// Initial returns the values shown before the first refresh
func Initial() Stats {
	return Stats{Creativity: 87, Coffee: 23, Inspiration: 94, Cosmic: 78}
}

// Next derives the following sample: three gauges are redrawn from their bands, coffee drifts downward
func Next(s Stats, rng *vmath.FastRand) Stats {
	return Stats{
		Creativity:  80 + rng.Float64()*20,
		Coffee:      vmath.Clamp(s.Coffee+(rng.Float64()-0.7)*5, 0, 100),
		Inspiration: 85 + rng.Float64()*15,
		Cosmic:      70 + rng.Float64()*30,
	}
}

// CoffeeCritical reports whether the coffee gauge renders in the warning color
func (s Stats) CoffeeCritical() bool {
	return s.Coffee < CoffeeLow
}

// Gauges owns the live sample and its refresh timer
type Gauges struct {
	stats Stats
	rng   *vmath.FastRand
	steps int

	creativity  *status.AtomicFloat
	coffee      *status.AtomicFloat
	inspiration *status.AtomicFloat
	cosmic      *status.AtomicFloat
}

// NewGauges starts from Initial and publishes every sample to reg when non-nil
func NewGauges(rng *vmath.FastRand, reg *status.Registry) *Gauges {
	g := &Gauges{stats: Initial(), rng: rng}
	if reg != nil {
		g.creativity = reg.Floats.Get("monitor.creativity")
		g.coffee = reg.Floats.Get("monitor.coffee")
		g.inspiration = reg.Floats.Get("monitor.inspiration")
		g.cosmic = reg.Floats.Get("monitor.cosmic")
	}
	g.publish()
	return g
}

// Mount refreshes the gauges every Interval until scope closes
func (g *Gauges) Mount(scope *engine.Scope) *engine.Timer {
	return scope.Every(Interval, g.Step)
}

// Step advances to the next sample
func (g *Gauges) Step() {
	g.stats = Next(g.stats, g.rng)
	g.steps++
	g.publish()
}

func (g *Gauges) publish() {
	if g.creativity == nil {
		return
	}
	g.creativity.SetPercent(g.stats.Creativity)
	g.coffee.SetPercent(g.stats.Coffee)
	g.inspiration.SetPercent(g.stats.Inspiration)
	g.cosmic.SetPercent(g.stats.Cosmic)
}

// Stats returns the current sample
func (g *Gauges) Stats() Stats {
	return g.stats
}

// Steps returns how many refreshes ran
func (g *Gauges) Steps() int {
	return g.steps
}
