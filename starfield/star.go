// Package starfield holds the point entities drawn by every visual subsystem:
// long-lived twinkling stars and short-lived decaying particles.
package starfield

import (
	"math"

	"github.com/lixenwraith/mind-palace/vmath"
)

// Bounds is a placement rectangle in surface pixel space
type Bounds struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside b grown by margin on every side
func (b Bounds) Contains(p vmath.Vec2, margin float64) bool {
	return p.X >= b.X-margin && p.X <= b.X+b.W+margin &&
		p.Y >= b.Y-margin && p.Y <= b.Y+b.H+margin
}

// Center returns the midpoint of b
func (b Bounds) Center() vmath.Vec2 {
	return vmath.V2(b.X+b.W/2, b.Y+b.H/2)
}

// StarSpec bounds the random attributes of spawned stars
type StarSpec struct {
	DepthMax      float64
	SizeMin       float64
	SizeMax       float64
	BrightnessMin float64
	BrightnessMax float64
}

// Star is one drawable point; Opacity and Flare are refreshed every tick
type Star struct {
	Pos        vmath.Vec2
	Z          float64
	Size       float64
	Brightness float64
	Phase      float64

	Opacity float64
	Flare   bool
}

// minStarSize keeps degenerate specs from producing invisible zero-size stars
const minStarSize = 0.05

// SpawnStar places a star uniformly within b with randomized depth, size, brightness and phase
func SpawnStar(rng *vmath.FastRand, b Bounds, spec StarSpec) Star {
	size := rng.Range(spec.SizeMin, spec.SizeMax)
	if size < minStarSize {
		size = minStarSize
	}
	return Star{
		Pos:        vmath.V2(b.X+rng.Float64()*b.W, b.Y+rng.Float64()*b.H),
		Z:          rng.Float64() * spec.DepthMax,
		Size:       size,
		Brightness: vmath.Clamp(rng.Range(spec.BrightnessMin, spec.BrightnessMax), 0, 1),
		Phase:      rng.Float64() * 2 * math.Pi,
	}
}

// SpawnStars creates n stars within b
func SpawnStars(rng *vmath.FastRand, b Bounds, spec StarSpec, n int) []Star {
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = SpawnStar(rng, b, spec)
	}
	return stars
}

// Twinkle advances the star's phase by step and returns brightness*(sin(phase)+1)/2
func Twinkle(s *Star, step float64) float64 {
	s.Phase += step
	if s.Phase > 2*math.Pi {
		s.Phase -= 2 * math.Pi
	}
	return TwinkleAt(s.Brightness, s.Phase)
}

// TwinkleAt is the pure opacity function behind Twinkle
func TwinkleAt(brightness, phase float64) float64 {
	return brightness * (math.Sin(phase) + 1) / 2
}
