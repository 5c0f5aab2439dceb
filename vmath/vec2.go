package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector in surface pixel space
type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Mul scales component-wise
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns euclidean distance between v and o
func (v Vec2) Dist(o Vec2) float64 { return math.Hypot(v.X-o.X, v.Y-o.Y) }

// Rotate applies a 2D rotation by angle radians around the origin
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Polar builds a vector of length r at angle radians
func Polar(angle, r float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{X: cos * r, Y: sin * r}
}
