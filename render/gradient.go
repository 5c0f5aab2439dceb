package render

import (
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Stop is one color stop of a radial gradient, At in [0, 1]
type Stop struct {
	At    float64
	Color colorful.Color
	Alpha float64
}

// Gradient is a concentric multi-stop ramp from center (t=0) to rim (t=1)
type Gradient struct {
	stops []Stop
}

// NewGradient sorts stops by offset; a gradient with no stops is fully transparent
func NewGradient(stops ...Stop) Gradient {
	s := make([]Stop, len(stops))
	copy(s, stops)
	sort.SliceStable(s, func(i, j int) bool { return s[i].At < s[j].At })
	return Gradient{stops: s}
}

// Transparent returns a stop at offset that keeps the previous hue and fades alpha to zero
func Transparent(at float64, like colorful.Color) Stop {
	return Stop{At: at, Color: like, Alpha: 0}
}

// Stops returns the sorted stops
func (g Gradient) Stops() []Stop {
	return g.stops
}

// Sample returns color and alpha at t, clamping outside the stop range
func (g Gradient) Sample(t float64) (RGB, float64) {
	n := len(g.stops)
	if n == 0 {
		return RGBBlack, 0
	}
	if t <= g.stops[0].At {
		return FromColorful(g.stops[0].Color), g.stops[0].Alpha
	}
	if t >= g.stops[n-1].At {
		return FromColorful(g.stops[n-1].Color), g.stops[n-1].Alpha
	}

	i := sort.Search(n, func(i int) bool { return g.stops[i].At > t })
	lo, hi := g.stops[i-1], g.stops[i]
	span := hi.At - lo.At
	if span <= 0 {
		return FromColorful(hi.Color), hi.Alpha
	}
	f := (t - lo.At) / span
	return FromColorful(lo.Color.BlendRgb(hi.Color, f)), lo.Alpha + (hi.Alpha-lo.Alpha)*f
}

// ScaleAlpha returns a copy with every stop's alpha multiplied by k
func (g Gradient) ScaleAlpha(k float64) Gradient {
	s := make([]Stop, len(g.stops))
	for i, st := range g.stops {
		st.Alpha *= k
		s[i] = st
	}
	return Gradient{stops: s}
}
