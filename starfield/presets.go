package starfield

import (
	"github.com/lucasb-eyer/go-colorful"
)

var (
	Green  = mustHex("#22c55e")
	Violet = mustHex("#8b5cf6")
	Blue   = mustHex("#3b82f6")
	Pink   = mustHex("#ec4899")
	Red    = mustHex("#ef4444")
)

// mustHex parses a "#rrggbb" palette literal, panicking on malformed input
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("starfield: " + err.Error())
	}
	return c
}

// TrailSpec is the cursor trail emitter; particles hold position and only fade
func TrailSpec(scale float64) EmitterSpec {
	return EmitterSpec{
		Cap:     16,
		Decay:   0.02,
		Shrink:  0.98,
		Jitter:  10 * scale,
		SizeMin: 1,
		SizeMax: 4,
		Palette: []colorful.Color{Green, Violet, Blue, Pink},
	}
}

// SparkSpec is the ambient neural spark emitter; sparks drift and fade slowly
func SparkSpec(scale float64) EmitterSpec {
	return EmitterSpec{
		Cap:     31,
		Decay:   0.008,
		Shrink:  0.995,
		Speed:   1 * scale,
		SizeMin: 1,
		SizeMax: 3,
		Palette: []colorful.Color{Green, Violet, Blue, Pink, Red},
	}
}

// BackgroundSpec is the full-viewport star population
var BackgroundSpec = StarSpec{
	DepthMax:      1000,
	SizeMin:       0.5,
	SizeMax:       2.5,
	BrightnessMin: 0,
	BrightnessMax: 1,
}
