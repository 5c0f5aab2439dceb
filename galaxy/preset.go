// Package galaxy implements the animated star systems behind every stage:
// one parameterized subsystem instantiated for the loading screen, the boot
// sequence and the cosmic background, each owning its own rotation and stars.
package galaxy

import (
	"math"
	"time"

	"github.com/lixenwraith/mind-palace/render"
	"github.com/lixenwraith/mind-palace/starfield"
	"github.com/lixenwraith/mind-palace/vmath"
)

// Halo is an extra disc drawn around a star
type Halo struct {
	Threshold float64 // minimum brightness, 0 draws for every star
	Scale     float64 // halo radius as a multiple of star size
	Color     render.RGB
	Alpha     float64 // multiplied with the star's opacity
}

// Flare is a halo shown on a random subset of stars each tick
type Flare struct {
	Chance float64
	Scale  float64
	Color  render.RGB
	Alpha  float64
}

// Overlay is a radial gradient fill at an offset from the galaxy center
type Overlay struct {
	Offset   vmath.Vec2
	Radius   float64 // gradient radius
	Clip     float64 // filled disc radius
	Gradient render.Gradient
}

// BlackHoleSpec describes the slowly swaying vortex of the cosmic background
type BlackHoleSpec struct {
	Sway      vmath.Vec2 // sway amplitude on each axis
	Freq      vmath.Vec2 // radians per millisecond on each axis
	Radius    float64
	Intensity float64
	Spin      float64       // rotation added per spin step
	SpinEvery time.Duration // spin step interval
}

// ConstellationSpec links stars near the pointer
type ConstellationSpec struct {
	PointerRadius float64
	LinkDistance  float64
	Color         render.RGB
	Alpha         float64
}

// Preset is the full configuration of one galaxy instance
// Lengths are reference units scaled to the pixel surface by the subsystem; star sizes scale separately
type Preset struct {
	Name string

	// Spiral arms
	Arms         int
	StarsPerArm  int
	BaseRadius   float64
	RadiusSpan   float64
	Sweep        float64 // angle swept from arm root to tip
	ArmStar      starfield.StarSpec
	ArmTwinkle   float64 // phase step per tick, 0 keeps opacity at brightness
	ArmHalo      *Halo
	CullMargin   float64
	RotationStep float64

	// Full-surface background stars
	Background        int
	BackgroundStar    starfield.StarSpec
	BackgroundTwinkle float64
	BackgroundGain    float64    // opacity multiplier
	DepthFade         float64    // opacity *= 1 - depth*DepthFade
	DepthShrink       float64    // radius *= 1 - depth*DepthShrink
	Orbit             vmath.Vec2 // rotation-driven parallax amplitude
	PointerParallax   float64    // pointer-driven parallax factor
	BackgroundHalo    *Halo
	BackgroundFlare   *Flare

	// Overlays drawn back to front around the arms
	Core    *Overlay
	Nebulae []Overlay

	BlackHole     *BlackHoleSpec
	Constellation *ConstellationSpec

	// Veil darkens the finished galaxy under the stage UI
	Veil float64
}

// ArmRadiusMax returns the outermost arm radius in reference units
func (p Preset) ArmRadiusMax() float64 {
	return p.BaseRadius + p.RadiusSpan
}

var (
	cyan       = render.RgbCyan
	violet     = render.RgbViolet
	armSpec    = starfield.StarSpec{DepthMax: 100, SizeMin: 1, SizeMax: 5, BrightnessMin: 0.1, BrightnessMax: 1}
	loadingArm = starfield.StarSpec{DepthMax: 100, SizeMin: 1, SizeMax: 4, BrightnessMin: 0.2, BrightnessMax: 1}
)

func transparentAfter(s render.Stop, at float64) render.Stop {
	return render.Transparent(at, s.Color)
}

// Loading is the galaxy behind the scripted command loader
func Loading() Preset {
	coreMid := render.Rgba(0.6, 138, 43, 226, 0.4)
	nebulaMid := render.Rgba(0.5, 75, 0, 130, 0.1)
	return Preset{
		Name:         "loading",
		Arms:         4,
		StarsPerArm:  60,
		BaseRadius:   50,
		RadiusSpan:   300,
		Sweep:        1.5 * math.Pi,
		ArmStar:      loadingArm,
		ArmHalo:      &Halo{Threshold: 0.7, Scale: 3, Color: cyan, Alpha: 0.3},
		CullMargin:   50,
		RotationStep: 0.005,

		Background:      150,
		BackgroundStar:  starfield.BackgroundSpec,
		BackgroundGain:  1,
		DepthFade:       0.3,
		DepthShrink:     0.5,
		Orbit:           vmath.V2(20, 10),
		BackgroundFlare: &Flare{Chance: 0.01, Scale: 2, Color: cyan, Alpha: 0.5},

		Core: &Overlay{
			Radius: 100,
			Clip:   80,
			Gradient: render.NewGradient(
				render.Rgba(0, 255, 255, 255, 0.8),
				render.Rgba(0.3, 79, 193, 255, 0.6),
				coreMid,
				transparentAfter(coreMid, 1),
			),
		},
		Nebulae: []Overlay{{
			Offset: vmath.V2(-100, 50),
			Radius: 200,
			Clip:   150,
			Gradient: render.NewGradient(
				render.Rgba(0, 138, 43, 226, 0.2),
				nebulaMid,
				transparentAfter(nebulaMid, 1),
			),
		}},
		Veil: 0.5,
	}
}

// Boot is the larger, faster galaxy behind the boot progress bar
func Boot() Preset {
	coreRim := render.Rgba(0.8, 75, 0, 130, 0.3)
	neb1 := render.Rgba(0.5, 75, 0, 130, 0.15)
	neb2 := render.Rgba(0.5, 0, 100, 200, 0.12)
	return Preset{
		Name:         "boot",
		Arms:         4,
		StarsPerArm:  100,
		BaseRadius:   80,
		RadiusSpan:   400,
		Sweep:        2 * math.Pi,
		ArmStar:      armSpec,
		ArmTwinkle:   0.03,
		ArmHalo:      &Halo{Threshold: 0.7, Scale: 4, Color: cyan, Alpha: 0.3},
		CullMargin:   100,
		RotationStep: 0.008,

		Background:        200,
		BackgroundStar:    starfield.BackgroundSpec,
		BackgroundTwinkle: 0.05,
		BackgroundGain:    0.8,
		DepthShrink:       0.5,
		Orbit:             vmath.V2(30, 15),
		BackgroundFlare:   &Flare{Chance: 0.05, Scale: 3, Color: cyan, Alpha: 0.4},

		Core: &Overlay{
			Radius: 120,
			Clip:   120,
			Gradient: render.NewGradient(
				render.Rgba(0, 255, 255, 255, 0.9),
				render.Rgba(0.2, 79, 193, 255, 0.7),
				render.Rgba(0.5, 138, 43, 226, 0.5),
				coreRim,
				transparentAfter(coreRim, 1),
			),
		},
		Nebulae: []Overlay{
			{
				Offset: vmath.V2(-150, 80),
				Radius: 250,
				Clip:   200,
				Gradient: render.NewGradient(
					render.Rgba(0, 138, 43, 226, 0.3),
					neb1,
					transparentAfter(neb1, 1),
				),
			},
			{
				Offset: vmath.V2(120, -60),
				Radius: 180,
				Clip:   150,
				Gradient: render.NewGradient(
					render.Rgba(0, 30, 144, 255, 0.25),
					neb2,
					transparentAfter(neb2, 1),
				),
			},
		},
		Veil: 0.6,
	}
}

// Cosmic is the armless starfield behind the main view: pointer parallax, constellation links and a black hole
func Cosmic() Preset {
	return Preset{
		Name: "cosmic",

		Background:        200,
		BackgroundStar:    starfield.BackgroundSpec,
		BackgroundTwinkle: 0.05,
		BackgroundGain:    0.8,
		PointerParallax:   0.1,
		BackgroundHalo:    &Halo{Threshold: 0.7, Scale: 3, Color: violet, Alpha: 0.3},

		BlackHole: &BlackHoleSpec{
			Sway:      vmath.V2(100, 50),
			Freq:      vmath.V2(0.0005, 0.0003),
			Radius:    200,
			Intensity: 0.3,
			Spin:      0.01,
			SpinEvery: 50 * time.Millisecond,
		},
		Constellation: &ConstellationSpec{
			PointerRadius: 200,
			LinkDistance:  150,
			Color:         violet,
			Alpha:         0.2,
		},
	}
}

// BlackHoleGradient returns the vortex ramp for the given intensity
func BlackHoleGradient(intensity float64) render.Gradient {
	mid := render.Rgba(0.6, 59, 130, 246, intensity*0.1)
	return render.NewGradient(
		render.Rgba(0, 0, 0, 0, intensity),
		render.Rgba(0.3, 139, 92, 246, intensity*0.3),
		mid,
		transparentAfter(mid, 1),
	)
}

// ByName returns a preset by its Name
func ByName(name string) (Preset, bool) {
	switch name {
	case "loading":
		return Loading(), true
	case "boot":
		return Boot(), true
	case "cosmic":
		return Cosmic(), true
	}
	return Preset{}, false
}

