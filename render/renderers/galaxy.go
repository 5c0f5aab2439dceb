package renderers

import (
	"math"

	"github.com/lixenwraith/mind-palace/galaxy"
	"github.com/lixenwraith/mind-palace/render"
	"github.com/lixenwraith/mind-palace/vmath"
)

// vortexSpokes is the number of faint arms drawn inside the black hole
const vortexSpokes = 3

// GalaxyRenderer draws one galaxy subsystem back to front:
// background stars, constellation, black hole, core, arms, nebulae, veil
type GalaxyRenderer struct {
	sys *galaxy.Subsystem
}

// NewGalaxyRenderer creates a renderer for sys
func NewGalaxyRenderer(sys *galaxy.Subsystem) *GalaxyRenderer {
	return &GalaxyRenderer{sys: sys}
}

// Render draws the subsystem into the pixel layer
func (r *GalaxyRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	p := r.sys.Preset()

	r.renderBackground(buf, p)
	r.renderConstellation(buf, p)
	r.renderBlackHole(buf, p)

	if p.Core != nil {
		r.renderOverlay(buf, *p.Core)
	}
	r.renderArms(buf, p)
	for _, n := range p.Nebulae {
		r.renderOverlay(buf, n)
	}

	if p.Veil > 0 {
		buf.Veil(p.Veil)
	}
}

func (r *GalaxyRenderer) renderBackground(buf *render.RenderBuffer, p galaxy.Preset) {
	stars := r.sys.Background()
	for i := range stars {
		star := &stars[i]
		if star.Opacity <= 0 {
			continue
		}
		pos := r.sys.BackgroundPos(star)
		radius := r.sys.BackgroundRadius(star)
		buf.Disc(pos, radius, render.RGBWhite, star.Opacity)

		if h := p.BackgroundHalo; h != nil && star.Brightness > h.Threshold {
			buf.Glow(pos, radius*h.Scale, h.Color, star.Opacity*h.Alpha)
		}
		if f := p.BackgroundFlare; f != nil && star.Flare {
			buf.Glow(pos, radius*f.Scale, f.Color, star.Brightness*f.Alpha)
		}
	}
}

func (r *GalaxyRenderer) renderConstellation(buf *render.RenderBuffer, p galaxy.Preset) {
	cs := p.Constellation
	if cs == nil {
		return
	}
	for _, l := range r.sys.Constellation() {
		buf.Line(l.From, l.To, cs.Color, cs.Alpha)
	}
}

func (r *GalaxyRenderer) renderBlackHole(buf *render.RenderBuffer, p galaxy.Preset) {
	if p.BlackHole == nil {
		return
	}
	bh := r.sys.BlackHole()
	if bh.Radius <= 0 {
		return
	}
	buf.RadialFill(bh.Center, bh.Radius, bh.Radius, galaxy.BlackHoleGradient(bh.Intensity))

	// Spokes curve outward from the center and turn with the spin accumulator
	const segments = 8
	for s := 0; s < vortexSpokes; s++ {
		base := bh.Rotation + float64(s)*2*math.Pi/vortexSpokes
		prev := bh.Center
		for i := 1; i <= segments; i++ {
			t := float64(i) / segments
			next := bh.Center.Add(vmath.Polar(base+t*math.Pi/2, t*bh.Radius*0.6))
			buf.Line(prev, next, render.RgbViolet, bh.Intensity*0.3*(1-t))
			prev = next
		}
	}
}

func (r *GalaxyRenderer) renderOverlay(buf *render.RenderBuffer, o galaxy.Overlay) {
	scale := r.sys.Scale()
	center := r.sys.Center().Add(o.Offset.Scale(scale))
	buf.RadialFill(center, o.Radius*scale, o.Clip*scale, o.Gradient)
}

func (r *GalaxyRenderer) renderArms(buf *render.RenderBuffer, p galaxy.Preset) {
	for _, arm := range r.sys.Arms() {
		for i := range arm.Stars {
			star := &arm.Stars[i]
			pos := r.sys.ArmStarPos(star)
			if !r.sys.InView(pos) {
				continue
			}
			radius := r.sys.ArmStarRadius(star)
			buf.Disc(pos, radius, render.RGBWhite, star.Opacity)
			if h := p.ArmHalo; h != nil && star.Brightness > h.Threshold {
				buf.Glow(pos, radius*h.Scale, h.Color, star.Opacity*h.Alpha)
			}
		}
	}
}
