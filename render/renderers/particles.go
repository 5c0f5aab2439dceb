package renderers

import (
	"github.com/lixenwraith/mind-palace/render"
	"github.com/lixenwraith/mind-palace/starfield"
)

// ParticleRenderer draws emitter particles as glowing discs faded by remaining life
type ParticleRenderer struct {
	emitters []*starfield.Emitter
	scale    float64 // particle size to pixel radius
	glow     float64 // halo radius as a multiple of size
}

// NewParticleRenderer draws every emitter in registration order
func NewParticleRenderer(scale, glow float64, emitters ...*starfield.Emitter) *ParticleRenderer {
	return &ParticleRenderer{emitters: emitters, scale: scale, glow: glow}
}

// Render draws all live particles
func (r *ParticleRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, e := range r.emitters {
		for _, p := range e.Particles() {
			c := render.FromColorful(p.Color)
			radius := p.Size * r.scale
			if r.glow > 0 {
				buf.Glow(p.Pos, radius*r.glow, c, p.Life*0.25)
			}
			buf.Disc(p.Pos, radius, c, p.Life)
		}
	}
}
