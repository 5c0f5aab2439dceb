package renderers

import (
	"github.com/lixenwraith/mind-palace/render"
)

// PointerRadius is the glow gradient radius at reference scale
const PointerRadius = 192

// pointerOpacity dims the whole glow
const pointerOpacity = 0.25

var pointerGlow = render.NewGradient(
	render.Rgba(0, 139, 92, 246, 0.6),
	render.Rgba(0.5, 59, 130, 246, 0.3),
	render.Rgba(0.7, 59, 130, 246, 0),
).ScaleAlpha(pointerOpacity)

// PointerRenderer draws a soft violet glow under the mouse once it has moved
type PointerRenderer struct {
	radius float64
}

// NewPointerRenderer creates the glow for a surface with geometry scale
func NewPointerRenderer(scale float64) *PointerRenderer {
	return &PointerRenderer{radius: PointerRadius * scale}
}

// Render draws the glow at ctx.Pointer
func (r *PointerRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if !ctx.PointerSeen || r.radius <= 0 {
		return
	}
	buf.RadialFill(ctx.Pointer, r.radius, r.radius*0.7, pointerGlow)
}
