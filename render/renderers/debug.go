package renderers

import (
	"github.com/lixenwraith/mind-palace/render"
	"github.com/lixenwraith/mind-palace/status"
	"github.com/lixenwraith/mind-palace/ui"
)

const debugWidth = 40

// DebugRenderer lists every registry metric in the bottom-left corner
type DebugRenderer struct {
	reg     *status.Registry
	visible bool
}

// NewDebugRenderer creates a hidden overlay over reg
func NewDebugRenderer(reg *status.Registry) *DebugRenderer {
	return &DebugRenderer{reg: reg}
}

func (r *DebugRenderer) IsVisible() bool { return r.visible }

// Toggle flips visibility and returns the new state
func (r *DebugRenderer) Toggle() bool {
	r.visible = !r.visible
	return r.visible
}

// Render draws one metric per row
func (r *DebugRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	metrics := r.reg.Snapshot()
	h := min(len(metrics)+2, ctx.Height)
	box := ui.NewRegion(buf, 0, ctx.Height-h, min(debugWidth, ctx.Width), h)
	box.Fill(render.RGBBlack, 0.9)
	inner := box.Card("DEBUG", ui.LineSingle, render.RgbYellow)
	for i, m := range metrics {
		inner.Text(0, i, m.Key, render.RgbGray)
		inner.TextRight(i, m.Value, render.RGBWhite)
	}
}
