package renderers

import (
	"github.com/lixenwraith/mind-palace/render"
	"github.com/lixenwraith/mind-palace/ui"
)

// Panel sizes in cells
const (
	NavWidth       = 32
	NavHeight      = 5
	MonitorWidth   = 34
	MonitorHeight  = 10
	TerminalHeight = 10
	TerminalMax    = 100
	margin         = 1
)

// Layout places the fixed panels and the room area for a screen of cells
type Layout struct {
	Nav      ui.Rect
	Monitor  ui.Rect
	Room     ui.Rect
	Terminal ui.Rect
}

// ComputeLayout pins the menu top-left, the monitor top-right and the terminal bottom-center
// The room takes the space between them; it grows down when the terminal is closed
func ComputeLayout(w, h int, terminal bool) Layout {
	var l Layout
	l.Nav = ui.Rect{X: margin, Y: margin, W: min(NavWidth, w-2*margin), H: NavHeight}
	l.Monitor = ui.Rect{X: max(margin, w-MonitorWidth-margin), Y: margin, W: min(MonitorWidth, w-2*margin), H: MonitorHeight}

	tw := min(TerminalMax, w-2*margin)
	l.Terminal = ui.Rect{X: (w - tw) / 2, Y: h - TerminalHeight - margin, W: tw, H: TerminalHeight}

	top := margin + max(NavHeight, MonitorHeight) + 1
	bottom := h - margin
	if terminal {
		bottom = l.Terminal.Y - 1
	}
	l.Room = ui.Rect{X: 2 * margin, Y: top, W: max(0, w-4*margin), H: max(0, bottom-top)}
	return l
}

func region(buf *render.RenderBuffer, r ui.Rect) ui.Region {
	return ui.NewRegion(buf, r.X, r.Y, r.W, r.H)
}
