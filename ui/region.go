package ui

import (
	"github.com/lixenwraith/mind-palace/render"
)

// Rect is an absolute cell rectangle
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether cell (x, y) is inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether r has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Region is a rectangular area of the buffer's cell layer
// All coordinates are relative to the region's origin
type Region struct {
	Buf  *render.RenderBuffer
	X, Y int // absolute position in cells
	W, H int
}

// NewRegion creates a region over buf
func NewRegion(buf *render.RenderBuffer, x, y, w, h int) Region {
	return Region{Buf: buf, X: x, Y: y, W: max(0, w), H: max(0, h)}
}

// Root returns a region covering the whole buffer
func Root(buf *render.RenderBuffer) Region {
	w, h := buf.Size()
	return NewRegion(buf, 0, 0, w, h)
}

// Sub returns a nested region with coordinates relative to parent, clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	return Region{Buf: r.Buf, X: r.X + x, Y: r.Y + y, W: max(0, w), H: max(0, h)}
}

// Inset returns a region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Pad returns a region shrunk by dx columns left and right and dy rows top and bottom
func (r Region) Pad(dx, dy int) Region {
	return r.Sub(dx, dy, r.W-2*dx, r.H-2*dy)
}

// Rect returns absolute bounds
func (r Region) Rect() Rect {
	return Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// Row returns the one-row region at y
func (r Region) Row(y int) Region {
	return r.Sub(0, y, r.W, 1)
}

// Cell writes one rune over the pixel background
func (r Region) Cell(x, y int, ch rune, fg render.RGB) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	r.Buf.SetCell(r.X+x, r.Y+y, ch, fg)
}

// CellBg writes one rune with an opaque background
func (r Region) CellBg(x, y int, ch rune, fg, bg render.RGB) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	r.Buf.SetCellBg(r.X+x, r.Y+y, ch, fg, bg)
}

// Fill tints the region background toward bg by alpha, keeping runes
func (r Region) Fill(bg render.RGB, alpha float64) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	r.Buf.FillBg(r.X, r.Y, r.W, r.H, bg, alpha)
}

// Bold marks a run of cells bold
func (r Region) Bold(x, y, n int) {
	for i := 0; i < n; i++ {
		if x+i >= 0 && x+i < r.W && y >= 0 && y < r.H {
			r.Buf.SetBold(r.X+x+i, r.Y+y)
		}
	}
}
