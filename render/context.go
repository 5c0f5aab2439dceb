package render

import (
	"time"

	"github.com/lixenwraith/mind-palace/vmath"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Now   time.Time
	Frame uint64

	// Screen dimensions in cells; the pixel layer is Width x 2*Height
	Width  int
	Height int

	// Pointer in pixel space; PointerSeen is false until the first mouse event
	Pointer     vmath.Vec2
	PointerSeen bool
}

// PixelCenter returns the center of the pixel layer
func (c RenderContext) PixelCenter() vmath.Vec2 {
	return vmath.V2(float64(c.Width)/2, float64(c.Height))
}

// CellToPixel maps a terminal cell to the center of its pixel pair
func CellToPixel(x, y int) vmath.Vec2 {
	return vmath.V2(float64(x)+0.5, float64(2*y)+1)
}
