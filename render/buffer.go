package render

import (
	"github.com/mattn/go-runewidth"
)

// Cell is a text overlay cell; Rune 0 means the cell shows the pixel layer
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	HasBg bool // false keeps the pixels underneath as background
	Bold  bool
}

// RenderBuffer is a compositor with a half-block pixel layer and a text cell overlay
// Every terminal cell holds two vertically stacked pixels, so the pixel layer is width x 2*height
type RenderBuffer struct {
	pixels []RGB
	cells  []Cell
	width  int // cells
	height int // cells
	clear  RGB
}

// NewRenderBuffer creates a buffer with the specified cell dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{clear: RGBBlack}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cellCount := width * height
	pixelCount := cellCount * 2
	if cap(b.cells) < cellCount {
		b.cells = make([]Cell, cellCount)
		b.pixels = make([]RGB, pixelCount)
	} else {
		b.cells = b.cells[:cellCount]
		b.pixels = b.pixels[:pixelCount]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// SetClearColor sets the pixel color Clear resets to
func (b *RenderBuffer) SetClearColor(c RGB) {
	b.clear = c
}

// Clear resets both layers using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	b.pixels[0] = b.clear
	for filled := 1; filled < len(b.pixels); filled *= 2 {
		copy(b.pixels[filled:], b.pixels[:filled])
	}
}

// Size returns cell dimensions
func (b *RenderBuffer) Size() (int, int) {
	return b.width, b.height
}

// PixelSize returns pixel layer dimensions
func (b *RenderBuffer) PixelSize() (int, int) {
	return b.width, b.height * 2
}

// ===== PIXEL LAYER =====

func (b *RenderBuffer) pixelIndex(x, y int) (int, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height*2 {
		return 0, false
	}
	return y*b.width + x, true
}

// Pixel returns the pixel color, black outside bounds
func (b *RenderBuffer) Pixel(x, y int) RGB {
	if idx, ok := b.pixelIndex(x, y); ok {
		return b.pixels[idx]
	}
	return RGBBlack
}

// SetPixel replaces a pixel
func (b *RenderBuffer) SetPixel(x, y int, c RGB) {
	if idx, ok := b.pixelIndex(x, y); ok {
		b.pixels[idx] = c
	}
}

// BlendPixel composites c over a pixel with source-over alpha
func (b *RenderBuffer) BlendPixel(x, y int, c RGB, alpha float64) {
	if alpha <= 0 {
		return
	}
	if idx, ok := b.pixelIndex(x, y); ok {
		b.pixels[idx] = Blend(b.pixels[idx], c, alpha)
	}
}

// AddPixel composites c additively, used for glows that must brighten rather than cover
func (b *RenderBuffer) AddPixel(x, y int, c RGB, alpha float64) {
	if alpha <= 0 {
		return
	}
	if idx, ok := b.pixelIndex(x, y); ok {
		b.pixels[idx] = Add(b.pixels[idx], c, alpha)
	}
}

// Veil darkens the whole pixel layer toward black by alpha
func (b *RenderBuffer) Veil(alpha float64) {
	if alpha <= 0 {
		return
	}
	for i := range b.pixels {
		b.pixels[i] = Blend(b.pixels[i], RGBBlack, alpha)
	}
}

// ===== CELL LAYER =====

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Cell returns the overlay cell at (x, y)
func (b *RenderBuffer) Cell(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// SetCell writes a rune over the pixel background
func (b *RenderBuffer) SetCell(x, y int, r rune, fg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
}

// SetCellBg writes a rune with an opaque background
func (b *RenderBuffer) SetCellBg(x, y int, r rune, fg, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Fg: fg, Bg: bg, HasBg: true}
}

// SetBold marks a written cell bold
func (b *RenderBuffer) SetBold(x, y int) {
	if b.inBounds(x, y) {
		b.cells[y*b.width+x].Bold = true
	}
}

// FillBg paints an opaque background on a cell rectangle, keeping runes
func (b *RenderBuffer) FillBg(x, y, w, h int, bg RGB, alpha float64) {
	for cy := y; cy < y+h; cy++ {
		for cx := x; cx < x+w; cx++ {
			if !b.inBounds(cx, cy) {
				continue
			}
			dst := &b.cells[cy*b.width+cx]
			under := dst.Bg
			if !dst.HasBg {
				under = Mix(b.pixels[(2*cy)*b.width+cx], b.pixels[(2*cy+1)*b.width+cx])
			}
			dst.Bg = Blend(under, bg, alpha)
			dst.HasBg = true
			if dst.Rune == 0 {
				dst.Rune = ' '
			}
		}
	}
}

// Text writes s starting at (x, y), clipped at the right edge; returns columns used
// Wide runes occupy two columns, the second holding a zero-width placeholder
func (b *RenderBuffer) Text(x, y int, s string, fg RGB) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > b.width {
			break
		}
		b.SetCell(col, y, r, fg)
		if w == 2 {
			b.SetCell(col+1, y, wideTail, fg)
		}
		col += w
	}
	return col - x
}

// wideTail marks the second column of a wide rune, skipped on flush
const wideTail = '\u200b'
