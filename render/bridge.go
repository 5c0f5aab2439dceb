package render

import "github.com/gdamore/tcell/v2"

// upperHalf shows the top pixel as foreground and the bottom pixel as background
const upperHalf = '▀'

// RGBToTcell converts RGB to tcell.Color
func RGBToTcell(rgb RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// TcellToRGB converts tcell.Color to RGB, ColorDefault maps to black
func TcellToRGB(c tcell.Color) RGB {
	if c == tcell.ColorDefault {
		return RGBBlack
	}
	r, g, b := c.RGB()
	return RGB{uint8(r), uint8(g), uint8(b)}
}

// Flush composes both layers onto screen; the caller calls Show
func (b *RenderBuffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			top := b.pixels[(2*y)*b.width+x]
			bottom := b.pixels[(2*y+1)*b.width+x]
			cell := b.cells[y*b.width+x]

			switch {
			case cell.Rune == wideTail:
				continue
			case cell.Rune != 0:
				bg := cell.Bg
				if !cell.HasBg {
					bg = Mix(top, bottom)
				}
				style := tcell.StyleDefault.Foreground(RGBToTcell(cell.Fg)).Background(RGBToTcell(bg)).Bold(cell.Bold)
				screen.SetContent(x, y, cell.Rune, nil, style)
			case top == bottom:
				style := tcell.StyleDefault.Background(RGBToTcell(top))
				screen.SetContent(x, y, ' ', nil, style)
			default:
				style := tcell.StyleDefault.Foreground(RGBToTcell(top)).Background(RGBToTcell(bottom))
				screen.SetContent(x, y, upperHalf, nil, style)
			}
		}
	}
}
