package ui

import (
	"strconv"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/mind-palace/render"
)

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
)

var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
}

const (
	boxTL = iota
	boxH
	boxTR
	boxV
	boxBL
	boxBR
)

const (
	progressFull  = '█'
	progressEmpty = '░'
	progressHalf  = '▌'
)

// Text renders s at (x, y), clipped at the region edges; returns columns used
func (r Region) Text(x, y int, s string, fg render.RGB) int {
	if y < 0 || y >= r.H || x >= r.W {
		return 0
	}
	if x < 0 {
		s = runewidth.TruncateLeft(s, -x, "")
		x = 0
	}
	s = runewidth.Truncate(s, r.W-x, "")
	return r.Buf.Text(r.X+x, r.Y+y, s, fg)
}

// TextBold renders bold text
func (r Region) TextBold(x, y int, s string, fg render.RGB) int {
	n := r.Text(x, y, s, fg)
	r.Bold(max(0, x), y, n)
	return n
}

// TextRight renders text right-aligned on row y
func (r Region) TextRight(y int, s string, fg render.RGB) int {
	return r.Text(r.W-Width(s), y, s, fg)
}

// TextCenter renders text centered on row y
func (r Region) TextCenter(y int, s string, fg render.RGB) int {
	return r.Text((r.W-Width(s))/2, y, s, fg)
}

// Wrap renders s word-wrapped from row y; returns rows used
func (r Region) Wrap(x, y int, s string, fg render.RGB) int {
	lines := WrapText(s, r.W-x)
	for i, line := range lines {
		r.Text(x, y+i, line, fg)
	}
	return len(lines)
}

// Box draws a border around the region edge
func (r Region) Box(line LineType, fg render.RGB) {
	if r.W < 2 || r.H < 2 {
		return
	}
	if int(line) >= len(boxChars) {
		line = LineSingle
	}
	chars := boxChars[line]

	r.Cell(0, 0, chars[boxTL], fg)
	r.Cell(r.W-1, 0, chars[boxTR], fg)
	r.Cell(0, r.H-1, chars[boxBL], fg)
	r.Cell(r.W-1, r.H-1, chars[boxBR], fg)

	for x := 1; x < r.W-1; x++ {
		r.Cell(x, 0, chars[boxH], fg)
		r.Cell(x, r.H-1, chars[boxH], fg)
	}
	for y := 1; y < r.H-1; y++ {
		r.Cell(0, y, chars[boxV], fg)
		r.Cell(r.W-1, y, chars[boxV], fg)
	}
}

// Card draws a titled border and returns the inner content region
func (r Region) Card(title string, line LineType, fg render.RGB) Region {
	r.Box(line, fg)

	if title != "" && r.W > 4 {
		t := Truncate(title, r.W-4)
		x := (r.W - Width(t) - 2) / 2
		r.TextBold(x, 0, " "+t+" ", fg)
	}
	return r.Inset(1)
}

// HLine draws a horizontal rule across the region at row y
func (r Region) HLine(y int, line LineType, fg render.RGB) {
	if y < 0 || y >= r.H {
		return
	}
	if int(line) >= len(boxChars) {
		line = LineSingle
	}
	ch := boxChars[line][boxH]
	for x := 0; x < r.W; x++ {
		r.Cell(x, y, ch, fg)
	}
}

// Progress draws a horizontal bar w cells wide filled to pct (0.0-1.0)
func (r Region) Progress(x, y, w int, pct float64, fg, empty render.RGB) {
	if y < 0 || y >= r.H || w <= 0 {
		return
	}
	pct = min(1, max(0, pct))

	filled := int(float64(w) * pct)
	remainder := float64(w)*pct - float64(filled)

	for i := 0; i < w; i++ {
		switch {
		case i < filled:
			r.Cell(x+i, y, progressFull, fg)
		case i == filled && remainder >= 0.5:
			r.Cell(x+i, y, progressHalf, fg)
		default:
			r.Cell(x+i, y, progressEmpty, empty)
		}
	}
}

// Gauge draws a labeled bar: label on the left, value right-aligned, bar below
// Occupies two rows starting at y
func (r Region) Gauge(y int, label string, value float64, labelFg, barFg render.RGB) {
	v := min(100, max(0, value))
	r.Text(0, y, label, labelFg)
	r.TextRight(y, strconv.Itoa(int(v+0.5))+"%", barFg)
	r.Progress(0, y+1, r.W, v/100, barFg, render.RgbDarkGray)
}
