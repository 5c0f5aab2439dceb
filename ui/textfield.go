package ui

import (
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mind-palace/render"
)

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// TextFieldState holds editable single-line text
type TextFieldState struct {
	Text   []rune
	Cursor int // rune index the cursor sits before
	Scroll int // first visible rune index
}

// NewTextFieldState creates a field holding initial with the cursor at the end
func NewTextFieldState(initial string) *TextFieldState {
	runes := []rune(initial)
	return &TextFieldState{Text: runes, Cursor: len(runes)}
}

// Value returns current text
func (t *TextFieldState) Value() string {
	return string(t.Text)
}

// SetValue replaces text and moves cursor to end
func (t *TextFieldState) SetValue(s string) {
	t.Text = []rune(s)
	t.Cursor = len(t.Text)
	t.Scroll = 0
}

// Clear empties the field
func (t *TextFieldState) Clear() {
	t.Text = nil
	t.Cursor = 0
	t.Scroll = 0
}

// Empty reports whether the field holds no text
func (t *TextFieldState) Empty() bool {
	return len(t.Text) == 0
}

// Insert adds r at the cursor
func (t *TextFieldState) Insert(r rune) {
	t.Text = append(t.Text[:t.Cursor], append([]rune{r}, t.Text[t.Cursor:]...)...)
	t.Cursor++
}

// DeleteBackward removes the rune before the cursor
func (t *TextFieldState) DeleteBackward() bool {
	if t.Cursor == 0 {
		return false
	}
	t.Text = append(t.Text[:t.Cursor-1], t.Text[t.Cursor:]...)
	t.Cursor--
	return true
}

// DeleteForward removes the rune at the cursor
func (t *TextFieldState) DeleteForward() bool {
	if t.Cursor >= len(t.Text) {
		return false
	}
	t.Text = append(t.Text[:t.Cursor], t.Text[t.Cursor+1:]...)
	return true
}

// DeleteWordBackward removes the word before the cursor
func (t *TextFieldState) DeleteWordBackward() bool {
	if t.Cursor == 0 {
		return false
	}
	end := t.Cursor
	for end > 0 && !isWordChar(t.Text[end-1]) {
		end--
	}
	start := end
	for start > 0 && isWordChar(t.Text[start-1]) {
		start--
	}
	if start == t.Cursor {
		start = t.Cursor - 1
	}
	t.Text = append(t.Text[:start], t.Text[t.Cursor:]...)
	t.Cursor = start
	return true
}

// DeleteToStart removes from start to cursor
func (t *TextFieldState) DeleteToStart() bool {
	if t.Cursor == 0 {
		return false
	}
	t.Text = t.Text[t.Cursor:]
	t.Cursor = 0
	t.Scroll = 0
	return true
}

// MoveLeft moves the cursor one rune left
func (t *TextFieldState) MoveLeft() {
	if t.Cursor > 0 {
		t.Cursor--
	}
}

// MoveRight moves the cursor one rune right
func (t *TextFieldState) MoveRight() {
	if t.Cursor < len(t.Text) {
		t.Cursor++
	}
}

// AdjustScroll keeps the cursor inside a viewport of width cells
func (t *TextFieldState) AdjustScroll(width int) {
	if width <= 0 {
		return
	}
	if t.Cursor < t.Scroll {
		t.Scroll = t.Cursor
	}
	if t.Cursor >= t.Scroll+width {
		t.Scroll = t.Cursor - width + 1
	}
	t.Scroll = max(0, min(t.Scroll, len(t.Text)))
}

// HandleKey applies an editing key; returns true if the event was consumed
// Enter is left to the owner
func (t *TextFieldState) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return t.DeleteWordBackward()
		}
		return t.DeleteBackward()
	case tcell.KeyDelete:
		return t.DeleteForward()
	case tcell.KeyCtrlW:
		return t.DeleteWordBackward()
	case tcell.KeyCtrlU:
		return t.DeleteToStart()
	case tcell.KeyLeft:
		t.MoveLeft()
		return true
	case tcell.KeyRight:
		t.MoveRight()
		return true
	case tcell.KeyHome, tcell.KeyCtrlA:
		t.Cursor = 0
		return true
	case tcell.KeyEnd, tcell.KeyCtrlE:
		t.Cursor = len(t.Text)
		return true
	case tcell.KeyRune:
		if r := ev.Rune(); r >= 32 {
			t.Insert(r)
			return true
		}
	}
	return false
}

// TextField draws the field on row y; placeholder shows when empty, the cursor cell is inverted when focused
func (r Region) TextField(y int, state *TextFieldState, placeholder string, fg, dim render.RGB, focused bool) {
	if y < 0 || y >= r.H || r.W <= 0 {
		return
	}
	state.AdjustScroll(r.W)

	if state.Empty() && placeholder != "" {
		r.Text(0, y, placeholder, dim)
	} else {
		col := 0
		for i := state.Scroll; i < len(state.Text) && col < r.W; i++ {
			r.Cell(col, y, state.Text[i], fg)
			col++
		}
	}
	if focused {
		cx := state.Cursor - state.Scroll
		ch := ' '
		if state.Cursor < len(state.Text) {
			ch = state.Text[state.Cursor]
		} else if state.Empty() && placeholder != "" {
			ch, _ = utf8.DecodeRuneInString(placeholder)
		}
		r.CellBg(cx, y, ch, render.RGBBlack, fg)
	}
}
