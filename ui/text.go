package ui

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Width returns the display width of s in cells
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to maxLen cells with an ellipsis
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxLen, "…")
}

// PadRight pads s with spaces to width cells
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// PadLeft left-pads s with spaces to width cells
func PadLeft(s string, width int) string {
	return runewidth.FillLeft(s, width)
}

// WrapText wraps s at word boundaries so no line exceeds width cells
// Words longer than width are hard-split
func WrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var line strings.Builder
	lineW := 0
	for _, word := range words {
		ww := Width(word)
		for ww > width {
			if lineW > 0 {
				lines = append(lines, line.String())
				line.Reset()
				lineW = 0
			}
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				_, size := utf8.DecodeRuneInString(word)
				head = word[:size]
			}
			lines = append(lines, head)
			word = word[len(head):]
			ww = Width(word)
		}
		switch {
		case lineW == 0:
			line.WriteString(word)
			lineW = ww
		case lineW+1+ww <= width:
			line.WriteByte(' ')
			line.WriteString(word)
			lineW += 1 + ww
		default:
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(word)
			lineW = ww
		}
	}
	if lineW > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// RepeatRune returns a string of n repeated runes
func RepeatRune(r rune, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(string(r), n)
}
