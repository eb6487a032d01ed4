// Package textwidth provides display-width, soft-wrap, and word-boundary
// helpers shared by the tuikit widgets. Widths are terminal cell counts,
// which differ from both byte and codepoint counts for wide CJK characters.
package textwidth

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// RuneWidth returns the cell width of a single rune. Control characters
// report zero.
func RuneWidth(r rune) int {
	if r == '\n' {
		return 0
	}
	return runewidth.RuneWidth(r)
}

// Columns returns the total cell width of a rune slice.
func Columns(runes []rune) int {
	w := 0
	for _, r := range runes {
		w += RuneWidth(r)
	}
	return w
}

// CursorCell locates the codepoint offset cursor within runes, soft-wrapped
// at width cells with hard breaks at '\n'. It returns the cell column and
// row the cursor lands on. A non-positive width disables soft wrapping.
func CursorCell(runes []rune, cursor, width int) (x, y int) {
	if cursor > len(runes) {
		cursor = len(runes)
	}
	for i := 0; i < cursor; i++ {
		r := runes[i]
		if r == '\n' {
			x = 0
			y++
			continue
		}
		w := RuneWidth(r)
		if width > 0 && x+w > width {
			x = 0
			y++
		}
		x += w
	}
	// A cursor sitting exactly at the wrap width renders at the start of
	// the next row.
	if width > 0 && x >= width {
		x = 0
		y++
	}
	return x, y
}

// PrevWord returns the codepoint offset of the start of the word preceding
// cursor, using Unicode word segmentation. Whitespace-only segments are
// skipped, so the result is always a position a word-delete would target.
func PrevWord(runes []rune, cursor int) int {
	if cursor <= 0 {
		return 0
	}
	bounds := wordStarts(string(runes[:cursor]))
	if len(bounds) == 0 {
		return 0
	}
	return bounds[len(bounds)-1]
}

// NextWord returns the codepoint offset of the start of the word following
// cursor, or len(runes) when no further word exists.
func NextWord(runes []rune, cursor int) int {
	if cursor >= len(runes) {
		return len(runes)
	}
	for _, b := range wordStarts(string(runes)) {
		if b > cursor {
			return b
		}
	}
	return len(runes)
}

// wordStarts returns the codepoint offsets at which non-space words begin.
func wordStarts(s string) []int {
	var starts []int
	rest := s
	state := -1
	off := 0
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		if !isSpace(word) {
			starts = append(starts, off)
		}
		off += len([]rune(word))
	}
	return starts
}

func isSpace(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
