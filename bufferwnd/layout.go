package bufferwnd

// Binary-mode geometry: an 8-digit offset label and separator on the left,
// then the hex area with one "XX " group per byte, then one ASCII cell per
// byte after a single spacer.
const (
	addrCells = 10
	hexCells  = 3
)

// RowBytes returns how many buffer bytes one display row holds in the
// active mode.
func (w *Window) RowBytes() int {
	width, _ := w.ctx.Size()
	return w.rowBytes(width)
}

func (w *Window) rowBytes(width int) int {
	if w.mode == ModeText {
		if width < 1 {
			return 1
		}
		return width
	}

	// Binary: addr + n*hex + spacer + n*ascii must fit the width.
	n := (width - addrCells - 1) / (hexCells + 1)
	if n >= 8 {
		n -= n % 8
	}
	if n < 1 {
		n = 1
	}
	return n
}

// CursorCell returns the screen cell of the edit cursor relative to the
// window origin, accounting for the visible row offset. In binary mode the
// cell is the first hex digit of the byte.
func (w *Window) CursorCell() (x, y int) {
	bpr := w.RowBytes()
	row := w.cursor / bpr
	col := w.cursor % bpr
	if w.mode == ModeText {
		return col, row - w.top
	}
	return addrCells + col*hexCells, row - w.top
}

// resolveClick maps a logical cell position to a byte offset per the
// active mode's layout, or ok=false when the position falls outside the
// rendered grid.
func (w *Window) resolveClick(x, y int) (int, bool) {
	if x < 0 || y < 0 {
		return 0, false
	}
	bpr := w.RowBytes()
	row := w.top + y

	var col int
	if w.mode == ModeText {
		if x >= bpr {
			return 0, false
		}
		col = x
	} else {
		hexEnd := addrCells + bpr*hexCells
		asciiStart := hexEnd + 1
		switch {
		case x >= addrCells && x < hexEnd:
			rel := x - addrCells
			// The separator cell after each hex pair maps to no byte.
			if rel%hexCells == hexCells-1 {
				return 0, false
			}
			col = rel / hexCells
		case x >= asciiStart && x < asciiStart+bpr:
			col = x - asciiStart
		default:
			return 0, false
		}
	}

	off := row*bpr + col
	if off >= len(w.buf) {
		return 0, false
	}
	return off, true
}

// ensureVisible scrolls top so the cursor row is inside the window.
func (w *Window) ensureVisible() {
	_, height := w.ctx.Size()
	if height < 1 {
		height = 1
	}
	row := w.cursor / w.RowBytes()
	if row < w.top {
		w.top = row
	} else if row >= w.top+height {
		w.top = row - height + 1
	}
}
