package bufferwnd

import (
	"unicode/utf8"

	"github.com/dshills/tuikit/dispatch"
)

// labelCycleMode flips between text and binary display.
const labelCycleMode = "cycle_mode"

// handleLabel is the first chain layer.
func (w *Window) handleLabel(ev dispatch.Event) dispatch.Result {
	lbl, ok := ev.(dispatch.Label)
	if !ok {
		return dispatch.Pass
	}
	if lbl.Name == labelCycleMode {
		if lbl.Active {
			if w.mode == ModeText {
				w.SetMode(ModeBinary)
			} else {
				w.SetMode(ModeText)
			}
		}
		return dispatch.Handled
	}
	return dispatch.Pass
}

// handleText is the second chain layer. In text mode printable input
// overwrites bytes at the cursor. In binary mode text is never meaningful,
// so the layer always defers to the key layer.
func (w *Window) handleText(ev dispatch.Event) dispatch.Result {
	txt, ok := ev.(dispatch.Text)
	if !ok {
		return dispatch.Pass
	}
	if w.mode == ModeBinary {
		return dispatch.Pass
	}

	// Write protection is advisory: the event is still ours, it just
	// does nothing.
	if !w.writeEnable {
		return dispatch.Handled
	}

	wrote := false
	for _, r := range txt.Runes {
		var enc [utf8.UTFMax]byte
		n := utf8.EncodeRune(enc[:], r)
		if w.cursor+n > len(w.buf) {
			break
		}
		copy(w.buf[w.cursor:], enc[:n])
		w.cursor += n
		wrote = true
	}
	if wrote {
		w.modified = true
		w.ensureVisible()
		w.update()
	}
	return dispatch.Handled
}

// handleKey is the final chain layer.
func (w *Window) handleKey(ev dispatch.Event) dispatch.Result {
	k, ok := ev.(dispatch.Key)
	if !ok {
		return dispatch.Pass
	}

	bpr := w.RowBytes()
	_, height := w.ctx.Size()
	if height < 1 {
		height = 1
	}

	switch k.Sym {
	case dispatch.SymLeft:
		w.moveTo(w.cursor - 1)
	case dispatch.SymRight:
		w.moveTo(w.cursor + 1)
	case dispatch.SymUp:
		w.moveTo(w.cursor - bpr)
	case dispatch.SymDown:
		w.moveTo(w.cursor + bpr)
	case dispatch.SymHome:
		w.moveTo(w.cursor - w.cursor%bpr)
	case dispatch.SymEnd:
		w.moveTo(w.cursor - w.cursor%bpr + bpr - 1)
	case dispatch.SymPageUp:
		w.moveTo(w.cursor - bpr*height)
	case dispatch.SymPageDown:
		w.moveTo(w.cursor + bpr*height)
	case dispatch.SymBackspace:
		w.moveTo(w.cursor - 1)
	case dispatch.SymDelete:
		w.zeroByte()
	case dispatch.SymRune:
		if w.mode == ModeBinary && !k.Mods.HasCtrl() && !k.Mods.HasAlt() {
			if nib, ok := hexNibble(k.Rune); ok {
				w.enterNibble(nib)
				return dispatch.Handled
			}
		}
		return dispatch.Pass
	default:
		return dispatch.Pass
	}
	return dispatch.Handled
}

// handleMouse is the parallel pointer layer: a primary-button press inside
// the rendered grid relocates the cursor; anything else is ignored.
func (w *Window) handleMouse(mb dispatch.MouseButton) dispatch.Result {
	if mb.Button != dispatch.ButtonLeft || !mb.Active {
		return dispatch.Pass
	}
	off, ok := w.resolveClick(mb.X, mb.Y)
	if !ok {
		// Out-of-bounds clicks are expected, not errors.
		return dispatch.Handled
	}
	w.moveTo(off)
	return dispatch.Handled
}

// moveTo clamps the cursor into [0, len] and discards pending nibble
// entry. Clamped-away moves are boundary no-ops that fire no update.
func (w *Window) moveTo(off int) {
	if off < 0 {
		off = 0
	}
	if off > len(w.buf) {
		off = len(w.buf)
	}
	if off == w.cursor {
		return
	}
	w.cursor = off
	w.nibblePending = false
	w.ensureVisible()
	w.update()
}

// zeroByte clears the byte under the cursor. A no-op without write enable
// or at the end of the buffer.
func (w *Window) zeroByte() {
	if !w.writeEnable || w.cursor >= len(w.buf) {
		return
	}
	if w.buf[w.cursor] == 0 {
		return
	}
	w.buf[w.cursor] = 0
	w.modified = true
	w.update()
}

// enterNibble applies hex entry to the byte under the cursor: the first
// digit sets the high nibble, the second completes the byte and advances.
func (w *Window) enterNibble(nib byte) {
	if !w.writeEnable || w.cursor >= len(w.buf) {
		return
	}
	if !w.nibblePending {
		w.buf[w.cursor] = nib << 4
		w.nibblePending = true
		w.nibble = nib
	} else {
		w.buf[w.cursor] = w.nibble<<4 | nib
		w.nibblePending = false
		w.cursor++
		w.ensureVisible()
	}
	w.modified = true
	w.update()
}

// hexNibble decodes one hex digit.
func hexNibble(r rune) (byte, bool) {
	switch {
	case r >= '0' && r <= '9':
		return byte(r - '0'), true
	case r >= 'a' && r <= 'f':
		return byte(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return byte(r-'A') + 10, true
	}
	return 0, false
}
