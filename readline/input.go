package readline

import (
	"unicode"

	"github.com/dshills/tuikit/dispatch"
	"github.com/dshills/tuikit/internal/textwidth"
)

// Labels understood by the label layer. Consuming "paste" here keeps the
// chain invariant: a label alias must never fall through and be re-read as
// literal text by a later layer.
const (
	labelCommit = "commit"
	labelCancel = "cancel"
	labelClear  = "clear"
	labelPaste  = "paste"
)

// handleLabel is the first chain layer.
func (r *Readline) handleLabel(ev dispatch.Event) dispatch.Result {
	lbl, ok := ev.(dispatch.Label)
	if !ok {
		return dispatch.Pass
	}
	switch lbl.Name {
	case labelCommit:
		if lbl.Active && !r.done {
			r.commit(false)
		}
		return dispatch.Handled
	case labelCancel:
		if lbl.Active && !r.done {
			r.commit(true)
		}
		return dispatch.Handled
	case labelClear:
		if lbl.Active {
			r.Clear()
		}
		return dispatch.Handled
	case labelPaste:
		// The pasted text arrives as Text events; the alias itself
		// carries nothing to act on.
		return dispatch.Handled
	}
	return dispatch.Pass
}

// handleText is the second chain layer. Printable input is inserted at the
// cursor; everything else in the run is skipped.
func (r *Readline) handleText(ev dispatch.Event) dispatch.Result {
	txt, ok := ev.(dispatch.Text)
	if !ok {
		return dispatch.Pass
	}
	if r.done {
		return dispatch.Pass
	}

	inserted := 0
	for _, c := range txt.Runes {
		if unicode.IsPrint(c) || (r.multiline && c == '\n') {
			r.insertRune(c)
			inserted++
		}
	}
	if inserted > 0 {
		r.editDone()
	}
	return dispatch.Handled
}

// handleKey is the final chain layer.
func (r *Readline) handleKey(ev dispatch.Event) dispatch.Result {
	k, ok := ev.(dispatch.Key)
	if !ok {
		return dispatch.Pass
	}
	if r.done {
		return dispatch.Pass
	}

	switch k.Sym {
	case dispatch.SymEnter:
		if r.multiline && k.Mods.HasShift() {
			r.insertRune('\n')
			r.editDone()
		} else {
			r.commit(false)
		}
	case dispatch.SymEscape:
		r.commit(true)
	case dispatch.SymBackspace:
		if k.Mods.HasCtrl() || k.Mods.HasAlt() {
			r.deleteRange(textwidth.PrevWord(r.line, r.cursor), r.cursor)
		} else {
			r.deleteRange(r.cursor-1, r.cursor)
		}
	case dispatch.SymDelete:
		r.deleteRange(r.cursor, r.cursor+1)
	case dispatch.SymLeft:
		if k.Mods.HasCtrl() {
			r.moveTo(textwidth.PrevWord(r.line, r.cursor))
		} else {
			r.moveTo(r.cursor - 1)
		}
	case dispatch.SymRight:
		if k.Mods.HasCtrl() {
			r.moveTo(textwidth.NextWord(r.line, r.cursor))
		} else {
			r.moveTo(r.cursor + 1)
		}
	case dispatch.SymHome:
		r.moveTo(r.lineStart())
	case dispatch.SymEnd:
		r.moveTo(r.lineEnd())
	case dispatch.SymUp:
		if r.multiline {
			r.moveRow(-1)
		} else {
			r.historyStep(-1)
		}
	case dispatch.SymDown:
		if r.multiline {
			r.moveRow(1)
		} else {
			r.historyStep(1)
		}
	case dispatch.SymRune:
		if !k.Mods.HasCtrl() {
			return dispatch.Pass
		}
		switch k.Rune {
		case 'a':
			r.moveTo(r.lineStart())
		case 'e':
			r.moveTo(r.lineEnd())
		case 'u':
			r.deleteRange(r.lineStart(), r.cursor)
		case 'k':
			r.deleteRange(r.cursor, r.lineEnd())
		case 'w':
			r.deleteRange(textwidth.PrevWord(r.line, r.cursor), r.cursor)
		default:
			return dispatch.Pass
		}
	default:
		return dispatch.Pass
	}
	return dispatch.Handled
}

// commit marks the session done (or canceled) and fires the update. The
// buffer stays intact until the caller acknowledges with Clear.
func (r *Readline) commit(canceled bool) {
	r.done = true
	r.canceled = canceled
	r.hist.ResetNav()
	r.stashValid = false
	r.update()
}

// insertRune inserts one codepoint at the cursor and advances it.
func (r *Readline) insertRune(c rune) {
	r.line = append(r.line, 0)
	copy(r.line[r.cursor+1:], r.line[r.cursor:])
	r.line[r.cursor] = c
	r.cursor++
}

// deleteRange removes the codepoints in [from, to). Out-of-range or empty
// ranges are boundary no-ops: no mutation, no update, never an error.
func (r *Readline) deleteRange(from, to int) {
	if from < 0 || to > len(r.line) || from >= to {
		return
	}
	r.line = append(r.line[:from], r.line[to:]...)
	r.cursor = from
	r.editDone()
}

// moveTo places the cursor at the given codepoint offset. Offsets outside
// [0, len] are boundary no-ops.
func (r *Readline) moveTo(to int) {
	if to < 0 || to > len(r.line) || to == r.cursor {
		return
	}
	r.cursor = to
	r.update()
}

// editDone finalizes a buffer mutation: navigation state is abandoned and
// the update fires.
func (r *Readline) editDone() {
	r.hist.ResetNav()
	r.stashValid = false
	r.update()
}

// lineStart returns the offset just past the previous hard line break, or 0.
func (r *Readline) lineStart() int {
	for i := r.cursor - 1; i >= 0; i-- {
		if r.line[i] == '\n' {
			return i + 1
		}
	}
	return 0
}

// lineEnd returns the offset of the next hard line break, or len.
func (r *Readline) lineEnd() int {
	for i := r.cursor; i < len(r.line); i++ {
		if r.line[i] == '\n' {
			return i
		}
	}
	return len(r.line)
}

// moveRow moves the cursor one hard line up or down, keeping the column
// where possible. Boundary rows are no-ops.
func (r *Readline) moveRow(dir int) {
	start := r.lineStart()
	col := r.cursor - start

	var target int
	if dir < 0 {
		if start == 0 {
			return
		}
		prevStart := 0
		for i := start - 2; i >= 0; i-- {
			if r.line[i] == '\n' {
				prevStart = i + 1
				break
			}
		}
		target = prevStart + min(col, start-1-prevStart)
	} else {
		end := r.lineEnd()
		if end == len(r.line) {
			return
		}
		nextStart := end + 1
		nextEnd := len(r.line)
		for i := nextStart; i < len(r.line); i++ {
			if r.line[i] == '\n' {
				nextEnd = i
				break
			}
		}
		target = nextStart + min(col, nextEnd-nextStart)
	}
	r.moveTo(target)
}

// historyStep walks the history store in single-line mode. Stepping back
// stashes the in-progress line; stepping forward past the newest entry
// restores it.
func (r *Readline) historyStep(dir int) {
	if dir < 0 {
		wasLive := !r.hist.Navigating()
		entry, ok := r.hist.Prev()
		if !ok {
			return
		}
		if wasLive {
			r.stash = append([]rune(nil), r.line...)
			r.stashValid = true
		}
		r.setLine(entry)
		return
	}

	entry, ok := r.hist.Next()
	if ok {
		r.setLine(entry)
		return
	}
	if r.stashValid {
		r.line = r.stash
		r.cursor = len(r.line)
		r.stash = nil
		r.stashValid = false
		r.update()
	}
}

// setLine replaces the buffer content, cursor at the end.
func (r *Readline) setLine(s string) {
	r.line = []rune(s)
	r.cursor = len(r.line)
	r.update()
}
