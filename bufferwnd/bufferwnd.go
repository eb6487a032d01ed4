package bufferwnd

import (
	"errors"

	"github.com/dshills/tuikit/dispatch"
)

// Errors returned by New.
var (
	// ErrNoContext is returned when the display context is missing.
	ErrNoContext = errors.New("bufferwnd: display context is required")
	// ErrNilBuffer is returned when no buffer is provided. The window is
	// a view; there is nothing for it to show.
	ErrNilBuffer = errors.New("bufferwnd: buffer is required")
)

// Context is the display surface the window is bound to. The window only
// consults its size for layout; painting is the caller's job.
type Context interface {
	Size() (width, height int)
}

// Mode selects the display variant.
type Mode uint8

const (
	// ModeText presents the buffer as a character grid.
	ModeText Mode = iota
	// ModeBinary presents the buffer as a hex dump with an ASCII column.
	ModeBinary
)

// String returns the name of the mode.
func (m Mode) String() string {
	if m == ModeBinary {
		return "binary"
	}
	return "text"
}

// State is the read-only projection handed to the update callback.
type State struct {
	// Cursor is the edit cursor as a byte offset, always in [0, len].
	Cursor int
	// Mode is the active display mode.
	Mode Mode
	// Modified reports whether any byte has been overwritten since setup.
	Modified bool
}

// UpdateFunc receives the window state after every change. It runs inline
// on the feeding goroutine and must not call back into the window.
type UpdateFunc func(State)

// Window is a view over a borrowed byte buffer. Create one with New and
// release it with Free; a freed window must not be used again.
type Window struct {
	ctx Context
	buf []byte

	cursor      int
	mode        Mode
	writeEnable bool
	modified    bool

	// top is the first visible buffer row, advanced by paging and by
	// cursor movement beyond the window.
	top int

	// Pending high nibble for binary-mode hex entry.
	nibblePending bool
	nibble        byte

	onUpdate UpdateFunc
	chain    *dispatch.Chain
}

// Option configures a Window during creation.
type Option func(*Window)

// WithMode selects the initial display mode.
func WithMode(m Mode) Option {
	return func(w *Window) {
		w.mode = m
	}
}

// WithUpdate sets an optional state callback fired after every change.
func WithUpdate(fn UpdateFunc) Option {
	return func(w *Window) {
		w.onUpdate = fn
	}
}

// New creates a window presenting buf on ctx. The buffer stays owned by
// the caller; writeEnable controls whether input may overwrite its bytes.
func New(ctx Context, buf []byte, writeEnable bool, opts ...Option) (*Window, error) {
	if ctx == nil {
		return nil, ErrNoContext
	}
	if buf == nil {
		return nil, ErrNilBuffer
	}

	w := &Window{
		ctx:         ctx,
		buf:         buf,
		writeEnable: writeEnable,
	}
	for _, opt := range opts {
		opt(w)
	}

	w.chain = dispatch.NewChain(
		dispatch.HandlerFunc(w.handleLabel),
		dispatch.HandlerFunc(w.handleText),
		dispatch.HandlerFunc(w.handleKey),
	)
	return w, nil
}

// Feed offers one event to the window. Label, text, and key events run
// through the layered chain; mouse-button events go to the pointer layer.
func (w *Window) Feed(ev dispatch.Event) dispatch.Result {
	if mb, ok := ev.(dispatch.MouseButton); ok {
		return w.handleMouse(mb)
	}
	return w.chain.Offer(ev)
}

// InputLabel feeds a label event.
func (w *Window) InputLabel(name string, active bool) dispatch.Result {
	return w.Feed(dispatch.Label{Name: name, Active: active})
}

// InputText feeds a run of UTF-8 text.
func (w *Window) InputText(s string) dispatch.Result {
	return w.Feed(dispatch.TextOf(s))
}

// InputKey feeds a raw key event.
func (w *Window) InputKey(k dispatch.Key) dispatch.Result {
	return w.Feed(k)
}

// InputMouseButton feeds a pointer button event at logical cell (x, y).
func (w *Window) InputMouseButton(x, y int, button dispatch.Button, active bool, mods dispatch.Modifier) dispatch.Result {
	return w.Feed(dispatch.MouseButton{X: x, Y: y, Button: button, Active: active, Mods: mods})
}

// Cursor returns the edit cursor as a byte offset.
func (w *Window) Cursor() int { return w.cursor }

// Mode returns the active display mode.
func (w *Window) Mode() Mode { return w.mode }

// Top returns the first visible buffer row.
func (w *Window) Top() int { return w.top }

// Modified reports whether the buffer has been written through the window.
func (w *Window) Modified() bool { return w.modified }

// WriteEnabled reports whether edits are allowed.
func (w *Window) WriteEnabled() bool { return w.writeEnable }

// SetMode switches the display mode, discarding any pending nibble entry.
func (w *Window) SetMode(m Mode) {
	if m == w.mode {
		return
	}
	w.mode = m
	w.nibblePending = false
	w.ensureVisible()
	w.update()
}

// Free detaches the window from its context and drops the buffer
// reference. The buffer itself is caller-owned and is never freed here.
func (w *Window) Free() {
	w.ctx = nil
	w.buf = nil
	w.onUpdate = nil
	w.chain = nil
}

// update fires the optional state callback.
func (w *Window) update() {
	if w.onUpdate == nil {
		return
	}
	w.onUpdate(State{
		Cursor:   w.cursor,
		Mode:     w.mode,
		Modified: w.modified,
	})
}
