// Package backend bridges a tcell terminal to the tuikit input model.
//
// Terminal owns the tcell screen, translates raw terminal events into the
// dispatch package's event taxonomy, and exposes the few paint primitives
// the demo programs need. Widgets receive a Terminal (or anything else
// with a Size method) as their display context.
package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/tuikit/dispatch"
	"github.com/dshills/tuikit/internal/logging"
)

// Terminal is a tcell-backed display and input context.
type Terminal struct {
	screen tcell.Screen
	log    *logging.Logger

	// labels maps tcell key names (as reported by EventKey.Name, for
	// example "Ctrl+L") to input labels offered ahead of the raw event.
	labels map[string]string

	// prevButtons tracks the last mouse button mask so press and
	// release transitions can be derived.
	prevButtons tcell.ButtonMask

	resizeHandler func(width, height int)
}

// NewTerminal creates a terminal on the default tcell screen.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalForScreen(screen), nil
}

// NewTerminalForScreen wraps an existing screen. Used by tests with
// tcell's simulation screen.
func NewTerminalForScreen(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen: screen,
		log:    logging.Discard,
		labels: make(map[string]string),
	}
}

// SetLogger routes backend diagnostics to l.
func (t *Terminal) SetLogger(l *logging.Logger) {
	if l != nil {
		t.log = l.WithComponent("backend")
	}
}

// Init prepares the screen and enables mouse and bracketed paste.
func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse()
	t.screen.EnablePaste()
	w, h := t.screen.Size()
	t.log.Debug("screen initialized %dx%d", w, h)
	return nil
}

// Fini restores the terminal.
func (t *Terminal) Fini() {
	t.screen.Fini()
}

// Size returns the screen dimensions in cells.
func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// Screen exposes the underlying tcell screen for caller-side painting.
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// BindLabel announces label for the given tcell key name (for example
// "Ctrl+L" or "F5"). The label event is offered ahead of the raw key so a
// widget's label layer sees it first.
func (t *Terminal) BindLabel(keyName, label string) {
	t.labels[keyName] = label
}

// OnResize registers a callback fired when the screen size changes.
func (t *Terminal) OnResize(fn func(width, height int)) {
	t.resizeHandler = fn
}

// PollEvent blocks for the next terminal event and returns its dispatch
// candidates in layer order: an optional label first, then text, then the
// raw key. The caller offers each candidate to the focused widget until
// one is claimed. Resize events return nil after notifying the resize
// handler.
func (t *Terminal) PollEvent() []dispatch.Event {
	ev := t.screen.PollEvent()
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.translateKey(ev)
	case *tcell.EventPaste:
		return []dispatch.Event{dispatch.Label{Name: "paste", Active: ev.Start()}}
	case *tcell.EventMouse:
		return t.translateMouse(ev)
	case *tcell.EventResize:
		if t.resizeHandler != nil {
			w, h := ev.Size()
			t.resizeHandler(w, h)
		}
		t.screen.Sync()
	}
	return nil
}

// SetText paints a string starting at (x, y).
func (t *Terminal) SetText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// ShowCursor places the hardware cursor.
func (t *Terminal) ShowCursor(x, y int) {
	t.screen.ShowCursor(x, y)
}

// Clear erases the screen.
func (t *Terminal) Clear() {
	t.screen.Clear()
}

// Show flushes pending paints.
func (t *Terminal) Show() {
	t.screen.Show()
}
