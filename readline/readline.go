package readline

import (
	"errors"

	"github.com/dshills/tuikit/dispatch"
	"github.com/dshills/tuikit/internal/textwidth"
	"github.com/dshills/tuikit/readline/history"
)

// Errors returned by New.
var (
	// ErrNoParent is returned when the parent context is missing.
	ErrNoParent = errors.New("readline: parent context is required")
	// ErrNoUpdate is returned when the update callback is missing.
	ErrNoUpdate = errors.New("readline: update callback is required")
)

// Context is the display surface a widget attaches to. The widget never
// paints on it; it only consults the size to compute wrap-relative cursor
// positions.
type Context interface {
	Size() (width, height int)
}

// State is the read-only projection passed to the update callback.
type State struct {
	// CursorX and CursorY locate the cursor in display cells, relative
	// to the start of the line. CursorY is always 0 unless multiline
	// mode is active.
	CursorX int
	CursorY int

	// Line is the current line content.
	Line string

	// Hint is the best commit suggestion for the current line, resolved
	// from the completion callback or, failing that, the most recent
	// matching history entry. HasHint distinguishes an empty suggestion
	// from none.
	Hint    string
	HasHint bool

	// Candidates holds the full completion set for popup rendering.
	// Nil when no completion callback is configured.
	Candidates []Candidate

	// Done is set once the user commits the line. The widget stays in
	// this state until Clear is called.
	Done bool

	// Canceled is set alongside Done when the user abandoned the input
	// rather than committing it.
	Canceled bool
}

// UpdateFunc receives the widget state after every change. It runs inline
// on the feeding goroutine; it must not call back into the widget.
type UpdateFunc func(State)

// Candidate is one completion suggestion. RGB is a rendering hint for
// dimmed-suggestion display; HasColor reports whether it is meaningful.
type Candidate struct {
	Text     string
	RGB      [3]uint8
	HasColor bool
}

// CompleteFunc supplies completion candidates for a partial line. It is
// called with increasing indices starting at zero until it returns false or
// the widget's candidate cap is reached.
type CompleteFunc func(partial string, index int) (Candidate, bool)

// DefaultCompletionLimit caps candidate enumeration so a misbehaving
// completion callback cannot stall the editor.
const DefaultCompletionLimit = 64

// Readline is the line-editing widget. Create one with New, feed it input
// events, and release it with Free. A freed widget must not be used again.
type Readline struct {
	parent Context
	popup  Context

	onUpdate UpdateFunc
	complete CompleteFunc

	line   []rune
	cursor int

	done     bool
	canceled bool

	multiline       bool
	completionLimit int
	historyLimit    int

	hist *history.Store

	// stash holds the in-progress line while history navigation has
	// replaced it.
	stash      []rune
	stashValid bool

	chain *dispatch.Chain
}

// New creates a readline widget bound to parent. The parent context and the
// update callback are mandatory; everything else is configured through
// options.
func New(parent Context, onUpdate UpdateFunc, opts ...Option) (*Readline, error) {
	if parent == nil {
		return nil, ErrNoParent
	}
	if onUpdate == nil {
		return nil, ErrNoUpdate
	}

	r := &Readline{
		parent:          parent,
		onUpdate:        onUpdate,
		completionLimit: DefaultCompletionLimit,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.hist = history.NewStore(r.historyLimit)

	r.chain = dispatch.NewChain(
		dispatch.HandlerFunc(r.handleLabel),
		dispatch.HandlerFunc(r.handleText),
		dispatch.HandlerFunc(r.handleKey),
	)
	return r, nil
}

// Feed offers one input event to the widget's dispatch chain. It returns
// Handled when the widget consumed the event; a Pass result means the event
// is still the caller's to route elsewhere.
func (r *Readline) Feed(ev dispatch.Event) dispatch.Result {
	return r.chain.Offer(ev)
}

// Clear resets the line, the cursor, and the done flag, then fires one
// update with the cleared state. Calling Clear is the required
// acknowledgment after observing Done.
func (r *Readline) Clear() {
	r.line = nil
	r.cursor = 0
	r.done = false
	r.canceled = false
	r.stash = nil
	r.stashValid = false
	r.hist.ResetNav()
	r.update()
}

// Line returns the current line content.
func (r *Readline) Line() string { return string(r.line) }

// Done reports whether the line has been committed and awaits Clear.
func (r *Readline) Done() bool { return r.done }

// AddHistory appends a line to the history store. The current line and
// cursor are unaffected and no update fires.
func (r *Readline) AddHistory(line string) {
	r.hist.Append(line)
}

// History returns the widget's history store.
func (r *Readline) History() *history.Store { return r.hist }

// SaveState serializes the history store (and only the history store) into
// an opaque buffer for LoadState.
func (r *Readline) SaveState() ([]byte, error) {
	return r.hist.Encode()
}

// LoadState restores the history store from a SaveState buffer. On a
// malformed buffer the existing history is left untouched.
func (r *Readline) LoadState(buf []byte) error {
	return r.hist.Decode(buf)
}

// Free releases the widget's buffers and detaches it from the parent and
// popup contexts. Using the widget after Free violates the caller contract.
func (r *Readline) Free() {
	r.line = nil
	r.stash = nil
	r.hist = nil
	r.parent = nil
	r.popup = nil
	r.onUpdate = nil
	r.complete = nil
	r.chain = nil
}

// update recomputes the cursor position and suggestion, then fires the
// callback. Called after every state change.
func (r *Readline) update() {
	width := 0
	if r.multiline {
		width, _ = r.parent.Size()
	}
	x, y := textwidth.CursorCell(r.line, r.cursor, width)

	st := State{
		CursorX:  x,
		CursorY:  y,
		Line:     string(r.line),
		Done:     r.done,
		Canceled: r.canceled,
	}
	st.Hint, st.Candidates, st.HasHint = r.suggest(st.Line)
	r.onUpdate(st)
}

// suggest resolves the commit hint for the current line: the completion
// callback first, the history prefix match as fallback. Enumeration is
// capped at completionLimit candidates.
func (r *Readline) suggest(line string) (string, []Candidate, bool) {
	if line == "" {
		return "", nil, false
	}

	if r.complete != nil {
		var cands []Candidate
		for i := 0; i < r.completionLimit; i++ {
			cand, ok := r.complete(line, i)
			if !ok {
				break
			}
			cands = append(cands, cand)
		}
		if len(cands) > 0 {
			best := cands[0].Text
			for _, c := range cands {
				if len(c.Text) >= len(line) && c.Text[:len(line)] == line {
					best = c.Text
					break
				}
			}
			return best, cands, true
		}
	}

	if match, ok := r.hist.MatchPrefix(line); ok {
		return match, nil, true
	}
	return "", nil, false
}
