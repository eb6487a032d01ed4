package readline

import (
	"errors"
	"testing"

	"github.com/dshills/tuikit/dispatch"
)

type fakeCtx struct {
	w, h int
}

func (c fakeCtx) Size() (int, int) { return c.w, c.h }

// newTestWidget builds a widget recording every update into *last.
func newTestWidget(t *testing.T, last *State, opts ...Option) *Readline {
	t.Helper()
	r, err := New(fakeCtx{80, 24}, func(st State) { *last = st }, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func feedText(r *Readline, s string) {
	for _, c := range s {
		r.Feed(dispatch.Text{Runes: []rune{c}})
	}
}

func feedKey(r *Readline, sym dispatch.Sym) {
	r.Feed(dispatch.Key{Sym: sym})
}

func TestNewRequiresCollaborators(t *testing.T) {
	if _, err := New(nil, func(State) {}); !errors.Is(err, ErrNoParent) {
		t.Errorf("nil parent: err = %v, want ErrNoParent", err)
	}
	if _, err := New(fakeCtx{}, nil); !errors.Is(err, ErrNoUpdate) {
		t.Errorf("nil update: err = %v, want ErrNoUpdate", err)
	}
}

func TestInsertAtCursor(t *testing.T) {
	var last State
	r := newTestWidget(t, &last)

	feedText(r, "abc")
	feedKey(r, dispatch.SymLeft)
	feedKey(r, dispatch.SymLeft)
	feedText(r, "X")

	if last.Line != "aXbc" {
		t.Errorf("line = %q, want aXbc", last.Line)
	}
	if last.CursorX != 2 || last.CursorY != 0 {
		t.Errorf("cursor = (%d, %d), want (2, 0)", last.CursorX, last.CursorY)
	}
}

func TestBoundaryNoOps(t *testing.T) {
	var last State
	var updates int
	r, err := New(fakeCtx{80, 24}, func(st State) { last = st; updates++ })
	if err != nil {
		t.Fatal(err)
	}

	feedText(r, "ab")
	feedKey(r, dispatch.SymHome)
	before := updates

	// All of these sit at a boundary and must neither mutate nor fire
	// an update.
	feedKey(r, dispatch.SymBackspace) // cursor at start
	feedKey(r, dispatch.SymLeft)
	feedKey(r, dispatch.SymHome)
	feedKey(r, dispatch.SymEnd)
	feedKey(r, dispatch.SymDelete) // cursor now at end
	feedKey(r, dispatch.SymRight)

	if last.Line != "ab" {
		t.Errorf("line = %q, want ab untouched", last.Line)
	}
	if updates != before+1 {
		t.Errorf("updates = %d, want %d (only End moves the cursor)", updates, before+1)
	}
}

func TestBoundaryEmptyLine(t *testing.T) {
	var updates int
	r, err := New(fakeCtx{80, 24}, func(State) { updates++ })
	if err != nil {
		t.Fatal(err)
	}

	feedKey(r, dispatch.SymBackspace)
	feedKey(r, dispatch.SymDelete)
	feedKey(r, dispatch.SymLeft)
	feedKey(r, dispatch.SymRight)
	feedKey(r, dispatch.SymHome)
	feedKey(r, dispatch.SymEnd)

	if updates != 0 {
		t.Errorf("boundary no-ops fired %d updates, want 0", updates)
	}
	if r.Line() != "" {
		t.Errorf("line = %q, want empty", r.Line())
	}
}

func TestCommitAndClear(t *testing.T) {
	var last State
	r := newTestWidget(t, &last)

	feedText(r, "hello")
	feedKey(r, dispatch.SymEnter)

	if !last.Done || last.Canceled {
		t.Fatalf("after enter: done=%v canceled=%v, want done", last.Done, last.Canceled)
	}
	if last.Line != "hello" {
		t.Errorf("committed line = %q, want hello", last.Line)
	}

	// Input while done is not consumed and does not mutate.
	if got := r.Feed(dispatch.TextOf("x")); got != dispatch.Pass {
		t.Errorf("text while done = %v, want pass", got)
	}
	if r.Line() != "hello" {
		t.Errorf("line mutated while done: %q", r.Line())
	}

	r.Clear()
	if last.Done || last.Line != "" || last.CursorX != 0 {
		t.Errorf("after clear: %+v, want empty not-done state", last)
	}
}

func TestCancel(t *testing.T) {
	var last State
	r := newTestWidget(t, &last)

	feedText(r, "oops")
	feedKey(r, dispatch.SymEscape)

	if !last.Done || !last.Canceled {
		t.Errorf("after escape: done=%v canceled=%v, want both", last.Done, last.Canceled)
	}
}

func TestLabelLayerConsumesBeforeText(t *testing.T) {
	var last State
	r := newTestWidget(t, &last)

	// A consumed label must never reach the text layer, even when its
	// name would be printable.
	if got := r.Feed(dispatch.Label{Name: "paste", Active: true}); got != dispatch.Handled {
		t.Fatalf("paste label = %v, want handled", got)
	}
	if r.Line() != "" {
		t.Errorf("label leaked into buffer: %q", r.Line())
	}

	if got := r.Feed(dispatch.Label{Name: "unknown", Active: true}); got != dispatch.Pass {
		t.Errorf("unknown label = %v, want pass", got)
	}
}

func TestCommitLabel(t *testing.T) {
	var last State
	r := newTestWidget(t, &last)

	feedText(r, "ok")
	r.Feed(dispatch.Label{Name: "commit", Active: true})
	if !last.Done {
		t.Error("commit label should set done")
	}
}

func TestHistorySaveLoadRoundTrip(t *testing.T) {
	var last State
	r := newTestWidget(t, &last)
	r.AddHistory("foo")
	r.AddHistory("bar")

	buf, err := r.SaveState()
	if err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	var last2 State
	r2 := newTestWidget(t, &last2)
	if err := r2.LoadState(buf); err != nil {
		t.Fatalf("LoadState: %v", err)
	}

	got := r2.History().Entries()
	if len(got) != 2 || got[0] != "foo" || got[1] != "bar" {
		t.Errorf("restored history = %v, want [foo bar]", got)
	}
}

func TestLoadStateMalformedKeepsHistory(t *testing.T) {
	var last State
	r := newTestWidget(t, &last)
	r.AddHistory("keep")

	if err := r.LoadState([]byte("garbage")); err == nil {
		t.Fatal("LoadState on garbage should fail")
	}
	if got := r.History().Entries(); len(got) != 1 || got[0] != "keep" {
		t.Errorf("history after failed load = %v, want [keep]", got)
	}
}

func TestHistoryNavigation(t *testing.T) {
	var last State
	r := newTestWidget(t, &last)
	r.AddHistory("first")
	r.AddHistory("second")

	feedText(r, "draft")

	feedKey(r, dispatch.SymUp)
	if last.Line != "second" {
		t.Fatalf("after up: %q, want second", last.Line)
	}
	feedKey(r, dispatch.SymUp)
	if last.Line != "first" {
		t.Fatalf("after up up: %q, want first", last.Line)
	}
	feedKey(r, dispatch.SymUp) // at oldest, no-op
	if last.Line != "first" {
		t.Fatalf("up past oldest changed line: %q", last.Line)
	}

	feedKey(r, dispatch.SymDown)
	if last.Line != "second" {
		t.Fatalf("after down: %q, want second", last.Line)
	}
	feedKey(r, dispatch.SymDown)
	if last.Line != "draft" {
		t.Errorf("down past newest = %q, want stashed draft", last.Line)
	}
}

func TestCompletionHint(t *testing.T) {
	var last State
	complete := func(partial string, index int) (Candidate, bool) {
		cands := []string{"commit", "checkout"}
		if index >= len(cands) {
			return Candidate{}, false
		}
		return Candidate{Text: cands[index]}, true
	}
	r := newTestWidget(t, &last, WithCompletion(complete))

	feedText(r, "c")
	if !last.HasHint || last.Hint != "commit" {
		t.Errorf("hint = %q (has=%v), want commit", last.Hint, last.HasHint)
	}
	if len(last.Candidates) != 2 {
		t.Errorf("candidates = %d, want 2", len(last.Candidates))
	}
}

func TestCompletionEnumerationBounded(t *testing.T) {
	calls := 0
	greedy := func(partial string, index int) (Candidate, bool) {
		calls++
		return Candidate{Text: "x"}, true // never says no
	}
	var last State
	r := newTestWidget(t, &last, WithCompletion(greedy), WithCompletionLimit(8))

	feedText(r, "a")
	if calls != 8 {
		t.Errorf("completion calls = %d, want exactly the cap of 8", calls)
	}
}

func TestHistoryFallbackHint(t *testing.T) {
	var last State
	r := newTestWidget(t, &last)
	r.AddHistory("make test")

	feedText(r, "make")
	if !last.HasHint || last.Hint != "make test" {
		t.Errorf("hint = %q (has=%v), want history fallback", last.Hint, last.HasHint)
	}
}

func TestKillAndWordEditing(t *testing.T) {
	var last State
	r := newTestWidget(t, &last)

	feedText(r, "foo bar baz")
	r.Feed(dispatch.Key{Sym: dispatch.SymRune, Rune: 'w', Mods: dispatch.ModCtrl})
	if last.Line != "foo bar " {
		t.Errorf("after C-w: %q, want \"foo bar \"", last.Line)
	}
	r.Feed(dispatch.Key{Sym: dispatch.SymRune, Rune: 'u', Mods: dispatch.ModCtrl})
	if last.Line != "" {
		t.Errorf("after C-u: %q, want empty", last.Line)
	}
}

func TestMultilineCursorRow(t *testing.T) {
	var last State
	r, err := New(fakeCtx{10, 24}, func(st State) { last = st }, WithMultiline())
	if err != nil {
		t.Fatal(err)
	}

	feedText(r, "ab")
	r.Feed(dispatch.Key{Sym: dispatch.SymEnter, Mods: dispatch.ModShift})
	feedText(r, "cd")

	if last.Line != "ab\ncd" {
		t.Fatalf("line = %q, want ab\\ncd", last.Line)
	}
	if last.CursorX != 2 || last.CursorY != 1 {
		t.Errorf("cursor = (%d, %d), want (2, 1)", last.CursorX, last.CursorY)
	}

	feedKey(r, dispatch.SymUp)
	if last.CursorY != 0 || last.CursorX != 2 {
		t.Errorf("after up: (%d, %d), want (2, 0)", last.CursorX, last.CursorY)
	}
}

func TestPropertyLengthTracksEdits(t *testing.T) {
	var last State
	r := newTestWidget(t, &last)

	inserted, deleted := 0, 0
	feedText(r, "abcdefgh")
	inserted += 8
	feedKey(r, dispatch.SymBackspace)
	deleted++
	feedKey(r, dispatch.SymHome)
	feedKey(r, dispatch.SymDelete)
	deleted++
	feedText(r, "xy")
	inserted += 2

	if got := len([]rune(last.Line)); got != inserted-deleted {
		t.Errorf("length = %d, want %d", got, inserted-deleted)
	}
}
