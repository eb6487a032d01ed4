package complete

import (
	"errors"
	"testing"

	"github.com/dshills/tuikit/readline"
)

func collect(fn readline.CompleteFunc, partial string, max int) []string {
	var out []string
	for i := 0; i < max; i++ {
		cand, ok := fn(partial, i)
		if !ok {
			break
		}
		out = append(out, cand.Text)
	}
	return out
}

func TestStatic(t *testing.T) {
	fn := Static([]string{"push", "pull", "pip"})

	tests := []struct {
		partial string
		want    []string
	}{
		{"p", []string{"pip", "pull", "push"}},
		{"pu", []string{"pull", "push"}},
		{"push", []string{"push"}},
		{"x", nil},
	}
	for _, tt := range tests {
		got := collect(fn, tt.partial, 10)
		if len(got) != len(tt.want) {
			t.Errorf("Static(%q) = %v, want %v", tt.partial, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Static(%q)[%d] = %q, want %q", tt.partial, i, got[i], tt.want[i])
			}
		}
	}
}

func TestChain(t *testing.T) {
	fn := Chain(
		Static([]string{"alpha"}),
		Static([]string{"apex", "arch"}),
	)

	got := collect(fn, "a", 10)
	want := []string{"alpha", "apex", "arch"}
	if len(got) != len(want) {
		t.Fatalf("Chain = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("Chain[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLuaProvider(t *testing.T) {
	p, err := NewLua(`
		local words = {"commit", "checkout", "cherry-pick"}
		function complete(partial, index)
			local n = 0
			for _, w in ipairs(words) do
				if string.sub(w, 1, #partial) == partial then
					if n == index then
						return w, 128, 128, 128
					end
					n = n + 1
				end
			end
			return nil
		end
	`)
	if err != nil {
		t.Fatalf("NewLua: %v", err)
	}
	defer p.Close()

	got := collect(p.Complete, "ch", 10)
	want := []string{"checkout", "cherry-pick"}
	if len(got) != len(want) {
		t.Fatalf("lua complete = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("lua complete[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	cand, ok := p.Complete("ch", 0)
	if !ok || !cand.HasColor || cand.RGB != [3]uint8{128, 128, 128} {
		t.Errorf("color hint = %+v (ok=%v), want gray", cand, ok)
	}
}

func TestLuaProviderErrors(t *testing.T) {
	if _, err := NewLua(`complete = "not a function"`); !errors.Is(err, ErrNoCompleteFunc) {
		t.Errorf("non-function complete: err = %v, want ErrNoCompleteFunc", err)
	}
	if _, err := NewLua(`this is not lua`); err == nil {
		t.Error("syntax error should fail")
	}
}

func TestLuaProviderScriptErrorEndsEnumeration(t *testing.T) {
	p, err := NewLua(`function complete(partial, index) error("boom") end`)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	if _, ok := p.Complete("x", 0); ok {
		t.Error("erroring script should yield no candidates")
	}
}
