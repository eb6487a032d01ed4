package dispatch

import "testing"

func TestChainStopsAtFirstHandled(t *testing.T) {
	var seen []string

	label := HandlerFunc(func(ev Event) Result {
		seen = append(seen, "label")
		if _, ok := ev.(Label); ok {
			return Handled
		}
		return Pass
	})
	text := HandlerFunc(func(ev Event) Result {
		seen = append(seen, "text")
		if _, ok := ev.(Text); ok {
			return Handled
		}
		return Pass
	})
	key := HandlerFunc(func(ev Event) Result {
		seen = append(seen, "key")
		return Pass
	})

	chain := NewChain(label, text, key)

	seen = nil
	if got := chain.Offer(Label{Name: "paste", Active: true}); got != Handled {
		t.Errorf("label offer = %v, want handled", got)
	}
	if len(seen) != 1 || seen[0] != "label" {
		t.Errorf("layers after consumed label = %v, want [label]", seen)
	}

	seen = nil
	if got := chain.Offer(TextOf("a")); got != Handled {
		t.Errorf("text offer = %v, want handled", got)
	}
	if len(seen) != 2 || seen[1] != "text" {
		t.Errorf("layers for text = %v, want [label text]", seen)
	}

	seen = nil
	if got := chain.Offer(Key{Sym: SymEnter}); got != Pass {
		t.Errorf("unclaimed key offer = %v, want pass", got)
	}
	if len(seen) != 3 {
		t.Errorf("unclaimed event visited %d layers, want all 3", len(seen))
	}
}

func TestChainZeroValuePasses(t *testing.T) {
	var chain Chain
	if got := chain.Offer(TextOf("x")); got != Pass {
		t.Errorf("empty chain = %v, want pass", got)
	}
}

func TestChainAppendOrder(t *testing.T) {
	var order []int
	chain := NewChain()
	for i := 0; i < 3; i++ {
		i := i
		chain.Append(HandlerFunc(func(Event) Result {
			order = append(order, i)
			return Pass
		}))
	}
	chain.Offer(Key{Sym: SymLeft})
	for i, v := range order {
		if v != i {
			t.Fatalf("layer order = %v, want ascending", order)
		}
	}
}

func TestKindStrings(t *testing.T) {
	tests := []struct {
		ev   Event
		want Kind
	}{
		{Label{}, KindLabel},
		{Text{}, KindText},
		{Key{}, KindKey},
		{MouseButton{}, KindMouseButton},
	}
	for _, tt := range tests {
		if tt.ev.Kind() != tt.want {
			t.Errorf("%T kind = %v, want %v", tt.ev, tt.ev.Kind(), tt.want)
		}
	}
}
