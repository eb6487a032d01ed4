// Package complete provides ready-made completion callbacks for the
// readline widget: a static word list and a Lua-scripted provider.
package complete

import (
	"sort"
	"strings"

	"github.com/dshills/tuikit/readline"
)

// Static returns a completion callback over a fixed word list. Candidates
// are the words with the partial line as prefix, in sorted order.
func Static(words []string) readline.CompleteFunc {
	sorted := append([]string(nil), words...)
	sort.Strings(sorted)

	return func(partial string, index int) (readline.Candidate, bool) {
		n := 0
		for _, w := range sorted {
			if !strings.HasPrefix(w, partial) {
				continue
			}
			if n == index {
				return readline.Candidate{Text: w}, true
			}
			n++
		}
		return readline.Candidate{}, false
	}
}

// Chain merges providers: candidates from the first provider are exhausted
// before the second is consulted, and so on.
func Chain(fns ...readline.CompleteFunc) readline.CompleteFunc {
	return func(partial string, index int) (readline.Candidate, bool) {
		for _, fn := range fns {
			n := 0
			for {
				cand, ok := fn(partial, n)
				if !ok {
					break
				}
				if index == 0 {
					return cand, true
				}
				index--
				n++
			}
		}
		return readline.Candidate{}, false
	}
}
