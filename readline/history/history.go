// Package history implements the append-only line history used by the
// readline widget, with relative navigation, prefix matching, and a
// versioned binary codec for persistence across process lifetimes.
package history

// Store is an append-only ordered log of committed lines. Entries are never
// edited or removed individually; when the store grows past its limit the
// oldest entries are dropped as a block.
//
// A Store additionally tracks a navigation position for Prev/Next stepping.
// Navigation state is transient and never persisted.
type Store struct {
	entries []string
	limit   int

	// nav is the index of the entry currently visited, or len(entries)
	// when navigation is at the "live" (not yet committed) line.
	nav int
}

// DefaultLimit is the entry cap used when none is configured.
const DefaultLimit = 1000

// NewStore creates a store capped at limit entries. A non-positive limit
// selects DefaultLimit.
func NewStore(limit int) *Store {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Store{limit: limit}
}

// Append adds a line at the end of the log and resets navigation.
func (s *Store) Append(line string) {
	s.entries = append(s.entries, line)
	if len(s.entries) > s.limit {
		excess := len(s.entries) - s.limit
		s.entries = append([]string(nil), s.entries[excess:]...)
	}
	s.ResetNav()
}

// Len returns the number of stored entries.
func (s *Store) Len() int { return len(s.entries) }

// At returns the entry at insertion index i, oldest first.
func (s *Store) At(i int) string { return s.entries[i] }

// Entries returns a copy of the log, oldest first.
func (s *Store) Entries() []string {
	return append([]string(nil), s.entries...)
}

// MatchPrefix returns the most recent entry that begins with prefix. An
// empty prefix matches nothing.
func (s *Store) MatchPrefix(prefix string) (string, bool) {
	if prefix == "" {
		return "", false
	}
	for i := len(s.entries) - 1; i >= 0; i-- {
		e := s.entries[i]
		if len(e) >= len(prefix) && e[:len(prefix)] == prefix {
			return e, true
		}
	}
	return "", false
}

// Prev steps navigation one entry back in time and returns it. The second
// return is false when the store is empty or navigation is already at the
// oldest entry.
func (s *Store) Prev() (string, bool) {
	if s.nav == 0 || len(s.entries) == 0 {
		return "", false
	}
	s.nav--
	return s.entries[s.nav], true
}

// Next steps navigation one entry forward and returns it. The second return
// is false once navigation moves past the newest entry, at which point the
// caller should restore the stashed live line.
func (s *Store) Next() (string, bool) {
	if s.nav >= len(s.entries) {
		return "", false
	}
	s.nav++
	if s.nav == len(s.entries) {
		return "", false
	}
	return s.entries[s.nav], true
}

// Navigating reports whether navigation is positioned on a stored entry
// rather than the live line.
func (s *Store) Navigating() bool { return s.nav < len(s.entries) }

// ResetNav moves navigation back to the live line.
func (s *Store) ResetNav() { s.nav = len(s.entries) }

// replace swaps the full entry list. Used by Decode after a successful
// parse so that failures never leave a partial overwrite.
func (s *Store) replace(entries []string) {
	if len(entries) > s.limit {
		entries = entries[len(entries)-s.limit:]
	}
	s.entries = entries
	s.ResetNav()
}
