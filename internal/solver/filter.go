// internal/solver/filter.go
//
// Candidate filtering: normalize a dictionary and keep the entries
// consistent with the accumulated guess history.
package solver

// Filter returns the dictionary entries that survive the guess history.
// Words are uppercased; entries that are not alphabetic or not length
// letters long are dropped silently (normalization, not an error).
// Dictionary order is preserved and entries are assumed unique by ID.
func Filter(dictionary []Entry, history History, length int) []Entry {
	out := make([]Entry, 0, len(dictionary))
	for _, e := range dictionary {
		w := upper(e.Word)
		if len(w) != length || !isAlpha(w) {
			continue
		}
		if !MatchesHistory(w, history) {
			continue
		}
		out = append(out, Entry{ID: e.ID, Word: w})
	}
	return out
}
