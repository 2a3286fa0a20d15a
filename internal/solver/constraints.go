// internal/solver/constraints.go
//
// Constraint matching: decide whether a candidate word is consistent with
// recorded feedback. The true answer is unknown, so the matcher cannot
// re-simulate; instead it derives per-letter count and position constraints
// analytically from each (word, feedback) pair:
//   - minimum required count: Correct + Present occurrences of the letter,
//   - maximum allowed count: set by an Absent mark to the number of
//     Correct/Present occurrences of the same letter elsewhere in the guess,
//   - forbidden positions: every Present position of the letter.
// The buckets never reject the true answer: any candidate whose simulated
// pattern equals the recorded one passes. The converse does not hold; a
// letter marked Absent in one slot but Present elsewhere may sit in that
// very slot in an accepted candidate, where resimulation would mark it
// Correct. The filter is slightly wider than literal resimulation.
package solver

// letterConstraints holds the per-letter buckets derived from one guess.
// maxAllowed is -1 while no Absent mark has bounded the letter.
type letterConstraints struct {
	minRequired [26]int
	maxAllowed  [26]int
	forbidden   [26]uint32 // bitmask of positions, word length <= 32
}

// deriveConstraints analyzes one guess into count/position constraints.
func deriveConstraints(g Guess) letterConstraints {
	var c letterConstraints
	for i := range c.maxAllowed {
		c.maxAllowed[i] = -1
	}

	for i := 0; i < len(g.Word); i++ {
		l := g.Word[i] - 'A'
		switch g.Feedback[i] {
		case Correct:
			c.minRequired[l]++
		case Present:
			c.minRequired[l]++
			c.forbidden[l] |= 1 << uint(i)
		case Absent:
			// The answer holds exactly as many copies of this letter as the
			// Correct/Present marks elsewhere in this guess account for.
			used := 0
			for j := 0; j < len(g.Word); j++ {
				if j != i && g.Word[j] == g.Word[i] && g.Feedback[j] != Absent {
					used++
				}
			}
			c.maxAllowed[l] = used
		}
	}
	return c
}

// Matches reports whether candidate is consistent with one recorded guess.
// A candidate of a different length never matches.
func Matches(candidate string, g Guess) bool {
	w := upper(candidate)
	if len(w) != len(g.Word) {
		return false
	}

	// Correct positions pin the letter exactly.
	for i := 0; i < len(w); i++ {
		if g.Feedback[i] == Correct && w[i] != g.Word[i] {
			return false
		}
	}

	c := deriveConstraints(g)

	var counts [26]int
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return false
		}
		counts[w[i]-'A']++
	}

	for l := 0; l < 26; l++ {
		if counts[l] < c.minRequired[l] {
			return false
		}
		if c.maxAllowed[l] >= 0 && counts[l] > c.maxAllowed[l] {
			return false
		}
	}

	for i := 0; i < len(w); i++ {
		if c.forbidden[w[i]-'A']&(1<<uint(i)) != 0 {
			return false
		}
	}
	return true
}

// MatchesHistory reports whether candidate is consistent with every guess in
// the history. One inconsistency anywhere rejects the candidate.
func MatchesHistory(candidate string, history History) bool {
	for _, g := range history {
		if !Matches(candidate, g) {
			return false
		}
	}
	return true
}
