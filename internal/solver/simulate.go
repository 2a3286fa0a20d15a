// internal/solver/simulate.go
//
// Pattern simulation: the feedback the game would produce for a guess
// against a hypothetical answer. Standard two-pass Wordle scoring so that
// duplicate letters are accounted exactly once per answer occurrence.
package solver

import "fmt"

// Simulate computes the feedback pattern for guess against answer.
// Both words must be the same length and are compared case-insensitively.
//
// Pass 1 marks exact matches Correct and counts the remaining answer
// letters. Pass 2 walks the non-correct positions left to right, marking
// Present while a counted copy of the letter remains, Absent otherwise.
func Simulate(guess, answer string) (Pattern, error) {
	g := upper(guess)
	a := upper(answer)
	if len(g) != len(a) {
		return nil, fmt.Errorf("%w: guess %q and answer %q differ in length", ErrInvalidInput, guess, answer)
	}

	n := len(g)
	pattern := make(Pattern, n)

	// Remaining answer letters not consumed by exact matches.
	var counts [26]int
	for i := 0; i < n; i++ {
		if g[i] == a[i] {
			pattern[i] = Correct
		} else if a[i] >= 'A' && a[i] <= 'Z' {
			counts[a[i]-'A']++
		}
	}

	for i := 0; i < n; i++ {
		if pattern[i] == Correct {
			continue
		}
		if g[i] >= 'A' && g[i] <= 'Z' && counts[g[i]-'A'] > 0 {
			pattern[i] = Present
			counts[g[i]-'A']--
		}
	}
	return pattern, nil
}
