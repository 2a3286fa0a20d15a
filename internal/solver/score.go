// internal/solver/score.go
//
// Candidate scoring: a composite of letter diversity, a common-letter
// frequency prior, vowel/consonant balance, and entropy-based information
// gain, with phase-dependent weighting (opening guess vs. late game).
// The constants are empirically tuned heuristics; they are exposed as a
// Weights struct so callers can adjust them, with defaults that reproduce
// the reference behavior exactly.
package solver

import (
	"math"
	"strings"
)

// freqOrder ranks letters from most to least common in English; earlier
// letters contribute a larger prior.
const freqOrder = "EAIOTRNSLCUDPMHGBFYWKVXZJQ"

const vowels = "AEIOU"

// Weights are the tunable scoring parameters.
type Weights struct {
	Diversity           float64 // per distinct letter
	FrequencyStep       float64 // per rank step of the frequency prior
	FirstGuessDiversity float64 // extra per distinct letter on the opening guess
	EntropyScale        float64 // information gain is normalized then scaled by this
	LateGameEntropy     float64 // extra information-gain multiple once late game
	LateGameGuesses     int     // guess count at which late game begins
	ConfidenceBonus     float64 // flat bonus for small late-game candidate sets
	ConfidenceThreshold int     // candidate-set size limit for the bonus
}

// DefaultWeights returns the reference scoring parameters.
func DefaultWeights() Weights {
	return Weights{
		Diversity:           2.0,
		FrequencyStep:       0.1,
		FirstGuessDiversity: 3.0,
		EntropyScale:        10.0,
		LateGameEntropy:     2.0,
		LateGameGuesses:     3,
		ConfidenceBonus:     5.0,
		ConfidenceThreshold: 50,
	}
}

// Score rates word as the next guess given the surviving candidates and the
// guess history. Higher is better. The word is assumed uppercased.
func Score(word string, candidates []string, history History) float64 {
	return DefaultWeights().Score(word, candidates, history)
}

// Score rates word under these weights. See Score.
func (wt Weights) Score(word string, candidates []string, history History) float64 {
	score, _ := wt.scoreWithGain(word, candidates, history)
	return score
}

// scoreWithGain computes the composite score and the isolated
// information-gain component in one pass (entropy dominates the cost, so it
// is computed once and reused for the late-game weighting).
func (wt Weights) scoreWithGain(word string, candidates []string, history History) (float64, float64) {
	score := 0.0

	distinct := distinctLetters(word)
	score += float64(distinct) * wt.Diversity

	// Frequency prior: each occurrence contributes by the letter's rank.
	for i := 0; i < len(word); i++ {
		if pos := strings.IndexByte(freqOrder, word[i]); pos >= 0 {
			score += float64(26-pos) * wt.FrequencyStep
		}
	}

	score += balanceScore(word)

	infoGain := wt.InformationGain(word, candidates)
	score += infoGain

	switch guessCount := len(history); {
	case guessCount == 0:
		// Opening guess: reinforce diversity over everything else.
		score += float64(distinct) * wt.FirstGuessDiversity
	case guessCount >= wt.LateGameGuesses:
		// Late game: narrowing down matters more than coverage.
		score += infoGain * wt.LateGameEntropy
		if len(candidates) <= wt.ConfidenceThreshold {
			score += wt.ConfidenceBonus
		}
	}

	return score, infoGain
}

// InformationGain measures how evenly word is expected to partition the
// candidate set across feedback patterns, as Shannon entropy of the
// partition-size distribution normalized to [0, EntropyScale]. It is zero
// for candidate sets of size <= 1 and when every candidate yields the same
// pattern.
func (wt Weights) InformationGain(word string, candidates []string) float64 {
	if len(candidates) <= 1 {
		return 0
	}

	groups := make(map[string]int)
	for _, candidate := range candidates {
		pattern, err := Simulate(word, candidate)
		if err != nil {
			continue
		}
		groups[pattern.Key()]++
	}

	total := float64(len(candidates))
	entropy := 0.0
	for _, count := range groups {
		p := float64(count) / total
		entropy -= p * math.Log2(p)
	}

	// log2(1) == 0 when only one pattern is reachable; that is zero gain,
	// not a division by zero.
	maxEntropy := math.Log2(float64(len(groups)))
	if maxEntropy <= 0 {
		return 0
	}
	return entropy / maxEntropy * wt.EntropyScale
}

// balanceScore rewards words near the ideal vowel/consonant split
// (2 vowels / 3 consonants for five-letter words, scaled proportionally for
// other lengths). Never negative.
func balanceScore(word string) float64 {
	vowelCount := 0
	for i := 0; i < len(word); i++ {
		if strings.IndexByte(vowels, word[i]) >= 0 {
			vowelCount++
		}
	}
	consonantCount := len(word) - vowelCount

	n := float64(len(word))
	vowelTarget := 2.0 * n / 5.0
	consonantTarget := 3.0 * n / 5.0

	balance := n - math.Abs(float64(vowelCount)-vowelTarget) - math.Abs(float64(consonantCount)-consonantTarget)
	return math.Max(0, balance)
}

// distinctLetters counts the distinct letters of an uppercase word.
func distinctLetters(word string) int {
	var seen [26]bool
	n := 0
	for i := 0; i < len(word); i++ {
		if word[i] < 'A' || word[i] > 'Z' {
			continue
		}
		if !seen[word[i]-'A'] {
			seen[word[i]-'A'] = true
			n++
		}
	}
	return n
}
