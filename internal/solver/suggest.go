// internal/solver/suggest.go
//
// Suggestion selection: filter the dictionary through the guess history,
// then rank the survivors. Small surviving sets short-circuit the scorer;
// empty dictionaries and unsatisfiable histories degrade to a fixed list of
// strong opening words rather than failing (a suggestion request must
// always succeed).
package solver

import (
	"runtime"
	"sort"
	"sync"
)

// FallbackWords are returned when no dictionary is available or no candidate
// survives the constraints. Chosen as strong, well-known opening guesses.
var FallbackWords = []string{"SLATE", "CRANE", "AUDIO", "ARISE", "OUTER"}

// maxSuggestions caps the ranked list returned to callers.
const maxSuggestions = 10

// unscoredLimit is the surviving-set size at or below which all candidates
// are returned as-is; scoring overhead is not worth it and seeing every
// option is more useful than a ranking.
const unscoredLimit = 10

// parallelThreshold is the candidate count above which scoring fans out
// across CPUs. Entropy is quadratic in the candidate count, so small sets
// are cheaper to score serially than to schedule.
const parallelThreshold = 256

// ScoredCandidate is a candidate with its composite score and the isolated
// information-gain component.
type ScoredCandidate struct {
	Word     string
	Score    float64
	InfoGain float64
}

// Result is the outcome of one suggestion request.
type Result struct {
	// Words is the ranked suggestion list, best first.
	Words []string
	// PossibleCount is the number of dictionary words still consistent with
	// the history. Zero when the fallback list was used.
	PossibleCount int
	// Fallback is true when Words is the fixed fallback list.
	Fallback bool
}

// Suggest filters dictionary through history and returns ranked next-guess
// suggestions plus the surviving candidate count.
func Suggest(dictionary []Entry, history History) Result {
	return DefaultWeights().Suggest(dictionary, history)
}

// Suggest ranks candidates under these weights. See Suggest.
func (wt Weights) Suggest(dictionary []Entry, history History) Result {
	if len(dictionary) == 0 {
		return Result{Words: fallback(), Fallback: true}
	}

	surviving := Filter(dictionary, history, WordLength)
	switch n := len(surviving); {
	case n == 0:
		return Result{Words: fallback(), Fallback: true}
	case n == 1:
		return Result{Words: []string{surviving[0].Word}, PossibleCount: 1}
	case n <= unscoredLimit:
		words := make([]string, n)
		for i, e := range surviving {
			words[i] = e.Word
		}
		return Result{Words: words, PossibleCount: n}
	}

	candidates := make([]string, len(surviving))
	for i, e := range surviving {
		candidates[i] = e.Word
	}

	scored := wt.scoreAll(candidates, history)

	// Stable: equal scores keep dictionary order.
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	top := scored
	if len(top) > maxSuggestions {
		top = top[:maxSuggestions]
	}
	words := make([]string, len(top))
	for i, sc := range top {
		words[i] = sc.Word
	}
	return Result{Words: words, PossibleCount: len(candidates)}
}

// scoreAll scores every candidate against the full surviving set. Each
// candidate is independent, so large sets fan out across CPUs with workers
// writing to disjoint indices.
func (wt Weights) scoreAll(candidates []string, history History) []ScoredCandidate {
	scored := make([]ScoredCandidate, len(candidates))

	scoreRange := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			score, gain := wt.scoreWithGain(candidates[i], candidates, history)
			scored[i] = ScoredCandidate{Word: candidates[i], Score: score, InfoGain: gain}
		}
	}

	if len(candidates) < parallelThreshold {
		scoreRange(0, len(candidates))
		return scored
	}

	workers := runtime.NumCPU()
	if workers > len(candidates) {
		workers = len(candidates)
	}
	chunk := (len(candidates) + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < len(candidates); lo += chunk {
		hi := lo + chunk
		if hi > len(candidates) {
			hi = len(candidates)
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			scoreRange(lo, hi)
		}(lo, hi)
	}
	wg.Wait()

	return scored
}

// fallback returns a copy so callers cannot mutate the shared list.
func fallback() []string {
	out := make([]string, len(FallbackWords))
	copy(out, FallbackWords)
	return out
}
