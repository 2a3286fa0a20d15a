// Command evaluate benchmarks the suggestion engine by self-play: every
// dictionary word is taken as the hidden answer, and the helper repeatedly
// guesses its own top suggestion until the answer is found or the guess cap
// is reached. Reports the average number of guesses and any failures.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/schollz/progressbar/v3"

	"github.com/roseu7/wordle-helper/internal/dict"
	"github.com/roseu7/wordle-helper/internal/solver"
)

func main() {
	wordsPath := flag.String("words", "", "word list file (one word per line); embedded defaults when empty")
	maxGuesses := flag.Int("max", 10, "guess cap per answer before counting a failure")
	limit := flag.Int("limit", 0, "evaluate only the first N answers (0 = all)")
	flag.Parse()

	var provider dict.Provider = dict.EmbeddedProvider{}
	if *wordsPath != "" {
		provider = dict.FileProvider{Path: *wordsPath}
	}
	entries, err := provider.Entries(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, "load dictionary:", err)
		os.Exit(1)
	}

	// Normalize once so answers and candidates share the same word forms.
	answers := solver.Filter(entries, nil, solver.WordLength)
	if *limit > 0 && *limit < len(answers) {
		answers = answers[:*limit]
	}
	if len(answers) == 0 {
		fmt.Fprintln(os.Stderr, "no usable words in dictionary")
		os.Exit(1)
	}

	fmt.Printf("evaluating %d answers over a %d-word dictionary\n", len(answers), len(entries))
	bar := progressbar.Default(int64(len(answers)))

	var (
		mu           sync.Mutex
		totalGuesses int
		solved       int
		failed       []string
	)

	workers := runtime.NumCPU()
	chunk := (len(answers) + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < len(answers); lo += chunk {
		hi := lo + chunk
		if hi > len(answers) {
			hi = len(answers)
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for _, answer := range answers[lo:hi] {
				guesses, ok := play(entries, answer.Word, *maxGuesses)
				mu.Lock()
				if ok {
					solved++
					totalGuesses += guesses
				} else {
					failed = append(failed, answer.Word)
				}
				mu.Unlock()
				_ = bar.Add(1)
			}
		}(lo, hi)
	}
	wg.Wait()

	fmt.Printf("solved %d/%d answers\n", solved, len(answers))
	if solved > 0 {
		fmt.Printf("average guesses: %.3f\n", float64(totalGuesses)/float64(solved))
	}
	if len(failed) > 0 {
		fmt.Printf("unsolved within %d guesses: %v\n", *maxGuesses, failed)
	}
}

// play runs one self-play game and returns the number of guesses used.
// Each round guesses the top suggestion and records the true feedback, which
// always eliminates the guessed word while keeping the answer alive, so the
// loop makes progress every round.
func play(entries []solver.Entry, answer string, maxGuesses int) (int, bool) {
	var history solver.History
	for round := 1; round <= maxGuesses; round++ {
		result := solver.Suggest(entries, history)
		if len(result.Words) == 0 {
			return round, false
		}
		word := result.Words[0]
		if word == answer {
			return round, true
		}
		pattern, err := solver.Simulate(word, answer)
		if err != nil {
			return round, false
		}
		history = append(history, solver.Guess{Word: word, Feedback: pattern})
	}
	return maxGuesses, false
}
