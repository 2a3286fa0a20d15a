// internal/solver/solver.go
//
// Core types for the Wordle helper engine.
// Defines:
//   - Feedback: per-letter result of a guess (absent/present/correct).
//   - Pattern: the per-position feedback sequence for one guess.
//   - Guess: a guessed word paired with its confirmed feedback.
//   - History: ordered guesses accumulated over one game.
//   - Entry: one dictionary record (identifier + word).
//
// Everything in this package is a pure function over its inputs; the engine
// holds no state and is safe for concurrent callers.
package solver

import (
	"errors"
	"fmt"
)

// WordLength is the word length the helper is tuned for.
// The matching and scoring logic is length-generic; only the default
// dictionaries and the balance targets assume five letters.
const WordLength = 5

// ErrInvalidInput marks boundary violations such as mismatched word/feedback
// lengths. Callers can test for it with errors.Is.
var ErrInvalidInput = errors.New("solver: invalid input")

// Feedback is the result for a single letter of a guess.
// The numeric encoding 0/1/2 is a compatibility contract with external
// serializations and must not change.
type Feedback uint8

const (
	Absent  Feedback = 0 // letter does not occur (beyond accounted copies)
	Present Feedback = 1 // letter occurs elsewhere in the answer
	Correct Feedback = 2 // letter is in exactly this position
)

// Valid reports whether f is one of the three defined values.
func (f Feedback) Valid() bool { return f <= Correct }

func (f Feedback) String() string {
	switch f {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Correct:
		return "correct"
	}
	return fmt.Sprintf("feedback(%d)", uint8(f))
}

// Pattern is the feedback for every position of a guess, in position order.
type Pattern []Feedback

// Key returns the pattern as a compact map key.
func (p Pattern) Key() string {
	b := make([]byte, len(p))
	for i, f := range p {
		b[i] = byte(f)
	}
	return string(b)
}

// Equal reports whether two patterns are identical.
func (p Pattern) Equal(q Pattern) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Guess is one recorded guess: the word as entered and the feedback the game
// produced for it. Immutable once constructed.
type Guess struct {
	Word     string
	Feedback Pattern
}

// NewGuess validates the word/feedback invariant and returns the guess.
// The word is uppercased; feedback values outside 0..2 are rejected.
func NewGuess(word string, feedback Pattern) (Guess, error) {
	w := upper(word)
	if len(w) != len(feedback) {
		return Guess{}, fmt.Errorf("%w: word %q has %d letters but feedback has %d entries",
			ErrInvalidInput, word, len(w), len(feedback))
	}
	if !isAlpha(w) {
		return Guess{}, fmt.Errorf("%w: word %q is not alphabetic", ErrInvalidInput, word)
	}
	for _, f := range feedback {
		if !f.Valid() {
			return Guess{}, fmt.Errorf("%w: feedback value %d out of range", ErrInvalidInput, uint8(f))
		}
	}
	fb := make(Pattern, len(feedback))
	copy(fb, feedback)
	return Guess{Word: w, Feedback: fb}, nil
}

// History is the chronological sequence of guesses for one game.
// The engine only reads it; ownership and mutation belong to the caller.
type History []Guess

// Entry is one dictionary record as supplied by a dictionary provider.
type Entry struct {
	ID   int64
	Word string
}

// upper uppercases ASCII letters without touching other bytes.
func upper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

// isAlpha reports whether s consists only of uppercase ASCII letters.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
