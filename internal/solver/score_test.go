package solver

import (
	"math"
	"testing"
)

func TestInformationGainBounds(t *testing.T) {
	wt := DefaultWeights()
	candidates := []string{"CRANE", "SLATE", "AUDIO", "GRAPE", "SWAMP", "BLIMP", "MELEE", "SHALT"}
	for _, word := range candidates {
		gain := wt.InformationGain(word, candidates)
		if gain < 0 || gain > 10 {
			t.Errorf("InformationGain(%q) = %f, want within [0, 10]", word, gain)
		}
	}
}

func TestInformationGainZeroCases(t *testing.T) {
	wt := DefaultWeights()

	if gain := wt.InformationGain("CRANE", nil); gain != 0 {
		t.Errorf("empty candidate set: gain = %f, want 0", gain)
	}
	if gain := wt.InformationGain("CRANE", []string{"SLATE"}); gain != 0 {
		t.Errorf("single candidate: gain = %f, want 0", gain)
	}
	// ZZZZZ hits neither AAAAA nor BBBBB: one all-absent pattern group.
	if gain := wt.InformationGain("ZZZZZ", []string{"AAAAA", "BBBBB"}); gain != 0 {
		t.Errorf("single pattern group: gain = %f, want 0", gain)
	}
}

func TestInformationGainEvenSplit(t *testing.T) {
	wt := DefaultWeights()
	// AABBB distinguishes the two candidates perfectly: two groups of one,
	// maximum entropy, full gain.
	gain := wt.InformationGain("AABBB", []string{"AAAAA", "BBBBB"})
	if math.Abs(gain-10) > 1e-9 {
		t.Errorf("perfect split: gain = %f, want 10", gain)
	}
}

func TestScoreKnownValues(t *testing.T) {
	// With no candidates the entropy term is zero and the remaining terms
	// can be computed by hand.
	tests := []struct {
		word string
		want float64
	}{
		// 1 distinct letter (2.0) + five A's at rank 1 (5×2.5) + no balance
		// + opening bonus (3.0)
		{"AAAAA", 2.0 + 12.5 + 0 + 3.0},
		// 5 distinct (10.0) + C1.7 R2.1 A2.5 N2.0 E2.6 + ideal balance (5.0)
		// + opening bonus (15.0)
		{"CRANE", 10.0 + 10.9 + 5.0 + 15.0},
	}
	for _, tt := range tests {
		if got := Score(tt.word, nil, nil); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Score(%q, nil, nil) = %f, want %f", tt.word, got, tt.want)
		}
	}
}

func TestScoreOpeningBonus(t *testing.T) {
	candidates := []string{"CRANE", "SLATE", "GRAPE"}
	oneGuess := History{mustGuess(t, "AUDIO", Pattern{Absent, Absent, Absent, Absent, Absent})}

	opening := Score("CRANE", candidates, nil)
	midGame := Score("CRANE", candidates, oneGuess)

	// Only the opening bonus differs: 3.0 per distinct letter.
	if diff := opening - midGame; math.Abs(diff-15.0) > 1e-9 {
		t.Errorf("opening bonus = %f, want 15.0", diff)
	}
}

func TestScoreLateGameWeighting(t *testing.T) {
	candidates := []string{"CRANE", "SLATE", "GRAPE", "SWAMP"}
	gray := Pattern{Absent, Absent, Absent, Absent, Absent}
	oneGuess := History{mustGuess(t, "ZZZZZ", gray)}
	lateGame := History{
		mustGuess(t, "ZZZZZ", gray),
		mustGuess(t, "QQQQQ", gray),
		mustGuess(t, "JJJJJ", gray),
	}

	wt := DefaultWeights()
	mid := wt.Score("CRANE", candidates, oneGuess)
	late := wt.Score("CRANE", candidates, lateGame)
	gain := wt.InformationGain("CRANE", candidates)

	// Late game adds the doubled entropy term plus the small-set bonus.
	want := gain*wt.LateGameEntropy + wt.ConfidenceBonus
	if diff := late - mid; math.Abs(diff-want) > 1e-9 {
		t.Errorf("late-game delta = %f, want %f", diff, want)
	}
}
