package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/roseu7/wordle-helper/internal/solver"
)

func testGuess(t *testing.T) solver.Guess {
	t.Helper()
	g, err := solver.NewGuess("CRANE", solver.Pattern{0, 0, 2, 0, 0})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestCreateAndGet(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	s, err := st.Create(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if s.ID == "" {
		t.Fatal("empty session ID")
	}

	got, err := st.Get(ctx, s.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != s.ID || len(got.History) != 0 {
		t.Errorf("got %+v, want empty session %s", got, s.ID)
	}

	if _, err := st.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) = %v, want ErrNotFound", err)
	}
}

func TestAppendAndReset(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()
	s, _ := st.Create(ctx)

	n, err := st.AppendGuess(ctx, s.ID, testGuess(t))
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("AppendGuess length = %d, want 1", n)
	}
	got, _ := st.Get(ctx, s.ID)
	if len(got.History) != 1 || got.History[0].Word != "CRANE" {
		t.Errorf("history = %+v, want one CRANE guess", got.History)
	}

	if err := st.Reset(ctx, s.ID); err != nil {
		t.Fatal(err)
	}
	got, _ = st.Get(ctx, s.ID)
	if len(got.History) != 0 {
		t.Errorf("history after reset = %+v, want empty", got.History)
	}

	if _, err := st.AppendGuess(ctx, "missing", testGuess(t)); !errors.Is(err, ErrNotFound) {
		t.Errorf("AppendGuess(missing) = %v, want ErrNotFound", err)
	}
}

func TestGetReturnsSnapshot(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()
	s, _ := st.Create(ctx)
	_, _ = st.AppendGuess(ctx, s.ID, testGuess(t))

	snap, _ := st.Get(ctx, s.ID)
	snap.History[0].Word = "MUTATED"

	again, _ := st.Get(ctx, s.ID)
	if again.History[0].Word != "CRANE" {
		t.Error("mutating a snapshot leaked into the store")
	}
}

func TestConcurrentAppends(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()
	s, _ := st.Create(ctx)

	g := testGuess(t)
	const n = 50
	lengths := make([]int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			lengths[i], _ = st.AppendGuess(ctx, s.ID, g)
		}(i)
	}
	wg.Wait()

	got, _ := st.Get(ctx, s.ID)
	if len(got.History) != n {
		t.Errorf("history length = %d, want %d", len(got.History), n)
	}

	// Each append reports a distinct length, so every concurrent caller saw
	// its own position rather than a stale count.
	seen := make(map[int]bool, n)
	for _, l := range lengths {
		if l < 1 || l > n || seen[l] {
			t.Fatalf("append lengths %v are not a permutation of 1..%d", lengths, n)
		}
		seen[l] = true
	}
}
