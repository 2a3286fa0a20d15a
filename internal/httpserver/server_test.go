package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/roseu7/wordle-helper/internal/session"
	"github.com/roseu7/wordle-helper/internal/solver"
)

func newTestServer(words ...string) *Server {
	dict := make([]solver.Entry, len(words))
	for i, w := range words {
		dict[i] = solver.Entry{ID: int64(i + 1), Word: w}
	}
	return New(session.NewMemoryStore(), dict)
}

func doJSON(t *testing.T, s *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rec.Body.String())
	}
	return v
}

func newSession(t *testing.T, s *Server) (string, string) {
	t.Helper()
	rec := doJSON(t, s, http.MethodPost, "/session/new", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /session/new: status %d, body %s", rec.Code, rec.Body.String())
	}
	res := decode[newSessionRes](t, rec)
	if res.SessionID == "" || res.Token == "" {
		t.Fatalf("incomplete session response: %+v", res)
	}
	return res.SessionID, res.Token
}

func TestHealth(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodGet, "/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /health: status %d", rec.Code)
	}
}

func TestSessionRoutesRequireToken(t *testing.T) {
	s := newTestServer("CRANE")
	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/session"},
		{http.MethodPost, "/session/guess"},
		{http.MethodPost, "/session/reset"},
		{http.MethodGet, "/suggest"},
	} {
		rec := doJSON(t, s, tc.method, tc.path, "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without token: status %d, want 401", tc.method, tc.path, rec.Code)
		}
	}

	rec := doJSON(t, s, http.MethodGet, "/suggest", "not-a-jwt", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("GET /suggest with garbage token: status %d, want 401", rec.Code)
	}
}

func TestGuessValidation(t *testing.T) {
	s := newTestServer("CRANE", "SLATE")
	_, token := newSession(t, s)

	// feedback length must match the word
	rec := doJSON(t, s, http.MethodPost, "/session/guess", token,
		guessPayload{Word: "CRANE", Feedback: []int{0, 0, 2}})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("short feedback: status %d, want 400", rec.Code)
	}

	// feedback values limited to 0..2
	rec = doJSON(t, s, http.MethodPost, "/session/guess", token,
		guessPayload{Word: "CRANE", Feedback: []int{0, 0, 2, 0, 7}})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("out-of-range feedback: status %d, want 400", rec.Code)
	}

	rec = doJSON(t, s, http.MethodPost, "/session/guess", token,
		guessPayload{Word: "CRANE", Feedback: []int{0, 0, 2, 0, 0}})
	if rec.Code != http.StatusOK {
		t.Errorf("valid guess: status %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestHelperFlow(t *testing.T) {
	s := newTestServer("CRANE", "GRAPE", "SWAMP", "SLATE", "AUDIO")
	_, token := newSession(t, s)

	// Fresh session: five words survive, returned unscored in order.
	res := decode[suggestRes](t, doJSON(t, s, http.MethodGet, "/suggest", token, nil))
	if res.PossibleCount != 5 || res.Fallback {
		t.Fatalf("fresh suggest = %+v, want 5 candidates", res)
	}
	want := []string{"CRANE", "GRAPE", "SWAMP", "SLATE", "AUDIO"}
	if diff := cmp.Diff(want, res.Suggestions); diff != "" {
		t.Errorf("suggestions mismatch (-want +got):\n%s", diff)
	}

	// Record CRANE with only the A placed: SWAMP is the sole survivor.
	rec := doJSON(t, s, http.MethodPost, "/session/guess", token,
		guessPayload{Word: "CRANE", Feedback: []int{0, 0, 2, 0, 0}})
	if rec.Code != http.StatusOK {
		t.Fatalf("guess: status %d, body %s", rec.Code, rec.Body.String())
	}
	ack := decode[struct {
		OK      bool `json:"ok"`
		Guesses int  `json:"guesses"`
	}](t, rec)
	if !ack.OK || ack.Guesses != 1 {
		t.Errorf("guess ack = %+v, want ok with 1 recorded guess", ack)
	}

	res = decode[suggestRes](t, doJSON(t, s, http.MethodGet, "/suggest", token, nil))
	if res.PossibleCount != 1 {
		t.Fatalf("after guess: %+v, want exactly SWAMP", res)
	}
	if diff := cmp.Diff([]string{"SWAMP"}, res.Suggestions); diff != "" {
		t.Errorf("survivor mismatch (-want +got):\n%s", diff)
	}

	// History round-trips with the numeric feedback encoding intact.
	state := decode[sessionRes](t, doJSON(t, s, http.MethodGet, "/session", token, nil))
	wantGuesses := []guessPayload{{Word: "CRANE", Feedback: []int{0, 0, 2, 0, 0}}}
	if diff := cmp.Diff(wantGuesses, state.Guesses); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}

	// Reset clears the history and suggestions widen again.
	if rec := doJSON(t, s, http.MethodPost, "/session/reset", token, nil); rec.Code != http.StatusOK {
		t.Fatalf("reset: status %d", rec.Code)
	}
	res = decode[suggestRes](t, doJSON(t, s, http.MethodGet, "/suggest", token, nil))
	if res.PossibleCount != 5 {
		t.Errorf("after reset: possibleCount = %d, want 5", res.PossibleCount)
	}
}

func TestSuggestFallsBackOnEmptyDictionary(t *testing.T) {
	s := newTestServer()
	_, token := newSession(t, s)

	res := decode[suggestRes](t, doJSON(t, s, http.MethodGet, "/suggest", token, nil))
	if !res.Fallback || res.PossibleCount != 0 {
		t.Fatalf("empty dictionary: %+v, want fallback with count 0", res)
	}
	if diff := cmp.Diff(solver.FallbackWords, res.Suggestions); diff != "" {
		t.Errorf("fallback mismatch (-want +got):\n%s", diff)
	}
}
