// internal/httpserver/server.go
//
// HTTP wiring for the Wordle helper service.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", POST /session/new.
//   - Session endpoints (require a session token): GET /session,
//     POST /session/guess, POST /session/reset, GET /suggest.
//   - JWT + cookie handling for anonymous session tokens.
//
// The dictionary snapshot is loaded once at startup and never mutated, so
// every suggestion request works over an immutable word list. Feedback
// crosses the wire as integer arrays with the fixed 0=absent, 1=present,
// 2=correct encoding.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/roseu7/wordle-helper/internal/session"
	"github.com/roseu7/wordle-helper/internal/solver"
)

// Server bundles the router, the session store, and the dictionary snapshot.
type Server struct {
	r          *chi.Mux
	sessions   session.Store
	dictionary []solver.Entry
	weights    solver.Weights
}

// New constructs a Server, installs middleware, and registers routes.
// dictionary is treated as immutable; callers must not modify it afterwards.
func New(st session.Store, dictionary []solver.Entry) *Server {
	s := &Server{
		r:          chi.NewRouter(),
		sessions:   st,
		dictionary: dictionary,
		weights:    solver.DefaultWeights(),
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(30 * time.Second)) // scoring large dictionaries takes a while
	s.r.Use(jsonContentType)
	s.r.Use(corsFromEnv)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-helper","endpoints":["/health","POST /session/new","POST /session/guess","POST /session/reset","GET /session","GET /suggest"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Post("/session/new", s.handleNewSession)

	s.r.Group(func(r chi.Router) {
		r.Use(s.requireSession())
		r.Get("/session", s.handleSession)
		r.Post("/session/guess", s.handleGuess)
		r.Post("/session/reset", s.handleReset)
		r.Get("/suggest", s.handleSuggest)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ----------------------------- sessions ------------------------------------

type newSessionRes struct {
	SessionID string `json:"sessionId"`
	Token     string `json:"token"`
}

// handleNewSession creates an empty guess history, signs a session token,
// and sets it as a cookie so browser clients stay attached automatically.
func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Create(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("create session")
		http.Error(w, `{"error":"create_failed"}`, http.StatusInternalServerError)
		return
	}
	tok, exp, err := signSessionJWT(sess.ID)
	if err != nil {
		http.Error(w, `{"error":"sign_failed"}`, http.StatusInternalServerError)
		return
	}
	setSessionCookie(w, tok, exp)
	log.Info().Str("session", sess.ID).Msg("session created")
	_ = json.NewEncoder(w).Encode(newSessionRes{SessionID: sess.ID, Token: tok})
}

// guessPayload is the wire form of one recorded guess. Feedback uses the
// fixed integer mapping 0=absent, 1=present, 2=correct.
type guessPayload struct {
	Word     string `json:"word"`
	Feedback []int  `json:"feedback"`
}

type sessionRes struct {
	SessionID string         `json:"sessionId"`
	Guesses   []guessPayload `json:"guesses"`
}

// handleSession returns the caller's current guess history.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.currentSession(w, r)
	if !ok {
		return
	}
	res := sessionRes{SessionID: sess.ID, Guesses: make([]guessPayload, 0, len(sess.History))}
	for _, g := range sess.History {
		res.Guesses = append(res.Guesses, toPayload(g))
	}
	_ = json.NewEncoder(w).Encode(res)
}

// handleGuess validates and appends one confirmed guess to the history.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.currentSession(w, r)
	if !ok {
		return
	}
	var req guessPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	g, err := solver.NewGuess(req.Word, toPattern(req.Feedback))
	if err != nil {
		http.Error(w, `{"error":"invalid_guess","detail":`+strconv.Quote(err.Error())+`}`, http.StatusBadRequest)
		return
	}

	n, err := s.sessions.AppendGuess(r.Context(), sess.ID, g)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			http.Error(w, `{"error":"session_not_found"}`, http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("session", sess.ID).Msg("append guess")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	log.Debug().Str("session", sess.ID).Str("word", g.Word).Msg("guess recorded")
	_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "guesses": n})
}

// handleReset clears the history for a fresh game, keeping the session.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.currentSession(w, r)
	if !ok {
		return
	}
	if err := s.sessions.Reset(r.Context(), sess.ID); err != nil {
		http.Error(w, `{"error":"reset_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// ----------------------------- suggestions ---------------------------------

type suggestRes struct {
	Suggestions   []string `json:"suggestions"`
	PossibleCount int      `json:"possibleCount"`
	Fallback      bool     `json:"fallback"`
}

// handleSuggest runs the engine over the dictionary snapshot and the
// caller's history. This always succeeds: an empty dictionary or an
// unsatisfiable history degrades to the fallback opening words.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.currentSession(w, r)
	if !ok {
		return
	}
	started := time.Now()
	result := s.weights.Suggest(s.dictionary, sess.History)
	log.Info().
		Str("session", sess.ID).
		Int("guesses", len(sess.History)).
		Int("possible", result.PossibleCount).
		Bool("fallback", result.Fallback).
		Dur("took", time.Since(started)).
		Msg("suggestions computed")
	_ = json.NewEncoder(w).Encode(suggestRes{
		Suggestions:   result.Words,
		PossibleCount: result.PossibleCount,
		Fallback:      result.Fallback,
	})
}

// --------------------------- session tokens --------------------------------

// ctxSessionKey is the context key type for the authenticated session ID.
type ctxSessionKey struct{}

// requireSession enforces a valid session token and stores the session ID in
// the request context. Tokens arrive as a bearer header or a cookie.
func (s *Server) requireSession() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearerOrCookie(r)
			if tokenStr == "" {
				http.Error(w, `{"error":"missing_session_token"}`, http.StatusUnauthorized)
				return
			}
			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
				return []byte(getEnv("JWT_SECRET", "dev_secret_change_me")), nil
			})
			if err != nil || !token.Valid {
				http.Error(w, `{"error":"invalid_session_token"}`, http.StatusUnauthorized)
				return
			}
			sid, _ := claims["sid"].(string)
			if sid == "" {
				http.Error(w, `{"error":"invalid_session_token"}`, http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), ctxSessionKey{}, sid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// currentSession loads the session named by the request token. A token that
// outlived its session (e.g. across a restart) gets 404 so clients know to
// start a new one.
func (s *Server) currentSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sid, _ := r.Context().Value(ctxSessionKey{}).(string)
	if sid == "" {
		http.Error(w, `{"error":"missing_session_token"}`, http.StatusUnauthorized)
		return nil, false
	}
	sess, err := s.sessions.Get(r.Context(), sid)
	if err != nil {
		http.Error(w, `{"error":"session_not_found"}`, http.StatusNotFound)
		return nil, false
	}
	return sess, true
}

// signSessionJWT creates an HS256 token carrying the session ID with a
// configurable expiry (JWT_EXPIRES_DAYS; default 14).
func signSessionJWT(sid string) (string, time.Time, error) {
	secret := getEnv("JWT_SECRET", "dev_secret_change_me")
	days := 14
	if v := os.Getenv("JWT_EXPIRES_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			days = n
		}
	}
	exp := time.Now().Add(time.Duration(days) * 24 * time.Hour)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sid,
		"exp": exp.Unix(),
		"iat": time.Now().Unix(),
	})
	ss, err := t.SignedString([]byte(secret))
	return ss, exp, err
}

// setSessionCookie writes the session token cookie.
func setSessionCookie(w http.ResponseWriter, token string, exp time.Time) {
	name := getEnv("COOKIE_NAME", "helper_session")
	secure := os.Getenv("NODE_ENV") == "production"
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
		Expires:  exp,
	})
}

// bearerOrCookie extracts a token from the Authorization header or cookie.
func bearerOrCookie(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(getEnv("COOKIE_NAME", "helper_session")); err == nil {
		return c.Value
	}
	return ""
}

// -------------------------------- wire -------------------------------------

// toPattern converts a wire feedback array to the engine's pattern type.
// Out-of-range values are clamped to an invalid marker so NewGuess rejects
// them with a precise error.
func toPattern(feedback []int) solver.Pattern {
	p := make(solver.Pattern, len(feedback))
	for i, f := range feedback {
		if f < 0 || f > 255 {
			f = 255
		}
		p[i] = solver.Feedback(f)
	}
	return p
}

// toPayload converts a recorded guess to its wire form.
func toPayload(g solver.Guess) guessPayload {
	fb := make([]int, len(g.Feedback))
	for i, f := range g.Feedback {
		fb[i] = int(f)
	}
	return guessPayload{Word: g.Word, Feedback: fb}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
