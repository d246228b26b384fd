// internal/httpserver/server.go
//
// HTTP server wiring for `wordle serve`.
// Responsibilities:
//   - Router + middleware (JSON, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: POST /game/new, POST /game/guess, GET /game/{id}.
//   - Daily endpoints: GET /daily, POST /daily/new (see routes_daily.go).
//
// Notes:
//   - Every game is a single-player session held in the memory store.
//   - Rejected guesses answer 400 with a stable reason code and consume nothing.
//   - The secret is only included in responses once the game is over.
//   - Finished and abandoned games are pruned from the store on a timer.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/cli/internal/game"
	"github.com/robalobadob/wordle/apps/cli/internal/store"
	"github.com/robalobadob/wordle/apps/cli/internal/words"
)

// Options configure the served games.
type Options struct {
	Game             game.Options
	Seed             int64  // random picker seed; 0 seeds from the clock
	DailySalt        string // salt for /daily/new
	AllowFixedAnswer bool   // honor the "answer" field of /game/new (testing)

	// Games are pruned every PruneEvery once finished for FinishedTTL or
	// idle for IdleTTL. PruneEvery <= 0 disables pruning.
	FinishedTTL time.Duration
	IdleTTL     time.Duration
	PruneEvery  time.Duration
}

// Server bundles router, game store and word list.
type Server struct {
	r     *chi.Mux
	store store.Store
	list  *words.List
	pick  game.Picker
	opts  Options
	log   zerolog.Logger
	clock func() time.Time // nil means time.Now
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, list *words.List, opts Options, log zerolog.Logger) *Server {
	s := &Server{
		r:     chi.NewRouter(),
		store: st,
		list:  list,
		pick:  &lockedPicker{p: game.NewRandomPicker(opts.Seed)},
		opts:  opts,
		log:   log,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle","endpoints":["/health","POST /game/new","POST /game/guess","GET /game/{id}","GET /daily","POST /daily/new"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{"words": s.list.Len(), "games": s.store.Len()})
	})

	s.r.Post("/game/new", s.handleNewGame)
	s.r.Post("/game/guess", s.handleGuess)
	s.r.Get("/game/{id}", s.handleGetGame)
	s.mountDaily(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Run serves HTTP on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	if s.opts.PruneEvery > 0 {
		go s.pruneLoop(ctx)
	}

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) pruneLoop(ctx context.Context) {
	t := time.NewTicker(s.opts.PruneEvery)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.prune(ctx)
		}
	}
}

// prune drops stale games from the store.
func (s *Server) prune(ctx context.Context) int {
	n, err := s.store.Prune(ctx, s.opts.FinishedTTL, s.opts.IdleTTL)
	if err != nil {
		s.log.Warn().Err(err).Msg("prune games")
		return 0
	}
	if n > 0 {
		s.log.Debug().Int("removed", n).Int("games", s.store.Len()).Msg("pruned games")
	}
	return n
}

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

func writeError(w http.ResponseWriter, status int, code string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Answer string `json:"answer"` // optional fixed answer, only with AllowFixedAnswer
}
type newGameRes struct {
	GameID      string `json:"gameId"`
	MaxAttempts int    `json:"maxAttempts"`
	WordLength  int    `json:"wordLength"`
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	pick := s.pick
	if req.Answer != "" {
		if !s.opts.AllowFixedAnswer {
			writeError(w, http.StatusForbidden, "fixed_answer_disabled")
			return
		}
		pick = game.Fixed(req.Answer)
	}
	s.startGame(w, r, pick)
}

// startGame creates a game with pick, stores it and writes newGameRes.
func (s *Server) startGame(w http.ResponseWriter, r *http.Request, pick game.Picker) {
	g, err := game.New(s.list, pick, s.opts.Game)
	if err != nil {
		if errors.Is(err, game.ErrBadSecret) {
			writeError(w, http.StatusBadRequest, "bad_answer")
			return
		}
		s.log.Error().Err(err).Msg("new game")
		writeError(w, http.StatusInternalServerError, "new_game_failed")
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		s.log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	s.log.Info().Str("gameId", g.ID).Str("requestId", chimw.GetReqID(r.Context())).Msg("game started")
	_ = json.NewEncoder(w).Encode(newGameRes{GameID: g.ID, MaxAttempts: g.MaxAttempts(), WordLength: words.WordLength})
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}
type guessRes struct {
	Guess     string         `json:"guess"`
	Outcomes  []game.Outcome `json:"outcomes"`
	State     game.State     `json:"state"`
	Absent    string         `json:"absent"`
	Remaining int            `json:"remaining"`
	Answer    string         `json:"answer,omitempty"` // set once finished
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	var res guessRes
	err := s.store.Update(r.Context(), req.GameID, func(g *game.Game) error {
		marks, err := g.SubmitGuess(req.Guess)
		if err != nil {
			return err
		}
		res = guessRes{
			Guess:     words.Normalize(req.Guess),
			Outcomes:  marks,
			State:     g.State(),
			Absent:    g.AbsentLetters(),
			Remaining: g.Remaining(),
			Answer:    g.Secret(),
		}
		return nil
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
		return
	case err != nil:
		if code := game.Reason(err); code != "" {
			s.log.Debug().Str("gameId", req.GameID).Str("reason", code).Msg("guess rejected")
			writeError(w, http.StatusBadRequest, code)
			return
		}
		s.log.Error().Err(err).Str("gameId", req.GameID).Msg("guess")
		writeError(w, http.StatusInternalServerError, "guess_failed")
		return
	}
	if res.State.Terminal() {
		s.log.Info().Str("gameId", req.GameID).Str("state", string(res.State)).Msg("game over")
	}
	_ = json.NewEncoder(w).Encode(res)
}

// gameRes is the summary for GET /game/{id}.
type gameRes struct {
	GameID      string         `json:"gameId"`
	State       game.State     `json:"state"`
	History     []game.Attempt `json:"history"`
	Absent      string         `json:"absent"`
	Remaining   int            `json:"remaining"`
	MaxAttempts int            `json:"maxAttempts"`
	Answer      string         `json:"answer,omitempty"`
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var res gameRes
	err := s.store.Update(r.Context(), id, func(g *game.Game) error {
		res = gameRes{
			GameID:      g.ID,
			State:       g.State(),
			History:     g.History(),
			Absent:      g.AbsentLetters(),
			Remaining:   g.Remaining(),
			MaxAttempts: g.MaxAttempts(),
			Answer:      g.Secret(),
		}
		return nil
	})
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}

// lockedPicker serializes access to a picker shared by concurrent handlers.
type lockedPicker struct {
	mu sync.Mutex
	p  game.Picker
}

func (l *lockedPicker) Pick(ws []string) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.p.Pick(ws)
}
