// internal/httpserver/routes_daily.go
//
// HTTP routes for the word of the day.
//   - GET  /daily     → today's date key and puzzle number
//   - POST /daily/new → start a game whose secret is today's word (UTC)
//
// Deterministic word selection is based on date + salt; guesses go through
// the regular POST /game/guess endpoint.

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordle/apps/cli/internal/daily"
	"github.com/robalobadob/wordle/apps/cli/internal/game"
)

// mountDaily registers the /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", s.handleDailyNew)
		r.Get("/", s.handleDailyInfo)
	})
}

func (s *Server) dailyPicker() game.DailyPicker {
	return game.DailyPicker{Salt: s.opts.DailySalt, Now: s.now}
}

func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	s.startGame(w, r, s.dailyPicker())
}

// handleDailyInfo reports today's date key and puzzle number.
func (s *Server) handleDailyInfo(w http.ResponseWriter, r *http.Request) {
	now := s.now()
	_ = json.NewEncoder(w).Encode(map[string]any{
		"date":   daily.DateKey(now),
		"number": daily.Number(now),
	})
}

func (s *Server) now() time.Time {
	if s.clock != nil {
		return s.clock()
	}
	return time.Now()
}
