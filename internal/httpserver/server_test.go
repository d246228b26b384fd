package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/cli/internal/daily"
	"github.com/robalobadob/wordle/apps/cli/internal/game"
	"github.com/robalobadob/wordle/apps/cli/internal/store"
	"github.com/robalobadob/wordle/apps/cli/internal/words"
)

var serverWords = []string{"MONEY", "HELLO", "WORLD", "CRANE"}

func newTestServer(t *testing.T, opts Options) *Server {
	t.Helper()
	return New(store.NewMemoryStore(), words.NewList(serverWords), opts, zerolog.Nop())
}

func do(t *testing.T, s *Server, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	var out map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	}
	return rec, out
}

func newGame(t *testing.T, s *Server, answer string) string {
	t.Helper()
	rec, out := do(t, s, http.MethodPost, "/game/new", map[string]string{"answer": answer})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	id, _ := out["gameId"].(string)
	require.NotEmpty(t, id)
	return id
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, Options{})
	rec, out := do(t, s, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, out["ok"])
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}

func TestNewGameRandom(t *testing.T) {
	s := newTestServer(t, Options{Seed: 7})
	rec, out := do(t, s, http.MethodPost, "/game/new", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, game.DefaultMaxAttempts, out["maxAttempts"])
	assert.EqualValues(t, words.WordLength, out["wordLength"])
}

func TestNewGameBadJSON(t *testing.T) {
	s := newTestServer(t, Options{})
	req := httptest.NewRequest(http.MethodPost, "/game/new", bytes.NewBufferString(`{"answer":`))
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"bad_json"}`, rec.Body.String())
	assert.Equal(t, 0, s.store.Len())
}

func TestFixedAnswerGated(t *testing.T) {
	s := newTestServer(t, Options{})
	rec, out := do(t, s, http.MethodPost, "/game/new", map[string]string{"answer": "money"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "fixed_answer_disabled", out["error"])

	s = newTestServer(t, Options{AllowFixedAnswer: true})
	rec, out = do(t, s, http.MethodPost, "/game/new", map[string]string{"answer": "zebra"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_answer", out["error"])
}

func TestGuessFlow(t *testing.T) {
	s := newTestServer(t, Options{AllowFixedAnswer: true, Game: game.Options{RejectRepeats: true}})
	id := newGame(t, s, "money")

	rec, out := do(t, s, http.MethodPost, "/game/guess", map[string]string{"gameId": id, "guess": "hello"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "HELLO", out["guess"])
	assert.Equal(t, []any{"absent", "present", "absent", "absent", "present"}, out["outcomes"])
	assert.Equal(t, "active", out["state"])
	assert.Equal(t, "HL", out["absent"])
	assert.EqualValues(t, 5, out["remaining"])
	assert.NotContains(t, out, "answer")

	rejections := map[string]string{
		"helo":  "wrong_length",
		"zebra": "not_in_list",
		"HELLO": "already_guessed",
	}
	for guess, code := range rejections {
		rec, out = do(t, s, http.MethodPost, "/game/guess", map[string]string{"gameId": id, "guess": guess})
		assert.Equal(t, http.StatusBadRequest, rec.Code, guess)
		assert.Equal(t, code, out["error"], guess)
	}

	rec, out = do(t, s, http.MethodPost, "/game/guess", map[string]string{"gameId": id, "guess": "money"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "won", out["state"])
	assert.Equal(t, "MONEY", out["answer"])

	rec, out = do(t, s, http.MethodPost, "/game/guess", map[string]string{"gameId": id, "guess": "world"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "game_over", out["error"])

	rec, out = do(t, s, http.MethodGet, "/game/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "won", out["state"])
	assert.Len(t, out["history"], 2)
	assert.EqualValues(t, 4, out["remaining"])
}

func TestGuessErrors(t *testing.T) {
	s := newTestServer(t, Options{})

	req := httptest.NewRequest(http.MethodPost, "/game/guess", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec2, out := do(t, s, http.MethodPost, "/game/guess", map[string]string{"gameId": "nope", "guess": "hello"})
	assert.Equal(t, http.StatusNotFound, rec2.Code)
	assert.Equal(t, "not_found", out["error"])

	rec2, _ = do(t, s, http.MethodGet, "/game/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec2.Code)

	rec2, out = do(t, s, http.MethodGet, "/no/such/route", nil)
	assert.Equal(t, http.StatusNotFound, rec2.Code)
	assert.Equal(t, "not_found", out["error"])
}

func TestDaily(t *testing.T) {
	day := time.Date(2024, time.August, 1, 15, 0, 0, 0, time.UTC)
	s := newTestServer(t, Options{DailySalt: "pepper"})
	s.clock = func() time.Time { return day }

	rec, out := do(t, s, http.MethodGet, "/daily", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2024-08-01", out["date"])
	assert.EqualValues(t, daily.Number(day), out["number"])

	want := serverWords[daily.WordIndex(day, "pepper", len(serverWords))]
	rec, out = do(t, s, http.MethodPost, "/daily/new", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	id := out["gameId"].(string)

	_, out = do(t, s, http.MethodPost, "/game/guess", map[string]string{"gameId": id, "guess": want})
	assert.Equal(t, "won", out["state"])
}

func TestDebugWords(t *testing.T) {
	s := newTestServer(t, Options{})
	newGame(t, s, "")
	_, out := do(t, s, http.MethodGet, "/debug/words", nil)
	assert.EqualValues(t, len(serverWords), out["words"])
	assert.EqualValues(t, 1, out["games"])
}

func TestRunStopsOnCancel(t *testing.T) {
	s := newTestServer(t, Options{})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, "127.0.0.1:0") }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestPruneDropsFinishedGames(t *testing.T) {
	s := newTestServer(t, Options{AllowFixedAnswer: true, FinishedTTL: time.Nanosecond})
	done := newGame(t, s, "money")
	open := newGame(t, s, "money")
	rec, _ := do(t, s, http.MethodPost, "/game/guess", map[string]string{"gameId": done, "guess": "money"})
	require.Equal(t, http.StatusOK, rec.Code)

	time.Sleep(time.Millisecond)
	assert.Equal(t, 1, s.prune(context.Background()))

	rec, out := do(t, s, http.MethodGet, "/game/"+done, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", out["error"])
	rec, _ = do(t, s, http.MethodGet, "/game/"+open, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
