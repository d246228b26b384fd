// internal/store/memory.go
//
// In-memory store for game sessions served over HTTP.
//
// Characteristics:
//   - Stores *game.Game values keyed by ID in a map.
//   - Map access is guarded by an RWMutex; each game has its own mutex so
//     guesses for one game are serialized while other games proceed.
//   - State is lost when the process exits.
//   - Update returns ErrNotFound for unknown IDs.
//   - Prune drops finished and abandoned games by last access time.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/wordle/apps/cli/internal/game"
)

// ErrNotFound is returned for unknown game IDs.
var ErrNotFound = errors.New("store: game not found")

// Store defines the persistence interface for game sessions.
type Store interface {
	// Save adds a game under its ID.
	Save(ctx context.Context, g *game.Game) error

	// Update runs fn with exclusive access to the game with the given ID.
	// The game must not be retained after fn returns.
	Update(ctx context.Context, id string, fn func(*game.Game) error) error

	// Len reports how many games are held.
	Len() int

	// Prune removes games not accessed since a cutoff: finished games
	// after finishedTTL, active ones after idleTTL. A zero TTL keeps
	// that kind of game forever. Returns how many were removed.
	Prune(ctx context.Context, finishedTTL, idleTTL time.Duration) (int, error)
}

type entry struct {
	mu      sync.Mutex
	g       *game.Game
	touched time.Time // last Save or Update, guarded by mu
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex      // guards games map
	games map[string]*entry // keyed by Game.ID
	now   func() time.Time
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return newMemory(time.Now)
}

func newMemory(now func() time.Time) *memory {
	return &memory{games: make(map[string]*entry), now: now}
}

func (m *memory) Save(ctx context.Context, g *game.Game) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = &entry{g: g, touched: m.now()}
	return nil
}

func (m *memory) Update(ctx context.Context, id string, fn func(*game.Game) error) error {
	m.mu.RLock()
	e, ok := m.games[id]
	m.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	e.touched = m.now()
	return fn(e.g)
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

func (m *memory) Prune(ctx context.Context, finishedTTL, idleTTL time.Duration) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, e := range m.games {
		// A game in use is being touched right now.
		if !e.mu.TryLock() {
			continue
		}
		ttl := idleTTL
		if e.g.IsTerminal() {
			ttl = finishedTTL
		}
		if ttl > 0 && now.Sub(e.touched) >= ttl {
			delete(m.games, id)
			removed++
		}
		e.mu.Unlock()
	}
	return removed, nil
}
