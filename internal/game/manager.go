package game

import (
	"sync"

	"github.com/lgbarn/rst-chess-go/internal/errors"
)

// Manager is an in-memory registry of games.
type Manager struct {
	mu    sync.RWMutex
	games map[string]*Game
	opts  []Option
}

// NewManager creates a manager. opts are applied to every game it creates,
// before the per-game options.
func NewManager(opts ...Option) *Manager {
	return &Manager{games: make(map[string]*Game), opts: opts}
}

// NewGame creates and registers a game.
func (m *Manager) NewGame(opts ...Option) *Game {
	all := make([]Option, 0, len(m.opts)+len(opts))
	all = append(all, m.opts...)
	all = append(all, opts...)
	g := New(all...)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID()] = g
	return g
}

// Get returns the game with the given id.
func (m *Manager) Get(id string) (*Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrGameNotFound, "id %q", id)
	}
	return g, nil
}

// Remove forgets a game. It reports whether the game was registered.
func (m *Manager) Remove(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return false
	}
	delete(m.games, id)
	return true
}

// Len returns the number of registered games.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

// IDs returns the ids of all registered games in no particular order.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.games))
	for id := range m.games {
		ids = append(ids, id)
	}
	return ids
}
