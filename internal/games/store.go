// Package games keeps active puzzles in process memory so the solved
// check can compare a submitted board against the recorded solution.
// Games do not survive a restart.
package games

import (
	"sync"

	"github.com/google/uuid"

	"svw.info/sudokuweb/internal/domain"
)

type Store struct {
	mu      sync.RWMutex
	puzzles map[string]*domain.Puzzle
}

func NewStore() *Store {
	return &Store{puzzles: make(map[string]*domain.Puzzle)}
}

// Put registers p under a fresh random id and returns it. The puzzle's
// ID field is set as a side effect.
func (s *Store) Put(p *domain.Puzzle) string {
	id := uuid.NewString()
	p.ID = id
	s.mu.Lock()
	s.puzzles[id] = p
	s.mu.Unlock()
	return id
}

func (s *Store) Get(id string) (*domain.Puzzle, bool) {
	s.mu.RLock()
	p, ok := s.puzzles[id]
	s.mu.RUnlock()
	return p, ok
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.puzzles, id)
	s.mu.Unlock()
}
