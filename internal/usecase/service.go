package usecase

import (
	"context"
	"errors"
	"fmt"

	"svw.info/sudokuweb/internal/candidates"
	"svw.info/sudokuweb/internal/domain"
	"svw.info/sudokuweb/internal/ports"
)

// Service is the facade the transport adapter talks to.
type Service struct {
	Solver     ports.Solver
	Generator  ports.Generator
	Validator  ports.Validator
	Candidates ports.Candidates
	Games      ports.GameStore
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, c ports.Candidates, st ports.GameStore) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Candidates: c, Games: st}
}

var (
	errNotConfigured = errors.New("usecase dependency not configured")

	// ErrGameNotFound reports an unknown or expired game id.
	ErrGameNotFound = errors.New("game not found")
)

// NewGame generates a puzzle at the requested difficulty and registers
// it so a later check can find the recorded solution.
func (u *Service) NewGame(ctx context.Context, seed int64, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil || u.Games == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	p, st, err := u.Generator.Generate(ctx, seed, d)
	if err != nil {
		return nil, st, err
	}
	u.Games.Put(p)
	return p, st, nil
}

// Hints validates the snapshot, computes per-cell candidates, and
// subtracts the caller's manual removals.
func (u *Service) Hints(ctx context.Context, b *domain.Board, removals [9][9][]uint8) ([9][9]domain.CandidateSet, error) {
	if u.Validator == nil || u.Candidates == nil {
		return [9][9]domain.CandidateSet{}, errNotConfigured
	}
	if err := u.Validator.CheckGrid(b); err != nil {
		return [9][9]domain.CandidateSet{}, fmt.Errorf("invalid board: %w", err)
	}
	marks := u.Candidates.Candidates(b)
	return candidates.Apply(marks, removals), nil
}

// Check reports whether b is the solved board. With a known game id the
// comparison is cell-by-cell equality against the recorded solution;
// otherwise the board must be full and free of conflicts.
func (u *Service) Check(ctx context.Context, id string, b *domain.Board) (bool, error) {
	if u.Validator == nil {
		return false, errNotConfigured
	}
	if err := u.Validator.CheckGrid(b); err != nil {
		return false, fmt.Errorf("invalid board: %w", err)
	}
	if id != "" {
		if u.Games == nil {
			return false, errNotConfigured
		}
		p, ok := u.Games.Get(id)
		if !ok {
			return false, ErrGameNotFound
		}
		return b.Equal(&p.Solution), nil
	}
	if _, _, empty := b.FirstEmpty(); empty {
		return false, nil
	}
	ok, _, err := u.Validator.Validate(ctx, b)
	return ok, err
}

// Solve completes a board with the find-first search.
func (u *Service) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	if u.Solver == nil || u.Validator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	if err := u.Validator.CheckGrid(b); err != nil {
		return nil, ports.Stats{}, fmt.Errorf("invalid board: %w", err)
	}
	return u.Solver.Solve(ctx, b)
}

// Validate runs the conflict scan.
func (u *Service) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	if err := u.Validator.CheckGrid(b); err != nil {
		return false, nil, fmt.Errorf("invalid board: %w", err)
	}
	return u.Validator.Validate(ctx, b)
}
