// Package storage provides program board implementations.
package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/hammamikhairi/simmer/internal/domain"
	"github.com/hammamikhairi/simmer/internal/logger"
)

// Compile-time interface check.
var _ domain.ProgramStore = (*MemoryBoard)(nil)

// MemoryBoard is an in-memory program board. Safe for concurrent access.
// Programs are deep-copied on the way in and out, so a mutation only
// becomes visible through Save/SaveAll/ReplaceAll and readers never see a
// program mid-update.
type MemoryBoard struct {
	mu       sync.RWMutex
	programs map[string]*domain.Program
	log      *logger.Logger
}

// NewMemoryBoard creates an empty in-memory board.
func NewMemoryBoard(log *logger.Logger) *MemoryBoard {
	return &MemoryBoard{
		programs: make(map[string]*domain.Program),
		log:      log,
	}
}

// Save publishes one program. Overwrites if it already exists.
func (b *MemoryBoard) Save(ctx context.Context, p *domain.Program) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.log.Debug("saving program %s (%q, status=%s)", p.ID, p.Name, p.Status)
	b.programs[p.ID] = p.Clone()
	return nil
}

// SaveAll publishes a batch of programs under one lock acquisition, so a
// whole tick pass lands as a single snapshot transition.
func (b *MemoryBoard) SaveAll(ctx context.Context, ps []*domain.Program) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, p := range ps {
		b.programs[p.ID] = p.Clone()
	}
	b.log.Debug("published %d programs", len(ps))
	return nil
}

// Load retrieves a copy of a program by ID.
func (b *MemoryBoard) Load(ctx context.Context, id string) (*domain.Program, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	p, ok := b.programs[id]
	if !ok {
		b.log.Debug("program not found: %s", id)
		return nil, domain.ErrNotFound
	}
	return p.Clone(), nil
}

// Delete removes a program by ID.
func (b *MemoryBoard) Delete(ctx context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.programs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(b.programs, id)
	b.log.Debug("deleted program %s", id)
	return nil
}

// List returns copies of all programs, oldest first.
func (b *MemoryBoard) List(ctx context.Context) ([]*domain.Program, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]*domain.Program, 0, len(b.programs))
	for _, p := range b.programs {
		out = append(out, p.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Len returns the number of programs on the board.
func (b *MemoryBoard) Len(ctx context.Context) (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.programs), nil
}

// ReplaceAll swaps the whole board for the given set.
func (b *MemoryBoard) ReplaceAll(ctx context.Context, ps []*domain.Program) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.programs = make(map[string]*domain.Program, len(ps))
	for _, p := range ps {
		b.programs[p.ID] = p.Clone()
	}
	b.log.Info("board replaced, %d programs", len(ps))
	return nil
}
