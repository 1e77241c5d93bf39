// Package engine implements the program lifecycle controller and the
// per-tick countdown state machine. All mutation of the shared board goes
// through the Engine: user commands and tick advancement are serialized by
// one mutex, so a command and a tick never interleave partially.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hammamikhairi/simmer/internal/domain"
	"github.com/hammamikhairi/simmer/internal/logger"
)

// Themes is the default palette cycled through new programs. The tags are
// opaque to the engine; the display maps them to colors.
var Themes = []string{
	"strawberry-milk",
	"taro-milk-tea",
	"sea-salt",
	"mango-pudding",
	"matcha",
	"peach",
	"blueberry",
}

// Option configures the engine.
type Option func(*Engine)

// WithCapacity overrides the program ceiling.
func WithCapacity(n int) Option {
	return func(e *Engine) {
		e.capacity = n
	}
}

// WithThemes overrides the theme palette.
func WithThemes(themes []string) Option {
	return func(e *Engine) {
		e.themes = themes
	}
}

// WithDefaults sets the catalog used by RestoreDefaults and SeedIfEmpty.
func WithDefaults(defaults func() []domain.ProgramSpec) Option {
	return func(e *Engine) {
		e.defaults = defaults
	}
}

// Engine manages the program board. It depends only on interfaces and is
// fully testable with an in-memory board.
type Engine struct {
	store    domain.ProgramStore
	log      *logger.Logger
	capacity int
	themes   []string
	defaults func() []domain.ProgramSpec

	// mu serializes every command and the tick pass. The board's own lock
	// only isolates concurrent readers.
	mu sync.Mutex
}

// New creates an engine with the given board and options.
func New(store domain.ProgramStore, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		store:    store,
		log:      log,
		capacity: domain.MaxPrograms,
		themes:   Themes,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ── Creation ─────────────────────────────────────────────────────

// Create validates a program template, builds a program from it, and puts
// it on the board. Fails with ErrInvalidProgram or ErrCapacityExceeded.
func (e *Engine) Create(ctx context.Context, spec domain.ProgramSpec) (*domain.Program, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := spec.Validate(); err != nil {
		return nil, err
	}

	n, err := e.store.Len(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting programs: %w", err)
	}
	if n >= e.capacity {
		return nil, fmt.Errorf("%w: board holds %d of %d programs", domain.ErrCapacityExceeded, n, e.capacity)
	}

	p := e.buildProgram(spec, e.themes[n%len(e.themes)])
	if err := e.store.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("saving program: %w", err)
	}

	e.log.Info("created program %s (%q, %d phases)", p.ID, p.Name, len(p.Phases))
	return p.Clone(), nil
}

// buildProgram turns a validated template into a program with fresh ids,
// status idle, and the countdown seeded from the first phase.
func (e *Engine) buildProgram(spec domain.ProgramSpec, theme string) *domain.Program {
	phases := make([]domain.Phase, len(spec.Phases))
	for i, ps := range spec.Phases {
		phases[i] = domain.Phase{
			ID:              uuid.NewString(),
			Name:            ps.Name,
			DurationSeconds: ps.DurationSeconds,
			Ingredients:     append([]domain.Ingredient(nil), ps.Ingredients...),
		}
	}
	return &domain.Program{
		ID:           uuid.NewString(),
		Name:         spec.Name,
		Phases:       phases,
		CurrentPhase: 0,
		TimeLeft:     phases[0].DurationSeconds,
		Status:       domain.StatusIdle,
		Multiplier:   1,
		CreatedAt:    time.Now(),
		Theme:        theme,
	}
}

// SeedIfEmpty loads the catalog defaults when the board has no programs.
func (e *Engine) SeedIfEmpty(ctx context.Context) error {
	n, err := e.store.Len(ctx)
	if err != nil {
		return fmt.Errorf("counting programs: %w", err)
	}
	if n > 0 {
		return nil
	}
	return e.RestoreDefaults(ctx)
}

// RestoreDefaults replaces the whole board with a fresh catalog build.
// Every load assigns fresh ids, so restoring twice never collides.
func (e *Engine) RestoreDefaults(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.defaults == nil {
		return fmt.Errorf("no catalog configured")
	}

	specs := e.defaults()
	programs := make([]*domain.Program, 0, len(specs))
	base := time.Now()
	for i, spec := range specs {
		if err := spec.Validate(); err != nil {
			return fmt.Errorf("catalog preset %d: %w", i+1, err)
		}
		p := e.buildProgram(spec, e.themes[i%len(e.themes)])
		// Preserve catalog order under the board's CreatedAt sort.
		p.CreatedAt = base.Add(time.Duration(i) * time.Millisecond)
		programs = append(programs, p)
	}

	if err := e.store.ReplaceAll(ctx, programs); err != nil {
		return fmt.Errorf("replacing board: %w", err)
	}

	e.log.Info("restored %d default programs", len(programs))
	return nil
}

// ── Commands ─────────────────────────────────────────────────────
//
// Commands addressed to an id that is not on the board are silent no-ops,
// matching idempotent-delete semantics.

// ToggleRun starts an idle or paused program and pauses a running one.
// Waiting and completed programs are left unchanged.
func (e *Engine) ToggleRun(ctx context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, ok, err := e.load(ctx, id)
	if !ok {
		return err
	}

	switch p.Status {
	case domain.StatusRunning:
		p.Status = domain.StatusPaused
	case domain.StatusIdle, domain.StatusPaused:
		p.Status = domain.StatusRunning
	default:
		return nil
	}

	if err := e.store.Save(ctx, p); err != nil {
		return fmt.Errorf("saving program: %w", err)
	}
	e.log.Info("program %s (%q) -> %s", p.ID, p.Name, p.Status)
	return nil
}

// Reset returns a program to idle at phase 0 with the countdown reseeded,
// regardless of prior state.
func (e *Engine) Reset(ctx context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, ok, err := e.load(ctx, id)
	if !ok {
		return err
	}

	p.CurrentPhase = 0
	p.TimeLeft = p.Phases[0].DurationSeconds
	p.Status = domain.StatusIdle

	if err := e.store.Save(ctx, p); err != nil {
		return fmt.Errorf("saving program: %w", err)
	}
	e.log.Info("program %s (%q) reset", p.ID, p.Name)
	return nil
}

// AdvancePhase moves a program to its next phase, reseeding the countdown
// and forcing it running. On the final phase it completes the program.
// This is the single path for both "continue past a finished phase" and
// "skip the current phase early".
func (e *Engine) AdvancePhase(ctx context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, ok, err := e.load(ctx, id)
	if !ok {
		return err
	}

	if p.OnFinalPhase() {
		p.Status = domain.StatusCompleted
		p.TimeLeft = 0
	} else {
		p.CurrentPhase++
		p.TimeLeft = p.ActivePhase().DurationSeconds
		p.Status = domain.StatusRunning
	}

	if err := e.store.Save(ctx, p); err != nil {
		return fmt.Errorf("saving program: %w", err)
	}
	e.log.Info("program %s (%q) advanced to phase %d/%d (%s)",
		p.ID, p.Name, p.CurrentPhase+1, len(p.Phases), p.Status)
	return nil
}

// SetMultiplier replaces the ingredient multiplier. Stored ingredient
// amounts are never touched; scaling happens at display time.
func (e *Engine) SetMultiplier(ctx context.Context, id string, m int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !domain.ValidMultiplier(m) {
		return fmt.Errorf("%w: multiplier %d (allowed: 1, 2, 3)", domain.ErrInvalidProgram, m)
	}

	p, ok, err := e.load(ctx, id)
	if !ok {
		return err
	}

	p.Multiplier = m
	if err := e.store.Save(ctx, p); err != nil {
		return fmt.Errorf("saving program: %w", err)
	}
	e.log.Debug("program %s (%q) multiplier -> x%d", p.ID, p.Name, m)
	return nil
}

// Delete removes a program from the board. Deleting an unknown id is a no-op.
func (e *Engine) Delete(ctx context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	err := e.store.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		e.log.Debug("delete: program %s not on the board", id)
		return nil
	}
	if err != nil {
		return fmt.Errorf("deleting program: %w", err)
	}
	e.log.Info("deleted program %s", id)
	return nil
}

// ── Reads ────────────────────────────────────────────────────────

// List returns all programs, oldest first.
func (e *Engine) List(ctx context.Context) ([]*domain.Program, error) {
	return e.store.List(ctx)
}

// Get returns one program by id.
func (e *Engine) Get(ctx context.Context, id string) (*domain.Program, error) {
	return e.store.Load(ctx, id)
}

// load fetches a program for a command. A missing id yields (nil, false,
// nil) — the benign no-op — while a real store failure is returned.
func (e *Engine) load(ctx context.Context, id string) (*domain.Program, bool, error) {
	p, err := e.store.Load(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		e.log.Debug("command target %s not on the board, ignoring", id)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("loading program: %w", err)
	}
	return p, true, nil
}
