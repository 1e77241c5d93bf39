package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/hammamikhairi/simmer/internal/domain"
)

// Phase editing. EditPhases is the wholesale replacement the modal editor
// uses; the closed per-field operations below (rename, resize, add/remove
// phase, add/remove ingredient) all funnel through the same apply path so
// re-derivation of the countdown cannot diverge between them.

// EditPhases replaces a program's phase list. Existing phase ids are kept
// positionally; phases beyond the old length get fresh ids. The new list
// must be non-empty and valid.
func (e *Engine) EditPhases(ctx context.Context, id string, specs []domain.PhaseSpec) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, ok, err := e.load(ctx, id)
	if !ok {
		return err
	}

	phases := make([]domain.Phase, len(specs))
	for i, ps := range specs {
		phaseID := uuid.NewString()
		if i < len(p.Phases) {
			phaseID = p.Phases[i].ID
		}
		phases[i] = domain.Phase{
			ID:              phaseID,
			Name:            ps.Name,
			DurationSeconds: ps.DurationSeconds,
			Ingredients:     append([]domain.Ingredient(nil), ps.Ingredients...),
		}
	}

	return e.applyPhases(ctx, p, phases)
}

// RenamePhase changes one phase's name. The phase index is 0-based.
func (e *Engine) RenamePhase(ctx context.Context, id string, idx int, name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, ok, err := e.load(ctx, id)
	if !ok {
		return err
	}
	if err := checkPhaseIndex(p, idx); err != nil {
		return err
	}

	phases := clonePhases(p.Phases)
	phases[idx].Name = name
	return e.applyPhases(ctx, p, phases)
}

// ResizePhase changes one phase's duration. A running countdown on that
// phase keeps its elapsed progress; only the canonical duration changes.
func (e *Engine) ResizePhase(ctx context.Context, id string, idx, seconds int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, ok, err := e.load(ctx, id)
	if !ok {
		return err
	}
	if err := checkPhaseIndex(p, idx); err != nil {
		return err
	}

	phases := clonePhases(p.Phases)
	phases[idx].DurationSeconds = seconds
	return e.applyPhases(ctx, p, phases)
}

// AddPhase inserts a new phase at the given index (clamped to the end).
func (e *Engine) AddPhase(ctx context.Context, id string, idx int, spec domain.PhaseSpec) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, ok, err := e.load(ctx, id)
	if !ok {
		return err
	}

	if idx < 0 {
		idx = 0
	}
	if idx > len(p.Phases) {
		idx = len(p.Phases)
	}

	phase := domain.Phase{
		ID:              uuid.NewString(),
		Name:            spec.Name,
		DurationSeconds: spec.DurationSeconds,
		Ingredients:     append([]domain.Ingredient(nil), spec.Ingredients...),
	}

	phases := clonePhases(p.Phases)
	phases = append(phases[:idx], append([]domain.Phase{phase}, phases[idx:]...)...)
	return e.applyPhases(ctx, p, phases)
}

// RemovePhase deletes one phase. Removing the last remaining phase is
// rejected — a program never exists with zero phases; use Delete instead.
func (e *Engine) RemovePhase(ctx context.Context, id string, idx int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, ok, err := e.load(ctx, id)
	if !ok {
		return err
	}
	if err := checkPhaseIndex(p, idx); err != nil {
		return err
	}
	if len(p.Phases) == 1 {
		return fmt.Errorf("%w: cannot remove the only phase of %q; delete the program instead",
			domain.ErrInvalidProgram, p.Name)
	}

	phases := clonePhases(p.Phases)
	phases = append(phases[:idx], phases[idx+1:]...)
	return e.applyPhases(ctx, p, phases)
}

// AddIngredient appends an ingredient to one phase.
func (e *Engine) AddIngredient(ctx context.Context, id string, idx int, ing domain.Ingredient) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, ok, err := e.load(ctx, id)
	if !ok {
		return err
	}
	if err := checkPhaseIndex(p, idx); err != nil {
		return err
	}

	phases := clonePhases(p.Phases)
	phases[idx].Ingredients = append(phases[idx].Ingredients, ing)
	return e.applyPhases(ctx, p, phases)
}

// RemoveIngredient removes the first ingredient with the given name
// (case-insensitive) from one phase.
func (e *Engine) RemoveIngredient(ctx context.Context, id string, idx int, name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, ok, err := e.load(ctx, id)
	if !ok {
		return err
	}
	if err := checkPhaseIndex(p, idx); err != nil {
		return err
	}

	phases := clonePhases(p.Phases)
	ings := phases[idx].Ingredients
	for i, ing := range ings {
		if strings.EqualFold(ing.Name, name) {
			phases[idx].Ingredients = append(ings[:i], ings[i+1:]...)
			return e.applyPhases(ctx, p, phases)
		}
	}
	return fmt.Errorf("%w: phase %q has no ingredient %q",
		domain.ErrInvalidProgram, phases[idx].Name, name)
}

// applyPhases validates an edited phase list, installs it, and re-derives
// the countdown. Idle programs reseed from the (possibly new) current
// phase; in-progress programs keep their elapsed countdown as-is, except
// that the phase index is clamped when the current phase was removed and
// the countdown is clamped when it now exceeds the phase's duration.
// Callers hold the engine mutex.
func (e *Engine) applyPhases(ctx context.Context, p *domain.Program, phases []domain.Phase) error {
	spec := domain.ProgramSpec{Name: p.Name, Phases: make([]domain.PhaseSpec, len(phases))}
	for i, ph := range phases {
		spec.Phases[i] = domain.PhaseSpec{
			Name:            ph.Name,
			DurationSeconds: ph.DurationSeconds,
			Ingredients:     ph.Ingredients,
		}
	}
	if err := spec.Validate(); err != nil {
		return err
	}

	p.Phases = phases
	if p.CurrentPhase >= len(phases) {
		p.CurrentPhase = len(phases) - 1
	}

	switch p.Status {
	case domain.StatusIdle:
		p.TimeLeft = p.ActivePhase().DurationSeconds
	case domain.StatusRunning, domain.StatusPaused:
		if p.TimeLeft > p.ActivePhase().DurationSeconds {
			p.TimeLeft = p.ActivePhase().DurationSeconds
		}
	}
	// Waiting and completed programs keep TimeLeft pinned at 0.

	if err := e.store.Save(ctx, p); err != nil {
		return fmt.Errorf("saving program: %w", err)
	}
	e.log.Info("program %s (%q) phases edited, now %d phases", p.ID, p.Name, len(phases))
	return nil
}

func checkPhaseIndex(p *domain.Program, idx int) error {
	if idx < 0 || idx >= len(p.Phases) {
		return fmt.Errorf("%w: phase %d out of range (program %q has %d phases)",
			domain.ErrInvalidProgram, idx+1, p.Name, len(p.Phases))
	}
	return nil
}

func clonePhases(phases []domain.Phase) []domain.Phase {
	out := make([]domain.Phase, len(phases))
	for i, ph := range phases {
		out[i] = ph
		out[i].Ingredients = append([]domain.Ingredient(nil), ph.Ingredients...)
	}
	return out
}
