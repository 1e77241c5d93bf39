package engine

import (
	"context"

	"github.com/hammamikhairi/simmer/internal/domain"
)

// Tick advances every running program by exactly one logical second and
// returns the phase transitions the pass produced. Programs in any other
// state are untouched. The whole pass runs under the engine mutex and is
// published with one SaveAll, so outside readers only ever see the board
// before or after a pass, never mid-pass.
func (e *Engine) Tick(ctx context.Context) []domain.PhaseEvent {
	e.mu.Lock()
	defer e.mu.Unlock()

	programs, err := e.store.List(ctx)
	if err != nil {
		e.log.Error("tick: listing programs: %v", err)
		return nil
	}

	var changed []*domain.Program
	var events []domain.PhaseEvent

	for _, p := range programs {
		// A program that slipped past creation-time validation must not
		// take the rest of the board down; skip it and report.
		if err := p.Validate(); err != nil {
			e.log.Error("tick: skipping program %s: %v", p.ID, err)
			continue
		}

		if p.Status != domain.StatusRunning {
			continue
		}

		p.TimeLeft--
		if p.TimeLeft > 0 {
			changed = append(changed, p)
			continue
		}

		// Phase exhausted on this tick.
		p.TimeLeft = 0
		ev := domain.PhaseEvent{
			ProgramID:   p.ID,
			ProgramName: p.Name,
			PhaseName:   p.ActivePhase().Name,
		}

		if p.OnFinalPhase() {
			p.Status = domain.StatusCompleted
			ev.Completed = true
			e.log.Info("program %s (%q) completed", p.ID, p.Name)
		} else {
			// The next phase needs a manual action (adding ingredients);
			// time alone never advances past it.
			p.Status = domain.StatusWaiting
			next := p.Phases[p.CurrentPhase+1]
			ev.NextPhase = next.Name
			ev.NextIngredients = append([]domain.Ingredient(nil), next.Ingredients...)
			e.log.Info("program %s (%q) finished phase %d/%d, waiting for action",
				p.ID, p.Name, p.CurrentPhase+1, len(p.Phases))
		}

		changed = append(changed, p)
		events = append(events, ev)
	}

	if len(changed) > 0 {
		if err := e.store.SaveAll(ctx, changed); err != nil {
			e.log.Error("tick: publishing %d programs: %v", len(changed), err)
		}
	}

	return events
}
