package engine

import (
	"errors"
	"testing"

	"github.com/hammamikhairi/simmer/internal/domain"
)

func TestEditPhasesKeepsPositionalIDs(t *testing.T) {
	eng, ctx := setupEngine(t)
	p, _ := eng.Create(ctx, twoPhaseSpec())

	err := eng.EditPhases(ctx, p.ID, []domain.PhaseSpec{
		{Name: "Hard Boil", DurationSeconds: 5},
		{Name: "Steep Longer", DurationSeconds: 3},
		{Name: "Rest", DurationSeconds: 2},
	})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}

	got, _ := eng.Get(ctx, p.ID)
	if len(got.Phases) != 3 {
		t.Fatalf("expected 3 phases, got %d", len(got.Phases))
	}
	if got.Phases[0].ID != p.Phases[0].ID || got.Phases[1].ID != p.Phases[1].ID {
		t.Fatal("existing phase ids were not preserved positionally")
	}
	if got.Phases[2].ID == "" || got.Phases[2].ID == got.Phases[1].ID {
		t.Fatal("appended phase did not get a fresh id")
	}
}

func TestEditPhasesRejectsEmptyList(t *testing.T) {
	eng, ctx := setupEngine(t)
	p, _ := eng.Create(ctx, twoPhaseSpec())

	if err := eng.EditPhases(ctx, p.ID, nil); !errors.Is(err, domain.ErrInvalidProgram) {
		t.Fatalf("expected ErrInvalidProgram, got %v", err)
	}

	got, _ := eng.Get(ctx, p.ID)
	if len(got.Phases) != 2 {
		t.Fatalf("rejected edit still changed the program: %d phases", len(got.Phases))
	}
}

func TestEditReseedsIdleCountdown(t *testing.T) {
	eng, ctx := setupEngine(t)
	p, _ := eng.Create(ctx, twoPhaseSpec())

	if err := eng.ResizePhase(ctx, p.ID, 0, 10); err != nil {
		t.Fatalf("resize: %v", err)
	}

	got, _ := eng.Get(ctx, p.ID)
	if got.TimeLeft != 10 {
		t.Fatalf("idle countdown should reseed from the new duration, got %d", got.TimeLeft)
	}
}

func TestEditPreservesRunningCountdown(t *testing.T) {
	eng, ctx := setupEngine(t)
	spec := domain.ProgramSpec{
		Name:   "Long Boil",
		Phases: []domain.PhaseSpec{{Name: "Boil", DurationSeconds: 100}},
	}
	p, _ := eng.Create(ctx, spec)
	eng.ToggleRun(ctx, p.ID)
	for i := 0; i < 10; i++ {
		eng.Tick(ctx)
	}

	// Growing the phase keeps the elapsed progress: 90s remain either way.
	if err := eng.ResizePhase(ctx, p.ID, 0, 200); err != nil {
		t.Fatalf("grow: %v", err)
	}
	got, _ := eng.Get(ctx, p.ID)
	if got.TimeLeft != 90 {
		t.Fatalf("growing the phase changed the countdown: %d", got.TimeLeft)
	}

	// Shrinking below the remaining time clamps the countdown.
	if err := eng.ResizePhase(ctx, p.ID, 0, 30); err != nil {
		t.Fatalf("shrink: %v", err)
	}
	got, _ = eng.Get(ctx, p.ID)
	if got.TimeLeft != 30 {
		t.Fatalf("countdown not clamped to the new duration: %d", got.TimeLeft)
	}
	if got.Status != domain.StatusRunning {
		t.Fatalf("resize changed the status to %s", got.Status)
	}
}

func TestRemoveCurrentPhaseClampsIndex(t *testing.T) {
	eng, ctx := setupEngine(t)
	p, _ := eng.Create(ctx, twoPhaseSpec())
	eng.AdvancePhase(ctx, p.ID) // now running phase 2 of 2

	if err := eng.RemovePhase(ctx, p.ID, 1); err != nil {
		t.Fatalf("remove: %v", err)
	}

	got, _ := eng.Get(ctx, p.ID)
	if got.CurrentPhase != 0 {
		t.Fatalf("phase index not clamped: %d", got.CurrentPhase)
	}
	if got.TimeLeft > got.Phases[0].DurationSeconds {
		t.Fatalf("countdown %d exceeds the clamped phase's duration %d",
			got.TimeLeft, got.Phases[0].DurationSeconds)
	}
}

func TestRemoveOnlyPhaseRejected(t *testing.T) {
	eng, ctx := setupEngine(t)
	p, _ := eng.Create(ctx, domain.ProgramSpec{
		Name:   "One Phase",
		Phases: []domain.PhaseSpec{{Name: "Boil", DurationSeconds: 10}},
	})

	if err := eng.RemovePhase(ctx, p.ID, 0); !errors.Is(err, domain.ErrInvalidProgram) {
		t.Fatalf("expected ErrInvalidProgram, got %v", err)
	}

	got, _ := eng.Get(ctx, p.ID)
	if len(got.Phases) != 1 {
		t.Fatal("the only phase was removed")
	}
}

func TestRenamePhase(t *testing.T) {
	eng, ctx := setupEngine(t)
	p, _ := eng.Create(ctx, twoPhaseSpec())

	if err := eng.RenamePhase(ctx, p.ID, 1, "Slow Steep"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	got, _ := eng.Get(ctx, p.ID)
	if got.Phases[1].Name != "Slow Steep" {
		t.Fatalf("rename not applied: %q", got.Phases[1].Name)
	}
	if got.Phases[1].ID != p.Phases[1].ID {
		t.Fatal("rename changed the phase id")
	}

	if err := eng.RenamePhase(ctx, p.ID, 5, "Ghost"); !errors.Is(err, domain.ErrInvalidProgram) {
		t.Fatalf("out-of-range rename: expected ErrInvalidProgram, got %v", err)
	}
}

func TestAddPhaseClampsInsertIndex(t *testing.T) {
	eng, ctx := setupEngine(t)
	p, _ := eng.Create(ctx, twoPhaseSpec())

	if err := eng.AddPhase(ctx, p.ID, 99, domain.PhaseSpec{Name: "Rest", DurationSeconds: 5}); err != nil {
		t.Fatalf("add: %v", err)
	}
	got, _ := eng.Get(ctx, p.ID)
	if len(got.Phases) != 3 || got.Phases[2].Name != "Rest" {
		t.Fatalf("phase not appended at the end: %+v", got.Phases)
	}

	if err := eng.AddPhase(ctx, p.ID, 0, domain.PhaseSpec{Name: "Rinse", DurationSeconds: 5}); err != nil {
		t.Fatalf("prepend: %v", err)
	}
	got, _ = eng.Get(ctx, p.ID)
	if got.Phases[0].Name != "Rinse" {
		t.Fatalf("phase not inserted at the front: %q", got.Phases[0].Name)
	}
}

func TestIngredientEdits(t *testing.T) {
	eng, ctx := setupEngine(t)
	p, _ := eng.Create(ctx, twoPhaseSpec())

	if err := eng.AddIngredient(ctx, p.ID, 0, domain.Ingredient{Name: "Rock Sugar", Amount: 20, Unit: "g"}); err != nil {
		t.Fatalf("add ingredient: %v", err)
	}
	got, _ := eng.Get(ctx, p.ID)
	if len(got.Phases[0].Ingredients) != 1 {
		t.Fatalf("ingredient not added: %v", got.Phases[0].Ingredients)
	}

	// Removal matches case-insensitively.
	if err := eng.RemoveIngredient(ctx, p.ID, 0, "rock sugar"); err != nil {
		t.Fatalf("remove ingredient: %v", err)
	}
	got, _ = eng.Get(ctx, p.ID)
	if len(got.Phases[0].Ingredients) != 0 {
		t.Fatalf("ingredient not removed: %v", got.Phases[0].Ingredients)
	}

	if err := eng.RemoveIngredient(ctx, p.ID, 0, "ghost pepper"); !errors.Is(err, domain.ErrInvalidProgram) {
		t.Fatalf("removing a missing ingredient: expected ErrInvalidProgram, got %v", err)
	}
}

func TestInvalidIngredientEditRejected(t *testing.T) {
	eng, ctx := setupEngine(t)
	p, _ := eng.Create(ctx, twoPhaseSpec())

	err := eng.AddIngredient(ctx, p.ID, 0, domain.Ingredient{Name: "", Amount: 10, Unit: "g"})
	if !errors.Is(err, domain.ErrInvalidProgram) {
		t.Fatalf("expected ErrInvalidProgram, got %v", err)
	}
	err = eng.AddIngredient(ctx, p.ID, 0, domain.Ingredient{Name: "Salt", Amount: 0, Unit: "g"})
	if !errors.Is(err, domain.ErrInvalidProgram) {
		t.Fatalf("expected ErrInvalidProgram for zero amount, got %v", err)
	}

	got, _ := eng.Get(ctx, p.ID)
	if len(got.Phases[0].Ingredients) != 0 {
		t.Fatalf("rejected edit still landed: %v", got.Phases[0].Ingredients)
	}
}
