package domain

import (
	"errors"
	"testing"
	"time"
)

func validProgram() *Program {
	return &Program{
		ID:   "p1",
		Name: "Test Soup",
		Phases: []Phase{
			{ID: "ph1", Name: "Boil", DurationSeconds: 120, Ingredients: []Ingredient{
				{Name: "water", Amount: 1, Unit: "l"},
			}},
			{ID: "ph2", Name: "Steep", DurationSeconds: 60},
		},
		CurrentPhase: 0,
		TimeLeft:     120,
		Status:       StatusIdle,
		Multiplier:   1,
		CreatedAt:    time.Now(),
	}
}

func TestCloneIsDeep(t *testing.T) {
	p := validProgram()
	cp := p.Clone()

	cp.Name = "Changed"
	cp.Phases[0].Name = "Changed"
	cp.Phases[0].Ingredients[0].Amount = 99

	if p.Name != "Test Soup" {
		t.Fatalf("clone mutation leaked into the original name: %q", p.Name)
	}
	if p.Phases[0].Name != "Boil" {
		t.Fatalf("clone mutation leaked into the original phase: %q", p.Phases[0].Name)
	}
	if p.Phases[0].Ingredients[0].Amount != 1 {
		t.Fatalf("clone mutation leaked into the original ingredient: %v", p.Phases[0].Ingredients[0].Amount)
	}
}

func TestProgramValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Program)
		wantErr bool
	}{
		{"valid", func(p *Program) {}, false},
		{"empty id", func(p *Program) { p.ID = "" }, true},
		{"no phases", func(p *Program) { p.Phases = nil }, true},
		{"phase index negative", func(p *Program) { p.CurrentPhase = -1 }, true},
		{"phase index past end", func(p *Program) { p.CurrentPhase = 2 }, true},
		{"time left negative", func(p *Program) { p.TimeLeft = -1 }, true},
		{"time left above duration", func(p *Program) { p.TimeLeft = 121 }, true},
		{"multiplier zero", func(p *Program) { p.Multiplier = 0 }, true},
		{"multiplier too big", func(p *Program) { p.Multiplier = 4 }, true},
		{"time left zero is fine", func(p *Program) { p.TimeLeft = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProgram()
			tt.mutate(p)
			err := p.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrCorruptProgram) {
					t.Fatalf("expected ErrCorruptProgram, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestScaledLeavesStoredAmountAlone(t *testing.T) {
	ing := Ingredient{Name: "red dates", Amount: 6, Unit: "pcs"}

	if got := ing.Scaled(3); got != 18 {
		t.Fatalf("Scaled(3) = %v, want 18", got)
	}
	if ing.Amount != 6 {
		t.Fatalf("stored amount changed to %v", ing.Amount)
	}
}

func TestOnFinalPhase(t *testing.T) {
	p := validProgram()

	if p.OnFinalPhase() {
		t.Fatal("phase 0 of 2 reported as final")
	}
	p.CurrentPhase = 1
	if !p.OnFinalPhase() {
		t.Fatal("last phase not reported as final")
	}
}

func TestValidMultiplier(t *testing.T) {
	for m, want := range map[int]bool{0: false, 1: true, 2: true, 3: true, 4: false, -1: false} {
		if got := ValidMultiplier(m); got != want {
			t.Errorf("ValidMultiplier(%d) = %v, want %v", m, got, want)
		}
	}
}
