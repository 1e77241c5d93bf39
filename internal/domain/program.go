// Package domain defines the core types and interfaces for the timer board.
// All other packages depend on domain; domain depends on nothing.
package domain

import (
	"fmt"
	"time"
)

// MaxPrograms is the ceiling on the number of live programs. Creation
// beyond it is rejected, never queued.
const MaxPrograms = 7

// Ingredient is one ingredient added during a phase. Amounts are stored
// unscaled; the multiplier is applied at display time only.
type Ingredient struct {
	Name   string
	Amount float64
	Unit   string
}

// Scaled returns the display amount for the given multiplier. The stored
// amount is never mutated.
func (i Ingredient) Scaled(multiplier int) float64 {
	return i.Amount * float64(multiplier)
}

// Phase is one named, timed step of a program. The ID is assigned when
// the program is built and stays stable across edits.
type Phase struct {
	ID              string
	Name            string
	DurationSeconds int
	Ingredients     []Ingredient
}

// Status is the lifecycle state of a program.
type Status int

const (
	// StatusIdle — created or reset, not counting down.
	StatusIdle Status = iota
	// StatusRunning — counting down one second per tick.
	StatusRunning
	// StatusPaused — countdown frozen, resumable.
	StatusPaused
	// StatusWaiting — a non-final phase finished; an explicit advance is
	// required before the next phase starts.
	StatusWaiting
	// StatusCompleted — the final phase finished. Terminal until reset.
	StatusCompleted
)

// String returns a human-readable status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusWaiting:
		return "waiting"
	case StatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// ValidMultiplier reports whether m is in the closed multiplier domain.
func ValidMultiplier(m int) bool {
	return m >= 1 && m <= 3
}

// Program is one independently tracked multi-phase countdown.
type Program struct {
	ID           string
	Name         string
	Phases       []Phase
	CurrentPhase int
	// TimeLeft is the remaining whole seconds of the active phase. It is
	// pinned to 0 exactly when Status is Waiting or Completed.
	TimeLeft   int
	Status     Status
	Multiplier int
	CreatedAt  time.Time
	Theme      string
}

// ActivePhase returns the phase the countdown is on. The caller must
// ensure the program is valid.
func (p *Program) ActivePhase() Phase {
	return p.Phases[p.CurrentPhase]
}

// OnFinalPhase reports whether the current phase is the last one.
func (p *Program) OnFinalPhase() bool {
	return p.CurrentPhase >= len(p.Phases)-1
}

// Clone returns a deep copy of the program. The board hands out clones so
// readers never observe a half-applied mutation.
func (p *Program) Clone() *Program {
	cp := *p
	cp.Phases = make([]Phase, len(p.Phases))
	for i, ph := range p.Phases {
		cp.Phases[i] = ph
		cp.Phases[i].Ingredients = append([]Ingredient(nil), ph.Ingredients...)
	}
	return &cp
}

// Validate checks the program invariants. It is a defensive check used at
// tick time; a failure there means a program entered the board without
// going through Create or EditPhases.
func (p *Program) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: empty id", ErrCorruptProgram)
	}
	if len(p.Phases) == 0 {
		return fmt.Errorf("%w: program %q has no phases", ErrCorruptProgram, p.Name)
	}
	if p.CurrentPhase < 0 || p.CurrentPhase >= len(p.Phases) {
		return fmt.Errorf("%w: program %q phase index %d out of range [0,%d)",
			ErrCorruptProgram, p.Name, p.CurrentPhase, len(p.Phases))
	}
	if p.TimeLeft < 0 || p.TimeLeft > p.ActivePhase().DurationSeconds {
		return fmt.Errorf("%w: program %q time left %ds outside phase duration %ds",
			ErrCorruptProgram, p.Name, p.TimeLeft, p.ActivePhase().DurationSeconds)
	}
	if !ValidMultiplier(p.Multiplier) {
		return fmt.Errorf("%w: program %q multiplier %d", ErrCorruptProgram, p.Name, p.Multiplier)
	}
	return nil
}

// PhaseEvent describes one phase transition produced by a tick pass.
type PhaseEvent struct {
	ProgramID   string
	ProgramName string
	PhaseName   string
	// Completed is true when the final phase finished; otherwise the
	// program is waiting for a manual advance.
	Completed bool
	// NextPhase and NextIngredients describe what the user should do
	// before advancing. Empty when Completed.
	NextPhase       string
	NextIngredients []Ingredient
}
