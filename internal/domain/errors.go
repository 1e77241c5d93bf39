package domain

import "errors"

// Sentinel errors used across layers.
var (
	// ErrNotFound — a lookup by id found nothing. Commands addressed to
	// an unknown program treat this as a benign no-op.
	ErrNotFound = errors.New("not found")
	// ErrInvalidProgram — a creation or edit would produce a program that
	// violates the data-model invariants. Rejected at the boundary.
	ErrInvalidProgram = errors.New("invalid program definition")
	// ErrCapacityExceeded — creation attempted at the program ceiling.
	ErrCapacityExceeded = errors.New("program capacity exceeded")
	// ErrGenerationFailed — the recipe generator could not produce a valid
	// result. Transport detail never leaks past the adapter.
	ErrGenerationFailed = errors.New("recipe generation failed")
	// ErrCorruptProgram — a program violated an invariant at tick time.
	// The scheduler skips it and keeps the rest of the board advancing.
	ErrCorruptProgram = errors.New("corrupt program state")
)
