package domain

import "context"

// ProgramStore holds the shared program collection. Implementations hand
// out deep copies: a mutation only becomes visible through Save, SaveAll,
// or ReplaceAll, so readers always see a consistent snapshot.
type ProgramStore interface {
	Save(ctx context.Context, p *Program) error
	// SaveAll publishes a batch of programs under one lock acquisition.
	// The tick pass uses it so no reader observes a half-advanced board.
	SaveAll(ctx context.Context, ps []*Program) error
	Load(ctx context.Context, id string) (*Program, error)
	Delete(ctx context.Context, id string) error
	// List returns all programs ordered by creation time.
	List(ctx context.Context) ([]*Program, error)
	Len(ctx context.Context) (int, error)
	// ReplaceAll swaps the entire collection. Used by restore-to-defaults.
	ReplaceAll(ctx context.Context, ps []*Program) error
}

// IntentParser converts raw user input into structured intents.
// The shipped implementation is keyword-based.
type IntentParser interface {
	Parse(ctx context.Context, input string) (*Intent, error)
}

// Notifier delivers phase-transition messages to the user. Implementations
// can print, chime, or both. Failures are logged by the caller and never
// interrupt a tick pass.
type Notifier interface {
	Notify(ctx context.Context, message string) error
	NotifyUrgent(ctx context.Context, message string) error
}

// ProgramGenerator turns a free-text prompt into a validated program
// template. The single implementation talks to an LLM; failures of any
// kind surface as ErrGenerationFailed.
type ProgramGenerator interface {
	Generate(ctx context.Context, prompt string) (*ProgramSpec, error)
}
