// Package gen translates free-text prompts into validated program
// templates through an OpenAI-compatible chat endpoint. It is a pure
// boundary adapter: every transport, parsing, or schema failure surfaces
// as domain.ErrGenerationFailed, and the transport detail stays in the
// logs.
package gen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/hammamikhairi/simmer/internal/domain"
	"github.com/hammamikhairi/simmer/internal/logger"
)

// Compile-time interface check.
var _ domain.ProgramGenerator = (*Generator)(nil)

// Option configures the generator.
type Option func(*Generator)

// WithTimeout sets the per-request deadline.
func WithTimeout(d time.Duration) Option {
	return func(g *Generator) { g.timeout = d }
}

// WithTemperature overrides the sampling temperature.
func WithTemperature(t float32) Option {
	return func(g *Generator) { g.temperature = t }
}

// Generator asks a chat model to plan a program from a prompt.
type Generator struct {
	client      *openai.Client
	model       string
	temperature float32
	timeout     time.Duration
	log         *logger.Logger
}

// New creates a generator. baseURL may be empty for the default OpenAI
// endpoint; any OpenAI-compatible server works.
func New(apiKey, baseURL, model string, log *logger.Logger, opts ...Option) *Generator {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	g := &Generator{
		client:      openai.NewClientWithConfig(cfg),
		model:       model,
		temperature: 0.4,
		timeout:     30 * time.Second,
		log:         log,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate turns a free-text prompt into a validated program template.
// The call honors the caller's context and its own timeout; it never runs
// on the tick path. On failure nothing partial is returned.
func (g *Generator) Generate(ctx context.Context, prompt string) (*domain.ProgramSpec, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	g.log.Info("generating program for prompt %q", truncate(prompt, 80))

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: g.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: PromptGenerate},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("Create a cooking timer for: %q", prompt)},
		},
	})
	if err != nil {
		g.log.Error("gen: chat request failed: %v", err)
		return nil, domain.ErrGenerationFailed
	}
	if len(resp.Choices) == 0 {
		g.log.Error("gen: empty response (no choices)")
		return nil, domain.ErrGenerationFailed
	}

	spec, err := parseSpec(resp.Choices[0].Message.Content)
	if err != nil {
		g.log.Error("gen: %v", err)
		return nil, domain.ErrGenerationFailed
	}

	g.log.Info("generated program %q with %d phases", spec.Name, len(spec.Phases))
	return spec, nil
}

// ── Wire decoding ────────────────────────────────────────────────

type ingredientPayload struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

type phasePayload struct {
	Name            string              `json:"name"`
	DurationSeconds int                 `json:"durationSeconds"`
	Ingredients     []ingredientPayload `json:"ingredients"`
}

type programPayload struct {
	Name   string         `json:"name"`
	Phases []phasePayload `json:"phases"`
}

// parseSpec decodes the model's reply into a program template and runs
// the same validation every creation path goes through.
func parseSpec(raw string) (*domain.ProgramSpec, error) {
	raw = stripCodeFence(raw)

	var payload programPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("decoding reply: %w (raw: %s)", err, truncate(raw, 200))
	}

	spec := &domain.ProgramSpec{
		Name:   strings.TrimSpace(payload.Name),
		Phases: make([]domain.PhaseSpec, len(payload.Phases)),
	}
	for i, ph := range payload.Phases {
		ings := make([]domain.Ingredient, len(ph.Ingredients))
		for j, ing := range ph.Ingredients {
			ings[j] = domain.Ingredient{Name: ing.Name, Amount: ing.Amount, Unit: ing.Unit}
		}
		spec.Phases[i] = domain.PhaseSpec{
			Name:            strings.TrimSpace(ph.Name),
			DurationSeconds: ph.DurationSeconds,
			Ingredients:     ings,
		}
	}

	if err := spec.Validate(); err != nil {
		if errors.Is(err, domain.ErrInvalidProgram) {
			return nil, fmt.Errorf("model returned an invalid program: %v", err)
		}
		return nil, err
	}
	return spec, nil
}

// stripCodeFence removes ```json ... ``` wrappers that LLMs love to add.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
	}
	return strings.TrimSpace(s)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
