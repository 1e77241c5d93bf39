// Package conversation provides intent parsing and user notification
// implementations for the command prompt.
package conversation

import (
	"context"
	"regexp"
	"strings"

	"github.com/hammamikhairi/simmer/internal/domain"
	"github.com/hammamikhairi/simmer/internal/logger"
)

// Compile-time interface check.
var _ domain.IntentParser = (*KeywordParser)(nil)

// KeywordParser matches typed input to intents using keywords and simple
// patterns. Commands that address a program carry the rest of the line as
// payload (program number plus arguments).
type KeywordParser struct {
	log   *logger.Logger
	bare  []patternRule // whole-input matches, no payload
	verbs []verbRule    // leading verb, remainder is the payload
}

type patternRule struct {
	regex  *regexp.Regexp
	intent domain.IntentType
}

type verbRule struct {
	regex  *regexp.Regexp
	intent domain.IntentType
}

// NewKeywordParser creates a keyword-based intent parser.
func NewKeywordParser(log *logger.Logger) *KeywordParser {
	p := &KeywordParser{log: log}
	p.bare = []patternRule{
		{regexp.MustCompile(`(?i)^(list|ls|board|timers)$`), domain.IntentList},
		{regexp.MustCompile(`(?i)^(restore|defaults|reset all)$`), domain.IntentRestore},
		{regexp.MustCompile(`(?i)^(sound|audio|chime)$`), domain.IntentSound},
		{regexp.MustCompile(`(?i)^(help|h|\?)$`), domain.IntentHelp},
		{regexp.MustCompile(`(?i)^(quit|exit|q)$`), domain.IntentQuit},
	}
	p.verbs = []verbRule{
		{regexp.MustCompile(`(?i)^(show|view|info)\b`), domain.IntentShow},
		{regexp.MustCompile(`(?i)^(new|create|add)\b`), domain.IntentNew},
		{regexp.MustCompile(`(?i)^(gen|generate|ai)\b`), domain.IntentGenerate},
		{regexp.MustCompile(`(?i)^(start|go|pause|toggle|run)\b`), domain.IntentToggle},
		{regexp.MustCompile(`(?i)^(next|advance|skip|continue|done)\b`), domain.IntentNext},
		{regexp.MustCompile(`(?i)^(reset|restart)\b`), domain.IntentReset},
		{regexp.MustCompile(`(?i)^(scale|multiply|x)\b`), domain.IntentScale},
		{regexp.MustCompile(`(?i)^(edit|rename|resize)\b`), domain.IntentEdit},
		{regexp.MustCompile(`(?i)^(delete|remove|rm|del)\b`), domain.IntentDelete},
	}
	return p
}

// Parse converts user input into an intent.
func (p *KeywordParser) Parse(ctx context.Context, input string) (*domain.Intent, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return &domain.Intent{Type: domain.IntentUnknown}, nil
	}

	p.log.Debug("parsing input: %q", trimmed)

	// A bare number shows that program.
	if isDigits(trimmed) {
		return &domain.Intent{Type: domain.IntentShow, Payload: trimmed}, nil
	}

	for _, rule := range p.bare {
		if rule.regex.MatchString(trimmed) {
			p.log.Debug("matched intent: %s", rule.intent)
			return &domain.Intent{Type: rule.intent}, nil
		}
	}

	for _, rule := range p.verbs {
		if loc := rule.regex.FindStringIndex(trimmed); loc != nil {
			payload := strings.TrimSpace(trimmed[loc[1]:])
			p.log.Debug("matched intent: %s (payload=%q)", rule.intent, payload)
			return &domain.Intent{Type: rule.intent, Payload: payload}, nil
		}
	}

	p.log.Debug("no match, returning unknown intent")
	return &domain.Intent{Type: domain.IntentUnknown, Payload: trimmed}, nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
