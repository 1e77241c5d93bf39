package conversation

import (
	"context"
	"testing"

	"github.com/hammamikhairi/simmer/internal/domain"
	"github.com/hammamikhairi/simmer/internal/logger"
)

func TestKeywordParser(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	parser := NewKeywordParser(log)
	ctx := context.Background()

	tests := []struct {
		input       string
		wantType    domain.IntentType
		wantPayload string
	}{
		// List variants
		{"list", domain.IntentList, ""},
		{"ls", domain.IntentList, ""},
		{"board", domain.IntentList, ""},
		{"timers", domain.IntentList, ""},

		// A bare number shows that program
		{"3", domain.IntentShow, "3"},
		{"show 2", domain.IntentShow, "2"},
		{"view 1", domain.IntentShow, "1"},

		// Creation
		{"new Pear Soup: boil=10m, steep=5m", domain.IntentNew, "Pear Soup: boil=10m, steep=5m"},
		{"create Tea: steep=3m", domain.IntentNew, "Tea: steep=3m"},
		{"gen something warming for winter", domain.IntentGenerate, "something warming for winter"},
		{"generate a pear dessert soup", domain.IntentGenerate, "a pear dessert soup"},

		// Run control
		{"start 1", domain.IntentToggle, "1"},
		{"pause 2", domain.IntentToggle, "2"},
		{"toggle 3", domain.IntentToggle, "3"},
		{"next 1", domain.IntentNext, "1"},
		{"skip 2", domain.IntentNext, "2"},
		{"done 1", domain.IntentNext, "1"},
		{"reset 2", domain.IntentReset, "2"},

		// Scaling and editing
		{"scale 2 x3", domain.IntentScale, "2 x3"},
		{"edit 1 rename 2 Slow Steep", domain.IntentEdit, "1 rename 2 Slow Steep"},
		{"delete 4", domain.IntentDelete, "4"},
		{"rm 4", domain.IntentDelete, "4"},

		// Board-level commands
		{"restore", domain.IntentRestore, ""},
		{"defaults", domain.IntentRestore, ""},
		{"sound", domain.IntentSound, ""},
		{"chime", domain.IntentSound, ""},

		// Help and quit
		{"help", domain.IntentHelp, ""},
		{"?", domain.IntentHelp, ""},
		{"quit", domain.IntentQuit, ""},
		{"exit", domain.IntentQuit, ""},
		{"q", domain.IntentQuit, ""},

		// Case-insensitive
		{"LIST", domain.IntentList, ""},
		{"Start 1", domain.IntentToggle, "1"},

		// Unknown keeps the raw input as payload
		{"make me a sandwich", domain.IntentUnknown, "make me a sandwich"},
		{"", domain.IntentUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			intent, err := parser.Parse(ctx, tt.input)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if intent.Type != tt.wantType {
				t.Fatalf("type = %s, want %s", intent.Type, tt.wantType)
			}
			if intent.Payload != tt.wantPayload {
				t.Fatalf("payload = %q, want %q", intent.Payload, tt.wantPayload)
			}
		})
	}
}
