package domain

// IntentType classifies what the user wants to do.
type IntentType int

const (
	IntentUnknown IntentType = iota
	IntentList
	IntentShow     // show one program's phases and ingredients
	IntentNew      // manual creation, payload carries the definition
	IntentGenerate // AI creation, payload carries the prompt
	IntentToggle   // start or pause
	IntentNext     // advance past a finished phase / skip the current one
	IntentReset
	IntentScale // change the ingredient multiplier
	IntentEdit  // phase edit subcommand, payload carries the rest
	IntentDelete
	IntentRestore // replace the whole board with catalog defaults
	IntentSound   // arm the chime
	IntentHelp
	IntentQuit
)

// String returns a human-readable intent type.
func (i IntentType) String() string {
	switch i {
	case IntentList:
		return "list"
	case IntentShow:
		return "show"
	case IntentNew:
		return "new"
	case IntentGenerate:
		return "generate"
	case IntentToggle:
		return "toggle"
	case IntentNext:
		return "next"
	case IntentReset:
		return "reset"
	case IntentScale:
		return "scale"
	case IntentEdit:
		return "edit"
	case IntentDelete:
		return "delete"
	case IntentRestore:
		return "restore"
	case IntentSound:
		return "sound"
	case IntentHelp:
		return "help"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Intent represents a parsed user action.
type Intent struct {
	Type    IntentType
	Payload string // remaining arguments, e.g. the program number or a prompt
}
