package conversation

import (
	"context"
	"fmt"

	"github.com/hammamikhairi/simmer/internal/domain"
	"github.com/hammamikhairi/simmer/internal/logger"
)

// Compile-time interface check.
var _ domain.Notifier = (*CLINotifier)(nil)

// PrintFunc prints one formatted line to the terminal. It matches the
// display UI's Printf so notifications land above the prompt instead of
// corrupting it.
type PrintFunc func(format string, a ...interface{})

// CLINotifier announces phase transitions on the terminal. Normal
// notifications render cyan, urgent ones bold red; both fall back to plain
// fmt output when no print function is injected.
type CLINotifier struct {
	log     *logger.Logger
	printFn PrintFunc
}

// NewCLINotifier creates a terminal notifier around printFn.
func NewCLINotifier(log *logger.Logger, printFn PrintFunc) *CLINotifier {
	n := &CLINotifier{log: log, printFn: printFn}
	if n.printFn == nil {
		n.printFn = func(format string, a ...interface{}) {
			fmt.Printf(format+"\n", a...)
		}
	}
	return n
}

func (n *CLINotifier) Notify(ctx context.Context, message string) error {
	n.log.Debug("notify: %s", message)
	n.printFn("\033[36;1m%s\033[0m", message)
	return nil
}

func (n *CLINotifier) NotifyUrgent(ctx context.Context, message string) error {
	n.log.Debug("notify-urgent: %s", message)
	n.printFn("\033[31;1m%s\033[0m", message)
	return nil
}
