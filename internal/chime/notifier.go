package chime

import (
	"context"

	"github.com/hammamikhairi/simmer/internal/domain"
	"github.com/hammamikhairi/simmer/internal/logger"
)

// Compile-time interface check.
var _ domain.Notifier = (*Notifier)(nil)

// Notifier wraps a text notifier and also rings the chime. Messages are
// printed immediately via the inner notifier; the tone plays alongside.
type Notifier struct {
	text  domain.Notifier
	chime *Chime
	log   *logger.Logger
}

// NewNotifier creates a notifier that both prints and chimes.
func NewNotifier(text domain.Notifier, chime *Chime, log *logger.Logger) *Notifier {
	return &Notifier{text: text, chime: chime, log: log}
}

// Notify prints the message and plays the phase chime.
func (n *Notifier) Notify(ctx context.Context, message string) error {
	if err := n.text.Notify(ctx, message); err != nil {
		return err
	}
	n.chime.Ring()
	return nil
}

// NotifyUrgent prints the message and plays the completion chime.
func (n *Notifier) NotifyUrgent(ctx context.Context, message string) error {
	if err := n.text.NotifyUrgent(ctx, message); err != nil {
		return err
	}
	n.chime.RingUrgent()
	return nil
}
