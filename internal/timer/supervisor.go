// Package timer implements the background supervisor that drives the
// board's countdown, one logical second per tick, and fires notifications
// when phases finish.
package timer

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hammamikhairi/simmer/internal/domain"
	"github.com/hammamikhairi/simmer/internal/logger"
)

// Advancer is the tick entry point the supervisor drives once per
// interval. The engine implements it.
type Advancer interface {
	Tick(ctx context.Context) []domain.PhaseEvent
}

// Option configures the supervisor.
type Option func(*Supervisor)

// WithTickInterval sets the wall-clock period between ticks. Each tick
// still advances state by exactly one logical second regardless of the
// interval; there is no sub-second drift correction.
func WithTickInterval(d time.Duration) Option {
	return func(s *Supervisor) {
		s.tickInterval = d
	}
}

// Supervisor runs in the background and advances the board once per tick.
type Supervisor struct {
	advancer     Advancer
	notifier     domain.Notifier
	log          *logger.Logger
	tickInterval time.Duration

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
}

// New creates a supervisor with the given dependencies and options.
func New(advancer Advancer, notifier domain.Notifier, log *logger.Logger, opts ...Option) *Supervisor {
	s := &Supervisor{
		advancer:     advancer,
		notifier:     notifier,
		log:          log,
		tickInterval: 1 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins the background tick loop. Non-blocking.
func (s *Supervisor) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		s.log.Warn("supervisor already running")
		return
	}

	childCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.running = true

	go s.loop(childCtx)

	s.log.Info("supervisor started (tick=%s)", s.tickInterval)
}

// Stop gracefully shuts down the supervisor.
func (s *Supervisor) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.cancel()
	s.running = false
	s.log.Info("supervisor stopped")
}

// loop is the main tick loop.
func (s *Supervisor) loop(ctx context.Context) {
	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick runs one pass and delivers notifications for whatever transitioned.
// Notifications happen after the pass has been published, off the engine
// lock; a failing notifier is logged and never stalls the countdown.
func (s *Supervisor) tick(ctx context.Context) {
	events := s.advancer.Tick(ctx)

	for _, ev := range events {
		if ev.Completed {
			msg := fmt.Sprintf("[Done] %s is finished. Take it off the heat.", ev.ProgramName)
			if err := s.notifier.NotifyUrgent(ctx, msg); err != nil {
				s.log.Error("supervisor: completion notify: %v", err)
			}
			continue
		}

		msg := phaseDoneMessage(ev)
		if err := s.notifier.Notify(ctx, msg); err != nil {
			s.log.Error("supervisor: phase notify: %v", err)
		}
	}
}

// phaseDoneMessage builds the "phase finished, act now" line, naming the
// ingredients the next phase needs so the user knows what to add.
func phaseDoneMessage(ev domain.PhaseEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[Phase] %s — %q is done.", ev.ProgramName, ev.PhaseName)
	if len(ev.NextIngredients) > 0 {
		names := make([]string, len(ev.NextIngredients))
		for i, ing := range ev.NextIngredients {
			names[i] = ing.Name
		}
		fmt.Fprintf(&b, " Add %s,", joinNames(names))
	} else {
		fmt.Fprintf(&b, " For %q,", ev.NextPhase)
	}
	b.WriteString(" then hit next to continue.")
	return b.String()
}

// joinNames joins a slice of names into a spoken-style list.
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}
