package timer

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/hammamikhairi/simmer/internal/domain"
	"github.com/hammamikhairi/simmer/internal/logger"
)

// mockNotifier collects notifications for testing.
type mockNotifier struct {
	mu       sync.Mutex
	messages []string
	urgent   []string
}

func (m *mockNotifier) Notify(_ context.Context, msg string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
	return nil
}

func (m *mockNotifier) NotifyUrgent(_ context.Context, msg string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.urgent = append(m.urgent, msg)
	return nil
}

func (m *mockNotifier) counts() (int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.messages), len(m.urgent)
}

// scriptedAdvancer returns a fixed batch of events on its first tick and
// nothing afterwards, counting how many times it was driven.
type scriptedAdvancer struct {
	mu     sync.Mutex
	events []domain.PhaseEvent
	ticks  int
}

func (a *scriptedAdvancer) Tick(_ context.Context) []domain.PhaseEvent {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ticks++
	evs := a.events
	a.events = nil
	return evs
}

func (a *scriptedAdvancer) tickCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ticks
}

func TestSupervisorDeliversNotifications(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	notifier := &mockNotifier{}
	advancer := &scriptedAdvancer{
		events: []domain.PhaseEvent{
			{
				ProgramID:   "p1",
				ProgramName: "Pear Soup",
				PhaseName:   "Boil",
				NextPhase:   "Simmer",
				NextIngredients: []domain.Ingredient{
					{Name: "rock sugar", Amount: 20, Unit: "g"},
				},
			},
			{
				ProgramID:   "p2",
				ProgramName: "Red Date Tea",
				PhaseName:   "Steep",
				Completed:   true,
			},
		},
	}

	sup := New(advancer, notifier, log, WithTickInterval(20*time.Millisecond))
	sup.Start(context.Background())
	defer sup.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for {
		normal, urgent := notifier.counts()
		if normal == 1 && urgent == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("notifications missing: normal=%d urgent=%d", normal, urgent)
		}
		time.Sleep(10 * time.Millisecond)
	}

	notifier.mu.Lock()
	phaseMsg := notifier.messages[0]
	doneMsg := notifier.urgent[0]
	notifier.mu.Unlock()

	if !strings.Contains(phaseMsg, "Pear Soup") || !strings.Contains(phaseMsg, "rock sugar") {
		t.Fatalf("phase message missing program or ingredient: %q", phaseMsg)
	}
	if !strings.Contains(doneMsg, "Red Date Tea") || !strings.Contains(doneMsg, "finished") {
		t.Fatalf("completion message wrong: %q", doneMsg)
	}
}

func TestSupervisorStopHaltsTicking(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	advancer := &scriptedAdvancer{}

	sup := New(advancer, &mockNotifier{}, log, WithTickInterval(10*time.Millisecond))
	sup.Start(context.Background())

	time.Sleep(50 * time.Millisecond)
	sup.Stop()
	if advancer.tickCount() == 0 {
		t.Fatal("supervisor never ticked")
	}

	time.Sleep(30 * time.Millisecond)
	after := advancer.tickCount()
	time.Sleep(50 * time.Millisecond)
	if got := advancer.tickCount(); got != after {
		t.Fatalf("supervisor kept ticking after Stop: %d -> %d", after, got)
	}
}

func TestSupervisorStartIsIdempotent(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	advancer := &scriptedAdvancer{}

	sup := New(advancer, &mockNotifier{}, log, WithTickInterval(10*time.Millisecond))
	sup.Start(context.Background())
	sup.Start(context.Background()) // second start is a no-op
	defer sup.Stop()

	time.Sleep(55 * time.Millisecond)
	// With a doubled loop we'd see roughly twice as many ticks.
	if got := advancer.tickCount(); got > 8 {
		t.Fatalf("tick count %d suggests two loops are running", got)
	}
}

func TestPhaseDoneMessage(t *testing.T) {
	tests := []struct {
		name string
		ev   domain.PhaseEvent
		want []string
	}{
		{
			"with ingredients",
			domain.PhaseEvent{
				ProgramName: "Five Reds", PhaseName: "Boil", NextPhase: "Simmer",
				NextIngredients: []domain.Ingredient{
					{Name: "red dates", Amount: 6, Unit: "pcs"},
					{Name: "goji berries", Amount: 10, Unit: "g"},
					{Name: "red beans", Amount: 30, Unit: "g"},
				},
			},
			[]string{"Five Reds", `"Boil" is done`, "red dates, goji berries and red beans", "hit next"},
		},
		{
			"single ingredient",
			domain.PhaseEvent{
				ProgramName: "Tea", PhaseName: "Boil", NextPhase: "Steep",
				NextIngredients: []domain.Ingredient{{Name: "tea leaves", Amount: 5, Unit: "g"}},
			},
			[]string{"Add tea leaves"},
		},
		{
			"no ingredients",
			domain.PhaseEvent{ProgramName: "Tea", PhaseName: "Boil", NextPhase: "Cool"},
			[]string{`For "Cool"`, "hit next"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := phaseDoneMessage(tt.ev)
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("message %q missing %q", got, want)
				}
			}
		})
	}
}
