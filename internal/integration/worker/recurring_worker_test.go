package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/wealth-planner/backend/internal/application/usecase/recurring"
)

type stubProcessor struct {
	mu     sync.Mutex
	inputs []recurring.ProcessDueInstallmentsInput
	output *recurring.ProcessDueInstallmentsOutput
	err    error
}

func (p *stubProcessor) Execute(_ context.Context, input recurring.ProcessDueInstallmentsInput) (*recurring.ProcessDueInstallmentsOutput, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.inputs = append(p.inputs, input)
	return p.output, p.err
}

func (p *stubProcessor) calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.inputs)
}

type stubNotifier struct {
	runDates []time.Time
	err      error
}

func (n *stubNotifier) NotifyRun(_ context.Context, runDate time.Time, _ *recurring.ProcessDueInstallmentsOutput) error {
	n.runDates = append(n.runDates, runDate)
	return n.err
}

func TestNewRecurringWorker_Schedule(t *testing.T) {
	tests := []struct {
		name     string
		schedule string
		wantErr  bool
	}{
		{name: "default", schedule: ""},
		{name: "hourly", schedule: "0 * * * *"},
		{name: "descriptor", schedule: "@daily"},
		{name: "invalid", schedule: "every day", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRecurringWorker(&stubProcessor{}, nil, Config{Schedule: tt.schedule})
			if (err != nil) != tt.wantErr {
				t.Errorf("NewRecurringWorker() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRecurringWorker_RunOnce(t *testing.T) {
	now := time.Date(2024, 2, 10, 14, 30, 0, 0, time.UTC)
	processor := &stubProcessor{output: &recurring.ProcessDueInstallmentsOutput{Created: 2, Failed: 1}}
	notifier := &stubNotifier{err: errors.New("smtp down")}

	w, err := NewRecurringWorker(processor, notifier, Config{RunTimeout: time.Minute})
	if err != nil {
		t.Fatalf("NewRecurringWorker() error = %v", err)
	}

	out, err := w.RunOnce(context.Background(), now)
	if err != nil {
		t.Fatalf("RunOnce() error = %v, notifier errors must not fail the run", err)
	}
	if out.Created != 2 {
		t.Errorf("Created = %d", out.Created)
	}
	if !processor.inputs[0].Now.Equal(now) {
		t.Errorf("processor got Now = %s", processor.inputs[0].Now)
	}
	if len(notifier.runDates) != 1 || !notifier.runDates[0].Equal(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("notifier run dates = %v", notifier.runDates)
	}

	processor.output, processor.err = nil, errors.New("database unavailable")
	if _, err := w.RunOnce(context.Background(), now); err == nil {
		t.Error("RunOnce() should return the load error")
	}
	if len(notifier.runDates) != 1 {
		t.Error("notifier should not be called when nothing ran")
	}
}

func TestRecurringWorker_StartRunsImmediatelyAndStops(t *testing.T) {
	processor := &stubProcessor{output: &recurring.ProcessDueInstallmentsOutput{}}
	w, err := NewRecurringWorker(processor, nil, Config{Schedule: "0 0 1 1 *"})
	if err != nil {
		t.Fatalf("NewRecurringWorker() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	deadline := time.After(2 * time.Second)
	for processor.calls() == 0 {
		select {
		case <-deadline:
			t.Fatal("Start() did not run at startup")
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Start() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Start() did not return after cancellation")
	}
}
