package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/meetsum/meeting-summarizer/internal/usecase/processing"
)

type recordingProcessor struct {
	mu        sync.Mutex
	processed []uuid.UUID
	done      chan struct{}
	panicOn   uuid.UUID
}

func (p *recordingProcessor) Process(ctx context.Context, meetingID uuid.UUID) (*processing.Outcome, error) {
	if meetingID == p.panicOn {
		panic("boom")
	}
	p.mu.Lock()
	p.processed = append(p.processed, meetingID)
	p.mu.Unlock()
	if p.done != nil {
		p.done <- struct{}{}
	}
	return &processing.Outcome{MeetingID: meetingID}, nil
}

func (p *recordingProcessor) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.processed)
}

func TestInProcessQueueProcessesJobs(t *testing.T) {
	proc := &recordingProcessor{done: make(chan struct{}, 4)}
	q := NewInProcessQueue(8, proc, zap.NewNop())

	if err := q.StartWorkers(context.Background(), 2); err != nil {
		t.Fatalf("StartWorkers: %v", err)
	}

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for _, id := range ids {
		if err := q.Enqueue(context.Background(), id); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}

	for range ids {
		select {
		case <-proc.done:
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for jobs")
		}
	}

	if err := q.StopWorkers(); err != nil {
		t.Fatalf("StopWorkers: %v", err)
	}
	if proc.count() != len(ids) {
		t.Fatalf("expected %d processed, got %d", len(ids), proc.count())
	}
}

func TestInProcessQueueBacklogFull(t *testing.T) {
	proc := &recordingProcessor{}
	q := NewInProcessQueue(1, proc, zap.NewNop())
	// No workers started: the second enqueue must be rejected, not block.

	if err := q.Enqueue(context.Background(), uuid.New()); err != nil {
		t.Fatalf("first Enqueue: %v", err)
	}
	if err := q.Enqueue(context.Background(), uuid.New()); err == nil {
		t.Fatal("expected error for full backlog")
	}
}

func TestInProcessQueueDoubleStart(t *testing.T) {
	q := NewInProcessQueue(1, &recordingProcessor{}, zap.NewNop())

	if err := q.StartWorkers(context.Background(), 1); err != nil {
		t.Fatalf("StartWorkers: %v", err)
	}
	if err := q.StartWorkers(context.Background(), 1); err == nil {
		t.Fatal("expected error on second start")
	}
	if err := q.StopWorkers(); err != nil {
		t.Fatalf("StopWorkers: %v", err)
	}
	if err := q.StopWorkers(); err == nil {
		t.Fatal("expected error on second stop")
	}
}

func TestInProcessQueueSurvivesPanickingJob(t *testing.T) {
	badJob := uuid.New()
	proc := &recordingProcessor{panicOn: badJob, done: make(chan struct{}, 1)}
	q := NewInProcessQueue(4, proc, zap.NewNop())

	if err := q.StartWorkers(context.Background(), 1); err != nil {
		t.Fatalf("StartWorkers: %v", err)
	}
	if err := q.Enqueue(context.Background(), badJob); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	// Recovery happens inside the job runner, so the worker must still be
	// alive to process the next job and stop cleanly.
	if err := q.Enqueue(context.Background(), uuid.New()); err != nil {
		t.Fatalf("Enqueue after panic: %v", err)
	}
	select {
	case <-proc.done:
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not survive panicking job")
	}

	if err := q.StopWorkers(); err != nil {
		t.Fatalf("StopWorkers: %v", err)
	}
}
