// Package queue hands freshly uploaded meetings to background workers.
// Two backends exist: an in-process channel for single-node deployments and
// a Redis list for anything that needs to survive more than one process.
package queue

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/meetsum/meeting-summarizer/internal/usecase/processing"
	"github.com/meetsum/meeting-summarizer/pkg/jobcontext"
)

// Processor runs the pipeline for one meeting. Satisfied by
// *processing.Service.
type Processor interface {
	Process(ctx context.Context, meetingID uuid.UUID) (*processing.Outcome, error)
}

// Queue decouples upload handling from transcript processing
type Queue interface {
	// Enqueue schedules a meeting for processing. Duplicate enqueues of the
	// same meeting are harmless; the claim step drops them.
	Enqueue(ctx context.Context, meetingID uuid.UUID) error

	// StartWorkers launches the background workers
	StartWorkers(ctx context.Context, workerCount int) error

	// StopWorkers drains the workers and blocks until they exit
	StopWorkers() error
}

// InProcessQueue is a buffered-channel queue with a worker pool, for
// deployments where the API and the workers share one process.
type InProcessQueue struct {
	jobs      chan uuid.UUID
	processor Processor
	logger    *zap.Logger

	stopChan  chan struct{}
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
}

// NewInProcessQueue creates an in-process queue with the given backlog depth
func NewInProcessQueue(depth int, processor Processor, logger *zap.Logger) *InProcessQueue {
	return &InProcessQueue{
		jobs:      make(chan uuid.UUID, depth),
		processor: processor,
		logger:    logger,
	}
}

// Enqueue schedules a meeting. Returns an error when the backlog is full
// rather than blocking the upload request.
func (q *InProcessQueue) Enqueue(ctx context.Context, meetingID uuid.UUID) error {
	select {
	case q.jobs <- meetingID:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return fmt.Errorf("queue backlog full, rejecting meeting %s", meetingID)
	}
}

// StartWorkers launches the worker goroutines
func (q *InProcessQueue) StartWorkers(ctx context.Context, workerCount int) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.isRunning {
		return fmt.Errorf("worker pool already running")
	}
	q.isRunning = true
	q.stopChan = make(chan struct{})

	q.logger.Info("🚀 Starting processing worker pool",
		zap.Int("worker_count", workerCount),
	)

	for i := 0; i < workerCount; i++ {
		q.wg.Add(1)
		go q.worker(ctx, i)
	}
	return nil
}

// StopWorkers gracefully stops all worker goroutines
func (q *InProcessQueue) StopWorkers() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.isRunning {
		return fmt.Errorf("worker pool not running")
	}

	q.logger.Info("🛑 Stopping processing worker pool...")
	close(q.stopChan)
	q.wg.Wait()
	q.isRunning = false
	q.logger.Info("✅ Processing worker pool stopped")
	return nil
}

func (q *InProcessQueue) worker(parentCtx context.Context, workerID int) {
	defer q.wg.Done()

	q.logger.Info("👷 Worker started", zap.Int("worker_id", workerID))

	for {
		select {
		case <-q.stopChan:
			q.logger.Info("👷 Worker stopping", zap.Int("worker_id", workerID))
			return
		case <-parentCtx.Done():
			return
		case meetingID := <-q.jobs:
			runJob(parentCtx, q.processor, q.logger, meetingID, workerID)
		}
	}
}

// runJob executes one processing run under a job context. Shared by both
// queue backends.
func runJob(parentCtx context.Context, processor Processor, logger *zap.Logger, meetingID uuid.UUID, workerID int) {
	jobCtx, cancel := jobcontext.JobBegin(parentCtx, meetingID, workerID)
	defer cancel()

	err := jobcontext.Run(jobCtx, func(ctx context.Context) error {
		_, err := processor.Process(ctx, meetingID)
		return err
	})
	if err != nil {
		logger.Error("❌ Job failed",
			zap.Int("worker_id", workerID),
			zap.String("meeting_id", meetingID.String()),
			zap.Error(err),
		)
	}
}
