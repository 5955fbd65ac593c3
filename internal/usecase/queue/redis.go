package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	// jobListKey is the Redis list the workers block on
	jobListKey = "summarizer:jobs"

	// dedupeKeyPrefix guards against the same meeting being enqueued twice
	// while its first job is still in flight
	dedupeKeyPrefix = "summarizer:enqueued:"
	dedupeTTL       = 10 * time.Minute

	// popTimeout is how long BRPOP blocks before the worker re-checks its
	// stop channel
	popTimeout = 5 * time.Second
)

// RedisQueue backs the job queue with a Redis list so queued meetings
// survive process restarts and multiple worker processes can share the load.
type RedisQueue struct {
	client    *redis.Client
	processor Processor
	logger    *zap.Logger

	stopChan  chan struct{}
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
}

// NewRedisQueue creates a Redis-backed queue
func NewRedisQueue(client *redis.Client, processor Processor, logger *zap.Logger) *RedisQueue {
	return &RedisQueue{
		client:    client,
		processor: processor,
		logger:    logger,
	}
}

// Enqueue pushes a meeting onto the job list. A short-lived SETNX marker
// drops duplicate enqueues of the same meeting; the claim step remains the
// real idempotence guarantee.
func (q *RedisQueue) Enqueue(ctx context.Context, meetingID uuid.UUID) error {
	ok, err := q.client.SetNX(ctx, dedupeKeyPrefix+meetingID.String(), 1, dedupeTTL).Result()
	if err != nil {
		return fmt.Errorf("failed to set dedupe marker: %w", err)
	}
	if !ok {
		q.logger.Info("⏭️ Meeting already enqueued, skipping",
			zap.String("meeting_id", meetingID.String()))
		return nil
	}

	if err := q.client.LPush(ctx, jobListKey, meetingID.String()).Err(); err != nil {
		return fmt.Errorf("failed to push job: %w", err)
	}
	return nil
}

// StartWorkers launches the worker goroutines
func (q *RedisQueue) StartWorkers(ctx context.Context, workerCount int) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.isRunning {
		return fmt.Errorf("worker pool already running")
	}
	q.isRunning = true
	q.stopChan = make(chan struct{})

	q.logger.Info("🚀 Starting Redis worker pool",
		zap.Int("worker_count", workerCount),
	)

	for i := 0; i < workerCount; i++ {
		q.wg.Add(1)
		go q.worker(ctx, i)
	}
	return nil
}

// StopWorkers gracefully stops all worker goroutines
func (q *RedisQueue) StopWorkers() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.isRunning {
		return fmt.Errorf("worker pool not running")
	}

	q.logger.Info("🛑 Stopping Redis worker pool...")
	close(q.stopChan)
	q.wg.Wait()
	q.isRunning = false
	q.logger.Info("✅ Redis worker pool stopped")
	return nil
}

func (q *RedisQueue) worker(parentCtx context.Context, workerID int) {
	defer q.wg.Done()

	q.logger.Info("👷 Worker started", zap.Int("worker_id", workerID))

	// Transient Redis failures back off exponentially instead of spinning
	// a hot error loop.
	retry := backoff.NewExponentialBackOff()
	retry.MaxInterval = 30 * time.Second
	retry.MaxElapsedTime = 0

	for {
		select {
		case <-q.stopChan:
			q.logger.Info("👷 Worker stopping", zap.Int("worker_id", workerID))
			return
		case <-parentCtx.Done():
			return
		default:
		}

		values, err := q.client.BRPop(parentCtx, popTimeout, jobListKey).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Empty queue, just poll again.
				retry.Reset()
				continue
			}
			if parentCtx.Err() != nil {
				return
			}
			wait := retry.NextBackOff()
			q.logger.Error("❌ Failed to pop job, backing off",
				zap.Int("worker_id", workerID),
				zap.Duration("wait", wait),
				zap.Error(err),
			)
			select {
			case <-time.After(wait):
			case <-q.stopChan:
				return
			}
			continue
		}
		retry.Reset()

		// BRPOP returns [key, value].
		meetingID, err := uuid.Parse(values[1])
		if err != nil {
			q.logger.Error("❌ Dropping malformed job payload",
				zap.String("payload", values[1]),
				zap.Error(err),
			)
			continue
		}

		q.clearDedupe(parentCtx, meetingID)
		runJob(parentCtx, q.processor, q.logger, meetingID, workerID)
	}
}

// clearDedupe removes the enqueue marker once the job is picked up so a
// later re-upload path can enqueue again immediately.
func (q *RedisQueue) clearDedupe(ctx context.Context, meetingID uuid.UUID) {
	if err := q.client.Del(ctx, dedupeKeyPrefix+meetingID.String()).Err(); err != nil {
		q.logger.Warn("failed to clear dedupe marker",
			zap.String("meeting_id", meetingID.String()),
			zap.Error(err))
	}
}
