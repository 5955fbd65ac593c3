// Package jobcontext carries per-job metadata through the processing
// pipeline and shields workers from panics in job functions.
package jobcontext

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type contextKey string

var (
	keyMeetingID    contextKey = "meeting_id"
	keyWorkerID     contextKey = "worker_id"
	keyJobStartTime contextKey = "job_start_time"
)

// jobTimeout bounds a single processing run. The provider chain uses
// its own shorter per-call timeout inside this window.
const jobTimeout = 5 * time.Minute

// JobMetadata holds metadata for one processing run
type JobMetadata struct {
	MeetingID uuid.UUID
	WorkerID  int
	StartTime time.Time
}

// JobBegin derives a context carrying job metadata with the processing timeout applied
func JobBegin(parentCtx context.Context, meetingID uuid.UUID, workerID int) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parentCtx, jobTimeout)

	ctx = context.WithValue(ctx, keyMeetingID, meetingID)
	ctx = context.WithValue(ctx, keyWorkerID, workerID)
	ctx = context.WithValue(ctx, keyJobStartTime, time.Now())

	return ctx, cancel
}

// Run executes the job function with panic recovery. A panicking job
// is reported as an error instead of taking the worker down.
func Run(ctx context.Context, jobFunc func(context.Context) error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic recovered: %v", p)
		}
	}()

	if ctx.Err() != nil {
		return fmt.Errorf("context cancelled before job execution: %w", ctx.Err())
	}

	return jobFunc(ctx)
}

// GetMeetingID extracts the meeting ID from context
func GetMeetingID(ctx context.Context) (uuid.UUID, bool) {
	meetingID, ok := ctx.Value(keyMeetingID).(uuid.UUID)
	return meetingID, ok
}

// GetWorkerID extracts the worker ID from context
func GetWorkerID(ctx context.Context) int {
	workerID, ok := ctx.Value(keyWorkerID).(int)
	if !ok {
		return -1
	}
	return workerID
}

// GetJobStartTime extracts the job start time from context
func GetJobStartTime(ctx context.Context) (time.Time, bool) {
	startTime, ok := ctx.Value(keyJobStartTime).(time.Time)
	return startTime, ok
}

// GetJobMetadata extracts all job metadata from context
func GetJobMetadata(ctx context.Context) *JobMetadata {
	meetingID, _ := GetMeetingID(ctx)
	startTime, _ := GetJobStartTime(ctx)

	return &JobMetadata{
		MeetingID: meetingID,
		WorkerID:  GetWorkerID(ctx),
		StartTime: startTime,
	}
}
