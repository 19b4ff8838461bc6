package reactor

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// SubmissionGroup bounds the number of concurrent in-flight cross-core
// calls, the sole source of backpressure in this system: the router
// does not enqueue internally. It wraps golang.org/x/sync/semaphore.
// Weighted.
type SubmissionGroup struct {
	sem *semaphore.Weighted
}

// NewSubmissionGroup returns a SubmissionGroup that admits at most limit
// concurrent InvokeOn calls.
func NewSubmissionGroup(limit int) *SubmissionGroup {
	if limit <= 0 {
		limit = 1
	}
	return &SubmissionGroup{sem: semaphore.NewWeighted(int64(limit))}
}

// Acquire blocks until a slot is available or ctx is done.
func (s *SubmissionGroup) Acquire(ctx context.Context) error {
	if s == nil {
		return nil
	}
	return s.sem.Acquire(ctx, 1)
}

// Release frees the slot acquired by a matching Acquire call.
func (s *SubmissionGroup) Release() {
	if s == nil {
		return
	}
	s.sem.Release(1)
}
