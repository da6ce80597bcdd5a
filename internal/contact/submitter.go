package contact

import (
	"context"
	"time"
)

// DefaultDelay is the simulated network latency of the stubbed backend.
const DefaultDelay = 2 * time.Second

// Submitter delivers a submission to wherever contact messages go.
type Submitter interface {
	Submit(ctx context.Context, sub Submission) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, sub Submission) error

func (fn SubmitterFunc) Submit(ctx context.Context, sub Submission) error {
	return fn(ctx, sub)
}

// Simulated waits Delay and reports success without contacting anything.
type Simulated struct {
	Delay time.Duration
}

func (s Simulated) Submit(ctx context.Context, _ Submission) error {
	if s.Delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Chain runs submitters in order and stops at the first error.
type Chain []Submitter

func (c Chain) Submit(ctx context.Context, sub Submission) error {
	for _, s := range c {
		if err := s.Submit(ctx, sub); err != nil {
			return err
		}
	}
	return nil
}
