package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// RetryConfig bounds retries of transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// delay is the wait before retry n (0-based), before jitter.
func (c RetryConfig) delay(n int) time.Duration {
	d := float64(c.InitialWait)
	for range n {
		d *= c.Multiplier
		if d >= float64(c.MaxWait) {
			return c.MaxWait
		}
	}
	return time.Duration(d)
}

type retrying struct {
	next   Provider
	cfg    RetryConfig
	jitter func() float64 // in [-1, 1)
}

// WithRetry retries rate limits and outages with exponential backoff, and
// gives a reply that failed schema validation one more chance. Truncated
// replies and context errors are returned at once.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retrying{next: p, cfg: cfg, jitter: func() float64 { return 2*rand.Float64() - 1 }}
}

func (r *retrying) ModelID() string { return r.next.ModelID() }

func (r *retrying) Generate(ctx context.Context, req Request) (*Response, error) {
	attempts := max(r.cfg.MaxAttempts, 1)
	invalidSeen := false

	for n := 0; ; n++ {
		resp, err := r.next.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		if n == attempts-1 || !retryable(err, &invalidSeen) {
			return nil, err
		}

		t := time.NewTimer(r.wait(n, err))
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
	}
}

func (r *retrying) wait(n int, err error) time.Duration {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindRateLimit && e.RetryAfter > 0 {
		return e.RetryAfter
	}
	d := r.cfg.delay(n)
	// ±20% jitter.
	return max(d+time.Duration(float64(d)*0.2*r.jitter()), 0)
}

func retryable(err error, invalidSeen *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	kind, ok := KindOf(err)
	if !ok {
		return true
	}
	switch kind {
	case KindTruncated:
		return false
	case KindInvalid:
		if *invalidSeen {
			return false
		}
		*invalidSeen = true
	}
	return true
}
