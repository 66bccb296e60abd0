package oracle

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// retryProvider re-issues calls that failed transiently, with
// exponential backoff. Wraps any Provider.
type retryProvider struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps a Provider so transient failures are retried.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retryProvider{inner: p, cfg: cfg}
}

func (r *retryProvider) ModelID() string { return r.inner.ModelID() }

func (r *retryProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	invalidBudget := 1

	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		resp, err := r.inner.Complete(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		switch classify(err) {
		case classFatal:
			return nil, err
		case classOnce:
			// A malformed reply earns a single re-ask per call.
			if invalidBudget == 0 {
				return nil, err
			}
			invalidBudget--
		}

		if attempt+1 == r.cfg.MaxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.wait(attempt, err)):
		}
	}
	return nil, lastErr
}

type retryClass int

const (
	classTransient retryClass = iota
	classOnce
	classFatal
)

// classify sorts an error into fatal, retry-once, or transient.
// Unrecognized errors count as transient; network hiccups land there.
func classify(err error) retryClass {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return classFatal
	}
	var trunc *TruncatedError
	if errors.As(err, &trunc) {
		// Truncation repeats until MaxTokens changes; retrying wastes calls.
		return classFatal
	}
	var invalid *InvalidResponseError
	if errors.As(err, &invalid) {
		return classOnce
	}
	return classTransient
}

// wait computes the sleep before the next attempt. Rate-limit replies
// with an explicit retry-after win over the computed backoff.
func (r *retryProvider) wait(attempt int, err error) time.Duration {
	var rl *RateLimitError
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	d := r.cfg.InitialWait
	for i := 0; i < attempt; i++ {
		d = time.Duration(float64(d) * r.cfg.Multiplier)
		if d >= r.cfg.MaxWait {
			d = r.cfg.MaxWait
			break
		}
	}

	// Half fixed, half jittered, so simultaneous retries spread out.
	half := d / 2
	if half <= 0 {
		return d
	}
	return half + rand.N(half)
}
