package invoker

import (
	"errors"
	"math"
	"time"
)

// Outcome is the decision a retry classifier makes about a failure.
// Construct values with Stop, Retry or RetryAfter.
type Outcome struct {
	retry   bool
	wait    time.Duration
	hasWait bool
}

// Stop marks the failure as terminal: no further attempts.
func Stop() Outcome {
	return Outcome{}
}

// Retry marks the failure as transient; the policy's backoff decides the
// delay before the next attempt.
func Retry() Outcome {
	return Outcome{retry: true}
}

// RetryAfter marks the failure as transient and overrides the backoff with
// an explicit delay, e.g. from a provider's rate-limit response header.
func RetryAfter(wait time.Duration) Outcome {
	return Outcome{retry: true, wait: wait, hasWait: true}
}

// Policy is the immutable retry configuration attached to a hook set or
// supplied per call. The zero value behaves like NoRetry.
type Policy struct {
	// Attempts is the maximum total number of tries, including the first.
	Attempts int

	// Timeout bounds the wall-clock time across all attempts. Once
	// exceeded, the most recent failure is terminal. Zero disables the
	// budget.
	Timeout time.Duration

	// WaitInitial is the base delay before the second attempt.
	WaitInitial time.Duration

	// WaitMax caps the exponential delay before jitter is added.
	WaitMax time.Duration

	// WaitJitter is the upper bound of the uniform random term added to
	// every delay.
	WaitJitter time.Duration

	// WaitExpBase is the exponential growth factor between attempts.
	WaitExpBase float64

	// Classify decides whether a failure is worth retrying. Nil means
	// every failure is retryable until Attempts or Timeout runs out.
	Classify func(error) Outcome
}

// DefaultPolicy returns the standard policy for outbound provider calls:
// 10 attempts within 45 seconds, exponential backoff from 100ms capped at
// 5s, with up to 1s of jitter.
func DefaultPolicy() Policy {
	return Policy{
		Attempts:    10,
		Timeout:     45 * time.Second,
		WaitInitial: 100 * time.Millisecond,
		WaitMax:     5 * time.Second,
		WaitJitter:  time.Second,
		WaitExpBase: 2,
	}
}

// NoRetry returns a policy that runs the work exactly once. Failures are
// terminal immediately; hooks still fire in their usual order.
func NoRetry() Policy {
	return Policy{Attempts: 1}
}

// RetryOn returns a classifier that retries only failures matching one of
// the target errors (via errors.Is). Everything else is terminal.
func RetryOn(targets ...error) func(error) Outcome {
	return func(err error) Outcome {
		for _, target := range targets {
			if errors.Is(err, target) {
				return Retry()
			}
		}
		return Stop()
	}
}

// RetryIf returns a classifier that retries failures for which pred is true.
func RetryIf(pred func(error) bool) func(error) Outcome {
	return func(err error) Outcome {
		if pred(err) {
			return Retry()
		}
		return Stop()
	}
}

// normalized fills zero backoff fields with the defaults, so a policy that
// only sets Attempts still waits sensibly between tries.
func (p Policy) normalized() Policy {
	defaults := DefaultPolicy()
	if p.Attempts <= 0 {
		p.Attempts = 1
	}
	if p.WaitInitial <= 0 {
		p.WaitInitial = defaults.WaitInitial
	}
	if p.WaitMax <= 0 {
		p.WaitMax = defaults.WaitMax
	}
	if p.WaitExpBase <= 0 {
		p.WaitExpBase = defaults.WaitExpBase
	}
	return p
}

// classify applies the policy's classifier, defaulting to retry-everything.
func (p Policy) classify(err error) Outcome {
	if p.Classify == nil {
		return Retry()
	}
	return p.Classify(err)
}

// delay computes the backoff between attempt n and n+1:
// min(WaitMax, WaitInitial * WaitExpBase^(n-1)) plus a uniform random term
// in [0, WaitJitter). The jitter is always additive, never subtractive.
func (p Policy) delay(attempt int, random func() float64) time.Duration {
	base := float64(p.WaitInitial) * math.Pow(p.WaitExpBase, float64(attempt-1))
	if base > float64(p.WaitMax) {
		base = float64(p.WaitMax)
	}
	jitter := 0.0
	if p.WaitJitter > 0 {
		jitter = random() * float64(p.WaitJitter)
	}
	return time.Duration(base + jitter)
}
