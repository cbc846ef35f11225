package invoker

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errTransient = errors.New("transient failure")

// fakeClock drives the invoker without real sleeps. Sleeping advances the
// clock by the requested duration and records it.
type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
	return ctx.Err()
}

func newTestInvoker(hooks Hooks, clock *fakeClock) *Invoker {
	return New(hooks,
		WithClock(clock.Now, clock.Sleep),
		WithJitterSource(func() float64 { return 0 }),
	)
}

// recordingHooks builds a hook set that appends lifecycle events to a shared
// slice, so tests can assert exact ordering.
func recordingHooks(events *[]string, policy Policy) Hooks {
	return Hooks{
		Pre:    []Hook{func(*CallScope) { *events = append(*events, "pre") }},
		Retry:  []RetryHook{func(_ *CallScope, attempt int) { *events = append(*events, fmt.Sprintf("retry-%d", attempt)) }},
		Error:  []Hook{func(*CallScope) { *events = append(*events, "error") }},
		Post:   []Hook{func(*CallScope) { *events = append(*events, "post") }},
		Policy: policy,
	}
}

// TestInvoke_RetryThenSuccess tests a work that fails twice then succeeds.
func TestInvoke_RetryThenSuccess(t *testing.T) {
	var events []string
	clock := &fakeClock{now: time.Now()}
	iv := newTestInvoker(recordingHooks(&events, Policy{Attempts: 5}), clock)

	calls := 0
	err := iv.Invoke(context.Background(), CallInfo{Operation: "test"}, func(context.Context) error {
		calls++
		events = append(events, fmt.Sprintf("main-%d", calls))
		if calls < 3 {
			return errTransient
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
	// Pre once, retry hooks only before attempts 2 and 3, no error hook,
	// post exactly once, in this exact order.
	assert.Equal(t, []string{"pre", "main-1", "retry-2", "main-2", "retry-3", "main-3", "post"}, events)
	assert.Len(t, clock.sleeps, 2)
}

// TestInvoke_RetryExhausted tests that the original failure surfaces after
// the attempt budget runs out.
func TestInvoke_RetryExhausted(t *testing.T) {
	var events []string
	clock := &fakeClock{now: time.Now()}
	iv := newTestInvoker(recordingHooks(&events, Policy{Attempts: 3}), clock)

	calls := 0
	workErr := fmt.Errorf("provider says no: %w", errTransient)
	err := iv.Invoke(context.Background(), CallInfo{Operation: "test"}, func(context.Context) error {
		calls++
		return workErr
	})

	assert.Equal(t, 3, calls)
	// The exact error, not a wrapped one.
	assert.Same(t, workErr, err) //nolint:testifylint
	assert.Equal(t, []string{"pre", "retry-2", "retry-3", "error", "post"}, events)
	assert.Len(t, clock.sleeps, 2)
}

// TestInvoke_NonRetryable tests immediate termination on a failure the
// classifier rejects.
func TestInvoke_NonRetryable(t *testing.T) {
	var events []string
	policy := Policy{Attempts: 5, Classify: RetryOn(errTransient)}
	clock := &fakeClock{now: time.Now()}
	iv := newTestInvoker(recordingHooks(&events, policy), clock)

	calls := 0
	fatal := errors.New("bad credentials")
	err := iv.Invoke(context.Background(), CallInfo{Operation: "test"}, func(context.Context) error {
		calls++
		return fatal
	})

	assert.Equal(t, 1, calls)
	assert.Same(t, fatal, err) //nolint:testifylint
	assert.Equal(t, []string{"pre", "error", "post"}, events)
	assert.Empty(t, clock.sleeps)
}

// TestInvoke_NoRetry tests that the NoRetry policy runs the work exactly
// once regardless of outcome.
func TestInvoke_NoRetry(t *testing.T) {
	tests := []struct {
		name    string
		workErr error
	}{
		{name: "success", workErr: nil},
		{name: "failure", workErr: errTransient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{now: time.Now()}
			var events []string
			iv := newTestInvoker(recordingHooks(&events, NoRetry()), clock)

			calls := 0
			err := iv.Invoke(context.Background(), CallInfo{Operation: "test"}, func(context.Context) error {
				calls++
				return tt.workErr
			})

			assert.Equal(t, 1, calls)
			assert.Empty(t, clock.sleeps)
			if tt.workErr == nil {
				assert.NoError(t, err)
				assert.Equal(t, []string{"pre", "post"}, events)
			} else {
				assert.Same(t, tt.workErr, err) //nolint:testifylint
				assert.Equal(t, []string{"pre", "error", "post"}, events)
			}
		})
	}
}

// TestInvoke_TimeoutBudget tests that the wall-clock budget ends the loop
// before the attempt budget does.
func TestInvoke_TimeoutBudget(t *testing.T) {
	policy := Policy{
		Attempts:    100,
		Timeout:     10 * time.Second,
		WaitInitial: 4 * time.Second,
		WaitMax:     4 * time.Second,
	}
	clock := &fakeClock{now: time.Now()}
	var events []string
	iv := newTestInvoker(recordingHooks(&events, policy), clock)

	calls := 0
	err := iv.Invoke(context.Background(), CallInfo{Operation: "test"}, func(context.Context) error {
		calls++
		return errTransient
	})

	// 4s sleeps between attempts: after the third failure 8s have passed
	// and another wait would not help; the fourth failure crosses 10s.
	assert.Same(t, errTransient, err) //nolint:testifylint
	assert.Equal(t, 4, calls)
	assert.Equal(t, "error", events[len(events)-2])
	assert.Equal(t, "post", events[len(events)-1])
}

// TestInvoke_RetryAfterOverride tests that a RetryAfter outcome replaces
// the computed backoff delay.
func TestInvoke_RetryAfterOverride(t *testing.T) {
	policy := Policy{
		Attempts: 3,
		Classify: func(error) Outcome { return RetryAfter(7 * time.Second) },
	}
	clock := &fakeClock{now: time.Now()}
	iv := newTestInvoker(Hooks{Policy: policy}, clock)

	calls := 0
	err := iv.Invoke(context.Background(), CallInfo{Operation: "test"}, func(context.Context) error {
		calls++
		if calls < 2 {
			return errTransient
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, []time.Duration{7 * time.Second}, clock.sleeps)
}

// TestInvoke_ContextCancelledDuringWait tests that cancellation between
// attempts surfaces the last work failure, with error and post hooks run.
func TestInvoke_ContextCancelledDuringWait(t *testing.T) {
	var events []string
	clock := &fakeClock{now: time.Now()}
	iv := newTestInvoker(recordingHooks(&events, Policy{Attempts: 5}), clock)

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := iv.Invoke(ctx, CallInfo{Operation: "test"}, func(context.Context) error {
		calls++
		cancel()
		return errTransient
	})

	assert.Equal(t, 1, calls)
	assert.Same(t, errTransient, err) //nolint:testifylint
	assert.Equal(t, []string{"pre", "error", "post"}, events)
}

// TestInvokeWith_PolicyOverride tests the per-call policy override.
func TestInvokeWith_PolicyOverride(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	// Hook-set policy would allow 10 attempts; the override allows 2.
	iv := newTestInvoker(Hooks{Policy: Policy{Attempts: 10}}, clock)

	calls := 0
	err := iv.InvokeWith(context.Background(), CallInfo{Operation: "test"}, func(context.Context) error {
		calls++
		return errTransient
	}, Policy{Attempts: 2})

	assert.Same(t, errTransient, err) //nolint:testifylint
	assert.Equal(t, 2, calls)
}

// TestDo tests the generic value-returning wrapper.
func TestDo(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	iv := newTestInvoker(Hooks{Policy: Policy{Attempts: 3}}, clock)

	calls := 0
	value, err := Do(context.Background(), iv, CallInfo{Operation: "fetch"}, func(context.Context) (string, error) {
		calls++
		if calls < 2 {
			return "", errTransient
		}
		return "usergroups", nil
	})

	assert.NoError(t, err)
	assert.Equal(t, "usergroups", value)
	assert.Equal(t, 2, calls)

	// Terminal failure yields the zero value.
	value, err = Do(context.Background(), iv, CallInfo{Operation: "fetch"}, func(context.Context) (string, error) {
		return "partial", errTransient
	})
	assert.Error(t, err)
	assert.Empty(t, value)
}

// TestCallScope_PerInvocation tests that concurrent invocations sharing one
// invoker each see their own attempt counts.
func TestCallScope_PerInvocation(t *testing.T) {
	attemptCounts := make(chan int, 2)
	hooks := Hooks{
		Post:   []Hook{func(s *CallScope) { attemptCounts <- s.Attempts() }},
		Policy: Policy{Attempts: 5, WaitInitial: time.Nanosecond, WaitMax: time.Nanosecond},
	}
	iv := New(hooks, WithJitterSource(func() float64 { return 0 }))

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = iv.Invoke(context.Background(), CallInfo{Target: "a"}, func(context.Context) error {
			return nil // succeeds first try
		})
	}()

	calls := 0
	_ = iv.Invoke(context.Background(), CallInfo{Target: "b"}, func(context.Context) error {
		calls++
		if calls < 3 {
			return errTransient
		}
		return nil
	})
	<-done

	counts := []int{<-attemptCounts, <-attemptCounts}
	assert.ElementsMatch(t, []int{1, 3}, counts)
}

// TestHooks_Merge tests that merged hook sets preserve order: built-ins
// first, caller hooks second.
func TestHooks_Merge(t *testing.T) {
	var events []string
	base := Hooks{
		Pre:    []Hook{func(*CallScope) { events = append(events, "base-pre") }},
		Policy: NoRetry(),
	}
	extra := Hooks{
		Pre:  []Hook{func(*CallScope) { events = append(events, "extra-pre") }},
		Post: []Hook{func(*CallScope) { events = append(events, "extra-post") }},
	}

	merged := base.Merge(extra)
	iv := New(merged)
	err := iv.Invoke(context.Background(), CallInfo{}, func(context.Context) error { return nil })

	assert.NoError(t, err)
	assert.Equal(t, []string{"base-pre", "extra-pre", "extra-post"}, events)
	assert.Equal(t, 1, merged.Policy.Attempts)
}
