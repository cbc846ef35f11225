package invoker

import (
	"context"
	"math/rand"
	"time"
)

// CallInfo identifies a unit of work to the hooks: which client component
// issued it, which operation it performs, and against which target.
type CallInfo struct {
	// Component is the owning client, e.g. "usergroups-provider".
	Component string

	// Operation is the logical method, e.g. "update-members".
	Operation string

	// Target is the affected resource key, e.g. a group handle.
	Target string
}

// CallScope is the per-invocation state passed to every hook. A fresh scope
// is created at the start of each Invoke, so concurrent invocations sharing
// one hook set never see each other's timing or attempt counts.
type CallScope struct {
	// Info is the caller-supplied call identity.
	Info CallInfo

	start    time.Time
	now      func() time.Time
	attempts int
	err      error
}

// Attempts returns the number of times the work has run so far.
func (s *CallScope) Attempts() int {
	return s.attempts
}

// Elapsed returns the wall-clock time since the invocation started.
func (s *CallScope) Elapsed() time.Duration {
	return s.now().Sub(s.start)
}

// Err returns the terminal failure, or nil before failure and on success.
func (s *CallScope) Err() error {
	return s.err
}

// Hook receives the call scope at a lifecycle point (pre, error, post).
type Hook func(*CallScope)

// RetryHook receives the call scope and the upcoming attempt number (2 or
// higher; retry hooks never run before the first attempt).
type RetryHook func(*CallScope, int)

// Hooks bundles the lifecycle callbacks and the retry policy for a client.
// It is assembled once per client at startup and treated as immutable;
// sharing one value across goroutines is safe.
type Hooks struct {
	// Pre hooks run exactly once, before the first attempt.
	Pre []Hook

	// Retry hooks run before every attempt after the first.
	Retry []RetryHook

	// Error hooks run exactly once, only when the failure is terminal.
	Error []Hook

	// Post hooks always run exactly once, last, whether the call
	// succeeded or failed.
	Post []Hook

	// Policy is the retry policy applied when no per-call override is
	// given.
	Policy Policy
}

// Merge returns a hook set with other's callbacks appended after the
// receiver's, keeping the receiver's policy. Used to stack caller hooks on
// top of the built-in logging hooks.
func (h Hooks) Merge(other Hooks) Hooks {
	return Hooks{
		Pre:    append(append([]Hook{}, h.Pre...), other.Pre...),
		Retry:  append(append([]RetryHook{}, h.Retry...), other.Retry...),
		Error:  append(append([]Hook{}, h.Error...), other.Error...),
		Post:   append(append([]Hook{}, h.Post...), other.Post...),
		Policy: h.Policy,
	}
}

// Invoker executes units of work under a hook set and retry policy. Clients
// hold one Invoker and route every outbound call through it. The Invoker
// itself carries no mutable per-call state, so a single value is safe for
// concurrent use.
type Invoker struct {
	hooks  Hooks
	now    func() time.Time
	sleep  func(context.Context, time.Duration) error
	random func() float64
}

// Option customizes an Invoker at construction time.
type Option func(*Invoker)

// WithClock injects the time source and sleep function. Tests use this to
// verify retry timing without real delays.
func WithClock(now func() time.Time, sleep func(context.Context, time.Duration) error) Option {
	return func(iv *Invoker) {
		iv.now = now
		iv.sleep = sleep
	}
}

// WithJitterSource injects the uniform [0,1) source used for backoff jitter.
func WithJitterSource(random func() float64) Option {
	return func(iv *Invoker) {
		iv.random = random
	}
}

// New creates an Invoker with the given hook set.
func New(hooks Hooks, opts ...Option) *Invoker {
	iv := &Invoker{
		hooks:  hooks,
		now:    time.Now,
		sleep:  sleepContext,
		random: rand.Float64,
	}
	for _, opt := range opts {
		opt(iv)
	}
	return iv
}

// Invoke runs work under the hook set's policy. The returned error is the
// work's own terminal failure, never a wrapped one.
func (iv *Invoker) Invoke(ctx context.Context, info CallInfo, work func(context.Context) error) error {
	return iv.invoke(ctx, info, work, iv.hooks.Policy)
}

// InvokeWith runs work under an explicit per-call policy override.
func (iv *Invoker) InvokeWith(ctx context.Context, info CallInfo, work func(context.Context) error, policy Policy) error {
	return iv.invoke(ctx, info, work, policy)
}

// Do runs value-returning work through an Invoker. On terminal failure the
// zero value is returned alongside the original error.
func Do[T any](ctx context.Context, iv *Invoker, info CallInfo, work func(context.Context) (T, error)) (T, error) {
	var value T
	err := iv.Invoke(ctx, info, func(ctx context.Context) error {
		var workErr error
		value, workErr = work(ctx)
		return workErr
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return value, nil
}

// invoke is the retry loop. Lifecycle order per invocation:
// pre -> [retry ->] work ... -> (error | nothing) -> post.
func (iv *Invoker) invoke(ctx context.Context, info CallInfo, work func(context.Context) error, policy Policy) error {
	policy = policy.normalized()

	scope := &CallScope{
		Info:  info,
		start: iv.now(),
		now:   iv.now,
	}

	for _, hook := range iv.hooks.Pre {
		hook(scope)
	}

	var terminal error
	for attempt := 1; ; attempt++ {
		if attempt > 1 {
			for _, hook := range iv.hooks.Retry {
				hook(scope, attempt)
			}
		}

		scope.attempts = attempt
		err := work(ctx)
		if err == nil {
			break
		}

		outcome := policy.classify(err)
		budgetLeft := policy.Timeout <= 0 || iv.now().Sub(scope.start) < policy.Timeout
		if !outcome.retry || attempt >= policy.Attempts || !budgetLeft {
			terminal = err
			break
		}

		wait := policy.delay(attempt, iv.random)
		if outcome.hasWait {
			wait = outcome.wait
		}
		if sleepErr := iv.sleep(ctx, wait); sleepErr != nil {
			// Cancelled while waiting: the last observed failure is
			// terminal; no further attempt starts.
			terminal = err
			break
		}
	}

	if terminal != nil {
		scope.err = terminal
		for _, hook := range iv.hooks.Error {
			hook(scope)
		}
	}

	for _, hook := range iv.hooks.Post {
		hook(scope)
	}

	return terminal
}

// sleepContext waits for the duration or until the context is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
