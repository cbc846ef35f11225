// Package invoker wraps outbound calls to external systems with lifecycle
// hooks and bounded retry.
//
// Every provider client in the system holds an Invoker and routes its
// network calls through it. The Invoker runs the call under a retry policy
// (bounded by both attempt count and a wall-clock budget, with capped
// exponential backoff plus additive jitter) and fires hooks at well-defined
// points:
//
//	pre -> work-1 [-> retry -> work-2 -> ...] -> (error | nothing) -> post
//
//   - Pre hooks run exactly once, before the first attempt.
//   - Retry hooks run before every attempt after the first, never before
//     attempt one.
//   - Error hooks run exactly once, only when the failure is terminal
//     (non-retryable, attempts exhausted, or time budget exceeded), strictly
//     before the post hooks.
//   - Post hooks always run exactly once, last, on success and failure
//     alike.
//
// Terminal failures propagate unwrapped: the caller receives the exact
// error the work returned on its final attempt.
//
// # Retry Classification
//
// A Policy's Classify function maps a failure to an Outcome: Stop (terminal
// immediately), Retry (transient, use the policy backoff), or RetryAfter
// (transient, wait an explicit duration, e.g. from a rate-limit header).
// RetryOn and RetryIf build classifiers from error values and predicates.
// A nil classifier retries everything until the budget runs out.
//
// # Concurrency
//
// Hooks and Policy values are immutable configuration, shared freely across
// goroutines. All per-call state (attempt counter, start time, terminal
// error) lives in a CallScope created per invocation and handed to each
// hook, so interleaved concurrent calls cannot corrupt each other's timing.
//
// # Testing
//
// WithClock injects the time source and sleep function so tests can assert
// retry timing and backoff without real delays.
package invoker
