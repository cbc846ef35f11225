// Package reconcile provides the generic plan/apply driver that every
// integration runs through.
//
// An integration supplies a Source (how to fetch the live state of its
// external system and build the declared state from the configuration
// store) and an Applier (how to execute create/update/delete actions, each
// wrapped by an invoker for retry). The driver does the rest:
//
//  1. Fetch both sides concurrently into a Snapshot (with optional
//     TTL caching and singleflight stampede protection).
//  2. Diff current against desired with core/differ.
//  3. Convert the Add/Change/Delete buckets into a typed, deterministic
//     action Plan with aggregate counts.
//  4. Apply the plan, gated by dry-run and confirmation flags, recording
//     per-item failures and continuing with the remaining items.
//
// # Failure Policy
//
// Planning failures (a side could not be fetched) abort the run. Apply
// failures do not: each failed action is recorded in the ApplyResult and
// the run continues, finishing with StatusFailed if anything failed. This
// keeps one broken resource from blocking convergence of the rest.
//
// # Dry Run
//
// With Options.DryRun (or without Options.Confirmed) the plan is computed
// and reported but ApplyPlan executes nothing and returns StatusSkipped.
//
// # Usage Example
//
//	src := usergroups.NewSource(db, provider)
//	applier := usergroups.NewApplier(provider, logg)
//
//	plan, result, err := reconcile.Run(ctx, src, applier, reconcile.Options{
//	    DryRun:    false,
//	    Confirmed: true,
//	})
package reconcile
