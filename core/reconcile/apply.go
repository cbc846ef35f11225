package reconcile

import (
	"context"

	"state-reconciler/core/differ"
)

// ApplyPlan executes the actions in a plan against the external system.
// Requires opts.Confirmed=true and opts.DryRun=false to actually execute;
// otherwise the result status is StatusSkipped and nothing runs.
//
// A failed action is recorded and the run continues with the remaining
// items; the overall status is StatusFailed if any item failed. Terminal
// provider failures are expected to arrive here already retried by the
// applier's invoker.
func ApplyPlan(ctx context.Context, src Source, applier Applier, plan *Plan, opts Options) *ApplyResult {
	// Safety check: do not execute if not confirmed or dry-run
	if !opts.Confirmed || opts.DryRun {
		return &ApplyResult{Status: StatusSkipped}
	}

	result := &ApplyResult{Status: StatusSuccess}

	for _, action := range plan.Actions {
		var err error
		switch action.Type {
		case ActionCreate:
			err = applier.Create(ctx, action.Key, action.Desired)
		case ActionUpdate:
			err = applier.Update(ctx, action.Key, differ.Pair[Resource, Resource]{
				Current: action.Current,
				Desired: action.Desired,
			})
		case ActionDelete:
			err = applier.Delete(ctx, action.Key, action.Current)
		}

		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, ItemError{
				Key:   action.Key,
				Type:  action.Type,
				Error: err.Error(),
			})
			continue
		}
		result.Executed++
	}

	if result.Failed > 0 {
		result.Status = StatusFailed
	}

	// The live system changed; a cached snapshot would now be stale.
	if result.Executed > 0 {
		InvalidateSnapshot(src)
	}

	return result
}

// Run is a convenience wrapper that plans and optionally applies.
// It returns the plan and the apply result (StatusSkipped when gated off).
func Run(ctx context.Context, src Source, applier Applier, opts Options) (*Plan, *ApplyResult, error) {
	plan, err := PlanRun(ctx, src, opts)
	if err != nil {
		return nil, nil, err
	}

	result := ApplyPlan(ctx, src, applier, plan, opts)
	return plan, result, nil
}
