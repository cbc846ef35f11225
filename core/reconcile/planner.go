package reconcile

import (
	"context"
	"fmt"
	"sort"

	"state-reconciler/core/differ"
)

// PlanRun computes the action plan for one integration without executing
// anything. It fetches (or reuses a cached) state snapshot, diffs current
// against desired, and converts each diff bucket into typed actions.
func PlanRun(ctx context.Context, src Source, opts Options) (*Plan, error) {
	snapshot, err := GetOrBuildSnapshot(ctx, src, opts.CacheTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch state for %s: %w", src.Name(), err)
	}

	return planFromSnapshot(src, snapshot), nil
}

// planFromSnapshot builds the plan from an already-fetched snapshot.
func planFromSnapshot(src Source, snapshot *Snapshot) *Plan {
	result := differ.Mappings(snapshot.Current, snapshot.Desired, src.Equal)

	plan := &Plan{
		Integration: src.Name(),
		Summary: PlanSummary{
			Creates:   len(result.Add),
			Updates:   len(result.Change),
			Deletes:   len(result.Delete),
			Identical: len(result.Identical),
		},
	}
	plan.Summary.TotalKeys = plan.Summary.Creates + plan.Summary.Updates +
		plan.Summary.Deletes + plan.Summary.Identical

	for key, desired := range result.Add {
		plan.Actions = append(plan.Actions, Action{
			Type:    ActionCreate,
			Key:     key,
			Reason:  "declared but missing from system",
			Desired: desired,
		})
	}
	for key, pair := range result.Change {
		plan.Actions = append(plan.Actions, Action{
			Type:    ActionUpdate,
			Key:     key,
			Reason:  "system state drifted from declared state",
			Current: pair.Current,
			Desired: pair.Desired,
		})
	}
	for key, current := range result.Delete {
		plan.Actions = append(plan.Actions, Action{
			Type:    ActionDelete,
			Key:     key,
			Reason:  "present in system but not declared",
			Current: current,
		})
	}

	// Sort actions for deterministic output: creates first, then updates,
	// then deletes, each ordered by key.
	rank := map[ActionType]int{ActionCreate: 0, ActionUpdate: 1, ActionDelete: 2}
	sort.Slice(plan.Actions, func(i, j int) bool {
		if plan.Actions[i].Type != plan.Actions[j].Type {
			return rank[plan.Actions[i].Type] < rank[plan.Actions[j].Type]
		}
		return plan.Actions[i].Key < plan.Actions[j].Key
	})

	return plan
}
