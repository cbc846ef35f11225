package reconcile

import "time"

// Resource represents an entity on either side of a reconciliation.
// Sources define the concrete types; the driver never inspects them beyond
// handing them to the source's equality predicate.
type Resource any

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionCreate creates a resource missing from the external system.
	ActionCreate ActionType = "create"
	// ActionUpdate converges a drifted resource to its desired state.
	ActionUpdate ActionType = "update"
	// ActionDelete removes a resource no longer declared in configuration.
	ActionDelete ActionType = "delete"
)

// Action represents a planned mutation operation against the external system.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the resource identifier.
	Key string `json:"key"`

	// Reason explains why this action is needed.
	Reason string `json:"reason"`

	// Current holds the live-system value. Nil for creates.
	Current Resource `json:"-"`

	// Desired holds the declared value. Nil for deletes.
	Desired Resource `json:"-"`
}

// PlanSummary provides aggregate counts for a reconcile plan.
type PlanSummary struct {
	// TotalKeys is the number of unique keys across both sides.
	TotalKeys int `json:"total_keys"`

	// Creates counts resources declared but missing from the system.
	Creates int `json:"creates"`

	// Updates counts resources present on both sides with drifted values.
	Updates int `json:"updates"`

	// Deletes counts resources present in the system but not declared.
	Deletes int `json:"deletes"`

	// Identical counts resources already converged.
	Identical int `json:"identical"`
}

// Plan contains the planned actions for one integration.
type Plan struct {
	// Integration is the name of the source that produced this plan.
	Integration string `json:"integration"`

	// Actions contains planned mutation operations, sorted by type
	// (creates, updates, deletes) then key for deterministic output.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// Options controls reconcile behavior for a run.
type Options struct {
	// DryRun prevents execution of any mutations if true.
	DryRun bool

	// Confirmed indicates the operator has confirmed destructive actions.
	// If false, mutations will not execute regardless of DryRun.
	Confirmed bool

	// CacheTTL is the time-to-live for cached state snapshots.
	// If zero, snapshots are fetched fresh on every plan.
	CacheTTL time.Duration
}

// RunStatus is the overall outcome of an apply.
type RunStatus string

const (
	// StatusSuccess means every action executed.
	StatusSuccess RunStatus = "success"
	// StatusFailed means at least one action failed.
	StatusFailed RunStatus = "failed"
	// StatusSkipped means no mutation ran (dry run or unconfirmed).
	StatusSkipped RunStatus = "skipped"
)

// ItemError records a single failed action. The run continues past it.
type ItemError struct {
	// Key is the resource the action targeted.
	Key string `json:"key"`

	// Type is the action that failed.
	Type ActionType `json:"type"`

	// Error is the failure message.
	Error string `json:"error"`
}

// ApplyResult reports the outcome of executing a plan.
type ApplyResult struct {
	// Status is the overall run outcome.
	Status RunStatus `json:"status"`

	// Executed counts actions that completed.
	Executed int `json:"executed"`

	// Failed counts actions that returned an error.
	Failed int `json:"failed"`

	// Errors lists per-item failures.
	Errors []ItemError `json:"errors,omitempty"`
}
