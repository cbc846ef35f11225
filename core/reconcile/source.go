package reconcile

import (
	"context"

	"state-reconciler/core/differ"
)

// Source defines the interface for integration-specific state loading.
// Each integration implements how to fetch the live state of its external
// system and how to build the declared state from the configuration store.
type Source interface {
	// Name returns the unique name of this integration (e.g. "usergroups").
	Name() string

	// CurrentState fetches the live state of the external system as a
	// fully materialized map keyed by resource key. Implementations may
	// paginate while fetching but must return the complete collection.
	CurrentState(ctx context.Context) (map[string]Resource, error)

	// DesiredState builds the declared state from the configuration store,
	// keyed the same way as CurrentState.
	DesiredState(ctx context.Context) (map[string]Resource, error)

	// Equal reports whether a current and a desired resource are already
	// converged. Implementations typically ignore provider-assigned fields
	// such as server-side IDs.
	Equal(current, desired Resource) bool
}

// Applier defines the interface for executing planned actions against the
// external system. Implementations wrap every outbound call with an
// invoker so transient provider failures are retried.
type Applier interface {
	// Create creates the declared resource in the external system.
	Create(ctx context.Context, key string, desired Resource) error

	// Update converges a drifted resource. Both sides of the pair are
	// non-nil.
	Update(ctx context.Context, key string, pair differ.Pair[Resource, Resource]) error

	// Delete removes an undeclared resource from the external system.
	Delete(ctx context.Context, key string, current Resource) error
}
