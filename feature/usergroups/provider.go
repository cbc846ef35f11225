package usergroups

import (
	"context"
	"errors"

	"state-reconciler/core/invoker"
	"state-reconciler/feature/usergroups/models"
)

// Transient provider failures. Clients surface these (possibly wrapped)
// when the provider asks us to back off or is temporarily down.
var (
	ErrRateLimited = errors.New("provider rate limited")
	ErrUnavailable = errors.New("provider unavailable")
)

// Provider is the vendor API surface this integration needs. Implementations
// talk to the real chat provider; tests substitute a mock.
type Provider interface {
	// ListGroups returns every usergroup the provider currently knows,
	// with provider-assigned IDs populated.
	ListGroups(ctx context.Context) ([]models.Group, error)

	// CreateGroup creates a group and returns its provider-assigned ID.
	CreateGroup(ctx context.Context, group models.Group) (string, error)

	// UpdateGroup replaces the definition of an existing group.
	UpdateGroup(ctx context.Context, providerID string, group models.Group) error

	// DeleteGroup removes a group.
	DeleteGroup(ctx context.Context, providerID string) error
}

// TransientPolicy restricts a retry budget to provider failures worth
// retrying: rate limiting and outages. Everything else fails fast.
func TransientPolicy(base invoker.Policy) invoker.Policy {
	base.Classify = invoker.RetryOn(ErrRateLimited, ErrUnavailable)
	return base
}
