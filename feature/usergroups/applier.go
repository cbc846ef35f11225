package usergroups

import (
	"context"
	"fmt"

	"state-reconciler/core/differ"
	"state-reconciler/core/invoker"
	"state-reconciler/core/reconcile"
	"state-reconciler/feature/usergroups/models"

	"go.uber.org/zap"
)

// Applier executes planned usergroup mutations against the provider.
// Every outbound call goes through an invoker so rate limiting and outages
// are retried. Implements reconcile.Applier.
type Applier struct {
	provider Provider
	inv      *invoker.Invoker
}

// NewApplier creates a usergroups applier with logging and retry on
// transient provider failures, within the given retry budget.
func NewApplier(provider Provider, l *zap.Logger, base invoker.Policy, opts ...invoker.Option) *Applier {
	return &Applier{
		provider: provider,
		inv:      invoker.New(invoker.LoggingHooks(l, TransientPolicy(base)), opts...),
	}
}

func (a *Applier) callInfo(operation, key string) invoker.CallInfo {
	return invoker.CallInfo{
		Component: "usergroups-provider",
		Operation: operation,
		Target:    key,
	}
}

// Create creates the declared group at the provider.
func (a *Applier) Create(ctx context.Context, key string, desired reconcile.Resource) error {
	group, ok := desired.(models.Group)
	if !ok {
		return fmt.Errorf("unexpected desired resource type for %s", key)
	}

	return a.inv.Invoke(ctx, a.callInfo("create-group", key), func(ctx context.Context) error {
		_, err := a.provider.CreateGroup(ctx, group)
		return err
	})
}

// Update replaces the provider's definition with the declared one. The
// provider-assigned ID comes from the live side of the pair.
func (a *Applier) Update(ctx context.Context, key string, pair differ.Pair[reconcile.Resource, reconcile.Resource]) error {
	current, ok := pair.Current.(models.Group)
	if !ok {
		return fmt.Errorf("unexpected current resource type for %s", key)
	}
	desired, ok := pair.Desired.(models.Group)
	if !ok {
		return fmt.Errorf("unexpected desired resource type for %s", key)
	}

	return a.inv.Invoke(ctx, a.callInfo("update-group", key), func(ctx context.Context) error {
		return a.provider.UpdateGroup(ctx, current.ProviderID, desired)
	})
}

// Delete removes an undeclared group from the provider.
func (a *Applier) Delete(ctx context.Context, key string, current reconcile.Resource) error {
	group, ok := current.(models.Group)
	if !ok {
		return fmt.Errorf("unexpected current resource type for %s", key)
	}

	return a.inv.Invoke(ctx, a.callInfo("delete-group", key), func(ctx context.Context) error {
		return a.provider.DeleteGroup(ctx, group.ProviderID)
	})
}
