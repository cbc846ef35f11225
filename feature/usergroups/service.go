package usergroups

import (
	"context"

	"state-reconciler/core/logger"
	"state-reconciler/core/reconcile"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles usergroup reconciliation operations.
type Service struct {
	source  *Source
	applier *Applier
	logger  *zap.Logger
	cfg     reconcile.Config
}

// NewService creates a new usergroups service.
func NewService(db *gorm.DB, provider Provider, l *zap.Logger, cfg reconcile.Config) *Service {
	l = logger.ForIntegration(l, "usergroups")
	return &Service{
		source:  NewSource(db, provider),
		applier: NewApplier(provider, l, cfg.Policy()),
		logger:  l,
		cfg:     cfg,
	}
}

// Plan computes the pending actions without mutating the provider.
func (s *Service) Plan(ctx context.Context) (*reconcile.Plan, error) {
	return reconcile.PlanRun(ctx, s.source, reconcile.Options{
		DryRun:   true,
		CacheTTL: s.cfg.CacheTTL(),
	})
}

// Apply plans and executes the pending actions. With confirmed=false the
// plan is still returned but nothing runs.
func (s *Service) Apply(ctx context.Context, confirmed bool) (*reconcile.Plan, *reconcile.ApplyResult, error) {
	return reconcile.Run(ctx, s.source, s.applier, reconcile.Options{
		Confirmed: confirmed,
		CacheTTL:  s.cfg.CacheTTL(),
	})
}
