package usergroups

import (
	"state-reconciler/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	provider Provider
	service  *Service
	handler  *Handler
}

// NewFeature creates a new Usergroups feature. With a nil provider the
// feature registers but stays disabled.
func NewFeature(db *gorm.DB, provider Provider, l *zap.Logger, cfg reconcile.Config) *Feature {
	svc := NewService(db, provider, l, cfg)
	h := NewHandler(svc)
	return &Feature{provider: provider, service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "usergroups"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.provider != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the underlying service for the one-shot CLI runner.
func (f *Feature) Service() *Service {
	return f.service
}
