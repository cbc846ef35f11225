package artifacts

import (
	"state-reconciler/core/logger"
	"state-reconciler/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for artifact reconciliation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the artifacts routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/artifacts")
	group.Get("/plan", h.HandlePlan)
	group.Post("/apply", h.HandleApply)
}

// HandlePlan audits the bucket without mutating it.
// @Summary Plan artifact reconciliation
// @Description Audit the storage bucket against the declared artifacts: missing uploads, orphaned objects and checksum drift. Never mutates anything.
// @Tags artifacts
// @Accept json
// @Produce json
// @Success 200 {object} artifacts.Report "Audit Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /artifacts/plan [get]
func (h *Handler) HandlePlan(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Audit(c.Context())
	if err != nil {
		l.Error("Artifacts audit failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}

// HandleApply purges orphaned objects from the bucket.
// @Summary Apply artifact reconciliation
// @Description Audit the bucket and purge orphaned objects. Requires confirm=true; otherwise the report is returned and nothing runs.
// @Tags artifacts
// @Accept json
// @Produce json
// @Param confirm query bool false "Execute the purge (defaults to false)"
// @Success 200 {object} map[string]interface{} "Report and Purge Result"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /artifacts/apply [post]
func (h *Handler) HandleApply(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	confirmed := c.QueryBool("confirm")

	report, result, err := h.service.Purge(c.Context(), confirmed)
	if err != nil {
		l.Error("Artifacts purge failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if result.Status == reconcile.StatusFailed {
		l.Warn("Artifacts purge finished with failures",
			zap.Int("removed", result.Executed),
			zap.Int("failed", result.Failed),
		)
	}

	return c.JSON(fiber.Map{
		"report": report,
		"result": result,
	})
}
