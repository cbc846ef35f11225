package usergroups

import (
	"state-reconciler/core/logger"
	"state-reconciler/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for usergroup reconciliation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the usergroups routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/usergroups")
	group.Get("/plan", h.HandlePlan)
	group.Post("/apply", h.HandleApply)
}

// HandlePlan returns the pending usergroup actions without executing them.
// @Summary Plan usergroup reconciliation
// @Description Compute the actions needed to converge the provider to the declared usergroups. Never mutates anything.
// @Tags usergroups
// @Accept json
// @Produce json
// @Success 200 {object} reconcile.Plan "Reconcile Plan"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /usergroups/plan [get]
func (h *Handler) HandlePlan(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	plan, err := h.service.Plan(c.Context())
	if err != nil {
		l.Error("Usergroups plan failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(plan)
}

// HandleApply executes the pending usergroup actions.
// @Summary Apply usergroup reconciliation
// @Description Plan and execute the actions needed to converge the provider. Requires confirm=true; otherwise the plan is returned and nothing runs.
// @Tags usergroups
// @Accept json
// @Produce json
// @Param confirm query bool false "Execute the plan (defaults to false)"
// @Success 200 {object} map[string]interface{} "Plan and Apply Result"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /usergroups/apply [post]
func (h *Handler) HandleApply(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	confirmed := c.QueryBool("confirm")

	plan, result, err := h.service.Apply(c.Context(), confirmed)
	if err != nil {
		l.Error("Usergroups apply failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if result.Status == reconcile.StatusFailed {
		l.Warn("Usergroups apply finished with failures",
			zap.Int("executed", result.Executed),
			zap.Int("failed", result.Failed),
		)
	}

	return c.JSON(fiber.Map{
		"plan":   plan,
		"result": result,
	})
}
