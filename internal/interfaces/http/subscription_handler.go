package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/recibospro/recibos-api/internal/application/subscription"
)

// SubscriptionHandler expone el estado de uso del plan.
type SubscriptionHandler struct {
	uc *subscription.UseCase
}

// NewSubscriptionHandler construye el handler de suscripción.
func NewSubscriptionHandler(uc *subscription.UseCase) *SubscriptionHandler {
	return &SubscriptionHandler{uc: uc}
}

// Status godoc
// @Summary      Uso actual contra los límites del plan
// @Tags         subscription
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UsageReport
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/subscription/status [get]
func (h *SubscriptionHandler) Status(c *fiber.Ctx) error {
	out, err := h.uc.GetUsage(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
