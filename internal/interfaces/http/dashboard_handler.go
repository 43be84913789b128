package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/invorya/inventario/internal/application/analytics"
	"github.com/invorya/inventario/internal/application/dto"
	"github.com/invorya/inventario/internal/domain"
)

// DashboardHandler maneja los endpoints del Panel de Control.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve el resumen del panel recalculado bajo demanda.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (total_products, low_stock, movements[2],
// total_users solo para ADMIN). No recibe parámetros; el alcance lo decide el
// rol del token.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context(), GetRole(c))
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code: "FORBIDDEN", Message: "rol sin acceso al panel",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(summary)
}
