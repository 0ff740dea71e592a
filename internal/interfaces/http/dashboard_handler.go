package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/flexigestor/flexi-gestor-api/internal/application/analytics"
	"github.com/flexigestor/flexi-gestor-api/internal/application/dto"
)

// DashboardHandler trata o resumo financeiro do dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumo do dashboard (vendas do dia e do mês, mais vendidos, estoque mínimo)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context(), GetCompanyID(c), time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
