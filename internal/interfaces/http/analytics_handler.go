package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/analytics"
	"github.com/jhoicas/almacen-api/internal/application/dto"
)

// AnalyticsHandler expone los agregados del inventario.
type AnalyticsHandler struct {
	uc *analytics.DashboardUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *analytics.DashboardUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// Summary godoc
// @Summary      Estadísticas agregadas del inventario
// @Description  Total de filas, cantidad total, conteo y suma por categoría
// @Description  y filas con stock bajo (cantidad <= 5).
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  dto.AnalyticsSummaryResponse
// @Router       /api/analytics [get]
func (h *AnalyticsHandler) Summary(c *fiber.Ctx) error {
	s, err := h.uc.Summary(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.NewAnalyticsSummaryResponse(s))
}
