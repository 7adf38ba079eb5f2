package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// HistoryHandler expone el log de acciones, solo lectura.
type HistoryHandler struct {
	log repository.HistoryLog
}

// NewHistoryHandler construye el handler.
func NewHistoryHandler(log repository.HistoryLog) *HistoryHandler {
	return &HistoryHandler{log: log}
}

// List godoc
// @Summary      Historial completo de acciones, en orden de escritura
// @Tags         history
// @Produce      json
// @Success      200  {object}  dto.HistoryResponse
// @Router       /api/history [get]
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	entries, err := h.log.List()
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.NewHistoryResponse(entries))
}
