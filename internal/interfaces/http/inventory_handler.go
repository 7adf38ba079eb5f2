package http

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// InventoryHandler maneja las peticiones HTTP del inventario.
type InventoryHandler struct {
	svc  *inventory.Service
	undo *inventory.UndoUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(svc *inventory.Service, undo *inventory.UndoUseCase) *InventoryHandler {
	return &InventoryHandler{svc: svc, undo: undo}
}

// List godoc
// @Summary      Listar o buscar filas del inventario
// @Tags         items
// @Produce      json
// @Param        search  query  string  false  "Término: substring sobre la fila completa, sin distinguir mayúsculas"
// @Success      200  {object}  dto.ListItemsResponse
// @Router       /api/items [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	items, err := h.svc.Search(c.Context(), c.Query("search"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.NewListItemsResponse(items))
}

// Create godoc
// @Summary      Agregar una fila al inventario
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddItemRequest  true  "campos de la fila"
// @Success      201  {object}  dto.ItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	it, err := h.svc.Add(c.Context(), inventory.AddInput{
		Category:       in.Category,
		Subcategory:    in.Subcategory,
		Name:           in.Item,
		BrandType:      in.BrandType,
		LengthCapacity: in.LengthCapacity,
		Quantity:       in.Quantity,
		Notes:          in.Notes,
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewItemResponse(-1, it))
}

// Update godoc
// @Summary      Actualizar cantidad y notas de una fila
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        row   path  int  true  "índice posicional de la fila"
// @Param        body  body  dto.UpdateItemRequest  true  "quantity, notes"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{row} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	row, err := c.ParamsInt("row")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ROW", Message: "índice de fila inválido"})
	}
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	it, err := h.svc.Update(c.Context(), row, inventory.UpdateInput{Quantity: in.Quantity, Notes: in.Notes})
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.NewItemResponse(row, it))
}

// Delete godoc
// @Summary      Eliminar una fila (su snapshot queda en el historial)
// @Tags         items
// @Produce      json
// @Param        row  path  int  true  "índice posicional de la fila"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{row} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	row, err := c.ParamsInt("row")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ROW", Message: "índice de fila inválido"})
	}
	it, err := h.svc.Remove(c.Context(), row)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.NewItemResponse(row, it))
}

// Undo godoc
// @Summary      Deshacer la eliminación registrada en un timestamp
// @Description  Restaura la fila de la PRIMERA entrada Remove con ese
// @Description  timestamp; la fila reaparece al final de la tabla.
// @Tags         items
// @Produce      json
// @Param        timestamp  path  string  true  "timestamp de la entrada Remove (2006-01-02 15:04:05)"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/items/undo/{timestamp} [post]
func (h *InventoryHandler) Undo(c *fiber.Ctx) error {
	timestamp, err := paramDecoded(c, "timestamp")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TIMESTAMP", Message: "timestamp inválido"})
	}
	it, err := h.undo.UndoRemove(c.Context(), timestamp)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.NewItemResponse(-1, it))
}

// paramDecoded des-escapa un parámetro de ruta (el timestamp trae un
// espacio, que viaja como %20).
func paramDecoded(c *fiber.Ctx, name string) (string, error) {
	return url.PathUnescape(c.Params(name))
}

// mapDomainError traduce errores de dominio a estados HTTP. Ninguna falla
// del núcleo debe salir como pánico: todas terminan en un mensaje al usuario.
func mapDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidIndex):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "INVALID_ROW", Message: "la fila indicada no existe"})
	case errors.Is(err, domain.ErrNothingToRestore):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOTHING_TO_RESTORE", Message: "nada que restaurar para ese timestamp"})
	case errors.Is(err, domain.ErrCorruptRestoreData):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "CORRUPT_RESTORE_DATA", Message: "el snapshot guardado no puede reconstruirse"})
	case errors.Is(err, domain.ErrPartialCommit):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PARTIAL_COMMIT", Message: "la operación quedó aplicada a medias: revise tabla e historial"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrStorageIO):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORAGE_IO", Message: "falla de E/S del almacenamiento"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
