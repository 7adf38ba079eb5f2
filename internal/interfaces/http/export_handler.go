package http

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/beevik/etree"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ExportHandler genera descargas del inventario: el archivo .xlsx
// subyacente tal cual, o su equivalente delimitado (CSV) o XML.
type ExportHandler struct {
	store repository.ItemStore
}

// NewExportHandler construye el handler.
func NewExportHandler(store repository.ItemStore) *ExportHandler {
	return &ExportHandler{store: store}
}

// Xlsx godoc
// @Summary      Descargar la tabla de inventario (.xlsx subyacente)
// @Tags         export
// @Produce      application/octet-stream
// @Success      200
// @Router       /api/export/xlsx [get]
func (h *ExportHandler) Xlsx(c *fiber.Ctx) error {
	return c.Download(h.store.FilePath(), "inventory.xlsx")
}

// CSV godoc
// @Summary      Descargar la tabla de inventario en CSV
// @Tags         export
// @Produce      text/csv
// @Success      200
// @Router       /api/export/csv [get]
func (h *ExportHandler) CSV(c *fiber.Ctx) error {
	items, err := h.store.List()
	if err != nil {
		return mapDomainError(c, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(entity.Columns); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	for _, it := range items {
		if err := w.Write(it.Fields()); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventory.csv"`)
	return c.Send(buf.Bytes())
}

// XML godoc
// @Summary      Descargar la tabla de inventario en XML
// @Tags         export
// @Produce      application/xml
// @Success      200
// @Router       /api/export/xml [get]
func (h *ExportHandler) XML(c *fiber.Ctx) error {
	items, err := h.store.List()
	if err != nil {
		return mapDomainError(c, err)
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("inventory")
	root.CreateAttr("total", strconv.Itoa(len(items)))
	for _, it := range items {
		el := root.CreateElement("item")
		el.CreateAttr("id", it.ID)
		el.CreateElement("category").SetText(it.Category)
		el.CreateElement("subcategory").SetText(it.Subcategory)
		el.CreateElement("name").SetText(it.Name)
		el.CreateElement("brand_type").SetText(it.BrandType)
		el.CreateElement("length_capacity").SetText(it.LengthCapacity)
		el.CreateElement("quantity").SetText(strconv.Itoa(it.Quantity))
		el.CreateElement("notes").SetText(it.Notes)
	}
	doc.Indent(2)

	out, err := doc.WriteToString()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventory.xml"`)
	return c.SendString(out)
}
