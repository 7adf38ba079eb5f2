package dto

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// AddItemRequest body para POST /api/items.
type AddItemRequest struct {
	Category       string `json:"category"`
	Subcategory    string `json:"subcategory"`
	Item           string `json:"item"`
	BrandType      string `json:"brand_type"`
	LengthCapacity string `json:"length_capacity"`
	Quantity       int    `json:"quantity"`
	Notes          string `json:"notes"`
}

// UpdateItemRequest body para PUT /api/items/:row. Solo cantidad y notas
// son editables.
type UpdateItemRequest struct {
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes"`
}

// ItemResponse una fila del inventario. Row es el índice posicional actual
// (inestable ante eliminaciones); ID es el identificador sintético estable.
type ItemResponse struct {
	Row            int    `json:"row"`
	ID             string `json:"id"`
	Category       string `json:"category"`
	Subcategory    string `json:"subcategory"`
	Item           string `json:"item"`
	BrandType      string `json:"brand_type"`
	LengthCapacity string `json:"length_capacity"`
	Quantity       int    `json:"quantity"`
	Notes          string `json:"notes"`
}

// ListItemsResponse respuesta de listado/búsqueda.
type ListItemsResponse struct {
	Total int            `json:"total"`
	Items []ItemResponse `json:"items"`
}

// NewItemResponse mapea la entidad con su índice posicional actual.
func NewItemResponse(row int, it entity.Item) ItemResponse {
	return ItemResponse{
		Row:            row,
		ID:             it.ID,
		Category:       it.Category,
		Subcategory:    it.Subcategory,
		Item:           it.Name,
		BrandType:      it.BrandType,
		LengthCapacity: it.LengthCapacity,
		Quantity:       it.Quantity,
		Notes:          it.Notes,
	}
}

// NewListItemsResponse mapea el slice completo preservando el orden.
func NewListItemsResponse(items []entity.Item) ListItemsResponse {
	resp := ListItemsResponse{Total: len(items), Items: make([]ItemResponse, 0, len(items))}
	for i, it := range items {
		resp.Items = append(resp.Items, NewItemResponse(i, it))
	}
	return resp
}
