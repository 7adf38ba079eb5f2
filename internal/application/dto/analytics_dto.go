package dto

import "github.com/jhoicas/almacen-api/internal/application/analytics"

// AnalyticsSummaryResponse agregados del inventario para la vista de análisis.
type AnalyticsSummaryResponse struct {
	TotalItems         int            `json:"total_items"`
	TotalQuantity      int            `json:"total_quantity"`
	CountByCategory    map[string]int `json:"count_by_category"`
	QuantityByCategory map[string]int `json:"quantity_by_category"`
	LowStock           []ItemResponse `json:"low_stock"`
}

// NewAnalyticsSummaryResponse mapea el resumen. Las filas de stock bajo no
// llevan índice posicional confiable (la vista es un subconjunto), se envía -1.
func NewAnalyticsSummaryResponse(s *analytics.Summary) AnalyticsSummaryResponse {
	resp := AnalyticsSummaryResponse{
		TotalItems:         s.TotalItems,
		TotalQuantity:      s.TotalQuantity,
		CountByCategory:    s.CountByCategory,
		QuantityByCategory: s.QuantityByCategory,
		LowStock:           make([]ItemResponse, 0, len(s.LowStock)),
	}
	for _, it := range s.LowStock {
		resp.LowStock = append(resp.LowStock, NewItemResponse(-1, it))
	}
	return resp
}
