package analytics

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// LowStockThreshold cantidad a partir de la cual (inclusive) una fila se
// marca como stock bajo.
const LowStockThreshold = 5

// Summary estadísticas agregadas del inventario.
type Summary struct {
	TotalItems         int
	TotalQuantity      int
	CountByCategory    map[string]int
	QuantityByCategory map[string]int
	LowStock           []entity.Item
}

// DashboardUseCase calcula los agregados para la vista de análisis.
type DashboardUseCase struct {
	store repository.ItemStore
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(store repository.ItemStore) *DashboardUseCase {
	return &DashboardUseCase{store: store}
}

// Summary recorre la tabla una sola vez: total de filas, cantidad total,
// conteo y suma de cantidades por categoría, y filas con stock bajo.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*Summary, error) {
	items, err := uc.store.List()
	if err != nil {
		return nil, err
	}

	s := &Summary{
		TotalItems:         len(items),
		CountByCategory:    make(map[string]int),
		QuantityByCategory: make(map[string]int),
	}
	for _, it := range items {
		s.TotalQuantity += it.Quantity
		s.CountByCategory[it.Category]++
		s.QuantityByCategory[it.Category] += it.Quantity
		if it.Quantity <= LowStockThreshold {
			s.LowStock = append(s.LowStock, it)
		}
	}
	return s, nil
}
