package analytics_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/analytics"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/memory"
)

// Escenario de referencia: Tools(3), Tools(10), Fasteners(2).
func TestSummary_AgregadosPorCategoria(t *testing.T) {
	store := memory.NewItemStore(
		entity.Item{ID: "a", Category: "Tools", Name: "Hammer", Quantity: 3},
		entity.Item{ID: "b", Category: "Tools", Name: "Drill", Quantity: 10},
		entity.Item{ID: "c", Category: "Fasteners", Name: "Bolt", Quantity: 2},
	)
	uc := analytics.NewDashboardUseCase(store)

	s, err := uc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, s.TotalItems)
	assert.Equal(t, 15, s.TotalQuantity)
	assert.Equal(t, map[string]int{"Tools": 2, "Fasteners": 1}, s.CountByCategory)
	assert.Equal(t, map[string]int{"Tools": 13, "Fasteners": 2}, s.QuantityByCategory)

	// stock bajo: la fila Fasteners(2) y la Tools(3); la Tools(10) no
	require.Len(t, s.LowStock, 2)
	names := []string{s.LowStock[0].Name, s.LowStock[1].Name}
	assert.Contains(t, names, "Hammer")
	assert.Contains(t, names, "Bolt")
}

// El umbral es inclusivo: cantidad exactamente 5 ya es stock bajo.
func TestSummary_UmbralInclusivo(t *testing.T) {
	store := memory.NewItemStore(
		entity.Item{ID: "a", Category: "Tools", Name: "Level", Quantity: 5},
		entity.Item{ID: "b", Category: "Tools", Name: "Drill", Quantity: 6},
	)
	uc := analytics.NewDashboardUseCase(store)

	s, err := uc.Summary(context.Background())
	require.NoError(t, err)
	require.Len(t, s.LowStock, 1)
	assert.Equal(t, "Level", s.LowStock[0].Name)
}

func TestSummary_InventarioVacio(t *testing.T) {
	uc := analytics.NewDashboardUseCase(memory.NewItemStore())

	s, err := uc.Summary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, s.TotalItems)
	assert.Zero(t, s.TotalQuantity)
	assert.Empty(t, s.LowStock)
	assert.Empty(t, s.CountByCategory)
}
