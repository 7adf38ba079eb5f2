package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/analytics"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventoryUC    *inventory.Service
	UndoUC         *inventory.UndoUseCase
	DashboardUC    *analytics.DashboardUseCase
	HistoryLog     repository.HistoryLog
	ItemStore      repository.ItemStore
	BackgroundsDir string
	ThemeDefault   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Items: listado/búsqueda y mutaciones por índice posicional
	items := api.Group("/items")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.UndoUC)
	items.Get("/", inventoryHandler.List)
	items.Post("/", inventoryHandler.Create)
	items.Put("/:row", inventoryHandler.Update)
	items.Delete("/:row", inventoryHandler.Delete)
	items.Post("/undo/:timestamp", inventoryHandler.Undo)

	// Historial de acciones (solo lectura)
	historyHandler := NewHistoryHandler(deps.HistoryLog)
	api.Get("/history", historyHandler.List)

	// Agregados
	analyticsHandler := NewAnalyticsHandler(deps.DashboardUC)
	api.Get("/analytics", analyticsHandler.Summary)

	// Export
	exports := api.Group("/export")
	exportHandler := NewExportHandler(deps.ItemStore)
	exports.Get("/xlsx", exportHandler.Xlsx)
	exports.Get("/csv", exportHandler.CSV)
	exports.Get("/xml", exportHandler.XML)

	// Personalización
	customiseHandler := NewCustomiseHandler(deps.BackgroundsDir, deps.ThemeDefault)
	api.Get("/customise", customiseHandler.Get)
	api.Post("/customise", customiseHandler.Set)
}
