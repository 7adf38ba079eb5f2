package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/almacen-api/internal/application/analytics"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/infrastructure/excel"
	"github.com/jhoicas/almacen-api/internal/infrastructure/historylog"
	httpRouter "github.com/jhoicas/almacen-api/internal/interfaces/http"
	"github.com/jhoicas/almacen-api/pkg/config"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("inventory_file", cfg.Store.InventoryFile).
		Str("history_file", cfg.Store.HistoryFile).
		Msg("iniciando aplicación")

	// La tabla y el log se construyen una sola vez al arranque y se pasan
	// por referencia; no hay archivos ambientales sueltos.
	itemStore, err := excel.NewItemStore(cfg.Store.InventoryFile)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir tabla de inventario")
	}
	historyLog := historylog.New(cfg.Store.HistoryFile)

	inventoryUC := inventory.NewService(itemStore, historyLog)
	undoUC := inventory.NewUndoUseCase(inventoryUC)
	dashboardUC := analytics.NewDashboardUseCase(itemStore)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almacén API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Fondos subidos desde /api/customise
	app.Static("/static", cfg.Store.StaticDir)

	httpRouter.Router(app, httpRouter.RouterDeps{
		InventoryUC:    inventoryUC,
		UndoUC:         undoUC,
		DashboardUC:    dashboardUC,
		HistoryLog:     historyLog,
		ItemStore:      itemStore,
		BackgroundsDir: cfg.Store.BackgroundsDir,
		ThemeDefault:   cfg.Theme.DefaultColor,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
