package http

import (
	"github.com/gofiber/fiber/v2"

	appdelivery "github.com/jhoicas/Inventario-entregas/internal/application/delivery"
	"github.com/jhoicas/Inventario-entregas/internal/application/dto"
	"github.com/jhoicas/Inventario-entregas/internal/application/inventory"
	"github.com/jhoicas/Inventario-entregas/internal/application/ports"
	"github.com/jhoicas/Inventario-entregas/pkg/logger"
	"github.com/jhoicas/Inventario-entregas/pkg/money"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Ledger        *inventory.Ledger
	Replenishment *inventory.ReplenishmentUseCase
	Report        *inventory.ReportUseCase
	Tracker       *appdelivery.Tracker
	SalesFeed     ports.SalesFeed
	Money         *money.Formatter
	Logger        *logger.Logger
	ServiceName   string
	StoreDriver   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Logger != nil {
		app.Use(RequestLogger(deps.Logger))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: deps.ServiceName, Store: deps.StoreDriver})
	})

	api := app.Group("/api")

	// Inventario
	inv := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Ledger, deps.Replenishment, deps.Report, deps.Money)
	inv.Get("/items", inventoryHandler.List)
	inv.Post("/items", inventoryHandler.Create)
	inv.Get("/items/:id", inventoryHandler.GetByID)
	inv.Put("/items/:id", inventoryHandler.Update)
	inv.Delete("/items/:id", inventoryHandler.Delete)
	inv.Post("/items/:id/adjust", inventoryHandler.Adjust)
	inv.Post("/adjustments", inventoryHandler.BulkAdjust)
	inv.Get("/categories", inventoryHandler.Categories)
	inv.Get("/stats", inventoryHandler.Stats)
	inv.Get("/replenishment-list", inventoryHandler.GetReplenishmentList)
	inv.Get("/report.pdf", inventoryHandler.DownloadReport)

	// Entregas
	deliveries := api.Group("/deliveries")
	deliveryHandler := NewDeliveryHandler(deps.Tracker, deps.SalesFeed)
	deliveries.Get("/", deliveryHandler.List)
	deliveries.Post("/sync", deliveryHandler.Sync)
	deliveries.Get("/:id", deliveryHandler.GetByID)
	deliveries.Post("/:id/advance", deliveryHandler.Advance)
}
