package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/supplysight-api/internal/application/analytics"
	appinventory "github.com/jhoicas/supplysight-api/internal/application/inventory"
	"github.com/jhoicas/supplysight-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	WarehouseUC *usecase.WarehouseUseCase
	ProductUC   *usecase.ProductUseCase
	KPIUC       *usecase.KPIUseCase
	MovementUC  *appinventory.MovementUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string // vacío = mutaciones públicas
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Lecturas (siempre públicas: la capa de presentación las consume directo)
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	api.Get("/warehouses", warehouseHandler.List)

	kpiHandler := NewKPIHandler(deps.KPIUC)
	api.Get("/kpis", kpiHandler.Series)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/summary", dashboardHandler.GetSummary)

	inventoryHandler := NewInventoryHandler(deps.MovementUC)
	api.Get("/inventory/movements", inventoryHandler.ListMovements)

	// Mutaciones: protegidas con Bearer Token solo si hay secret configurado
	guard := func(c *fiber.Ctx) error { return c.Next() }
	if deps.JWTSecret != "" {
		guard = AuthMiddleware(deps.JWTSecret)
	}

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.MovementUC)
	products.Get("/", productHandler.List)
	products.Put("/:id/demand", guard, productHandler.UpdateDemand)
	products.Post("/:id/transfer", guard, productHandler.TransferStock)
}
