// Package http expone la API REST sobre Fiber.
package http

import (
	"github.com/gofiber/fiber/v2"

	appdoc "github.com/jhoicas/gestion-comercial/internal/application/document"
	"github.com/jhoicas/gestion-comercial/internal/application/ledger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Coordinator *appdoc.Coordinator
	Queries     *ledger.QueryUseCase
	Manual      *ledger.ManualMovementUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Documentos comerciales
	documents := api.Group("/documents")
	documentHandler := NewDocumentHandler(deps.Coordinator)
	documents.Post("/", documentHandler.Create)
	documents.Get("/:id", documentHandler.Get)
	documents.Put("/:id", documentHandler.Update)
	documents.Delete("/:id", documentHandler.Delete)
	documents.Patch("/:id/status", documentHandler.Transition)

	// Inventario
	inventory := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Queries, deps.Manual)
	inventory.Get("/products/:id/stock", inventoryHandler.ProductStock)
	inventory.Get("/products/:id/movements", inventoryHandler.Movements)
	inventory.Post("/movements", inventoryHandler.RegisterMovement)

	// Tesorería
	treasury := api.Group("/treasury")
	treasuryHandler := NewTreasuryHandler(deps.Queries)
	treasury.Get("/documents/:id/payment", treasuryHandler.PaymentByDocument)
	treasury.Get("/accounts/:id", treasuryHandler.BankAccount)
}
