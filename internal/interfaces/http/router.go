package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dgarciat/tirestock-api/internal/application/auth"
	"github.com/dgarciat/tirestock-api/internal/application/deliveries"
	"github.com/dgarciat/tirestock-api/internal/application/inventory"
	"github.com/dgarciat/tirestock-api/internal/application/reorders"
	"github.com/dgarciat/tirestock-api/internal/application/transactions"
	"github.com/dgarciat/tirestock-api/internal/application/warehouses"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventoryUC   *inventory.UseCase
	DeliveriesUC  *deliveries.UseCase
	TransactionUC *transactions.UseCase
	ReorderUC     *reorders.UseCase
	WarehouseUC   *warehouses.UseCase
	AuthUC        *auth.UseCase
	JWTSecret     string
}

// Router registra las rutas de la API. Cada recurso expone un único
// endpoint que despacha por ?action=; la validación del verbo HTTP vive
// en cada handler, por eso se registra con All.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Recursos de almacén (público por ahora; se puede proteger con
	// AuthMiddleware(deps.JWTSecret))
	api.All("/inventory", NewInventoryHandler(deps.InventoryUC).Actions)
	api.All("/deliveries", NewDeliveryHandler(deps.DeliveriesUC, deps.TransactionUC).Actions)
	api.All("/transactions", NewTransactionHandler(deps.TransactionUC).Actions)
	api.All("/reorders", NewReorderHandler(deps.ReorderUC).Actions)
	api.All("/warehouses", NewWarehouseHandler(deps.WarehouseUC).Actions)
}
