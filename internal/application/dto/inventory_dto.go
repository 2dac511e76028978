package dto

import (
	"github.com/shopspring/decimal"

	"github.com/dgarciat/tirestock-api/internal/domain/entity"
	"github.com/dgarciat/tirestock-api/internal/domain/stock"
)

// AddInventoryRequest alta directa de inventario. Los numéricos son
// punteros para distinguir "campo ausente" de "cero".
type AddInventoryRequest struct {
	Model       string           `json:"model"`
	Size        string           `json:"size"`
	Brand       string           `json:"brand"`
	WarehouseID string           `json:"warehouse"`
	Quantity    *int             `json:"quantity"`
	Price       *decimal.Decimal `json:"price"`
	MinStock    *int             `json:"minStock"`
}

// ConfirmStockRequest confirmación directa de stock contra una orden
// (ruta histórica independiente del flujo de entregas).
type ConfirmStockRequest struct {
	OrderID     string           `json:"orderId"`
	Model       string           `json:"model"`
	Size        string           `json:"size"`
	Brand       string           `json:"brand"`
	WarehouseID string           `json:"warehouse"`
	Quantity    *int             `json:"quantity"`
	Price       *decimal.Decimal `json:"price"`
	Notes       string           `json:"notes"`
	Status      string           `json:"status"`
}

// UpdateInventoryRequest actualización parcial: solo se aplican los
// campos presentes.
type UpdateInventoryRequest struct {
	ID          string           `json:"id"`
	Model       *string          `json:"model"`
	Size        *string          `json:"size"`
	Brand       *string          `json:"brand"`
	WarehouseID *string          `json:"warehouse"`
	Quantity    *int             `json:"quantity"`
	Price       *decimal.Decimal `json:"price"`
	MinStock    *int             `json:"minStock"`
}

// DeleteInventoryRequest baja de un artículo por ID.
type DeleteInventoryRequest struct {
	ID string `json:"id"`
}

// InventoryItemView es un artículo enriquecido con su nivel de stock
// calculado (out/low/medium/high) para los listados.
type InventoryItemView struct {
	*entity.InventoryItem
	StockLevel stock.Tier `json:"stockLevel"`
}
