package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa una llanta en stock dentro de una bodega.
// Los tags JSON conservan el formato del documento persistido
// ("warehouse" en lugar de "warehouseId" por compatibilidad histórica).
type InventoryItem struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"orderId,omitempty"` // presente solo en confirmaciones directas de stock
	Model       string          `json:"model"`
	Size        string          `json:"size"`
	Brand       string          `json:"brand"`
	WarehouseID string          `json:"warehouse"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	MinStock    int             `json:"minStock"`
	Notes       string          `json:"notes,omitempty"`
	Status      string          `json:"status,omitempty"`
	ConfirmedAt *time.Time      `json:"confirmedAt,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   *time.Time      `json:"updatedAt,omitempty"`
}
