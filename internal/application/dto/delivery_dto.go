package dto

import "github.com/shopspring/decimal"

// AddPendingDeliveryRequest alta de una entrega pendiente desde la cadena
// de suministro.
type AddPendingDeliveryRequest struct {
	Model        string           `json:"model"`
	Size         string           `json:"size"`
	Brand        string           `json:"brand"`
	WarehouseID  string           `json:"warehouse"`
	Quantity     *int             `json:"quantity"`
	Price        *decimal.Decimal `json:"price"`
	MinStock     *int             `json:"minStock"`
	SupplierID   string           `json:"supplier"`
	DeliveryDate string           `json:"deliveryDate"`
	Notes        string           `json:"notes"`
}

// ConfirmDeliveryRequest confirma una entrega pendiente hacia inventario.
type ConfirmDeliveryRequest struct {
	ID string `json:"id"`
}

// RejectDeliveryRequest rechaza una entrega pendiente; el motivo puede
// estar vacío.
type RejectDeliveryRequest struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}
