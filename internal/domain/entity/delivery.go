package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados posibles de una entrega. Las transiciones válidas son
// pending → confirmed y pending → rejected; ambas son terminales.
const (
	DeliveryStatusPending   = "pending"
	DeliveryStatusConfirmed = "confirmed"
	DeliveryStatusRejected  = "rejected"
)

// Delivery representa una entrega de proveedor pendiente de confirmación.
type Delivery struct {
	ID              string          `json:"id"`
	Model           string          `json:"model"`
	Size            string          `json:"size"`
	Brand           string          `json:"brand"`
	WarehouseID     string          `json:"warehouse"`
	Quantity        int             `json:"quantity"`
	Price           decimal.Decimal `json:"price"`
	MinStock        int             `json:"minStock"`
	SupplierID      string          `json:"supplier"`
	ExpectedDate    string          `json:"deliveryDate"`
	Notes           string          `json:"notes"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	ConfirmedAt     *time.Time      `json:"confirmedAt,omitempty"`
	RejectedAt      *time.Time      `json:"rejectedAt,omitempty"`
	RejectionReason *string         `json:"rejectionReason,omitempty"`
}

// IsPending indica si la entrega todavía admite confirmación o rechazo.
func (d *Delivery) IsPending() bool {
	return d.Status == DeliveryStatusPending
}
