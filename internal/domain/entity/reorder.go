package entity

import "time"

// Estados posibles de una solicitud de reposición. A diferencia de las
// entregas, cualquier estado puede pasar a cualquier otro; solo se valida
// la pertenencia al conjunto.
const (
	ReorderStatusPending   = "pending"
	ReorderStatusApproved  = "approved"
	ReorderStatusOrdered   = "ordered"
	ReorderStatusReceived  = "received"
	ReorderStatusCancelled = "cancelled"
)

// ValidReorderStatus indica si s pertenece al conjunto de estados válidos.
func ValidReorderStatus(s string) bool {
	switch s {
	case ReorderStatusPending, ReorderStatusApproved, ReorderStatusOrdered,
		ReorderStatusReceived, ReorderStatusCancelled:
		return true
	}
	return false
}

// Reorder es una solicitud de reposición de stock. Referencia un artículo
// de inventario por ID pero nunca lo muta.
type Reorder struct {
	ID          string     `json:"id"`
	ItemID      string     `json:"itemId"`
	Model       string     `json:"model"`
	Size        string     `json:"size"`
	Brand       string     `json:"brand"`
	Quantity    int        `json:"quantity"`
	WarehouseID string     `json:"warehouse"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	Notes       string     `json:"notes"`
	CreatedAt   time.Time  `json:"createdAt"`
	CreatedBy   string     `json:"createdBy"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}
