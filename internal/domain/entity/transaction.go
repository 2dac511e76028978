package entity

import "time"

// Tipos de transacción registrados en el log de auditoría.
const (
	TxnStockConfirmed        = "stock_confirmed"
	TxnInventoryAdded        = "inventory_added"
	TxnInventoryUpdated      = "inventory_updated"
	TxnInventoryDeleted      = "inventory_deleted"
	TxnDeliveryCreated       = "delivery_created"
	TxnDeliveryStatusUpdated = "delivery_status_updated"
	TxnReorderCreated        = "reorder_created"
	TxnReorderStatusUpdated  = "reorder_status_updated"
)

// Transaction es un registro inmutable del log de auditoría: una entrada
// por cada mutación sobre cualquier colección. Nunca se modifica ni se
// reordena después de creada; solo se poda por antigüedad.
type Transaction struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Data        any       `json:"data"` // snapshot del registro afectado
	Timestamp   time.Time `json:"timestamp"`
	Actor       string    `json:"user"`
}
