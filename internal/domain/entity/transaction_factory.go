package entity

import "time"

// NewTransaction construye una entrada del log de auditoría con ID propio.
// data es el snapshot del registro afectado por la mutación.
func NewTransaction(txnType, description string, data any, actor string, now time.Time) *Transaction {
	if actor == "" {
		actor = "system"
	}
	return &Transaction{
		ID:          NewID("txn"),
		Type:        txnType,
		Description: description,
		Data:        data,
		Timestamp:   now,
		Actor:       actor,
	}
}
