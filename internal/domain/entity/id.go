package entity

import "github.com/google/uuid"

// NewID genera un identificador único con el prefijo histórico de cada
// colección (inv_, del_, conf_, reorder_, txn_, user_).
func NewID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}
