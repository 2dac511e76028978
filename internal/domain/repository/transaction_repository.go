package repository

import (
	"time"

	"github.com/dgarciat/tirestock-api/internal/domain/entity"
)

// TransactionRepository define el puerto del log de auditoría (append-only).
// PruneBefore elimina las entradas con timestamp anterior al corte y
// devuelve cuántas se borraron y cuántas quedan, sin reordenar las
// supervivientes.
type TransactionRepository interface {
	List() ([]*entity.Transaction, error)
	Append(t *entity.Transaction) error
	PruneBefore(cutoff time.Time) (deleted, remaining int, err error)
}
