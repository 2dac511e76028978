package collections

import (
	"time"

	"github.com/dgarciat/tirestock-api/internal/domain/entity"
	"github.com/dgarciat/tirestock-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del puerto del log de auditoría sobre un
// DocumentStore. Orden de inserción = orden cronológico.
type TransactionRepo struct {
	store DocumentStore
}

// NewTransactionRepo construye el adaptador del log de transacciones.
func NewTransactionRepo(store DocumentStore) *TransactionRepo {
	return &TransactionRepo{store: store}
}

func (r *TransactionRepo) load() ([]*entity.Transaction, error) {
	var ts []*entity.Transaction
	if err := r.store.Load(repository.CollectionTransactions, &ts); err != nil {
		return nil, err
	}
	return ts, nil
}

// List devuelve el log completo en orden cronológico.
func (r *TransactionRepo) List() ([]*entity.Transaction, error) {
	return r.load()
}

// Append agrega una entrada al final del log. Nunca rechaza por contenido;
// solo falla si falla la escritura del almacén.
func (r *TransactionRepo) Append(t *entity.Transaction) error {
	ts, err := r.load()
	if err != nil {
		return err
	}
	ts = append(ts, t)
	return r.store.Persist(repository.CollectionTransactions, ts)
}

// PruneBefore elimina las entradas con timestamp anterior al corte sin
// reordenar las supervivientes.
func (r *TransactionRepo) PruneBefore(cutoff time.Time) (deleted, remaining int, err error) {
	ts, err := r.load()
	if err != nil {
		return 0, 0, err
	}
	kept := make([]*entity.Transaction, 0, len(ts))
	for _, t := range ts {
		if !t.Timestamp.Before(cutoff) {
			kept = append(kept, t)
		}
	}
	deleted = len(ts) - len(kept)
	if deleted > 0 {
		if err := r.store.Persist(repository.CollectionTransactions, kept); err != nil {
			return 0, 0, err
		}
	}
	return deleted, len(kept), nil
}
