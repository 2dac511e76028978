package collections

import (
	"github.com/dgarciat/tirestock-api/internal/domain"
	"github.com/dgarciat/tirestock-api/internal/domain/entity"
	"github.com/dgarciat/tirestock-api/internal/domain/repository"
)

var _ repository.ReorderRepository = (*ReorderRepo)(nil)

// ReorderRepo implementación del puerto ReorderRepository sobre un
// DocumentStore.
type ReorderRepo struct {
	store DocumentStore
}

// NewReorderRepo construye el adaptador de reposiciones.
func NewReorderRepo(store DocumentStore) *ReorderRepo {
	return &ReorderRepo{store: store}
}

func (r *ReorderRepo) load() ([]*entity.Reorder, error) {
	var rs []*entity.Reorder
	if err := r.store.Load(repository.CollectionReorders, &rs); err != nil {
		return nil, err
	}
	return rs, nil
}

// List devuelve todas las reposiciones en orden de creación.
func (r *ReorderRepo) List() ([]*entity.Reorder, error) {
	return r.load()
}

// ListByStatus devuelve las reposiciones con el estado dado, mismo orden.
func (r *ReorderRepo) ListByStatus(status string) ([]*entity.Reorder, error) {
	rs, err := r.load()
	if err != nil {
		return nil, err
	}
	matched := make([]*entity.Reorder, 0, len(rs))
	for _, re := range rs {
		if re.Status == status {
			matched = append(matched, re)
		}
	}
	return matched, nil
}

// GetByID devuelve la reposición o (nil, nil) si no existe.
func (r *ReorderRepo) GetByID(id string) (*entity.Reorder, error) {
	rs, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, re := range rs {
		if re.ID == id {
			return re, nil
		}
	}
	return nil, nil
}

// Append agrega una reposición al final de la colección.
func (r *ReorderRepo) Append(re *entity.Reorder) error {
	rs, err := r.load()
	if err != nil {
		return err
	}
	rs = append(rs, re)
	return r.store.Persist(repository.CollectionReorders, rs)
}

// Replace sustituye la reposición con el mismo ID conservando su posición.
func (r *ReorderRepo) Replace(re *entity.Reorder) error {
	rs, err := r.load()
	if err != nil {
		return err
	}
	for i, existing := range rs {
		if existing.ID == re.ID {
			rs[i] = re
			return r.store.Persist(repository.CollectionReorders, rs)
		}
	}
	return domain.ErrNotFound
}
