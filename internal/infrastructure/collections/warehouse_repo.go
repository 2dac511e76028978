package collections

import (
	"github.com/dgarciat/tirestock-api/internal/domain/entity"
	"github.com/dgarciat/tirestock-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación de solo lectura para bodegas.
type WarehouseRepo struct {
	store DocumentStore
}

// NewWarehouseRepo construye el adaptador de bodegas.
func NewWarehouseRepo(store DocumentStore) *WarehouseRepo {
	return &WarehouseRepo{store: store}
}

func (r *WarehouseRepo) load() ([]*entity.Warehouse, error) {
	var ws []*entity.Warehouse
	if err := r.store.Load(repository.CollectionWarehouses, &ws); err != nil {
		return nil, err
	}
	return ws, nil
}

// List devuelve las bodegas en orden de inserción.
func (r *WarehouseRepo) List() ([]*entity.Warehouse, error) {
	return r.load()
}

// GetByID devuelve la bodega o (nil, nil) si no existe.
func (r *WarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	ws, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, w := range ws {
		if w.ID == id {
			return w, nil
		}
	}
	return nil, nil
}
