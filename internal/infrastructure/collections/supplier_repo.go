package collections

import (
	"github.com/dgarciat/tirestock-api/internal/domain/entity"
	"github.com/dgarciat/tirestock-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de solo lectura para proveedores.
type SupplierRepo struct {
	store DocumentStore
}

// NewSupplierRepo construye el adaptador de proveedores.
func NewSupplierRepo(store DocumentStore) *SupplierRepo {
	return &SupplierRepo{store: store}
}

// List devuelve los proveedores en orden de inserción.
func (r *SupplierRepo) List() ([]*entity.Supplier, error) {
	var ss []*entity.Supplier
	if err := r.store.Load(repository.CollectionSuppliers, &ss); err != nil {
		return nil, err
	}
	return ss, nil
}
