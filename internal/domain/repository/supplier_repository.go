package repository

import "github.com/dgarciat/tirestock-api/internal/domain/entity"

// SupplierRepository define el puerto de lectura de proveedores
// (datos de referencia; no hay mutaciones).
type SupplierRepository interface {
	List() ([]*entity.Supplier, error)
}
