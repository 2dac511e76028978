package repository

import "github.com/dgarciat/tirestock-api/internal/domain/entity"

// WarehouseRepository define el puerto de lectura de bodegas.
// GetByID devuelve (nil, nil) si la bodega no existe.
type WarehouseRepository interface {
	List() ([]*entity.Warehouse, error)
	GetByID(id string) (*entity.Warehouse, error)
}
