package repository

import "github.com/dgarciat/tirestock-api/internal/domain/entity"

// InventoryRepository define el puerto de persistencia para el inventario (DIP).
// GetByID devuelve (nil, nil) si el artículo no existe.
type InventoryRepository interface {
	List() ([]*entity.InventoryItem, error)
	ListByWarehouse(warehouseID string) ([]*entity.InventoryItem, error)
	GetByID(id string) (*entity.InventoryItem, error)
	Append(item *entity.InventoryItem) error
	Replace(item *entity.InventoryItem) error
	Delete(id string) error
}
