package collections

import (
	"github.com/dgarciat/tirestock-api/internal/domain"
	"github.com/dgarciat/tirestock-api/internal/domain/entity"
	"github.com/dgarciat/tirestock-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre un
// DocumentStore. Cada operación carga la colección completa, la muta en
// memoria y la reescribe; el costo está acotado por el tamaño de la
// colección y el caller sostiene el lock vía TxRunner.
type InventoryRepo struct {
	store DocumentStore
}

// NewInventoryRepo construye el adaptador de persistencia para inventario.
func NewInventoryRepo(store DocumentStore) *InventoryRepo {
	return &InventoryRepo{store: store}
}

func (r *InventoryRepo) load() ([]*entity.InventoryItem, error) {
	var items []*entity.InventoryItem
	if err := r.store.Load(repository.CollectionInventory, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// List devuelve el inventario completo en orden de inserción.
func (r *InventoryRepo) List() ([]*entity.InventoryItem, error) {
	return r.load()
}

// ListByWarehouse devuelve los artículos de una bodega, mismo orden.
func (r *InventoryRepo) ListByWarehouse(warehouseID string) ([]*entity.InventoryItem, error) {
	items, err := r.load()
	if err != nil {
		return nil, err
	}
	matched := make([]*entity.InventoryItem, 0, len(items))
	for _, it := range items {
		if it.WarehouseID == warehouseID {
			matched = append(matched, it)
		}
	}
	return matched, nil
}

// GetByID devuelve el artículo o (nil, nil) si no existe.
func (r *InventoryRepo) GetByID(id string) (*entity.InventoryItem, error) {
	items, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, nil
}

// Append agrega un artículo al final de la colección.
func (r *InventoryRepo) Append(item *entity.InventoryItem) error {
	items, err := r.load()
	if err != nil {
		return err
	}
	items = append(items, item)
	return r.store.Persist(repository.CollectionInventory, items)
}

// Replace sustituye el artículo con el mismo ID conservando su posición.
func (r *InventoryRepo) Replace(item *entity.InventoryItem) error {
	items, err := r.load()
	if err != nil {
		return err
	}
	for i, it := range items {
		if it.ID == item.ID {
			items[i] = item
			return r.store.Persist(repository.CollectionInventory, items)
		}
	}
	return domain.ErrNotFound
}

// Delete elimina el artículo y reempaqueta el resto preservando el orden.
func (r *InventoryRepo) Delete(id string) error {
	items, err := r.load()
	if err != nil {
		return err
	}
	for i, it := range items {
		if it.ID == id {
			items = append(items[:i], items[i+1:]...)
			return r.store.Persist(repository.CollectionInventory, items)
		}
	}
	return domain.ErrNotFound
}
