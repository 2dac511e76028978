package collections

import (
	"github.com/dgarciat/tirestock-api/internal/domain"
	"github.com/dgarciat/tirestock-api/internal/domain/entity"
	"github.com/dgarciat/tirestock-api/internal/domain/repository"
)

var _ repository.DeliveryRepository = (*DeliveryRepo)(nil)

// DeliveryRepo implementación del puerto DeliveryRepository sobre un
// DocumentStore.
type DeliveryRepo struct {
	store DocumentStore
}

// NewDeliveryRepo construye el adaptador de persistencia para entregas.
func NewDeliveryRepo(store DocumentStore) *DeliveryRepo {
	return &DeliveryRepo{store: store}
}

func (r *DeliveryRepo) load() ([]*entity.Delivery, error) {
	var ds []*entity.Delivery
	if err := r.store.Load(repository.CollectionDeliveries, &ds); err != nil {
		return nil, err
	}
	return ds, nil
}

// List devuelve todas las entregas en orden de creación.
func (r *DeliveryRepo) List() ([]*entity.Delivery, error) {
	return r.load()
}

// ListPending devuelve solo las entregas pendientes, en orden de creación.
// El filtro vive aquí para que ningún caller vuelva a derivar el predicado.
func (r *DeliveryRepo) ListPending() ([]*entity.Delivery, error) {
	ds, err := r.load()
	if err != nil {
		return nil, err
	}
	pending := make([]*entity.Delivery, 0, len(ds))
	for _, d := range ds {
		if d.IsPending() {
			pending = append(pending, d)
		}
	}
	return pending, nil
}

// GetByID devuelve la entrega o (nil, nil) si no existe.
func (r *DeliveryRepo) GetByID(id string) (*entity.Delivery, error) {
	ds, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, d := range ds {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, nil
}

// Append agrega una entrega al final de la colección.
func (r *DeliveryRepo) Append(d *entity.Delivery) error {
	ds, err := r.load()
	if err != nil {
		return err
	}
	ds = append(ds, d)
	return r.store.Persist(repository.CollectionDeliveries, ds)
}

// Replace sustituye la entrega con el mismo ID conservando su posición.
func (r *DeliveryRepo) Replace(d *entity.Delivery) error {
	ds, err := r.load()
	if err != nil {
		return err
	}
	for i, existing := range ds {
		if existing.ID == d.ID {
			ds[i] = d
			return r.store.Persist(repository.CollectionDeliveries, ds)
		}
	}
	return domain.ErrNotFound
}
