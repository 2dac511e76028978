package repository

import "github.com/dgarciat/tirestock-api/internal/domain/entity"

// DeliveryRepository define el puerto de persistencia para entregas.
type DeliveryRepository interface {
	List() ([]*entity.Delivery, error)
	ListPending() ([]*entity.Delivery, error)
	GetByID(id string) (*entity.Delivery, error)
	Append(d *entity.Delivery) error
	Replace(d *entity.Delivery) error
}
