package repository

import "github.com/dgarciat/tirestock-api/internal/domain/entity"

// ReorderRepository define el puerto de persistencia para reposiciones.
type ReorderRepository interface {
	List() ([]*entity.Reorder, error)
	ListByStatus(status string) ([]*entity.Reorder, error)
	GetByID(id string) (*entity.Reorder, error)
	Append(r *entity.Reorder) error
	Replace(r *entity.Reorder) error
}
