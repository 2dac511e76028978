package repository

import "github.com/dgarciat/tirestock-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para usuarios (auth).
// FindByEmail devuelve (nil, nil) si no existe.
type UserRepository interface {
	FindByEmail(email string) (*entity.User, error)
	Create(u *entity.User) error
}
