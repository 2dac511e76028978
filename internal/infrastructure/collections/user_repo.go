package collections

import (
	"strings"

	"github.com/dgarciat/tirestock-api/internal/domain/entity"
	"github.com/dgarciat/tirestock-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre un DocumentStore.
type UserRepo struct {
	store DocumentStore
}

// NewUserRepo construye el adaptador de usuarios.
func NewUserRepo(store DocumentStore) *UserRepo {
	return &UserRepo{store: store}
}

func (r *UserRepo) load() ([]*entity.User, error) {
	var us []*entity.User
	if err := r.store.Load(repository.CollectionUsers, &us); err != nil {
		return nil, err
	}
	return us, nil
}

// FindByEmail busca un usuario por email (sin distinguir mayúsculas).
// Devuelve (nil, nil) si no existe.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	us, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, u := range us {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

// Create agrega un usuario al final de la colección.
func (r *UserRepo) Create(u *entity.User) error {
	us, err := r.load()
	if err != nil {
		return err
	}
	us = append(us, u)
	return r.store.Persist(repository.CollectionUsers, us)
}
