package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). La capa HTTP los mapea
// a códigos de estado: validación → 422, no encontrado → 404,
// estado inválido → 400, almacenamiento → 500.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrValidation         = errors.New("entrada inválida")
	ErrInvalidState       = errors.New("transición de estado no permitida")
	ErrStore              = errors.New("error de almacenamiento")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)

// Validationf construye un error de validación con mensaje legible,
// compatible con errors.Is(err, ErrValidation).
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}

// InvalidStatef construye un error de transición de estado con mensaje
// legible, compatible con errors.Is(err, ErrInvalidState).
func InvalidStatef(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidState}, args...)...)
}
