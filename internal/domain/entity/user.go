package entity

import "time"

// Roles de usuario para el subsistema de autenticación.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User es un usuario del sistema. El hash de contraseña se persiste en la
// colección pero nunca se expone en respuestas HTTP (ver dto.UserResponse).
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
