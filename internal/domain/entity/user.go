package entity

import "time"

// Roles disponibles para usuarios de la API.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
)

// User representa un usuario de la API (auth para las rutas protegidas).
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string
	Name         string
	Role         string // ver constantes Role*
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
