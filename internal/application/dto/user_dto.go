package dto

import "time"

// RegisterRequest entrada para registrar un usuario.
type RegisterRequest struct {
	CompanyID string `json:"company_id" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Name      string `json:"name"`
	Role      string `json:"role"`
}

// LoginRequest entrada para iniciar sesión.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password hash).
type UserResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse token JWT + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
