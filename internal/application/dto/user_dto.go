package dto

import "time"

// RegisterRequest entrada para registro (auth). CompanyID vacío crea un
// usuario regular sin empresa.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Name      string `json:"name" validate:"omitempty,max=200"`
	CompanyID string `json:"company_id" validate:"omitempty,uuid"`
	Role      string `json:"role" validate:"omitempty,oneof=employer employee regular"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id,omitempty"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EmployeeListResponse salida para la tabla de empleados de una empresa.
type EmployeeListResponse struct {
	Items []UserResponse `json:"items"`
}
