package dto

import "time"

// RegisterRequest alta de empleado (solo administrador).
type RegisterRequest struct {
	BranchID string `json:"branch_id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"` // administrador | cajero | cocinero
}

// LoginRequest credenciales.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse empleado sin hash.
type UserResponse struct {
	ID        string    `json:"id"`
	BranchID  string    `json:"branch_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse token + datos de la sesión creada.
type LoginResponse struct {
	Token     string       `json:"token"`
	SessionID string       `json:"session_id"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}
