package entity

import "time"

// Session sesión de un empleado: se crea en el login y se destruye en el logout.
// Cada request autenticado recibe la sesión explícitamente; el carrito vive bajo su ID.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	BranchID  string    `json:"branch_id"`
	Role      string    `json:"role"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired indica si la sesión ya venció respecto a now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
