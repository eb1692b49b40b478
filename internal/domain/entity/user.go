package entity

import "time"

// Roles del personal.
const (
	RoleAdmin   = "administrador"
	RoleCashier = "cajero"
	RoleCook    = "cocinero"
)

// ValidRole indica si r es un rol conocido.
func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleCashier, RoleCook:
		return true
	}
	return false
}

// User empleado con acceso al sistema, asignado a una sucursal.
type User struct {
	ID           string
	BranchID     string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
