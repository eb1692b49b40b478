package entity

import "time"

// Branch sucursal donde se vende y se almacena inventario.
type Branch struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
}
