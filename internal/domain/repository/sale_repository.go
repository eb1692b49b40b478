package repository

import (
	"context"
	"time"

	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
)

// SaleRepository ventas registradas; solo inserción y lectura.
type SaleRepository interface {
	// Create persiste la venta con sus líneas (llamar dentro de una transacción).
	Create(ctx context.Context, s *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	// ListBetween ventas con timestamp en [start, end), ordenadas por timestamp; branchID vacío = todas.
	ListBetween(ctx context.Context, branchID string, start, end time.Time) ([]entity.Sale, error)
}
