package repository

import (
	"context"
	"time"

	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
)

// InventoryMovementRepository bitácora de movimientos de insumos.
type InventoryMovementRepository interface {
	Create(ctx context.Context, m *entity.InventoryMovement) error
	// ListBetween movimientos con fecha en [start, end); kind vacío = todos.
	ListBetween(ctx context.Context, kind string, start, end time.Time) ([]*entity.InventoryMovement, error)
}
