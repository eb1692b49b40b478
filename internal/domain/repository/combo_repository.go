package repository

import (
	"context"

	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
)

// ComboRepository puerto de persistencia de combos y sus componentes.
type ComboRepository interface {
	Create(ctx context.Context, c *entity.Combo) error
	GetByID(ctx context.Context, id string) (*entity.Combo, error)
	List(ctx context.Context, activeOnly bool) ([]*entity.Combo, error)
	SetActive(ctx context.Context, id string, active bool) error
}
