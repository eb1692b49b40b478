package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
)

// IngredientRepository insumos y su existencia.
type IngredientRepository interface {
	Create(ctx context.Context, i *entity.Ingredient) error
	GetByID(ctx context.Context, id string) (*entity.Ingredient, error)
	// GetForUpdate bloquea la fila (SELECT ... FOR UPDATE); usar dentro de una transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.Ingredient, error)
	List(ctx context.Context) ([]*entity.Ingredient, error)
	Update(ctx context.Context, i *entity.Ingredient) error
	// UpdateStock fija existencia y costo promedio.
	UpdateStock(ctx context.Context, id string, stock, unitCost decimal.Decimal) error
}
