package inventory

import (
	"context"

	"github.com/jhoicas/cazuela-chapina-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad para los movimientos de insumos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.InventoryMovementRepository,
		ingredientRepo repository.IngredientRepository,
	) error) error
}
