package pos

import (
	"context"

	"github.com/jhoicas/cazuela-chapina-api/internal/domain/repository"
)

// SalesTxRunner ejecuta fn dentro de una transacción con el repositorio de ventas atado a ella.
type SalesTxRunner interface {
	RunSale(ctx context.Context, fn func(sales repository.SaleRepository) error) error
}
