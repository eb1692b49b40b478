package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/cazuela-chapina-api/internal/application/inventory"
	"github.com/jhoicas/cazuela-chapina-api/internal/application/pos"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner and pos.SalesTxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ pos.SalesTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// inTx inicia una transacción, ejecuta fn y hace Commit o Rollback.
func (r *TxRunner) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Run ejecuta fn con repos de movimientos e insumos atados a la misma tx.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.InventoryMovementRepository,
	ingredientRepo repository.IngredientRepository,
) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewInventoryMovementRepository(tx), NewIngredientRepository(tx))
	})
}

// RunSale ejecuta fn con el repositorio de ventas atado a la tx (cabecera y líneas juntas).
func (r *TxRunner) RunSale(ctx context.Context, fn func(sales repository.SaleRepository) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewSaleRepository(tx))
	})
}
