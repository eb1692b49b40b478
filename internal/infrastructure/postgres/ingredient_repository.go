package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cazuela-chapina-api/internal/domain"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/repository"
)

var _ repository.IngredientRepository = (*IngredientRepo)(nil)

// IngredientRepo implementación de IngredientRepository (usable con pool o tx).
type IngredientRepo struct {
	q Querier
}

// NewIngredientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIngredientRepository(q Querier) *IngredientRepo {
	return &IngredientRepo{q: q}
}

const ingredientColumns = `id, name, category, unit, current_stock, min_stock, max_stock, unit_cost, supplier, expires_at, created_at, updated_at`

func scanIngredient(row pgx.Row) (*entity.Ingredient, error) {
	var i entity.Ingredient
	var supplier *string
	if err := row.Scan(&i.ID, &i.Name, &i.Category, &i.Unit, &i.CurrentStock, &i.MinStock, &i.MaxStock,
		&i.UnitCost, &supplier, &i.ExpiresAt, &i.CreatedAt, &i.UpdatedAt); err != nil {
		return nil, err
	}
	i.Supplier = derefStr(supplier)
	return &i, nil
}

// Create persiste un insumo.
func (r *IngredientRepo) Create(ctx context.Context, i *entity.Ingredient) error {
	query := `
		INSERT INTO ingredients (` + ingredientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		i.ID, i.Name, i.Category, i.Unit, i.CurrentStock, i.MinStock, i.MaxStock,
		i.UnitCost, nullIfEmpty(i.Supplier), i.ExpiresAt, i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ingredient: %w", err)
	}
	return nil
}

// GetByID obtiene un insumo; nil si no existe.
func (r *IngredientRepo) GetByID(ctx context.Context, id string) (*entity.Ingredient, error) {
	return r.get(ctx, `SELECT `+ingredientColumns+` FROM ingredients WHERE id = $1`, id)
}

// GetForUpdate obtiene el insumo bloqueando la fila (SELECT ... FOR UPDATE). Solo tiene efecto dentro de una tx.
func (r *IngredientRepo) GetForUpdate(ctx context.Context, id string) (*entity.Ingredient, error) {
	return r.get(ctx, `SELECT `+ingredientColumns+` FROM ingredients WHERE id = $1 FOR UPDATE`, id)
}

func (r *IngredientRepo) get(ctx context.Context, query, id string) (*entity.Ingredient, error) {
	i, err := scanIngredient(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ingredient: %w", err)
	}
	return i, nil
}

// List lista todos los insumos por categoría y nombre.
func (r *IngredientRepo) List(ctx context.Context) ([]*entity.Ingredient, error) {
	rows, err := r.q.Query(ctx, `SELECT `+ingredientColumns+` FROM ingredients ORDER BY category, name`)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()
	list := []*entity.Ingredient{}
	for rows.Next() {
		i, err := scanIngredient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		list = append(list, i)
	}
	return list, rows.Err()
}

// Update actualiza los datos maestros. No modifica existencia ni costo (se manejan vía movimientos).
func (r *IngredientRepo) Update(ctx context.Context, i *entity.Ingredient) error {
	query := `
		UPDATE ingredients
		SET name = $2, category = $3, unit = $4, min_stock = $5, max_stock = $6,
		    supplier = $7, expires_at = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		i.ID, i.Name, i.Category, i.Unit, i.MinStock, i.MaxStock,
		nullIfEmpty(i.Supplier), i.ExpiresAt, i.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update ingredient: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock fija existencia y costo promedio (usado por el motor de movimientos).
func (r *IngredientRepo) UpdateStock(ctx context.Context, id string, stock, unitCost decimal.Decimal) error {
	_, err := r.q.Exec(ctx,
		`UPDATE ingredients SET current_stock = $2, unit_cost = $3, updated_at = now() WHERE id = $1`,
		id, stock, unitCost,
	)
	if err != nil {
		return fmt.Errorf("update ingredient stock: %w", err)
	}
	return nil
}
