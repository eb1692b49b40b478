package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

// Create persiste un movimiento de insumo.
func (r *InventoryMovementRepo) Create(ctx context.Context, m *entity.InventoryMovement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO ingredient_movements (id, transaction_id, ingredient_id, branch_id, type, quantity, unit_cost, total_cost, moved_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.TransactionID, m.IngredientID, nullIfEmpty(m.BranchID), m.Type,
		m.Quantity, m.UnitCost, m.TotalCost, m.Date, nullIfEmpty(m.CreatedBy),
	)
	if err != nil {
		return fmt.Errorf("create ingredient movement: %w", err)
	}
	return nil
}

// ListBetween movimientos con fecha en [start, end); kind vacío = todos los tipos.
func (r *InventoryMovementRepo) ListBetween(ctx context.Context, kind string, start, end time.Time) ([]*entity.InventoryMovement, error) {
	query := `
		SELECT id, transaction_id, ingredient_id, branch_id, type, quantity, unit_cost, total_cost, moved_at, created_by
		FROM ingredient_movements
		WHERE moved_at >= $1 AND moved_at < $2 AND ($3::text = '' OR type = $3)
		ORDER BY moved_at`
	rows, err := r.q.Query(ctx, query, start, end, kind)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	list := []*entity.InventoryMovement{}
	for rows.Next() {
		var m entity.InventoryMovement
		var branchID, createdBy *string
		if err := rows.Scan(&m.ID, &m.TransactionID, &m.IngredientID, &branchID, &m.Type,
			&m.Quantity, &m.UnitCost, &m.TotalCost, &m.Date, &createdBy); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.BranchID = derefStr(branchID)
		m.CreatedBy = derefStr(createdBy)
		list = append(list, &m)
	}
	return list, rows.Err()
}
