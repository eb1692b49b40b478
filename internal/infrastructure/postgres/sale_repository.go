package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cazuela-chapina-api/internal/domain"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx). Solo inserta; las ventas no se editan.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera y las líneas. Usar con una tx (TxRunner.RunSale).
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	query := `
		INSERT INTO sales (id, branch_id, staff_id, sold_at, subtotal, tax, total, payment_method)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		s.ID, nullIfEmpty(s.BranchID), nullIfEmpty(s.StaffID), s.Timestamp,
		s.Subtotal, s.Tax, s.Total, s.PaymentMethod,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	for i, it := range s.Items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO sale_items (sale_id, line_no, item_id, name, quantity, unit_price, is_combo)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			s.ID, i+1, it.ItemID, it.Name, it.Quantity, it.UnitPrice, it.IsCombo,
		)
		if err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una venta con sus líneas; nil si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	var s entity.Sale
	var branchID, staffID *string
	err := r.q.QueryRow(ctx, `
		SELECT id, branch_id, staff_id, sold_at, subtotal, tax, total, payment_method
		FROM sales WHERE id = $1`, id).Scan(
		&s.ID, &branchID, &staffID, &s.Timestamp, &s.Subtotal, &s.Tax, &s.Total, &s.PaymentMethod,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	s.BranchID = derefStr(branchID)
	s.StaffID = derefStr(staffID)

	rows, err := r.q.Query(ctx, `
		SELECT item_id, name, quantity, unit_price, is_combo
		FROM sale_items WHERE sale_id = $1 ORDER BY line_no`, id)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ItemID, &it.Name, &it.Quantity, &it.UnitPrice, &it.IsCombo); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		s.Items = append(s.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &s, nil
}

// ListBetween ventas con sold_at en [start, end), en orden cronológico, con sus líneas.
// branchID vacío = todas las sucursales.
func (r *SaleRepo) ListBetween(ctx context.Context, branchID string, start, end time.Time) ([]entity.Sale, error) {
	query := `
		SELECT s.id, s.branch_id, s.staff_id, s.sold_at, s.subtotal, s.tax, s.total, s.payment_method,
		       i.item_id, i.name, i.quantity, i.unit_price, i.is_combo
		FROM sales s
		JOIN sale_items i ON i.sale_id = s.id
		WHERE s.sold_at >= $1 AND s.sold_at < $2
		  AND ($3::text = '' OR s.branch_id = $3)
		ORDER BY s.sold_at, s.id, i.line_no`
	rows, err := r.q.Query(ctx, query, start, end, branchID)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	out := []entity.Sale{}
	for rows.Next() {
		var s entity.Sale
		var it entity.SaleItem
		var bID, staffID *string
		if err := rows.Scan(&s.ID, &bID, &staffID, &s.Timestamp, &s.Subtotal, &s.Tax, &s.Total, &s.PaymentMethod,
			&it.ItemID, &it.Name, &it.Quantity, &it.UnitPrice, &it.IsCombo); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		if n := len(out); n > 0 && out[n-1].ID == s.ID {
			out[n-1].Items = append(out[n-1].Items, it)
			continue
		}
		s.BranchID = derefStr(bID)
		s.StaffID = derefStr(staffID)
		s.Items = []entity.SaleItem{it}
		out = append(out, s)
	}
	return out, rows.Err()
}
