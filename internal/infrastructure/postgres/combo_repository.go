package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cazuela-chapina-api/internal/domain"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/repository"
)

var _ repository.ComboRepository = (*ComboRepo)(nil)

// ComboRepo implementación de ComboRepository sobre combos + combo_items.
type ComboRepo struct {
	q Querier
}

// NewComboRepository construye el adaptador. Pasar pool o tx (Querier).
func NewComboRepository(q Querier) *ComboRepo {
	return &ComboRepo{q: q}
}

// Create persiste la cabecera y sus componentes. Llamar dentro de una tx si se requiere atomicidad;
// con pool se usa un batch para enviar todo en un solo viaje.
func (r *ComboRepo) Create(ctx context.Context, c *entity.Combo) error {
	batch := &pgx.Batch{}
	batch.Queue(`
		INSERT INTO combos (id, name, description, bundle_price, original_price, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.Name, c.Description, c.BundlePrice, c.OriginalPrice, c.Active, c.CreatedAt, c.UpdatedAt)
	for i, it := range c.Items {
		batch.Queue(`
			INSERT INTO combo_items (combo_id, line_no, variant_id, quantity)
			VALUES ($1, $2, $3, $4)`,
			c.ID, i+1, it.VariantID, it.Quantity)
	}
	if err := r.sendBatch(ctx, batch); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert combo: %w", err)
	}
	return nil
}

func (r *ComboRepo) sendBatch(ctx context.Context, b *pgx.Batch) error {
	type batcher interface {
		SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
	}
	if sb, ok := r.q.(batcher); ok {
		return sb.SendBatch(ctx, b).Close()
	}
	for _, qq := range b.QueuedQueries {
		if _, err := r.q.Exec(ctx, qq.SQL, qq.Arguments...); err != nil {
			return err
		}
	}
	return nil
}

// GetByID obtiene un combo con sus componentes; nil si no existe.
func (r *ComboRepo) GetByID(ctx context.Context, id string) (*entity.Combo, error) {
	var c entity.Combo
	var desc *string
	err := r.q.QueryRow(ctx, `
		SELECT id, name, description, bundle_price, original_price, active, created_at, updated_at
		FROM combos WHERE id = $1`, id).Scan(
		&c.ID, &c.Name, &desc, &c.BundlePrice, &c.OriginalPrice, &c.Active, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get combo: %w", err)
	}
	c.Description = derefStr(desc)
	items, err := r.items(ctx, []string{c.ID})
	if err != nil {
		return nil, err
	}
	c.Items = items[c.ID]
	return &c, nil
}

// List lista combos (todos o solo activos) con sus componentes.
func (r *ComboRepo) List(ctx context.Context, activeOnly bool) ([]*entity.Combo, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, name, description, bundle_price, original_price, active, created_at, updated_at
		FROM combos WHERE (NOT $1 OR active) ORDER BY name`, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list combos: %w", err)
	}
	defer rows.Close()
	list := []*entity.Combo{}
	var ids []string
	for rows.Next() {
		var c entity.Combo
		var desc *string
		if err := rows.Scan(&c.ID, &c.Name, &desc, &c.BundlePrice, &c.OriginalPrice, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan combo: %w", err)
		}
		c.Description = derefStr(desc)
		list = append(list, &c)
		ids = append(ids, c.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}
	items, err := r.items(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, c := range list {
		c.Items = items[c.ID]
	}
	return list, nil
}

func (r *ComboRepo) items(ctx context.Context, comboIDs []string) (map[string][]entity.ComboItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT combo_id, variant_id, quantity
		FROM combo_items WHERE combo_id = ANY($1) ORDER BY combo_id, line_no`, comboIDs)
	if err != nil {
		return nil, fmt.Errorf("list combo items: %w", err)
	}
	defer rows.Close()
	out := make(map[string][]entity.ComboItem, len(comboIDs))
	for rows.Next() {
		var comboID string
		var it entity.ComboItem
		if err := rows.Scan(&comboID, &it.VariantID, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan combo item: %w", err)
		}
		out[comboID] = append(out[comboID], it)
	}
	return out, rows.Err()
}

// SetActive activa o desactiva un combo.
func (r *ComboRepo) SetActive(ctx context.Context, id string, active bool) error {
	cmd, err := r.q.Exec(ctx, `UPDATE combos SET active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("set combo active: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
