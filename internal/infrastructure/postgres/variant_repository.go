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

var _ repository.VariantRepository = (*VariantRepo)(nil)

// VariantRepo implementación de VariantRepository (usable con pool o tx).
// Los atributos libres (relleno, masa, chile, ...) se guardan en una columna JSONB.
type VariantRepo struct {
	q Querier
}

// NewVariantRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVariantRepository(q Querier) *VariantRepo {
	return &VariantRepo{q: q}
}

const variantColumns = `id, product_name, category, presentation, price, cost, attributes, image_url, active, created_at, updated_at`

func scanVariant(row pgx.Row) (*entity.Variant, error) {
	var v entity.Variant
	var category string
	var imageURL *string
	if err := row.Scan(&v.ID, &v.ProductName, &category, &v.Presentation, &v.Price, &v.Cost,
		&v.Attributes, &imageURL, &v.Active, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	v.Category = entity.Category(category)
	v.ImageURL = derefStr(imageURL)
	if v.Attributes == nil {
		v.Attributes = map[string]string{}
	}
	return &v, nil
}

// Create persiste una variante.
func (r *VariantRepo) Create(ctx context.Context, v *entity.Variant) error {
	query := `
		INSERT INTO variants (` + variantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	attrs := v.Attributes
	if attrs == nil {
		attrs = map[string]string{}
	}
	_, err := r.q.Exec(ctx, query,
		v.ID, v.ProductName, string(v.Category), v.Presentation, v.Price, v.Cost,
		attrs, nullIfEmpty(v.ImageURL), v.Active, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert variant: %w", err)
	}
	return nil
}

// GetByID obtiene una variante por ID; nil si no existe.
func (r *VariantRepo) GetByID(ctx context.Context, id string) (*entity.Variant, error) {
	v, err := scanVariant(r.q.QueryRow(ctx, `SELECT `+variantColumns+` FROM variants WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get variant: %w", err)
	}
	return v, nil
}

// GetByIDs obtiene las variantes existentes entre ids; las ausentes se omiten.
func (r *VariantRepo) GetByIDs(ctx context.Context, ids []string) ([]*entity.Variant, error) {
	if len(ids) == 0 {
		return []*entity.Variant{}, nil
	}
	rows, err := r.q.Query(ctx, `SELECT `+variantColumns+` FROM variants WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("list variants by ids: %w", err)
	}
	return collectVariants(rows)
}

// List lista variantes; category vacía = todas.
func (r *VariantRepo) List(ctx context.Context, category entity.Category, activeOnly bool) ([]*entity.Variant, error) {
	query := `
		SELECT ` + variantColumns + `
		FROM variants
		WHERE ($1 = '' OR category = $1) AND (NOT $2 OR active)
		ORDER BY category, product_name, presentation`
	rows, err := r.q.Query(ctx, query, string(category), activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list variants: %w", err)
	}
	return collectVariants(rows)
}

func collectVariants(rows pgx.Rows) ([]*entity.Variant, error) {
	defer rows.Close()
	list := []*entity.Variant{}
	for rows.Next() {
		v, err := scanVariant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan variant: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// Update actualiza los datos de una variante existente.
func (r *VariantRepo) Update(ctx context.Context, v *entity.Variant) error {
	query := `
		UPDATE variants
		SET product_name = $2, category = $3, presentation = $4, price = $5, cost = $6,
		    attributes = $7, image_url = $8, active = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		v.ID, v.ProductName, string(v.Category), v.Presentation, v.Price, v.Cost,
		v.Attributes, nullIfEmpty(v.ImageURL), v.Active, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update variant: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
