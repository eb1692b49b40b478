package repository

import (
	"context"

	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
)

// VariantRepository puerto de persistencia del catálogo.
type VariantRepository interface {
	Create(ctx context.Context, v *entity.Variant) error
	GetByID(ctx context.Context, id string) (*entity.Variant, error)
	// GetByIDs devuelve las variantes encontradas; los IDs inexistentes se omiten.
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Variant, error)
	// List devuelve el catálogo; category vacío = todas.
	List(ctx context.Context, category entity.Category, activeOnly bool) ([]*entity.Variant, error)
	Update(ctx context.Context, v *entity.Variant) error
}
