package repository

import (
	"context"

	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
)

// BranchRepository sucursales.
type BranchRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Branch, error)
	List(ctx context.Context) ([]*entity.Branch, error)
}
