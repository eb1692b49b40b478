package repository

import (
	"context"

	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
)

// UserRepository empleados con acceso.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
