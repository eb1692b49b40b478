package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/repository"
)

var _ repository.BranchRepository = (*BranchRepo)(nil)

// BranchRepo sucursales (solo lectura; se cargan por migración o seed).
type BranchRepo struct {
	pool *pgxpool.Pool
}

// NewBranchRepository construye el adaptador.
func NewBranchRepository(pool *pgxpool.Pool) *BranchRepo {
	return &BranchRepo{pool: pool}
}

// GetByID obtiene una sucursal; nil si no existe.
func (r *BranchRepo) GetByID(ctx context.Context, id string) (*entity.Branch, error) {
	var b entity.Branch
	var address *string
	err := r.pool.QueryRow(ctx, `SELECT id, name, address, created_at FROM branches WHERE id = $1`, id).
		Scan(&b.ID, &b.Name, &address, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch: %w", err)
	}
	b.Address = derefStr(address)
	return &b, nil
}

// List lista las sucursales por nombre.
func (r *BranchRepo) List(ctx context.Context) ([]*entity.Branch, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, address, created_at FROM branches ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer rows.Close()
	list := []*entity.Branch{}
	for rows.Next() {
		var b entity.Branch
		var address *string
		if err := rows.Scan(&b.ID, &b.Name, &address, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		b.Address = derefStr(address)
		list = append(list, &b)
	}
	return list, rows.Err()
}
