package usecase

import (
	"context"

	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de repositorio
// ──────────────────────────────────────────────────────────────────────────────

type fakeVariantRepo struct {
	items map[string]*entity.Variant
	order []string
}

func newFakeVariantRepo(vs ...*entity.Variant) *fakeVariantRepo {
	r := &fakeVariantRepo{items: map[string]*entity.Variant{}}
	for _, v := range vs {
		_ = r.Create(context.Background(), v)
	}
	return r
}

func (r *fakeVariantRepo) Create(_ context.Context, v *entity.Variant) error {
	r.items[v.ID] = v
	r.order = append(r.order, v.ID)
	return nil
}

func (r *fakeVariantRepo) GetByID(_ context.Context, id string) (*entity.Variant, error) {
	return r.items[id], nil
}

func (r *fakeVariantRepo) GetByIDs(_ context.Context, ids []string) ([]*entity.Variant, error) {
	var out []*entity.Variant
	for _, id := range ids {
		if v, ok := r.items[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeVariantRepo) List(_ context.Context, cat entity.Category, activeOnly bool) ([]*entity.Variant, error) {
	var out []*entity.Variant
	for _, id := range r.order {
		v := r.items[id]
		if cat != "" && v.Category != cat {
			continue
		}
		if activeOnly && !v.Active {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (r *fakeVariantRepo) Update(_ context.Context, v *entity.Variant) error {
	r.items[v.ID] = v
	return nil
}

type fakeComboRepo struct {
	items map[string]*entity.Combo
}

func newFakeComboRepo() *fakeComboRepo { return &fakeComboRepo{items: map[string]*entity.Combo{}} }

func (r *fakeComboRepo) Create(_ context.Context, c *entity.Combo) error {
	r.items[c.ID] = c
	return nil
}

func (r *fakeComboRepo) GetByID(_ context.Context, id string) (*entity.Combo, error) {
	return r.items[id], nil
}

func (r *fakeComboRepo) List(_ context.Context, activeOnly bool) ([]*entity.Combo, error) {
	var out []*entity.Combo
	for _, c := range r.items {
		if activeOnly && !c.Active {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeComboRepo) SetActive(_ context.Context, id string, active bool) error {
	if c, ok := r.items[id]; ok {
		c.Active = active
	}
	return nil
}
