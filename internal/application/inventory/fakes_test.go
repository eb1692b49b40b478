package inventory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria; fakeTx restaura el estado si fn falla (rollback)
// ──────────────────────────────────────────────────────────────────────────────

type fakeIngredients struct {
	items map[string]*entity.Ingredient
	order []string
}

func newFakeIngredients(items ...*entity.Ingredient) *fakeIngredients {
	r := &fakeIngredients{items: map[string]*entity.Ingredient{}}
	for _, it := range items {
		_ = r.Create(context.Background(), it)
	}
	return r
}

func (r *fakeIngredients) Create(_ context.Context, i *entity.Ingredient) error {
	r.items[i.ID] = i
	r.order = append(r.order, i.ID)
	return nil
}

func (r *fakeIngredients) GetByID(_ context.Context, id string) (*entity.Ingredient, error) {
	if it, ok := r.items[id]; ok {
		cp := *it
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeIngredients) GetForUpdate(ctx context.Context, id string) (*entity.Ingredient, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeIngredients) List(_ context.Context) ([]*entity.Ingredient, error) {
	out := make([]*entity.Ingredient, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.items[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeIngredients) Update(_ context.Context, i *entity.Ingredient) error {
	cp := *i
	r.items[i.ID] = &cp
	return nil
}

func (r *fakeIngredients) UpdateStock(_ context.Context, id string, stock, unitCost decimal.Decimal) error {
	it := r.items[id]
	it.CurrentStock = stock
	it.UnitCost = unitCost
	return nil
}

func (r *fakeIngredients) snapshot() map[string]entity.Ingredient {
	m := make(map[string]entity.Ingredient, len(r.items))
	for k, v := range r.items {
		m[k] = *v
	}
	return m
}

func (r *fakeIngredients) restore(m map[string]entity.Ingredient) {
	for k, v := range m {
		cp := v
		r.items[k] = &cp
	}
}

type fakeMovements struct{ items []*entity.InventoryMovement }

func (r *fakeMovements) Create(_ context.Context, m *entity.InventoryMovement) error {
	r.items = append(r.items, m)
	return nil
}

func (r *fakeMovements) ListBetween(_ context.Context, kind string, start, end time.Time) ([]*entity.InventoryMovement, error) {
	var out []*entity.InventoryMovement
	for _, m := range r.items {
		if kind != "" && m.Type != kind {
			continue
		}
		if m.Date.Before(start) || !m.Date.Before(end) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

type fakeTx struct {
	ingredients *fakeIngredients
	movements   *fakeMovements
}

func (t fakeTx) Run(_ context.Context, fn func(repository.InventoryMovementRepository, repository.IngredientRepository) error) error {
	snap := t.ingredients.snapshot()
	nMov := len(t.movements.items)
	if err := fn(t.movements, t.ingredients); err != nil {
		t.ingredients.restore(snap)
		t.movements.items = t.movements.items[:nMov]
		return err
	}
	return nil
}
