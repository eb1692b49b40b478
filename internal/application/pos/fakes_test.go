package pos

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/cazuela-chapina-api/internal/application/dto"
	"github.com/jhoicas/cazuela-chapina-api/internal/application/ports"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/cart"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memCartStore struct {
	carts     map[string][]cart.Line
	deleteErr error
}

func newMemCartStore() *memCartStore { return &memCartStore{carts: map[string][]cart.Line{}} }

func (s *memCartStore) Load(_ context.Context, id string) (*cart.Cart, error) {
	return cart.FromLines(s.carts[id])
}

func (s *memCartStore) Save(_ context.Context, id string, c *cart.Cart) error {
	s.carts[id] = c.Lines()
	return nil
}

func (s *memCartStore) Delete(_ context.Context, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.carts, id)
	return nil
}

type fakeVariants struct{ items map[string]*entity.Variant }

func (r *fakeVariants) Create(_ context.Context, v *entity.Variant) error {
	r.items[v.ID] = v
	return nil
}
func (r *fakeVariants) GetByID(_ context.Context, id string) (*entity.Variant, error) {
	return r.items[id], nil
}
func (r *fakeVariants) GetByIDs(_ context.Context, ids []string) ([]*entity.Variant, error) {
	var out []*entity.Variant
	for _, id := range ids {
		if v, ok := r.items[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}
func (r *fakeVariants) List(context.Context, entity.Category, bool) ([]*entity.Variant, error) {
	return nil, nil
}
func (r *fakeVariants) Update(_ context.Context, v *entity.Variant) error {
	r.items[v.ID] = v
	return nil
}

type fakeCombos struct{ items map[string]*entity.Combo }

func (r *fakeCombos) Create(_ context.Context, c *entity.Combo) error {
	r.items[c.ID] = c
	return nil
}
func (r *fakeCombos) GetByID(_ context.Context, id string) (*entity.Combo, error) {
	return r.items[id], nil
}
func (r *fakeCombos) List(context.Context, bool) ([]*entity.Combo, error) { return nil, nil }
func (r *fakeCombos) SetActive(_ context.Context, id string, active bool) error {
	if c, ok := r.items[id]; ok {
		c.Active = active
	}
	return nil
}

type fakeSales struct {
	items     map[string]*entity.Sale
	createErr error
}

func newFakeSales() *fakeSales { return &fakeSales{items: map[string]*entity.Sale{}} }

func (r *fakeSales) Create(_ context.Context, s *entity.Sale) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.items[s.ID] = s
	return nil
}
func (r *fakeSales) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	return r.items[id], nil
}
func (r *fakeSales) ListBetween(context.Context, string, time.Time, time.Time) ([]entity.Sale, error) {
	return nil, nil
}

type fakeTx struct{ sales *fakeSales }

func (t fakeTx) RunSale(_ context.Context, fn func(repository.SaleRepository) error) error {
	return fn(t.sales)
}

type recordingPublisher struct {
	events []dto.OrderCreatedEvent
	err    error
}

func (p *recordingPublisher) PublishOrderCreated(_ context.Context, evt dto.OrderCreatedEvent) error {
	p.events = append(p.events, evt)
	return p.err
}

type fakeBranches struct{}

func (fakeBranches) GetByID(_ context.Context, id string) (*entity.Branch, error) {
	return &entity.Branch{ID: id, Name: "Zona 1", Address: "6a Avenida"}, nil
}
func (fakeBranches) List(context.Context) ([]*entity.Branch, error) { return nil, nil }

type fakeGenerator struct{ info ports.ReceiptInfo }

func (g *fakeGenerator) GenerateReceiptPDF(_ context.Context, _ *entity.Sale, info ports.ReceiptInfo) ([]byte, error) {
	g.info = info
	return []byte("%PDF-fake"), nil
}

var errBoom = errors.New("boom")
