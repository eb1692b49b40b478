package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cazuela-chapina-api/internal/application/dto"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/repository"
)

// ComboUseCase armado y administración de combos.
type ComboUseCase struct {
	combos   repository.ComboRepository
	variants repository.VariantRepository
}

// NewComboUseCase construye el caso de uso.
func NewComboUseCase(combos repository.ComboRepository, variants repository.VariantRepository) *ComboUseCase {
	return &ComboUseCase{combos: combos, variants: variants}
}

// Create valida los componentes contra el catálogo y calcula el precio original
// (suma de precio x cantidad de cada componente).
func (uc *ComboUseCase) Create(ctx context.Context, in dto.CreateComboRequest) (*dto.ComboResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.BundlePrice.IsNegative() {
		return nil, domain.ErrInvalidPrice
	}

	qty := map[string]int{}
	var order []string
	for _, it := range in.Items {
		if it.VariantID == "" {
			return nil, domain.ErrInvalidInput
		}
		if it.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
		if _, seen := qty[it.VariantID]; !seen {
			order = append(order, it.VariantID)
		}
		qty[it.VariantID] += it.Quantity
	}

	variants, err := uc.variants.GetByIDs(ctx, order)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Variant, len(variants))
	for _, v := range variants {
		byID[v.ID] = v
	}

	original := decimal.Zero
	items := make([]entity.ComboItem, 0, len(order))
	for _, id := range order {
		v, ok := byID[id]
		if !ok {
			return nil, domain.ErrNotFound
		}
		original = original.Add(v.Price.Mul(decimal.NewFromInt(int64(qty[id]))))
		items = append(items, entity.ComboItem{VariantID: id, Quantity: qty[id]})
	}

	now := time.Now()
	c := &entity.Combo{
		ID:            uuid.New().String(),
		Name:          name,
		Description:   in.Description,
		Items:         items,
		BundlePrice:   in.BundlePrice,
		OriginalPrice: original,
		Active:        in.Active,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.combos.Create(ctx, c); err != nil {
		return nil, err
	}
	return toComboResponse(c), nil
}

// Get devuelve ErrNotFound si no existe.
func (uc *ComboUseCase) Get(ctx context.Context, id string) (*dto.ComboResponse, error) {
	c, err := uc.combos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toComboResponse(c), nil
}

// List combos; activeOnly filtra los inactivos.
func (uc *ComboUseCase) List(ctx context.Context, activeOnly bool) ([]dto.ComboResponse, error) {
	list, err := uc.combos.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ComboResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toComboResponse(c))
	}
	return out, nil
}

// ToggleActive invierte el estado activo del combo.
func (uc *ComboUseCase) ToggleActive(ctx context.Context, id string) (*dto.ComboResponse, error) {
	c, err := uc.combos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	c.Active = !c.Active
	if err := uc.combos.SetActive(ctx, id, c.Active); err != nil {
		return nil, err
	}
	return toComboResponse(c), nil
}

func toComboResponse(c *entity.Combo) *dto.ComboResponse {
	items := make([]dto.ComboItemRequest, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, dto.ComboItemRequest{VariantID: it.VariantID, Quantity: it.Quantity})
	}
	return &dto.ComboResponse{
		ID:            c.ID,
		Name:          c.Name,
		Description:   c.Description,
		Items:         items,
		BundlePrice:   c.BundlePrice,
		OriginalPrice: c.OriginalPrice,
		Savings:       c.Savings(),
		Active:        c.Active,
	}
}
