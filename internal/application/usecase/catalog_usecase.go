package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/cazuela-chapina-api/internal/application/dto"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/repository"
)

// CatalogUseCase casos de uso CRUD para variantes del catálogo.
type CatalogUseCase struct {
	repo repository.VariantRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.VariantRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// CreateVariant valida categoría, presentación y montos y persiste la variante.
func (uc *CatalogUseCase) CreateVariant(ctx context.Context, in dto.CreateVariantRequest) (*dto.VariantResponse, error) {
	name := strings.TrimSpace(in.ProductName)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	cat, err := entity.ParseCategory(in.Category)
	if err != nil {
		return nil, err
	}
	if in.Presentation == "" {
		in.Presentation = entity.PresentationUnit
	}
	if !entity.ValidPresentation(in.Presentation) {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() || (in.Cost != nil && in.Cost.IsNegative()) {
		return nil, domain.ErrInvalidPrice
	}
	now := time.Now()
	v := &entity.Variant{
		ID:           uuid.New().String(),
		ProductName:  name,
		Category:     cat,
		Presentation: in.Presentation,
		Price:        in.Price,
		Cost:         in.Cost,
		Attributes:   in.Attributes,
		ImageURL:     in.ImageURL,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return ToVariantResponse(v), nil
}

// GetVariant devuelve ErrNotFound si no existe.
func (uc *CatalogUseCase) GetVariant(ctx context.Context, id string) (*dto.VariantResponse, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	return ToVariantResponse(v), nil
}

// ListVariants lista el catálogo; category vacío = todas.
func (uc *CatalogUseCase) ListVariants(ctx context.Context, category string, activeOnly bool) ([]dto.VariantResponse, error) {
	var cat entity.Category
	if category != "" {
		c, err := entity.ParseCategory(category)
		if err != nil {
			return nil, err
		}
		cat = c
	}
	list, err := uc.repo.List(ctx, cat, activeOnly)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VariantResponse, 0, len(list))
	for _, v := range list {
		out = append(out, *ToVariantResponse(v))
	}
	return out, nil
}

// UpdateVariant aplica solo los campos informados.
func (uc *CatalogUseCase) UpdateVariant(ctx context.Context, id string, in dto.UpdateVariantRequest) (*dto.VariantResponse, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	if in.ProductName != nil {
		name := strings.TrimSpace(*in.ProductName)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		v.ProductName = name
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidPrice
		}
		v.Price = *in.Price
	}
	if in.Cost != nil {
		if in.Cost.IsNegative() {
			return nil, domain.ErrInvalidPrice
		}
		c := *in.Cost
		v.Cost = &c
	}
	if in.Attributes != nil {
		v.Attributes = in.Attributes
	}
	if in.ImageURL != nil {
		v.ImageURL = *in.ImageURL
	}
	if in.Active != nil {
		v.Active = *in.Active
	}
	v.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return ToVariantResponse(v), nil
}

// ToVariantResponse mapea la entidad al DTO público.
func ToVariantResponse(v *entity.Variant) *dto.VariantResponse {
	return &dto.VariantResponse{
		ID:           v.ID,
		ProductName:  v.ProductName,
		DisplayName:  v.DisplayName(),
		Category:     string(v.Category),
		Presentation: v.Presentation,
		Price:        v.Price,
		Cost:         v.Cost,
		Attributes:   v.Attributes,
		ImageURL:     v.ImageURL,
		Spicy:        v.IsSpicy(),
		Active:       v.Active,
		UpdatedAt:    v.UpdatedAt,
	}
}
