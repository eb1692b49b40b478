package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/cazuela-chapina-api/internal/application/dto"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/inventory"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/repository"
	"github.com/jhoicas/cazuela-chapina-api/pkg/money"
)

// IngredientUseCase alta, consulta y reportes de insumos.
type IngredientUseCase struct {
	ingredients    repository.IngredientRepository
	movements      repository.InventoryMovementRepository
	currencyPrefix string
	now            func() time.Time
}

// NewIngredientUseCase construye el caso de uso.
func NewIngredientUseCase(
	ingredients repository.IngredientRepository,
	movements repository.InventoryMovementRepository,
	currencyPrefix string,
) *IngredientUseCase {
	return &IngredientUseCase{
		ingredients:    ingredients,
		movements:      movements,
		currencyPrefix: currencyPrefix,
		now:            time.Now,
	}
}

func validateIngredient(in dto.IngredientRequest) error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Unit) == "" {
		return domain.ErrInvalidInput
	}
	if !entity.ValidIngredientCategory(in.Category) {
		return domain.ErrInvalidInput
	}
	if in.MinStock.IsNegative() || in.MaxStock.IsNegative() {
		return domain.ErrInvalidQuantity
	}
	if in.MaxStock.IsPositive() && in.MaxStock.LessThan(in.MinStock) {
		return domain.ErrInvalidInput
	}
	if in.UnitCost.IsNegative() {
		return domain.ErrInvalidPrice
	}
	return nil
}

// Create registra un insumo con existencia cero; la existencia entra por movimientos.
func (uc *IngredientUseCase) Create(ctx context.Context, in dto.IngredientRequest) (*dto.IngredientResponse, error) {
	if err := validateIngredient(in); err != nil {
		return nil, err
	}
	now := uc.now()
	ing := &entity.Ingredient{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		Category:  in.Category,
		Unit:      strings.TrimSpace(in.Unit),
		MinStock:  in.MinStock,
		MaxStock:  in.MaxStock,
		UnitCost:  in.UnitCost,
		Supplier:  strings.TrimSpace(in.Supplier),
		ExpiresAt: in.ExpiresAt,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.ingredients.Create(ctx, ing); err != nil {
		return nil, err
	}
	out := toIngredientResponse(inventory.BuildReport([]*entity.Ingredient{ing}, now).Items[0])
	return &out, nil
}

// Update modifica los datos maestros; la existencia y el costo promedio no se tocan aquí.
func (uc *IngredientUseCase) Update(ctx context.Context, id string, in dto.IngredientRequest) (*dto.IngredientResponse, error) {
	if err := validateIngredient(in); err != nil {
		return nil, err
	}
	ing, err := uc.ingredients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}
	ing.Name = strings.TrimSpace(in.Name)
	ing.Category = in.Category
	ing.Unit = strings.TrimSpace(in.Unit)
	ing.MinStock = in.MinStock
	ing.MaxStock = in.MaxStock
	ing.Supplier = strings.TrimSpace(in.Supplier)
	ing.ExpiresAt = in.ExpiresAt
	ing.UpdatedAt = uc.now()
	if err := uc.ingredients.Update(ctx, ing); err != nil {
		return nil, err
	}
	out := toIngredientResponse(inventory.BuildReport([]*entity.Ingredient{ing}, ing.UpdatedAt).Items[0])
	return &out, nil
}

// Get devuelve un insumo con su estado calculado.
func (uc *IngredientUseCase) Get(ctx context.Context, id string) (*dto.IngredientResponse, error) {
	ing, err := uc.ingredients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}
	out := toIngredientResponse(inventory.BuildReport([]*entity.Ingredient{ing}, uc.now()).Items[0])
	return &out, nil
}

// List devuelve todos los insumos con su estado calculado.
func (uc *IngredientUseCase) List(ctx context.Context) ([]dto.IngredientResponse, error) {
	items, err := uc.ingredients.List(ctx)
	if err != nil {
		return nil, err
	}
	r := inventory.BuildReport(items, uc.now())
	out := make([]dto.IngredientResponse, 0, len(r.Items))
	for _, it := range r.Items {
		out = append(out, toIngredientResponse(it))
	}
	return out, nil
}

// Report resumen del inventario: estados, valor total y valor por categoría y proveedor.
func (uc *IngredientUseCase) Report(ctx context.Context) (*dto.InventoryReportDTO, error) {
	items, err := uc.ingredients.List(ctx)
	if err != nil {
		return nil, err
	}
	r := inventory.BuildReport(items, uc.now())
	out := &dto.InventoryReportDTO{
		Items:         make([]dto.IngredientResponse, 0, len(r.Items)),
		TotalValue:    r.TotalValue,
		TotalLabel:    money.FormatCurrency(uc.currencyPrefix, r.TotalValue),
		ByCategory:    toGroups(r.ByCategory),
		BySupplier:    toGroups(r.BySupplier),
		CriticalCount: r.CriticalCount,
		LowCount:      r.LowCount,
		ExpiringCount: r.ExpiringCount,
		ExpiredCount:  r.ExpiredCount,
	}
	for _, it := range r.Items {
		out.Items = append(out.Items, toIngredientResponse(it))
	}
	return out, nil
}

// Waste mermas por insumo en [start, end), de mayor a menor cantidad.
func (uc *IngredientUseCase) Waste(ctx context.Context, start, end time.Time) ([]dto.WasteDTO, error) {
	if !start.Before(end) {
		return nil, domain.ErrInvalidInput
	}
	movs, err := uc.movements.ListBetween(ctx, entity.MovementMerma, start, end)
	if err != nil {
		return nil, err
	}
	names, err := uc.names(ctx)
	if err != nil {
		return nil, err
	}
	waste := inventory.WasteByIngredient(movs)
	out := make([]dto.WasteDTO, 0, len(waste))
	for _, w := range waste {
		out = append(out, dto.WasteDTO{
			IngredientID: w.IngredientID,
			Name:         names[w.IngredientID],
			Quantity:     w.Quantity,
			Cost:         w.Cost,
		})
	}
	return out, nil
}

func (uc *IngredientUseCase) names(ctx context.Context) (map[string]string, error) {
	items, err := uc.ingredients.List(ctx)
	if err != nil {
		return nil, err
	}
	m := make(map[string]string, len(items))
	for _, it := range items {
		m[it.ID] = it.Name
	}
	return m, nil
}

func toIngredientResponse(st inventory.ItemStatus) dto.IngredientResponse {
	ing := st.Ingredient
	return dto.IngredientResponse{
		ID:           ing.ID,
		Name:         ing.Name,
		Category:     ing.Category,
		Unit:         ing.Unit,
		CurrentStock: ing.CurrentStock,
		MinStock:     ing.MinStock,
		MaxStock:     ing.MaxStock,
		UnitCost:     ing.UnitCost,
		Supplier:     ing.Supplier,
		ExpiresAt:    ing.ExpiresAt,
		Status:       st.Status,
		Percentage:   st.Percentage,
		Expiry:       st.Expiry,
		Value:        st.Value,
	}
}

func toGroups(gs []inventory.GroupValue) []dto.GroupValueDTO {
	out := make([]dto.GroupValueDTO, 0, len(gs))
	for _, g := range gs {
		out = append(out, dto.GroupValueDTO{Key: g.Key, Value: g.Value})
	}
	return out
}
