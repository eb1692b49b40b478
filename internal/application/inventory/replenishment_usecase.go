package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cazuela-chapina-api/internal/application/dto"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/inventory"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/repository"
)

// ReplenishmentUseCase genera la lista de compra de insumos para cocina.
// Combina el estado de existencia con la merma reciente para priorizar.
type ReplenishmentUseCase struct {
	ingredients repository.IngredientRepository
	movements   repository.InventoryMovementRepository
	now         func() time.Time
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(
	ingredients repository.IngredientRepository,
	movements repository.InventoryMovementRepository,
) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{ingredients: ingredients, movements: movements, now: time.Now}
}

var idealFactor = decimal.RequireFromString("1.5")

// GenerateReplenishmentList devuelve los insumos en estado crítico o bajo con la cantidad
// sugerida para llegar al máximo (o a 1.5 x mínimo si no hay máximo).
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context) ([]dto.ReplenishmentSuggestionDTO, error) {
	// 1. Insumos bajo el nivel de alerta
	items, err := uc.ingredients.List(ctx)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	var low []*entity.Ingredient
	for _, ing := range items {
		if inventory.StockStatus(ing.CurrentStock, ing.MinStock) != inventory.StatusOK {
			low = append(low, ing)
		}
	}
	if len(low) == 0 {
		return []dto.ReplenishmentSuggestionDTO{}, nil
	}

	// 2. Merma de los últimos 30 días; si falla se prioriza solo por existencia
	wasteByID := map[string]decimal.Decimal{}
	if movs, err := uc.movements.ListBetween(ctx, entity.MovementMerma, now.AddDate(0, 0, -30), now); err == nil {
		for _, w := range inventory.WasteByIngredient(movs) {
			wasteByID[w.IngredientID] = w.Quantity
		}
	}

	// 3. Construir sugerencias
	out := make([]dto.ReplenishmentSuggestionDTO, 0, len(low))
	for _, ing := range low {
		ideal := ing.MaxStock
		if !ideal.IsPositive() {
			ideal = ing.MinStock.Mul(idealFactor)
		}
		qty := ideal.Sub(ing.CurrentStock)
		if qty.IsNegative() {
			qty = decimal.Zero
		}
		out = append(out, dto.ReplenishmentSuggestionDTO{
			IngredientID:    ing.ID,
			Name:            ing.Name,
			Supplier:        ing.Supplier,
			Status:          inventory.StockStatus(ing.CurrentStock, ing.MinStock),
			CurrentStock:    ing.CurrentStock,
			MinStock:        ing.MinStock,
			IdealStock:      ideal,
			SuggestedQty:    qty,
			UnitCost:        ing.UnitCost,
			EstimatedCost:   qty.Mul(ing.UnitCost).Round(2),
			WasteLast30Days: wasteByID[ing.ID],
		})
	}

	// 4. Ordenar: críticos primero, luego mayor merma, luego mayor cantidad sugerida
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Status != b.Status {
			return a.Status == inventory.StatusCritical
		}
		if !a.WasteLast30Days.Equal(b.WasteLast30Days) {
			return a.WasteLast30Days.GreaterThan(b.WasteLast30Days)
		}
		return a.SuggestedQty.GreaterThan(b.SuggestedQty)
	})

	// 5. Prioridad (1 = más urgente)
	for i := range out {
		out[i].Priority = i + 1
	}
	return out, nil
}
