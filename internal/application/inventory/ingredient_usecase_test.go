package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cazuela-chapina-api/internal/application/dto"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/inventory"
)

func newIngredientFixture() (*IngredientUseCase, *fakeIngredients, *fakeMovements) {
	_, ings, movs := newInventoryFixture()
	uc := NewIngredientUseCase(ings, movs, "Q")
	uc.now = func() time.Time { return fixedNow }
	return uc, ings, movs
}

func TestIngredient_CreateYValidaciones(t *testing.T) {
	uc, ings, _ := newIngredientFixture()
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.IngredientRequest{
		Name: " Hoja de plátano ", Category: entity.IngredientEmpaque, Unit: "unidad",
		MinStock: dec("100"), MaxStock: dec("500"), UnitCost: dec("0.25"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Hoja de plátano", out.Name)
	assert.Equal(t, inventory.StatusCritical, out.Status, "se crea sin existencia")
	assert.Contains(t, ings.items, out.ID)

	_, err = uc.Create(ctx, dto.IngredientRequest{Name: "X", Category: "juguetes", Unit: "u"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.IngredientRequest{Name: "X", Category: entity.IngredientMasa, Unit: "u", MinStock: dec("10"), MaxStock: dec("5")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.IngredientRequest{Name: "X", Category: entity.IngredientMasa, Unit: "u", UnitCost: dec("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestIngredient_UpdateNoTocaExistencia(t *testing.T) {
	uc, ings, _ := newIngredientFixture()

	out, err := uc.Update(context.Background(), "masa", dto.IngredientRequest{
		Name: "Masa nixtamalizada", Category: entity.IngredientMasa, Unit: "lb",
		MinStock: dec("2"), MaxStock: dec("40"), UnitCost: dec("999"), Supplier: "Molino Central",
	})
	require.NoError(t, err)
	assert.Equal(t, "Masa nixtamalizada", out.Name)
	assert.True(t, ings.items["masa"].CurrentStock.Equal(dec("10")))
	assert.True(t, ings.items["masa"].UnitCost.Equal(dec("4")))

	_, err = uc.Update(context.Background(), "nada", dto.IngredientRequest{Name: "X", Category: entity.IngredientMasa, Unit: "u"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIngredient_Report(t *testing.T) {
	uc, _, _ := newIngredientFixture()

	r, err := uc.Report(context.Background())
	require.NoError(t, err)
	require.Len(t, r.Items, 2)
	// masa 10*4=40, cerdo 3*20=60
	assert.True(t, r.TotalValue.Equal(dec("100")))
	assert.Equal(t, "Q100.00", r.TotalLabel)
	assert.Equal(t, 1, r.CriticalCount)
	assert.Equal(t, 0, r.LowCount)
	require.Len(t, r.ByCategory, 2)
	assert.Equal(t, entity.IngredientCarne, r.ByCategory[0].Key)
}

func TestIngredient_Waste(t *testing.T) {
	uc, _, movs := newIngredientFixture()
	ctx := context.Background()
	movs.items = []*entity.InventoryMovement{
		{IngredientID: "masa", Type: entity.MovementMerma, Quantity: dec("-1"), TotalCost: dec("-4"), Date: fixedNow.Add(-time.Hour)},
		{IngredientID: "cerdo", Type: entity.MovementMerma, Quantity: dec("-2"), TotalCost: dec("-40"), Date: fixedNow.Add(-time.Hour)},
		{IngredientID: "masa", Type: entity.MovementCoccion, Quantity: dec("-5"), Date: fixedNow.Add(-time.Hour)},
		{IngredientID: "masa", Type: entity.MovementMerma, Quantity: dec("-9"), Date: fixedNow.AddDate(0, 0, -40)},
	}

	out, err := uc.Waste(ctx, fixedNow.AddDate(0, 0, -7), fixedNow)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Carne de cerdo", out[0].Name)
	assert.True(t, out[0].Quantity.Equal(dec("2")))
	assert.True(t, out[1].Cost.Equal(dec("4")))

	_, err = uc.Waste(ctx, fixedNow, fixedNow)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReplenishment(t *testing.T) {
	_, ings, movs := newInventoryFixture()
	ings.items["masa"].CurrentStock = dec("7") // bajo: 7 <= 7.5
	movs.items = []*entity.InventoryMovement{
		{IngredientID: "masa", Type: entity.MovementMerma, Quantity: dec("-3"), Date: fixedNow.AddDate(0, 0, -2)},
	}
	uc := NewReplenishmentUseCase(ings, movs)
	uc.now = func() time.Time { return fixedNow }

	out, err := uc.GenerateReplenishmentList(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "cerdo", out[0].IngredientID, "crítico primero")
	assert.Equal(t, 1, out[0].Priority)
	assert.True(t, out[0].SuggestedQty.Equal(dec("17")))
	assert.True(t, out[0].EstimatedCost.Equal(dec("340")))

	assert.Equal(t, "masa", out[1].IngredientID)
	assert.Equal(t, inventory.StatusLow, out[1].Status)
	assert.True(t, out[1].WasteLast30Days.Equal(dec("3")))
}
