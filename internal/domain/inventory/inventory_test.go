package inventory

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCostCalculator_PromedioPonderado(t *testing.T) {
	// 10 lb a Q4 + 10 lb a Q6 → Q5
	got := CostCalculator(dec("10"), dec("4"), dec("10"), dec("6"))
	assert.True(t, got.Equal(dec("5")), got.String())
}

func TestCostCalculator_SinStockDevuelveCostoEntrada(t *testing.T) {
	got := CostCalculator(decimal.Zero, decimal.Zero, dec("3"), dec("7.25"))
	assert.True(t, got.Equal(dec("7.25")))
	assert.True(t, CostCalculator(decimal.Zero, dec("1"), decimal.Zero, dec("1")).IsZero())
}

func TestStockStatus(t *testing.T) {
	assert.Equal(t, StatusCritical, StockStatus(dec("10"), dec("10")))
	assert.Equal(t, StatusLow, StockStatus(dec("15"), dec("10")))
	assert.Equal(t, StatusOK, StockStatus(dec("15.01"), dec("10")))
}

func TestStockPercentage(t *testing.T) {
	assert.True(t, StockPercentage(dec("25"), dec("50")).Equal(dec("50")))
	assert.True(t, StockPercentage(dec("80"), dec("50")).Equal(dec("100")))
	assert.True(t, StockPercentage(dec("5"), decimal.Zero).IsZero())
}

func TestExpiryState(t *testing.T) {
	now := time.Date(2026, 3, 18, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	soon := now.AddDate(0, 0, 3)
	later := now.AddDate(0, 1, 0)

	assert.Equal(t, ExpiryExpired, ExpiryState(&past, now))
	assert.Equal(t, ExpirySoon, ExpiryState(&soon, now))
	assert.Equal(t, ExpiryNone, ExpiryState(&later, now))
	assert.Equal(t, ExpiryNone, ExpiryState(nil, now))
}

func TestBuildReport(t *testing.T) {
	now := time.Date(2026, 3, 18, 12, 0, 0, 0, time.UTC)
	soon := now.AddDate(0, 0, 2)
	items := []*entity.Ingredient{
		{ID: "masa", Category: entity.IngredientMasa, CurrentStock: dec("50"), MinStock: dec("20"), MaxStock: dec("100"), UnitCost: dec("2"), Supplier: "Molino"},
		{ID: "pollo", Category: entity.IngredientCarne, CurrentStock: dec("5"), MinStock: dec("10"), MaxStock: dec("40"), UnitCost: dec("15"), Supplier: "Granja", ExpiresAt: &soon},
		{ID: "sal", Category: entity.IngredientCondimento, CurrentStock: dec("12"), MinStock: dec("10"), MaxStock: dec("20"), UnitCost: dec("1")},
	}

	r := BuildReport(items, now)
	require.Len(t, r.Items, 3)
	assert.True(t, r.TotalValue.Equal(dec("187")))
	assert.Equal(t, 1, r.CriticalCount)
	assert.Equal(t, 1, r.LowCount)
	assert.Equal(t, 1, r.ExpiringCount)
	assert.Equal(t, entity.IngredientMasa, r.ByCategory[0].Key)
	assert.Equal(t, "sin proveedor", r.BySupplier[2].Key)
}

func TestWasteByIngredient(t *testing.T) {
	movs := []*entity.InventoryMovement{
		{IngredientID: "pollo", Type: entity.MovementMerma, Quantity: dec("-1.2"), TotalCost: dec("-18")},
		{IngredientID: "masa", Type: entity.MovementMerma, Quantity: dec("-2.5"), TotalCost: dec("-5")},
		{IngredientID: "masa", Type: entity.MovementCoccion, Quantity: dec("-20")},
		{IngredientID: "pollo", Type: entity.MovementMerma, Quantity: dec("-0.3"), TotalCost: dec("-4.5")},
	}

	w := WasteByIngredient(movs)
	require.Len(t, w, 2)
	assert.Equal(t, "masa", w[0].IngredientID)
	assert.True(t, w[1].Quantity.Equal(dec("1.5")))
	assert.True(t, w[1].Cost.Equal(dec("22.5")))
	assert.NotNil(t, WasteByIngredient(nil))
}
