package inventory

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
)

// Estados de existencia.
const (
	StatusCritical = "critical"
	StatusLow      = "low"
	StatusOK       = "ok"
)

// Estados de vencimiento.
const (
	ExpiryNone     = ""
	ExpirySoon     = "expiring"
	ExpiryExpired  = "expired"
	ExpiryWarnDays = 7
)

var (
	lowFactor = decimal.RequireFromString("1.5")
	hundred   = decimal.NewFromInt(100)
)

// StockStatus crítico si actual <= mínimo; bajo si actual <= 1.5 x mínimo.
func StockStatus(current, min decimal.Decimal) string {
	switch {
	case current.LessThanOrEqual(min):
		return StatusCritical
	case current.LessThanOrEqual(min.Mul(lowFactor)):
		return StatusLow
	}
	return StatusOK
}

// StockPercentage min(actual/máximo*100, 100); cero si el máximo no es positivo.
func StockPercentage(current, max decimal.Decimal) decimal.Decimal {
	if !max.IsPositive() {
		return decimal.Zero
	}
	p := current.Div(max).Mul(hundred)
	if p.GreaterThan(hundred) {
		return hundred
	}
	if p.IsNegative() {
		return decimal.Zero
	}
	return p.Round(1)
}

// ExpiryState vencido si expiresAt ya pasó; por vencer dentro de ExpiryWarnDays días.
func ExpiryState(expiresAt *time.Time, now time.Time) string {
	if expiresAt == nil {
		return ExpiryNone
	}
	if expiresAt.Before(now) {
		return ExpiryExpired
	}
	if expiresAt.Before(now.AddDate(0, 0, ExpiryWarnDays)) {
		return ExpirySoon
	}
	return ExpiryNone
}

// ItemStatus estado calculado de un insumo.
type ItemStatus struct {
	Ingredient *entity.Ingredient
	Status     string
	Percentage decimal.Decimal
	Expiry     string
	Value      decimal.Decimal
}

// GroupValue valor de inventario agrupado (categoría o proveedor).
type GroupValue struct {
	Key   string
	Value decimal.Decimal
}

// Report resumen del inventario.
type Report struct {
	Items         []ItemStatus
	TotalValue    decimal.Decimal
	ByCategory    []GroupValue
	BySupplier    []GroupValue
	CriticalCount int
	LowCount      int
	ExpiringCount int
	ExpiredCount  int
}

// BuildReport evalúa cada insumo y acumula valores por categoría y proveedor.
// Los grupos se ordenan de mayor a menor valor; empates por nombre.
func BuildReport(items []*entity.Ingredient, now time.Time) Report {
	r := Report{Items: make([]ItemStatus, 0, len(items)), TotalValue: decimal.Zero}
	byCat := map[string]decimal.Decimal{}
	bySup := map[string]decimal.Decimal{}

	for _, ing := range items {
		st := ItemStatus{
			Ingredient: ing,
			Status:     StockStatus(ing.CurrentStock, ing.MinStock),
			Percentage: StockPercentage(ing.CurrentStock, ing.MaxStock),
			Expiry:     ExpiryState(ing.ExpiresAt, now),
			Value:      ing.Value(),
		}
		switch st.Status {
		case StatusCritical:
			r.CriticalCount++
		case StatusLow:
			r.LowCount++
		}
		switch st.Expiry {
		case ExpirySoon:
			r.ExpiringCount++
		case ExpiryExpired:
			r.ExpiredCount++
		}
		r.TotalValue = r.TotalValue.Add(st.Value)
		byCat[ing.Category] = byCat[ing.Category].Add(st.Value)
		supplier := ing.Supplier
		if supplier == "" {
			supplier = "sin proveedor"
		}
		bySup[supplier] = bySup[supplier].Add(st.Value)
		r.Items = append(r.Items, st)
	}
	r.ByCategory = sortedGroups(byCat)
	r.BySupplier = sortedGroups(bySup)
	return r
}

func sortedGroups(m map[string]decimal.Decimal) []GroupValue {
	out := make([]GroupValue, 0, len(m))
	for k, v := range m {
		out = append(out, GroupValue{Key: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Value.Equal(out[j].Value) {
			return out[i].Value.GreaterThan(out[j].Value)
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// Waste merma acumulada de un insumo.
type Waste struct {
	IngredientID string
	Quantity     decimal.Decimal
	Cost         decimal.Decimal
}

// WasteByIngredient suma las MERMA por insumo (en positivo), de mayor a menor cantidad.
func WasteByIngredient(movements []*entity.InventoryMovement) []Waste {
	pos := map[string]int{}
	var out []Waste
	for _, m := range movements {
		if m.Type != entity.MovementMerma {
			continue
		}
		qty := m.Quantity.Abs()
		cost := m.TotalCost.Abs()
		if i, ok := pos[m.IngredientID]; ok {
			out[i].Quantity = out[i].Quantity.Add(qty)
			out[i].Cost = out[i].Cost.Add(cost)
			continue
		}
		pos[m.IngredientID] = len(out)
		out = append(out, Waste{IngredientID: m.IngredientID, Quantity: qty, Cost: cost})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Quantity.GreaterThan(out[j].Quantity) })
	if out == nil {
		return []Waste{}
	}
	return out
}
