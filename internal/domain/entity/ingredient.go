package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de insumos.
const (
	IngredientMasa       = "masa"
	IngredientCarne      = "carne"
	IngredientVerdura    = "verdura"
	IngredientBebida     = "bebida"
	IngredientCondimento = "condimento"
	IngredientEmpaque    = "empaque"
)

// ValidIngredientCategory indica si c es una categoría de insumo conocida.
func ValidIngredientCategory(c string) bool {
	switch c {
	case IngredientMasa, IngredientCarne, IngredientVerdura, IngredientBebida, IngredientCondimento, IngredientEmpaque:
		return true
	}
	return false
}

// Ingredient insumo de cocina con su existencia actual.
// UnitCost es costo promedio ponderado, recalculado en cada ENTRADA.
type Ingredient struct {
	ID           string
	Name         string
	Category     string
	Unit         string // lb, kg, unidad, litro...
	CurrentStock decimal.Decimal
	MinStock     decimal.Decimal // punto crítico
	MaxStock     decimal.Decimal
	UnitCost     decimal.Decimal
	Supplier     string
	ExpiresAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Value existencia x costo unitario.
func (i *Ingredient) Value() decimal.Decimal {
	return i.CurrentStock.Mul(i.UnitCost)
}
