package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementEntrada = "ENTRADA" // compra o ingreso de insumo
	MovementMerma   = "MERMA"   // desperdicio
	MovementCoccion = "COCCION" // consumo en producción
	MovementSalida  = "SALIDA"  // salida a otra sucursal o devolución
	MovementAjuste  = "AJUSTE"  // corrección manual +/-
)

// IsOutbound indica si el tipo descuenta existencia.
func IsOutbound(kind string) bool {
	switch kind {
	case MovementMerma, MovementCoccion, MovementSalida:
		return true
	}
	return false
}

// InventoryMovement registro de un cambio de existencia de un insumo.
// Quantity es positiva en entradas y negativa en salidas.
type InventoryMovement struct {
	ID            string
	TransactionID string // agrupa los renglones de un mismo envío
	IngredientID  string
	BranchID      string
	Type          string
	Quantity      decimal.Decimal
	UnitCost      decimal.Decimal
	TotalCost     decimal.Decimal
	Date          time.Time
	CreatedBy     string
}
