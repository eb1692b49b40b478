package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementItemRequest renglón de un movimiento.
type MovementItemRequest struct {
	IngredientID string           `json:"ingrediente_id"`
	Quantity     decimal.Decimal  `json:"cantidad"`
	UnitCost     *decimal.Decimal `json:"costo_unitario,omitempty"` // solo ENTRADA
}

// RegisterMovementRequest cuerpo de POST /inventory/movements.
type RegisterMovementRequest struct {
	Type     string                `json:"tipo"` // ENTRADA | MERMA | COCCION | SALIDA
	BranchID string                `json:"sucursal_id"`
	Items    []MovementItemRequest `json:"items"`
}

// MovementResponse resultado del registro.
type MovementResponse struct {
	TransactionID string `json:"transaccion_id"`
	Items         int    `json:"items"`
}

// AdjustStockRequest ajuste manual (+1/-1 u otro delta distinto de cero).
type AdjustStockRequest struct {
	Delta    decimal.Decimal `json:"delta"`
	BranchID string          `json:"sucursal_id"`
}

// IngredientRequest alta/edición de insumo.
type IngredientRequest struct {
	Name      string          `json:"nombre"`
	Category  string          `json:"categoria"`
	Unit      string          `json:"unidad"`
	MinStock  decimal.Decimal `json:"minimo"`
	MaxStock  decimal.Decimal `json:"maximo"`
	UnitCost  decimal.Decimal `json:"costo_unitario"`
	Supplier  string          `json:"proveedor"`
	ExpiresAt *time.Time      `json:"vence,omitempty"`
}

// IngredientResponse insumo con su estado calculado.
type IngredientResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"nombre"`
	Category     string          `json:"categoria"`
	Unit         string          `json:"unidad"`
	CurrentStock decimal.Decimal `json:"existencia"`
	MinStock     decimal.Decimal `json:"minimo"`
	MaxStock     decimal.Decimal `json:"maximo"`
	UnitCost     decimal.Decimal `json:"costo_unitario"`
	Supplier     string          `json:"proveedor"`
	ExpiresAt    *time.Time      `json:"vence,omitempty"`
	Status       string          `json:"estado"`
	Percentage   decimal.Decimal `json:"porcentaje"`
	Expiry       string          `json:"vencimiento,omitempty"`
	Value        decimal.Decimal `json:"valor"`
}

// GroupValueDTO valor agrupado.
type GroupValueDTO struct {
	Key   string          `json:"clave"`
	Value decimal.Decimal `json:"valor"`
}

// InventoryReportDTO respuesta de GET /inventory/report.
type InventoryReportDTO struct {
	Items         []IngredientResponse `json:"items"`
	TotalValue    decimal.Decimal      `json:"valor_total"`
	TotalLabel    string               `json:"valor_total_formateado"`
	ByCategory    []GroupValueDTO      `json:"por_categoria"`
	BySupplier    []GroupValueDTO      `json:"por_proveedor"`
	CriticalCount int                  `json:"criticos"`
	LowCount      int                  `json:"bajos"`
	ExpiringCount int                  `json:"por_vencer"`
	ExpiredCount  int                  `json:"vencidos"`
}

// WasteDTO merma por insumo.
type WasteDTO struct {
	IngredientID string          `json:"ingrediente_id"`
	Name         string          `json:"nombre"`
	Quantity     decimal.Decimal `json:"cantidad"`
	Cost         decimal.Decimal `json:"costo"`
}

// ReplenishmentSuggestionDTO insumo bajo el nivel de alerta con la cantidad sugerida de compra.
type ReplenishmentSuggestionDTO struct {
	IngredientID    string          `json:"ingrediente_id"`
	Name            string          `json:"nombre"`
	Supplier        string          `json:"proveedor"`
	Status          string          `json:"estado"`
	CurrentStock    decimal.Decimal `json:"existencia"`
	MinStock        decimal.Decimal `json:"minimo"`
	IdealStock      decimal.Decimal `json:"ideal"`
	SuggestedQty    decimal.Decimal `json:"cantidad_sugerida"`
	UnitCost        decimal.Decimal `json:"costo_unitario"`
	EstimatedCost   decimal.Decimal `json:"costo_estimado"`
	WasteLast30Days decimal.Decimal `json:"merma_30_dias"`
	Priority        int             `json:"prioridad"`
}
