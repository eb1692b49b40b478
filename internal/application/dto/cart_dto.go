package dto

import "github.com/shopspring/decimal"

// AddCartItemRequest agrega una variante o un combo al carrito.
type AddCartItemRequest struct {
	ItemID   string `json:"item_id"` // variante_id o combo_id
	Quantity int    `json:"cantidad"`
}

// SetQuantityRequest fija la cantidad de una línea; <= 0 la elimina.
type SetQuantityRequest struct {
	Quantity int `json:"cantidad"`
}

// CartLineDTO línea del carrito.
type CartLineDTO struct {
	ItemID    string          `json:"item_id"`
	Name      string          `json:"nombre"`
	Quantity  int             `json:"cantidad"`
	UnitPrice decimal.Decimal `json:"precio"`
	Amount    decimal.Decimal `json:"importe"`
	IsCombo   bool            `json:"es_combo"`
}

// CartDTO carrito con totales estimados (el total autoritativo lo da la orden).
type CartDTO struct {
	Lines      []CartLineDTO   `json:"lineas"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"iva"`
	Total      decimal.Decimal `json:"total"`
	TotalLabel string          `json:"total_formateado"`
	ItemCount  int             `json:"unidades"`
}
