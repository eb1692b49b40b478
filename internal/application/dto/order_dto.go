package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest renglón enviado directamente (sin carrito). ItemID puede ser "combo:<id>".
type OrderItemRequest struct {
	ItemID   string `json:"variante_id"`
	Quantity int    `json:"cantidad"`
}

// CreateOrderRequest envía una orden. Sin Items se usa el carrito de la sesión.
type CreateOrderRequest struct {
	BranchID      string             `json:"sucursal_id,omitempty"`
	Items         []OrderItemRequest `json:"items,omitempty"`
	PaymentMethod string             `json:"metodo_pago"` // efectivo | tarjeta | transferencia
	CashReceived  *decimal.Decimal   `json:"efectivo_recibido,omitempty"`
}

// CreateOrderResponse total autoritativo calculado en el servidor.
type CreateOrderResponse struct {
	OrderID  string          `json:"orden_id"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"iva"`
	Total    decimal.Decimal `json:"total"`
	Change   decimal.Decimal `json:"cambio"`
	Label    string          `json:"total_formateado"`
}

// OrderCreatedEvent mensaje publicado al registrar una venta.
type OrderCreatedEvent struct {
	OrderID       string           `json:"order_id"`
	BranchID      string           `json:"branch_id"`
	StaffID       string           `json:"staff_id"`
	Items         []OrderEventItem `json:"items"`
	Total         decimal.Decimal  `json:"total"`
	PaymentMethod string           `json:"payment_method"`
	CreatedAt     time.Time        `json:"created_at"`
}

// OrderEventItem renglón del evento.
type OrderEventItem struct {
	ItemID    string          `json:"item_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}
