package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cazuela-chapina-api/internal/domain"
)

// Métodos de pago aceptados en caja.
const (
	PaymentCash     = "efectivo"
	PaymentCard     = "tarjeta"
	PaymentTransfer = "transferencia"
)

// ValidPaymentMethod indica si m es un método de pago aceptado.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentTransfer:
		return true
	}
	return false
}

// SaleItem línea de una venta. ItemID es una variante o "combo:<id>".
type SaleItem struct {
	ItemID    string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	IsCombo   bool
}

// Amount cantidad x precio unitario.
func (i SaleItem) Amount() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Sale registro histórico de venta; no se modifica después de creado.
type Sale struct {
	ID            string
	BranchID      string
	StaffID       string
	Timestamp     time.Time
	Items         []SaleItem
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod string
}

// LinesTotal suma cantidad x precio de todas las líneas.
func LinesTotal(items []SaleItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Amount())
	}
	return sum
}

// NewSale construye una venta validando líneas y totales.
// El subtotal declarado debe coincidir con la suma de líneas y Total = Subtotal + Tax;
// cualquier diferencia se reporta como ErrSaleTotalMismatch, no se corrige.
func NewSale(id, branchID, staffID string, ts time.Time, items []SaleItem, subtotal, tax decimal.Decimal, paymentMethod string) (*Sale, error) {
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
		if it.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidPrice
		}
	}
	if !ValidPaymentMethod(paymentMethod) || tax.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if !LinesTotal(items).Equal(subtotal) {
		return nil, domain.ErrSaleTotalMismatch
	}
	cp := make([]SaleItem, len(items))
	copy(cp, items)
	return &Sale{
		ID:            id,
		BranchID:      branchID,
		StaffID:       staffID,
		Timestamp:     ts,
		Items:         cp,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         subtotal.Add(tax),
		PaymentMethod: paymentMethod,
	}, nil
}

// Validate revisa el invariante de totales sobre una venta ya almacenada.
func (s *Sale) Validate() error {
	if !LinesTotal(s.Items).Equal(s.Subtotal) || !s.Subtotal.Add(s.Tax).Equal(s.Total) {
		return domain.ErrSaleTotalMismatch
	}
	return nil
}
