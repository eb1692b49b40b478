package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ComboItem componente de un combo.
type ComboItem struct {
	VariantID string
	Quantity  int
}

// Combo paquete fijo de variantes vendido a un precio único.
// Al agregarse al carrito se convierte en una sola línea con BundlePrice.
type Combo struct {
	ID            string
	Name          string
	Description   string
	Items         []ComboItem
	BundlePrice   decimal.Decimal
	OriginalPrice decimal.Decimal // suma de precios de los componentes al crear el combo
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Savings ahorro frente a comprar los componentes por separado (nunca negativo).
func (c *Combo) Savings() decimal.Decimal {
	s := c.OriginalPrice.Sub(c.BundlePrice)
	if s.IsNegative() {
		return decimal.Zero
	}
	return s
}

// CartKey clave con la que el combo aparece en un carrito.
func (c *Combo) CartKey() string { return ComboCartKey(c.ID) }

// ComboCartKey arma la clave de carrito para un combo.
func ComboCartKey(comboID string) string { return "combo:" + comboID }
