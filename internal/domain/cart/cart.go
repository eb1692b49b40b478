// Package cart mantiene las líneas que un cliente va a comprar antes de enviar la orden.
// Un Cart pertenece a una sola sesión de caja y no es seguro para uso concurrente.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cazuela-chapina-api/internal/domain"
)

// Line renglón del carrito. UnitPrice es el precio al momento de agregar.
type Line struct {
	ItemID    string          `json:"item_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	IsCombo   bool            `json:"is_combo,omitempty"`
}

// Amount cantidad x precio unitario.
func (l Line) Amount() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart colección ordenada de líneas, una por ItemID.
type Cart struct {
	lines []Line
}

// New devuelve un carrito vacío.
func New() *Cart { return &Cart{} }

// FromLines reconstruye un carrito (ej. desde Redis) validando cada línea.
// Líneas repetidas se fusionan igual que con Add.
func FromLines(lines []Line) (*Cart, error) {
	c := New()
	for _, l := range lines {
		qty := l.Quantity
		l.Quantity = 0
		if err := c.Add(l, qty); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add suma quantity a la línea con el mismo ItemID o agrega una nueva.
// La línea existente conserva su precio original.
func (c *Cart) Add(item Line, quantity int) error {
	if item.ItemID == "" {
		return domain.ErrInvalidInput
	}
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	if item.UnitPrice.IsNegative() {
		return domain.ErrInvalidPrice
	}
	if i := c.index(item.ItemID); i >= 0 {
		c.lines[i].Quantity += quantity
		return nil
	}
	item.Quantity = quantity
	c.lines = append(c.lines, item)
	return nil
}

// Remove elimina la línea completa. Si no existe no hace nada.
func (c *Cart) Remove(itemID string) {
	if i := c.index(itemID); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

// SetQuantity sobrescribe la cantidad; con quantity <= 0 elimina la línea.
// Devuelve false si la línea no existe.
func (c *Cart) SetQuantity(itemID string, quantity int) bool {
	i := c.index(itemID)
	if i < 0 {
		return false
	}
	if quantity <= 0 {
		c.Remove(itemID)
		return true
	}
	c.lines[i].Quantity = quantity
	return true
}

// Clear vacía el carrito.
func (c *Cart) Clear() { c.lines = nil }

// Total suma de cantidad x precio; sin impuestos.
func (c *Cart) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(l.Amount())
	}
	return sum
}

// Lines copia de las líneas en orden de inserción.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Line devuelve la línea con ese ItemID.
func (c *Cart) Line(itemID string) (Line, bool) {
	if i := c.index(itemID); i >= 0 {
		return c.lines[i], true
	}
	return Line{}, false
}

// Len número de líneas.
func (c *Cart) Len() int { return len(c.lines) }

// IsEmpty indica si no hay líneas.
func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

func (c *Cart) index(itemID string) int {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			return i
		}
	}
	return -1
}

// Totals subtotal, impuesto y total para una tasa dada (ej. 0.12).
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeTotals aplica la tasa sobre el subtotal; el impuesto se redondea a centavos.
func ComputeTotals(subtotal, taxRate decimal.Decimal) Totals {
	tax := subtotal.Mul(taxRate).Round(2)
	return Totals{Subtotal: subtotal, Tax: tax, Total: subtotal.Add(tax)}
}
