package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Presentaciones de venta.
const (
	PresentationUnit    = "U"
	PresentationHalfDoz = "6"
	PresentationDozen   = "12"
	PresentationCup     = "12oz"
	PresentationLiter   = "1L"
)

// ValidPresentation indica si p es una presentación conocida.
func ValidPresentation(p string) bool {
	switch p {
	case PresentationUnit, PresentationHalfDoz, PresentationDozen, PresentationCup, PresentationLiter:
		return true
	}
	return false
}

// Variant unidad vendible del catálogo (producto + presentación).
// Cost es nil cuando el catálogo no lo informa; en ese caso la variante no aporta utilidad.
type Variant struct {
	ID           string
	ProductName  string
	Category     Category
	Presentation string
	Price        decimal.Decimal
	Cost         *decimal.Decimal
	Attributes   map[string]string // masa, relleno, envoltura, chile, endulzante...
	ImageURL     string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayName nombre con la presentación, ej. "Tamal colorado (12)".
func (v *Variant) DisplayName() string {
	if v.Presentation == "" || v.Presentation == PresentationUnit {
		return v.ProductName
	}
	return v.ProductName + " (" + v.Presentation + ")"
}

// UnitProfit devuelve precio - costo y false si el costo no está informado.
func (v *Variant) UnitProfit() (decimal.Decimal, bool) {
	if v.Cost == nil {
		return decimal.Zero, false
	}
	return v.Price.Sub(*v.Cost), true
}

// IsSpicy interpreta los atributos "picante" o "chile" de la variante.
func (v *Variant) IsSpicy() bool {
	if p, ok := v.Attributes["picante"]; ok {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "true", "si", "sí", "con chile", "1":
			return true
		}
		return false
	}
	if c, ok := v.Attributes["chile"]; ok {
		c = strings.ToLower(strings.TrimSpace(c))
		return c != "" && c != "sin chile" && c != "no"
	}
	return false
}
