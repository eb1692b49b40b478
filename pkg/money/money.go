// Package money formatea montos y porcentajes para la capa de presentación.
package money

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// FormatCurrency devuelve el monto con prefijo fijo y exactamente dos decimales, ej. "Q12.50".
func FormatCurrency(prefix string, amount decimal.Decimal) string {
	return prefix + amount.StringFixed(2)
}

// FormatPercentage devuelve value/total como porcentaje con un decimal.
// Con total cero devuelve "0%".
func FormatPercentage(value, total decimal.Decimal) string {
	if total.IsZero() {
		return "0%"
	}
	return value.Div(total).Mul(hundred).StringFixed(1) + "%"
}

// Percent devuelve value/total*100 redondeado a 2 decimales; cero si total es cero.
func Percent(value, total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}
	return value.Div(total).Mul(hundred).Round(2)
}
