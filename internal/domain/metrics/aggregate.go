// Package metrics deriva cifras de reporte a partir de un par (ventas, catálogo).
// Todas las funciones son puras; los IDs sin entrada en el catálogo aportan cero.
package metrics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
	"github.com/jhoicas/cazuela-chapina-api/pkg/money"
)

// AggregateRevenue suma el total de cada venta.
func AggregateRevenue(sales []entity.Sale) decimal.Decimal {
	sum := decimal.Zero
	for _, s := range sales {
		sum = sum.Add(s.Total)
	}
	return sum
}

// AggregateProfit suma (precio - costo) x cantidad de cada renglón con variante conocida.
// Renglones sin variante o variantes sin costo aportan cero.
func AggregateProfit(sales []entity.Sale, catalog Catalog) decimal.Decimal {
	return profitWhere(sales, catalog, func(*entity.Variant) bool { return true })
}

func profitWhere(sales []entity.Sale, catalog Catalog, keep func(*entity.Variant) bool) decimal.Decimal {
	sum := decimal.Zero
	for _, s := range sales {
		for _, it := range s.Items {
			v := catalog.lookup(it.ItemID)
			if v == nil || !keep(v) {
				continue
			}
			unit, ok := v.UnitProfit()
			if !ok {
				continue
			}
			sum = sum.Add(unit.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
	}
	return sum
}

// ItemQuantity unidades acumuladas de una variante.
type ItemQuantity struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// quantitiesByItem acumula unidades por ID dentro de la categoría, en orden de primera aparición.
func quantitiesByItem(sales []entity.Sale, catalog Catalog, cat entity.Category) []ItemQuantity {
	pos := map[string]int{}
	var out []ItemQuantity
	for _, s := range sales {
		for _, it := range s.Items {
			v, ok := catalog.inCategory(it.ItemID, cat)
			if !ok {
				continue
			}
			if i, seen := pos[it.ItemID]; seen {
				out[i].Quantity += it.Quantity
				continue
			}
			pos[it.ItemID] = len(out)
			out = append(out, ItemQuantity{ItemID: it.ItemID, Name: v.DisplayName(), Quantity: it.Quantity})
		}
	}
	return out
}

// TopN las n variantes más vendidas de la categoría, de mayor a menor.
// Empates conservan el orden de primera aparición.
func TopN(sales []entity.Sale, catalog Catalog, cat entity.Category, n int) []ItemQuantity {
	if n <= 0 {
		return []ItemQuantity{}
	}
	items := quantitiesByItem(sales, catalog, cat)
	sort.SliceStable(items, func(i, j int) bool { return items[i].Quantity > items[j].Quantity })
	if len(items) > n {
		items = items[:n]
	}
	if items == nil {
		return []ItemQuantity{}
	}
	return items
}

// HourRow unidades de una hora del día (0-23), desglosadas por variante.
type HourRow struct {
	Hour  int            `json:"hour"`
	Total int            `json:"total"`
	Items []ItemQuantity `json:"items"`
}

// ByHourAndCategory agrupa unidades por hora local de la venta y por variante.
// Solo aparecen horas con actividad, en orden ascendente.
func ByHourAndCategory(sales []entity.Sale, catalog Catalog, cat entity.Category) []HourRow {
	rows := map[int]*HourRow{}
	for _, s := range sales {
		h := s.Timestamp.Hour()
		for _, it := range s.Items {
			v, ok := catalog.inCategory(it.ItemID, cat)
			if !ok {
				continue
			}
			r := rows[h]
			if r == nil {
				r = &HourRow{Hour: h}
				rows[h] = r
			}
			r.Total += it.Quantity
			found := false
			for i := range r.Items {
				if r.Items[i].ItemID == it.ItemID {
					r.Items[i].Quantity += it.Quantity
					found = true
					break
				}
			}
			if !found {
				r.Items = append(r.Items, ItemQuantity{ItemID: it.ItemID, Name: v.DisplayName(), Quantity: it.Quantity})
			}
		}
	}
	out := make([]HourRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hour < out[j].Hour })
	return out
}

// CategoryProfit utilidad acumulada de una línea de producto.
type CategoryProfit struct {
	Category entity.Category `json:"category"`
	Label    string          `json:"label"`
	Profit   decimal.Decimal `json:"profit"`
}

// ProfitByCategory una entrada por categoría pedida, en el mismo orden; sin datos = cero.
func ProfitByCategory(sales []entity.Sale, catalog Catalog, categories []entity.Category) []CategoryProfit {
	out := make([]CategoryProfit, 0, len(categories))
	for _, cat := range categories {
		cat := cat
		out = append(out, CategoryProfit{
			Category: cat,
			Label:    cat.Label(),
			Profit:   profitWhere(sales, catalog, func(v *entity.Variant) bool { return v.Category == cat }),
		})
	}
	return out
}

// SpicySplit unidades de tamal con y sin chile.
type SpicySplit struct {
	Spicy      int    `json:"con"`
	NonSpicy   int    `json:"sin"`
	SpicyShare string `json:"porcentaje_con"`
}

// SpicyRatio cuenta unidades de tamales picantes y no picantes.
func SpicyRatio(sales []entity.Sale, catalog Catalog) SpicySplit {
	var split SpicySplit
	for _, s := range sales {
		for _, it := range s.Items {
			v, ok := catalog.inCategory(it.ItemID, entity.CategoryTamal)
			if !ok {
				continue
			}
			if v.IsSpicy() {
				split.Spicy += it.Quantity
			} else {
				split.NonSpicy += it.Quantity
			}
		}
	}
	split.SpicyShare = money.FormatPercentage(
		decimal.NewFromInt(int64(split.Spicy)),
		decimal.NewFromInt(int64(split.Spicy+split.NonSpicy)),
	)
	return split
}

// AverageTicket ingreso promedio por venta; cero sin ventas.
func AverageTicket(sales []entity.Sale) decimal.Decimal {
	if len(sales) == 0 {
		return decimal.Zero
	}
	return AggregateRevenue(sales).Div(decimal.NewFromInt(int64(len(sales)))).Round(2)
}

// UnitsSold total de unidades vendidas (todas las líneas).
func UnitsSold(sales []entity.Sale) int {
	n := 0
	for _, s := range sales {
		for _, it := range s.Items {
			n += it.Quantity
		}
	}
	return n
}

// DailyPoint cifras de un día calendario.
type DailyPoint struct {
	Date     string          `json:"date"` // YYYY-MM-DD
	Sales    decimal.Decimal `json:"sales"`
	Profit   decimal.Decimal `json:"profit"`
	Quantity int             `json:"quantity"`
}

// DailySeries los últimos days días terminando en el día de now, incluyendo días sin ventas.
func DailySeries(sales []entity.Sale, catalog Catalog, now time.Time, days int) []DailyPoint {
	if days <= 0 {
		return []DailyPoint{}
	}
	today := Midnight(now)
	out := make([]DailyPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		start := today.AddDate(0, 0, -i)
		day := FilterByWindow(sales, Window{Start: start, End: start.AddDate(0, 0, 1)})
		out = append(out, DailyPoint{
			Date:     start.Format("2006-01-02"),
			Sales:    AggregateRevenue(day),
			Profit:   AggregateProfit(day, catalog),
			Quantity: UnitsSold(day),
		})
	}
	return out
}
