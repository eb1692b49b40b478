package metrics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
	"github.com/jhoicas/cazuela-chapina-api/pkg/money"
)

var (
	paretoA = decimal.NewFromInt(80)
	paretoB = decimal.NewFromInt(95)
)

// RankedItem renglón del ranking Pareto por ingreso.
type RankedItem struct {
	ItemID        string          `json:"item_id"`
	Name          string          `json:"name"`
	Quantity      int             `json:"quantity"`
	Revenue       decimal.Decimal `json:"revenue"`
	Share         decimal.Decimal `json:"share"`          // % del ingreso total
	CumulativePct decimal.Decimal `json:"cumulative_pct"` // % acumulado
	Class         string          `json:"class"`          // A (<=80%), B (<=95%), C
}

// ParetoRanking ordena los ítems vendidos por ingreso de línea (cantidad x precio de venta)
// y los clasifica A/B/C. Combos e IDs fuera del catálogo se incluyen con su ID como nombre.
func ParetoRanking(sales []entity.Sale, catalog Catalog) []RankedItem {
	pos := map[string]int{}
	var items []RankedItem
	total := decimal.Zero
	for _, s := range sales {
		for _, it := range s.Items {
			amount := it.Amount()
			total = total.Add(amount)
			if i, ok := pos[it.ItemID]; ok {
				items[i].Quantity += it.Quantity
				items[i].Revenue = items[i].Revenue.Add(amount)
				continue
			}
			name := it.Name
			if v := catalog.lookup(it.ItemID); v != nil {
				name = v.DisplayName()
			}
			if name == "" {
				name = it.ItemID
			}
			pos[it.ItemID] = len(items)
			items = append(items, RankedItem{ItemID: it.ItemID, Name: name, Quantity: it.Quantity, Revenue: amount})
		}
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].Revenue.GreaterThan(items[j].Revenue) })

	cumulative := decimal.Zero
	for i := range items {
		cumulative = cumulative.Add(items[i].Revenue)
		items[i].Share = money.Percent(items[i].Revenue, total)
		items[i].CumulativePct = money.Percent(cumulative, total)
		// El primer ítem siempre es A aunque por sí solo cruce el 80%.
		switch {
		case items[i].CumulativePct.LessThanOrEqual(paretoA) || i == 0:
			items[i].Class = "A"
		case items[i].CumulativePct.LessThanOrEqual(paretoB):
			items[i].Class = "B"
		default:
			items[i].Class = "C"
		}
	}
	if items == nil {
		return []RankedItem{}
	}
	return items
}
