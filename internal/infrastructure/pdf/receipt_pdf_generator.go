// Package pdf genera el comprobante de venta del POS.
//
// Layout (ancho A4, una sola columna de ticket):
//
//	┌──────────────────────────────────────────────┐
//	│  Negocio + sucursal   │  N° venta + fecha    │
//	│  ──────────────────────────────────────────  │
//	│  Cant | Descripción | P.Unit | Importe       │
//	│  ──────────────────────────────────────────  │
//	│  Subtotal / IVA / TOTAL + método de pago     │
//	│  QR con el ID de la venta                    │
//	└──────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/cazuela-chapina-api/internal/application/ports"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
	"github.com/jhoicas/cazuela-chapina-api/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 140, Green: 45, Blue: 25}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var paymentLabels = map[string]string{
	entity.PaymentCash:     "Efectivo",
	entity.PaymentCard:     "Tarjeta",
	entity.PaymentTransfer: "Transferencia",
}

// ── Generator ─────────────────────────────────────────────────────────────────

var _ ports.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa ports.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct {
	loc *time.Location
}

// NewMarotoReceiptGenerator construye el generador. loc es la zona con la que se imprime la fecha; nil usa UTC.
func NewMarotoReceiptGenerator(loc *time.Location) *MarotoReceiptGenerator {
	if loc == nil {
		loc = time.UTC
	}
	return &MarotoReceiptGenerator{loc: loc}
}

// GenerateReceiptPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(_ context.Context, sale *entity.Sale, info ports.ReceiptInfo) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de venta", true).
		WithAuthor(info.BusinessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sale, info, sale.Timestamp.In(g.loc).Format("02/01/2006 15:04")))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range itemRows(sale, info.CurrencyPrefix) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(sale, info.CurrencyPrefix))
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(sale))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: negocio y sucursal (izq), número corto de venta y fecha (der).
func headerRow(sale *entity.Sale, info ports.ReceiptInfo, fecha string) core.Row {
	branch := info.BranchName
	if info.BranchAddress != "" {
		branch += " · " + info.BranchAddress
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(info.BusinessName, "Comprobante"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(branch, props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("COMPROBANTE DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+shortID(sale.ID), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New(fecha, props.Text{Size: 8, Align: align.Right, Top: 14, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción", 6, align.Left),
		h("P. Unit.", 2, align.Right),
		h("Importe", 3, align.Right),
	)
}

// itemRows: una fila por línea; los combos se marcan como tales.
func itemRows(sale *entity.Sale, prefix string) []core.Row {
	out := make([]core.Row, 0, len(sale.Items))
	for _, it := range sale.Items {
		name := nonEmpty(it.Name, it.ItemID)
		if it.IsCombo {
			name = "Combo: " + name
		}
		out = append(out, row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", it.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(6).Add(text.New(name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(money.FormatCurrency(prefix, it.UnitPrice), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(3).Add(text.New(money.FormatCurrency(prefix, it.Amount()), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return out
}

func totalsRow(sale *entity.Sale, prefix string) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Top: top})
	}
	grand := func(s string, top float64, a align.Type) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 11, Align: a, Color: colorPrimary, Top: top})
	}
	method := nonEmpty(paymentLabels[sale.PaymentMethod], sale.PaymentMethod)

	return row.New(26).Add(
		col.New(6).Add(text.New("Pago: "+method, props.Text{Size: 9, Top: 1, Color: colorGray})),
		col.New(3).Add(
			label("Subtotal:", 1),
			label("IVA:", 7),
			grand("TOTAL:", 14, align.Right),
		),
		col.New(3).Add(
			value(money.FormatCurrency(prefix, sale.Subtotal), 1),
			value(money.FormatCurrency(prefix, sale.Tax), 7),
			grand(money.FormatCurrency(prefix, sale.Total), 14, align.Right),
		),
	)
}

// footerRow: QR con el ID completo de la venta para buscarla desde caja.
func footerRow(sale *entity.Sale) core.Row {
	return row.New(40).Add(
		col.New(4).Add(code.NewQr(sale.ID, props.Rect{Percent: 90, Center: true})),
		col.New(8).Add(
			text.New("¡Gracias por su compra!", props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 8, Left: 3, Color: colorPrimary,
			}),
			text.New("Venta "+sale.ID, props.Text{Size: 7, Top: 18, Left: 3, Color: colorGray}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
