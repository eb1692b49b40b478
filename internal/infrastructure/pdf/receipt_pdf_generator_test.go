package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cazuela-chapina-api/internal/application/ports"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
)

func sampleSale(t *testing.T) *entity.Sale {
	t.Helper()
	items := []entity.SaleItem{
		{ItemID: "tamal-colorado-6", Name: "Tamal colorado (6)", Quantity: 2, UnitPrice: decimal.RequireFromString("30.00")},
		{ItemID: "combo:fiesta", Name: "Combo Fiesta Patronal", Quantity: 1, UnitPrice: decimal.RequireFromString("120.00"), IsCombo: true},
	}
	sale, err := entity.NewSale("3f2a9c1e-0000-4000-8000-000000000001", "b-1", "u-1",
		time.Date(2026, 9, 15, 18, 30, 0, 0, time.UTC), items,
		decimal.RequireFromString("180.00"), decimal.RequireFromString("21.60"), entity.PaymentCash)
	require.NoError(t, err)
	return sale
}

func TestGenerateReceiptPDF(t *testing.T) {
	loc, err := time.LoadLocation("America/Guatemala")
	if err != nil {
		loc = time.UTC
	}
	g := NewMarotoReceiptGenerator(loc)

	out, err := g.GenerateReceiptPDF(context.Background(), sampleSale(t), ports.ReceiptInfo{
		BusinessName:   "La Cazuela Chapina",
		BranchName:     "Zona 1",
		BranchAddress:  "6a Avenida 10-20",
		CurrencyPrefix: "Q",
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateReceiptPDF_SinDatosDeNegocio(t *testing.T) {
	g := NewMarotoReceiptGenerator(nil)

	out, err := g.GenerateReceiptPDF(context.Background(), sampleSale(t), ports.ReceiptInfo{})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "x", nonEmpty("", "x"))
	assert.Equal(t, "a", nonEmpty("a", "x"))
	assert.Equal(t, "3f2a9c1e", shortID("3f2a9c1e-0000"))
	assert.Equal(t, "abc", shortID("abc"))
}
