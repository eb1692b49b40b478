package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cazuela-chapina-api/internal/domain"
)

func line(id, price string) Line {
	return Line{ItemID: id, Name: id, UnitPrice: decimal.RequireFromString(price)}
}

func TestAdd_MismoItemSumaCantidades(t *testing.T) {
	c := New()
	for _, q := range []int{1, 3, 2} {
		require.NoError(t, c.Add(line("A", "5"), q))
	}

	require.Equal(t, 1, c.Len(), "debe existir una sola línea para A")
	l, ok := c.Line("A")
	require.True(t, ok)
	assert.Equal(t, 6, l.Quantity)
}

func TestAdd_ConservaPrecioDeLaPrimeraLinea(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(line("A", "5"), 1))
	require.NoError(t, c.Add(line("A", "9"), 1))

	l, _ := c.Line("A")
	assert.True(t, l.UnitPrice.Equal(decimal.NewFromInt(5)))
}

func TestAdd_RechazaCantidadYPrecioInvalidos(t *testing.T) {
	c := New()
	assert.ErrorIs(t, c.Add(line("A", "5"), 0), domain.ErrInvalidQuantity)
	assert.ErrorIs(t, c.Add(line("A", "5"), -2), domain.ErrInvalidQuantity)
	assert.ErrorIs(t, c.Add(line("A", "-1"), 1), domain.ErrInvalidPrice)
	assert.ErrorIs(t, c.Add(Line{}, 1), domain.ErrInvalidInput)
	assert.True(t, c.IsEmpty())
}

func TestSetQuantity_CeroONegativoElimina(t *testing.T) {
	for _, q := range []int{0, -1} {
		c := New()
		require.NoError(t, c.Add(line("A", "5"), 2))
		require.NoError(t, c.Add(line("B", "1"), 1))

		assert.True(t, c.SetQuantity("A", q))
		_, ok := c.Line("A")
		assert.False(t, ok)
		assert.Equal(t, 1, c.Len())
	}
}

func TestSetQuantity_Sobrescribe(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(line("A", "5"), 2))
	assert.True(t, c.SetQuantity("A", 7))
	l, _ := c.Line("A")
	assert.Equal(t, 7, l.Quantity)

	assert.False(t, c.SetQuantity("X", 3), "línea inexistente")
}

func TestRemove_ItemInexistenteNoCambiaNada(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(line("A", "5"), 2))
	before := c.Lines()

	c.Remove("no-existe")
	assert.Equal(t, before, c.Lines())

	c.Remove("A")
	assert.True(t, c.IsEmpty())
}

func TestTotal_VacioEsCero(t *testing.T) {
	assert.True(t, New().Total().IsZero())
}

func TestTotal_NoDependeDelOrden(t *testing.T) {
	a := New()
	require.NoError(t, a.Add(line("A", "5"), 2))
	require.NoError(t, a.Add(line("B", "3.25"), 1))
	require.NoError(t, a.Add(line("A", "5"), 1))

	b := New()
	require.NoError(t, b.Add(line("B", "3.25"), 1))
	require.NoError(t, b.Add(line("A", "5"), 3))

	assert.True(t, a.Total().Equal(b.Total()))
	assert.True(t, a.Total().Equal(decimal.RequireFromString("18.25")))
}

func TestClear(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(line("A", "5"), 2))
	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.True(t, c.Total().IsZero())
}

func TestFromLines_FusionaYValida(t *testing.T) {
	a := line("A", "5")
	a.Quantity = 2
	b := line("A", "5")
	b.Quantity = 1

	c, err := FromLines([]Line{a, b})
	require.NoError(t, err)
	l, _ := c.Line("A")
	assert.Equal(t, 3, l.Quantity)

	bad := line("B", "1")
	_, err = FromLines([]Line{bad})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestComputeTotals_IVA12(t *testing.T) {
	tot := ComputeTotals(decimal.RequireFromString("100"), decimal.RequireFromString("0.12"))
	assert.True(t, tot.Tax.Equal(decimal.NewFromInt(12)))
	assert.True(t, tot.Total.Equal(decimal.NewFromInt(112)))

	tot = ComputeTotals(decimal.RequireFromString("10.05"), decimal.RequireFromString("0.12"))
	assert.Equal(t, "1.21", tot.Tax.StringFixed(2))
}
