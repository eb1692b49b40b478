package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/cazuela-chapina-api/internal/domain"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
)

const sampleCSV = "producto;categoria;presentacion;precio;costo;atributos\n" +
	"Tamal colorado;tamal;12;Q60,00;36;masa=maíz amarillo|relleno=recado rojo|picante=si\n" +
	"Atol de elote;bebida;1L;35.50;;endulzante=panela\n"

func TestParseCatalog_UTF8(t *testing.T) {
	rows, err := parseCatalog(decodeInput([]byte(sampleCSV)))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Tamal colorado", rows[0].name)
	assert.Equal(t, entity.CategoryTamal, rows[0].category)
	assert.Equal(t, "60.00", rows[0].price.StringFixed(2))
	require.NotNil(t, rows[0].cost)
	assert.Equal(t, "maíz amarillo", rows[0].attributes["masa"])

	assert.Equal(t, entity.CategoryBebida, rows[1].category)
	assert.Nil(t, rows[1].cost)
}

func TestParseCatalog_Latin1(t *testing.T) {
	latin1, err := charmap.ISO8859_1.NewEncoder().String(sampleCSV)
	require.NoError(t, err)

	rows, err := parseCatalog(decodeInput([]byte(latin1)))
	require.NoError(t, err)
	assert.Equal(t, "maíz amarillo", rows[0].attributes["masa"])
}

func TestParseCatalog_IDsEstables(t *testing.T) {
	a, err := parseCatalog(decodeInput([]byte(sampleCSV)))
	require.NoError(t, err)
	b, err := parseCatalog(decodeInput([]byte(sampleCSV)))
	require.NoError(t, err)
	assert.Equal(t, a[0].id, b[0].id)
	assert.NotEqual(t, a[0].id, a[1].id)
}

func TestParseCatalog_CategoriaDesconocida(t *testing.T) {
	csv := "producto;categoria;presentacion;precio\nChuchito;antojito;U;5\n"
	_, err := parseCatalog(decodeInput([]byte(csv)))
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)
}

func TestWriteSQL_EscapaComillas(t *testing.T) {
	rows, err := parseCatalog(strings.NewReader("p;c;pr;precio\nTamal 'de la casa';tamal;U;8\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeSQL(&buf, rows))
	out, _ := io.ReadAll(&buf)
	assert.Contains(t, string(out), "INSERT INTO variants")
	assert.Contains(t, string(out), "'Tamal ''de la casa'''")
	assert.Contains(t, string(out), "ON CONFLICT (product_name, presentation)")
}
