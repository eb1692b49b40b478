// seed_catalog genera el script SQL que carga el catálogo de variantes a partir de la
// planilla de precios exportada desde la hoja de cálculo (CSV separado por ';').
//
// Uso: go run ./cmd/seed_catalog [ruta/catalogo.csv]
// Por defecto busca catalogo.csv en el directorio actual. Acepta UTF-8 o Latin-1.
// Escribe: migrations/002_seed_catalog.sql
//
// Columnas: producto;categoria;presentacion;precio;costo;atributos
// atributos va como pares clave=valor separados por '|', ej. "masa=maíz|relleno=recado rojo|picante=si".
package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
)

type variantRow struct {
	id           string
	name         string
	category     entity.Category
	presentation string
	price        decimal.Decimal
	cost         *decimal.Decimal
	attributes   map[string]string
}

func main() {
	csvPath := "catalogo.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	raw, err := os.ReadFile(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}

	rows, err := parseCatalog(decodeInput(raw))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	outPath := filepath.Join(findModuleRoot(), "migrations", "002_seed_catalog.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSQL(out, rows); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d variantes\n", outPath, len(rows))
}

// decodeInput convierte a UTF-8 las planillas guardadas en Latin-1 (Excel en Windows).
func decodeInput(raw []byte) io.Reader {
	if utf8.Valid(raw) {
		return bytes.NewReader(bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf")))
	}
	return transform.NewReader(bytes.NewReader(raw), charmap.ISO8859_1.NewDecoder())
}

// parseCatalog lee las filas; la primera es encabezado. Una fila inválida aborta todo.
func parseCatalog(r io.Reader) ([]variantRow, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("el archivo no tiene filas de datos")
	}

	var rows []variantRow
	for i, rec := range records[1:] {
		line := i + 2
		if len(rec) < 4 {
			return nil, fmt.Errorf("línea %d: se esperan al menos 4 columnas", line)
		}
		name := strings.TrimSpace(rec[0])
		if name == "" {
			continue
		}
		cat, err := entity.ParseCategory(rec[1])
		if err != nil {
			return nil, fmt.Errorf("línea %d: categoría %q: %w", line, rec[1], err)
		}
		pres := strings.TrimSpace(rec[2])
		if pres == "" {
			pres = entity.PresentationUnit
		}
		if !entity.ValidPresentation(pres) {
			return nil, fmt.Errorf("línea %d: presentación %q desconocida", line, pres)
		}
		price, err := parseAmount(rec[3])
		if err != nil || price.IsNegative() {
			return nil, fmt.Errorf("línea %d: precio %q inválido", line, rec[3])
		}
		row := variantRow{
			id:           uuid.NewSHA1(uuid.NameSpaceOID, []byte(name+"|"+pres)).String(),
			name:         name,
			category:     cat,
			presentation: pres,
			price:        price,
			attributes:   map[string]string{},
		}
		if len(rec) > 4 && strings.TrimSpace(rec[4]) != "" {
			cost, err := parseAmount(rec[4])
			if err != nil || cost.IsNegative() {
				return nil, fmt.Errorf("línea %d: costo %q inválido", line, rec[4])
			}
			row.cost = &cost
		}
		if len(rec) > 5 {
			row.attributes = parseAttributes(rec[5])
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// parseAmount acepta "12.50", "12,50" y "Q12.50".
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "Q"))
	return decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
}

func parseAttributes(s string) map[string]string {
	attrs := map[string]string{}
	for _, pair := range strings.Split(s, "|") {
		k, v, ok := strings.Cut(pair, "=")
		k = strings.ToLower(strings.TrimSpace(k))
		if !ok || k == "" {
			continue
		}
		attrs[k] = strings.TrimSpace(v)
	}
	return attrs
}

func writeSQL(w io.Writer, rows []variantRow) error {
	fmt.Fprintln(w, "-- Catálogo de variantes (tamales y bebidas)")
	fmt.Fprintln(w, "-- Generado por cmd/seed_catalog")
	fmt.Fprintln(w)
	for _, r := range rows {
		attrs, err := json.Marshal(r.attributes)
		if err != nil {
			return err
		}
		cost := "NULL"
		if r.cost != nil {
			cost = r.cost.String()
		}
		fmt.Fprintln(w, "INSERT INTO variants (id, product_name, category, presentation, price, cost, attributes)")
		fmt.Fprintf(w, "VALUES ('%s', '%s', '%s', '%s', %s, %s, '%s'::jsonb)\n",
			r.id, escapeSQL(r.name), r.category, r.presentation, r.price.StringFixed(2), cost, escapeSQL(string(attrs)))
		fmt.Fprintln(w, "ON CONFLICT (product_name, presentation) DO UPDATE SET price = EXCLUDED.price, cost = EXCLUDED.cost, attributes = EXCLUDED.attributes, updated_at = now();")
	}
	return nil
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
