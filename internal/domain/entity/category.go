package entity

import (
	"strings"

	"github.com/jhoicas/cazuela-chapina-api/internal/domain"
)

// Category línea de producto vendible. Enumeración cerrada: todo switch sobre
// Category debe cubrir CategoryTamal y CategoryBebida.
type Category string

const (
	CategoryTamal  Category = "tamal"
	CategoryBebida Category = "bebida"
)

// Categories devuelve las categorías conocidas en el orden en que se reportan.
func Categories() []Category {
	return []Category{CategoryTamal, CategoryBebida}
}

// ParseCategory normaliza y valida una categoría recibida como texto.
// Acepta también el plural usado en reportes ("Tamales", "Bebidas").
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tamal", "tamales":
		return CategoryTamal, nil
	case "bebida", "bebidas":
		return CategoryBebida, nil
	}
	return "", domain.ErrUnknownCategory
}

// Label nombre para mostrar en reportes.
func (c Category) Label() string {
	switch c {
	case CategoryTamal:
		return "Tamales"
	case CategoryBebida:
		return "Bebidas"
	}
	return string(c)
}

// Valid indica si c es una de las categorías conocidas.
func (c Category) Valid() bool {
	switch c {
	case CategoryTamal, CategoryBebida:
		return true
	}
	return false
}
