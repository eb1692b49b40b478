package metrics

import (
	"strings"
	"time"

	"github.com/jhoicas/cazuela-chapina-api/internal/domain"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
)

// Window intervalo semiabierto [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains indica si t cae dentro de la ventana.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Range nombre de ventana implícita.
type Range string

const (
	RangeToday Range = "today"
	RangeWeek  Range = "week"
	RangeMonth Range = "month"
)

// ParseRange acepta today|week|month (y hoy|semana|mes). Vacío = today.
func ParseRange(s string) (Range, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today", "hoy":
		return RangeToday, nil
	case "week", "semana":
		return RangeWeek, nil
	case "month", "mes":
		return RangeMonth, nil
	}
	return "", domain.ErrInvalidInput
}

// Window resuelve el rango respecto a now usando la zona de now.
func (r Range) Window(now time.Time) Window {
	switch r {
	case RangeWeek:
		return Last7Days(now)
	case RangeMonth:
		return MonthToDate(now)
	}
	return Today(now)
}

// Midnight devuelve las 00:00 del día de t en su misma zona.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Today ventana del día en curso.
func Today(now time.Time) Window {
	start := Midnight(now)
	return Window{Start: start, End: start.AddDate(0, 0, 1)}
}

// Last7Days siete días calendario terminando hoy (hoy incluido).
func Last7Days(now time.Time) Window {
	today := Midnight(now)
	return Window{Start: today.AddDate(0, 0, -6), End: today.AddDate(0, 0, 1)}
}

// MonthToDate desde el día 1 del mes en curso hasta el final de hoy.
func MonthToDate(now time.Time) Window {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return Window{Start: start, End: Midnight(now).AddDate(0, 0, 1)}
}

// Between ventana explícita [start, end).
func Between(start, end time.Time) (Window, error) {
	if !start.Before(end) {
		return Window{}, domain.ErrInvalidInput
	}
	return Window{Start: start, End: end}, nil
}

// FilterByWindow conserva, en el mismo orden, las ventas con timestamp dentro de w.
func FilterByWindow(sales []entity.Sale, w Window) []entity.Sale {
	out := make([]entity.Sale, 0, len(sales))
	for _, s := range sales {
		if w.Contains(s.Timestamp) {
			out = append(out, s)
		}
	}
	return out
}
