package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cazuela-chapina-api/internal/domain"
)

const dateLayout = "2006-01-02"

// parseDateRange lee ?desde=YYYY-MM-DD&hasta=YYYY-MM-DD en loc y devuelve [start, end).
// hasta es inclusive: end es la medianoche del día siguiente. Sin parámetros cubre los
// últimos defaultDays días hasta hoy.
func parseDateRange(c *fiber.Ctx, loc *time.Location, now time.Time, defaultDays int) (time.Time, time.Time, error) {
	now = now.In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	end := today.AddDate(0, 0, 1)
	if s := c.Query("hasta"); s != "" {
		d, err := time.ParseInLocation(dateLayout, s, loc)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidInput
		}
		end = d.AddDate(0, 0, 1)
	}

	start := end.AddDate(0, 0, -defaultDays)
	if s := c.Query("desde"); s != "" {
		d, err := time.ParseInLocation(dateLayout, s, loc)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidInput
		}
		start = d
	}
	if !start.Before(end) {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	return start, end, nil
}
