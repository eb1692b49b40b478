package http

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/jhoicas/cazuela-chapina-api/internal/application/dto"
)

// LoginRateLimit limita los intentos de login por IP con un token bucket (x/time/rate).
// perMinute <= 0 desactiva el límite. Los buckets sin uso por 10 min se descartan.
func LoginRateLimit(perMinute int) fiber.Handler {
	if perMinute <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	type entry struct {
		lim  *rate.Limiter
		seen time.Time
	}
	var (
		mu      sync.Mutex
		buckets = make(map[string]*entry)
		every   = rate.Every(time.Minute / time.Duration(perMinute))
		lastGC  = time.Now()
	)
	return func(c *fiber.Ctx) error {
		now := time.Now()
		mu.Lock()
		if now.Sub(lastGC) > time.Minute {
			for ip, e := range buckets {
				if now.Sub(e.seen) > 10*time.Minute {
					delete(buckets, ip)
				}
			}
			lastGC = now
		}
		e, ok := buckets[c.IP()]
		if !ok {
			e = &entry{lim: rate.NewLimiter(every, perMinute)}
			buckets[c.IP()] = e
		}
		e.seen = now
		allowed := e.lim.AllowN(now, 1)
		mu.Unlock()

		if !allowed {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "RATE_LIMITED", Message: "demasiados intentos de login; espere un minuto"})
		}
		return c.Next()
	}
}
