package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"github.com/jhoicas/cazuela-chapina-api/internal/application/ports"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/cart"
)

var _ ports.CartStore = (*CartStore)(nil)

// CartStore guarda las líneas del carrito de cada sesión como JSON.
// Cada Save renueva el TTL; un carrito abandonado desaparece solo.
type CartStore struct {
	rdb *goredis.Client
	ttl time.Duration
}

func NewCartStore(rdb *goredis.Client, ttl time.Duration) *CartStore {
	return &CartStore{rdb: rdb, ttl: ttl}
}

// Load devuelve un carrito vacío si la sesión no tiene uno guardado.
func (s *CartStore) Load(ctx context.Context, sessionID string) (*cart.Cart, error) {
	raw, err := s.rdb.Get(ctx, cartPrefix+sessionID).Bytes()
	if errors.Is(err, goredis.Nil) {
		return cart.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis: leer carrito: %w", err)
	}
	var lines []cart.Line
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, fmt.Errorf("redis: carrito corrupto: %w", err)
	}
	return cart.FromLines(lines)
}

// Save persiste el carrito; uno vacío se borra en lugar de guardarse.
func (s *CartStore) Save(ctx context.Context, sessionID string, c *cart.Cart) error {
	if c == nil || c.IsEmpty() {
		return s.Delete(ctx, sessionID)
	}
	raw, err := json.Marshal(c.Lines())
	if err != nil {
		return fmt.Errorf("redis: serializar carrito: %w", err)
	}
	if err := s.rdb.Set(ctx, cartPrefix+sessionID, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis: guardar carrito: %w", err)
	}
	return nil
}

func (s *CartStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.rdb.Del(ctx, cartPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("redis: borrar carrito: %w", err)
	}
	return nil
}
