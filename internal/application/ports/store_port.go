package ports

import (
	"context"

	"github.com/jhoicas/cazuela-chapina-api/internal/domain/cart"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
)

// CartStore persiste el carrito de cada sesión de caja.
type CartStore interface {
	// Load devuelve el carrito de la sesión; uno vacío si no existe.
	Load(ctx context.Context, sessionID string) (*cart.Cart, error)
	Save(ctx context.Context, sessionID string, c *cart.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// SessionStore ciclo de vida de las sesiones: Create en login, Delete en logout.
type SessionStore interface {
	Create(ctx context.Context, s *entity.Session) error
	// Get devuelve domain.ErrSessionNotFound si la sesión no existe o venció.
	Get(ctx context.Context, sessionID string) (*entity.Session, error)
	Delete(ctx context.Context, sessionID string) error
}
