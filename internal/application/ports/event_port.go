package ports

import (
	"context"

	"github.com/jhoicas/cazuela-chapina-api/internal/application/dto"
)

// OrderPublisher publica eventos de órdenes hacia otros sistemas (cocina, contabilidad).
type OrderPublisher interface {
	PublishOrderCreated(ctx context.Context, evt dto.OrderCreatedEvent) error
}

// NopOrderPublisher descarta los eventos (sin brokers configurados).
type NopOrderPublisher struct{}

func (NopOrderPublisher) PublishOrderCreated(context.Context, dto.OrderCreatedEvent) error { return nil }
