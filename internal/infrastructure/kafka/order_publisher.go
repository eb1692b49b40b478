// Package kafka publica los eventos de órdenes hacia los brokers.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/jhoicas/cazuela-chapina-api/internal/application/dto"
	"github.com/jhoicas/cazuela-chapina-api/internal/application/ports"
	"github.com/jhoicas/cazuela-chapina-api/pkg/config"
)

var _ ports.OrderPublisher = (*OrderPublisher)(nil)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// OrderPublisher escribe un mensaje por orden creada en el topic configurado.
type OrderPublisher struct {
	w messageWriter
}

// NewOrderPublisher crea el writer; la conexión a los brokers se abre en el primer envío.
func NewOrderPublisher(cfg config.KafkaConfig) *OrderPublisher {
	return &OrderPublisher{w: &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.Brokers...),
		Topic:                  cfg.OrderTopic,
		Balancer:               &kafkago.LeastBytes{},
		AllowAutoTopicCreation: true,
		WriteTimeout:           5 * time.Second,
	}}
}

// PublishOrderCreated serializa el evento como JSON con clave "order-created-<id>".
func (p *OrderPublisher) PublishOrderCreated(ctx context.Context, evt dto.OrderCreatedEvent) error {
	msg, err := orderMessage(evt)
	if err != nil {
		return err
	}
	if err := p.w.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka: publicar orden %s: %w", evt.OrderID, err)
	}
	return nil
}

// Close vacía los mensajes pendientes y cierra las conexiones.
func (p *OrderPublisher) Close() error {
	return p.w.Close()
}

func orderMessage(evt dto.OrderCreatedEvent) (kafkago.Message, error) {
	value, err := json.Marshal(evt)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("kafka: serializar orden: %w", err)
	}
	return kafkago.Message{
		Key:   []byte("order-created-" + evt.OrderID),
		Value: value,
		Time:  evt.CreatedAt,
	}, nil
}
