package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cazuela-chapina-api/internal/application/dto"
)

type fakeWriter struct {
	msgs   []kafkago.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error { f.closed = true; return nil }

func sampleEvent() dto.OrderCreatedEvent {
	return dto.OrderCreatedEvent{
		OrderID:  "o-1",
		BranchID: "b-1",
		StaffID:  "u-1",
		Items: []dto.OrderEventItem{
			{ItemID: "v-1", Quantity: 2, UnitPrice: decimal.RequireFromString("12.50")},
		},
		Total:         decimal.RequireFromString("28.00"),
		PaymentMethod: "efectivo",
		CreatedAt:     time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestPublishOrderCreated_ClaveYPayload(t *testing.T) {
	w := &fakeWriter{}
	p := &OrderPublisher{w: w}

	require.NoError(t, p.PublishOrderCreated(context.Background(), sampleEvent()))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "order-created-o-1", string(w.msgs[0].Key))

	var got dto.OrderCreatedEvent
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &got))
	assert.Equal(t, "o-1", got.OrderID)
	assert.Equal(t, "b-1", got.BranchID)
	require.Len(t, got.Items, 1)
	assert.True(t, got.Total.Equal(decimal.RequireFromString("28.00")))
}

func TestPublishOrderCreated_ErrorDelBroker(t *testing.T) {
	p := &OrderPublisher{w: &fakeWriter{err: errors.New("broker caído")}}

	err := p.PublishOrderCreated(context.Background(), sampleEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "o-1")
}

func TestClose(t *testing.T) {
	w := &fakeWriter{}
	require.NoError(t, (&OrderPublisher{w: w}).Close())
	assert.True(t, w.closed)
}
