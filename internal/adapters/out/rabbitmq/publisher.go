// Package rabbitmq publishes order events to a RabbitMQ topic exchange.
// Each event is a JSON document routed with the key order.<kind>.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"grubdash/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
)

// DefaultExchange is used when no exchange name is configured.
const DefaultExchange = "orders_topic"

type lineMessage struct {
	DishID   string `json:"dishId"`
	Quantity int64  `json:"quantity"`
}

// EventMessage is the wire form of an order event.
type EventMessage struct {
	Kind         string        `json:"kind"`
	OrderID      string        `json:"orderId"`
	DeliverTo    string        `json:"deliverTo"`
	MobileNumber string        `json:"mobileNumber"`
	Status       string        `json:"status"`
	Dishes       []lineMessage `json:"dishes"`
	OccurredAt   time.Time     `json:"occurredAt"`
}

func NewEventMessage(evt order.Event) EventMessage {
	dishes := make([]lineMessage, 0, len(evt.Lines))
	for _, line := range evt.Lines {
		dishes = append(dishes, lineMessage{DishID: line.DishID(), Quantity: line.Quantity()})
	}

	return EventMessage{
		Kind:         string(evt.Kind),
		OrderID:      evt.OrderID,
		DeliverTo:    evt.DeliverTo,
		MobileNumber: evt.MobileNumber,
		Status:       evt.Status.String(),
		Dishes:       dishes,
		OccurredAt:   evt.OccurredAt,
	}
}

// RoutingKey is order.<kind>, e.g. order.created.
func RoutingKey(kind order.EventKind) string {
	return "order." + string(kind)
}

// channel is the part of *amqp.Channel the publisher uses.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher implements ports.OrderEventPublisher over one AMQP channel.
type Publisher struct {
	conn     *amqp.Connection
	ch       channel
	exchange string

	// mu serializes publishing; an AMQP channel is not safe for concurrent use.
	mu sync.Mutex
}

// Dial connects to url and declares a durable topic exchange.
func Dial(url, exchange string) (*Publisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err = ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	return &Publisher{conn: conn, ch: ch, exchange: exchange}, nil
}

func newPublisher(ch channel, exchange string) *Publisher {
	return &Publisher{ch: ch, exchange: exchange}
}

func (p *Publisher) Publish(ctx context.Context, evt order.Event) error {
	body, err := json.Marshal(NewEventMessage(evt))
	if err != nil {
		return fmt.Errorf("encode order event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.ch.PublishWithContext(ctx, p.exchange, RoutingKey(evt.Kind), false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    evt.OrderID + ":" + string(evt.Kind),
		Timestamp:    evt.OccurredAt,
		Body:         body,
	})
}

// Close releases the channel and the connection.
func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NopPublisher drops every event. It stands in when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, order.Event) error {
	return nil
}
