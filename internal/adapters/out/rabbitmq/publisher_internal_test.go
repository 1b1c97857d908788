package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"grubdash/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockChannel struct {
	mock.Mock
}

func (m *mockChannel) PublishWithContext(
	ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing,
) error {
	return m.Called(ctx, exchange, key, mandatory, immediate, msg).Error(0)
}

func (m *mockChannel) Close() error {
	return m.Called().Error(0)
}

func testEvent(t *testing.T, kind order.EventKind) order.Event {
	t.Helper()
	line, err := order.NewLine("d1", 2)
	require.NoError(t, err)
	o, err := order.NewOrder("o1", "1 Main St", "555", []order.Line{line})
	require.NoError(t, err)
	return order.NewEvent(kind, o, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
}

func TestPublisher_Publish(t *testing.T) {
	ctx := t.Context()
	ch := new(mockChannel)
	var published amqp.Publishing
	ch.On("PublishWithContext", ctx, "orders", "order.created", false, false, mock.Anything).
		Run(func(args mock.Arguments) {
			published = args.Get(5).(amqp.Publishing)
		}).
		Return(nil).Once()

	err := newPublisher(ch, "orders").Publish(ctx, testEvent(t, order.EventCreated))

	require.NoError(t, err)
	ch.AssertExpectations(t)
	assert.Equal(t, "application/json", published.ContentType)
	assert.Equal(t, amqp.Persistent, published.DeliveryMode)
	assert.Equal(t, "o1:created", published.MessageId)

	var msg EventMessage
	require.NoError(t, json.Unmarshal(published.Body, &msg))
	assert.Equal(t, "created", msg.Kind)
	assert.Equal(t, "o1", msg.OrderID)
	assert.Equal(t, "pending", msg.Status)
	assert.Equal(t, []lineMessage{{DishID: "d1", Quantity: 2}}, msg.Dishes)
}

func TestPublisher_Publish_ReturnsChannelError(t *testing.T) {
	ch := new(mockChannel)
	ch.On("PublishWithContext", mock.Anything, mock.Anything, "order.deleted", false, false, mock.Anything).
		Return(errors.New("channel closed")).Once()

	err := newPublisher(ch, "orders").Publish(t.Context(), testEvent(t, order.EventDeleted))

	require.EqualError(t, err, "channel closed")
}

func TestRoutingKey(t *testing.T) {
	assert.Equal(t, "order.created", RoutingKey(order.EventCreated))
	assert.Equal(t, "order.updated", RoutingKey(order.EventUpdated))
	assert.Equal(t, "order.deleted", RoutingKey(order.EventDeleted))
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.Publish(t.Context(), testEvent(t, order.EventUpdated)))
}
