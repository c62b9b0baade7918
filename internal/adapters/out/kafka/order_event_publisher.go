package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"campusrun/internal/core/ports"
)

const publishTimeout = 2 * time.Second

// OrderEventPublisher publishes order lifecycle events to a Kafka topic.
// Messages are keyed by order id so every event of one order lands on the
// same partition and consumers observe transitions in order.
type OrderEventPublisher struct {
	writer *kafka.Writer
}

// NewOrderEventPublisher creates a publisher writing to the given topic.
func NewOrderEventPublisher(brokers []string, topic string) (*OrderEventPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("brokers must not be empty")
	}

	if topic == "" {
		return nil, fmt.Errorf("topic must not be empty")
	}

	writer := kafka.NewWriter(kafka.WriterConfig{
		Brokers:  brokers,
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	})

	return &OrderEventPublisher{writer: writer}, nil
}

// PublishOrderStatusChanged serializes the event and writes it to Kafka.
func (p *OrderEventPublisher) PublishOrderStatusChanged(ctx context.Context, event ports.OrderStatusChangedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order status changed event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	message := kafka.Message{
		Key:   []byte(strconv.FormatUint(event.OrderID, 10)),
		Value: payload,
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to publish order status changed event: %w", err)
	}

	return nil
}

// Close releases the underlying Kafka connection.
func (p *OrderEventPublisher) Close() error {
	if p.writer == nil {
		return nil
	}

	return p.writer.Close()
}
