// services/payfast-api/queue/kafka.go
package queue

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// Bus publishes verified IPN notifications for downstream consumers
// (settlement, reconciliation). Rejected notifications are never published.
type Bus struct {
	Brokers []string
	Topic   string
}

func New(brokers []string, topic string) *Bus {
	return &Bus{Brokers: brokers, Topic: topic}
}

func (b *Bus) PublishVerified(ctx context.Context, key, payload []byte) error {
	w := &kafka.Writer{
		Addr:     kafka.TCP(b.Brokers...),
		Topic:    b.Topic,
		Balancer: &kafka.LeastBytes{},
	}
	defer w.Close()
	return w.WriteMessages(ctx, kafka.Message{Key: key, Value: payload})
}
