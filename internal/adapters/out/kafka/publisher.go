// Package kafka publishes domain events to a Kafka broker using segmentio's
// kafka-go writer.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"negoce/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// StepChangedPublisher emits order step change events to a single topic,
// keyed by order id so all events for one order land on the same partition.
type StepChangedPublisher struct {
	writer *kafka.Writer
}

// NewStepChangedPublisher builds a publisher with its own writer.
// Close must be called on shutdown to flush pending messages.
func NewStepChangedPublisher(brokers []string, topic string) *StepChangedPublisher {
	return &StepChangedPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// PublishOrderStepChanged serializes the event as JSON and writes it to the
// configured topic.
func (p *StepChangedPublisher) PublishOrderStepChanged(ctx context.Context, event ports.OrderStepChanged) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal step change event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("write step change event: %w", err)
	}

	return nil
}

// Close flushes and releases the underlying writer.
func (p *StepChangedPublisher) Close() error {
	return p.writer.Close()
}
