// Package publisher delivers batch cleaning outcomes to a Kafka topic so
// downstream consumers can route cleaned records without re-decoding them.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"codice/internal/codes/models"
	"codice/internal/platform/kafka/producer"
)

// Producer is the slice of the platform producer the publisher needs.
type Producer interface {
	Produce(ctx context.Context, msg *producer.Message) error
}

// Kafka publishes outcomes as JSON records. The fiscal code is the record
// key so all outcomes for one code land on the same partition.
type Kafka struct {
	producer Producer
	topic    string
	logger   *slog.Logger
}

// NewKafka constructs a Kafka outcome publisher for the given topic.
func NewKafka(p Producer, topic string, logger *slog.Logger) *Kafka {
	return &Kafka{
		producer: p,
		topic:    topic,
		logger:   logger,
	}
}

// Publish sends one outcome and waits for broker acknowledgement.
func (k *Kafka) Publish(ctx context.Context, outcome *models.Outcome) error {
	payload, err := json.Marshal(outcome)
	if err != nil {
		return fmt.Errorf("marshal outcome: %w", err)
	}

	msg := &producer.Message{
		Topic: k.topic,
		Key:   []byte(outcome.Code),
		Value: payload,
		Headers: map[string]string{
			"content-type": "application/json",
		},
	}
	if err := k.producer.Produce(ctx, msg); err != nil {
		return fmt.Errorf("publish outcome: %w", err)
	}
	return nil
}
