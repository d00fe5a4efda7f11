//go:build integration

package publisher_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kgo"

	"codice/internal/codes/models"
	"codice/internal/codes/publisher"
	"codice/internal/platform/kafka/producer"
	"codice/pkg/testutil/containers"
)

type KafkaPublisherSuite struct {
	suite.Suite
	kafka    *containers.KafkaContainer
	producer *producer.Producer
}

func TestKafkaPublisherSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(KafkaPublisherSuite))
}

func (s *KafkaPublisherSuite) SetupSuite() {
	s.kafka = containers.GetManager().GetKafka(s.T())

	prod, err := producer.New(producer.Config{
		Brokers:         s.kafka.Brokers,
		Acks:            "all",
		Retries:         3,
		DeliveryTimeout: 10 * time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.Require().NoError(err)
	s.producer = prod
}

func (s *KafkaPublisherSuite) TearDownSuite() {
	if s.producer != nil {
		s.producer.Close()
	}
}

// TestPublishedOutcomeRoundTrips verifies the outcome record lands on the
// topic keyed by code and decodes back to the same payload.
func (s *KafkaPublisherSuite) TestPublishedOutcomeRoundTrips() {
	ctx := context.Background()
	topic := "codes-outcomes-it"
	s.Require().NoError(s.kafka.CreateTopic(ctx, topic, 1, 1))

	pub := publisher.NewKafka(s.producer, topic, slog.New(slog.NewTextHandler(io.Discard, nil)))

	outcome := &models.Outcome{
		Code:      "GNTMTT99C27H501F",
		Valid:     true,
		CheckedAt: time.Now().UTC().Truncate(time.Second),
	}
	s.Require().NoError(pub.Publish(ctx, outcome))

	consumer, err := s.kafka.NewConsumer(ctx, "publisher-it", topic)
	s.Require().NoError(err)
	defer consumer.Close()

	record := s.kafka.WaitForMessage(ctx, consumer, 30*time.Second, func(r *kgo.Record) bool {
		return string(r.Key) == outcome.Code
	})
	s.Require().NotNil(record, "outcome record not observed on the topic")

	var got models.Outcome
	s.Require().NoError(json.Unmarshal(record.Value, &got))
	s.Equal(outcome.Code, got.Code)
	s.True(got.Valid)
	s.Equal(outcome.CheckedAt, got.CheckedAt.UTC())
}
