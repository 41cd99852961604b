package events

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/config"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"

	"github.com/segmentio/kafka-go"
)

const (
	HeaderEventType = "event_type"
	HeaderEventID   = "event_id"
)

// MessageWriter is satisfied by *kafka.Writer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	logger *slog.Logger
	writer MessageWriter
}

func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *kafkaPublisher {
	return NewPublisher(logger, &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           cfg.BatchTimeout,
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	})
}

func NewPublisher(logger *slog.Logger, writer MessageWriter) *kafkaPublisher {
	return &kafkaPublisher{
		logger: logger.With(slog.String("publisher", "kafka")),
		writer: writer,
	}
}

// Publish writes events keyed by their aggregate so that events for one
// order land on one partition in order.
func (p *kafkaPublisher) Publish(ctx context.Context, events []entities.OutboxEvent) error {
	msgs := make([]kafka.Message, len(events))
	for i, e := range events {
		msgs[i] = ToMessage(e)
	}
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("failed to write %d messages: %w", len(msgs), err)
	}
	p.logger.DebugContext(ctx, "events published", slog.Int("count", len(msgs)))
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

func ToMessage(e entities.OutboxEvent) kafka.Message {
	return kafka.Message{
		Key:   []byte(e.Key),
		Value: e.Payload,
		Time:  e.CreatedAt,
		Headers: []kafka.Header{
			{Key: HeaderEventType, Value: []byte(e.Type)},
			{Key: HeaderEventID, Value: []byte(e.EventID)},
		},
	}
}
