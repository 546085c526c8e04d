package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/evokeessence/evoke_backend/internal/core/domain"
	"github.com/evokeessence/evoke_backend/internal/core/ports/gateways"
	"github.com/segmentio/kafka-go"
)

// messageWriter is the part of *kafka.Writer the producer uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes deposit events to a Kafka topic keyed by user id,
// so events of one user stay ordered within a partition.
type Producer struct {
	writer messageWriter
	logger *slog.Logger
	now    func() time.Time
}

// NewProducer creates a Kafka producer for topic. Writes are asynchronous:
// PublishDepositEvent returns once the message is queued, and delivery
// failures are logged from the writer's completion callback.
func NewProducer(brokers []string, topic string, logger *slog.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		Completion:   logDeliveryFailures(logger),
		Compression:  kafka.Snappy,
		BatchTimeout: 10 * time.Millisecond,
	}
	logger.Info("Kafka producer initialized", slog.String("topic", topic))
	return newProducer(writer, logger)
}

func logDeliveryFailures(logger *slog.Logger) func([]kafka.Message, error) {
	return func(msgs []kafka.Message, err error) {
		if err == nil {
			return
		}
		for _, m := range msgs {
			logger.Error("Failed to deliver deposit event",
				slog.String("key", string(m.Key)),
				slog.String("topic", m.Topic),
				slog.String("error", err.Error()))
		}
	}
}

func newProducer(w messageWriter, logger *slog.Logger) *Producer {
	return &Producer{writer: w, logger: logger, now: time.Now}
}

var _ gateways.DepositEventPublisher = (*Producer)(nil)

// PublishDepositEvent serializes the event as JSON and hands it to the writer.
func (p *Producer) PublishDepositEvent(ctx context.Context, event domain.DepositEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal deposit event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.Deposit.UserID),
		Value: payload,
		Time:  p.now(),
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish deposit event: %w", err)
	}

	p.logger.Debug("Published deposit event",
		slog.String("type", event.Type),
		slog.String("deposit_id", event.Deposit.DepositID))
	return nil
}

// Close flushes and closes the underlying writer.
func (p *Producer) Close() error {
	if p.writer == nil {
		return nil
	}
	p.logger.Info("Closing Kafka producer")
	return p.writer.Close()
}

// NoopPublisher discards events. It is used when no brokers are configured.
type NoopPublisher struct{}

var _ gateways.DepositEventPublisher = NoopPublisher{}

func (NoopPublisher) PublishDepositEvent(context.Context, domain.DepositEvent) error {
	return nil
}
