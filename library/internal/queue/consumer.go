package queue

import (
	"context"

	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

type LoanEventHandler func(ctx context.Context, event model.LoanEvent) error

// Consumer feeds loan events from a consumer group session to a handler.
// Undecodable messages are logged and skipped; messages the handler fails
// on stay unmarked and are redelivered after a rebalance.
type Consumer struct {
	handle LoanEventHandler
	log    *zap.Logger
	ready  chan struct{}
}

func NewConsumer(handle LoanEventHandler, log *zap.Logger) *Consumer {
	return &Consumer{
		handle: handle,
		log:    log.Named("consumer"),
		ready:  make(chan struct{}),
	}
}

// Ready is closed once the first session is set up.
func (c *Consumer) Ready() <-chan struct{} {
	return c.ready
}

func (c *Consumer) Setup(sarama.ConsumerGroupSession) error {
	select {
	case <-c.ready:
	default:
		close(c.ready)
	}
	return nil
}

func (c *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (c *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				c.log.Warn("message channel was closed")
				return nil
			}
			var event model.LoanEvent
			if err := json.Unmarshal(message.Value, &event); err != nil {
				c.log.Error("decode loan event", zap.Error(err), zap.Int64("offset", message.Offset))
				session.MarkMessage(message, "")
				continue
			}
			if err := c.handle(session.Context(), event); err != nil {
				c.log.Error("handle loan event", zap.String("id", event.ID), zap.Error(err))
				continue
			}
			c.log.Debug("message claimed",
				zap.String("topic", message.Topic),
				zap.Int64("offset", message.Offset),
				zap.Time("timestamp", message.Timestamp))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

// AuditLog writes every loan event to log.
func AuditLog(log *zap.Logger) LoanEventHandler {
	log = log.Named("audit")
	return func(_ context.Context, e model.LoanEvent) error {
		log.Info(string(e.Type),
			zap.String("id", e.ID),
			zap.String("student_id", e.StudentID),
			zap.String("book_id", e.BookID),
			zap.Int("fine", e.Fine),
			zap.String("actor", e.Actor),
			zap.Time("occurred_at", e.OccurredAt))
		return nil
	}
}
