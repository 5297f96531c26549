package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Astemirdum/library-management/library/config"
	"github.com/Astemirdum/library-management/library/internal/queue"
	"github.com/Astemirdum/library-management/pkg/kafka"
	"github.com/Astemirdum/library-management/pkg/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Audit tails the loan topic and logs every event until ctx is done.
func Audit(ctx context.Context, cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "library-audit")
	defer log.Sync() //nolint:errcheck

	if !cfg.Kafka.Enabled() {
		return errors.New("KAFKA_ADDRS is required for audit")
	}
	group, err := kafka.NewConsumerGroup(cfg.Kafka, kafka.AuditConsumerGroup)
	if err != nil {
		return errors.Wrap(err, "kafka.NewConsumerGroup")
	}
	defer func() {
		if err := group.Close(); err != nil {
			log.Warn("consumer group close", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := queue.NewConsumer(queue.AuditLog(log), log)
	go func() {
		select {
		case <-consumer.Ready():
			log.Info("audit consumer up", zap.String("topic", cfg.Kafka.LoanTopic))
		case <-ctx.Done():
		}
	}()
	return kafka.Consume(ctx, group, consumer, cfg.Kafka.LoanTopic)
}
