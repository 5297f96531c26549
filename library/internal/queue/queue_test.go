package queue_test

import (
	"testing"
	"time"

	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/Astemirdum/library-management/library/internal/queue"
	"github.com/Astemirdum/library-management/pkg/circuit_breaker"
	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEnqueuer_Enqueue(t *testing.T) {
	t.Parallel()
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != "S001" {
			return errors.Errorf("key %q", key)
		}
		if msg.Topic != "library.loans" {
			return errors.Errorf("topic %q", msg.Topic)
		}
		return nil
	})
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		if string(val) != `{"status":"ok"}` {
			return errors.Errorf("value %s", val)
		}
		return nil
	})

	q := queue.NewEnqueuer(producer, circuit_breaker.NewCircuitBreaker(10, time.Second, 0.5, 1), zap.NewNop())
	require.NoError(t, q.Enqueue("library.loans", model.LoanEvent{ID: "1", Type: model.EventBookBorrowed, StudentID: "S001", BookID: "B101"}))
	require.NoError(t, q.Enqueue("other", map[string]string{"status": "ok"}))
	require.NoError(t, q.Close())
}

func TestEnqueuer_BreakerOpens(t *testing.T) {
	t.Parallel()
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	q := queue.NewEnqueuer(producer, circuit_breaker.NewCircuitBreaker(1, time.Hour, 0.5, 1), zap.NewNop())
	err := q.Enqueue("library.loans", model.LoanEvent{StudentID: "S001"})
	require.ErrorIs(t, err, sarama.ErrOutOfBrokers)

	// open breaker: the producer is not called again
	err = q.Enqueue("library.loans", model.LoanEvent{StudentID: "S001"})
	require.ErrorIs(t, err, circuit_breaker.ErrOpenCB)
	require.NoError(t, q.Close())
}

func TestNoop(t *testing.T) {
	t.Parallel()
	q := queue.NewNoop()
	require.NoError(t, q.Enqueue("library.loans", model.LoanEvent{}))
	require.NoError(t, q.Close())
}
