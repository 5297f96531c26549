package queue

import (
	"github.com/Astemirdum/library-management/pkg/circuit_breaker"
	"github.com/IBM/sarama"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Enqueuer interface {
	Enqueue(topic string, v any) error
	Close() error
}

// keyer values are partitioned by their key.
type keyer interface {
	Key() string
}

type enqueuerImpl struct {
	producer sarama.SyncProducer
	cb       circuit_breaker.CircuitBreaker
	log      *zap.Logger
}

// NewEnqueuer sends JSON messages through producer. While the circuit
// breaker is open, messages are dropped without touching the broker.
func NewEnqueuer(producer sarama.SyncProducer, cb circuit_breaker.CircuitBreaker, log *zap.Logger) Enqueuer {
	return &enqueuerImpl{
		producer: producer,
		cb:       cb,
		log:      log.Named("queue"),
	}
}

func (q *enqueuerImpl) Enqueue(topic string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "marshal message")
	}
	msg := &sarama.ProducerMessage{Topic: topic, Value: sarama.ByteEncoder(data)}
	if k, ok := v.(keyer); ok {
		msg.Key = sarama.StringEncoder(k.Key())
	}

	err = q.cb.Call(func() error {
		_, _, err := q.producer.SendMessage(msg)
		return err
	})
	if err != nil {
		return errors.Wrapf(err, "send to %s (breaker %s)", topic, q.cb.State())
	}
	q.log.Debug("message sent", zap.String("topic", topic), zap.Int32("partition", msg.Partition), zap.Int64("offset", msg.Offset))
	return nil
}

func (q *enqueuerImpl) Close() error {
	return q.producer.Close()
}

type noop struct{}

// NewNoop drops every message. Used when no broker is configured.
func NewNoop() Enqueuer {
	return noop{}
}

func (noop) Enqueue(string, any) error { return nil }

func (noop) Close() error { return nil }
