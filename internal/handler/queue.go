package handler

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/libris-works/library-service/internal/model"
	"github.com/libris-works/library-service/pkg/circuit_breaker"
	"github.com/libris-works/library-service/pkg/kafka"
)

type Enqueuer interface {
	Enqueue(ev model.ReservationEvent) error
}

// NewEnqueuer wraps the producer in a circuit breaker so a broker outage
// degrades to dropped events instead of piling up blocked sends. A nil
// producer yields a no-op enqueuer.
func NewEnqueuer(producer sarama.SyncProducer) Enqueuer {
	if producer == nil {
		return nopEnqueuer{}
	}
	return &enqueuerImpl{
		producer: producer,
		cb:       circuit_breaker.New(20, 30*time.Second, 0.5, 5),
	}
}

type enqueuerImpl struct {
	producer sarama.SyncProducer
	cb       circuit_breaker.CircuitBreaker
}

func (q *enqueuerImpl) Enqueue(ev model.ReservationEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return q.cb.Call(func() error {
		msg := &sarama.ProducerMessage{
			Topic: kafka.ReservationEventsTopic,
			Key:   sarama.StringEncoder(ev.Username),
			Value: sarama.StringEncoder(data),
		}
		_, _, err := q.producer.SendMessage(msg)
		return err
	})
}

type nopEnqueuer struct{}

func (nopEnqueuer) Enqueue(model.ReservationEvent) error { return nil }
