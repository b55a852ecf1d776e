package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"resbook/internal/domain/reservation"
	"resbook/internal/pkg/clock"
	"resbook/internal/pkg/config"
	"resbook/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
	"github.com/segmentio/kafka-go"
)

// KafkaNotifier publishes reservation events to a Kafka topic, keyed by
// resource id so events for one resource stay ordered within a partition.
type KafkaNotifier struct {
	writer       *kafka.Writer
	clock        clock.Clock
	maxRetryWait time.Duration
}

func NewKafkaNotifier(cfg config.NotifierConfig, clk clock.Clock) (*KafkaNotifier, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errs.New("at least one kafka broker is required")
	}
	if cfg.Topic == "" {
		return nil, errs.New("kafka topic cannot be empty")
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{}, // key by resource id for per-resource ordering
		RequiredAcks: kafka.RequireAll,
		WriteTimeout: cfg.WriteTimeout,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			slog.Error("kafka writer error", "detail", fmt.Sprintf(msg, args...))
		}),
	}
	return &KafkaNotifier{
		writer:       writer,
		clock:        clk,
		maxRetryWait: cfg.MaxRetryWait,
	}, nil
}

func (n *KafkaNotifier) NotifyAllocated(ctx context.Context, r *reservation.Reservation) error {
	return n.publish(ctx, NewEvent(EventAllocated, r, n.clock.Now()))
}

func (n *KafkaNotifier) NotifyReleased(ctx context.Context, r *reservation.Reservation) error {
	return n.publish(ctx, NewEvent(EventReleased, r, n.clock.Now()))
}

func (n *KafkaNotifier) publish(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "marshal notification event")
	}
	msg := kafka.Message{
		Key:   []byte(ev.ResourceID.String()),
		Value: payload,
	}

	// Transient broker errors get a bounded exponential retry; the caller
	// treats whatever still fails as log-and-continue.
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = n.maxRetryWait
	op := func() error {
		return n.writer.WriteMessages(ctx, msg)
	}
	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		return errs.Wrap(err, "publish notification event")
	}
	return nil
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
