package order_events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"tracker/internal/dto"
	"tracker/internal/entities"
	retrierconfig "tracker/pkg/retrier"
	"tracker/pkg/retrier/backoff_adapter"
)

const headerType = "event_type"

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
	maxAttempts     = 4
)

type Publisher struct {
	producer producer
	retrier  retrier
	topic    string
	timeout  time.Duration
}

func New(producer producer, topic string, timeout time.Duration) *Publisher {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		MaxAttempts:     maxAttempts,
		ShouldRetry:     isRetryableError,
	}

	return &Publisher{
		producer: producer,
		retrier:  backoff_adapter.New(retryConfig),
		topic:    topic,
		timeout:  timeout,
	}
}

// PublishStatusChanged отправляет событие с ключом id заявки:
// все события одной заявки попадают в одну партицию и идут по порядку.
func (p *Publisher) PublishStatusChanged(ctx context.Context, event entities.OrderStatusChanged) error {
	payload, err := json.Marshal(dto.NewOrderStatusChangedEvent(event))
	if err != nil {
		return fmt.Errorf("gateway order events, encode: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte(headerType), Value: []byte(dto.EventTypeOrderStatusChanged)},
		},
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	err = p.executeWithMetrics(ctx, func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, _, err := p.producer.SendMessage(msg)
		return err
	})
	if err != nil {
		return fmt.Errorf("gateway order events, publish %s: %w", event.OrderID, err)
	}

	return nil
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, sarama.ErrOutOfBrokers),
		errors.Is(err, sarama.ErrNotConnected),
		errors.Is(err, sarama.ErrLeaderNotAvailable),
		errors.Is(err, sarama.ErrNotLeaderForPartition),
		errors.Is(err, sarama.ErrRequestTimedOut),
		errors.Is(err, sarama.ErrNotEnoughReplicas),
		errors.Is(err, sarama.ErrNotEnoughReplicasAfterAppend):
		return true
	default:
		return false
	}
}

// latency metric -> attempts metric -> retrier -> producer
func (p *Publisher) executeWithMetrics(ctx context.Context, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := p.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	result := resultLabel(err)
	PublishDuration.WithLabelValues(p.topic, result).Observe(time.Since(start).Seconds())
	PublishAttempts.WithLabelValues(p.topic, result).Observe(float64(attempt))

	return err
}

func resultLabel(err error) string {
	if err == nil {
		return "OK"
	}

	var kerr sarama.KError
	switch {
	case errors.As(err, &kerr):
		return fmt.Sprintf("KAFKA_%d", int16(kerr))
	case errors.Is(err, context.DeadlineExceeded):
		return "DEADLINE_EXCEEDED"
	case errors.Is(err, context.Canceled):
		return "CANCELED"
	case isRetryableError(err):
		return "UNAVAILABLE"
	default:
		return "UNKNOWN"
	}
}
