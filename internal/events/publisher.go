// Package events publishes article lifecycle events and consumes engagement
// events over Kafka.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/IBM/sarama"

	"github.com/Atlas00000/sharevoices/internal/domain"
	"github.com/Atlas00000/sharevoices/internal/logger"
	"github.com/Atlas00000/sharevoices/internal/metrics"
)

// ProducerConfig holds Kafka producer configuration.
type ProducerConfig struct {
	Brokers []string
	Topic   string
	Timeout time.Duration
}

// Publisher sends article events to a topic, keyed by article id so events for
// one article stay ordered within a partition. Publish only enqueues; delivery
// results are logged and counted by a background loop.
type Publisher struct {
	producer sarama.AsyncProducer
	topic    string
	timeout  time.Duration
	wg       sync.WaitGroup
}

// NewProducer creates an asynchronous Kafka producer.
func NewProducer(cfg ProducerConfig) (sarama.AsyncProducer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = sarama.V3_6_0_0
	saramaConfig.Producer.RequiredAcks = sarama.WaitForLocal
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.Retry.Max = 1
	if cfg.Timeout > 0 {
		saramaConfig.Producer.Timeout = cfg.Timeout
		saramaConfig.Net.DialTimeout = cfg.Timeout
		saramaConfig.Net.WriteTimeout = cfg.Timeout
	}

	producer, err := sarama.NewAsyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("create producer: %w", err)
	}
	return producer, nil
}

// NewPublisher wraps a producer and starts draining its results. The producer
// must return both successes and errors. timeout bounds how long Publish waits
// for room in the producer's input queue.
func NewPublisher(producer sarama.AsyncProducer, topic string, timeout time.Duration) *Publisher {
	if timeout <= 0 {
		timeout = defaultEnqueueTimeout
	}
	p := &Publisher{producer: producer, topic: topic, timeout: timeout}
	p.wg.Add(2)
	go p.drainSuccesses()
	go p.drainErrors()
	return p
}

const defaultEnqueueTimeout = 500 * time.Millisecond

// Publish enqueues the event. It never waits on the broker; an event that
// cannot be queued within the timeout is dropped.
func (p *Publisher) Publish(ctx context.Context, event domain.ArticleEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		p.fail(ctx, event, fmt.Errorf("marshal event: %w", err))
		return
	}

	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.ArticleID),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(event.Type)},
		},
		Metadata: event,
	}

	timer := time.NewTimer(p.timeout)
	defer timer.Stop()

	select {
	case p.producer.Input() <- message:
	case <-timer.C:
		p.fail(ctx, event, errors.New("producer queue full"))
	case <-ctx.Done():
		p.fail(ctx, event, ctx.Err())
	}
}

func (p *Publisher) drainSuccesses() {
	defer p.wg.Done()
	for message := range p.producer.Successes() {
		if event, ok := message.Metadata.(domain.ArticleEvent); ok {
			metrics.ObserveEventPublished(string(event.Type), nil)
		}
	}
}

func (p *Publisher) drainErrors() {
	defer p.wg.Done()
	for perr := range p.producer.Errors() {
		event, _ := perr.Msg.Metadata.(domain.ArticleEvent)
		p.fail(context.Background(), event, fmt.Errorf("send message: %w", perr.Err))
	}
}

func (p *Publisher) fail(ctx context.Context, event domain.ArticleEvent, err error) {
	metrics.ObserveEventPublished(string(event.Type), err)
	metrics.ObserveDependencyFailure(metrics.DependencyEvents, "publish")
	logger.WarnContext(ctx, "article event not published",
		slog.String("type", string(event.Type)),
		slog.String("article_id", event.ArticleID),
		slog.String("error", err.Error()))
}

// Close flushes queued events and waits until every delivery result has
// been recorded. Failures are reported through metrics and logs.
func (p *Publisher) Close() error {
	p.producer.AsyncClose()
	p.wg.Wait()
	return nil
}

// NoopPublisher drops every event. Used when events are disabled.
type NoopPublisher struct{}

// Publish does nothing.
func (NoopPublisher) Publish(context.Context, domain.ArticleEvent) {}
