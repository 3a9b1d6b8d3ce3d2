package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/IBM/sarama"

	"github.com/Atlas00000/sharevoices/internal/domain"
	"github.com/Atlas00000/sharevoices/internal/logger"
	"github.com/Atlas00000/sharevoices/internal/metrics"
)

// EngagementRecorder applies an engagement event to the article store.
type EngagementRecorder interface {
	RecordEngagement(ctx context.Context, event domain.EngagementEvent) error
}

// ConsumerConfig holds Kafka consumer configuration.
type ConsumerConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

// Consumer reads engagement events from a consumer group.
type Consumer struct {
	group   sarama.ConsumerGroup
	handler *EngagementHandler
	topic   string
	groupID string
	started bool
	done    chan struct{}
}

// NewConsumer creates a consumer group member for the engagement topic.
func NewConsumer(cfg ConsumerConfig, recorder EngagementRecorder) (*Consumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = sarama.V3_6_0_0
	saramaConfig.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	saramaConfig.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.GroupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("create consumer group: %w", err)
	}

	return &Consumer{
		group:   group,
		handler: NewEngagementHandler(recorder),
		topic:   cfg.Topic,
		groupID: cfg.GroupID,
		done:    make(chan struct{}),
	}, nil
}

// Start consumes in the background until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	log := logger.WithFields(
		slog.String("group", c.groupID),
		slog.String("topic", c.topic))

	c.started = true
	go func() {
		defer close(c.done)
		for {
			if err := c.group.Consume(ctx, []string{c.topic}, c.handler); err != nil {
				if errors.Is(err, sarama.ErrClosedConsumerGroup) {
					return
				}
				log.ErrorContext(ctx, "engagement consumer error", slog.String("error", err.Error()))
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	go func() {
		for err := range c.group.Errors() {
			log.Error("engagement consumer group error", slog.String("error", err.Error()))
		}
	}()

	log.Info("engagement consumer started")
}

// Close stops consumption and waits for the consume loop to exit.
func (c *Consumer) Close() error {
	err := c.group.Close()
	if c.started {
		<-c.done
	}
	return err
}

const (
	defaultRetryBackoff    = 200 * time.Millisecond
	defaultMaxRetryBackoff = 10 * time.Second
)

// HandlerOption configures an EngagementHandler.
type HandlerOption func(*EngagementHandler)

// WithRetryBackoff sets the first and the largest delay between attempts at
// an event that failed to apply.
func WithRetryBackoff(initial, limit time.Duration) HandlerOption {
	return func(h *EngagementHandler) {
		if initial > 0 {
			h.backoff = initial
		}
		if limit >= h.backoff {
			h.maxBackoff = limit
		}
	}
}

// EngagementHandler implements sarama.ConsumerGroupHandler.
type EngagementHandler struct {
	recorder   EngagementRecorder
	backoff    time.Duration
	maxBackoff time.Duration
}

// NewEngagementHandler creates a handler that forwards events to recorder.
func NewEngagementHandler(recorder EngagementRecorder, options ...HandlerOption) *EngagementHandler {
	h := &EngagementHandler{
		recorder:   recorder,
		backoff:    defaultRetryBackoff,
		maxBackoff: defaultMaxRetryBackoff,
	}
	for _, option := range options {
		option(h)
	}
	return h
}

// Setup is run at the beginning of a new session.
func (h *EngagementHandler) Setup(sarama.ConsumerGroupSession) error { return nil }

// Cleanup is run at the end of a session.
func (h *EngagementHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

// ConsumeClaim processes the messages of one partition in offset order. A
// message is marked only once it is applied or skipped, and the next message
// is not read before that, so a committed offset never passes a lost event.
func (h *EngagementHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	ctx := session.Context()
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			if !h.apply(ctx, message) {
				return nil
			}
			session.MarkMessage(message, "")
		case <-ctx.Done():
			return nil
		}
	}
}

// apply retries message until HandleMessage accepts it. It reports false when
// ctx ends first; the message then stays uncommitted and is read again by the
// next owner of the partition.
func (h *EngagementHandler) apply(ctx context.Context, message *sarama.ConsumerMessage) bool {
	backoff := h.backoff
	for attempt := 1; ; attempt++ {
		if h.HandleMessage(ctx, message.Value) {
			return true
		}
		if ctx.Err() != nil {
			return false
		}

		logger.WarnContext(ctx, "retrying engagement event",
			slog.Int("partition", int(message.Partition)),
			slog.Int64("offset", message.Offset),
			slog.Int("attempt", attempt),
			slog.Duration("backoff", backoff))

		select {
		case <-ctx.Done():
			return false
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, h.maxBackoff)
	}
}

// HandleMessage applies one message and reports whether its offset may be
// committed. Malformed events and events for unknown articles are skipped;
// other failures report false and the message must be tried again.
func (h *EngagementHandler) HandleMessage(ctx context.Context, payload []byte) bool {
	var event domain.EngagementEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		metrics.ObserveEngagement("unknown", "malformed")
		logger.WarnContext(ctx, "skipping malformed engagement event", slog.String("error", err.Error()))
		return true
	}

	err := h.recorder.RecordEngagement(ctx, event)
	switch {
	case err == nil:
		metrics.ObserveEngagement(string(event.Kind), "applied")
		return true
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrValidation):
		metrics.ObserveEngagement(string(event.Kind), "skipped")
		logger.WarnContext(ctx, "skipping engagement event",
			slog.String("article_id", event.ArticleID),
			slog.String("kind", string(event.Kind)),
			slog.String("error", err.Error()))
		return true
	default:
		metrics.ObserveEngagement(string(event.Kind), "error")
		logger.ErrorContext(ctx, "failed to apply engagement event",
			slog.String("article_id", event.ArticleID),
			slog.String("error", err.Error()))
		return false
	}
}
