package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/IBM/sarama"
	saramamocks "github.com/IBM/sarama/mocks"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/Atlas00000/sharevoices/internal/domain"
	"github.com/Atlas00000/sharevoices/internal/events"
	"github.com/Atlas00000/sharevoices/internal/metrics"
)

func testEvent() domain.ArticleEvent {
	return domain.NewArticleEvent(domain.EventArticlePublished, &domain.Article{
		ID:             "5f0c1d5e-8c1b-4c1e-9d5e-2b7f7f0e3a11",
		Slug:           "clean-water-initiatives",
		AuthorID:       "a6f1c2c8-3b0e-4a55-9f57-0d5f0a1f1c22",
		Status:         domain.StatusPublished,
		CurrentVersion: 2,
	}, "editor-1")
}

func producerConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	return cfg
}

func TestPublisher_Publish(t *testing.T) {
	ctx := context.Background()

	t.Run("sends json payload", func(t *testing.T) {
		producer := saramamocks.NewAsyncProducer(t, producerConfig())
		event := testEvent()

		producer.ExpectInputWithCheckerFunctionAndSucceed(func(val []byte) error {
			var got domain.ArticleEvent
			if err := json.Unmarshal(val, &got); err != nil {
				return err
			}
			if got.ArticleID != event.ArticleID || got.Type != domain.EventArticlePublished || got.Version != 2 {
				return fmt.Errorf("unexpected event %+v", got)
			}
			return nil
		})

		before := testutil.ToFloat64(metrics.EventsPublishedTotal.WithLabelValues(string(event.Type), "success"))

		publisher := events.NewPublisher(producer, "content.articles", time.Second)
		publisher.Publish(ctx, event)
		assert.NoError(t, publisher.Close())

		after := testutil.ToFloat64(metrics.EventsPublishedTotal.WithLabelValues(string(event.Type), "success"))
		assert.Equal(t, before+1, after)
	})

	t.Run("broker failure is counted not returned", func(t *testing.T) {
		producer := saramamocks.NewAsyncProducer(t, producerConfig())
		producer.ExpectInputAndFail(errors.New("leader not available"))
		event := testEvent()

		before := testutil.ToFloat64(metrics.DependencyFailuresTotal.WithLabelValues(metrics.DependencyEvents, "publish"))

		publisher := events.NewPublisher(producer, "content.articles", time.Second)
		assert.NotPanics(t, func() { publisher.Publish(ctx, event) })
		assert.NoError(t, publisher.Close())

		after := testutil.ToFloat64(metrics.DependencyFailuresTotal.WithLabelValues(metrics.DependencyEvents, "publish"))
		assert.Equal(t, before+1, after)
	})

	t.Run("stalled producer does not hold the caller", func(t *testing.T) {
		producer := newStalledProducer()
		event := testEvent()

		before := testutil.ToFloat64(metrics.DependencyFailuresTotal.WithLabelValues(metrics.DependencyEvents, "publish"))

		publisher := events.NewPublisher(producer, "content.articles", 20*time.Millisecond)
		started := time.Now()
		publisher.Publish(ctx, event)
		assert.Less(t, time.Since(started), time.Second)
		assert.NoError(t, publisher.Close())

		after := testutil.ToFloat64(metrics.DependencyFailuresTotal.WithLabelValues(metrics.DependencyEvents, "publish"))
		assert.Equal(t, before+1, after)
	})
}

// stalledProducer accepts no input, like a producer whose broker stopped
// acknowledging and whose queue filled up.
type stalledProducer struct {
	sarama.AsyncProducer
	input     chan *sarama.ProducerMessage
	successes chan *sarama.ProducerMessage
	errors    chan *sarama.ProducerError
}

func newStalledProducer() *stalledProducer {
	return &stalledProducer{
		input:     make(chan *sarama.ProducerMessage),
		successes: make(chan *sarama.ProducerMessage),
		errors:    make(chan *sarama.ProducerError),
	}
}

func (p *stalledProducer) Input() chan<- *sarama.ProducerMessage { return p.input }
func (p *stalledProducer) Successes() <-chan *sarama.ProducerMessage { return p.successes }
func (p *stalledProducer) Errors() <-chan *sarama.ProducerError { return p.errors }
func (p *stalledProducer) AsyncClose() {
	close(p.successes)
	close(p.errors)
}

func TestNoopPublisher(t *testing.T) {
	assert.NotPanics(t, func() {
		events.NoopPublisher{}.Publish(context.Background(), testEvent())
	})
}
