package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/zasker/internal/config"
	"github.com/GlebRadaev/zasker/internal/domain"
	"github.com/GlebRadaev/zasker/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
	queueSize     = 256
	workers       = 4
)

// Notifier delivers solution events to an outbound webhook.
// Publish never blocks: when the queue is full the event is dropped.
type Notifier struct {
	url           string
	client        clients.HTTPClientI
	queue         chan domain.SolutionEvent
	workerPool    WorkerPoolI
	retryInterval time.Duration
	done          chan struct{}
}

func New(cfg *config.Config, client clients.HTTPClientI) *Notifier {
	return &Notifier{
		url:           cfg.WebhookURL,
		client:        client,
		queue:         make(chan domain.SolutionEvent, queueSize),
		retryInterval: retryInterval,
		done:          make(chan struct{}),
	}
}

func (n *Notifier) Enabled() bool {
	return n.url != ""
}

func (n *Notifier) Publish(event domain.SolutionEvent) {
	if !n.Enabled() {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	select {
	case n.queue <- event:
		eventsTotal.WithLabelValues(string(event.Type), "queued").Inc()
	default:
		eventsTotal.WithLabelValues(string(event.Type), "dropped").Inc()
		zap.L().Warn("notification queue is full, event dropped",
			zap.String("type", string(event.Type)),
			zap.String("solutionID", event.SolutionID),
		)
	}
}

// Start launches delivery in the background until ctx is cancelled.
func (n *Notifier) Start(ctx context.Context) {
	if !n.Enabled() {
		close(n.done)
		return
	}
	if n.workerPool == nil {
		n.workerPool = NewWorkerPool(workers)
	}
	zap.L().Info("Notifier started", zap.String("url", n.url))
	go n.run(ctx)
}

// Done is closed once delivery has stopped and in-flight events are finished.
func (n *Notifier) Done() <-chan struct{} {
	return n.done
}

func (n *Notifier) run(ctx context.Context) {
	defer close(n.done)
	defer n.workerPool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping notifier", zap.Int("pending", len(n.queue)))
			return
		case event := <-n.queue:
			err := n.workerPool.AddTask(ctx, func() error {
				return n.deliver(ctx, event)
			})
			if err != nil {
				zap.L().Warn("event not delivered", zap.String("type", string(event.Type)), zap.Error(err))
			}
		}
	}
}

func (n *Notifier) deliver(ctx context.Context, event domain.SolutionEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")

	for attempt := 1; attempt <= maxRetries; attempt++ {
		statusCode, _, respHeaders, err := n.client.Post(n.url, headers, body)

		var delay time.Duration
		switch {
		case err != nil:
			zap.L().Warn("Webhook unreachable, retrying", zap.Int("attempt", attempt), zap.Error(err))
			delay = n.retryInterval * time.Duration(attempt)
		case statusCode >= 200 && statusCode < 300:
			eventsTotal.WithLabelValues(string(event.Type), "delivered").Inc()
			return nil
		case statusCode == http.StatusTooManyRequests:
			delay = n.rateLimitDelay(respHeaders, attempt)
			zap.L().Warn("Rate limit detected, retrying", zap.Int("attempt", attempt), zap.Duration("retryAfter", delay))
		case statusCode >= 500:
			zap.L().Warn("Webhook failed, retrying", zap.Int("status", statusCode), zap.Int("attempt", attempt))
			delay = n.retryInterval * time.Duration(attempt)
		default:
			eventsTotal.WithLabelValues(string(event.Type), "failed").Inc()
			return fmt.Errorf("webhook rejected event %s with status %d", event.Type, statusCode)
		}

		if attempt == maxRetries {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	eventsTotal.WithLabelValues(string(event.Type), "failed").Inc()
	return fmt.Errorf("failed to deliver event %s after %d retries", event.Type, maxRetries)
}

func (n *Notifier) rateLimitDelay(respHeaders http.Header, attempt int) time.Duration {
	retryAfter := n.retryInterval * time.Duration(attempt)
	if respHeaders == nil {
		return retryAfter
	}
	if seconds, err := strconv.Atoi(respHeaders.Get("Retry-After")); err == nil && seconds >= 0 {
		retryAfter = time.Duration(seconds) * time.Second
	}
	return retryAfter
}
