package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/n-smith-public/cs4241e25-final-project/internal/core/domain"
	"github.com/n-smith-public/cs4241e25-final-project/internal/core/ports"
	"github.com/n-smith-public/cs4241e25-final-project/internal/metrics"
)

type options struct {
	now     func() time.Time
	events  ports.EventPublisher
	metrics *metrics.Metrics
}

type Option func(*options)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func WithEvents(publisher ports.EventPublisher) Option {
	return func(o *options) {
		if publisher != nil {
			o.events = publisher
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

func newOptions(opts []Option) options {
	o := options{now: time.Now, events: nopPublisher{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// publish never fails the caller: the state change already happened.
func (o options) publish(ctx context.Context, eventType domain.TaskEventType, owner string, ids []string, count int) {
	event := domain.TaskEvent{
		Type:       eventType,
		OwnerEmail: owner,
		TaskIDs:    ids,
		Count:      count,
		OccurredAt: o.now().UTC(),
	}
	if err := o.events.Publish(ctx, event); err != nil {
		zap.L().Warn("failed to publish task event", zap.String("type", string(eventType)), zap.Error(err))
	}
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, domain.TaskEvent) error { return nil }
func (nopPublisher) Close() error                                    { return nil }

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
