package service_test

import (
	"context"
	"sync"
	"time"

	"github.com/n-smith-public/cs4241e25-final-project/internal/core/domain"
)

var epoch = time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: epoch}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type outboxMailer struct {
	mu    sync.Mutex
	codes map[string]string
	err   error
}

func newOutboxMailer() *outboxMailer {
	return &outboxMailer{codes: make(map[string]string)}
}

func (m *outboxMailer) SendOTP(_ context.Context, to, code string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.codes[to] = code
	return nil
}

func (m *outboxMailer) Code(email string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.codes[email]
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.TaskEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event domain.TaskEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) Types() []domain.TaskEventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]domain.TaskEventType, 0, len(p.events))
	for _, event := range p.events {
		types = append(types, event.Type)
	}
	return types
}

func validFields(name string) domain.TaskFields {
	return domain.TaskFields{
		Name:        name,
		Description: name + " description",
		DueDate:     "2025-10-10T12:00",
		Priority:    domain.PriorityMedium,
	}
}
