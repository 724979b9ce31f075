package memory

import (
	"context"
	"crypto/subtle"
	"sync"
	"time"

	"github.com/n-smith-public/cs4241e25-final-project/internal/core/domain"
	"github.com/n-smith-public/cs4241e25-final-project/internal/core/ports"
)

// ChallengeStore keeps one challenge per email. Expired challenges stay until overwritten
// or consumed so that verification can tell an expired code from an unknown one.
type ChallengeStore struct {
	mu         sync.Mutex
	challenges map[string]domain.Challenge
}

var _ ports.ChallengeStore = (*ChallengeStore)(nil)

func NewChallengeStore() *ChallengeStore {
	return &ChallengeStore{challenges: make(map[string]domain.Challenge)}
}

func (s *ChallengeStore) Put(_ context.Context, challenge domain.Challenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.challenges[challenge.Email] = challenge
	return nil
}

func (s *ChallengeStore) Get(_ context.Context, email string) (domain.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	challenge, ok := s.challenges[email]
	if !ok {
		return domain.Challenge{}, domain.ErrChallengeNotFound
	}
	return challenge, nil
}

func (s *ChallengeStore) Consume(_ context.Context, email, code string) (domain.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	challenge, ok := s.challenges[email]
	if !ok {
		return domain.Challenge{}, domain.ErrChallengeNotFound
	}
	if subtle.ConstantTimeCompare([]byte(challenge.Code), []byte(code)) != 1 {
		return domain.Challenge{}, domain.ErrInvalidCode
	}
	delete(s.challenges, email)
	return challenge, nil
}

func (s *ChallengeStore) Delete(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.challenges, email)
	return nil
}

type SessionStore struct {
	mu       sync.Mutex
	now      func() time.Time
	sessions map[string]domain.Session
}

var _ ports.SessionStore = (*SessionStore)(nil)

// NewSessionStore drops sessions on read once they expire according to now.
func NewSessionStore(now func() time.Time) *SessionStore {
	if now == nil {
		now = time.Now
	}
	return &SessionStore{now: now, sessions: make(map[string]domain.Session)}
}

func (s *SessionStore) Save(_ context.Context, session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

func (s *SessionStore) Get(_ context.Context, id string) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	if session.Expired(s.now()) {
		delete(s.sessions, id)
		return domain.Session{}, domain.ErrSessionNotFound
	}
	return session, nil
}

func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// RateLimiter is a fixed-window counter per key. A limit of 0 allows everything.
type RateLimiter struct {
	mu      sync.Mutex
	now     func() time.Time
	limit   int
	window  time.Duration
	windows map[string]rateWindow
}

type rateWindow struct {
	start time.Time
	hits  int
}

var _ ports.RateLimiter = (*RateLimiter)(nil)

func NewRateLimiter(limit int, window time.Duration, now func() time.Time) *RateLimiter {
	if now == nil {
		now = time.Now
	}
	return &RateLimiter{now: now, limit: limit, window: window, windows: make(map[string]rateWindow)}
}

func (l *RateLimiter) Allow(_ context.Context, key string) (bool, error) {
	if l.limit <= 0 {
		return true, nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w := l.windows[key]
	if w.start.IsZero() || now.Sub(w.start) >= l.window {
		w = rateWindow{start: now}
	}
	w.hits++
	l.windows[key] = w
	return w.hits <= l.limit, nil
}
