package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/n-smith-public/cs4241e25-final-project/internal/core/domain"
	"github.com/n-smith-public/cs4241e25-final-project/internal/core/ports"
)

type sessionRecord struct {
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	IssuedAt    time.Time `json:"issuedAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

type SessionStore struct {
	rdb *redis.Client
	Now func() time.Time
}

var _ ports.SessionStore = (*SessionStore)(nil)

func NewSessionStore(rdb *redis.Client) *SessionStore {
	return &SessionStore{rdb: rdb, Now: time.Now}
}

// Save writes the session with a TTL that ends at its expiry; re-saving keeps the original expiry.
func (s *SessionStore) Save(ctx context.Context, session domain.Session) error {
	payload, err := json.Marshal(sessionRecord{
		Email:       session.Email,
		DisplayName: session.DisplayName,
		IssuedAt:    session.IssuedAt,
		ExpiresAt:   session.ExpiresAt,
	})
	if err != nil {
		return err
	}
	ttl := ttlUntil(session.ExpiresAt, s.Now())
	if err := s.rdb.Set(ctx, sessionKeyPrefix+session.ID, payload, ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, id string) (domain.Session, error) {
	payload, err := s.rdb.Get(ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("load session: %w", err)
	}

	var record sessionRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return domain.Session{}, fmt.Errorf("decode session: %w", err)
	}
	return domain.Session{
		ID:          id,
		Email:       record.Email,
		DisplayName: record.DisplayName,
		IssuedAt:    record.IssuedAt,
		ExpiresAt:   record.ExpiresAt,
	}, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, sessionKeyPrefix+id).Err()
}
