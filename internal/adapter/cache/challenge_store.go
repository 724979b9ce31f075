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

type challengeRecord struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// consumeScript deletes the challenge only when its code matches ARGV[1].
// It returns the stored record on success, 0 on a mismatch and nil when the key is absent.
var consumeScript = redis.NewScript(`
local payload = redis.call("GET", KEYS[1])
if not payload then
	return false
end
local record = cjson.decode(payload)
if record.code ~= ARGV[1] then
	return 0
end
redis.call("DEL", KEYS[1])
return payload
`)

// ChallengeStore keeps one key per email, so issuing for one user never touches another.
type ChallengeStore struct {
	rdb *redis.Client
	Now func() time.Time
}

var _ ports.ChallengeStore = (*ChallengeStore)(nil)

func NewChallengeStore(rdb *redis.Client) *ChallengeStore {
	return &ChallengeStore{rdb: rdb, Now: time.Now}
}

func (s *ChallengeStore) Put(ctx context.Context, challenge domain.Challenge) error {
	payload, err := json.Marshal(challengeRecord{Code: challenge.Code, ExpiresAt: challenge.ExpiresAt})
	if err != nil {
		return err
	}
	ttl := ttlUntil(challenge.ExpiresAt.Add(challengeGrace), s.Now())
	if err := s.rdb.Set(ctx, challengeKeyPrefix+challenge.Email, payload, ttl).Err(); err != nil {
		return fmt.Errorf("store challenge: %w", err)
	}
	return nil
}

func (s *ChallengeStore) Get(ctx context.Context, email string) (domain.Challenge, error) {
	payload, err := s.rdb.Get(ctx, challengeKeyPrefix+email).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Challenge{}, domain.ErrChallengeNotFound
	}
	if err != nil {
		return domain.Challenge{}, fmt.Errorf("load challenge: %w", err)
	}

	var record challengeRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return domain.Challenge{}, fmt.Errorf("decode challenge: %w", err)
	}
	return domain.Challenge{Email: email, Code: record.Code, ExpiresAt: record.ExpiresAt}, nil
}

func (s *ChallengeStore) Consume(ctx context.Context, email, code string) (domain.Challenge, error) {
	result, err := consumeScript.Run(ctx, s.rdb, []string{challengeKeyPrefix + email}, code).Result()
	if errors.Is(err, redis.Nil) {
		return domain.Challenge{}, domain.ErrChallengeNotFound
	}
	if err != nil {
		return domain.Challenge{}, fmt.Errorf("consume challenge: %w", err)
	}

	payload, ok := result.(string)
	if !ok {
		return domain.Challenge{}, domain.ErrInvalidCode
	}
	var record challengeRecord
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return domain.Challenge{}, fmt.Errorf("decode challenge: %w", err)
	}
	return domain.Challenge{Email: email, Code: record.Code, ExpiresAt: record.ExpiresAt}, nil
}

func (s *ChallengeStore) Delete(ctx context.Context, email string) error {
	return s.rdb.Del(ctx, challengeKeyPrefix+email).Err()
}
