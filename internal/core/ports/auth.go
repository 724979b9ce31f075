package ports

import (
	"context"
	"time"

	"github.com/n-smith-public/cs4241e25-final-project/internal/core/domain"
)

// ChallengeStore keeps at most one live challenge per email.
type ChallengeStore interface {
	Put(ctx context.Context, challenge domain.Challenge) error
	// Consume removes and returns the challenge for email in one step, but only when code matches.
	// It returns domain.ErrChallengeNotFound when there is none and domain.ErrInvalidCode on a mismatch,
	// leaving the challenge in place.
	Consume(ctx context.Context, email, code string) (domain.Challenge, error)
}

type SessionStore interface {
	Save(ctx context.Context, session domain.Session) error
	Get(ctx context.Context, id string) (domain.Session, error)
	Delete(ctx context.Context, id string) error
}

// RateLimiter counts hits per key inside a fixed window.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type Mailer interface {
	SendOTP(ctx context.Context, to, code string, ttl time.Duration) error
}

type AuthService interface {
	IssueChallenge(ctx context.Context, email string) error
	VerifyChallenge(ctx context.Context, code, email string) (domain.Session, string, error)
	Authenticate(ctx context.Context, token string) (domain.Session, error)
	Terminate(ctx context.Context, token string) error
}
