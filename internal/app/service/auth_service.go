package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/n-smith-public/cs4241e25-final-project/internal/core/domain"
	"github.com/n-smith-public/cs4241e25-final-project/internal/core/ports"
)

const otpCodeBytes = 6

type AuthConfig struct {
	ChallengeTTL  time.Duration
	SessionTTL    time.Duration
	SessionSecret []byte
}

// AuthService issues one-time codes and turns a verified code into a signed session.
type AuthService struct {
	users      ports.UserRepository
	challenges ports.ChallengeStore
	sessions   ports.SessionStore
	limiter    ports.RateLimiter
	mailer     ports.Mailer
	cfg        AuthConfig
	opts       options
}

// NewAuthService builds the service. limiter may be nil to disable rate limiting.
func NewAuthService(
	users ports.UserRepository,
	challenges ports.ChallengeStore,
	sessions ports.SessionStore,
	limiter ports.RateLimiter,
	mailer ports.Mailer,
	cfg AuthConfig,
	opts ...Option,
) (*AuthService, error) {
	if len(cfg.SessionSecret) == 0 {
		return nil, errors.New("session secret is required")
	}
	if cfg.ChallengeTTL <= 0 {
		cfg.ChallengeTTL = domain.ChallengeTTL
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = domain.SessionTTL
	}
	return &AuthService{
		users:      users,
		challenges: challenges,
		sessions:   sessions,
		limiter:    limiter,
		mailer:     mailer,
		cfg:        cfg,
		opts:       newOptions(opts),
	}, nil
}

func (s *AuthService) IssueChallenge(ctx context.Context, email string) error {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return domain.ErrValidation
	}

	if _, err := s.users.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, "otp:"+email)
		if err != nil {
			return fmt.Errorf("rate limit: %w", err)
		}
		if !allowed {
			return domain.ErrRateLimited
		}
	}

	code, err := newOTPCode()
	if err != nil {
		return err
	}

	challenge := domain.Challenge{
		Email:     email,
		Code:      code,
		ExpiresAt: s.opts.now().UTC().Add(s.cfg.ChallengeTTL),
	}
	if err := s.challenges.Put(ctx, challenge); err != nil {
		return fmt.Errorf("store challenge: %w", err)
	}

	if err := s.mailer.SendOTP(ctx, email, code, s.cfg.ChallengeTTL); err != nil {
		return fmt.Errorf("send otp: %w", err)
	}

	s.opts.metrics.OTPIssued()
	zap.L().Info("otp issued", zap.String("email", email))
	return nil
}

func (s *AuthService) VerifyChallenge(ctx context.Context, code, email string) (domain.Session, string, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || code == "" {
		return domain.Session{}, "", domain.ErrValidation
	}

	challenge, err := s.challenges.Consume(ctx, email, code)
	if err != nil {
		if errors.Is(err, domain.ErrChallengeNotFound) || errors.Is(err, domain.ErrInvalidCode) {
			s.opts.metrics.OTPVerified("invalid")
			return domain.Session{}, "", domain.ErrInvalidCode
		}
		return domain.Session{}, "", fmt.Errorf("consume challenge: %w", err)
	}

	// A matching code is spent even when it turns out to be expired.
	now := s.opts.now().UTC()
	if challenge.Expired(now) {
		s.opts.metrics.OTPVerified("expired")
		return domain.Session{}, "", domain.ErrCodeExpired
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.Session{}, "", domain.ErrUserNotFound
		}
		return domain.Session{}, "", fmt.Errorf("find user: %w", err)
	}

	session := domain.Session{
		ID:          uuid.NewString(),
		Email:       user.Email,
		DisplayName: user.DisplayName,
		IssuedAt:    now,
		ExpiresAt:   now.Add(s.cfg.SessionTTL),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return domain.Session{}, "", fmt.Errorf("save session: %w", err)
	}

	token, err := signSessionToken(s.cfg.SessionSecret, session)
	if err != nil {
		return domain.Session{}, "", err
	}

	s.opts.metrics.OTPVerified("success")
	return session, token, nil
}

// Authenticate resolves a token to its live server-side session.
func (s *AuthService) Authenticate(ctx context.Context, token string) (domain.Session, error) {
	if token == "" {
		return domain.Session{}, domain.ErrUnauthorized
	}
	id, email, err := parseSessionToken(s.cfg.SessionSecret, token, s.opts.now)
	if err != nil {
		return domain.Session{}, err
	}

	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return domain.Session{}, domain.ErrUnauthorized
		}
		return domain.Session{}, fmt.Errorf("load session: %w", err)
	}
	if session.Email != email || session.Expired(s.opts.now().UTC()) {
		return domain.Session{}, domain.ErrUnauthorized
	}
	return session, nil
}

// Terminate removes the session behind token. Unknown or invalid tokens are ignored.
func (s *AuthService) Terminate(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	id, _, err := parseSessionToken(s.cfg.SessionSecret, token, s.opts.now)
	if err != nil {
		return nil
	}
	if err := s.sessions.Delete(ctx, id); err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func newOTPCode() (string, error) {
	buf := make([]byte, otpCodeBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate otp code: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

var _ ports.AuthService = (*AuthService)(nil)
