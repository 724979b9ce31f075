package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/n-smith-public/cs4241e25-final-project/internal/core/domain"
	"github.com/n-smith-public/cs4241e25-final-project/internal/core/ports"
)

type UserService struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	auth     ports.AuthService
}

func NewUserService(users ports.UserRepository, sessions ports.SessionStore, auth ports.AuthService) *UserService {
	return &UserService{users: users, sessions: sessions, auth: auth}
}

// Register creates the account and mails the first code, like a /sendOTP request would.
func (s *UserService) Register(ctx context.Context, displayName, email string) error {
	displayName = strings.TrimSpace(displayName)
	email = domain.NormalizeEmail(email)
	if displayName == "" || email == "" {
		return domain.ErrValidation
	}

	if err := s.users.Create(ctx, domain.User{Email: email, DisplayName: displayName}); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("create user: %w", err)
	}

	return s.auth.IssueChallenge(ctx, email)
}

func (s *UserService) UpdateDisplayName(ctx context.Context, session domain.Session, displayName string) (domain.Session, error) {
	if session.Email == "" {
		return domain.Session{}, domain.ErrUnauthorized
	}
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return domain.Session{}, domain.ErrValidation
	}

	matched, err := s.users.UpdateDisplayName(ctx, session.Email, displayName)
	if err != nil {
		return domain.Session{}, fmt.Errorf("update display name: %w", err)
	}
	if matched == 0 {
		return domain.Session{}, fmt.Errorf("update display name: no user row for %s", session.Email)
	}

	session.DisplayName = displayName
	if err := s.sessions.Save(ctx, session); err != nil {
		return domain.Session{}, fmt.Errorf("save session: %w", err)
	}
	return session, nil
}

var _ ports.UserService = (*UserService)(nil)
