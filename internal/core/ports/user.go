package ports

import (
	"context"

	"github.com/n-smith-public/cs4241e25-final-project/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) error
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	// UpdateDisplayName returns the number of users matched.
	UpdateDisplayName(ctx context.Context, email, displayName string) (int64, error)
}

type UserService interface {
	Register(ctx context.Context, displayName, email string) error
	UpdateDisplayName(ctx context.Context, session domain.Session, displayName string) (domain.Session, error)
}
