package memory

import (
	"context"

	"github.com/n-smith-public/cs4241e25-final-project/internal/core/domain"
	"github.com/n-smith-public/cs4241e25-final-project/internal/core/ports"
)

type UserRepository struct {
	db *Database
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *Database) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(_ context.Context, user domain.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.users[user.Email]; ok {
		return domain.ErrUserExists
	}
	r.db.users[user.Email] = user
	return nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	user, ok := r.db.users[email]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return user, nil
}

func (r *UserRepository) UpdateDisplayName(_ context.Context, email, displayName string) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	user, ok := r.db.users[email]
	if !ok {
		return 0, nil
	}
	user.DisplayName = displayName
	r.db.users[email] = user
	return 1, nil
}
