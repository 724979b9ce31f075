package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/n-smith-public/cs4241e25-final-project/internal/core/domain"
	"github.com/n-smith-public/cs4241e25-final-project/internal/core/ports"
)

type UserRepository struct {
	col *mongo.Collection
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(database *mongo.Database) *UserRepository {
	return &UserRepository{col: database.Collection(usersCollection)}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) error {
	_, err := r.col.InsertOne(ctx, userDocument{Email: user.Email, DisplayName: user.DisplayName})
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrUserExists
	}
	return err
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	var doc userDocument
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return domain.User{Email: doc.Email, DisplayName: doc.DisplayName}, nil
}

func (r *UserRepository) UpdateDisplayName(ctx context.Context, email, displayName string) (int64, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"displayName": displayName}},
	)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}
