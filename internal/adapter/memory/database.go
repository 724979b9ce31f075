// Package memory holds process-local implementations of the repository and store ports.
// They back the dev profile (STORE_DRIVER=memory) and the service tests.
package memory

import (
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/n-smith-public/cs4241e25-final-project/internal/core/domain"
)

// Database is shared by the user, task and bin repositories so a bin move is one locked step.
type Database struct {
	mu    sync.Mutex
	users map[string]domain.User
	tasks []domain.Task
	bin   []domain.BinEntry
}

func NewDatabase() *Database {
	return &Database{users: make(map[string]domain.User)}
}

// newID returns ids shaped like the Mongo adapter's so clients see no difference.
func newID() string {
	return primitive.NewObjectID().Hex()
}

func validIDs(ids []string) error {
	for _, id := range ids {
		if _, err := primitive.ObjectIDFromHex(id); err != nil {
			return domain.ErrInvalidID
		}
	}
	return nil
}

func contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
