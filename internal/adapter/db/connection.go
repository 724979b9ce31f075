package db

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/n-smith-public/cs4241e25-final-project/internal/config"
)

const (
	usersCollection = "users"
	tasksCollection = "tasks"
	binCollection   = "bin"
)

// ConnectDB builds the client without waiting for the server; use Readiness to learn when it answers.
func ConnectDB(conf *config.Config) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(conf.MongoURI).
		SetServerSelectionTimeout(conf.MongoConnectTimeout)

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	return client, nil
}

// Readiness flips to ready after the first successful ping and stays there.
type Readiness struct {
	ready atomic.Bool
}

func (r *Readiness) Ready() bool {
	return r.ready.Load()
}

func (r *Readiness) MarkReady() {
	r.ready.Store(true)
}

// Watch pings until the server answers or ctx is done.
func (r *Readiness) Watch(ctx context.Context, client *mongo.Client, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		pingCtx, cancel := context.WithTimeout(ctx, interval)
		err := client.Ping(pingCtx, nil)
		cancel()
		if err == nil {
			r.MarkReady()
			zap.L().Info("mongodb is reachable")
			return
		}
		zap.L().Warn("mongodb not reachable yet", zap.Error(err))

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
