//go:build integration
// +build integration

package tests

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"

	dbadapter "github.com/n-smith-public/cs4241e25-final-project/internal/adapter/db"
	"github.com/n-smith-public/cs4241e25-final-project/internal/config"
)

type IntegrationSuiteBase struct {
	suite.Suite

	client   *mongo.Client
	Database *mongo.Database
}

func (s *IntegrationSuiteBase) SetupSuite() {
	conf := &config.Config{
		MongoURI:            envOrDefault("MONGO_URI", "mongodb://127.0.0.1:27017"),
		MongoConnectTimeout: 3 * time.Second,
	}

	client, err := dbadapter.ConnectDB(conf)
	s.Require().NoError(err)

	ctx, cancel := context.WithTimeout(context.Background(), conf.MongoConnectTimeout)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		s.T().Skipf("skipping integration suite: could not reach mongo: %v", err)
	}

	s.client = client
	s.Database = client.Database(fmt.Sprintf("%s_test_%d", envOrDefault("MONGO_DATABASE", "magnolia"), time.Now().UnixNano()))
}

func (s *IntegrationSuiteBase) TearDownSuite() {
	if s.client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Each run gets its own database; drop it so local runs stay clean.
	s.Require().NoError(s.Database.Drop(ctx))
	s.Require().NoError(s.client.Disconnect(ctx))
}

// ResetDatabase drops every collection and recreates the indexes.
func (s *IntegrationSuiteBase) ResetDatabase() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.Require().NoError(s.Database.Drop(ctx))
	s.Require().NoError(dbadapter.EnsureIndexes(ctx, s.Database))
}

func (s *IntegrationSuiteBase) Stores(transactions bool) stores {
	return stores{
		users: dbadapter.NewUserRepository(s.Database),
		tasks: dbadapter.NewTaskRepository(s.Database),
		bin:   dbadapter.NewBinRepository(s.Database, transactions),
	}
}

func envOrDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
