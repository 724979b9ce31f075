package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/n-smith-public/cs4241e25-final-project/internal/adapter/cache"
	dbadapter "github.com/n-smith-public/cs4241e25-final-project/internal/adapter/db"
	"github.com/n-smith-public/cs4241e25-final-project/internal/adapter/events"
	httpadapter "github.com/n-smith-public/cs4241e25-final-project/internal/adapter/http"
	"github.com/n-smith-public/cs4241e25-final-project/internal/adapter/http/handlers"
	httpmiddleware "github.com/n-smith-public/cs4241e25-final-project/internal/adapter/http/middleware"
	"github.com/n-smith-public/cs4241e25-final-project/internal/adapter/ical"
	"github.com/n-smith-public/cs4241e25-final-project/internal/adapter/mail"
	"github.com/n-smith-public/cs4241e25-final-project/internal/adapter/memory"
	appservice "github.com/n-smith-public/cs4241e25-final-project/internal/app/service"
	"github.com/n-smith-public/cs4241e25-final-project/internal/config"
	"github.com/n-smith-public/cs4241e25-final-project/internal/core/ports"
	"github.com/n-smith-public/cs4241e25-final-project/internal/metrics"
)

const (
	readinessInterval = 2 * time.Second
	shutdownTimeout   = 10 * time.Second
)

type repositories struct {
	users ports.UserRepository
	tasks ports.TaskRepository
	bin   ports.BinRepository
	ready func() bool
}

type authStores struct {
	challenges ports.ChallengeStore
	sessions   ports.SessionStore
	limiter    ports.RateLimiter
}

func runServe(parent context.Context) error {
	cfg, done, err := setup()
	if err != nil {
		return err
	}
	defer done()
	logger := zap.L()

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	checks := map[string]handlers.Pinger{}

	repos, closeStore, err := openStore(ctx, cfg, checks)
	if err != nil {
		return err
	}
	defer closeStore()

	stores, closeCache, err := openAuthStores(ctx, cfg, checks)
	if err != nil {
		return err
	}
	defer closeCache()

	mailer, err := openMailer(cfg)
	if err != nil {
		return err
	}

	publisher := events.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("failed to close event publisher", zap.Error(err))
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	authService, err := appservice.NewAuthService(
		repos.users, stores.challenges, stores.sessions, stores.limiter, mailer,
		appservice.AuthConfig{
			ChallengeTTL:  cfg.OTPTTL,
			SessionTTL:    cfg.SessionTTL,
			SessionSecret: []byte(cfg.SessionSecret),
		},
		appservice.WithMetrics(m),
	)
	if err != nil {
		return err
	}
	userService := appservice.NewUserService(repos.users, stores.sessions, authService)
	taskService := appservice.NewTaskService(repos.tasks, appservice.WithEvents(publisher), appservice.WithMetrics(m))
	binService := appservice.NewBinService(repos.bin, cfg.BinRetention, appservice.WithEvents(publisher), appservice.WithMetrics(m))
	importService := appservice.NewImportService(ical.Parser{}, taskService, appservice.WithMetrics(m))

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger, m))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return err
	}

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health: handlers.NewHealthHandler(checks),
		Pages:  handlers.NewPageHandler(cfg.StaticDir),
		Auth:   handlers.NewAuthHandler(authService, cfg.CookieSecure),
		Users:  handlers.NewUserHandler(userService, cfg.CookieSecure),
		Tasks:  handlers.NewTaskHandler(taskService),
		Bin:    handlers.NewBinHandler(binService),
		Import: handlers.NewImportHandler(importService),
	}, httpadapter.RouteOptions{
		AuthService: authService,
		StoreReady:  repos.ready,
		StaticDir:   cfg.StaticDir,
		Metrics:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr), zap.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("could not start server", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStore connects the configured task store. MongoDB is used lazily: requests get 503 until it answers.
func openStore(ctx context.Context, cfg *config.Config, checks map[string]handlers.Pinger) (repositories, func(), error) {
	if cfg.StoreDriver == config.StoreMemory {
		zap.L().Warn("using in-memory store; data is lost on restart")
		database := memory.NewDatabase()
		return repositories{
			users: memory.NewUserRepository(database),
			tasks: memory.NewTaskRepository(database),
			bin:   memory.NewBinRepository(database),
		}, func() {}, nil
	}

	client, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		return repositories{}, nil, err
	}
	database := client.Database(cfg.MongoDatabase)

	readiness := &dbadapter.Readiness{}
	go func() {
		readiness.Watch(ctx, client, readinessInterval)
		if !readiness.Ready() {
			return
		}
		if err := dbadapter.EnsureIndexes(ctx, database); err != nil {
			zap.L().Error("failed to ensure indexes", zap.Error(err))
		}
	}()

	checks["mongodb"] = func(ctx context.Context) error { return client.Ping(ctx, nil) }

	return repositories{
			users: dbadapter.NewUserRepository(database),
			tasks: dbadapter.NewTaskRepository(database),
			bin:   dbadapter.NewBinRepository(database, cfg.MongoTransactions),
			ready: readiness.Ready,
		}, func() {
			disconnect(client)
		}, nil
}

func disconnect(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		zap.L().Warn("failed to disconnect mongodb", zap.Error(err))
	}
}

// openAuthStores keeps challenges, sessions and rate limits in Redis when REDIS_ADDR is set, in memory otherwise.
func openAuthStores(ctx context.Context, cfg *config.Config, checks map[string]handlers.Pinger) (authStores, func(), error) {
	if cfg.RedisAddr == "" {
		return authStores{
			challenges: memory.NewChallengeStore(),
			sessions:   memory.NewSessionStore(time.Now),
			limiter:    memory.NewRateLimiter(cfg.OTPRateLimitPerHour, time.Hour, time.Now),
		}, func() {}, nil
	}

	rdb, err := cache.ConnectRedis(ctx, cfg)
	if err != nil {
		return authStores{}, nil, err
	}
	checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }

	return authStores{
			challenges: cache.NewChallengeStore(rdb),
			sessions:   cache.NewSessionStore(rdb),
			limiter:    cache.NewRateLimiter(rdb, cfg.OTPRateLimitPerHour, time.Hour),
		}, func() {
			closeRedis(rdb)
		}, nil
}

func closeRedis(rdb *redis.Client) {
	if err := rdb.Close(); err != nil {
		zap.L().Warn("failed to close redis", zap.Error(err))
	}
}

func openMailer(cfg *config.Config) (ports.Mailer, error) {
	if cfg.SMTPHost == "" {
		if !cfg.IsDevelopment() {
			return nil, errors.New("SMTP_HOST is required outside development")
		}
		zap.L().Warn("SMTP_HOST not set; one-time codes are logged instead of mailed")
		return mail.LogMailer{}, nil
	}
	mailer, err := mail.NewSMTPMailer(cfg)
	if err != nil {
		return nil, err
	}
	return mailer, nil
}
