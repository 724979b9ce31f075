package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	dbadapter "github.com/n-smith-public/cs4241e25-final-project/internal/adapter/db"
	"github.com/n-smith-public/cs4241e25-final-project/internal/config"
	"github.com/n-smith-public/cs4241e25-final-project/pkg/translator"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "magnolia",
		Short:         "Magnolia task manager server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "ensure-indexes",
			Short: "Create the MongoDB indexes and exit",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runEnsureIndexes(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), version)
			},
		},
	)
	return root
}

// setup loads the configuration and installs the global logger and translations.
func setup() (*config.Config, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		return nil, nil, err
	}

	var logger *zap.Logger
	if cfg.IsDevelopment() {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)

	translator.InitTranslator(translator.Config{
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	return cfg, func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}, nil
}

func runEnsureIndexes(ctx context.Context) error {
	cfg, done, err := setup()
	if err != nil {
		return err
	}
	defer done()

	client, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			zap.L().Warn("failed to disconnect mongodb", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, cfg.MongoConnectTimeout+30*time.Second)
	defer cancel()
	if err := dbadapter.EnsureIndexes(ctx, client.Database(cfg.MongoDatabase)); err != nil {
		zap.L().Error("failed to ensure indexes", zap.Error(err))
		return err
	}
	zap.L().Info("indexes ensured", zap.String("database", cfg.MongoDatabase))
	return nil
}
