package main

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"agency_ops/internal/adapter/http/routes"
	"agency_ops/internal/adapter/persistence/repository"
	"agency_ops/internal/config"
	"agency_ops/internal/infrastructure/crypto"
	"agency_ops/internal/infrastructure/database"
	"agency_ops/internal/infrastructure/document"
	"agency_ops/internal/infrastructure/notification"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	vault, err := crypto.NewVaultCipher(cfg.VaultEncryptionKey)
	if err != nil {
		return fmt.Errorf("vault cipher: %w", err)
	}
	notifier, err := notification.NewSMTPGateway(notification.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.User,
		Password:  cfg.SMTP.Pass,
		Secure:    cfg.SMTP.Secure,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		Mock:      cfg.SMTP.Mock,
	})
	if err != nil {
		return fmt.Errorf("smtp gateway: %w", err)
	}
	if cfg.SMTP.Mock {
		zap.L().Warn("[notification][smtp] mock mode enabled, emails are logged only")
	}

	h := routes.NewHandlers(cfg, repos, routes.Gateways{
		Documents: document.NewPDFGenerator(cfg.DocumentsDir),
		Notifier:  notifier,
		Vault:     vault,
	})
	return routes.Run(ctx, cfg, h)
}

// openStore connects the configured backend and returns its repositories.
func openStore(ctx context.Context, cfg config.Config) (repository.Repositories, func(), error) {
	switch strings.ToLower(cfg.StoreDriver) {
	case config.StoreSQLite:
		db, err := database.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return repository.Repositories{}, nil, err
		}
		if err := repository.MigrateSQLite(ctx, db); err != nil {
			_ = db.Close()
			return repository.Repositories{}, nil, err
		}
		return repository.NewSQLiteRepositories(db), func() { _ = db.Close() }, nil
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, dynamoConfig(cfg))
		if err != nil {
			return repository.Repositories{}, nil, err
		}
		return repository.NewDynamoRepositories(ddb, repository.TableNamesFromEnv()), func() {}, nil
	default:
		return repository.Repositories{}, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func dynamoConfig(cfg config.Config) database.DynamoConfig {
	return database.DynamoConfig{
		Region:          cfg.AWSRegion,
		Endpoint:        cfg.DynamoDBEndpoint,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
	}
}
