package main

import (
	"fmt"
	"strings"

	"agency_ops/internal/adapter/persistence/repository"
	"agency_ops/internal/config"
	"agency_ops/internal/infrastructure/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the SQLite schema or the DynamoDB tables and indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		switch strings.ToLower(cfg.StoreDriver) {
		case config.StoreSQLite:
			db, err := database.OpenSQLite(ctx, cfg.SQLitePath)
			if err != nil {
				return err
			}
			defer db.Close()
			return repository.MigrateSQLite(ctx, db)
		case config.StoreDynamoDB:
			ddb, err := database.ConnectDynamoDB(ctx, dynamoConfig(cfg))
			if err != nil {
				return err
			}
			tables := repository.TableNamesFromEnv()
			if err := database.EnsureDynamoTables(ctx, ddb, repository.DynamoTableSpecs(tables)); err != nil {
				return err
			}
			zap.L().Info("[database][dynamodb] tables ready")
			return nil
		default:
			return fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
		}
	},
}
