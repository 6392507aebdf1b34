package main

import (
	"fmt"
	"os"

	_ "agency_ops/docs"
	"agency_ops/internal/config"
	"agency_ops/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title           Agency Operations API
// @version         1.0
// @description     Service requests, proposals and projects of a digital agency.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:           "agency-api",
	Short:         "Agency operations backend: requests, proposals and projects",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		if _, err := logger.New(loaded.LogLevel, loaded.LogFormat); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		cfg = loaded
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "agency-api:", err)
		os.Exit(1)
	}
}
