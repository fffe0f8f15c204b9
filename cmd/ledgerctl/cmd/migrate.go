package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SscSPs/property_ledger/internal/platform/config"
	"github.com/SscSPs/property_ledger/pkg/database"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Apply or roll back database migrations",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{string(database.MigrateUp), string(database.MigrateDown)},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("PGSQL_URL is not set")
		}
		return database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, database.MigrationDirection(args[0]))
	},
}
