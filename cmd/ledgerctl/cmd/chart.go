package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/SscSPs/property_ledger/internal/adapters/database/pgsql"
	"github.com/SscSPs/property_ledger/internal/core/services"
	"github.com/SscSPs/property_ledger/internal/platform/cache"
	"github.com/SscSPs/property_ledger/internal/platform/config"
	"github.com/SscSPs/property_ledger/internal/seed"
	"github.com/SscSPs/property_ledger/pkg/database"
)

var (
	chartFile string
	seedUser  string
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Manage the chart of accounts",
}

var chartSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the accounts listed in a YAML chart file",
	Long: `Create every account of the chart file that does not exist yet.
Existing codes are skipped, so the command can be re-run safely.`,
	RunE: runChartSeed,
}

func init() {
	chartSeedCmd.Flags().StringVarP(&chartFile, "file", "f", "configs/puc_base.yaml", "chart file to load")
	chartSeedCmd.Flags().StringVar(&seedUser, "user", "ledgerctl", "user recorded as creator")
	chartCmd.AddCommand(chartSeedCmd)
}

func runChartSeed(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	f, err := os.Open(chartFile)
	if err != nil {
		return fmt.Errorf("failed to open chart file: %w", err)
	}
	defer f.Close()

	accounts, err := seed.LoadChart(f)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(pool)

	var opts []services.AccountServiceOption
	if cfg.RedisURL != "" {
		// a running server must not keep serving reports computed on the old chart
		client, err := cache.New(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer client.Close()
		opts = append(opts, services.WithAccountCache(cache.NewReportCache(client, cfg.ReportCacheTTL)))
	}

	accountService := services.NewAccountService(pgsql.NewPgxAccountRepository(pool), opts...)
	res, err := seed.Chart(ctx, accountService, accounts, seedUser)
	if err != nil {
		return err
	}

	slog.Info("Chart seeded", slog.String("file", chartFile), slog.Int("created", res.Created), slog.Int("skipped", res.Skipped))
	return nil
}
