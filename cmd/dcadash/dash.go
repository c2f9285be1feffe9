package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/solflow/dcadash/internal/common"
	"github.com/solflow/dcadash/internal/config"
	"github.com/solflow/dcadash/internal/dashboard"
	"github.com/solflow/dcadash/internal/dashboard/themes"
	"github.com/solflow/dcadash/internal/source"
)

func dashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dash",
		Short: "Open the order dashboard",
		Long: `Open the interactive order dashboard.

By default the dashboard runs against generated orders so it works out of the
box. Point it at a seeded database with --db to browse persisted orders.`,
		RunE: runDash,
	}

	cmd.Flags().String("db", "", "sqlite database to read orders from (default: generated data)")
	cmd.Flags().Int("orders", 150, "number of orders to generate when no database is given")
	cmd.Flags().Int64("seed", 0, "random seed for generated orders (0 uses the current time)")
	cmd.Flags().String("theme", "default", "color theme (default, catppuccin-mocha)")
	cmd.Flags().String("chart-mint", "USDC", "input mint charted in the volume panel")
	cmd.Flags().Int("page-size", 15, "orders per page")
	cmd.Flags().Duration("refresh", 30*time.Second, "chart refresh interval")

	_ = viper.BindPFlag("dashboard.theme", cmd.Flags().Lookup("theme"))
	_ = viper.BindPFlag("dashboard.chart_mint", cmd.Flags().Lookup("chart-mint"))
	_ = viper.BindPFlag("dashboard.page_size", cmd.Flags().Lookup("page-size"))
	_ = viper.BindPFlag("dashboard.refresh", cmd.Flags().Lookup("refresh"))

	return cmd
}

func runDash(cmd *cobra.Command, _ []string) error {
	src, cleanup, err := resolveSource(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	cfg := dashboard.Config{
		Source:       src,
		Theme:        themes.GetTheme(viper.GetString("dashboard.theme")),
		ChartMint:    viper.GetString("dashboard.chart_mint"),
		PageSize:     viper.GetInt("dashboard.page_size"),
		RefreshEvery: viper.GetDuration("dashboard.refresh"),
	}

	return dashboard.Run(cmd.Context(), cfg)
}

// resolveSource picks the order source: a sqlite database when --db is set,
// generated orders otherwise.
func resolveSource(cmd *cobra.Command) (source.Source, func(), error) {
	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath != "" {
		sqlSrc, err := source.NewSQLiteSource(config.ExpandPath(dbPath))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open order database: %w", err)
		}
		common.LogInfo("using order database", common.Fields{"path": dbPath})
		return sqlSrc, func() { _ = sqlSrc.Close() }, nil
	}

	count, _ := cmd.Flags().GetInt("orders")
	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	common.LogInfo("using generated orders", common.Fields{"count": count, "seed": seed})
	return source.NewMockSource(count, seed, time.Now()), func() {}, nil
}
