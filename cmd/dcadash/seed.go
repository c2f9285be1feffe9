package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/solflow/dcadash/internal/common"
	"github.com/solflow/dcadash/internal/config"
	"github.com/solflow/dcadash/internal/source"
)

const seedBatchSize = 100

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate a local order database with generated orders",
		Long: `Populate a local sqlite database with generated DCA orders.

Seeding is additive: orders get fresh IDs on every run, so repeated seeds grow
the database. Point the dashboard at the result with 'dcadash dash --db'.`,
		RunE: runSeed,
	}

	cmd.Flags().String("db", config.DefaultDBPath(), "sqlite database to seed")
	cmd.Flags().Int("orders", 500, "number of orders to generate")
	cmd.Flags().Int64("seed", 0, "random seed (0 uses the current time)")

	return cmd
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	dbPath, _ := cmd.Flags().GetString("db")
	count, _ := cmd.Flags().GetInt("orders")
	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sqlSrc, err := source.NewSQLiteSource(config.ExpandPath(dbPath))
	if err != nil {
		return fmt.Errorf("failed to open order database: %w", err)
	}
	defer func() { _ = sqlSrc.Close() }()

	rng := rand.New(rand.NewSource(seed))
	orders := source.GenerateOrders(count, rng, time.Now())

	bar := progressbar.Default(int64(len(orders)), "seeding orders")
	for start := 0; start < len(orders); start += seedBatchSize {
		end := min(start+seedBatchSize, len(orders))
		if err := sqlSrc.SaveOrders(ctx, orders[start:end]); err != nil {
			return fmt.Errorf("failed to save orders: %w", err)
		}
		_ = bar.Add(end - start)
	}
	_ = bar.Finish()

	total, err := sqlSrc.Count(ctx)
	if err != nil {
		return err
	}

	common.LogInfo("database seeded", common.Fields{
		"path":  dbPath,
		"added": len(orders),
		"total": total,
	})
	fmt.Printf("Seeded %d orders (%d total) into %s\n", len(orders), total, dbPath)

	return nil
}
