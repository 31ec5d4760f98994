package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show catalog and collection status",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	services, closeFn, err := openApp(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	ctx := cmd.Context()
	readiness, err := services.Catalog.Readiness(ctx)
	if err != nil {
		return fmt.Errorf("failed to read catalog status: %w", err)
	}
	cmd.Printf("Catalog:    %s\n", readiness.Message)

	stats, err := services.Cards.Stats(ctx)
	if err != nil {
		return fmt.Errorf("failed to read collection stats: %w", err)
	}
	cmd.Printf("Collection: %d cards (%d unique), total value $%.2f\n",
		stats.TotalCards, stats.UniqueCards, stats.TotalValue)
	return nil
}
