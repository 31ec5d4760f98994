package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Long:  `Creates or upgrades the collection and catalog tables using the embedded migrations.`,
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	services, closeFn, err := openApp(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	cmd.Println("Applying migrations...")
	if err := services.Store.Migrate(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	cmd.Println("Migrations applied.")
	return nil
}
