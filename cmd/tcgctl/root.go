package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Kamar-Folarin/tcg-tracker/internal/app"
	"github.com/Kamar-Folarin/tcg-tracker/internal/config"
	"github.com/Kamar-Folarin/tcg-tracker/internal/db"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "tcgctl",
	Short: "Operate the TCG tracker database and catalog",
	Long: `tcgctl runs maintenance tasks against the TCG tracker database:
applying migrations, mirroring the card catalog and checking the schema.
Configuration is read from the environment, optionally loaded from a .env file.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file to load before reading configuration")
}

// loadConfig reads configuration, loading envFile first when it exists
func loadConfig() (*config.Config, error) {
	if err := godotenv.Load(envFile); err != nil {
		log.Println("No .env file found")
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg.DBConnectionString == "" {
		return nil, fmt.Errorf("DB_CONNECTION_STRING must be set")
	}
	return cfg, nil
}

// openApp opens the store and wires the services. The returned func closes the store.
func openApp(cfg *config.Config) (*app.App, func(), error) {
	logger, err := app.NewLogger(os.Stderr, cfg.LogLevel, false)
	if err != nil {
		logger.Warnf("Falling back to info level: %v", err)
	}

	store, err := db.NewPostgresStore(cfg.DBConnectionString)
	if err != nil {
		if hint := db.Diagnose(err).Hint; hint != "" {
			return nil, nil, fmt.Errorf("%w\n%s", err, hint)
		}
		return nil, nil, err
	}

	services, err := app.New(cfg, store, logger)
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	return services, func() { store.Close() }, nil
}
