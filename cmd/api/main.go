package main

import (
	"fmt"
	"os"

	"github.com/limbo/accountability/internal/repository"
	"github.com/limbo/accountability/internal/service"
	"github.com/limbo/accountability/pkg/config"
	"github.com/limbo/accountability/pkg/logger"
	"github.com/spf13/cobra"
)

// configFile is set by the --config flag
var configFile string

func init() {
	service.InitValidator()
	rootCmd.PersistentFlags().StringVar(&configFile, "config", config.DefaultPath, "path to .env file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "accountability",
	Short:         "Challenge tracker with daily check-ins and emergency protocol",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.New(configFile)
		return logger.Init(logger.Config{
			Level:  cfg.GetString("LOG_LEVEL"),
			Format: cfg.GetString("LOG_FORMAT"),
			File:   cfg.GetString("LOG_FILE"),
		})
	},
}

func dbConfig(cfg *config.Config) *repository.PGCfg {
	return &repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
}
