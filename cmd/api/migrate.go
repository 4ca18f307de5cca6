package main

import (
	"database/sql"
	"errors"
	"log/slog"

	_ "github.com/lib/pq"
	"github.com/limbo/accountability/pkg/config"
	"github.com/pressly/goose"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status]",
	Short:     "Apply or roll back database migrations",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down", "status"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.New(configFile)
		conn, err := sql.Open("postgres", dbConfig(cfg).ConnString()+"?sslmode=disable")
		if err != nil {
			return errors.New("opening database error: " + err.Error())
		}
		defer conn.Close()
		if err = goose.SetDialect("postgres"); err != nil {
			return err
		}
		dir := cfg.GetString("MIGRATIONS_DIR")
		switch args[0] {
		case "up":
			err = goose.Up(conn, dir)
		case "down":
			err = goose.Down(conn, dir)
		case "status":
			err = goose.Status(conn, dir)
		}
		if err != nil {
			return errors.New("migration " + args[0] + " error: " + err.Error())
		}
		slog.Info("migrations done", slog.String("command", args[0]), slog.String("dir", dir))
		return nil
	},
}
