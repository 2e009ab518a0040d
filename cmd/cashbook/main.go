// Package main is the cash book command line tool: schema migration, demo
// data seeding and report export.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/spf13/cobra"

	"github.com/cashbook/backend/config"
	"github.com/cashbook/backend/internal/infra/db"
	"github.com/cashbook/backend/internal/infra/dependency"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cashbook",
		Short:         "Cash book administration",
		Long:          "Administrative commands for the cash book: migrate the schema, seed demo data and export reports.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, _ := cmd.Flags().GetString("log-level")
			var lvl slog.Level
			if err := lvl.UnmarshalText([]byte(level)); err != nil {
				return fmt.Errorf("invalid log level %q: %w", level, err)
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
			return nil
		},
	}

	cmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	cmd.AddCommand(migrateCmd())
	cmd.AddCommand(seedCmd())
	cmd.AddCommand(reportCmd())

	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app is an opened database together with the wired use cases.
type app struct {
	database *db.Database
	injector *dependency.Injector
}

// openApp connects to the configured database and migrates it.
func openApp() (*app, error) {
	cfg := config.Load()

	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(); err != nil {
		_ = database.Close()
		return nil, err
	}

	return &app{
		database: database,
		injector: dependency.NewInjector(cfg, database.DB(), nil, nil),
	}, nil
}

func (a *app) Close() {
	if err := a.database.Close(); err != nil {
		slog.Error("Failed to close database connection", "error", err)
	}
}
