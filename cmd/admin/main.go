// Command admin runs operational tasks against the orderdesk database:
// schema migrations, bootstrap users and catalog seeding.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ghuser/orderdesk/pkg/app"
	"github.com/ghuser/orderdesk/pkg/config"
	"github.com/ghuser/orderdesk/pkg/database"
	"github.com/ghuser/orderdesk/pkg/logger"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "admin",
		Short:         "Orderdesk administration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(migrateCmd(), userCmd(), catalogCmd())
	return cmd
}

// openApp loads configuration and connects to the database. The returned
// close function releases the pool.
func openApp(ctx context.Context) (*app.Application, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log := logger.New(cfg)

	db, err := database.New(ctx, cfg.DatabaseDriver, cfg.DatabaseURL, log)
	if err != nil {
		return nil, nil, err
	}
	a := &app.Application{Config: cfg, Db: db, Logger: log}
	return a, func() { _ = db.Close() }, nil
}
