package main

import (
	"github.com/spf13/cobra"

	"github.com/ghuser/orderdesk/migrations"
	"github.com/ghuser/orderdesk/pkg/migrator"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, closeDB, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB()

			dialect := string(a.Db.Dialect())
			if err := migrator.Up(cmd.Context(), a.Db.DB(), dialect, migrations.FS, migrations.Dir(dialect)); err != nil {
				return err
			}
			version, err := migrator.Version(cmd.Context(), a.Db.DB(), dialect, migrations.FS)
			if err != nil {
				return err
			}
			a.Logger.Info("migrations applied", "dialect", dialect, "version", version)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Print the state of every migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, closeDB, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB()

			dialect := string(a.Db.Dialect())
			return migrator.Status(cmd.Context(), a.Db.DB(), dialect, migrations.FS, migrations.Dir(dialect))
		},
	})
	return cmd
}
