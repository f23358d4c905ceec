package main

import (
	"fmt"
	"log/slog"

	config "github.com/6ixminds/labs_backend/configs"
	"github.com/6ixminds/labs_backend/database"
	"github.com/6ixminds/labs_backend/logs"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			slog.SetDefault(logs.New(cfg))

			db, err := database.Connect(cfg)
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			slog.Info("migrations applied")
			return nil
		},
	}
}
