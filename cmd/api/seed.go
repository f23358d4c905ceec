package main

import (
	"log/slog"

	config "github.com/6ixminds/labs_backend/configs"
	"github.com/6ixminds/labs_backend/database"
	"github.com/6ixminds/labs_backend/logs"
	"github.com/6ixminds/labs_backend/repository"
	"github.com/spf13/cobra"
)

func newSeedAdminCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-admin",
		Short: "Create the initial super-admin from ADMIN_EMAIL and ADMIN_PASSWORD",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			slog.SetDefault(logs.New(cfg))

			db, err := database.Connect(cfg)
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return err
			}
			return database.SeedAdmin(cmd.Context(), repository.NewAdminRepository(db), cfg)
		},
	}
}
