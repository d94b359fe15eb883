package main

import (
	"github.com/spf13/cobra"

	"github.com/foodygo/identity-server/database"
	"github.com/foodygo/identity-server/internal/config"
	"github.com/foodygo/identity-server/internal/logger"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			log := logger.New(cfg.LogLevel)

			if err := database.Migrate(cmd.Context(), cfg.Database.DSN); err != nil {
				log.Fatal("failed to apply migrations", "error", err)
			}

			log.Info("migrations applied")
			return nil
		},
	}
}
