package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/area-freight/internal/infrastructure/postgres"
)

func newMigrateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica las migraciones pendientes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			pool, err := postgres.NewPool(ctx, c.cfg.DB)
			if err != nil {
				return fmt.Errorf("conexión a PostgreSQL: %w", err)
			}
			defer pool.Close()
			return postgres.Migrate(ctx, pool, c.log)
		},
	}
}
