package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/area-freight/internal/bootstrap"
	"github.com/jhoicas/area-freight/internal/infrastructure/postgres"
	"github.com/jhoicas/area-freight/pkg/config"
)

func newVersionIDCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "version-id",
		Short: "Imprime un identificador de versión nuevo",
		Long:  "Usa la fuente configurada en FREIGHT_VERSION_SOURCE. Con sequence consume un valor de la secuencia de la BD.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			var q postgres.Querier
			if c.cfg.Freight.VersionSource != config.VersionSourceSnowflake {
				pool, err := postgres.NewPool(ctx, c.cfg.DB)
				if err != nil {
					return fmt.Errorf("conexión a PostgreSQL: %w", err)
				}
				defer pool.Close()
				q = pool
			}

			gen, err := bootstrap.NewVersionGenerator(c.cfg.Freight, q)
			if err != nil {
				return err
			}
			v, err := gen.Next(ctx)
			if err != nil {
				return fmt.Errorf("version-id: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}
