package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/area-freight/pkg/config"
	"github.com/jhoicas/area-freight/pkg/logger"
)

// cli estado compartido por los subcomandos; se llena en PersistentPreRunE.
type cli struct {
	cfg *config.Config
	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           "freightctl",
		Short:         "Publicación de fletes por área",
		Long:          "Recalcula la tabla de fletes por categoría hoja y geografía de una empresa y publica una versión nueva.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			c.cfg = cfg
			c.log = logger.NewWithWriter(cmd.ErrOrStderr(), cfg.Log.Level)
			return nil
		},
	}
	root.AddCommand(newPublishCmd(c), newVersionIDCmd(c), newMigrateCmd(c))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
