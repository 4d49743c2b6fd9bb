package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/jhoicas/area-freight/internal/bootstrap"
	"github.com/jhoicas/area-freight/internal/domain/freight"
)

func newPublishCmd(c *cli) *cobra.Command {
	var cmdIn freight.UpdateCommand
	var report bool

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publica una versión nueva de fletes para una empresa",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			svc, err := bootstrap.New(ctx, c.cfg, c.log, prometheus.NewRegistry(), false)
			if err != nil {
				return err
			}
			defer svc.Close()

			res, err := svc.Publisher.Execute(ctx, cmdIn)
			if err != nil {
				return fmt.Errorf("publish: %w", err)
			}
			if report {
				svc.Monitor.LogReport()
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "versión:     %s\n", res.Version)
			fmt.Fprintf(out, "estampadas:  %d\n", res.Stamped)
			fmt.Fprintf(out, "producidos:  %d\n", res.Produced)
			fmt.Fprintf(out, "guardados:   %d\n", res.Saved)
			fmt.Fprintf(out, "descartadas: %d\n", res.Dropped)
			fmt.Fprintf(out, "lotes:       %d x %d\n", res.Batches, res.BatchSize)
			fmt.Fprintf(out, "duración:    %s\n", res.Duration)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&cmdIn.CompanyID, "company", "", "ID de la empresa")
	f.StringVar(&cmdIn.CreatedUserID, "user", "", "ID del usuario que publica")
	f.StringVar(&cmdIn.CreatedName, "user-name", "", "nombre del usuario que publica")
	f.StringVar(&cmdIn.Remark, "remark", "", "observación de la versión")
	f.BoolVar(&report, "report", false, "escribe el reporte de rendimiento al terminar")
	_ = cmd.MarkFlagRequired("company")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
