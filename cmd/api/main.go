package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/jhoicas/area-freight/docs"
	"github.com/jhoicas/area-freight/internal/bootstrap"
	httpRouter "github.com/jhoicas/area-freight/internal/interfaces/http"
	"github.com/jhoicas/area-freight/pkg/config"
	"github.com/jhoicas/area-freight/pkg/logger"
)

// @title                       Area Freight API
// @version                     1.0
// @description                 Recálculo y publicación de fletes por área y consulta de versiones publicadas.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Token JWT con el prefijo "Bearer ".
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("version_source", cfg.Freight.VersionSource).
		Msg("iniciando aplicación")

	ctx := context.Background()
	svc, err := bootstrap.New(ctx, cfg, log, prometheus.DefaultRegisterer, true)
	if err != nil {
		log.Fatal().Err(err).Msg("inicialización")
	}
	defer svc.Close()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Minute * 5, // la publicación de una empresa grande puede tardar
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		Publisher:   svc.Publisher,
		Query:       svc.Query,
		JWTSecret:   cfg.JWT.Secret,
		Metrics:     promhttp.Handler(),
		SwaggerFile: "./docs/swagger.json",
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	svc.Monitor.LogReport()

	log.Info().Msg("aplicación detenida")
}
