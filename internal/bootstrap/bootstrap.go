// Package bootstrap arma las dependencias del recálculo de fletes a partir de la configuración.
// Lo comparten el servidor HTTP y freightctl.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	appfreight "github.com/jhoicas/area-freight/internal/application/freight"
	"github.com/jhoicas/area-freight/internal/infrastructure/idgen"
	"github.com/jhoicas/area-freight/internal/infrastructure/monitoring"
	"github.com/jhoicas/area-freight/internal/infrastructure/postgres"
	"github.com/jhoicas/area-freight/pkg/config"
	"github.com/jhoicas/area-freight/pkg/logger"
)

// Services dependencias listas para usar. Close libera el pool.
type Services struct {
	Pool      *pgxpool.Pool
	Versions  appfreight.VersionGenerator
	Monitor   *monitoring.PerformanceMonitor
	Publisher *appfreight.UpdateAreaFreightUseCase
	Query     *appfreight.QueryUseCase
}

// Close cierra el pool de conexiones.
func (s *Services) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}

// New abre el pool, aplica migraciones si migrate es true y construye los casos de uso.
// registerer nil usa prometheus.DefaultRegisterer.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger, registerer prometheus.Registerer, migrate bool) (*Services, error) {
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	if migrate {
		if err := postgres.Migrate(ctx, pool, log); err != nil {
			pool.Close()
			return nil, err
		}
	}

	versions, err := NewVersionGenerator(cfg.Freight, pool)
	if err != nil {
		pool.Close()
		return nil, err
	}

	monitor := monitoring.NewPerformanceMonitor(monitoring.Config{
		ServiceName: cfg.App.Name,
		Environment: cfg.App.Env,
		Registerer:  registerer,
	}, log)

	publisher := appfreight.NewUpdateAreaFreightUseCase(
		postgres.NewTxRunner(pool),
		postgres.NewCategoryRepository(pool),
		postgres.NewCompanyRepository(pool),
		versions,
		OptionsFrom(cfg.Freight),
		monitor,
		log,
	)
	query := appfreight.NewQueryUseCase(
		postgres.NewAreaVersionRepository(pool),
		postgres.NewAreaFreightRepository(pool),
	)

	return &Services{
		Pool:      pool,
		Versions:  versions,
		Monitor:   monitor,
		Publisher: publisher,
		Query:     query,
	}, nil
}

// NewVersionGenerator elige la fuente de versiones configurada.
func NewVersionGenerator(cfg config.FreightConfig, q postgres.Querier) (appfreight.VersionGenerator, error) {
	switch cfg.VersionSource {
	case config.VersionSourceSnowflake:
		g, err := idgen.NewSnowflakeVersionGenerator(cfg.NodeID, cfg.VersionPrefix)
		if err != nil {
			return nil, fmt.Errorf("generador snowflake: %w", err)
		}
		return g, nil
	case config.VersionSourceSequence, "":
		return postgres.NewSequenceVersionGenerator(q, cfg.VersionPrefix), nil
	default:
		return nil, fmt.Errorf("fuente de versión desconocida: %q", cfg.VersionSource)
	}
}

// OptionsFrom traduce la configuración a opciones del recálculo.
func OptionsFrom(cfg config.FreightConfig) appfreight.Options {
	return appfreight.Options{
		Batch: appfreight.BatchConfig{
			BatchSize:      cfg.BatchSize,
			MaxBatchSize:   cfg.MaxBatchSize,
			Adaptive:       cfg.AdaptiveBatch,
			MaxConcurrency: cfg.MaxConcurrency,
		},
		ExpandConcurrency: cfg.ExpandConcurrency,
		MaxCategoryDepth:  cfg.MaxCategoryDepth,
	}
}
