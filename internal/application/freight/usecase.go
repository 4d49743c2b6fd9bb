package freight

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/area-freight/internal/domain"
	"github.com/jhoicas/area-freight/internal/domain/entity"
	"github.com/jhoicas/area-freight/internal/domain/freight"
	"github.com/jhoicas/area-freight/internal/domain/repository"
	"github.com/jhoicas/area-freight/pkg/logger"
)

// Options ajustes del recálculo.
type Options struct {
	Batch             BatchConfig
	ExpandConcurrency int // <= 0 deriva de la cantidad de CPUs
	MaxCategoryDepth  int // <= 0 usa freight.DefaultMaxCategoryDepth
}

// UpdateResult resumen de una publicación.
type UpdateResult struct {
	Version    string
	Stamped    int   // filas pendientes marcadas con la versión
	Produced   int   // fletes materializados
	Saved      int64 // fletes insertados
	Dropped    int   // filas con categoría desconocida o deshabilitada
	Suppressed int
	Collapsed  int
	Guarded    int64
	Batches    int
	BatchSize  int
	Duration   time.Duration
}

// UpdateAreaFreightUseCase recalcula y publica la tabla de fletes por área de una empresa.
type UpdateAreaFreightUseCase struct {
	txRunner     TxRunner
	categoryRepo repository.CategoryRepository
	companyRepo  repository.CompanyRepository
	versions     VersionGenerator
	stamper      SnapshotStamper
	coordinator  *BatchCoordinator
	monitor      Monitor
	log          *logger.Logger

	expandConcurrency int
	maxDepth          int
	now               func() time.Time
	buildIndex        func([]*entity.Category) *freight.CategoryIndex
}

// NewUpdateAreaFreightUseCase construye el caso de uso. companyRepo nil omite la validación de empresa;
// monitor y log nil usan implementaciones nulas.
func NewUpdateAreaFreightUseCase(
	txRunner TxRunner,
	categoryRepo repository.CategoryRepository,
	companyRepo repository.CompanyRepository,
	versions VersionGenerator,
	opts Options,
	monitor Monitor,
	log *logger.Logger,
) *UpdateAreaFreightUseCase {
	if monitor == nil {
		monitor = NopMonitor{}
	}
	if log == nil {
		log = logger.Nop()
	}
	if opts.ExpandConcurrency <= 0 {
		opts.ExpandConcurrency = derivedConcurrency()
	}
	return &UpdateAreaFreightUseCase{
		txRunner:          txRunner,
		categoryRepo:      categoryRepo,
		companyRepo:       companyRepo,
		versions:          versions,
		coordinator:       NewBatchCoordinator(opts.Batch, monitor),
		monitor:           monitor,
		log:               log.Component("area_freight_update"),
		expandConcurrency: opts.ExpandConcurrency,
		maxDepth:          opts.MaxCategoryDepth,
		now:               time.Now,
		buildIndex:        freight.BuildCategoryIndex,
	}
}

// Execute ejecuta el recálculo completo en una sola transacción:
// estampa las filas pendientes, expande cada fila a sus categorías hoja, deduplica,
// guarda los fletes por lotes y registra la versión. Cualquier fallo revierte todo.
func (uc *UpdateAreaFreightUseCase) Execute(ctx context.Context, cmd freight.UpdateCommand) (*UpdateResult, error) {
	if strings.TrimSpace(cmd.CompanyID) == "" || strings.TrimSpace(cmd.CreatedUserID) == "" {
		return nil, domain.ErrInvalidInput
	}

	stop := uc.monitor.StartOperation("update_area_freight")
	result, err := uc.publish(ctx, cmd)
	elapsed := stop()

	log := uc.log.With().Str("company_id", cmd.CompanyID).Str("version", result.Version).Logger()
	if err != nil {
		log.Error().Err(err).Dur("duration", elapsed).Msg("recálculo de fletes fallido")
		return nil, err
	}
	result.Duration = elapsed

	log.Info().
		Int("stamped", result.Stamped).
		Int("produced", result.Produced).
		Int("dropped", result.Dropped).
		Int("suppressed", result.Suppressed).
		Int("collapsed", result.Collapsed).
		Int("batches", result.Batches).
		Dur("duration", result.Duration).
		Msg("recálculo de fletes publicado")
	uc.monitor.LogMemoryUsage()
	return result, nil
}

// publish valida la empresa, obtiene la versión y corre la transacción.
// Siempre devuelve un resultado no nil; Version queda vacío si falla antes de generarla.
func (uc *UpdateAreaFreightUseCase) publish(ctx context.Context, cmd freight.UpdateCommand) (*UpdateResult, error) {
	result := &UpdateResult{}
	if uc.companyRepo != nil {
		company, err := uc.companyRepo.GetByID(ctx, cmd.CompanyID)
		if err != nil {
			return result, fmt.Errorf("get company: %w", err)
		}
		if company == nil {
			return result, domain.ErrNotFound
		}
		if !company.IsActive() {
			return result, domain.ErrForbidden
		}
	}

	version, err := uc.versions.Next(ctx)
	if err != nil {
		return result, fmt.Errorf("generate version: %w", err)
	}
	result.Version = version
	log := uc.log.With().Str("company_id", cmd.CompanyID).Str("version", version).Logger()
	log.Info().Str("user_id", cmd.CreatedUserID).Msg("recálculo de fletes iniciado")

	err = uc.txRunner.RunFreight(ctx, func(
		viewRepo repository.AreaFreightViewRepository,
		freightRepo repository.AreaFreightRepository,
		versionRepo repository.AreaVersionRepository,
	) error {
		index, rows, err := uc.loadAndStamp(ctx, viewRepo, cmd.CompanyID, version)
		if err != nil {
			return err
		}
		scope := freight.NewScope(index, uc.maxDepth)
		defer scope.Release()
		result.Stamped = len(rows)

		chunks := splitRows(rows, uc.expandConcurrency)
		if err := uc.markExplicit(ctx, scope, chunks); err != nil {
			return err
		}
		records, err := uc.materialize(ctx, scope, chunks, cmd, version, result)
		if err != nil {
			return err
		}
		result.Guarded = scope.Guarded()
		if result.Dropped > 0 {
			log.Warn().Int("dropped", result.Dropped).Msg("filas con categoría desconocida o deshabilitada descartadas")
		}
		if result.Guarded > 0 {
			log.Warn().Int64("guarded", result.Guarded).Msg("nodos omitidos por ciclo o profundidad en el árbol de categorías")
		}
		if len(records) == 0 {
			return domain.ErrFreightUpdateFailed
		}
		result.Produced = len(records)
		uc.monitor.RecordsProcessed(len(records))

		done := uc.monitor.StartOperation("persist_batches")
		report, err := uc.coordinator.Persist(ctx, records, freightRepo)
		done()
		result.Batches, result.BatchSize, result.Saved = report.Batches, report.BatchSize, report.Saved
		if err != nil {
			log.Error().Err(err).Int("batches", report.Batches).Msg("fallo al guardar lotes de fletes")
			return err
		}

		if err := versionRepo.Create(ctx, &entity.AreaVersion{
			ID:            uuid.NewString(),
			CompanyID:     cmd.CompanyID,
			Version:       version,
			Type:          entity.AreaVersionTypeFreight,
			Remark:        cmd.Remark,
			CreatedUserID: cmd.CreatedUserID,
			CreatedName:   cmd.CreatedName,
			CreatedAt:     uc.now(),
		}); err != nil {
			return fmt.Errorf("%w: create area version: %w", domain.ErrPersistenceFailure, err)
		}
		return nil
	})
	return result, err
}

// loadAndStamp carga el árbol de categorías y estampa las filas pendientes en paralelo.
// Las categorías se leen fuera de la transacción; el estampado usa la conexión de la tx.
func (uc *UpdateAreaFreightUseCase) loadAndStamp(
	ctx context.Context,
	viewRepo repository.AreaFreightViewRepository,
	companyID, version string,
) (*freight.CategoryIndex, []*entity.AreaFreightView, error) {
	var (
		index *freight.CategoryIndex
		rows  []*entity.AreaFreightView
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		done := uc.monitor.StartOperation("load_categories")
		defer done()
		categories, err := uc.categoryRepo.ListByCompany(gctx, companyID)
		if err != nil {
			return fmt.Errorf("list categories: %w", err)
		}
		index = uc.buildIndex(categories)
		return nil
	})
	g.Go(func() error {
		done := uc.monitor.StartOperation("stamp_views")
		defer done()
		stamped, err := uc.stamper.Stamp(gctx, viewRepo, companyID, version)
		if err != nil {
			return err
		}
		rows = stamped
		return nil
	})
	if err := g.Wait(); err != nil {
		if index != nil {
			index.Release()
		}
		return nil, nil, err
	}
	return index, rows, nil
}

func (uc *UpdateAreaFreightUseCase) markExplicit(ctx context.Context, scope *freight.Scope, chunks [][]*entity.AreaFreightView) error {
	var g errgroup.Group
	for _, chunk := range chunks {
		g.Go(func() error {
			for _, v := range chunk {
				if err := ctx.Err(); err != nil {
					return err
				}
				scope.MarkExplicit(v)
			}
			return nil
		})
	}
	return g.Wait()
}

// materialize expande cada bloque en su propia goroutine y concatena los resultados en el orden de los bloques.
func (uc *UpdateAreaFreightUseCase) materialize(
	ctx context.Context,
	scope *freight.Scope,
	chunks [][]*entity.AreaFreightView,
	cmd freight.UpdateCommand,
	version string,
	result *UpdateResult,
) ([]*entity.AreaFreight, error) {
	done := uc.monitor.StartOperation("expand_rows")
	defer done()

	parts := make([][]*entity.AreaFreight, len(chunks))
	tallies := make([]freight.RowOutcome, len(chunks))
	dropped := make([]int, len(chunks))
	var g errgroup.Group
	for i, chunk := range chunks {
		g.Go(func() error {
			for _, v := range chunk {
				if err := ctx.Err(); err != nil {
					return err
				}
				records, out := scope.Materialize(v, cmd, version)
				if out.Dropped {
					dropped[i]++
					continue
				}
				parts[i] = append(parts[i], records...)
				tallies[i].Suppressed += out.Suppressed
				tallies[i].Collapsed += out.Collapsed
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for i := range parts {
		total += len(parts[i])
		result.Dropped += dropped[i]
		result.Suppressed += tallies[i].Suppressed
		result.Collapsed += tallies[i].Collapsed
	}
	records := make([]*entity.AreaFreight, 0, total)
	for _, p := range parts {
		records = append(records, p...)
	}
	return records, nil
}

// splitRows reparte las filas en a lo sumo n bloques contiguos.
func splitRows(rows []*entity.AreaFreightView, n int) [][]*entity.AreaFreightView {
	if len(rows) == 0 {
		return nil
	}
	n = max(1, min(n, len(rows)))
	size := (len(rows) + n - 1) / n
	chunks := make([][]*entity.AreaFreightView, 0, n)
	for start := 0; start < len(rows); start += size {
		chunks = append(chunks, rows[start:min(start+size, len(rows))])
	}
	return chunks
}
