package freight

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/area-freight/internal/domain"
	"github.com/jhoicas/area-freight/internal/domain/entity"
)

const (
	DefaultBatchSize      = 1000
	DefaultMaxBatchSize   = 2000
	DefaultMaxConcurrency = 4
)

// BatchConfig parámetros de persistencia por lotes.
type BatchConfig struct {
	BatchSize      int
	MaxBatchSize   int
	Adaptive       bool
	MaxConcurrency int // <= 0 deriva de la cantidad de CPUs
}

// DefaultBatchConfig valores por defecto.
func DefaultBatchConfig() BatchConfig {
	return BatchConfig{
		BatchSize:      DefaultBatchSize,
		MaxBatchSize:   DefaultMaxBatchSize,
		Adaptive:       true,
		MaxConcurrency: DefaultMaxConcurrency,
	}
}

// BatchReport resumen de una persistencia.
type BatchReport struct {
	BatchSize int
	Batches   int
	Saved     int64
}

// BatchCoordinator parte los fletes en lotes y los guarda con concurrencia acotada.
type BatchCoordinator struct {
	cfg     BatchConfig
	monitor Monitor
}

// NewBatchCoordinator normaliza la configuración. monitor nil usa NopMonitor.
func NewBatchCoordinator(cfg BatchConfig, monitor Monitor) *BatchCoordinator {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.MaxBatchSize <= 0 {
		cfg.MaxBatchSize = DefaultMaxBatchSize
	}
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = derivedConcurrency()
	}
	if monitor == nil {
		monitor = NopMonitor{}
	}
	return &BatchCoordinator{cfg: cfg, monitor: monitor}
}

func derivedConcurrency() int {
	return min(2*runtime.NumCPU(), 8)
}

// Concurrency lotes que se guardan a la vez.
func (c *BatchCoordinator) Concurrency() int { return c.cfg.MaxConcurrency }

// BatchSizeFor tamaño de lote para total registros.
// Con Adaptive: menos de 1000 → 500, menos de 10000 → 1000, si no MaxBatchSize; siempre acotado por BatchSize.
func (c *BatchCoordinator) BatchSizeFor(total int) int {
	if !c.cfg.Adaptive {
		return c.cfg.BatchSize
	}
	switch {
	case total < 1000:
		return min(c.cfg.BatchSize, 500)
	case total < 10000:
		return min(c.cfg.BatchSize, 1000)
	default:
		return min(c.cfg.BatchSize, c.cfg.MaxBatchSize)
	}
}

// Partition divide en lotes contiguos que conservan el orden.
func (c *BatchCoordinator) Partition(records []*entity.AreaFreight) [][]*entity.AreaFreight {
	size := c.BatchSizeFor(len(records))
	batches := make([][]*entity.AreaFreight, 0, (len(records)+size-1)/size)
	for start := 0; start < len(records); start += size {
		end := min(start+size, len(records))
		batches = append(batches, records[start:end])
	}
	return batches
}

// Persist guarda todos los lotes. Tras el primer fallo no se envían lotes nuevos;
// espera a los que estén en curso y devuelve ese fallo envuelto en ErrPersistenceFailure.
func (c *BatchCoordinator) Persist(ctx context.Context, records []*entity.AreaFreight, writer BatchWriter) (BatchReport, error) {
	batches := c.Partition(records)
	report := BatchReport{BatchSize: c.BatchSizeFor(len(records)), Batches: len(batches)}
	if len(batches) == 0 {
		return report, nil
	}

	var saved atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.MaxConcurrency)
	for i, batch := range batches {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			n, err := writer.BulkInsert(gctx, batch)
			if err != nil {
				return fmt.Errorf("batch %d (%d registros): %w", i, len(batch), err)
			}
			saved.Add(n)
			c.monitor.BatchSaved(len(batch))
			return nil
		})
	}
	err := g.Wait()
	report.Saved = saved.Load()
	if err != nil {
		return report, fmt.Errorf("%w: %w", domain.ErrPersistenceFailure, err)
	}
	return report, nil
}
