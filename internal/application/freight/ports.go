package freight

import (
	"context"
	"time"

	"github.com/jhoicas/area-freight/internal/domain/entity"
	"github.com/jhoicas/area-freight/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error nada de lo escrito queda visible: ni el estampado ni los fletes ni la versión.
type TxRunner interface {
	RunFreight(ctx context.Context, fn func(
		viewRepo repository.AreaFreightViewRepository,
		freightRepo repository.AreaFreightRepository,
		versionRepo repository.AreaVersionRepository,
	) error) error
}

// VersionGenerator entrega un identificador de versión nuevo en cada llamada.
type VersionGenerator interface {
	Next(ctx context.Context) (string, error)
}

// BatchWriter persiste un lote de fletes y devuelve las filas insertadas.
type BatchWriter interface {
	BulkInsert(ctx context.Context, records []*entity.AreaFreight) (int64, error)
}

// Monitor recibe tiempos y contadores del recálculo.
type Monitor interface {
	// StartOperation inicia el cronómetro; la función devuelta lo detiene y registra la duración.
	StartOperation(name string) func() time.Duration
	RecordsProcessed(n int)
	BatchSaved(size int)
	LogMemoryUsage()
}

// NopMonitor no registra nada.
type NopMonitor struct{}

func (NopMonitor) StartOperation(string) func() time.Duration {
	start := time.Now()
	return func() time.Duration { return time.Since(start) }
}
func (NopMonitor) RecordsProcessed(int) {}
func (NopMonitor) BatchSaved(int)       {}
func (NopMonitor) LogMemoryUsage()      {}
