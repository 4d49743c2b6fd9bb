package freight_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app "github.com/jhoicas/area-freight/internal/application/freight"
	"github.com/jhoicas/area-freight/internal/domain"
	"github.com/jhoicas/area-freight/internal/domain/entity"
)

func records(n int) []*entity.AreaFreight {
	out := make([]*entity.AreaFreight, n)
	for i := range out {
		out[i] = &entity.AreaFreight{CategoryID: int64(i)}
	}
	return out
}

type countingWriter struct {
	calls  atomic.Int32
	saved  atomic.Int64
	failAt int32
}

func (w *countingWriter) BulkInsert(_ context.Context, batch []*entity.AreaFreight) (int64, error) {
	call := w.calls.Add(1)
	if w.failAt > 0 && call >= w.failAt {
		return 0, errDiskFull
	}
	w.saved.Add(int64(len(batch)))
	return int64(len(batch)), nil
}

type recordingMonitor struct {
	app.NopMonitor
	batches atomic.Int32
}

func (m *recordingMonitor) BatchSaved(int) { m.batches.Add(1) }

func TestBatchSizeFor_Adaptativo(t *testing.T) {
	c := app.NewBatchCoordinator(app.BatchConfig{BatchSize: 5000, MaxBatchSize: 2000, Adaptive: true}, nil)

	assert.Equal(t, 500, c.BatchSizeFor(999))
	assert.Equal(t, 1000, c.BatchSizeFor(1000))
	assert.Equal(t, 1000, c.BatchSizeFor(9999))
	assert.Equal(t, 2000, c.BatchSizeFor(10000))
}

func TestBatchSizeFor_AcotadoPorBatchSize(t *testing.T) {
	c := app.NewBatchCoordinator(app.BatchConfig{BatchSize: 300, Adaptive: true}, nil)

	assert.Equal(t, 300, c.BatchSizeFor(10))
	assert.Equal(t, 300, c.BatchSizeFor(50000))
}

func TestBatchSizeFor_Fijo(t *testing.T) {
	c := app.NewBatchCoordinator(app.BatchConfig{BatchSize: 7}, nil)
	assert.Equal(t, 7, c.BatchSizeFor(100000))
}

func TestNewBatchCoordinator_Defaults(t *testing.T) {
	c := app.NewBatchCoordinator(app.BatchConfig{}, nil)

	assert.Equal(t, app.DefaultBatchSize, c.BatchSizeFor(50000))
	assert.Positive(t, c.Concurrency())
	assert.LessOrEqual(t, c.Concurrency(), 8)
}

func TestPartition_ContiguoYOrdenado(t *testing.T) {
	c := app.NewBatchCoordinator(app.BatchConfig{BatchSize: 4}, nil)
	recs := records(10)

	batches := c.Partition(recs)
	require.Len(t, batches, 3)
	assert.Len(t, batches[0], 4)
	assert.Len(t, batches[2], 2)

	var flat []*entity.AreaFreight
	for _, b := range batches {
		flat = append(flat, b...)
	}
	assert.Equal(t, recs, flat)
}

func TestPartition_Vacio(t *testing.T) {
	c := app.NewBatchCoordinator(app.DefaultBatchConfig(), nil)
	assert.Empty(t, c.Partition(nil))
}

func TestPersist_GuardaTodo(t *testing.T) {
	mon := &recordingMonitor{}
	c := app.NewBatchCoordinator(app.BatchConfig{BatchSize: 3, MaxConcurrency: 4}, mon)
	w := &countingWriter{}

	report, err := c.Persist(context.Background(), records(10), w)
	require.NoError(t, err)

	assert.Equal(t, 4, report.Batches)
	assert.Equal(t, 3, report.BatchSize)
	assert.EqualValues(t, 10, report.Saved)
	assert.EqualValues(t, 10, w.saved.Load())
	assert.EqualValues(t, 4, mon.batches.Load())
}

func TestPersist_PrimerFalloDetieneEnvios(t *testing.T) {
	c := app.NewBatchCoordinator(app.BatchConfig{BatchSize: 1, MaxConcurrency: 1}, nil)
	w := &countingWriter{failAt: 1}

	_, err := c.Persist(context.Background(), records(20), w)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistenceFailure)
	assert.ErrorIs(t, err, errDiskFull)
	assert.Less(t, w.calls.Load(), int32(20), "no se envían lotes nuevos tras el fallo")
}

func TestPersist_SinRegistros(t *testing.T) {
	c := app.NewBatchCoordinator(app.DefaultBatchConfig(), nil)
	w := &countingWriter{}

	report, err := c.Persist(context.Background(), nil, w)
	require.NoError(t, err)
	assert.Zero(t, report.Batches)
	assert.Zero(t, w.calls.Load())
}
