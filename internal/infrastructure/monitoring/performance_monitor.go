package monitoring

import (
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jhoicas/area-freight/internal/application/freight"
	"github.com/jhoicas/area-freight/pkg/logger"
)

var _ freight.Monitor = (*PerformanceMonitor)(nil)

// Config etiquetas fijas y registro de las métricas.
type Config struct {
	ServiceName string
	Environment string
	Registerer  prometheus.Registerer // nil = prometheus.DefaultRegisterer
}

// OperationStats tiempos acumulados de una operación.
type OperationStats struct {
	Count   int64
	Total   time.Duration
	Average time.Duration
	Max     time.Duration
}

// Report instantánea de lo registrado desde la creación del monitor.
type Report struct {
	Operations           map[string]OperationStats
	RecordsProcessed     int64
	Batches              int64
	BatchRecords         int64
	SuggestedBatchSize   int
	SuggestedConcurrency int
}

// PerformanceMonitor registra tiempos y contadores del recálculo en Prometheus y en el log.
type PerformanceMonitor struct {
	log *logger.Logger

	duration     *prometheus.HistogramVec
	records      prometheus.Counter
	batches      prometheus.Counter
	batchRecords prometheus.Histogram
	heapAlloc    prometheus.Gauge

	mu           sync.Mutex
	ops          map[string]*OperationStats
	recordsTotal int64
	batchesTotal int64
	batchRecs    int64

	readMemStats func(*runtime.MemStats)
}

// NewPerformanceMonitor registra los colectores en cfg.Registerer.
func NewPerformanceMonitor(cfg Config, log *logger.Logger) *PerformanceMonitor {
	registerer := cfg.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	if log == nil {
		log = logger.Nop()
	}

	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "area-freight"
	}
	environment := strings.TrimSpace(cfg.Environment)
	if environment == "" {
		environment = "unknown"
	}
	constLabels := prometheus.Labels{
		"service": serviceName,
		"env":     environment,
	}

	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "area_freight_update_operation_duration_seconds",
			Help:        "Duration of each stage of the area freight recompute.",
			Buckets:     []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
			ConstLabels: constLabels,
		},
		[]string{"operation"},
	)
	records := prometheus.NewCounter(prometheus.CounterOpts{
		Name:        "area_freight_update_records_processed_total",
		Help:        "Freight records materialized by recomputes.",
		ConstLabels: constLabels,
	})
	batches := prometheus.NewCounter(prometheus.CounterOpts{
		Name:        "area_freight_update_batches_total",
		Help:        "Freight batches persisted.",
		ConstLabels: constLabels,
	})
	batchRecords := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:        "area_freight_update_batch_records",
		Help:        "Records per persisted batch.",
		Buckets:     []float64{50, 100, 250, 500, 1000, 2000, 5000},
		ConstLabels: constLabels,
	})
	heapAlloc := prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        "area_freight_update_heap_alloc_bytes",
		Help:        "Heap in use at the end of the last recompute.",
		ConstLabels: constLabels,
	})

	registerer.MustRegister(duration, records, batches, batchRecords, heapAlloc)

	return &PerformanceMonitor{
		log:          log.Component("performance_monitor"),
		duration:     duration,
		records:      records,
		batches:      batches,
		batchRecords: batchRecords,
		heapAlloc:    heapAlloc,
		ops:          make(map[string]*OperationStats),
		readMemStats: runtime.ReadMemStats,
	}
}

// StartOperation inicia el cronómetro de name; la función devuelta lo detiene.
func (m *PerformanceMonitor) StartOperation(name string) func() time.Duration {
	start := time.Now()
	var once sync.Once
	var elapsed time.Duration
	return func() time.Duration {
		once.Do(func() {
			elapsed = time.Since(start)
			m.observe(name, elapsed)
		})
		return elapsed
	}
}

func (m *PerformanceMonitor) observe(name string, d time.Duration) {
	m.duration.WithLabelValues(name).Observe(d.Seconds())

	m.mu.Lock()
	st, ok := m.ops[name]
	if !ok {
		st = &OperationStats{}
		m.ops[name] = st
	}
	st.Count++
	st.Total += d
	if d > st.Max {
		st.Max = d
	}
	m.mu.Unlock()

	m.log.Debug().Str("operation", name).Dur("elapsed", d).Msg("operación finalizada")
}

// RecordsProcessed suma registros materializados.
func (m *PerformanceMonitor) RecordsProcessed(n int) {
	m.records.Add(float64(n))
	m.mu.Lock()
	m.recordsTotal += int64(n)
	m.mu.Unlock()
}

// BatchSaved cuenta un lote guardado de size registros.
func (m *PerformanceMonitor) BatchSaved(size int) {
	m.batches.Inc()
	m.batchRecords.Observe(float64(size))
	m.mu.Lock()
	m.batchesTotal++
	m.batchRecs += int64(size)
	m.mu.Unlock()
}

// LogMemoryUsage registra el uso de memoria del proceso.
func (m *PerformanceMonitor) LogMemoryUsage() {
	var ms runtime.MemStats
	m.readMemStats(&ms)
	m.heapAlloc.Set(float64(ms.HeapAlloc))
	m.log.Info().
		Uint64("heap_alloc_mb", ms.HeapAlloc/1024/1024).
		Uint64("sys_mb", ms.Sys/1024/1024).
		Uint32("gc_cycles", ms.NumGC).
		Msg("uso de memoria")
}

// Report devuelve los acumulados y las sugerencias de lote y concurrencia
// calculadas con el tiempo medio por lote de persist_batches.
func (m *PerformanceMonitor) Report() Report {
	m.mu.Lock()
	defer m.mu.Unlock()

	r := Report{
		Operations:       make(map[string]OperationStats, len(m.ops)),
		RecordsProcessed: m.recordsTotal,
		Batches:          m.batchesTotal,
		BatchRecords:     m.batchRecs,
	}
	for name, st := range m.ops {
		s := *st
		if s.Count > 0 {
			s.Average = s.Total / time.Duration(s.Count)
		}
		r.Operations[name] = s
	}

	var perBatch time.Duration
	if persist, ok := m.ops["persist_batches"]; ok && m.batchesTotal > 0 {
		perBatch = persist.Total / time.Duration(m.batchesTotal)
	}
	r.SuggestedBatchSize = SuggestBatchSize(perBatch)
	r.SuggestedConcurrency = SuggestConcurrency(perBatch, runtime.NumCPU())
	return r
}

// LogReport escribe el reporte en el log, una línea por operación.
func (m *PerformanceMonitor) LogReport() {
	r := m.Report()
	names := make([]string, 0, len(r.Operations))
	for name := range r.Operations {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		st := r.Operations[name]
		m.log.Info().
			Str("operation", name).
			Int64("count", st.Count).
			Dur("avg", st.Average).
			Dur("max", st.Max).
			Msg("reporte de rendimiento")
	}
	m.log.Info().
		Int64("records", r.RecordsProcessed).
		Int64("batches", r.Batches).
		Int("suggested_batch_size", r.SuggestedBatchSize).
		Int("suggested_concurrency", r.SuggestedConcurrency).
		Msg("reporte de rendimiento")
}

// SuggestBatchSize lotes rápidos admiten más registros: <100ms → 2000, <500ms → 1000, si no 500.
// Sin mediciones devuelve 1000.
func SuggestBatchSize(avgBatch time.Duration) int {
	switch {
	case avgBatch <= 0:
		return 1000
	case avgBatch < 100*time.Millisecond:
		return 2000
	case avgBatch < 500*time.Millisecond:
		return 1000
	default:
		return 500
	}
}

// SuggestConcurrency min(2·cpus, 8), a la mitad (mínimo 2) si cada lote tarda más de un segundo.
func SuggestConcurrency(avgBatch time.Duration, cpus int) int {
	n := min(2*max(cpus, 1), 8)
	if avgBatch > time.Second {
		n = max(n/2, 2)
	}
	return n
}
