package metrics

import "time"

type HTTPMetric struct {
	Time       time.Time
	Method     string
	Path       string
	StatusCode int
	DurationMs float64
	Error      string
}

// BusinessMetric is an aggregate counter sample. Labels describe the event
// kind only and never identify a visitor.
type BusinessMetric struct {
	Time       time.Time
	MetricName string
	Value      float64
	Labels     map[string]string
}

type InfraMetric struct {
	Time          time.Time
	PoolAcquired  int
	PoolIdle      int
	PoolTotal     int
	PoolMax       int
	CacheHits     int64
	CacheMisses   int64
	CacheHitRatio float64
	Goroutines    int
	HeapAllocMB   float64
}

var (
	httpColumns = []string{"time", "method", "path", "status_code", "duration_ms", "error"}

	businessColumns = []string{"time", "metric_name", "value", "labels"}

	infraColumns = []string{
		"time", "pool_acquired", "pool_idle", "pool_total", "pool_max",
		"cache_hits", "cache_misses", "cache_hit_ratio", "goroutines", "heap_alloc_mb",
	}
)

func (m HTTPMetric) row() []any {
	return []any{m.Time, m.Method, m.Path, m.StatusCode, m.DurationMs, m.Error}
}

func (m BusinessMetric) row() []any {
	labels := m.Labels
	if labels == nil {
		labels = map[string]string{}
	}
	return []any{m.Time, m.MetricName, m.Value, labels}
}

func (m InfraMetric) row() []any {
	return []any{
		m.Time, m.PoolAcquired, m.PoolIdle, m.PoolTotal, m.PoolMax,
		m.CacheHits, m.CacheMisses, m.CacheHitRatio, m.Goroutines, m.HeapAllocMB,
	}
}
