package metrics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"tinylink/internal/config"
)

// Copier is the bulk-insert surface of *pgxpool.Pool.
type Copier interface {
	CopyFrom(ctx context.Context, table pgx.Identifier, columns []string, rows pgx.CopyFromSource) (int64, error)
}

// Recorder buffers metrics in memory and writes them in batches with COPY.
// Recording never blocks a request: when a buffer is full the sample is dropped.
type Recorder struct {
	enabled  bool
	logger   *slog.Logger
	cfg      *config.MetricsConfig
	http     *batcher[HTTPMetric]
	business *batcher[BusinessMetric]
	infra    *batcher[InfraMetric]

	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

// NewRecorder returns a recorder writing to sink. A nil sink (no Postgres
// store) or a disabled config yields a recorder that discards everything.
func NewRecorder(sink Copier, cfg *config.MetricsConfig, logger *slog.Logger) *Recorder {
	r := &Recorder{
		enabled:    cfg.Enabled && sink != nil,
		logger:     logger,
		cfg:        cfg,
		shutdownCh: make(chan struct{}),
	}
	r.http = newBatcher[HTTPMetric](sink, "http_metrics", httpColumns, cfg, logger)
	r.business = newBatcher[BusinessMetric](sink, "business_metrics", businessColumns, cfg, logger)
	r.infra = newBatcher[InfraMetric](sink, "infra_metrics", infraColumns, cfg, logger)
	return r
}

func (r *Recorder) Enabled() bool {
	return r.enabled
}

func (r *Recorder) RecordHTTP(m HTTPMetric) {
	if !r.enabled {
		return
	}
	r.http.add(m)
}

func (r *Recorder) RecordBusiness(name string, value float64, labels map[string]string) {
	if !r.enabled {
		return
	}
	r.business.add(BusinessMetric{
		Time:       time.Now(),
		MetricName: name,
		Value:      value,
		Labels:     labels,
	})
}

func (r *Recorder) RecordInfra(m InfraMetric) {
	if !r.enabled {
		return
	}
	r.infra.add(m)
}

func (r *Recorder) Start(ctx context.Context) {
	if !r.enabled {
		r.logger.Info("metrics recording disabled")
		return
	}

	interval := time.Duration(r.cfg.FlushInterval) * time.Millisecond

	r.wg.Add(3)
	go r.run(ctx, interval, r.http)
	go r.run(ctx, interval, r.business)
	go r.run(ctx, interval, r.infra)

	r.logger.Info("metrics recorder started",
		slog.Int("buffer_size", r.cfg.BufferSize),
		slog.Int("flush_interval_ms", r.cfg.FlushInterval))
}

// Close stops the flush loops after writing whatever is still buffered.
func (r *Recorder) Close() {
	r.shutdownOnce.Do(func() {
		close(r.shutdownCh)
		r.wg.Wait()
	})
}

type flusher interface {
	loop(ctx context.Context, interval time.Duration, done <-chan struct{})
}

func (r *Recorder) run(ctx context.Context, interval time.Duration, f flusher) {
	defer r.wg.Done()
	f.loop(ctx, interval, r.shutdownCh)
}

type row interface {
	row() []any
}

type batcher[T row] struct {
	sink      Copier
	table     pgx.Identifier
	columns   []string
	ch        chan T
	threshold int
	logger    *slog.Logger
}

func newBatcher[T row](sink Copier, table string, columns []string, cfg *config.MetricsConfig, logger *slog.Logger) *batcher[T] {
	return &batcher[T]{
		sink:      sink,
		table:     pgx.Identifier{table},
		columns:   columns,
		ch:        make(chan T, max(cfg.BufferSize, 1)),
		threshold: max(cfg.FlushThreshold, 1),
		logger:    logger,
	}
}

func (b *batcher[T]) add(m T) {
	select {
	case b.ch <- m:
	default:
		b.logger.Warn("metrics buffer full, dropping metric", slog.String("table", b.table.Sanitize()))
	}
}

func (b *batcher[T]) loop(ctx context.Context, interval time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	batch := make([]T, 0, b.threshold)

	for {
		select {
		case <-ctx.Done():
			b.drain(batch)
			return
		case <-done:
			b.drain(batch)
			return
		case m := <-b.ch:
			batch = append(batch, m)
			if len(batch) >= b.threshold {
				b.write(ctx, batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				b.write(ctx, batch)
				batch = batch[:0]
			}
		}
	}
}

func (b *batcher[T]) drain(batch []T) {
	for {
		select {
		case m := <-b.ch:
			batch = append(batch, m)
		default:
			if len(batch) > 0 {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				b.write(ctx, batch)
				cancel()
			}
			return
		}
	}
}

func (b *batcher[T]) write(ctx context.Context, batch []T) {
	rows := make([][]any, len(batch))
	for i, m := range batch {
		rows[i] = m.row()
	}

	_, err := b.sink.CopyFrom(ctx, b.table, b.columns, pgx.CopyFromRows(rows))
	if err != nil {
		b.logger.Error("failed to write metrics batch",
			slog.String("table", b.table.Sanitize()),
			slog.String("error", err.Error()))
	}
}
