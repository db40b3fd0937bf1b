package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/net/netutil"
	"golang.org/x/sync/errgroup"

	"tinylink/internal/cache"
	"tinylink/internal/config"
	"tinylink/internal/formatter"
	"tinylink/internal/handler"
	"tinylink/internal/metrics"
	custommiddleware "tinylink/internal/middleware"
	"tinylink/internal/repository"
	"tinylink/internal/service"
	"tinylink/internal/shortener"
	"tinylink/internal/validation"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

type linkStore interface {
	service.Repository
	handler.HealthChecker
	Close()
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	store, pool, err := openStore(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()
	logger.Info("store ready", slog.String("driver", cfg.Database.Driver))

	linkCache, err := cache.New(cfg.Cache.MaxSizePow2, cfg.Cache.TTL)
	if err != nil {
		return fmt.Errorf("failed to create cache: %w", err)
	}
	defer linkCache.Close()

	ids, err := shortener.NewIDEncoder()
	if err != nil {
		return fmt.Errorf("failed to create id encoder: %w", err)
	}

	// Metrics land in Postgres only; the SQLite store runs without them.
	var sink metrics.Copier
	if pool != nil {
		sink = pool
	}
	recorder := metrics.NewRecorder(sink, &cfg.Metrics, logger)
	recorder.Start(ctx)
	defer recorder.Close()

	if recorder.Enabled() {
		go collectInfraMetrics(ctx, recorder, pool, linkCache)
	}

	linkService := service.NewLinkService(
		store,
		linkCache,
		shortener.NewGenerator(shortener.DefaultLength),
		validation.NewLinkValidator(cfg.Validation.MaxURLLength),
		formatter.New(cfg.App.BaseURL, ids),
		recorder,
	)
	h := handler.New(linkService, store, logger, cfg.App.Version)

	e := newEcho(cfg, logger, recorder)
	if cfg.Pprof.Enabled {
		custommiddleware.RegisterPprof(e, cfg.Pprof.Secret)
		logger.Info("pprof endpoints enabled", slog.String("path", "/debug/pprof/*"))
	}
	h.Register(e)

	return serve(ctx, cfg, e, logger)
}

func openStore(ctx context.Context, cfg *config.DatabaseConfig) (linkStore, *pgxpool.Pool, error) {
	if cfg.Driver == config.DriverSQLite {
		repo, err := repository.NewSQLiteRepository(ctx, cfg.SQLitePath, cfg.Migrate)
		if err != nil {
			return nil, nil, err
		}
		return repo, nil, nil
	}

	repo, err := repository.NewPostgresRepository(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return repo, repo.Pool(), nil
}

func newEcho(cfg *config.Config, logger *slog.Logger, recorder *metrics.Recorder) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handler.HTTPErrorHandler(logger)

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(custommiddleware.RequestID())
	e.Use(custommiddleware.RequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
	}))
	e.Use(middleware.BodyLimit(cfg.Validation.MaxRequestBodySize))
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{MinLength: 1024}))
	e.Use(custommiddleware.Metrics(recorder))

	return e
}

func serve(ctx context.Context, cfg *config.Config, e *echo.Echo, logger *slog.Logger) error {
	httpAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpListener, err := listen(httpAddr, cfg.Server.MaxConnections)
	if err != nil {
		return fmt.Errorf("failed to create HTTP listener: %w", err)
	}
	logger.Info("starting HTTP server",
		slog.String("addr", httpAddr),
		slog.Int("max_connections", cfg.Server.MaxConnections))

	servers := []*http.Server{newServer(&cfg.Server, e)}
	listeners := []net.Listener{httpListener}

	if cfg.TLS.Enabled {
		httpsAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.TLS.Port)
		tlsListener, err := listenTLS(httpsAddr, &cfg.TLS, cfg.Server.MaxConnections)
		if err != nil {
			_ = httpListener.Close()
			return err
		}
		logger.Info("starting HTTPS server",
			slog.String("addr", httpsAddr),
			slog.Int("max_connections", cfg.Server.MaxConnections))

		servers = append(servers, newServer(&cfg.Server, e))
		listeners = append(listeners, tlsListener)
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, srv := range servers {
		ln := listeners[i]
		g.Go(func() error {
			if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server on %s failed: %w", ln.Addr(), err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down servers")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs []error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, err)
			}
		}
		if err := errors.Join(errs...); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func listen(addr string, maxConns int) (net.Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	if maxConns > 0 {
		ln = netutil.LimitListener(ln, maxConns)
	}
	return ln, nil
}

func listenTLS(addr string, cfg *config.TLSConfig, maxConns int) (net.Listener, error) {
	cert, err := tls.LoadX509KeyPair(cfg.CertFile, cfg.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS certificate: %w", err)
	}

	ln, err := listen(addr, maxConns)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTPS listener: %w", err)
	}

	return tls.NewListener(ln, &tls.Config{
		MinVersion:       tls.VersionTLS13,
		Certificates:     []tls.Certificate{cert},
		CurvePreferences: []tls.CurveID{tls.X25519},
	}), nil
}

func newServer(cfg *config.ServerConfig, h http.Handler) *http.Server {
	return &http.Server{
		Handler:        h,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: 1 << 14, // 16KB
	}
}

func collectInfraMetrics(ctx context.Context, recorder *metrics.Recorder, pool *pgxpool.Pool, linkCache *cache.LinkCache) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			poolStat := pool.Stat()
			cacheHits, cacheMisses, cacheRatio := linkCache.Stats()

			var memStats runtime.MemStats
			runtime.ReadMemStats(&memStats)

			recorder.RecordInfra(metrics.InfraMetric{
				Time:          time.Now(),
				PoolAcquired:  int(poolStat.AcquiredConns()),
				PoolIdle:      int(poolStat.IdleConns()),
				PoolTotal:     int(poolStat.TotalConns()),
				PoolMax:       int(poolStat.MaxConns()),
				CacheHits:     int64(cacheHits),
				CacheMisses:   int64(cacheMisses),
				CacheHitRatio: cacheRatio,
				Goroutines:    runtime.NumGoroutine(),
				HeapAllocMB:   float64(memStats.HeapAlloc) / 1024 / 1024,
			})
		}
	}
}
