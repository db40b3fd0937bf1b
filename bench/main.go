package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bench/internal/attack"
	"bench/internal/config"
	"bench/internal/seed"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var codes []string
	if cfg.BenchType != attack.TypeCreate {
		codes, err = seed.Run(ctx, &seed.Config{
			BaseURL:            cfg.BaseURL,
			Count:              cfg.SeedCount,
			Workers:            cfg.SeedWorkers,
			Timeout:            cfg.SeedTimeout,
			InsecureSkipVerify: cfg.InsecureSkipVerify,
		})
		if err != nil {
			return fmt.Errorf("seed failed: %w", err)
		}
	}

	return attack.Run(ctx, &attack.Config{
		BaseURL:            cfg.BaseURL,
		Codes:              codes,
		Rate:               cfg.Rate,
		Duration:           cfg.Duration,
		CreateRatio:        cfg.CreateRatio,
		Type:               cfg.BenchType,
		Connections:        cfg.Connections,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
	}, os.Stdout)
}
