package seed

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

type Config struct {
	BaseURL            string
	Count              int
	Workers            int
	Timeout            time.Duration
	InsecureSkipVerify bool
}

type createRequest struct {
	OriginalURL string `json:"originalUrl"`
}

type createResponse struct {
	Code string `json:"code"`
}

// Run creates cfg.Count links and returns their codes in creation order.
func Run(ctx context.Context, cfg *Config) ([]string, error) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU() * 2
	}
	fmt.Printf("Seeding %d links (workers: %d)...\n", cfg.Count, workers)

	client := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			TLSClientConfig:     &tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify}, //nolint:gosec // bench against self-signed certs
			MaxIdleConns:        workers * 2,
			MaxIdleConnsPerHost: workers * 2,
			IdleConnTimeout:     90 * time.Second,
			ForceAttemptHTTP2:   true,
		},
		// The API never redirects; keep any 3xx visible as an error.
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	codes := make([]string, cfg.Count)
	var progress atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range cfg.Count {
		g.Go(func() error {
			code, err := createLink(gctx, client, cfg.BaseURL, fmt.Sprintf("https://example.com/seed/%d", i))
			if err != nil {
				return fmt.Errorf("failed to create link %d: %w", i, err)
			}
			codes[i] = code
			if done := progress.Add(1); done%1000 == 0 || int(done) == cfg.Count {
				fmt.Printf("\rProgress: %d/%d", done, cfg.Count)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	fmt.Printf("\nSeeding complete: %d codes\n", len(codes))
	return codes, nil
}

func createLink(ctx context.Context, client *http.Client, baseURL, originalURL string) (string, error) {
	body, err := json.Marshal(createRequest{OriginalURL: originalURL})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/api/links", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var result createResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	return result.Code, nil
}
