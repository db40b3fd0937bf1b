package seed_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bench/internal/seed"
)

func TestRun_CollectsCodesInOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/links", r.URL.Path)

		var req struct {
			OriginalURL string `json:"originalUrl"`
		}
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) {
			return
		}

		var n int
		_, err := fmt.Sscanf(req.OriginalURL, "https://example.com/seed/%d", &n)
		assert.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = fmt.Fprintf(w, `{"code":"code%03d"}`, n)
	}))
	defer srv.Close()

	codes, err := seed.Run(context.Background(), &seed.Config{
		BaseURL: srv.URL,
		Count:   25,
		Workers: 4,
		Timeout: time.Second,
	})
	require.NoError(t, err)
	require.Len(t, codes, 25)
	assert.Equal(t, "code000", codes[0])
	assert.Equal(t, "code024", codes[24])
}

func TestRun_FailsOnUnexpectedStatus(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	_, err := seed.Run(context.Background(), &seed.Config{
		BaseURL: srv.URL,
		Count:   3,
		Workers: 1,
		Timeout: time.Second,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "409")
	assert.Positive(t, calls.Load())
}
