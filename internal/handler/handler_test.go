package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"tinylink/internal/domain"
)

func TestParseListParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  domain.ListParams
	}{
		{
			name:  "absent values",
			query: "",
			want:  domain.ListParams{},
		},
		{
			name:  "numeric values",
			query: "limit=20&offset=40",
			want:  domain.ListParams{Limit: 20, Offset: 40},
		},
		{
			name:  "non-numeric limit keeps offset",
			query: "limit=lots&offset=10",
			want:  domain.ListParams{Offset: 10},
		},
		{
			name:  "negative offset passes through",
			query: "offset=-5",
			want:  domain.ListParams{Offset: -5},
		},
		{
			name:  "popular sort",
			query: "sort=popular",
			want:  domain.ListParams{Order: domain.OrderPopular},
		},
		{
			name:  "unknown sort is recent",
			query: "sort=alphabetical",
			want:  domain.ListParams{Order: domain.OrderRecent},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/links?"+tt.query, nil)
			c := e.NewContext(req, httptest.NewRecorder())

			assert.Equal(t, tt.want, parseListParams(c))
		})
	}
}
