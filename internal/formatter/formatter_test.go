package formatter_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tinylink/internal/domain"
	"tinylink/internal/formatter"
	"tinylink/internal/shortener"
)

func newFormatter(t *testing.T, baseURL string) *formatter.Formatter {
	t.Helper()
	ids, err := shortener.NewIDEncoder()
	require.NoError(t, err)
	return formatter.New(baseURL, ids)
}

func TestLink_FreshLink(t *testing.T) {
	f := newFormatter(t, "http://localhost:8080")
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	resp := f.Link(&domain.Link{
		ID:          7,
		Code:        "abc1234",
		OriginalURL: "https://example.com",
		CreatedAt:   created,
		UpdatedAt:   created,
	})

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "abc1234", resp.Code)
	assert.Equal(t, "https://example.com", resp.OriginalURL)
	assert.Equal(t, int64(0), resp.ClickCount)
	assert.Nil(t, resp.LastClickedAt)
	assert.Equal(t, created, resp.CreatedAt)
	assert.Equal(t, "http://localhost:8080/abc1234", resp.ShortURL)
}

func TestLink_JSONShape(t *testing.T) {
	f := newFormatter(t, "https://sho.rt")
	now := time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)

	body, err := json.Marshal(f.Link(&domain.Link{
		ID:          1,
		Code:        "Zz09Zz",
		OriginalURL: "https://example.com/x",
		CreatedAt:   now,
		UpdatedAt:   now,
	}))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(body, &got))

	for _, key := range []string{"id", "code", "originalUrl", "clickCount", "lastClickedAt", "createdAt", "updatedAt", "shortUrl"} {
		assert.Contains(t, got, key)
	}
	assert.Nil(t, got["lastClickedAt"])
	assert.Equal(t, "2026-05-06T07:08:09Z", got["createdAt"])
}

func TestLink_ClickedLinkNormalizedToUTC(t *testing.T) {
	f := newFormatter(t, "https://sho.rt")
	zone := time.FixedZone("UTC+3", 3*60*60)
	clicked := time.Date(2026, 5, 6, 10, 0, 0, 0, zone)

	resp := f.Link(&domain.Link{
		ID:            2,
		Code:          "abcdef",
		ClickCount:    5,
		LastClickedAt: &clicked,
		CreatedAt:     clicked,
		UpdatedAt:     clicked,
	})

	require.NotNil(t, resp.LastClickedAt)
	assert.Equal(t, time.UTC, resp.LastClickedAt.Location())
	assert.True(t, clicked.Equal(*resp.LastClickedAt))
	assert.Equal(t, int64(5), resp.ClickCount)
}

func TestShortURL_TrailingSlashBase(t *testing.T) {
	f := newFormatter(t, "https://sho.rt/")
	assert.Equal(t, "https://sho.rt/abc123", f.ShortURL("abc123"))
}

func TestShortURL_EndsWithCode(t *testing.T) {
	bases := []string{"http://localhost:3000", "https://sho.rt/", "https://example.com/s"}
	codes := []string{"abc123", "ABCDEFG", "a1b2c3d4"}

	for _, base := range bases {
		f := newFormatter(t, base)
		for _, code := range codes {
			short := f.Link(&domain.Link{Code: code}).ShortURL
			assert.True(t, strings.HasSuffix(short, "/"+code), "%s does not end with %s", short, code)
		}
	}
}

func TestLinks_PreservesOrder(t *testing.T) {
	f := newFormatter(t, "https://sho.rt")

	out := f.Links([]domain.Link{{ID: 1, Code: "first1"}, {ID: 2, Code: "second"}})
	require.Len(t, out, 2)
	assert.Equal(t, "first1", out[0].Code)
	assert.Equal(t, "second", out[1].Code)
	assert.NotEqual(t, out[0].ID, out[1].ID)

	assert.Empty(t, f.Links(nil))
	assert.NotNil(t, f.Links(nil), "empty pages encode as [] rather than null")
}
