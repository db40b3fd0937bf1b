package attack

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"sync/atomic"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

var jsonHeader = http.Header{"Content-Type": []string{"application/json"}}

// targetSeq keeps created URLs distinct across all create targeters.
var targetSeq atomic.Uint64

func get(t *vegeta.Target, url string) {
	t.Method = http.MethodGet
	t.URL = url
	t.Header = nil
	t.Body = nil
}

// CreateTargeter posts a fresh target URL on every hit and leaves code
// generation to the server.
func CreateTargeter(baseURL string) vegeta.Targeter {
	endpoint := baseURL + "/api/links"

	return func(t *vegeta.Target) error {
		t.Method = http.MethodPost
		t.URL = endpoint
		t.Header = jsonHeader
		t.Body = fmt.Appendf(nil, `{"originalUrl":"https://example.com/%d"}`, targetSeq.Add(1))
		return nil
	}
}

// RedirectTargeter follows a uniformly random seeded code.
func RedirectTargeter(baseURL string, codes []string) vegeta.Targeter {
	return func(t *vegeta.Target) error {
		get(t, baseURL+"/"+codes[rand.IntN(len(codes))])
		return nil
	}
}

// ListTargeter pages through the popular listing at a random offset
// within the seeded range.
func ListTargeter(baseURL string, seeded int) vegeta.Targeter {
	return func(t *vegeta.Target) error {
		offset := 0
		if seeded > listPageSize {
			offset = rand.IntN(seeded - listPageSize)
		}
		get(t, fmt.Sprintf("%s/api/links?sort=popular&limit=%d&offset=%d", baseURL, listPageSize, offset))
		return nil
	}
}

func MixedTargeter(baseURL string, codes []string, createRatio float64) vegeta.Targeter {
	create := CreateTargeter(baseURL)
	redirect := RedirectTargeter(baseURL, codes)

	return func(t *vegeta.Target) error {
		if rand.Float64() < createRatio {
			return create(t)
		}
		return redirect(t)
	}
}
