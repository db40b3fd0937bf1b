package shortener_test

import (
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tinylink/internal/shortener"
)

var generatedCodePattern = regexp.MustCompile(`^[A-Za-z0-9]{7}$`)

func TestGenerator_DefaultLength(t *testing.T) {
	g := shortener.NewGenerator(0)

	for range 1000 {
		assert.Regexp(t, generatedCodePattern, g.Generate())
	}
}

func TestGenerator_CustomLength(t *testing.T) {
	g := shortener.NewGenerator(8)
	assert.Len(t, g.Generate(), 8)
}

func TestGenerator_Deterministic(t *testing.T) {
	idx := 0
	g := shortener.NewGeneratorWithSource(7, func(n int) int {
		v := idx % n
		idx++
		return v
	})

	assert.Equal(t, "ABCDEFG", g.Generate())
	assert.Equal(t, "HIJKLMN", g.Generate())
}

func TestGenerator_AlphabetEdges(t *testing.T) {
	last := shortener.NewGeneratorWithSource(7, func(n int) int { return n - 1 })
	assert.Equal(t, "9999999", last.Generate())

	first := shortener.NewGeneratorWithSource(7, func(int) int { return 0 })
	assert.Equal(t, "AAAAAAA", first.Generate())
}

func TestGenerator_Concurrent(t *testing.T) {
	g := shortener.NewGenerator(shortener.DefaultLength)

	var (
		mu    sync.Mutex
		codes = make(map[string]struct{})
		wg    sync.WaitGroup
	)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 500 {
				code := g.Generate()
				mu.Lock()
				codes[code] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	// 4000 draws over 62^7 values: a repeat would point at a broken source.
	assert.Len(t, codes, 4000)
}

func TestAlphabet(t *testing.T) {
	assert.Len(t, shortener.Alphabet, 62)

	seen := make(map[rune]bool)
	for _, r := range shortener.Alphabet {
		assert.False(t, seen[r], "duplicate %q", r)
		seen[r] = true
	}
}

func TestIDEncoder_Encode(t *testing.T) {
	e, err := shortener.NewIDEncoder()
	require.NoError(t, err)

	for _, id := range []int64{0, 1, 42, 1_000_000, 1 << 40} {
		encoded := e.Encode(id)
		assert.GreaterOrEqual(t, len(encoded), 6)
		assert.Regexp(t, `^[a-zA-Z0-9]+$`, encoded)
		assert.Equal(t, encoded, e.Encode(id), "encoding is stable")
	}
}

func TestIDEncoder_DistinctIDs(t *testing.T) {
	e, err := shortener.NewIDEncoder()
	require.NoError(t, err)

	assert.NotEqual(t, e.Encode(1), e.Encode(2))
}
