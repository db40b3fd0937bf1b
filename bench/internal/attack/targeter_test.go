package attack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vegeta "github.com/tsenart/vegeta/v12/lib"

	"bench/internal/attack"
)

func TestCreateTargeter(t *testing.T) {
	tr := attack.CreateTargeter("http://localhost:8080")

	var first, second vegeta.Target
	require.NoError(t, tr(&first))
	require.NoError(t, tr(&second))

	assert.Equal(t, "POST", first.Method)
	assert.Equal(t, "http://localhost:8080/api/links", first.URL)
	assert.Equal(t, "application/json", first.Header.Get("Content-Type"))
	assert.Contains(t, string(first.Body), `"originalUrl":"https://example.com/`)
	assert.NotEqual(t, string(first.Body), string(second.Body))
}

func TestRedirectTargeter(t *testing.T) {
	codes := []string{"Abc1234", "Xyz7890"}
	tr := attack.RedirectTargeter("http://localhost:8080", codes)

	for range 20 {
		var target vegeta.Target
		require.NoError(t, tr(&target))
		assert.Equal(t, "GET", target.Method)
		assert.Contains(t, []string{"http://localhost:8080/Abc1234", "http://localhost:8080/Xyz7890"}, target.URL)
		assert.Nil(t, target.Body)
	}
}

func TestMixedTargeter_Ratios(t *testing.T) {
	codes := []string{"Abc1234"}

	allCreate := attack.MixedTargeter("http://h", codes, 1.0)
	allRedirect := attack.MixedTargeter("http://h", codes, 0.0)

	for range 10 {
		var c, r vegeta.Target
		require.NoError(t, allCreate(&c))
		require.NoError(t, allRedirect(&r))
		assert.Equal(t, "POST", c.Method)
		assert.Equal(t, "GET", r.Method)
	}
}

func TestListTargeter(t *testing.T) {
	tr := attack.ListTargeter("http://h", 120)

	for range 20 {
		var target vegeta.Target
		require.NoError(t, tr(&target))
		assert.Equal(t, "GET", target.Method)
		assert.Regexp(t, `^http://h/api/links\?sort=popular&limit=50&offset=([0-9]|[1-6][0-9])$`, target.URL)
	}

	var few vegeta.Target
	require.NoError(t, attack.ListTargeter("http://h", 3)(&few))
	assert.Equal(t, "http://h/api/links?sort=popular&limit=50&offset=0", few.URL)
}

func TestTargeter_Selection(t *testing.T) {
	tests := []struct {
		name    string
		cfg     attack.Config
		wantErr bool
	}{
		{"create without codes", attack.Config{Type: attack.TypeCreate}, false},
		{"redirect without codes", attack.Config{Type: attack.TypeRedirect}, true},
		{"mixed without codes", attack.Config{Type: attack.TypeMixed}, true},
		{"redirect with codes", attack.Config{Type: attack.TypeRedirect, Codes: []string{"Abc1234"}}, false},
		{"list without codes", attack.Config{Type: attack.TypeList}, false},
		{"unknown type", attack.Config{Type: "flood"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := attack.Targeter(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, tr)
		})
	}
}
