package repository_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tinylink/internal/domain"
	"tinylink/internal/repository"
)

// store is the surface both backends share.
type store interface {
	FindByCode(ctx context.Context, code string) (*domain.Link, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Insert(ctx context.Context, code, originalURL string) (*domain.Link, error)
	DeleteByCode(ctx context.Context, code string) (bool, error)
	Count(ctx context.Context) (int64, error)
	ListPage(ctx context.Context, limit, offset int, order domain.LinkOrder) ([]domain.Link, error)
	IncrementClickAndFetchTarget(ctx context.Context, code string) (string, error)
	Ping(ctx context.Context) error
}

// fakeClock hands out strictly increasing timestamps so created_at ordering
// is deterministic.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

func newSQLite(t *testing.T, clock *fakeClock) store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "links.db")
	repo, err := repository.NewSQLiteRepository(context.Background(), path, true, repository.WithClock(clock.Now))
	require.NoError(t, err)
	t.Cleanup(repo.Close)
	return repo
}

func TestSQLiteRepository(t *testing.T) {
	runStoreSuite(t, newSQLite)
}

func TestPostgresRepository(t *testing.T) {
	dsn := os.Getenv("TINYLINK_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TINYLINK_TEST_POSTGRES_DSN not set")
	}

	runStoreSuite(t, func(t *testing.T, clock *fakeClock) store {
		t.Helper()
		ctx := context.Background()

		pool, err := pgxpool.New(ctx, dsn)
		require.NoError(t, err)
		t.Cleanup(pool.Close)

		_, err = pool.Exec(ctx, "TRUNCATE links RESTART IDENTITY")
		require.NoError(t, err, "schema must be migrated before running this test")

		return repository.NewPostgresRepositoryFromPool(pool, repository.WithClock(clock.Now))
	})
}

func TestSQLiteRepository_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "links.db")

	repo, err := repository.NewSQLiteRepository(ctx, path, true)
	require.NoError(t, err)
	_, err = repo.Insert(ctx, "persist1", "https://example.com")
	require.NoError(t, err)
	repo.Close()

	// Second open re-runs migrations, which must be a no-op.
	repo, err = repository.NewSQLiteRepository(ctx, path, true)
	require.NoError(t, err)
	defer repo.Close()

	link, err := repo.FindByCode(ctx, "persist1")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", link.OriginalURL)
}

func runStoreSuite(t *testing.T, open func(*testing.T, *fakeClock) store) {
	t.Run("insert and find", func(t *testing.T) {
		ctx := context.Background()
		repo := open(t, newFakeClock())

		created, err := repo.Insert(ctx, "abc1234", "https://example.com/a")
		require.NoError(t, err)
		assert.Positive(t, created.ID)
		assert.Equal(t, "abc1234", created.Code)
		assert.Equal(t, int64(0), created.ClickCount)
		assert.Nil(t, created.LastClickedAt)
		assert.Equal(t, created.CreatedAt, created.UpdatedAt)

		found, err := repo.FindByCode(ctx, "abc1234")
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "https://example.com/a", found.OriginalURL)

		exists, err := repo.ExistsByCode(ctx, "abc1234")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("missing code", func(t *testing.T) {
		ctx := context.Background()
		repo := open(t, newFakeClock())

		_, err := repo.FindByCode(ctx, "nothere")
		assert.ErrorIs(t, err, repository.ErrNotFound)

		exists, err := repo.ExistsByCode(ctx, "nothere")
		require.NoError(t, err)
		assert.False(t, exists)

		_, err = repo.IncrementClickAndFetchTarget(ctx, "nothere")
		assert.ErrorIs(t, err, repository.ErrNotFound)

		deleted, err := repo.DeleteByCode(ctx, "nothere")
		require.NoError(t, err)
		assert.False(t, deleted)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})

	t.Run("insert conflict keeps first link", func(t *testing.T) {
		ctx := context.Background()
		repo := open(t, newFakeClock())

		_, err := repo.Insert(ctx, "dupe123", "https://first.example")
		require.NoError(t, err)

		_, err = repo.Insert(ctx, "dupe123", "https://second.example")
		assert.ErrorIs(t, err, repository.ErrConflict)

		link, err := repo.FindByCode(ctx, "dupe123")
		require.NoError(t, err)
		assert.Equal(t, "https://first.example", link.OriginalURL)
	})

	t.Run("concurrent inserts with same code", func(t *testing.T) {
		ctx := context.Background()
		repo := open(t, newFakeClock())

		const workers = 8
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			successes int
		)
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repo.Insert(ctx, "race123", fmt.Sprintf("https://example.com/%d", i))
				if err == nil {
					mu.Lock()
					successes++
					mu.Unlock()
					return
				}
				assert.ErrorIs(t, err, repository.ErrConflict)
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, successes)
	})

	t.Run("click increments are not lost", func(t *testing.T) {
		ctx := context.Background()
		repo := open(t, newFakeClock())

		_, err := repo.Insert(ctx, "click12", "https://example.com/c")
		require.NoError(t, err)

		const clicks = 50
		var wg sync.WaitGroup
		for range clicks {
			wg.Add(1)
			go func() {
				defer wg.Done()
				target, err := repo.IncrementClickAndFetchTarget(ctx, "click12")
				assert.NoError(t, err)
				assert.Equal(t, "https://example.com/c", target)
			}()
		}
		wg.Wait()

		link, err := repo.FindByCode(ctx, "click12")
		require.NoError(t, err)
		assert.Equal(t, int64(clicks), link.ClickCount)
		require.NotNil(t, link.LastClickedAt)
		assert.True(t, link.UpdatedAt.After(link.CreatedAt))
	})

	t.Run("delete is final", func(t *testing.T) {
		ctx := context.Background()
		repo := open(t, newFakeClock())

		_, err := repo.Insert(ctx, "gone123", "https://example.com/g")
		require.NoError(t, err)

		deleted, err := repo.DeleteByCode(ctx, "gone123")
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = repo.IncrementClickAndFetchTarget(ctx, "gone123")
		assert.ErrorIs(t, err, repository.ErrNotFound)

		exists, err := repo.ExistsByCode(ctx, "gone123")
		require.NoError(t, err)
		assert.False(t, exists, "a click after delete must not recreate the link")
	})

	t.Run("list ordering and paging", func(t *testing.T) {
		ctx := context.Background()
		repo := open(t, newFakeClock())

		for _, code := range []string{"first01", "second2", "third03"} {
			_, err := repo.Insert(ctx, code, "https://example.com/"+code)
			require.NoError(t, err)
		}
		for range 3 {
			_, err := repo.IncrementClickAndFetchTarget(ctx, "first01")
			require.NoError(t, err)
		}
		_, err := repo.IncrementClickAndFetchTarget(ctx, "third03")
		require.NoError(t, err)

		recent, err := repo.ListPage(ctx, 10, 0, domain.OrderRecent)
		require.NoError(t, err)
		assert.Equal(t, []string{"third03", "second2", "first01"}, codes(recent))

		popular, err := repo.ListPage(ctx, 10, 0, domain.OrderPopular)
		require.NoError(t, err)
		assert.Equal(t, []string{"first01", "third03", "second2"}, codes(popular))

		page, err := repo.ListPage(ctx, 1, 1, domain.OrderRecent)
		require.NoError(t, err)
		assert.Equal(t, []string{"second2"}, codes(page))

		past, err := repo.ListPage(ctx, 10, 10, domain.OrderRecent)
		require.NoError(t, err)
		assert.Empty(t, past)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("ping", func(t *testing.T) {
		repo := open(t, newFakeClock())
		assert.NoError(t, repo.Ping(context.Background()))
	})
}

func codes(links []domain.Link) []string {
	out := make([]string, 0, len(links))
	for _, l := range links {
		out = append(out, l.Code)
	}
	return out
}
