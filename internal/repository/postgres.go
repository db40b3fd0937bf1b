package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tinylink/internal/config"
	"tinylink/internal/domain"
)

// PostgresRepository stores links in Postgres. Every mutating method is a
// single statement, so atomicity comes from the engine, not from locks here.
type PostgresRepository struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

func NewPostgresRepository(ctx context.Context, cfg *config.DatabaseConfig, opts ...Option) (*PostgresRepository, error) {
	if cfg.Migrate {
		if err := migratePostgres(cfg.URL()); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.URL())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	r := NewPostgresRepositoryFromPool(pool, opts...)
	if err := r.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return r, nil
}

func NewPostgresRepositoryFromPool(pool *pgxpool.Pool, opts ...Option) *PostgresRepository {
	o := applyOptions(opts)
	return &PostgresRepository{pool: pool, now: o.now}
}

func (r *PostgresRepository) Pool() *pgxpool.Pool {
	return r.pool
}

func (r *PostgresRepository) Close() {
	r.pool.Close()
}

func (r *PostgresRepository) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return r.pool.Ping(ctx)
}

func (r *PostgresRepository) FindByCode(ctx context.Context, code string) (*domain.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links WHERE code = $1`

	link, err := scanPgLink(r.pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find link: %w", err)
	}
	return link, nil
}

func (r *PostgresRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM links WHERE code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check code: %w", err)
	}
	return exists, nil
}

// Insert creates the link only if code is free. A conflicting row makes
// ON CONFLICT skip the insert, RETURNING yields nothing and ErrConflict is returned.
func (r *PostgresRepository) Insert(ctx context.Context, code, originalURL string) (*domain.Link, error) {
	query := `INSERT INTO links (code, original_url, created_at, updated_at)
              VALUES ($1, $2, $3, $3)
              ON CONFLICT (code) DO NOTHING
              RETURNING ` + linkColumns

	link, err := scanPgLink(r.pool.QueryRow(ctx, query, code, originalURL, r.now().UTC()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to insert link: %w", err)
	}
	return link, nil
}

func (r *PostgresRepository) DeleteByCode(ctx context.Context, code string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM links WHERE code = $1`, code)
	if err != nil {
		return false, fmt.Errorf("failed to delete link: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM links`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count links: %w", err)
	}
	return count, nil
}

func (r *PostgresRepository) ListPage(ctx context.Context, limit, offset int, order domain.LinkOrder) ([]domain.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links ORDER BY ` + orderClause(order) + ` LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	defer rows.Close()

	links := make([]domain.Link, 0, limit)
	for rows.Next() {
		link, err := scanPgLink(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}
		links = append(links, *link)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	return links, nil
}

// IncrementClickAndFetchTarget counts a visit and returns the target in one
// statement. A missing row matches nothing, so no row is ever recreated.
func (r *PostgresRepository) IncrementClickAndFetchTarget(ctx context.Context, code string) (string, error) {
	query := `UPDATE links
              SET click_count = click_count + 1, last_clicked_at = $2, updated_at = $2
              WHERE code = $1
              RETURNING original_url`

	var originalURL string
	err := r.pool.QueryRow(ctx, query, code, r.now().UTC()).Scan(&originalURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to record click: %w", err)
	}
	return originalURL, nil
}

func scanPgLink(row pgx.Row) (*domain.Link, error) {
	var link domain.Link
	err := row.Scan(
		&link.ID, &link.Code, &link.OriginalURL, &link.ClickCount,
		&link.LastClickedAt, &link.CreatedAt, &link.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &link, nil
}
