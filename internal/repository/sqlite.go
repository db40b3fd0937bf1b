package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"time"

	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"tinylink/internal/domain"
)

// SQLiteRepository stores links in a SQLite file. Timestamps are kept as
// unix microseconds so ordering does not depend on text formatting.
type SQLiteRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteRepository(ctx context.Context, path string, migrate bool, opts ...Option) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", sqliteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite has a single writer; one connection also keeps ":memory:" databases shared.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if migrate {
		if err := migrateSQLite(db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	o := applyOptions(opts)
	return &SQLiteRepository{db: db, now: o.now}, nil
}

func sqliteDSN(path string) string {
	q := url.Values{}
	q.Add("_pragma", "busy_timeout(5000)")
	q.Add("_pragma", "journal_mode(WAL)")
	return "file:" + path + "?" + q.Encode()
}

func (r *SQLiteRepository) Close() {
	_ = r.db.Close()
}

func (r *SQLiteRepository) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return r.db.PingContext(ctx)
}

func (r *SQLiteRepository) FindByCode(ctx context.Context, code string) (*domain.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links WHERE code = ?`

	link, err := scanSQLiteLink(r.db.QueryRowContext(ctx, query, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find link: %w", err)
	}
	return link, nil
}

func (r *SQLiteRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM links WHERE code = ?)`, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check code: %w", err)
	}
	return exists, nil
}

func (r *SQLiteRepository) Insert(ctx context.Context, code, originalURL string) (*domain.Link, error) {
	query := `INSERT INTO links (code, original_url, click_count, created_at, updated_at)
              VALUES (?, ?, 0, ?, ?)
              ON CONFLICT (code) DO NOTHING
              RETURNING ` + linkColumns

	now := r.now().UnixMicro()
	link, err := scanSQLiteLink(r.db.QueryRowContext(ctx, query, code, originalURL, now, now))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to insert link: %w", err)
	}
	return link, nil
}

func (r *SQLiteRepository) DeleteByCode(ctx context.Context, code string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM links WHERE code = ?`, code)
	if err != nil {
		return false, fmt.Errorf("failed to delete link: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete link: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM links`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count links: %w", err)
	}
	return count, nil
}

func (r *SQLiteRepository) ListPage(ctx context.Context, limit, offset int, order domain.LinkOrder) ([]domain.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links ORDER BY ` + orderClause(order) + ` LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	defer rows.Close()

	links := make([]domain.Link, 0, limit)
	for rows.Next() {
		link, err := scanSQLiteLink(rows)
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

func (r *SQLiteRepository) IncrementClickAndFetchTarget(ctx context.Context, code string) (string, error) {
	query := `UPDATE links
              SET click_count = click_count + 1, last_clicked_at = ?, updated_at = ?
              WHERE code = ?
              RETURNING original_url`

	now := r.now().UnixMicro()
	var originalURL string
	err := r.db.QueryRowContext(ctx, query, now, now, code).Scan(&originalURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to record click: %w", err)
	}
	return originalURL, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteLink(row rowScanner) (*domain.Link, error) {
	var (
		link        domain.Link
		lastClicked sql.NullInt64
		createdAt   int64
		updatedAt   int64
	)
	err := row.Scan(
		&link.ID, &link.Code, &link.OriginalURL, &link.ClickCount,
		&lastClicked, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	link.CreatedAt = time.UnixMicro(createdAt).UTC()
	link.UpdatedAt = time.UnixMicro(updatedAt).UTC()
	if lastClicked.Valid {
		t := time.UnixMicro(lastClicked.Int64).UTC()
		link.LastClickedAt = &t
	}
	return &link, nil
}
