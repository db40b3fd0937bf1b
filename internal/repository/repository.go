package repository

import (
	"errors"
	"time"

	"tinylink/internal/domain"
)

var (
	ErrNotFound = errors.New("link not found")
	// ErrConflict is returned by Insert when the code is already taken,
	// including when a concurrent insert won the race.
	ErrConflict = errors.New("code already exists")
)

const linkColumns = "id, code, original_url, click_count, last_clicked_at, created_at, updated_at"

// orderClauses is the only source of ORDER BY text; callers never pass SQL.
var orderClauses = map[domain.LinkOrder]string{
	domain.OrderRecent:  "created_at DESC, id DESC",
	domain.OrderPopular: "click_count DESC, created_at DESC, id DESC",
}

func orderClause(order domain.LinkOrder) string {
	if clause, ok := orderClauses[order]; ok {
		return clause
	}
	return orderClauses[domain.OrderRecent]
}

type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the time source used for created/updated/clicked stamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func applyOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
