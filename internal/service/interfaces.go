package service

//go:generate go tool mockery

import (
	"context"

	"tinylink/internal/domain"
)

type Repository interface {
	FindByCode(ctx context.Context, code string) (*domain.Link, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Insert(ctx context.Context, code, originalURL string) (*domain.Link, error)
	DeleteByCode(ctx context.Context, code string) (bool, error)
	Count(ctx context.Context) (int64, error)
	ListPage(ctx context.Context, limit, offset int, order domain.LinkOrder) ([]domain.Link, error)
	IncrementClickAndFetchTarget(ctx context.Context, code string) (string, error)
}

type Cache interface {
	Get(code string) (string, bool)
	Set(code, originalURL string)
	Delete(code string)
}

type CodeGenerator interface {
	Generate() string
}

type Validator interface {
	ValidateTargetURL(rawURL string) error
	ValidateCode(code string) error
}

type BusinessRecorder interface {
	RecordBusiness(name string, value float64, labels map[string]string)
}
