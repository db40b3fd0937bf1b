package handler

//go:generate go tool mockery

import (
	"context"

	"tinylink/internal/domain"
)

type LinkService interface {
	CreateLink(ctx context.Context, req domain.CreateLinkRequest) (*domain.LinkResponse, error)
	GetLink(ctx context.Context, code string) (*domain.LinkResponse, error)
	ListLinks(ctx context.Context, params domain.ListParams) (*domain.ListLinksResponse, error)
	DeleteLink(ctx context.Context, code string) (string, error)
	ResolveLink(ctx context.Context, code string) (string, error)
}

type HealthChecker interface {
	Ping(ctx context.Context) error
}
