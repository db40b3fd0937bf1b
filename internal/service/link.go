package service

import (
	"context"
	"errors"
	"fmt"

	"tinylink/internal/domain"
	"tinylink/internal/formatter"
	"tinylink/internal/repository"
	"tinylink/internal/validation"
)

var (
	ErrLinkNotFound     = errors.New("link not found")
	ErrCodeExists       = errors.New("code already exists")
	ErrGenerationFailed = errors.New("failed to generate a unique code")
)

const (
	maxGenerateAttempts = 10

	DefaultListLimit = 50
	MaxListLimit     = 100
)

// Business metric names. None of them carry per-visitor data.
const (
	MetricLinksCreated   = "links_created"
	MetricCodeCollisions = "code_collisions"
	MetricRedirects      = "redirects"
	MetricRedirectMisses = "redirect_misses"
	MetricLinksDeleted   = "links_deleted"
)

type LinkService struct {
	repo      Repository
	cache     Cache
	codes     CodeGenerator
	validator Validator
	formatter *formatter.Formatter
	recorder  BusinessRecorder
}

func NewLinkService(
	repo Repository,
	cache Cache,
	codes CodeGenerator,
	validator Validator,
	formatter *formatter.Formatter,
	recorder BusinessRecorder,
) *LinkService {
	return &LinkService{
		repo:      repo,
		cache:     cache,
		codes:     codes,
		validator: validator,
		formatter: formatter,
		recorder:  recorder,
	}
}

// CreateLink stores a new link under req.CustomCode, or under a generated
// code when none is given. The existence pre-check only saves a round trip;
// the conditional insert is what actually guarantees uniqueness.
func (s *LinkService) CreateLink(ctx context.Context, req domain.CreateLinkRequest) (*domain.LinkResponse, error) {
	if err := s.validator.ValidateTargetURL(req.OriginalURL); err != nil {
		return nil, err
	}

	var (
		link   *domain.Link
		source string
		err    error
	)
	if req.CustomCode != "" {
		if err := s.validator.ValidateCode(req.CustomCode); err != nil {
			return nil, err
		}
		source = "custom"
		link, err = s.createWithCustomCode(ctx, req.CustomCode, req.OriginalURL)
	} else {
		source = "generated"
		link, err = s.createWithGeneratedCode(ctx, req.OriginalURL)
	}
	if err != nil {
		return nil, err
	}

	s.cache.Set(link.Code, link.OriginalURL)
	s.record(MetricLinksCreated, 1, map[string]string{"source": source})

	resp := s.formatter.Link(link)
	return &resp, nil
}

// createWithCustomCode asks storage directly. The cache is per process and
// may still hold a code that another instance, or a racing delete, has freed.
func (s *LinkService) createWithCustomCode(ctx context.Context, code, originalURL string) (*domain.Link, error) {
	exists, err := s.repo.ExistsByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to check code: %w", err)
	}
	if exists {
		return nil, ErrCodeExists
	}

	link, err := s.repo.Insert(ctx, code, originalURL)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrCodeExists
		}
		return nil, fmt.Errorf("failed to create link: %w", err)
	}
	return link, nil
}

// createWithGeneratedCode draws at most maxGenerateAttempts codes. A draw that
// is already taken, or loses an insert race, costs one attempt.
func (s *LinkService) createWithGeneratedCode(ctx context.Context, originalURL string) (*domain.Link, error) {
	for range maxGenerateAttempts {
		code := s.codes.Generate()

		taken, err := s.codeTaken(ctx, code)
		if err != nil {
			return nil, err
		}
		if taken {
			s.record(MetricCodeCollisions, 1, nil)
			continue
		}

		link, err := s.repo.Insert(ctx, code, originalURL)
		if errors.Is(err, repository.ErrConflict) {
			s.record(MetricCodeCollisions, 1, nil)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create link: %w", err)
		}
		return link, nil
	}
	return nil, ErrGenerationFailed
}

// codeTaken is a hint for generated draws only. A stale cache hit just costs
// one extra draw.
func (s *LinkService) codeTaken(ctx context.Context, code string) (bool, error) {
	if _, ok := s.cache.Get(code); ok {
		return true, nil
	}
	exists, err := s.repo.ExistsByCode(ctx, code)
	if err != nil {
		return false, fmt.Errorf("failed to check code: %w", err)
	}
	return exists, nil
}

func (s *LinkService) GetLink(ctx context.Context, code string) (*domain.LinkResponse, error) {
	if !validation.ValidateCodeFormat(code) {
		return nil, ErrLinkNotFound
	}

	link, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, fmt.Errorf("failed to get link: %w", err)
	}
	s.cache.Set(link.Code, link.OriginalURL)

	resp := s.formatter.Link(link)
	return &resp, nil
}

// NormalizeListParams applies the paging defaults and bounds.
func NormalizeListParams(p domain.ListParams) domain.ListParams {
	if p.Limit <= 0 {
		p.Limit = DefaultListLimit
	}
	p.Limit = min(p.Limit, MaxListLimit)
	p.Offset = max(p.Offset, 0)
	return p
}

func (s *LinkService) ListLinks(ctx context.Context, params domain.ListParams) (*domain.ListLinksResponse, error) {
	params = NormalizeListParams(params)

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count links: %w", err)
	}

	links, err := s.repo.ListPage(ctx, params.Limit, params.Offset, params.Order)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}

	return &domain.ListLinksResponse{
		Links:  s.formatter.Links(links),
		Total:  total,
		Limit:  params.Limit,
		Offset: params.Offset,
	}, nil
}

// DeleteLink removes the link and returns its code as confirmation.
func (s *LinkService) DeleteLink(ctx context.Context, code string) (string, error) {
	if !validation.ValidateCodeFormat(code) {
		return "", ErrLinkNotFound
	}

	deleted, err := s.repo.DeleteByCode(ctx, code)
	if err != nil {
		return "", fmt.Errorf("failed to delete link: %w", err)
	}
	s.cache.Delete(code)
	if !deleted {
		return "", ErrLinkNotFound
	}

	s.record(MetricLinksDeleted, 1, nil)
	return code, nil
}

// ResolveLink counts a visit and returns the target in one storage call.
func (s *LinkService) ResolveLink(ctx context.Context, code string) (string, error) {
	if !validation.ValidateCodeFormat(code) {
		s.record(MetricRedirectMisses, 1, nil)
		return "", ErrLinkNotFound
	}

	target, err := s.repo.IncrementClickAndFetchTarget(ctx, code)
	if err != nil {
		s.record(MetricRedirectMisses, 1, nil)
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrLinkNotFound
		}
		return "", fmt.Errorf("failed to resolve link: %w", err)
	}

	s.record(MetricRedirects, 1, nil)
	return target, nil
}

func (s *LinkService) record(name string, value float64, labels map[string]string) {
	if s.recorder == nil {
		return
	}
	s.recorder.RecordBusiness(name, value, labels)
}
