package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"tinylink/internal/domain"
	"tinylink/internal/service"
	"tinylink/internal/validation"
)

// Machine-readable error codes carried in every error body.
const (
	CodeInvalidURL       = "INVALID_URL"
	CodeInvalidCode      = "INVALID_CODE"
	CodeCodeExists       = "CODE_EXISTS"
	CodeGenerationFailed = "GENERATION_FAILED"
	CodeNotFound         = "NOT_FOUND"
	CodeInternalError    = "INTERNAL_ERROR"
)

var (
	// errInvalidBody covers malformed JSON and unsupported content types.
	// Clients only know the INVALID_URL family for a bad create payload.
	errInvalidBody      = domain.ErrorResponse{Error: "Invalid request body", Code: CodeInvalidURL}
	errURLRequired      = domain.ErrorResponse{Error: "Original URL is required", Code: CodeInvalidURL}
	errInvalidURL       = domain.ErrorResponse{Error: "Invalid URL format", Code: CodeInvalidURL}
	errUnsafeURL        = domain.ErrorResponse{Error: "URL protocol not allowed", Code: CodeInvalidURL}
	errURLTooLong       = domain.ErrorResponse{Error: "URL exceeds maximum length", Code: CodeInvalidURL}
	errInvalidCode      = domain.ErrorResponse{Error: "Code must be 6-8 alphanumeric characters", Code: CodeInvalidCode}
	errCodeExists       = domain.ErrorResponse{Error: "Code already exists", Code: CodeCodeExists}
	errGenerationFailed = domain.ErrorResponse{Error: "Could not generate unique code", Code: CodeGenerationFailed}
	errLinkNotFound     = domain.ErrorResponse{Error: "Link not found", Code: CodeNotFound}
	errInternal         = domain.ErrorResponse{Error: "Internal server error", Code: CodeInternalError}
)

const (
	databaseConnected    = "connected"
	databaseDisconnected = "disconnected"
	deletedMessage       = "Link deleted successfully"
)

type Handler struct {
	links     LinkService
	health    HealthChecker
	logger    *slog.Logger
	version   string
	startedAt time.Time
}

func New(
	links LinkService,
	health HealthChecker,
	logger *slog.Logger,
	version string,
) *Handler {
	return &Handler{
		links:     links,
		health:    health,
		logger:    logger,
		version:   version,
		startedAt: time.Now(),
	}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Health)

	api := e.Group("/api/links")
	api.POST("", h.CreateLink)
	api.GET("", h.ListLinks)
	api.GET("/:code", h.GetLink)
	api.DELETE("/:code", h.DeleteLink)

	// Catch-all redirect goes last so it never shadows the routes above.
	e.GET("/:code", h.Redirect)
}

func (h *Handler) Health(c echo.Context) error {
	database := databaseConnected
	if err := h.health.Ping(c.Request().Context()); err != nil {
		h.logger.Warn("database ping failed", slog.String("error", err.Error()))
		database = databaseDisconnected
	}

	now := time.Now()
	return c.JSON(http.StatusOK, domain.HealthResponse{
		OK:        true,
		Version:   h.version,
		Timestamp: now.UTC(),
		Database:  database,
		Uptime:    int64(now.Sub(h.startedAt).Seconds()),
	})
}

func (h *Handler) CreateLink(c echo.Context) error {
	var req domain.CreateLinkRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Debug("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	resp, err := h.links.CreateLink(c.Request().Context(), req)
	if err != nil {
		return h.handleServiceError(c, err, "failed to create link")
	}

	return c.JSON(http.StatusCreated, resp)
}

func (h *Handler) ListLinks(c echo.Context) error {
	resp, err := h.links.ListLinks(c.Request().Context(), parseListParams(c))
	if err != nil {
		return h.handleServiceError(c, err, "failed to list links")
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetLink(c echo.Context) error {
	resp, err := h.links.GetLink(c.Request().Context(), c.Param("code"))
	if err != nil {
		return h.handleServiceError(c, err, "failed to get link")
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeleteLink(c echo.Context) error {
	code, err := h.links.DeleteLink(c.Request().Context(), c.Param("code"))
	if err != nil {
		return h.handleServiceError(c, err, "failed to delete link")
	}

	return c.JSON(http.StatusOK, domain.DeleteLinkResponse{Message: deletedMessage, Code: code})
}

// Redirect answers 404 for every failure, storage faults included, so
// callers cannot tell a broken store from an unknown code.
func (h *Handler) Redirect(c echo.Context) error {
	code := c.Param("code")

	target, err := h.links.ResolveLink(c.Request().Context(), code)
	if err != nil {
		if !errors.Is(err, service.ErrLinkNotFound) {
			h.logger.Error("failed to resolve link",
				slog.String("code", code),
				slog.String("error", err.Error()),
			)
		}
		return c.JSON(http.StatusNotFound, errLinkNotFound)
	}

	return c.Redirect(http.StatusFound, target)
}

// parseListParams reads limit, offset and sort. Malformed numbers are left
// at zero so the service substitutes its defaults.
func parseListParams(c echo.Context) domain.ListParams {
	var p domain.ListParams
	_ = echo.QueryParamsBinder(c).
		FailFast(false).
		Int("limit", &p.Limit).
		Int("offset", &p.Offset).
		BindError()
	p.Order = domain.ParseLinkOrder(c.QueryParam("sort"))
	return p
}

func (h *Handler) handleServiceError(c echo.Context, err error, msg string) error {
	switch {
	case validation.IsURLError(err):
		return c.JSON(http.StatusBadRequest, urlErrorResponse(err))
	case errors.Is(err, validation.ErrInvalidCode):
		return c.JSON(http.StatusBadRequest, errInvalidCode)
	case errors.Is(err, service.ErrCodeExists):
		return c.JSON(http.StatusConflict, errCodeExists)
	case errors.Is(err, service.ErrLinkNotFound):
		return c.JSON(http.StatusNotFound, errLinkNotFound)
	case errors.Is(err, service.ErrGenerationFailed):
		h.logger.Error(msg, slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errGenerationFailed)
	default:
		h.logger.Error(msg, slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errInternal)
	}
}

func urlErrorResponse(err error) domain.ErrorResponse {
	switch {
	case errors.Is(err, validation.ErrEmptyURL):
		return errURLRequired
	case errors.Is(err, validation.ErrUnsafeProtocol):
		return errUnsafeURL
	case errors.Is(err, validation.ErrURLTooLong):
		return errURLTooLong
	default:
		return errInvalidURL
	}
}
