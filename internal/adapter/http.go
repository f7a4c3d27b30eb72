package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/forknroll/go-boilerplate-base/internal/logger"
	"github.com/forknroll/go-boilerplate-base/models"
	"github.com/go-resty/resty/v2"
)

// DefaultTimeout bounds every request when no timeout is configured.
const DefaultTimeout = 15 * time.Second

type httpServerAdapter struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter].
// address may omit the scheme, "localhost:8080" is read as
// "http://localhost:8080". A non-positive timeout selects [DefaultTimeout].
//
// Returns [ErrInvalidAddress] if address is empty or cannot be parsed.
func NewHTTPServerAdapter(address string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) PublicEnv(ctx context.Context) (models.EnvResponse, error) {
	var out models.EnvResponse
	if err := h.get(ctx, "/api/env", &out); err != nil {
		return models.EnvResponse{}, err
	}
	return out, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var out models.VersionResponse
	if err := h.get(ctx, "/api/version", &out); err != nil {
		return models.VersionResponse{}, err
	}
	return out, nil
}

func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var out models.HealthResponse
	if err := h.get(ctx, "/healthz", &out); err != nil {
		return models.HealthResponse{}, err
	}
	return out, nil
}

func (h *httpServerAdapter) get(ctx context.Context, path string, out any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(out).
		Get(path)
	if err != nil {
		return fmt.Errorf("GET %s request: %w", path, err)
	}

	h.logger.Debug().
		Str("path", path).
		Int("status", resp.StatusCode()).
		Str("trace_id", resp.Header().Get("X-Trace-ID")).
		Msg("server responded")

	return mapHTTPError(resp)
}
