package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-appenv/env"
	"github.com/MKhiriev/go-appenv/internal/logger"
	"github.com/MKhiriev/go-appenv/internal/utils"
	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 15 * time.Second

// Config configures [NewHTTPServerAdapter].
type Config struct {
	// BaseURL of the server. A missing scheme defaults to http.
	BaseURL string
	// Timeout per request. Zero selects 15s.
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. Returns an error if cfg.BaseURL is empty or cannot be
// parsed as a URL with a host.
func NewHTTPServerAdapter(cfg Config, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

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

// request starts a request carrying the trace id of ctx, if any, so both
// sides log the same id.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader("X-Trace-ID", traceID)
	}
	return req
}

func (h *httpServerAdapter) PublicEnv(ctx context.Context) (env.Mapping, error) {
	var vars map[string]string

	resp, err := h.request(ctx).
		SetResult(&vars).
		Get("/api/env/public")
	if err != nil {
		return env.Mapping{}, fmt.Errorf("public env request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return env.Mapping{}, err
	}

	h.logger.Debug().Int("variables", len(vars)).Msg("public env fetched")
	return env.NewMapping(vars), nil
}

type envVariableResponse struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (h *httpServerAdapter) PublicEnvVariable(ctx context.Context, name string) (string, error) {
	var variable envVariableResponse

	resp, err := h.request(ctx).
		SetPathParam("name", name).
		SetResult(&variable).
		Get("/api/env/public/{name}")
	if err != nil {
		return "", fmt.Errorf("public env variable request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return variable.Value, nil
}

type mergeClassNamesRequest struct {
	Classes []any `json:"classes"`
}

type mergeClassNamesResponse struct {
	Class string `json:"class"`
}

func (h *httpServerAdapter) MergeClassNames(ctx context.Context, classes ...any) (string, error) {
	if classes == nil {
		classes = []any{}
	}

	var merged mergeClassNamesResponse

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(mergeClassNamesRequest{Classes: classes}).
		SetResult(&merged).
		Post("/api/classnames")
	if err != nil {
		return "", fmt.Errorf("merge class names request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return merged.Class, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
