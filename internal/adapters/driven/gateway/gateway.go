package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/aidoc-cli/internal/core/domain"
	"github.com/custodia-labs/aidoc-cli/internal/core/ports/driven"
	"github.com/custodia-labs/aidoc-cli/internal/logger"
)

// Ensure Gateway implements the interface.
var _ driven.Gateway = (*Gateway)(nil)

const (
	// HeaderRequestID carries a per-request correlation ID.
	HeaderRequestID = "X-Request-ID"

	// authPrefix marks endpoints that never receive the bearer token.
	authPrefix = "/auth/"
)

// Config configures a Gateway.
type Config struct {
	// BaseURL is the backend root, e.g. http://127.0.0.1:8000.
	BaseURL string
	// Timeout bounds each request. Zero means no timeout.
	Timeout time.Duration
	// RateLimit is requests per second. Zero disables pacing.
	RateLimit int
	// Burst is the token bucket size. Defaults to 1 when pacing is enabled.
	Burst int
	// ClearOnUnauthorized drops the session when the backend answers 401.
	ClearOnUnauthorized bool
	// UserAgent is sent on every request when set.
	UserAgent string
}

// Gateway is the HTTP implementation of driven.Gateway.
type Gateway struct {
	baseURL             *url.URL
	client              *http.Client
	tokens              driven.TokenProvider
	tokenSource         oauth2.TokenSource
	limiter             *rate.Limiter
	clearOnUnauthorized bool
	userAgent           string
}

// New creates a gateway. tokens supplies the session; it may be nil for a
// gateway that only talks to /auth/ endpoints.
func New(cfg Config, tokens driven.TokenProvider) (*Gateway, error) {
	base, err := url.Parse(strings.TrimSpace(cfg.BaseURL))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: server url %q", domain.ErrInvalidInput, cfg.BaseURL)
	}

	g := &Gateway{
		baseURL:             base,
		client:              &http.Client{Timeout: cfg.Timeout},
		tokens:              tokens,
		tokenSource:         NewTokenSource(tokens),
		clearOnUnauthorized: cfg.ClearOnUnauthorized,
		userAgent:           cfg.UserAgent,
	}
	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		g.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	return g, nil
}

// WithHTTPClient replaces the underlying HTTP client.
func (g *Gateway) WithHTTPClient(client *http.Client) *Gateway {
	g.client = client
	return g
}

// BaseURL returns the configured server URL.
func (g *Gateway) BaseURL() string {
	return g.baseURL.String()
}

// Do performs one request. Non-2xx answers become *domain.RejectedError;
// anything that prevents an answer becomes *domain.TransportError.
func (g *Gateway) Do(ctx context.Context, req driven.Request) (*driven.Response, error) {
	transportErr := func(err error) error {
		return &domain.TransportError{Method: req.Method, Path: req.Path, Err: err}
	}

	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return nil, transportErr(err)
		}
	}

	httpReq, err := g.newRequest(ctx, req)
	if err != nil {
		return nil, transportErr(err)
	}

	requestID := uuid.New().String()
	httpReq.Header.Set(HeaderRequestID, requestID)
	if !isAuthPath(req.Path) {
		if token, err := g.tokenSource.Token(); err == nil {
			token.SetAuthHeader(httpReq)
		}
	}

	start := time.Now()
	logger.Debug("-> %s %s [%s]", req.Method, req.Path, requestID)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		logger.Debug("<- %s %s failed after %s: %v [%s]", req.Method, req.Path, time.Since(start), err, requestID)
		return nil, transportErr(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportErr(fmt.Errorf("read body: %w", err))
	}
	logger.Debug("<- %d %s %s (%d bytes, %s) [%s]",
		resp.StatusCode, req.Method, req.Path, len(body), time.Since(start), requestID)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		rejected := &domain.RejectedError{
			Method:     req.Method,
			Path:       req.Path,
			StatusCode: resp.StatusCode,
			Detail:     errorDetail(body),
			Body:       body,
		}
		if resp.StatusCode == http.StatusUnauthorized {
			g.handleUnauthorized(req.Path)
		}
		return nil, rejected
	}

	return &driven.Response{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

func (g *Gateway) newRequest(ctx context.Context, req driven.Request) (*http.Request, error) {
	if req.JSON != nil && req.Form != nil {
		return nil, errors.New("request has both JSON and form bodies")
	}

	target := *g.baseURL
	target.Path = strings.TrimRight(g.baseURL.Path, "/") + "/" + strings.TrimLeft(req.Path, "/")

	var body io.Reader
	contentType := ""
	switch {
	case req.JSON != nil:
		data, err := json.Marshal(req.JSON)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	case req.Form != nil:
		body = strings.NewReader(req.Form.Encode())
		contentType = "application/x-www-form-urlencoded"
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if req.Kind == driven.ResponseJSON {
		httpReq.Header.Set("Accept", "application/json")
	} else {
		httpReq.Header.Set("Accept", "*/*")
	}
	if g.userAgent != "" {
		httpReq.Header.Set("User-Agent", g.userAgent)
	}
	return httpReq, nil
}

func (g *Gateway) handleUnauthorized(path string) {
	if !g.clearOnUnauthorized || isAuthPath(path) || g.tokens == nil {
		return
	}
	if _, ok := g.tokens.Current(); !ok {
		return
	}
	logger.Warn("Backend rejected the session token, clearing session")
	if err := g.tokens.Clear(); err != nil {
		logger.Error("clear session after 401: %v", err)
	}
}

func isAuthPath(path string) bool {
	return strings.HasPrefix("/"+strings.TrimLeft(path, "/"), authPrefix)
}

// errorDetail extracts a readable message from an error body. The backend
// sends {"detail": "..."} or, for validation failures,
// {"detail": [{"msg": "..."}, ...]}.
func errorDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(envelope.Detail, &text); err == nil {
		return text
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, item := range items {
			if item.Msg != "" {
				msgs = append(msgs, item.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}
