package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FleetAPI defines the subset of the device-management API used by the
// fleet listing commands.
type FleetAPI interface {
	WhoAmI(ctx context.Context) (*User, error)
	ListFleets(ctx context.Context) ([]RawFleet, error)
	BaseURL() string
}

// ErrUnauthorized is wrapped by StatusError when the API rejects the session token.
var ErrUnauthorized = errors.New("unauthorized")

// StatusError is returned for any non-2xx API response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// Unwrap lets errors.Is(err, ErrUnauthorized) match 401 responses.
func (e *StatusError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// ClientConfig holds configuration for DefaultClient.
type ClientConfig struct {
	BaseURL        string
	Token          string
	RequestTimeout time.Duration
	// Logger receives per-request debug entries. Nil disables logging.
	Logger *zap.Logger
}

// DefaultClient implements FleetAPI using the standard net/http package.
type DefaultClient struct {
	http   *http.Client
	config ClientConfig
	log    *zap.Logger
}

// NewDefaultClient constructs a DefaultClient from the given config.
// Returns an error if BaseURL or Token is empty.
func NewDefaultClient(cfg ClientConfig) (*DefaultClient, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("BaseURL is required")
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("Token is required")
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &DefaultClient{
		http: &http.Client{
			Timeout:   cfg.RequestTimeout,
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
		},
		config: cfg,
		log:    log,
	}, nil
}

// BaseURL returns the configured API base URL.
func (c *DefaultClient) BaseURL() string {
	return c.config.BaseURL
}

// doGet performs an authenticated GET request to path (relative to BaseURL,
// query string included). Each request carries a fresh X-Request-Id.
// Returns the response body bytes or a *StatusError on non-2xx status.
func (c *DefaultClient) doGet(ctx context.Context, path string) ([]byte, error) {
	url := strings.TrimRight(c.config.BaseURL, "/") + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.Token)
	req.Header.Set("X-Request-Id", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("request failed",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	c.log.Debug("request completed",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	const maxResponseBytes = 32 * 1024 * 1024
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(body) > maxResponseBytes {
		return nil, fmt.Errorf("response body exceeds %d MB limit", maxResponseBytes/(1024*1024))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: truncate(body, 200)}
	}

	return body, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
