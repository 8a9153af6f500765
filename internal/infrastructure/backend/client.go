// Package backend is the HTTP client for the upstream healthcare REST API.
// One Client carries the connection settings; thin per-resource accessors
// implement the ports interfaces on top of it.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/medisync/healthcare-portal/internal/api/metrics"
	"github.com/medisync/healthcare-portal/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// Client is shared by all resource accessors.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// New builds a Client. The timeout bounds every request end-to-end; a
// backend that never responds fails the call instead of hanging the page.
func New(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// StatusError is a non-2xx backend reply that carried no mappable domain
// meaning.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.Code)
}

// Ping reports whether the backend is reachable at all. Any HTTP response
// counts; only transport failures are errors.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend ping: %w", err)
	}
	_ = resp.Body.Close()
	return nil
}

// roundTrip performs the request and returns the raw status and body.
// Request durations are observed per method regardless of outcome.
func (c *Client) roundTrip(ctx context.Context, method, path string, in any) (int, []byte, error) {
	var payload io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return 0, nil, fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.BackendRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		c.logger.Error().Err(err).Str("method", method).Str("path", path).Msg("backend request failed")
		return 0, nil, fmt.Errorf("backend request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, body, nil
}

// call performs the request and decodes a 2xx JSON body into out. Known
// statuses map to domain errors.
func (c *Client) call(ctx context.Context, method, path string, in, out any) error {
	status, body, err := c.roundTrip(ctx, method, path, in)
	if err != nil {
		return err
	}

	switch {
	case status == http.StatusNotFound:
		return domain.ErrNotFound
	case status < 200 || status > 299:
		return &StatusError{Code: status, Message: errorMessage(body)}
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.call(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	return c.call(ctx, http.MethodPost, path, in, out)
}

func (c *Client) put(ctx context.Context, path string, in, out any) error {
	return c.call(ctx, http.MethodPut, path, in, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.call(ctx, http.MethodDelete, path, nil, nil)
}

// errorMessage digs a human-readable message out of an error body.
func errorMessage(body []byte) string {
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	if envelope.Message != "" {
		return envelope.Message
	}
	return envelope.Error
}
