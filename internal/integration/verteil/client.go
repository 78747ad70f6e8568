package verteil

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// maxResponseBytes bounds how much of a backend reply is buffered
const maxResponseBytes = 32 << 20

// Response is the backend reply, status and body untouched
type Response struct {
	StatusCode int
	Body       []byte
}

// Client forwards JSON payloads to the flight backend
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *zap.Logger
}

func NewClient(baseURL, apiKey string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log.With(zap.String("client", "verteil")),
	}
}

// Post sends body verbatim to baseURL+path. Non-2xx statuses are not errors.
func (c *Client) Post(ctx context.Context, path string, body []byte) (*Response, error) {
	if c.baseURL == "" {
		return nil, ErrNotConfigured
	}

	endpoint := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrInternal, err)
	}

	c.log.Info("Backend call completed",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(payload)),
		zap.Duration("duration", time.Since(start)),
	)

	return &Response{StatusCode: resp.StatusCode, Body: payload}, nil
}
