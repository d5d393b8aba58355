package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"taskdesk/internal/adapter/http/middleware"
	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/ports"
	"taskdesk/pkg/apierrors"
)

const defaultTimeout = 10 * time.Second

// ErrorInterceptor is called with the status and message of every failed
// response before the error is returned.
type ErrorInterceptor func(status int, message string)

type Config struct {
	BaseURL  string
	Timeout  time.Duration
	Language string
	Tokens   ports.TokenStore
	Logger   *zap.Logger
	// Transport is the innermost round tripper, http.DefaultTransport if nil.
	Transport http.RoundTripper
}

// Client talks JSON to the board API.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	tokens       ports.TokenStore
	interceptors []ErrorInterceptor
}

func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, domain.ErrEmptyBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.L()
	}

	transport := middleware.RequestID(
		middleware.Language(cfg.Language,
			middleware.ZapLogging(logger, cfg.Transport),
		),
	)

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		tokens: cfg.Tokens,
	}, nil
}

func (c *Client) AddInterceptor(interceptor ErrorInterceptor) *Client {
	c.interceptors = append(c.interceptors, interceptor)
	return c
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	// Without the leading slash the base URL and path would run together.
	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("%w: %q", domain.ErrInvalidPath, path)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		jsonErr := apierrors.FromResponse(resp.StatusCode, raw)
		for _, interceptor := range c.interceptors {
			interceptor(jsonErr.ErrDetails.Code, jsonErr.ErrDetails.Message)
		}
		return jsonErr
	}

	// Only 200 and 201 carry a body.
	if resp.StatusCode > http.StatusCreated || out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) token() string {
	if c.tokens == nil {
		return ""
	}
	token, err := c.tokens.Token()
	if err != nil {
		zap.L().Warn("failed to read session token", zap.Error(err))
		return ""
	}
	return token
}
