// Package api implements the HTTP client for the remote storefront backend.
// Every request carries the bearer credential when one is held, runs under a
// per-call timeout, and passes through a circuit breaker. Every response is
// inspected for a 401 status, which fires the registered unauthorized hook
// regardless of which endpoint produced it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/Yui-Mika/Clothing-website/internal/domain"
)

// Envelope is the response wrapper shared by every backend endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type httpResult struct {
	status int
	body   []byte
}

// Client talks to the remote API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *log.Logger
	timeout time.Duration
	breaker *gobreaker.CircuitBreaker[httpResult]

	mu             sync.RWMutex
	token          string
	onUnauthorized func()
}

// New creates a Client for the given base URL. The timeout applies to each
// individual call, not the client's lifetime.
func New(baseURL string, timeout time.Duration, logger *log.Logger) *Client {
	breaker := gobreaker.NewCircuitBreaker[httpResult](gobreaker.Settings{
		Name:    "storefront-api",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		logger:  logger,
		timeout: timeout,
		breaker: breaker,
	}
}

// SetToken stores the bearer credential attached to subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ClearToken drops the held credential.
func (c *Client) ClearToken() {
	c.SetToken("")
}

// Token returns the currently held credential, empty when anonymous.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetUnauthorizedHandler registers the hook invoked whenever any endpoint
// answers 401. The session store uses it for forced teardown.
func (c *Client) SetUnauthorizedHandler(fn func()) {
	c.mu.Lock()
	c.onUnauthorized = fn
	c.mu.Unlock()
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.call(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	return c.call(ctx, http.MethodPost, path, payload, out)
}

func (c *Client) call(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.breaker.Execute(func() (httpResult, error) {
		return c.do(req)
	})
	if err != nil {
		c.logger.Printf("%s %s: %v", method, path, err)
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return &domain.RemoteError{Message: "service temporarily unavailable"}
		}
		return err
	}

	if res.status == http.StatusUnauthorized {
		c.fireUnauthorized()
		return domain.ErrSessionExpired
	}
	if res.status < 200 || res.status >= 300 {
		return &domain.RemoteError{Status: res.status, Message: messageFromBody(res.body)}
	}
	if out != nil && len(res.body) > 0 {
		if err := json.Unmarshal(res.body, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// do performs the request. Only transport failures and 5xx responses are
// reported as errors so that client-side 4xx outcomes never trip the breaker.
func (c *Client) do(req *http.Request) (httpResult, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return httpResult{}, &domain.RemoteError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return httpResult{}, &domain.RemoteError{Message: err.Error()}
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return httpResult{}, &domain.RemoteError{Status: resp.StatusCode, Message: messageFromBody(body)}
	}
	return httpResult{status: resp.StatusCode, body: body}, nil
}

func (c *Client) fireUnauthorized() {
	c.mu.RLock()
	fn := c.onUnauthorized
	c.mu.RUnlock()
	if fn != nil {
		fn()
	}
}

func messageFromBody(body []byte) string {
	var env Envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		return env.Message
	}
	return ""
}

func remoteErr(env Envelope) error {
	return &domain.RemoteError{Message: env.Message}
}
