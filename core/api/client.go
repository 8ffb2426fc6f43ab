package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	// HeaderAPIKey carries the shared API key.
	HeaderAPIKey = "X-API-Key"
	// HeaderUserID names the user whose progress a request touches.
	HeaderUserID = "X-User-ID"
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Code, e.Body)
}

// Client issues JSON requests against the grail-tracker API.
type Client struct {
	cfg Config
}

// NewClient creates a client for the configured server.
func NewClient(cfg Config) *Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{cfg: cfg}
}

// UserID returns the user this client acts for.
func (c *Client) UserID() string {
	return c.cfg.UserID
}

// Do sends a request with an optional JSON body and decodes a JSON response into out.
// out may be nil when the response body is irrelevant.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target := c.cfg.BaseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	a := fiber.AcquireAgent()
	req := a.Request()
	req.Header.SetMethod(method)
	req.SetRequestURI(target)
	if c.cfg.ApiKey != "" {
		a.Set(HeaderAPIKey, c.cfg.ApiKey)
	}
	if c.cfg.UserID != "" {
		a.Set(HeaderUserID, c.cfg.UserID)
	}
	if body != nil {
		a.JSON(body)
	}
	if c.cfg.TimeoutSeconds > 0 {
		a.Timeout(time.Duration(c.cfg.TimeoutSeconds) * time.Second)
	}

	if err := a.Parse(); err != nil {
		fiber.ReleaseAgent(a)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	code, respBody, errs := a.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("%s %s: %w", method, path, errors.Join(errs...))
	}
	if code < 200 || code >= 300 {
		return &StatusError{Method: method, Path: path, Code: code, Body: string(respBody)}
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}
