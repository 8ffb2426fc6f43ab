// Package remote implements progress.Remote over the user-items HTTP API.
package remote

import (
	"context"

	"grail-tracker/core/api"
	"grail-tracker/feature/progress"

	"github.com/gofiber/fiber/v2"
)

// ListResponse is the body of GET /user-items.
type ListResponse struct {
	Items []progress.RemoteItem `json:"items"`
}

// SetRequest is the body of POST /user-items/set.
type SetRequest struct {
	ItemKey string `json:"itemKey"`
	Found   bool   `json:"found"`
}

// BulkRequest is the body of POST /user-items/set-bulk.
type BulkRequest struct {
	Items []progress.BulkItem `json:"items"`
}

// Client talks to the user-items endpoints for the user configured on the api client.
type Client struct {
	api *api.Client
}

var _ progress.Remote = (*Client)(nil)

// NewClient creates a remote backed by the HTTP API.
func NewClient(c *api.Client) *Client {
	return &Client{api: c}
}

func (c *Client) ListItems(ctx context.Context) ([]progress.RemoteItem, error) {
	var resp ListResponse
	if err := c.api.Do(ctx, fiber.MethodGet, "/user-items", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *Client) SetFound(ctx context.Context, itemKey string, found bool) error {
	return c.api.Do(ctx, fiber.MethodPost, "/user-items/set", nil, SetRequest{ItemKey: itemKey, Found: found}, nil)
}

func (c *Client) SetBulk(ctx context.Context, items []progress.BulkItem) error {
	return c.api.Do(ctx, fiber.MethodPost, "/user-items/set-bulk", nil, BulkRequest{Items: items}, nil)
}

func (c *Client) Clear(ctx context.Context) error {
	return c.api.Do(ctx, fiber.MethodDelete, "/user-items/clear", nil, nil, nil)
}
