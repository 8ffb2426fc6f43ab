package catalog

import (
	"context"
	"net/url"

	"grail-tracker/core/api"
	"grail-tracker/feature/catalog/models"

	"github.com/gofiber/fiber/v2"
)

// ItemsResponse is the body of GET /items.
type ItemsResponse struct {
	Items *models.Catalog `json:"items"`
}

// Fetcher loads the catalog from a running server.
type Fetcher struct {
	client *api.Client
}

// NewFetcher creates an HTTP catalog source.
func NewFetcher(client *api.Client) *Fetcher {
	return &Fetcher{client: client}
}

// Load calls GET /items with one types parameter per requested section.
func (f *Fetcher) Load(ctx context.Context, types ...models.Type) (*models.Catalog, error) {
	query := url.Values{}
	for _, t := range types {
		query.Add("types", string(t))
	}

	var resp ItemsResponse
	if err := f.client.Do(ctx, fiber.MethodGet, "/items", query, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Items == nil {
		return &models.Catalog{}, nil
	}
	return resp.Items, nil
}
