// internal/domain/catalog/client.go
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/your-org/shopmart/internal/config"
)

// Fetcher retrieves the product list from the catalog source
type Fetcher interface {
	FetchProducts(ctx context.Context) ([]Product, error)
}

// Client fetches products from a DummyJSON-style listing endpoint
type Client struct {
	baseURL    string
	limit      int
	httpClient *http.Client
}

// NewClient creates a catalog client from configuration
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.Catalog.URL,
		limit:   cfg.Catalog.Limit,
		httpClient: &http.Client{
			Timeout: cfg.Catalog.Timeout,
		},
	}
}

// FetchProducts performs the single catalog GET. No retries are attempted.
func (c *Client) FetchProducts(ctx context.Context) ([]Product, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog URL: %w", err)
	}
	if c.limit > 0 {
		q := endpoint.Query()
		q.Set("limit", strconv.Itoa(c.limit))
		endpoint.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog returned status %d after %s", resp.StatusCode, time.Since(start).Round(time.Millisecond))
	}

	var listing ListResponse
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	return listing.Products, nil
}
