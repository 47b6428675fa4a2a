package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lucamancino/spese/internal/catalog"
)

const defaultCurrency = "EUR"

// Client fetches single products from the upstream catalog's per-SKU
// endpoint. Timeout policy lives in the embedded http.Client; failed calls
// are reported once and never retried.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// payload is the strict shape of the upstream response. Price is in minor
// currency units; a missing amount marks the payload malformed.
type payload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       struct {
		Amount *int64 `json:"amount"`
	} `json:"price"`
	Categories []struct {
		Name string `json:"name"`
	} `json:"categories"`
	Assets []struct {
		URL string `json:"url"`
	} `json:"assets"`
	SKU string `json:"sku"`
}

func (c *Client) FetchProduct(ctx context.Context, sku string) (*catalog.Product, error) {
	endpoint := c.baseURL + "/" + url.PathEscape(sku)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching product %s: %w", sku, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d for sku %s", resp.StatusCode, sku)
	}

	var p payload
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("decoding product %s: %w", sku, err)
	}

	return mapProduct(sku, &p)
}

// mapProduct reshapes the upstream payload into the local product type.
func mapProduct(sku string, p *payload) (*catalog.Product, error) {
	if p.Name == "" || p.Price.Amount == nil {
		return nil, fmt.Errorf("malformed payload for sku %s", sku)
	}

	names := make([]string, 0, len(p.Categories))

	for _, c := range p.Categories {
		if c.Name != "" {
			names = append(names, c.Name)
		}
	}

	var image string
	if len(p.Assets) > 0 {
		image = catalog.RenderImageURL(p.Assets[0].URL)
	}

	if sku == "" {
		sku = p.SKU
	}

	return &catalog.Product{
		Name:        p.Name,
		Price:       decimal.New(*p.Price.Amount, -2),
		Category:    strings.Join(names, catalog.CategoryDelimiter),
		Image:       image,
		SKU:         sku,
		Description: p.Description,
		Currency:    defaultCurrency,
		Source:      "live",
	}, nil
}
