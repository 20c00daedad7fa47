package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/freshmarket/storefront/pkg/config"
	"github.com/freshmarket/storefront/prometheus"
)

// Fallback messages used when the API reports an error without a message.
// The storefront is a Brazilian grocery; user-facing strings stay in
// Portuguese like the rest of the surface.
const (
	fallbackLayout  = "Erro ao carregar layout"
	fallbackProduct = "Erro ao carregar produto"
	fallbackItems   = "Erro ao carregar produtos"
	fallbackMenu    = "Erro ao carregar menu"
	fallbackSearch  = "Erro ao buscar produtos"
)

// Client issues read requests against the remote catalog service and
// normalizes its response envelope into typed results or typed errors. It
// holds no state beyond configuration; every byte of catalog data is owned
// by the remote API.
type Client struct {
	http             *http.Client
	baseURL          string
	subdomain        string
	pageSize         int
	maxCategoryPages int
}

// NewClient creates a catalog client from configuration
func NewClient(cfg *config.Config) *Client {
	return newClient(
		&http.Client{Timeout: cfg.Catalog.Timeout},
		cfg.Catalog.BaseURL,
		cfg.Catalog.Subdomain,
		cfg.Catalog.PageSize,
		cfg.Catalog.MaxCategoryPages,
	)
}

// newClient is the internal constructor used by tests to inject the
// http.Client and base URL.
func newClient(httpClient *http.Client, baseURL, subdomain string, pageSize, maxCategoryPages int) *Client {
	if pageSize <= 0 {
		pageSize = 30
	}
	if maxCategoryPages <= 0 {
		maxCategoryPages = 20
	}
	return &Client{
		http:             httpClient,
		baseURL:          baseURL,
		subdomain:        subdomain,
		pageSize:         pageSize,
		maxCategoryPages: maxCategoryPages,
	}
}

// envelope is the wire envelope shared by every catalog resource
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data"`
	Count   int             `json:"count,omitempty"`
}

// get fetches one resource and validates the status envelope
func (c *Client) get(ctx context.Context, resource string, params url.Values, fallback string) (*envelope, error) {
	defer prometheus.TrackCatalogRequest(resource)(time.Now())

	if params == nil {
		params = url.Values{}
	}
	params.Set("subdomain", c.subdomain)

	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, resource, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		prometheus.RecordCatalogRequest(resource, "transport_error")
		return nil, fmt.Errorf("failed to fetch %s: %w", resource, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		prometheus.RecordCatalogRequest(resource, "transport_error")
		return nil, fmt.Errorf("failed to fetch %s: status %d", resource, res.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		prometheus.RecordCatalogRequest(resource, "decode_error")
		return nil, fmt.Errorf("failed to decode %s response: %w", resource, err)
	}

	if env.Status == "error" {
		prometheus.RecordCatalogRequest(resource, "api_error")
		msg := env.Message
		if msg == "" {
			msg = fallback
		}
		return nil, &Error{Message: msg}
	}

	prometheus.RecordCatalogRequest(resource, "ok")
	return &env, nil
}

// Layout fetches the home layout: banners, promo items and collections
func (c *Client) Layout(ctx context.Context) (*Layout, error) {
	env, err := c.get(ctx, "layout", nil, fallbackLayout)
	if err != nil {
		return nil, err
	}

	var layout Layout
	if err := json.Unmarshal(env.Data, &layout); err != nil {
		return nil, fmt.Errorf("failed to decode layout: %w", err)
	}
	return &layout, nil
}

// Product fetches a single item by slug. An empty result set resolves to
// nil, nil: a missing product is not an error.
func (c *Client) Product(ctx context.Context, slug string) (*Item, error) {
	params := url.Values{}
	params.Set("slug", slug)

	env, err := c.get(ctx, "item", params, fallbackProduct)
	if err != nil {
		return nil, err
	}

	var items []Item
	if err := json.Unmarshal(env.Data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode product: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

// ItemsPage fetches one page of items, optionally narrowed by the filters
func (c *Client) ItemsPage(ctx context.Context, page, limit int, f Filters) (*Page, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("N", strconv.Itoa(limit))
	if f.CategoryID != "" {
		params.Set("category_id", f.CategoryID)
	}
	if f.Subcategory != "" {
		params.Set("subcategory_id", f.Subcategory)
	}
	if f.Sort != "" && f.Sort != SortRecents {
		params.Set("sort", f.Sort)
	}
	if f.MinPrice != nil {
		params.Set("min_price", strconv.FormatFloat(*f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice != nil {
		params.Set("max_price", strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64))
	}

	env, err := c.get(ctx, "item", params, fallbackItems)
	if err != nil {
		return nil, err
	}

	var items []Item
	if err := json.Unmarshal(env.Data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}
	return &Page{Products: items, Total: env.Count}, nil
}

// AllItemsForCategory pages through a whole category accumulating results.
// It stops at the server-reported total, at maxItems, or at the page-count
// ceiling, whichever comes first. Used only when local filtering needs the
// full category.
func (c *Client) AllItemsForCategory(ctx context.Context, categoryID string, maxItems int) (*Page, error) {
	var all []Item
	total := 0

	for page := 1; page <= c.maxCategoryPages; page++ {
		p, err := c.ItemsPage(ctx, page, c.pageSize, Filters{CategoryID: categoryID})
		if err != nil {
			return nil, err
		}
		all = append(all, p.Products...)
		total = p.Total

		if len(p.Products) == 0 || len(all) >= total || len(all) >= maxItems {
			break
		}
	}

	if len(all) > maxItems {
		all = all[:maxItems]
	}
	return &Page{Products: all, Total: total}, nil
}

// Menu fetches the category tree
func (c *Client) Menu(ctx context.Context) ([]MenuCategory, error) {
	env, err := c.get(ctx, "menu", nil, fallbackMenu)
	if err != nil {
		return nil, err
	}

	var menu []MenuCategory
	if err := json.Unmarshal(env.Data, &menu); err != nil {
		return nil, fmt.Errorf("failed to decode menu: %w", err)
	}
	return menu, nil
}

// SubcategoryName resolves a subcategory title by fetching one product known
// to belong to it and reading the matching entry of its subcategory list.
// Best effort: every failure degrades to an empty string, never an error.
func (c *Client) SubcategoryName(ctx context.Context, subcategoryID, sampleSlug string) string {
	item, err := c.Product(ctx, sampleSlug)
	if err != nil || item == nil {
		return ""
	}

	for _, sub := range item.Subcategories {
		if sub.ID == subcategoryID {
			return sub.Title
		}
	}
	if item.MainSubcategory != nil && item.MainSubcategory.ID == subcategoryID {
		return item.MainSubcategory.Title
	}
	return ""
}
