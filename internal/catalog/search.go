package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/freshmarket/storefront/prometheus"
)

// Searcher finds products for a free-text query. Two interchangeable
// strategies exist: the catalog's remote full-text endpoint and a local
// substring scan over layout data. They return different totals for the
// same query; which one the system uses is configuration, not an accident
// (see DESIGN.md).
type Searcher interface {
	Search(ctx context.Context, query string, page, limit int) (*Page, error)
}

// NewSearcher picks the search strategy by name. Anything other than
// "local" selects the remote endpoint.
func NewSearcher(strategy string, client *Client) Searcher {
	if strategy == "local" {
		return &LocalSearcher{client: client}
	}
	return &RemoteSearcher{client: client}
}

// RemoteSearcher queries the catalog's full-text search endpoint
type RemoteSearcher struct {
	client *Client
}

func (s *RemoteSearcher) Search(ctx context.Context, query string, page, limit int) (*Page, error) {
	prometheus.RecordSearch("remote")

	params := url.Values{}
	params.Set("search", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("N", strconv.Itoa(limit))

	env, err := s.client.get(ctx, "search", params, fallbackSearch)
	if err != nil {
		return nil, err
	}

	var items []Item
	if err := json.Unmarshal(env.Data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode search results: %w", err)
	}
	return &Page{Products: items, Total: env.Count}, nil
}

// LocalSearcher scans already-fetched layout data for a case-insensitive
// substring match on name or brand, de-duplicated by id. It does not
// paginate; limit only caps the returned slice while Total stays the full
// match count.
type LocalSearcher struct {
	client *Client
}

func (s *LocalSearcher) Search(ctx context.Context, query string, page, limit int) (*Page, error) {
	prometheus.RecordSearch("local")

	layout, err := s.client.Layout(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	seen := make(map[string]bool)
	var matches []Item

	scan := func(items []Item) {
		for _, item := range items {
			if seen[item.ID] {
				continue
			}
			if strings.Contains(strings.ToLower(item.Name), q) ||
				strings.Contains(strings.ToLower(item.Brand), q) {
				seen[item.ID] = true
				matches = append(matches, item)
			}
		}
	}

	scan(layout.Promo)
	for _, collection := range layout.Collections {
		scan(collection.Items)
	}

	total := len(matches)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return &Page{Products: matches, Total: total}, nil
}
