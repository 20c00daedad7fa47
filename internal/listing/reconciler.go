package listing

import (
	"context"
	"sort"
	"sync"

	"github.com/freshmarket/storefront/internal/catalog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
)

// Gateway is the slice of the catalog client a listing session needs.
// Keeping it an interface lets tests drive the reconciler with a fake.
type Gateway interface {
	ItemsPage(ctx context.Context, page, limit int, f catalog.Filters) (*catalog.Page, error)
	AllItemsForCategory(ctx context.Context, categoryID string, maxItems int) (*catalog.Page, error)
	SubcategoryName(ctx context.Context, subcategoryID, sampleSlug string) string
}

// Query is the filter/sort/page state of one category page load. It
// round-trips through the URL; the zero value (plus page one) is the
// cleared-filters state.
type Query struct {
	Sort        string
	Subcategory string
	MinPrice    *float64
	MaxPrice    *float64
	Page        int
}

// HasFilters reports whether any local filter is active. Sorting alone does
// not force local pagination; the server understands the sort keys.
func (q Query) HasFilters() bool {
	return q.Subcategory != "" || q.MinPrice != nil || q.MaxPrice != nil
}

// SubcategoryOption is one entry of the subcategory filter list
type SubcategoryOption struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Result is one reconciled page of a category listing
type Result struct {
	Products []catalog.Item
	// Total is what the pager counts: the server total without filters,
	// the filtered count with them.
	Total int
	// TotalInCategory is the unfiltered category size, the "out of N"
	// figure shown while filters are active.
	TotalInCategory int
	Page            int
	TotalPages      int
	Filtered        bool
	Subcategories   []SubcategoryOption
}

// Session reconciles one category page's listing for the lifetime of the
// page: it decides between server-side pagination and a local
// fetch-everything-and-filter pass, and it caches the full-category buffer
// so filter changes do not re-fetch it.
type Session struct {
	gateway    Gateway
	categoryID string
	pageSize   int
	maxItems   int
	names      map[string]string
	collator   *collate.Collator

	mu        sync.Mutex
	fetched   bool
	full      []catalog.Item
	fullTotal int
	subcats   []SubcategoryOption
}

// NewSession creates a listing session for one category. names maps
// category/subcategory ids to menu titles and may be nil.
func NewSession(gateway Gateway, categoryID string, names map[string]string, pageSize, maxItems int) *Session {
	if pageSize <= 0 {
		pageSize = 30
	}
	return &Session{
		gateway:    gateway,
		categoryID: categoryID,
		pageSize:   pageSize,
		maxItems:   maxItems,
		names:      names,
		collator:   newCollator(),
	}
}

// Load resolves one page of the listing for the given query
func (s *Session) Load(ctx context.Context, q Query) (*Result, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}

	// The full buffer backs both the subcategory filter list and the
	// unfiltered total; it is fetched at most once per session.
	if err := s.ensureFull(ctx); err != nil {
		return nil, err
	}

	if !q.HasFilters() {
		return s.loadServerPage(ctx, q, page)
	}
	return s.loadFiltered(ctx, q, page)
}

// loadServerPage lets the catalog API paginate and order the listing
func (s *Session) loadServerPage(ctx context.Context, q Query, page int) (*Result, error) {
	p, err := s.gateway.ItemsPage(ctx, page, s.pageSize, catalog.Filters{
		CategoryID: s.categoryID,
		Sort:       q.Sort,
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		Products:        sortItems(p.Products, q.Sort, s.collator),
		Total:           p.Total,
		TotalInCategory: p.Total,
		Page:            page,
		TotalPages:      pageCount(p.Total, s.pageSize),
		Subcategories:   s.subcats,
	}, nil
}

// loadFiltered filters, sorts and paginates the full category locally
func (s *Session) loadFiltered(ctx context.Context, q Query, page int) (*Result, error) {
	filtered := make([]catalog.Item, 0, len(s.full))
	for _, item := range s.full {
		if q.Subcategory != "" {
			if item.MainSubcategory == nil || item.MainSubcategory.ID != q.Subcategory {
				continue
			}
		}
		price := filterPrice(item)
		if q.MinPrice != nil && price < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && price > *q.MaxPrice {
			continue
		}
		filtered = append(filtered, item)
	}

	sorted := sortItems(filtered, q.Sort, s.collator)
	total := len(sorted)

	start := (page - 1) * s.pageSize
	if start > total {
		start = total
	}
	end := start + s.pageSize
	if end > total {
		end = total
	}

	return &Result{
		Products:        sorted[start:end],
		Total:           total,
		TotalInCategory: s.fullTotal,
		Page:            page,
		TotalPages:      pageCount(total, s.pageSize),
		Filtered:        true,
		Subcategories:   s.subcats,
	}, nil
}

// ensureFull fetches the full category buffer once and resolves the
// subcategory filter options from it.
func (s *Session) ensureFull(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fetched {
		return nil
	}

	p, err := s.gateway.AllItemsForCategory(ctx, s.categoryID, s.maxItems)
	if err != nil {
		return err
	}
	s.full = p.Products
	s.fullTotal = p.Total
	s.subcats = s.resolveSubcategories(ctx)
	s.fetched = true
	return nil
}

// resolveSubcategories builds the subcategory filter list from the full
// buffer: one representative product slug per distinct id, title from the
// menu name map, then the best-effort catalog lookup, then the raw id.
func (s *Session) resolveSubcategories(ctx context.Context) []SubcategoryOption {
	representative := make(map[string]string)
	var ids []string
	for _, item := range s.full {
		if item.MainSubcategory == nil || item.MainSubcategory.ID == "" {
			continue
		}
		id := item.MainSubcategory.ID
		if _, ok := representative[id]; !ok {
			representative[id] = item.Slug
			ids = append(ids, id)
		}
	}

	options := make([]SubcategoryOption, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			title := s.names[id]
			if title == "" {
				title = s.gateway.SubcategoryName(gctx, id, representative[id])
			}
			if title == "" {
				// lookup failures degrade to the raw id
				title = id
			}
			options[i] = SubcategoryOption{ID: id, Title: title}
			return nil
		})
	}
	// the workers never return an error; lookups swallow their failures
	_ = g.Wait()

	sort.SliceStable(options, func(i, j int) bool {
		return s.collator.CompareString(options[i].Title, options[j].Title) < 0
	})
	return options
}

func pageCount(total, pageSize int) int {
	if total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// NamesFromMenu flattens the category tree into an id-to-title map used for
// subcategory title resolution.
func NamesFromMenu(menu []catalog.MenuCategory) map[string]string {
	names := make(map[string]string)
	for _, cat := range menu {
		names[cat.ID] = cat.Title
		for _, sub := range cat.Subcategories {
			names[sub.ID] = sub.Title
		}
	}
	return names
}
