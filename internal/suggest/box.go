// Package suggest implements the header search box behavior: keystrokes are
// debounced so only the last query in a quiet window reaches the catalog,
// and a response that comes back for an outdated query never overwrites the
// newer one's results.
package suggest

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/freshmarket/storefront/internal/catalog"
)

// Box drives live search suggestions for one header instance
type Box struct {
	searcher catalog.Searcher
	debounce time.Duration
	minChars int
	limit    int
	// onResults receives the query the results belong to; an empty slice
	// closes the suggestion panel
	onResults func(query string, products []catalog.Item)

	mu     sync.Mutex
	timer  *time.Timer
	gen    uint64
	closed bool
}

// NewBox creates a suggestion box over the given search strategy
func NewBox(searcher catalog.Searcher, debounce time.Duration, minChars, limit int, onResults func(string, []catalog.Item)) *Box {
	return &Box{
		searcher: searcher,
		debounce: debounce,
		minChars: minChars,
		limit:    limit,
		onResults: onResults,
	}
}

// SetQuery registers a keystroke. The pending timer is cleared on every
// call; only the last query within the debounce window triggers a request.
func (b *Box) SetQuery(ctx context.Context, query string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}

	b.gen++
	gen := b.gen
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.debounce, func() {
		b.fire(ctx, gen, query)
	})
}

// fire runs the debounced lookup and commits the results unless a newer
// keystroke has arrived in the meantime.
func (b *Box) fire(ctx context.Context, gen uint64, query string) {
	trimmed := strings.TrimSpace(query)

	var products []catalog.Item
	if utf8.RuneCountInString(trimmed) >= b.minChars {
		page, err := b.searcher.Search(ctx, trimmed, 1, b.limit)
		if err == nil {
			products = page.Products
		}
		// a failed lookup degrades to an empty panel, it is not retried
	}

	b.mu.Lock()
	stale := gen != b.gen || b.closed
	b.mu.Unlock()
	if stale {
		// a newer query owns the panel now
		return
	}
	b.onResults(query, products)
}

// Close cancels any pending lookup. Safe to call more than once; the box
// delivers nothing after Close returns.
func (b *Box) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}
