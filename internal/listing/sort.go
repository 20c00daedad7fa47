package listing

import (
	"sort"

	"github.com/freshmarket/storefront/internal/catalog"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// newCollator returns the collator used for every name ordering on the
// storefront. Byte-order comparison would misplace accented product names,
// so all of them go through locale collation.
func newCollator() *collate.Collator {
	return collate.New(language.BrazilianPortuguese)
}

// sortItems returns a sorted copy of items for the given sort key. recents,
// top_sellers and unknown keys preserve the incoming order: recents is the
// server's default ordering and top_sellers has no local comparator.
func sortItems(items []catalog.Item, key string, col *collate.Collator) []catalog.Item {
	sorted := make([]catalog.Item, len(items))
	copy(sorted, items)

	switch key {
	case catalog.SortNameAZ:
		sort.SliceStable(sorted, func(i, j int) bool {
			return col.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	case catalog.SortNameZA:
		sort.SliceStable(sorted, func(i, j int) bool {
			return col.CompareString(sorted[i].Name, sorted[j].Name) > 0
		})
	case catalog.SortPriceMin:
		sort.SliceStable(sorted, func(i, j int) bool {
			return listingPrice(sorted[i]) < listingPrice(sorted[j])
		})
	case catalog.SortPriceMax:
		sort.SliceStable(sorted, func(i, j int) bool {
			return listingPrice(sorted[i]) > listingPrice(sorted[j])
		})
	}

	return sorted
}

// listingPrice is the price used by the price sort keys:
// min_price_valid, else the promotional price, else the list price, else zero
func listingPrice(item catalog.Item) float64 {
	if item.MinPriceValid != nil && *item.MinPriceValid != 0 {
		return *item.MinPriceValid
	}
	if len(item.Prices) == 0 {
		return 0
	}
	if item.Prices[0].PromoPrice != nil && *item.Prices[0].PromoPrice != 0 {
		return *item.Prices[0].PromoPrice
	}
	return item.Prices[0].Price
}

// filterPrice is the price the min/max filter compares against:
// min_price_valid falling back to the list price. The promotional price
// deliberately does not participate here.
func filterPrice(item catalog.Item) float64 {
	if item.MinPriceValid != nil && *item.MinPriceValid != 0 {
		return *item.MinPriceValid
	}
	if len(item.Prices) == 0 {
		return 0
	}
	return item.Prices[0].Price
}
