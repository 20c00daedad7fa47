package listing

import (
	"testing"

	"github.com/freshmarket/storefront/internal/catalog"
	"github.com/stretchr/testify/assert"
)

func names(items []catalog.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Name
	}
	return out
}

func priced(prices ...float64) []catalog.Item {
	items := make([]catalog.Item, len(prices))
	for i, p := range prices {
		items[i] = catalog.Item{Prices: []catalog.PriceEntry{{Price: p}}}
	}
	return items
}

func named(ns ...string) []catalog.Item {
	items := make([]catalog.Item, len(ns))
	for i, n := range ns {
		items[i] = catalog.Item{Name: n}
	}
	return items
}

func TestSortItems_priceAscending(t *testing.T) {
	col := newCollator()
	sorted := sortItems(priced(10, 5, 20), catalog.SortPriceMin, col)

	got := make([]float64, len(sorted))
	for i, item := range sorted {
		got[i] = item.Prices[0].Price
	}
	assert.Equal(t, []float64{5, 10, 20}, got)
}

func TestSortItems_priceDescending(t *testing.T) {
	col := newCollator()
	sorted := sortItems(priced(10, 5, 20), catalog.SortPriceMax, col)

	got := make([]float64, len(sorted))
	for i, item := range sorted {
		got[i] = item.Prices[0].Price
	}
	assert.Equal(t, []float64{20, 10, 5}, got)
}

func TestSortItems_priceChainPrefersMinPriceValidThenPromo(t *testing.T) {
	col := newCollator()
	items := []catalog.Item{
		{Name: "a", Prices: []catalog.PriceEntry{{Price: 100}}},
		{Name: "b", MinPriceValid: fptr(1), Prices: []catalog.PriceEntry{{Price: 200}}},
		{Name: "c", Prices: []catalog.PriceEntry{{Price: 300, PromoPrice: fptr(50)}}},
	}

	sorted := sortItems(items, catalog.SortPriceMin, col)
	assert.Equal(t, []string{"b", "c", "a"}, names(sorted))
}

func TestSortItems_nameLocaleAware(t *testing.T) {
	col := newCollator()
	items := named("Banana", "Maçã", "Arroz")

	az := sortItems(items, catalog.SortNameAZ, col)
	assert.Equal(t, []string{"Arroz", "Banana", "Maçã"}, names(az))

	za := sortItems(items, catalog.SortNameZA, col)
	assert.Equal(t, []string{"Maçã", "Banana", "Arroz"}, names(za))
}

func TestSortItems_zaIsReverseOfAz(t *testing.T) {
	col := newCollator()
	items := named("Pêra", "pera", "Pimentão", "Abacaxi", "Água")

	az := names(sortItems(items, catalog.SortNameAZ, col))
	za := names(sortItems(items, catalog.SortNameZA, col))

	for i := range az {
		assert.Equal(t, az[i], za[len(za)-1-i])
	}
}

func TestSortItems_recentsAndTopSellersPreserveOrder(t *testing.T) {
	col := newCollator()
	items := named("C", "A", "B")

	for _, key := range []string{catalog.SortRecents, catalog.SortTopSellers, "", "desconhecido"} {
		sorted := sortItems(items, key, col)
		assert.Equal(t, []string{"C", "A", "B"}, names(sorted), "key %q", key)
	}
}
