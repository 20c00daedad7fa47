package product

import (
	"testing"

	"github.com/freshmarket/storefront/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }
func bptr(v bool) *bool       { return &v }

func itemWithPrices(price float64, promo *float64) *catalog.Item {
	return &catalog.Item{
		ID:     "p1",
		Name:   "Produto",
		Prices: []catalog.PriceEntry{{Price: price, PromoPrice: promo}},
	}
}

func TestDerive_nilItemYieldsDefaultView(t *testing.T) {
	view := Derive(nil, Options{FromOfferSection: true})

	assert.Equal(t, 0.0, view.OriginalPrice)
	assert.Nil(t, view.PromoPrice)
	assert.Equal(t, 0.0, view.FinalPrice)
	assert.False(t, view.HasDiscount)
	assert.Equal(t, 0, view.DiscountPercent)
	assert.Equal(t, "/un", view.Unit)
	assert.False(t, view.IsWeightBased)
	assert.Nil(t, view.StockBalance)
	assert.False(t, view.IsUnavailable)
	assert.Nil(t, view.Badge)

	// idempotent across repeated calls
	assert.Equal(t, view, Derive(nil, Options{FromOfferSection: true}))
}

func TestDerive_discount(t *testing.T) {
	view := Derive(itemWithPrices(10, fptr(8)), Options{})

	assert.True(t, view.HasDiscount)
	assert.Equal(t, 20, view.DiscountPercent)
	require.NotNil(t, view.Badge)
	assert.Equal(t, BadgeDiscount, view.Badge.Type)
	assert.Equal(t, "-20%", view.Badge.Text)
	assert.Equal(t, "primary", view.Badge.Color)
	assert.Equal(t, 8.0, view.DisplayPrice())
}

func TestDerive_equalPricesAreNotADiscount(t *testing.T) {
	view := Derive(itemWithPrices(2.29, fptr(2.29)), Options{})

	assert.False(t, view.HasDiscount)
	assert.Equal(t, 0, view.DiscountPercent)
	assert.Nil(t, view.Badge)
}

func TestDerive_equalPricesFromOfferSectionGetOfferBadge(t *testing.T) {
	view := Derive(itemWithPrices(2.29, fptr(2.29)), Options{FromOfferSection: true})

	require.NotNil(t, view.Badge)
	assert.Equal(t, BadgeOffer, view.Badge.Type)
	assert.Equal(t, "Oferta", view.Badge.Text)
	assert.Equal(t, "orange", view.Badge.Color)
}

func TestDerive_offerBadgeRequiresOfferSection(t *testing.T) {
	view := Derive(itemWithPrices(5, nil), Options{})
	assert.Nil(t, view.Badge)
}

func TestDerive_finalPricePrefersMinPriceValid(t *testing.T) {
	item := itemWithPrices(10, nil)
	item.MinPriceValid = fptr(9.5)

	view := Derive(item, Options{})
	assert.Equal(t, 9.5, view.FinalPrice)
	assert.Equal(t, 10.0, view.OriginalPrice)
}

func TestDerive_unavailableBeatsDiscount(t *testing.T) {
	item := itemWithPrices(10, fptr(8))
	item.BlockSale = bptr(true)

	view := Derive(item, Options{FromOfferSection: true})

	assert.True(t, view.HasDiscount, "discount math is still derived")
	assert.True(t, view.IsBlocked)
	assert.True(t, view.IsUnavailable)
	require.NotNil(t, view.Badge)
	assert.Equal(t, BadgeUnavailable, view.Badge.Type)
	assert.Equal(t, "Indisponível", view.Badge.Text)
	assert.Equal(t, "gray", view.Badge.Color)
}

func TestDerive_outOfStock(t *testing.T) {
	item := itemWithPrices(10, nil)
	item.StockInfos = &catalog.StockInfos{StockBalance: fptr(0)}

	view := Derive(item, Options{})

	assert.True(t, view.IsOutOfStock)
	assert.True(t, view.IsUnavailable)
	require.NotNil(t, view.Badge)
	assert.Equal(t, BadgeUnavailable, view.Badge.Type)
}

func TestDerive_stockFallsBackToPriceEntry(t *testing.T) {
	item := &catalog.Item{
		Prices: []catalog.PriceEntry{{Price: 10, QtyStock: fptr(7)}},
	}

	view := Derive(item, Options{})
	require.NotNil(t, view.StockBalance)
	assert.Equal(t, 7.0, *view.StockBalance)
	assert.False(t, view.IsOutOfStock)
}

func TestDerive_stockInfosWinsOverPriceEntry(t *testing.T) {
	item := &catalog.Item{
		Prices:     []catalog.PriceEntry{{Price: 10, QtyStock: fptr(7)}},
		StockInfos: &catalog.StockInfos{StockBalance: fptr(3)},
	}

	view := Derive(item, Options{})
	require.NotNil(t, view.StockBalance)
	assert.Equal(t, 3.0, *view.StockBalance)
}

func TestDerive_unitMapping(t *testing.T) {
	tests := []struct {
		unitType    string
		want        string
		weightBased bool
	}{
		{"O", "/kg", true},
		{"K", "/kg", true},
		{"KG", "/kg", true},
		{"kg", "/kg", true},
		{"U", "/un", false},
		{"un", "/un", false},
		{"L", "/L", false},
		{"m", "/m", false},
		{"CX", "/un", false},
		{"", "/un", false},
	}

	for _, tt := range tests {
		item := itemWithPrices(1, nil)
		item.UnitType = tt.unitType

		view := Derive(item, Options{})
		assert.Equal(t, tt.want, view.Unit, "unit_type %q", tt.unitType)
		assert.Equal(t, tt.weightBased, view.IsWeightBased, "unit_type %q", tt.unitType)
	}
}

func TestDerive_exactlyOneBadge(t *testing.T) {
	items := []struct {
		name string
		item *catalog.Item
		opts Options
	}{
		{"discounted", itemWithPrices(10, fptr(8)), Options{}},
		{"offer", itemWithPrices(10, nil), Options{FromOfferSection: true}},
		{"plain", itemWithPrices(10, nil), Options{}},
		{"blocked discounted offer", func() *catalog.Item {
			i := itemWithPrices(10, fptr(8))
			i.BlockSale = bptr(true)
			return i
		}(), Options{FromOfferSection: true}},
	}

	for _, tt := range items {
		view := Derive(tt.item, tt.opts)
		if view.Badge != nil {
			assert.Contains(t, []string{BadgeDiscount, BadgeOffer, BadgeUnavailable}, view.Badge.Type, tt.name)
		}
	}
}
