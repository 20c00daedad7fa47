package product

import (
	"fmt"
	"math"
	"strings"

	"github.com/freshmarket/storefront/internal/catalog"
)

// Badge types. At most one badge is active per product, chosen by fixed
// priority: unavailable > discount > offer.
const (
	BadgeDiscount    = "discount"
	BadgeOffer       = "offer"
	BadgeUnavailable = "unavailable"
)

// Badge colors map to the storefront theme
const (
	colorGray    = "gray"
	colorPrimary = "primary"
	colorOrange  = "orange"
)

const defaultUnit = "/un"

var unitLabels = map[string]string{
	"O":  "/kg",
	"K":  "/kg",
	"KG": "/kg",
	"U":  "/un",
	"UN": "/un",
	"L":  "/L",
	"M":  "/m",
}

var weightUnits = map[string]bool{
	"O":  true,
	"K":  true,
	"KG": true,
}

// Options carries the context flags that influence derivation
type Options struct {
	// FromOfferSection marks products reached through the home offer rail;
	// it is the only way the offer badge can appear.
	FromOfferSection bool
}

// Badge is the single display badge selected for a product
type Badge struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	Color string `json:"color"`
}

// View is the display-ready projection of a catalog item. It is ephemeral:
// recomputed from the raw item on every request, never stored.
type View struct {
	OriginalPrice   float64  `json:"original_price"`
	PromoPrice      *float64 `json:"promo_price,omitempty"`
	FinalPrice      float64  `json:"final_price"`
	HasDiscount     bool     `json:"has_discount"`
	DiscountPercent int      `json:"discount_percent"`
	Unit            string   `json:"unit"`
	IsWeightBased   bool     `json:"is_weight_based"`
	StockBalance    *float64 `json:"stock_balance,omitempty"`
	IsBlocked       bool     `json:"is_blocked"`
	IsOutOfStock    bool     `json:"is_out_of_stock"`
	IsUnavailable   bool     `json:"is_unavailable"`
	Badge           *Badge   `json:"badge,omitempty"`
}

// Derive turns a raw catalog item plus context flags into its display
// fields. Pure and deterministic; a nil item yields the all-default view
// (zero prices, /un unit, no badge) rather than an error.
func Derive(item *catalog.Item, opts Options) View {
	view := View{Unit: defaultUnit}
	if item == nil {
		return view
	}

	// Prices: the first entry is authoritative
	if len(item.Prices) > 0 {
		view.OriginalPrice = item.Prices[0].Price
		view.PromoPrice = item.Prices[0].PromoPrice
	}
	view.FinalPrice = view.OriginalPrice
	if item.MinPriceValid != nil && *item.MinPriceValid != 0 {
		view.FinalPrice = *item.MinPriceValid
	}

	// Equal prices are not a discount; the comparison is strict
	view.HasDiscount = view.PromoPrice != nil && *view.PromoPrice != 0 && *view.PromoPrice < view.OriginalPrice
	if view.HasDiscount {
		view.DiscountPercent = int(math.Round((1 - *view.PromoPrice/view.OriginalPrice) * 100))
	}

	// Unit label: case-insensitive, total mapping
	unitType := strings.ToUpper(item.UnitType)
	if label, ok := unitLabels[unitType]; ok {
		view.Unit = label
	}
	view.IsWeightBased = weightUnits[unitType]

	// Stock: stock_infos wins over the price entry's qtd_stock
	if item.StockInfos != nil && item.StockInfos.StockBalance != nil {
		view.StockBalance = item.StockInfos.StockBalance
	} else if len(item.Prices) > 0 {
		view.StockBalance = item.Prices[0].QtyStock
	}

	view.IsBlocked = item.BlockSale != nil && *item.BlockSale
	view.IsOutOfStock = view.StockBalance != nil && *view.StockBalance <= 0
	view.IsUnavailable = view.IsBlocked || view.IsOutOfStock

	// Badge selection, priority order: unavailable > discount > offer
	switch {
	case view.IsUnavailable:
		view.Badge = &Badge{Type: BadgeUnavailable, Text: "Indisponível", Color: colorGray}
	case view.HasDiscount:
		view.Badge = &Badge{Type: BadgeDiscount, Text: fmt.Sprintf("-%d%%", view.DiscountPercent), Color: colorPrimary}
	case opts.FromOfferSection:
		view.Badge = &Badge{Type: BadgeOffer, Text: "Oferta", Color: colorOrange}
	}

	return view
}

// DisplayPrice is the price shown on the card: the promotional price when
// discounted, the final price otherwise.
func (v View) DisplayPrice() float64 {
	if v.HasDiscount && v.PromoPrice != nil {
		return *v.PromoPrice
	}
	return v.FinalPrice
}
