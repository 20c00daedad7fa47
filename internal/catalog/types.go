package catalog

import (
	"bytes"
	"encoding/json"
)

// Sort keys recognized by the catalog API. recents is the default ordering
// and is never sent upstream.
const (
	SortRecents    = "recents"
	SortNameAZ     = "nameaz"
	SortNameZA     = "nameza"
	SortPriceMin   = "pricemin"
	SortPriceMax   = "pricemax"
	SortTopSellers = "top_sellers"
)

// PriceEntry is one entry of an item's price list. The first entry is
// authoritative.
type PriceEntry struct {
	Price      float64  `json:"price"`
	PromoPrice *float64 `json:"promo_price,omitempty"`
	QtyStock   *float64 `json:"qtd_stock,omitempty"`
}

// StockInfos carries the item's stock balance when the API reports one
type StockInfos struct {
	StockBalance *float64 `json:"stock_balance,omitempty"`
}

// SubcategoryRef identifies a subcategory an item belongs to. The API returns
// main_subcategory either as a bare id string or as an embedded {id, title}
// object; both decode into this one type so callers never sniff the shape.
type SubcategoryRef struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
}

// UnmarshalJSON accepts both the bare-id and the embedded-object encodings.
func (r *SubcategoryRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		return json.Unmarshal(data, &r.ID)
	}

	type plain SubcategoryRef
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = SubcategoryRef(p)
	return nil
}

// Item is a raw catalog item as returned by the API. It is read-only to the
// storefront; every display field is derived from it per request.
type Item struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Slug            string           `json:"slug"`
	Brand           string           `json:"brand,omitempty"`
	Images          []string         `json:"images,omitempty"`
	Prices          []PriceEntry     `json:"prices,omitempty"`
	MinPriceValid   *float64         `json:"min_price_valid,omitempty"`
	UnitType        string           `json:"unit_type,omitempty"`
	BlockSale       *bool            `json:"block_sale,omitempty"`
	StockInfos      *StockInfos      `json:"stock_infos,omitempty"`
	MainSubcategory *SubcategoryRef  `json:"main_subcategory,omitempty"`
	Subcategories   []SubcategoryRef `json:"subcategories,omitempty"`
	Description     string           `json:"description,omitempty"`
}

// Banner is a home layout banner
type Banner struct {
	ID        string `json:"id"`
	Title     string `json:"title,omitempty"`
	Image     string `json:"image"`
	IsDesktop bool   `json:"is_desktop"`
}

// Collection is a named group of items in the home layout
type Collection struct {
	ID    string `json:"id"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Items []Item `json:"items,omitempty"`
}

// Layout is the home layout resource
type Layout struct {
	Banners     []Banner     `json:"banners,omitempty"`
	Promo       []Item       `json:"promo,omitempty"`
	Collections []Collection `json:"collection_items,omitempty"`
}

// MenuCategory is one node of the category tree
type MenuCategory struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Subcategories []MenuCategory `json:"subcategories,omitempty"`
}

// Page is one page of an item listing together with the server-reported total
type Page struct {
	Products []Item `json:"products"`
	Total    int    `json:"total"`
}

// Filters narrows an item listing request
type Filters struct {
	CategoryID  string
	Subcategory string
	Sort        string
	MinPrice    *float64
	MaxPrice    *float64
}
