package handler

import (
	"github.com/freshmarket/storefront/internal/catalog"
	"github.com/freshmarket/storefront/internal/listing"
	"github.com/freshmarket/storefront/internal/product"
)

// descriptionPreviewLength bounds the snippet shown on list cards
const descriptionPreviewLength = 120

// BannerView is a home banner with its derived CDN URL
type BannerView struct {
	ID        string `json:"id"`
	Title     string `json:"title,omitempty"`
	ImageURL  string `json:"image_url"`
	IsDesktop bool   `json:"is_desktop"`
}

// CardView is a product card: identity fields plus the derived view
type CardView struct {
	ID                 string `json:"id"`
	Slug               string `json:"slug"`
	Name               string `json:"name"`
	Brand              string `json:"brand,omitempty"`
	ImageURL           string `json:"image_url,omitempty"`
	DescriptionPreview string `json:"description_preview,omitempty"`
	product.View
}

// CollectionView is a named rail of product cards
type CollectionView struct {
	ID    string     `json:"id"`
	Slug  string     `json:"slug"`
	Title string     `json:"title"`
	Items []CardView `json:"items"`
}

// HomeView is the home surface payload
type HomeView struct {
	Banners     []BannerView     `json:"banners"`
	Offers      []CardView       `json:"offers"`
	Collections []CollectionView `json:"collections"`
}

// CategoryView is the category listing payload
type CategoryView struct {
	Title           string                      `json:"title"`
	Products        []CardView                  `json:"products"`
	Total           int                         `json:"total"`
	TotalInCategory int                         `json:"total_in_category"`
	Page            int                         `json:"page"`
	TotalPages      int                         `json:"total_pages"`
	Filtered        bool                        `json:"filtered"`
	Sort            string                      `json:"sort"`
	Subcategories   []listing.SubcategoryOption `json:"subcategories,omitempty"`
}

// ProductImageView carries one photo's CDN URLs per size
type ProductImageView struct {
	Small  string `json:"small"`
	Medium string `json:"medium"`
	Large  string `json:"large"`
}

// ProductPageView is the product detail payload
type ProductPageView struct {
	ID          string             `json:"id"`
	Slug        string             `json:"slug"`
	Name        string             `json:"name"`
	Brand       string             `json:"brand,omitempty"`
	Description string             `json:"description,omitempty"`
	Images      []ProductImageView `json:"images"`
	product.View
}

// SearchView is the search page payload
type SearchView struct {
	Query      string     `json:"query"`
	Products   []CardView `json:"products"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	TotalPages int        `json:"total_pages"`
}

// Suggestion is one header typeahead entry
type Suggestion struct {
	ID       string  `json:"id"`
	Slug     string  `json:"slug"`
	Name     string  `json:"name"`
	ImageURL string  `json:"image_url,omitempty"`
	Price    float64 `json:"price"`
}

// SuggestView is the header typeahead payload
type SuggestView struct {
	Query       string       `json:"query"`
	Suggestions []Suggestion `json:"suggestions"`
}

// card builds a product card at the given image size
func (h *Handler) card(item catalog.Item, opts product.Options, size string, withPreview bool) CardView {
	card := CardView{
		ID:    item.ID,
		Slug:  item.Slug,
		Name:  item.Name,
		Brand: item.Brand,
		View:  product.Derive(&item, opts),
	}
	if len(item.Images) > 0 {
		card.ImageURL = h.images.ProductURL(item.Images[0], size)
	}
	if withPreview && item.Description != "" {
		card.DescriptionPreview = product.DescriptionPreview(item.Description, descriptionPreviewLength)
	}
	return card
}

func (h *Handler) cards(items []catalog.Item, opts product.Options, size string, withPreview bool) []CardView {
	cards := make([]CardView, len(items))
	for i, item := range items {
		cards[i] = h.card(item, opts, size, withPreview)
	}
	return cards
}
