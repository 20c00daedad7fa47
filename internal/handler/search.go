package handler

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/freshmarket/storefront/internal/catalog"
	"github.com/freshmarket/storefront/internal/product"
	"github.com/freshmarket/storefront/pkg/logger"
)

// Search serves the search results page
func (h *Handler) Search(c echo.Context) error {
	log := logger.FromEcho(c)

	query := strings.TrimSpace(c.QueryParam("q"))
	page := pageParam(c.QueryParam("page"))
	if query == "" {
		return c.JSON(http.StatusOK, SearchView{
			Query:    query,
			Products: []CardView{},
			Page:     1,
		})
	}

	log.Info("Searching products", zap.String("query", query), zap.Int("page", page))
	result, err := h.searcher.Search(c.Request().Context(), query, page, h.cfg.Catalog.PageSize)
	if err != nil {
		return upstreamError(c, err, "Erro ao buscar produtos")
	}

	totalPages := (result.Total + h.cfg.Catalog.PageSize - 1) / h.cfg.Catalog.PageSize
	view := SearchView{
		Query:      query,
		Products:   h.cards(result.Products, product.Options{}, catalog.ImageMedium, true),
		Total:      result.Total,
		Page:       page,
		TotalPages: totalPages,
	}

	log.Info("Search finished",
		zap.String("query", query),
		zap.Int("results", len(view.Products)),
		zap.Int("total", view.Total))
	return c.JSON(http.StatusOK, view)
}

// Suggest serves the header typeahead. Queries below the minimum
// length return an empty set without touching the catalog.
func (h *Handler) Suggest(c echo.Context) error {
	log := logger.FromEcho(c)

	query := strings.TrimSpace(c.QueryParam("q"))
	view := SuggestView{Query: query, Suggestions: []Suggestion{}}
	if utf8.RuneCountInString(query) < h.cfg.Search.SuggestMinChars {
		return c.JSON(http.StatusOK, view)
	}

	result, err := h.searcher.Search(c.Request().Context(), query, 1, h.cfg.Search.SuggestLimit)
	if err != nil {
		log.Warn("Suggestion lookup failed", zap.String("query", query), zap.Error(err))
		return c.JSON(http.StatusOK, view)
	}

	for _, item := range result.Products {
		if len(view.Suggestions) == h.cfg.Search.SuggestLimit {
			break
		}
		sug := Suggestion{
			ID:    item.ID,
			Slug:  item.Slug,
			Name:  item.Name,
			Price: product.Derive(&item, product.Options{}).FinalPrice,
		}
		if len(item.Images) > 0 {
			sug.ImageURL = h.images.ProductURL(item.Images[0], catalog.ImageSmall)
		}
		view.Suggestions = append(view.Suggestions, sug)
	}

	log.Debug("Suggestions built",
		zap.String("query", query),
		zap.Int("count", len(view.Suggestions)))
	return c.JSON(http.StatusOK, view)
}
