package handler

import (
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/freshmarket/storefront/internal/catalog"
	"github.com/freshmarket/storefront/internal/listing"
	"github.com/freshmarket/storefront/internal/product"
	"github.com/freshmarket/storefront/pkg/logger"
)

// Category serves a category listing. With a category id the products
// come from the paged listing session, honoring sort and filters. With
// only a slug the products come from the matching layout collection.
func (h *Handler) Category(c echo.Context) error {
	log := logger.FromEcho(c)
	ctx := c.Request().Context()

	slug := c.Param("slug")
	categoryID := c.QueryParam("id")
	log.Info("Loading category",
		zap.String("slug", slug),
		zap.String("category_id", categoryID))

	if categoryID == "" {
		return h.categoryFromLayout(c, slug)
	}

	menu, err := h.client.Menu(ctx)
	if err != nil {
		return upstreamError(c, err, "Erro ao carregar categorias")
	}

	query := listing.Query{
		Sort:        sortParam(c.QueryParam("sort")),
		Subcategory: c.QueryParam("subcat"),
		MinPrice:    floatParam(c.QueryParam("min")),
		MaxPrice:    floatParam(c.QueryParam("max")),
		Page:        pageParam(c.QueryParam("page")),
	}

	session := h.sessions.Get(categoryID, func() *listing.Session {
		return listing.NewSession(h.client, categoryID,
			listing.NamesFromMenu(menu),
			h.cfg.Catalog.PageSize, h.cfg.Catalog.MaxCategoryItems)
	})
	result, err := session.Load(ctx, query)
	if err != nil {
		return upstreamError(c, err, "Erro ao carregar produtos")
	}

	view := CategoryView{
		Title:           categoryTitle(menu, categoryID, slug),
		Products:        h.cards(result.Products, product.Options{}, catalog.ImageMedium, true),
		Total:           result.Total,
		TotalInCategory: result.TotalInCategory,
		Page:            result.Page,
		TotalPages:      result.TotalPages,
		Filtered:        result.Filtered,
		Sort:            query.Sort,
		Subcategories:   result.Subcategories,
	}

	log.Info("Category loaded",
		zap.String("category_id", categoryID),
		zap.Int("products", len(view.Products)),
		zap.Int("total", view.Total),
		zap.Bool("filtered", view.Filtered))
	return c.JSON(http.StatusOK, view)
}

// categoryFromLayout serves a category page backed by a layout
// collection, for links that carry no catalog category id.
func (h *Handler) categoryFromLayout(c echo.Context, slug string) error {
	log := logger.FromEcho(c)

	layout, err := h.client.Layout(c.Request().Context())
	if err != nil {
		return upstreamError(c, err, "Erro ao carregar produtos")
	}

	view := CategoryView{
		Title:      titleize(slug),
		Products:   []CardView{},
		Page:       1,
		TotalPages: 1,
		Sort:       catalog.SortRecents,
	}
	for _, col := range layout.Collections {
		if col.Slug != slug {
			continue
		}
		view.Title = col.Title
		view.Products = h.cards(col.Items, product.Options{}, catalog.ImageMedium, true)
		break
	}
	view.Total = len(view.Products)
	view.TotalInCategory = view.Total

	log.Info("Category loaded from layout collection",
		zap.String("slug", slug),
		zap.Int("products", len(view.Products)))
	return c.JSON(http.StatusOK, view)
}

func categoryTitle(menu []catalog.MenuCategory, categoryID, slug string) string {
	for _, cat := range menu {
		if cat.ID == categoryID {
			return cat.Title
		}
	}
	return titleize(slug)
}

// titleize turns a slug like "frios-e-laticinios" into a page title
func titleize(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		runes := []rune(w)
		if len(runes) > 0 {
			runes[0] = unicode.ToUpper(runes[0])
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

func sortParam(raw string) string {
	switch raw {
	case catalog.SortNameAZ, catalog.SortNameZA,
		catalog.SortPriceMin, catalog.SortPriceMax,
		catalog.SortTopSellers:
		return raw
	default:
		return catalog.SortRecents
	}
}

func pageParam(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func floatParam(raw string) *float64 {
	if raw == "" {
		return nil
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &val
}
