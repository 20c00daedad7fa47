package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/freshmarket/storefront/internal/catalog"
	"github.com/freshmarket/storefront/internal/product"
	"github.com/freshmarket/storefront/pkg/logger"
	"github.com/freshmarket/storefront/prometheus"
)

// Product serves the product detail page. A missing product is a 404
// with its own payload, distinct from an upstream failure.
func (h *Handler) Product(c echo.Context) error {
	log := logger.FromEcho(c)

	slug := c.Param("slug")
	fromOffer := c.QueryParam("offer") == "true"
	log.Info("Loading product", zap.String("slug", slug), zap.Bool("from_offer", fromOffer))

	item, err := h.client.Product(c.Request().Context(), slug)
	if err != nil {
		return upstreamError(c, err, "Erro ao carregar produto")
	}
	if item == nil {
		log.Warn("Product not found", zap.String("slug", slug))
		return c.JSON(http.StatusNotFound, echo.Map{
			"status":  "not_found",
			"message": "Produto não encontrado",
		})
	}

	prometheus.RecordProductView(slug)

	view := ProductPageView{
		ID:          item.ID,
		Slug:        item.Slug,
		Name:        item.Name,
		Brand:       item.Brand,
		Description: item.Description,
		Images:      make([]ProductImageView, 0, len(item.Images)),
		View:        product.Derive(item, product.Options{FromOfferSection: fromOffer}),
	}
	for _, photo := range item.Images {
		view.Images = append(view.Images, ProductImageView{
			Small:  h.images.ProductURL(photo, catalog.ImageSmall),
			Medium: h.images.ProductURL(photo, catalog.ImageMedium),
			Large:  h.images.ProductURL(photo, catalog.ImageLarge),
		})
	}

	log.Info("Product loaded", zap.String("slug", slug), zap.String("name", item.Name))
	return c.JSON(http.StatusOK, view)
}
