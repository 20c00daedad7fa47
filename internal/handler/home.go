package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/freshmarket/storefront/internal/catalog"
	"github.com/freshmarket/storefront/internal/product"
	"github.com/freshmarket/storefront/pkg/logger"
)

// Home serves the store front page: banners, the offer rail and the
// collection rails from the remote layout.
func (h *Handler) Home(c echo.Context) error {
	log := logger.FromEcho(c)
	log.Info("Loading home layout")

	layout, err := h.client.Layout(c.Request().Context())
	if err != nil {
		return upstreamError(c, err, "Erro ao carregar layout")
	}

	view := HomeView{
		Banners:     make([]BannerView, 0, len(layout.Banners)),
		Offers:      h.cards(layout.Promo, product.Options{FromOfferSection: true}, catalog.ImageMedium, false),
		Collections: make([]CollectionView, 0, len(layout.Collections)),
	}
	for _, b := range layout.Banners {
		view.Banners = append(view.Banners, BannerView{
			ID:        b.ID,
			Title:     b.Title,
			ImageURL:  h.images.BannerURL(b.Image),
			IsDesktop: b.IsDesktop,
		})
	}
	for _, col := range layout.Collections {
		view.Collections = append(view.Collections, CollectionView{
			ID:    col.ID,
			Slug:  col.Slug,
			Title: col.Title,
			Items: h.cards(col.Items, product.Options{}, catalog.ImageMedium, false),
		})
	}

	log.Info("Home layout loaded",
		zap.Int("banners", len(view.Banners)),
		zap.Int("offers", len(view.Offers)),
		zap.Int("collections", len(view.Collections)))
	return c.JSON(http.StatusOK, view)
}
