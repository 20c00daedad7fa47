package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/freshmarket/storefront/internal/catalog"
	"github.com/freshmarket/storefront/internal/listing"
	"github.com/freshmarket/storefront/pkg/config"
	"github.com/freshmarket/storefront/pkg/logger"
)

// Handler serves the storefront HTTP surfaces
type Handler struct {
	cfg      *config.Config
	client   *catalog.Client
	searcher catalog.Searcher
	images   catalog.Images
	sessions *listing.Store
}

// New wires the handler with its catalog dependencies
func New(cfg *config.Config, client *catalog.Client, searcher catalog.Searcher) *Handler {
	return &Handler{
		cfg:      cfg,
		client:   client,
		searcher: searcher,
		images:   catalog.Images{BaseURL: cfg.Images.BaseURL},
		sessions: listing.NewStore(cfg.Catalog.SessionTTL),
	}
}

// upstreamError maps a catalog failure to a 502 response. Remote API
// errors carry their own message, transport failures get the fallback.
func upstreamError(c echo.Context, err error, fallback string) error {
	log := logger.FromEcho(c)
	log.Error("Catalog request failed", zap.Error(err))

	msg := fallback
	var catErr *catalog.Error
	if errors.As(err, &catErr) {
		msg = catErr.Message
	}
	return c.JSON(http.StatusBadGateway, echo.Map{"error": msg})
}
