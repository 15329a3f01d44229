package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/inkwellgoods/storefront/internal/service"
	"github.com/inkwellgoods/storefront/pkg/logger"
	"github.com/inkwellgoods/storefront/prometheus"
)

// CatalogHandler serves the public storefront pages
type CatalogHandler struct {
	catalog *service.Catalog
}

func NewCatalogHandler(catalog *service.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListProducts handles the storefront landing page: all products, newest
// first, alongside the category navigation
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	log := logger.FromEcho(c)

	products, err := h.catalog.ListProducts()
	if err != nil {
		return respondError(c, err, "products")
	}

	categories, err := h.catalog.ListCategories()
	if err != nil {
		return respondError(c, err, "categories")
	}

	log.Info("Products listed", zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, echo.Map{
		"products":   products,
		"categories": categories,
	})
}

// FeaturedProducts handles the featured shelf
func (h *CatalogHandler) FeaturedProducts(c echo.Context) error {
	log := logger.FromEcho(c)

	products, err := h.catalog.ListFeatured()
	if err != nil {
		return respondError(c, err, "products")
	}

	log.Info("Featured products listed", zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, echo.Map{"products": products})
}

// ProductDetail handles the product page, addressed by slug
func (h *CatalogHandler) ProductDetail(c echo.Context) error {
	log := logger.FromEcho(c)
	slug := c.Param("slug")

	product, err := h.catalog.GetProductDetail(slug)
	if err != nil {
		return respondError(c, err, "product")
	}

	prometheus.RecordProductView(slug)
	log.Info("Product detail served",
		zap.String("slug", slug),
		zap.Int("images", len(product.Images)),
		zap.Int("variants", len(product.Variants)))
	return c.JSON(http.StatusOK, product)
}
