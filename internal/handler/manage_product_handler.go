package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/inkwellgoods/storefront/internal/service"
	"github.com/inkwellgoods/storefront/pkg/logger"
	"github.com/inkwellgoods/storefront/prometheus"
)

// ManageProductHandler serves the staff product console
type ManageProductHandler struct {
	manage *service.Manage
}

func NewManageProductHandler(manage *service.Manage) *ManageProductHandler {
	return &ManageProductHandler{manage: manage}
}

type bulkDeleteRequest struct {
	IDs []uint `json:"ids" form:"ids"`
}

// ListProducts handles the console product list, newest first
func (h *ManageProductHandler) ListProducts(c echo.Context) error {
	log := logger.FromEcho(c)

	products, err := h.manage.ListProducts()
	if err != nil {
		return respondError(c, err, "products")
	}

	log.Info("Console product list served", zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, products)
}

// GetProduct returns one product for the edit form
func (h *ManageProductHandler) GetProduct(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}

	product, err := h.manage.GetProduct(id)
	if err != nil {
		return respondError(c, err, "product")
	}
	return c.JSON(http.StatusOK, product)
}

// CreateProduct handles the add-product form
func (h *ManageProductHandler) CreateProduct(c echo.Context) error {
	log := logger.FromEcho(c)

	var in service.ProductInput
	if err := c.Bind(&in); err != nil {
		log.Warn("Invalid product payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	product, err := h.manage.CreateProduct(in)
	if err != nil {
		return respondError(c, err, "product")
	}

	prometheus.RecordProductOperation("create")
	log.Info("Product created",
		zap.Uint("product_id", product.ID),
		zap.String("title", product.Title),
		zap.String("slug", product.Slug))
	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles the edit-product form. The slug is never rewritten.
func (h *ManageProductHandler) UpdateProduct(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}

	var in service.ProductInput
	if err := c.Bind(&in); err != nil {
		log.Warn("Invalid product payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	product, err := h.manage.UpdateProduct(id, in)
	if err != nil {
		return respondError(c, err, "product")
	}

	prometheus.RecordProductOperation("update")
	log.Info("Product updated",
		zap.Uint("product_id", product.ID),
		zap.String("title", product.Title))
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct hard-deletes a product; images and variants cascade
func (h *ManageProductHandler) DeleteProduct(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}

	if err := h.manage.DeleteProduct(id); err != nil {
		return respondError(c, err, "product")
	}

	prometheus.RecordProductOperation("delete")
	log.Info("Product deleted", zap.Uint("product_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "product deleted"})
}

// BulkDelete removes all products matching the submitted ids in one
// operation; unmatched ids are silently ignored
func (h *ManageProductHandler) BulkDelete(c echo.Context) error {
	log := logger.FromEcho(c)

	var req bulkDeleteRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid bulk delete payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	deleted, err := h.manage.BulkDeleteProducts(req.IDs)
	if err != nil {
		return respondError(c, err, "products")
	}

	prometheus.RecordProductOperation("bulk_delete")
	log.Info("Products bulk deleted",
		zap.Int("requested", len(req.IDs)),
		zap.Int64("deleted", deleted))
	return c.JSON(http.StatusOK, echo.Map{"deleted": deleted})
}

// Duplicate clones a product under a fresh "-copy" slug
func (h *ManageProductHandler) Duplicate(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}

	clone, err := h.manage.DuplicateProduct(id)
	if err != nil {
		return respondError(c, err, "product")
	}

	prometheus.RecordProductOperation("duplicate")
	log.Info("Product duplicated",
		zap.Uint("source_id", id),
		zap.Uint("clone_id", clone.ID),
		zap.String("clone_slug", clone.Slug))
	return c.JSON(http.StatusCreated, clone)
}
