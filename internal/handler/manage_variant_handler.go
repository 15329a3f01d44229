package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/inkwellgoods/storefront/internal/service"
	"github.com/inkwellgoods/storefront/pkg/logger"
)

// ManageVariantHandler serves the staff variant console
type ManageVariantHandler struct {
	manage *service.Manage
}

func NewManageVariantHandler(manage *service.Manage) *ManageVariantHandler {
	return &ManageVariantHandler{manage: manage}
}

// ListVariants returns a product's variants for the console
func (h *ManageVariantHandler) ListVariants(c echo.Context) error {
	productID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}

	variants, err := h.manage.ListVariants(productID)
	if err != nil {
		return respondError(c, err, "product")
	}
	return c.JSON(http.StatusOK, variants)
}

// AddVariant attaches a new variant to a product
func (h *ManageVariantHandler) AddVariant(c echo.Context) error {
	log := logger.FromEcho(c)

	productID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}

	var in service.VariantInput
	if err := c.Bind(&in); err != nil {
		log.Warn("Invalid variant payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	variant, err := h.manage.AddVariant(productID, in)
	if err != nil {
		return respondError(c, err, "product")
	}

	log.Info("Variant added",
		zap.Uint("product_id", productID),
		zap.Uint("variant_id", variant.ID),
		zap.String("name", variant.Name),
		zap.String("value", variant.Value))
	return c.JSON(http.StatusCreated, variant)
}

// UpdateVariant replaces a variant's fields, addressed by its own id
func (h *ManageVariantHandler) UpdateVariant(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid variant id"})
	}

	var in service.VariantInput
	if err := c.Bind(&in); err != nil {
		log.Warn("Invalid variant payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	variant, err := h.manage.UpdateVariant(id, in)
	if err != nil {
		return respondError(c, err, "variant")
	}

	log.Info("Variant updated", zap.Uint("variant_id", variant.ID))
	return c.JSON(http.StatusOK, variant)
}

// DeleteVariant removes one variant
func (h *ManageVariantHandler) DeleteVariant(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid variant id"})
	}

	if err := h.manage.DeleteVariant(id); err != nil {
		return respondError(c, err, "variant")
	}

	log.Info("Variant deleted", zap.Uint("variant_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "variant deleted"})
}
