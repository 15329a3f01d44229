package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/inkwellgoods/storefront/internal/middleware"
	"github.com/inkwellgoods/storefront/internal/service"
	"github.com/inkwellgoods/storefront/pkg/logger"
	"github.com/inkwellgoods/storefront/prometheus"
)

// CartHandler serves the authenticated shopping cart endpoints
type CartHandler struct {
	cart *service.Cart
}

func NewCartHandler(cart *service.Cart) *CartHandler {
	return &CartHandler{cart: cart}
}

type addItemRequest struct {
	VariantID *uint `json:"variant_id" form:"variant_id"`
}

type updateItemRequest struct {
	Quantity string `json:"quantity" form:"quantity"`
}

// AddItem appends a product (and optional variant) to the caller's cart as
// a fresh line with quantity 1
func (h *CartHandler) AddItem(c echo.Context) error {
	log := logger.FromEcho(c)

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing identity"})
	}

	productID, err := parseID(c, "productId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}

	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid add-to-cart payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	item, err := h.cart.AddItem(userID, productID, req.VariantID)
	if err != nil {
		return respondError(c, err, "product")
	}

	prometheus.RecordCartOperation("add")
	log.Info("Cart item added",
		zap.Uint("user_id", userID),
		zap.Uint("product_id", productID),
		zap.Uint("item_id", item.ID))
	return c.JSON(http.StatusCreated, item)
}

// ViewCart returns the caller's cart lines and total
func (h *CartHandler) ViewCart(c echo.Context) error {
	log := logger.FromEcho(c)

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing identity"})
	}

	view, err := h.cart.View(userID)
	if err != nil {
		return respondError(c, err, "cart")
	}

	log.Info("Cart viewed",
		zap.Uint("user_id", userID),
		zap.Int("items", len(view.Items)),
		zap.String("total", view.Total.String()))
	return c.JSON(http.StatusOK, view)
}

// UpdateItem sets the quantity of one of the caller's cart lines. Zero or
// negative removes the line; non-numeric input is rejected without change.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	log := logger.FromEcho(c)

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing identity"})
	}

	itemID, err := parseID(c, "itemId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
	}

	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid cart update payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	if err := h.cart.UpdateItemQuantity(userID, itemID, req.Quantity); err != nil {
		return respondError(c, err, "cart item")
	}

	prometheus.RecordCartOperation("update")
	log.Info("Cart item updated",
		zap.Uint("user_id", userID),
		zap.Uint("item_id", itemID),
		zap.String("quantity", req.Quantity))
	return c.JSON(http.StatusOK, echo.Map{"message": "cart updated"})
}

// RemoveItem deletes one of the caller's cart lines
func (h *CartHandler) RemoveItem(c echo.Context) error {
	log := logger.FromEcho(c)

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing identity"})
	}

	itemID, err := parseID(c, "itemId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
	}

	if err := h.cart.RemoveItem(userID, itemID); err != nil {
		return respondError(c, err, "cart item")
	}

	prometheus.RecordCartOperation("remove")
	log.Info("Cart item removed",
		zap.Uint("user_id", userID),
		zap.Uint("item_id", itemID))
	return c.JSON(http.StatusOK, echo.Map{"message": "item removed"})
}

// Checkout returns the checkout summary. Payment capture is an external
// collaborator; nothing is persisted here.
func (h *CartHandler) Checkout(c echo.Context) error {
	log := logger.FromEcho(c)

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing identity"})
	}

	summary, err := h.cart.Checkout(userID)
	if err != nil {
		prometheus.RecordCheckout("failed")
		return respondError(c, err, "cart")
	}

	prometheus.RecordCheckout("ok")
	log.Info("Checkout summary produced",
		zap.Uint("user_id", userID),
		zap.Int("items", len(summary.Items)),
		zap.String("total", summary.Total.String()))
	return c.JSON(http.StatusOK, summary)
}
