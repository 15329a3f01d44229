package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/inkwellgoods/storefront/internal/service"
	"github.com/inkwellgoods/storefront/pkg/logger"
)

// parseID reads a numeric path parameter
func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// respondError maps a service error onto the HTTP boundary. Validation and
// not-found failures surface as structured JSON with a user-facing message;
// anything unexpected becomes a logged 500.
func respondError(c echo.Context, err error, entity string) error {
	log := logger.FromEcho(c)

	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		log.Warn("Validation failure",
			zap.String("entity", entity),
			zap.String("field", ve.Field),
			zap.String("reason", ve.Reason))
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error": ve.Error(),
			"field": ve.Field,
		})
	case errors.Is(err, service.ErrNotFound):
		log.Warn("Not found", zap.String("entity", entity))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": entity + " not found",
		})
	case errors.Is(err, service.ErrConflict):
		log.Warn("Conflict", zap.String("entity", entity))
		return c.JSON(http.StatusConflict, echo.Map{
			"error": entity + " already exists",
		})
	case errors.Is(err, service.ErrEmptyCart):
		log.Warn("Checkout attempted on empty cart")
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "cart is empty",
		})
	default:
		log.Error("Unexpected failure",
			zap.String("entity", entity),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "internal error",
		})
	}
}
