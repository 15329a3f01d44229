package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/inkwellgoods/storefront/internal/service"
	"github.com/inkwellgoods/storefront/pkg/logger"
	"github.com/inkwellgoods/storefront/prometheus"
)

// ManageCategoryHandler serves the staff category console
type ManageCategoryHandler struct {
	manage *service.Manage
}

func NewManageCategoryHandler(manage *service.Manage) *ManageCategoryHandler {
	return &ManageCategoryHandler{manage: manage}
}

// ListCategories handles the console category list
func (h *ManageCategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.manage.ListCategories()
	if err != nil {
		return respondError(c, err, "categories")
	}
	return c.JSON(http.StatusOK, categories)
}

// GetCategory returns one category for the edit form
func (h *ManageCategoryHandler) GetCategory(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid category id"})
	}

	category, err := h.manage.GetCategory(id)
	if err != nil {
		return respondError(c, err, "category")
	}
	return c.JSON(http.StatusOK, category)
}

// CreateCategory handles the add-category form
func (h *ManageCategoryHandler) CreateCategory(c echo.Context) error {
	log := logger.FromEcho(c)

	var in service.CategoryInput
	if err := c.Bind(&in); err != nil {
		log.Warn("Invalid category payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	category, err := h.manage.CreateCategory(in)
	if err != nil {
		return respondError(c, err, "category")
	}

	prometheus.RecordCategoryOperation("create")
	log.Info("Category created",
		zap.Uint("category_id", category.ID),
		zap.String("name", category.Name),
		zap.String("slug", category.Slug))
	return c.JSON(http.StatusCreated, category)
}

// UpdateCategory handles the edit-category form
func (h *ManageCategoryHandler) UpdateCategory(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid category id"})
	}

	var in service.CategoryInput
	if err := c.Bind(&in); err != nil {
		log.Warn("Invalid category payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	category, err := h.manage.UpdateCategory(id, in)
	if err != nil {
		return respondError(c, err, "category")
	}

	prometheus.RecordCategoryOperation("update")
	log.Info("Category updated",
		zap.Uint("category_id", category.ID),
		zap.String("name", category.Name))
	return c.JSON(http.StatusOK, category)
}

// DeleteCategory removes a category and, by cascade, every product it owns.
// There is no confirmation step; the operation is irreversible.
func (h *ManageCategoryHandler) DeleteCategory(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid category id"})
	}

	if err := h.manage.DeleteCategory(id); err != nil {
		return respondError(c, err, "category")
	}

	prometheus.RecordCategoryOperation("delete")
	log.Info("Category deleted", zap.Uint("category_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "category deleted"})
}
