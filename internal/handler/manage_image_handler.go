package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/inkwellgoods/storefront/internal/model"
	"github.com/inkwellgoods/storefront/internal/service"
	"github.com/inkwellgoods/storefront/pkg/logger"
	"github.com/inkwellgoods/storefront/prometheus"
)

// ManageImageHandler serves the staff image console
type ManageImageHandler struct {
	manage *service.Manage
}

func NewManageImageHandler(manage *service.Manage) *ManageImageHandler {
	return &ManageImageHandler{manage: manage}
}

type reorderRequest struct {
	ProductID uint   `json:"product_id" form:"product_id"`
	IDs       []uint `json:"ids" form:"ids"`
}

// Upload accepts a multipart request with one or more files under the
// "images" field and creates one ProductImage per file, appended to the end
// of the product's display order.
func (h *ManageImageHandler) Upload(c echo.Context) error {
	log := logger.FromEcho(c)

	productID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}

	form, err := c.MultipartForm()
	if err != nil {
		log.Warn("Invalid multipart form", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid upload"})
	}

	files := form.File["images"]
	if len(files) == 0 {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error": "invalid images: at least one file is required",
			"field": "images",
		})
	}

	created := make([]model.ProductImage, 0, len(files))
	for _, fh := range files {
		src, err := fh.Open()
		if err != nil {
			log.Error("Failed to open uploaded file",
				zap.String("filename", fh.Filename),
				zap.Error(err))
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unreadable upload"})
		}

		image, err := h.manage.AddImage(productID, fh.Filename, src)
		src.Close()
		if err != nil {
			return respondError(c, err, "product")
		}

		prometheus.ImageUploadsCounter.Inc()
		created = append(created, *image)
	}

	log.Info("Product images uploaded",
		zap.Uint("product_id", productID),
		zap.Int("count", len(created)))
	return c.JSON(http.StatusCreated, created)
}

// Delete removes a single image by id
func (h *ManageImageHandler) Delete(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid image id"})
	}

	if err := h.manage.DeleteImage(id); err != nil {
		return respondError(c, err, "image")
	}

	log.Info("Product image deleted", zap.Uint("image_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "image deleted"})
}

// Reorder assigns each image's position from its index in the submitted id
// list. Ids not owned by the product are skipped.
func (h *ManageImageHandler) Reorder(c echo.Context) error {
	log := logger.FromEcho(c)

	var req reorderRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid reorder payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	if err := h.manage.ReorderImages(req.ProductID, req.IDs); err != nil {
		return respondError(c, err, "product")
	}

	log.Info("Product images reordered",
		zap.Uint("product_id", req.ProductID),
		zap.Int("count", len(req.IDs)))
	return c.JSON(http.StatusOK, echo.Map{"message": "images reordered"})
}
