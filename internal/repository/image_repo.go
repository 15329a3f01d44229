package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/inkwellgoods/storefront/internal/model"
	"github.com/inkwellgoods/storefront/prometheus"
)

// ImageRepo persists product images
type ImageRepo struct {
	db *gorm.DB
}

func NewImageRepo(db *gorm.DB) *ImageRepo {
	return &ImageRepo{db: db}
}

// ListByProduct returns a product's images in display order
func (r *ImageRepo) ListByProduct(productID uint) ([]model.ProductImage, error) {
	var images []model.ProductImage
	err := r.db.Where("product_id = ?", productID).Order("position").Find(&images).Error
	return images, err
}

// GetByID returns one image or ErrNotFound
func (r *ImageRepo) GetByID(id uint) (*model.ProductImage, error) {
	var image model.ProductImage
	if err := r.db.First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &image, nil
}

// MaxPosition returns the highest position among a product's images,
// or -1 when it has none
func (r *ImageRepo) MaxPosition(productID uint) (int, error) {
	var max *int
	err := r.db.Model(&model.ProductImage{}).
		Where("product_id = ?", productID).
		Select("MAX(position)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return -1, nil
	}
	return *max, nil
}

// Create inserts a new image row
func (r *ImageRepo) Create(image *model.ProductImage) error {
	defer prometheus.TrackDBOperation("image_create")(time.Now())
	return r.db.Create(image).Error
}

// UpdatePosition sets the display position of one image
func (r *ImageRepo) UpdatePosition(id uint, position int) error {
	return r.db.Model(&model.ProductImage{}).
		Where("id = ?", id).
		Update("position", position).Error
}

// Delete removes one image row
func (r *ImageRepo) Delete(id uint) error {
	defer prometheus.TrackDBOperation("image_delete")(time.Now())

	result := r.db.Delete(&model.ProductImage{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
