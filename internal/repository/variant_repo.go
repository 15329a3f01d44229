package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/inkwellgoods/storefront/internal/model"
	"github.com/inkwellgoods/storefront/prometheus"
)

// VariantRepo persists product variants
type VariantRepo struct {
	db *gorm.DB
}

func NewVariantRepo(db *gorm.DB) *VariantRepo {
	return &VariantRepo{db: db}
}

// ListByProduct returns a product's variants
func (r *VariantRepo) ListByProduct(productID uint) ([]model.ProductVariant, error) {
	var variants []model.ProductVariant
	err := r.db.Where("product_id = ?", productID).Order("id").Find(&variants).Error
	return variants, err
}

// GetByID returns one variant or ErrNotFound
func (r *VariantRepo) GetByID(id uint) (*model.ProductVariant, error) {
	var variant model.ProductVariant
	if err := r.db.First(&variant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &variant, nil
}

// Create inserts a new variant
func (r *VariantRepo) Create(variant *model.ProductVariant) error {
	defer prometheus.TrackDBOperation("variant_create")(time.Now())
	return r.db.Create(variant).Error
}

// Update saves all fields of an existing variant
func (r *VariantRepo) Update(variant *model.ProductVariant) error {
	defer prometheus.TrackDBOperation("variant_update")(time.Now())
	return r.db.Save(variant).Error
}

// Delete removes one variant
func (r *VariantRepo) Delete(id uint) error {
	defer prometheus.TrackDBOperation("variant_delete")(time.Now())

	result := r.db.Delete(&model.ProductVariant{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
