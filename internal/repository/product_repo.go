package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/inkwellgoods/storefront/internal/model"
	"github.com/inkwellgoods/storefront/prometheus"
)

// ProductRepo persists products
type ProductRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// List returns all products in the given order
func (r *ProductRepo) List(sort Sort) ([]model.Product, error) {
	defer prometheus.TrackDBOperation("product_list")(time.Now())

	var products []model.Product
	if err := r.db.Order(sort.Clause()).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListFeatured returns featured products in the given order
func (r *ProductRepo) ListFeatured(sort Sort) ([]model.Product, error) {
	defer prometheus.TrackDBOperation("product_list_featured")(time.Now())

	var products []model.Product
	if err := r.db.Where("featured = ?", true).Order(sort.Clause()).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID returns one product or ErrNotFound
func (r *ProductRepo) GetByID(id uint) (*model.Product, error) {
	var product model.Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// GetBySlug returns one product with its images (position order) and
// variants preloaded, or ErrNotFound
func (r *ProductRepo) GetBySlug(slug string) (*model.Product, error) {
	defer prometheus.TrackDBOperation("product_detail")(time.Now())

	var product model.Product
	err := r.db.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Preload("Variants").
		Where("slug = ?", slug).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// CountBySlug counts products with the given slug, excluding one id
func (r *ProductRepo) CountBySlug(slug string, excludeID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).
		Where("slug = ? AND id != ?", slug, excludeID).
		Count(&count).Error
	return count, err
}

// Create inserts a new product
func (r *ProductRepo) Create(product *model.Product) error {
	defer prometheus.TrackDBOperation("product_create")(time.Now())
	return r.db.Create(product).Error
}

// Update saves all fields of an existing product
func (r *ProductRepo) Update(product *model.Product) error {
	defer prometheus.TrackDBOperation("product_update")(time.Now())
	return r.db.Save(product).Error
}

// Delete removes a product and, via the FK cascade, its images and variants
func (r *ProductRepo) Delete(id uint) error {
	defer prometheus.TrackDBOperation("product_delete")(time.Now())

	result := r.db.Delete(&model.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMany removes all products matching the given ids in one statement.
// Unmatched ids are silently ignored. Returns the number of rows removed.
func (r *ProductRepo) DeleteMany(ids []uint) (int64, error) {
	defer prometheus.TrackDBOperation("product_bulk_delete")(time.Now())

	result := r.db.Delete(&model.Product{}, ids)
	return result.RowsAffected, result.Error
}
