package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/inkwellgoods/storefront/internal/model"
	"github.com/inkwellgoods/storefront/prometheus"
)

// CategoryRepo persists categories
type CategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// List returns all categories in the given order
func (r *CategoryRepo) List(sort Sort) ([]model.Category, error) {
	defer prometheus.TrackDBOperation("category_list")(time.Now())

	var categories []model.Category
	if err := r.db.Order(sort.Clause()).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID returns one category or ErrNotFound
func (r *CategoryRepo) GetByID(id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// CountByName counts categories with the given name, excluding one id
func (r *CategoryRepo) CountByName(name string, excludeID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Category{}).
		Where("name = ? AND id != ?", name, excludeID).
		Count(&count).Error
	return count, err
}

// CountBySlug counts categories with the given slug, excluding one id
func (r *CategoryRepo) CountBySlug(slug string, excludeID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Category{}).
		Where("slug = ? AND id != ?", slug, excludeID).
		Count(&count).Error
	return count, err
}

// Create inserts a new category
func (r *CategoryRepo) Create(category *model.Category) error {
	defer prometheus.TrackDBOperation("category_create")(time.Now())
	return r.db.Create(category).Error
}

// Update saves all fields of an existing category
func (r *CategoryRepo) Update(category *model.Category) error {
	defer prometheus.TrackDBOperation("category_update")(time.Now())
	return r.db.Save(category).Error
}

// Delete removes a category. Owned products (and their images and variants)
// go with it via the FK cascade.
func (r *CategoryRepo) Delete(id uint) error {
	defer prometheus.TrackDBOperation("category_delete")(time.Now())

	result := r.db.Delete(&model.Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
