package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/inkwellgoods/storefront/internal/model"
	"github.com/inkwellgoods/storefront/prometheus"
)

// CartRepo persists carts and cart items
type CartRepo struct {
	db *gorm.DB
}

func NewCartRepo(db *gorm.DB) *CartRepo {
	return &CartRepo{db: db}
}

// GetByUser returns a user's cart or ErrNotFound
func (r *CartRepo) GetByUser(userID uint) (*model.Cart, error) {
	var cart model.Cart
	if err := r.db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cart, nil
}

// Create inserts a new empty cart
func (r *CartRepo) Create(cart *model.Cart) error {
	defer prometheus.TrackDBOperation("cart_create")(time.Now())
	return r.db.Create(cart).Error
}

// ListItems returns a cart's items, oldest line first, with the product and
// variant each line references
func (r *CartRepo) ListItems(cartID uint) ([]model.CartItem, error) {
	defer prometheus.TrackDBOperation("cart_list_items")(time.Now())

	var items []model.CartItem
	err := r.db.
		Preload("Product").
		Preload("Variant").
		Where("cart_id = ?", cartID).
		Order("id").
		Find(&items).Error
	return items, err
}

// GetItem returns one cart item or ErrNotFound
func (r *CartRepo) GetItem(id uint) (*model.CartItem, error) {
	var item model.CartItem
	err := r.db.Preload("Product").Preload("Variant").First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// CreateItem inserts a new cart line
func (r *CartRepo) CreateItem(item *model.CartItem) error {
	defer prometheus.TrackDBOperation("cart_item_create")(time.Now())
	return r.db.Create(item).Error
}

// UpdateItemQuantity sets the quantity of one cart line
func (r *CartRepo) UpdateItemQuantity(id uint, quantity int) error {
	defer prometheus.TrackDBOperation("cart_item_update")(time.Now())
	return r.db.Model(&model.CartItem{}).
		Where("id = ?", id).
		Update("quantity", quantity).Error
}

// DeleteItem removes one cart line
func (r *CartRepo) DeleteItem(id uint) error {
	defer prometheus.TrackDBOperation("cart_item_delete")(time.Now())

	result := r.db.Delete(&model.CartItem{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
