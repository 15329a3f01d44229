package model

import (
	"time"
)

// Cart holds a user's pending purchases; exactly one per user,
// created lazily on first access
type Cart struct {
	ID        uint       `json:"id" gorm:"primarykey"`
	UserID    uint       `json:"user_id" gorm:"uniqueIndex;not null"`
	Items     []CartItem `json:"items,omitempty" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem is one line in a cart. Repeated adds of the same product create
// separate lines rather than bumping quantity.
type CartItem struct {
	ID        uint            `json:"id" gorm:"primarykey"`
	CartID    uint            `json:"cart_id" gorm:"index;not null"`
	ProductID uint            `json:"product_id" gorm:"index;not null"`
	VariantID *uint           `json:"variant_id,omitempty" gorm:"index"`
	Quantity  int             `json:"quantity" gorm:"not null"`
	Product   Product         `json:"product" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Variant   *ProductVariant `json:"variant,omitempty" gorm:"foreignKey:VariantID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
