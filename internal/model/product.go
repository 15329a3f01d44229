package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product types available in the shop
const (
	TypeClothing    = "clothing"
	TypeAccessories = "accessories"
	TypeStickers    = "stickers"
	TypeZines       = "zines"
	TypePosters     = "posters"
	TypeOriginalArt = "original_art"
	TypePostcards   = "postcards"
)

// ProductTypes lists the valid product_type values
var ProductTypes = []string{
	TypeClothing,
	TypeAccessories,
	TypeStickers,
	TypeZines,
	TypePosters,
	TypeOriginalArt,
	TypePostcards,
}

// ValidProductType reports whether t is one of the enumerated product types
func ValidProductType(t string) bool {
	for _, pt := range ProductTypes {
		if pt == t {
			return true
		}
	}
	return false
}

// Product is a single catalog entry owned by exactly one category
type Product struct {
	ID          uint             `json:"id" gorm:"primarykey"`
	Title       string           `json:"title" gorm:"type:varchar(255);not null"`
	Slug        string           `json:"slug" gorm:"type:varchar(255);not null;uniqueIndex"`
	CategoryID  uint             `json:"category_id" gorm:"index;not null"`
	ProductType string           `json:"product_type" gorm:"type:varchar(50);not null"`
	Description string           `json:"description" gorm:"type:text"`
	Price       decimal.Decimal  `json:"price" gorm:"type:decimal(9,2);not null"`
	Stock       int              `json:"stock" gorm:"not null;default:10"`
	Featured    bool             `json:"featured" gorm:"not null;default:false"`
	Images      []ProductImage   `json:"images,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Variants    []ProductVariant `json:"variants,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ProductImage is an uploaded image owned by one product; Position drives
// display ordering on the detail page
type ProductImage struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	ProductID uint      `json:"product_id" gorm:"index;not null"`
	Path      string    `json:"path" gorm:"type:varchar(255);not null"`
	Position  int       `json:"position" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductVariant is a purchasable option of a product (e.g. size or color)
// with its own identity for cart reference
type ProductVariant struct {
	ID         uint            `json:"id" gorm:"primarykey"`
	ProductID  uint            `json:"product_id" gorm:"index;not null"`
	Name       string          `json:"name" gorm:"type:varchar(100);not null"`
	Value      string          `json:"value" gorm:"type:varchar(100);not null"`
	PriceDelta decimal.Decimal `json:"price_delta" gorm:"type:decimal(9,2);not null;default:0"`
	Stock      int             `json:"stock" gorm:"not null;default:0"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
