package service

import (
	"io"

	"github.com/inkwellgoods/storefront/internal/model"
	"github.com/inkwellgoods/storefront/internal/repository"
)

// Storage contracts consumed by the services. The gorm-backed
// implementations live in internal/repository.

type CategoryStore interface {
	List(sort repository.Sort) ([]model.Category, error)
	GetByID(id uint) (*model.Category, error)
	CountByName(name string, excludeID uint) (int64, error)
	CountBySlug(slug string, excludeID uint) (int64, error)
	Create(category *model.Category) error
	Update(category *model.Category) error
	Delete(id uint) error
}

type ProductStore interface {
	List(sort repository.Sort) ([]model.Product, error)
	ListFeatured(sort repository.Sort) ([]model.Product, error)
	GetByID(id uint) (*model.Product, error)
	GetBySlug(slug string) (*model.Product, error)
	CountBySlug(slug string, excludeID uint) (int64, error)
	Create(product *model.Product) error
	Update(product *model.Product) error
	Delete(id uint) error
	DeleteMany(ids []uint) (int64, error)
}

type ImageStore interface {
	ListByProduct(productID uint) ([]model.ProductImage, error)
	GetByID(id uint) (*model.ProductImage, error)
	MaxPosition(productID uint) (int, error)
	Create(image *model.ProductImage) error
	UpdatePosition(id uint, position int) error
	Delete(id uint) error
}

type VariantStore interface {
	ListByProduct(productID uint) ([]model.ProductVariant, error)
	GetByID(id uint) (*model.ProductVariant, error)
	Create(variant *model.ProductVariant) error
	Update(variant *model.ProductVariant) error
	Delete(id uint) error
}

type CartStore interface {
	GetByUser(userID uint) (*model.Cart, error)
	Create(cart *model.Cart) error
	ListItems(cartID uint) ([]model.CartItem, error)
	GetItem(id uint) (*model.CartItem, error)
	CreateItem(item *model.CartItem) error
	UpdateItemQuantity(id uint, quantity int) error
	DeleteItem(id uint) error
}

// BlobStore persists uploaded image binaries and returns retrievable references
type BlobStore interface {
	Save(filename string, r io.Reader) (string, error)
	Remove(ref string) error
}
