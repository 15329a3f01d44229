package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/inkwellgoods/storefront/internal/model"
	"github.com/inkwellgoods/storefront/internal/repository"
	"github.com/inkwellgoods/storefront/internal/util"
)

// Manage implements the staff-facing management console operations over
// products, categories, images and variants.
type Manage struct {
	products   ProductStore
	categories CategoryStore
	images     ImageStore
	variants   VariantStore
	blobs      BlobStore
}

func NewManage(products ProductStore, categories CategoryStore, images ImageStore, variants VariantStore, blobs BlobStore) *Manage {
	return &Manage{
		products:   products,
		categories: categories,
		images:     images,
		variants:   variants,
		blobs:      blobs,
	}
}

// ProductInput carries the product form fields. Price arrives as the raw
// form string and is validated here.
type ProductInput struct {
	Title       string `json:"title" form:"title"`
	Slug        string `json:"slug" form:"slug"`
	CategoryID  uint   `json:"category_id" form:"category_id"`
	ProductType string `json:"product_type" form:"product_type"`
	Description string `json:"description" form:"description"`
	Price       string `json:"price" form:"price"`
	Stock       int    `json:"stock" form:"stock"`
	Featured    bool   `json:"featured" form:"featured"`
}

// ListProducts returns all products for the console, newest first
func (s *Manage) ListProducts() ([]model.Product, error) {
	return s.products.List(repository.CreatedDesc)
}

// GetProduct returns one product by id
func (s *Manage) GetProduct(id uint) (*model.Product, error) {
	return s.products.GetByID(id)
}

// CreateProduct validates the input and inserts a new product. The slug is
// derived from the title when absent, exactly once, and suffixed with a
// counter until unique so creation never fails on a duplicate title.
func (s *Manage) CreateProduct(in ProductInput) (*model.Product, error) {
	price, err := s.validateProduct(in)
	if err != nil {
		return nil, err
	}

	base := in.Slug
	if base == "" {
		base = util.Slugify(in.Title)
	} else {
		base = util.Slugify(base)
	}
	if base == "" {
		return nil, invalid("title", "cannot be reduced to a slug")
	}

	slug, err := s.uniqueProductSlug(base, 0)
	if err != nil {
		return nil, err
	}

	product := &model.Product{
		Title:       in.Title,
		Slug:        slug,
		CategoryID:  in.CategoryID,
		ProductType: in.ProductType,
		Description: in.Description,
		Price:       price,
		Stock:       in.Stock,
		Featured:    in.Featured,
	}
	if err := s.products.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct replaces a product's form fields. The slug is never
// rewritten after first save.
func (s *Manage) UpdateProduct(id uint, in ProductInput) (*model.Product, error) {
	price, err := s.validateProduct(in)
	if err != nil {
		return nil, err
	}

	product, err := s.products.GetByID(id)
	if err != nil {
		return nil, err
	}

	product.Title = in.Title
	product.CategoryID = in.CategoryID
	product.ProductType = in.ProductType
	product.Description = in.Description
	product.Price = price
	product.Stock = in.Stock
	product.Featured = in.Featured

	if err := s.products.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product; its images and variants cascade
func (s *Manage) DeleteProduct(id uint) error {
	return s.products.Delete(id)
}

// BulkDeleteProducts removes every product matching the given ids in one
// operation. Ids with no match are silently ignored.
func (s *Manage) BulkDeleteProducts(ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return s.products.DeleteMany(ids)
}

// DuplicateProduct clones a product's fields into a new row. The clone's
// slug is the original's with "-copy" appended, counter-suffixed when a
// previous duplicate already took it.
func (s *Manage) DuplicateProduct(id uint) (*model.Product, error) {
	original, err := s.products.GetByID(id)
	if err != nil {
		return nil, err
	}

	slug, err := s.uniqueProductSlug(original.Slug+"-copy", 0)
	if err != nil {
		return nil, err
	}

	clone := &model.Product{
		Title:       original.Title,
		Slug:        slug,
		CategoryID:  original.CategoryID,
		ProductType: original.ProductType,
		Description: original.Description,
		Price:       original.Price,
		Stock:       original.Stock,
		Featured:    original.Featured,
	}
	if err := s.products.Create(clone); err != nil {
		return nil, err
	}
	return clone, nil
}

func (s *Manage) validateProduct(in ProductInput) (decimal.Decimal, error) {
	if in.Title == "" {
		return decimal.Zero, invalid("title", "is required")
	}
	if in.CategoryID == 0 {
		return decimal.Zero, invalid("category_id", "is required")
	}
	if _, err := s.categories.GetByID(in.CategoryID); err != nil {
		return decimal.Zero, invalid("category_id", "no such category")
	}
	if !model.ValidProductType(in.ProductType) {
		return decimal.Zero, invalid("product_type", "is not a known product type")
	}
	if in.Price == "" {
		return decimal.Zero, invalid("price", "is required")
	}
	price, err := decimal.NewFromString(in.Price)
	if err != nil {
		return decimal.Zero, invalid("price", "must be a decimal number")
	}
	if price.IsNegative() {
		return decimal.Zero, invalid("price", "cannot be negative")
	}
	if in.Stock < 0 {
		return decimal.Zero, invalid("stock", "cannot be negative")
	}
	return price, nil
}

// uniqueProductSlug appends a numeric counter to base until no other product
// holds the slug
func (s *Manage) uniqueProductSlug(base string, excludeID uint) (string, error) {
	slug := base
	for n := 2; ; n++ {
		count, err := s.products.CountBySlug(slug, excludeID)
		if err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, n)
	}
}
