package service

import (
	"github.com/inkwellgoods/storefront/internal/model"
	"github.com/inkwellgoods/storefront/internal/repository"
)

// Catalog is the public read-only view over the product catalog
type Catalog struct {
	products   ProductStore
	categories CategoryStore
}

func NewCatalog(products ProductStore, categories CategoryStore) *Catalog {
	return &Catalog{products: products, categories: categories}
}

// ListProducts returns all products, newest first
func (s *Catalog) ListProducts() ([]model.Product, error) {
	return s.products.List(repository.CreatedDesc)
}

// ListFeatured returns only products flagged as featured, newest first
func (s *Catalog) ListFeatured() ([]model.Product, error) {
	return s.products.ListFeatured(repository.CreatedDesc)
}

// ListCategories returns all categories alphabetically
func (s *Catalog) ListCategories() ([]model.Category, error) {
	return s.categories.List(repository.NameAsc)
}

// GetProductDetail returns one product with its images and variants,
// or ErrNotFound if the slug has no match
func (s *Catalog) GetProductDetail(slug string) (*model.Product, error) {
	return s.products.GetBySlug(slug)
}
