package service

import (
	"github.com/shopspring/decimal"

	"github.com/inkwellgoods/storefront/internal/model"
)

// VariantInput carries the variant form fields. PriceDelta arrives as the
// raw form string; empty means no surcharge.
type VariantInput struct {
	Name       string `json:"name" form:"name"`
	Value      string `json:"value" form:"value"`
	PriceDelta string `json:"price_delta" form:"price_delta"`
	Stock      int    `json:"stock" form:"stock"`
}

// ListVariants returns a product's variants
func (s *Manage) ListVariants(productID uint) ([]model.ProductVariant, error) {
	return s.variants.ListByProduct(productID)
}

// AddVariant attaches a new purchasable option to a product
func (s *Manage) AddVariant(productID uint, in VariantInput) (*model.ProductVariant, error) {
	if _, err := s.products.GetByID(productID); err != nil {
		return nil, err
	}

	delta, err := validateVariant(in)
	if err != nil {
		return nil, err
	}

	variant := &model.ProductVariant{
		ProductID:  productID,
		Name:       in.Name,
		Value:      in.Value,
		PriceDelta: delta,
		Stock:      in.Stock,
	}
	if err := s.variants.Create(variant); err != nil {
		return nil, err
	}
	return variant, nil
}

// UpdateVariant replaces a variant's fields. The variant is addressed by its
// own id; the parent product is navigation context only.
func (s *Manage) UpdateVariant(id uint, in VariantInput) (*model.ProductVariant, error) {
	variant, err := s.variants.GetByID(id)
	if err != nil {
		return nil, err
	}

	delta, err := validateVariant(in)
	if err != nil {
		return nil, err
	}

	variant.Name = in.Name
	variant.Value = in.Value
	variant.PriceDelta = delta
	variant.Stock = in.Stock

	if err := s.variants.Update(variant); err != nil {
		return nil, err
	}
	return variant, nil
}

// DeleteVariant removes one variant
func (s *Manage) DeleteVariant(id uint) error {
	return s.variants.Delete(id)
}

func validateVariant(in VariantInput) (decimal.Decimal, error) {
	if in.Name == "" {
		return decimal.Zero, invalid("name", "is required")
	}
	if in.Value == "" {
		return decimal.Zero, invalid("value", "is required")
	}
	if in.Stock < 0 {
		return decimal.Zero, invalid("stock", "cannot be negative")
	}
	if in.PriceDelta == "" {
		return decimal.Zero, nil
	}
	delta, err := decimal.NewFromString(in.PriceDelta)
	if err != nil {
		return decimal.Zero, invalid("price_delta", "must be a decimal number")
	}
	return delta, nil
}
