package service

import (
	"errors"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/inkwellgoods/storefront/internal/model"
)

// Cart implements the shopping cart operations. Every operation resolves the
// caller's cart first, creating an empty one lazily on first access.
type Cart struct {
	carts    CartStore
	products ProductStore
	variants VariantStore
}

func NewCart(carts CartStore, products ProductStore, variants VariantStore) *Cart {
	return &Cart{carts: carts, products: products, variants: variants}
}

// CartView is a cart with its lines and the derived grand total
type CartView struct {
	Cart  *model.Cart      `json:"cart"`
	Items []model.CartItem `json:"items"`
	Total decimal.Decimal  `json:"total"`
}

// CheckoutSummary is the placeholder handed to the (future) payment boundary
type CheckoutSummary struct {
	Items []model.CartItem `json:"items"`
	Total decimal.Decimal  `json:"total"`
}

// GetOrCreateCart returns the user's cart, creating an empty one on first
// access. Idempotent.
func (s *Cart) GetOrCreateCart(userID uint) (*model.Cart, error) {
	cart, err := s.carts.GetByUser(userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	cart = &model.Cart{UserID: userID}
	if err := s.carts.Create(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// View returns the user's cart lines and total
func (s *Cart) View(userID uint) (*CartView, error) {
	cart, err := s.GetOrCreateCart(userID)
	if err != nil {
		return nil, err
	}

	items, err := s.carts.ListItems(cart.ID)
	if err != nil {
		return nil, err
	}

	return &CartView{Cart: cart, Items: items, Total: ComputeTotal(items)}, nil
}

// AddItem appends a new line with quantity 1 for the given product (and
// optional variant). Repeated adds of the same product produce separate
// lines; existing lines are never merged.
func (s *Cart) AddItem(userID, productID uint, variantID *uint) (*model.CartItem, error) {
	product, err := s.products.GetByID(productID)
	if err != nil {
		return nil, err
	}

	if variantID != nil {
		variant, err := s.variants.GetByID(*variantID)
		if err != nil {
			return nil, err
		}
		if variant.ProductID != product.ID {
			return nil, ErrNotFound
		}
	}

	cart, err := s.GetOrCreateCart(userID)
	if err != nil {
		return nil, err
	}

	item := &model.CartItem{
		CartID:    cart.ID,
		ProductID: product.ID,
		VariantID: variantID,
		Quantity:  1,
	}
	if err := s.carts.CreateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItemQuantity sets the quantity of one of the caller's cart lines.
// A quantity of zero or less deletes the line instead of persisting an
// invalid state. Non-numeric input is rejected and the line is left
// unchanged. Items outside the caller's cart report ErrNotFound.
func (s *Cart) UpdateItemQuantity(userID, itemID uint, quantity string) error {
	qty, err := strconv.Atoi(quantity)
	if err != nil {
		return invalid("quantity", "must be a whole number")
	}

	item, err := s.ownedItem(userID, itemID)
	if err != nil {
		return err
	}

	if qty <= 0 {
		return s.carts.DeleteItem(item.ID)
	}
	return s.carts.UpdateItemQuantity(item.ID, qty)
}

// RemoveItem deletes one of the caller's cart lines
func (s *Cart) RemoveItem(userID, itemID uint) error {
	item, err := s.ownedItem(userID, itemID)
	if err != nil {
		return err
	}
	return s.carts.DeleteItem(item.ID)
}

// Checkout returns the summary handed to the payment boundary. Fails with
// ErrEmptyCart when the cart has no items; never creates an order record.
func (s *Cart) Checkout(userID uint) (*CheckoutSummary, error) {
	cart, err := s.GetOrCreateCart(userID)
	if err != nil {
		return nil, err
	}

	items, err := s.carts.ListItems(cart.ID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	return &CheckoutSummary{Items: items, Total: ComputeTotal(items)}, nil
}

// ownedItem loads a cart item and verifies it belongs to the caller's cart.
// A foreign item is indistinguishable from a missing one.
func (s *Cart) ownedItem(userID, itemID uint) (*model.CartItem, error) {
	cart, err := s.GetOrCreateCart(userID)
	if err != nil {
		return nil, err
	}

	item, err := s.carts.GetItem(itemID)
	if err != nil {
		return nil, err
	}
	if item.CartID != cart.ID {
		return nil, ErrNotFound
	}
	return item, nil
}

// UnitPrice is an item's product price plus its variant's price delta
func UnitPrice(item *model.CartItem) decimal.Decimal {
	price := item.Product.Price
	if item.Variant != nil {
		price = price.Add(item.Variant.PriceDelta)
	}
	return price
}

// LineTotal is an item's unit price times its quantity
func LineTotal(item *model.CartItem) decimal.Decimal {
	return UnitPrice(item).Mul(decimal.NewFromInt(int64(item.Quantity)))
}

// ComputeTotal sums the line totals of all items
func ComputeTotal(items []model.CartItem) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		total = total.Add(LineTotal(&items[i]))
	}
	return total
}
