package service

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/inkwellgoods/storefront/internal/model"
	"github.com/inkwellgoods/storefront/internal/repository"
)

// In-memory stores backing the service tests. Cascading deletion is
// emulated the way the database FK constraints behave.

type fakeCategoryStore struct {
	items    map[uint]model.Category
	nextID   uint
	products *fakeProductStore
}

func (f *fakeCategoryStore) List(s repository.Sort) ([]model.Category, error) {
	out := make([]model.Category, 0, len(f.items))
	for _, c := range f.items {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeCategoryStore) GetByID(id uint) (*model.Category, error) {
	c, ok := f.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (f *fakeCategoryStore) CountByName(name string, excludeID uint) (int64, error) {
	var n int64
	for _, c := range f.items {
		if c.Name == name && c.ID != excludeID {
			n++
		}
	}
	return n, nil
}

func (f *fakeCategoryStore) CountBySlug(slug string, excludeID uint) (int64, error) {
	var n int64
	for _, c := range f.items {
		if c.Slug == slug && c.ID != excludeID {
			n++
		}
	}
	return n, nil
}

func (f *fakeCategoryStore) Create(c *model.Category) error {
	f.nextID++
	c.ID = f.nextID
	f.items[c.ID] = *c
	return nil
}

func (f *fakeCategoryStore) Update(c *model.Category) error {
	if _, ok := f.items[c.ID]; !ok {
		return ErrNotFound
	}
	f.items[c.ID] = *c
	return nil
}

func (f *fakeCategoryStore) Delete(id uint) error {
	if _, ok := f.items[id]; !ok {
		return ErrNotFound
	}
	delete(f.items, id)
	f.products.deleteByCategory(id)
	return nil
}

type fakeProductStore struct {
	items    map[uint]model.Product
	nextID   uint
	clock    time.Time
	images   *fakeImageStore
	variants *fakeVariantStore
}

func (f *fakeProductStore) List(s repository.Sort) ([]model.Product, error) {
	out := make([]model.Product, 0, len(f.items))
	for _, p := range f.items {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if s.Desc {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeProductStore) ListFeatured(s repository.Sort) ([]model.Product, error) {
	all, _ := f.List(s)
	out := make([]model.Product, 0)
	for _, p := range all {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductStore) GetByID(id uint) (*model.Product, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (f *fakeProductStore) GetBySlug(slug string) (*model.Product, error) {
	for _, p := range f.items {
		if p.Slug == slug {
			p.Images, _ = f.images.ListByProduct(p.ID)
			p.Variants, _ = f.variants.ListByProduct(p.ID)
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeProductStore) CountBySlug(slug string, excludeID uint) (int64, error) {
	var n int64
	for _, p := range f.items {
		if p.Slug == slug && p.ID != excludeID {
			n++
		}
	}
	return n, nil
}

func (f *fakeProductStore) Create(p *model.Product) error {
	f.nextID++
	p.ID = f.nextID
	f.clock = f.clock.Add(time.Second)
	p.CreatedAt = f.clock
	f.items[p.ID] = *p
	return nil
}

func (f *fakeProductStore) Update(p *model.Product) error {
	if _, ok := f.items[p.ID]; !ok {
		return ErrNotFound
	}
	f.items[p.ID] = *p
	return nil
}

func (f *fakeProductStore) Delete(id uint) error {
	if _, ok := f.items[id]; !ok {
		return ErrNotFound
	}
	delete(f.items, id)
	f.images.deleteByProduct(id)
	f.variants.deleteByProduct(id)
	return nil
}

func (f *fakeProductStore) DeleteMany(ids []uint) (int64, error) {
	var n int64
	for _, id := range ids {
		if f.Delete(id) == nil {
			n++
		}
	}
	return n, nil
}

func (f *fakeProductStore) deleteByCategory(categoryID uint) {
	for id, p := range f.items {
		if p.CategoryID == categoryID {
			f.Delete(id)
		}
	}
}

type fakeImageStore struct {
	items  map[uint]model.ProductImage
	nextID uint
}

func (f *fakeImageStore) ListByProduct(productID uint) ([]model.ProductImage, error) {
	out := make([]model.ProductImage, 0)
	for _, img := range f.items {
		if img.ProductID == productID {
			out = append(out, img)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeImageStore) GetByID(id uint) (*model.ProductImage, error) {
	img, ok := f.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &img, nil
}

func (f *fakeImageStore) MaxPosition(productID uint) (int, error) {
	max := -1
	for _, img := range f.items {
		if img.ProductID == productID && img.Position > max {
			max = img.Position
		}
	}
	return max, nil
}

func (f *fakeImageStore) Create(img *model.ProductImage) error {
	f.nextID++
	img.ID = f.nextID
	f.items[img.ID] = *img
	return nil
}

func (f *fakeImageStore) UpdatePosition(id uint, position int) error {
	img, ok := f.items[id]
	if !ok {
		return ErrNotFound
	}
	img.Position = position
	f.items[id] = img
	return nil
}

func (f *fakeImageStore) Delete(id uint) error {
	if _, ok := f.items[id]; !ok {
		return ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeImageStore) deleteByProduct(productID uint) {
	for id, img := range f.items {
		if img.ProductID == productID {
			delete(f.items, id)
		}
	}
}

type fakeVariantStore struct {
	items  map[uint]model.ProductVariant
	nextID uint
}

func (f *fakeVariantStore) ListByProduct(productID uint) ([]model.ProductVariant, error) {
	out := make([]model.ProductVariant, 0)
	for _, v := range f.items {
		if v.ProductID == productID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeVariantStore) GetByID(id uint) (*model.ProductVariant, error) {
	v, ok := f.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &v, nil
}

func (f *fakeVariantStore) Create(v *model.ProductVariant) error {
	f.nextID++
	v.ID = f.nextID
	f.items[v.ID] = *v
	return nil
}

func (f *fakeVariantStore) Update(v *model.ProductVariant) error {
	if _, ok := f.items[v.ID]; !ok {
		return ErrNotFound
	}
	f.items[v.ID] = *v
	return nil
}

func (f *fakeVariantStore) Delete(id uint) error {
	if _, ok := f.items[id]; !ok {
		return ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeVariantStore) deleteByProduct(productID uint) {
	for id, v := range f.items {
		if v.ProductID == productID {
			delete(f.items, id)
		}
	}
}

type fakeCartStore struct {
	carts    map[uint]model.Cart
	items    map[uint]model.CartItem
	nextCart uint
	nextItem uint
	products *fakeProductStore
	variants *fakeVariantStore
}

func (f *fakeCartStore) GetByUser(userID uint) (*model.Cart, error) {
	for _, cart := range f.carts {
		if cart.UserID == userID {
			return &cart, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeCartStore) Create(cart *model.Cart) error {
	f.nextCart++
	cart.ID = f.nextCart
	f.carts[cart.ID] = *cart
	return nil
}

func (f *fakeCartStore) hydrate(item model.CartItem) model.CartItem {
	if p, err := f.products.GetByID(item.ProductID); err == nil {
		item.Product = *p
	}
	if item.VariantID != nil {
		if v, err := f.variants.GetByID(*item.VariantID); err == nil {
			item.Variant = v
		}
	}
	return item
}

func (f *fakeCartStore) ListItems(cartID uint) ([]model.CartItem, error) {
	out := make([]model.CartItem, 0)
	for _, item := range f.items {
		if item.CartID == cartID {
			out = append(out, f.hydrate(item))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCartStore) GetItem(id uint) (*model.CartItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	item = f.hydrate(item)
	return &item, nil
}

func (f *fakeCartStore) CreateItem(item *model.CartItem) error {
	f.nextItem++
	item.ID = f.nextItem
	f.items[item.ID] = *item
	return nil
}

func (f *fakeCartStore) UpdateItemQuantity(id uint, quantity int) error {
	item, ok := f.items[id]
	if !ok {
		return ErrNotFound
	}
	item.Quantity = quantity
	f.items[id] = item
	return nil
}

func (f *fakeCartStore) DeleteItem(id uint) error {
	if _, ok := f.items[id]; !ok {
		return ErrNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeBlobStore struct {
	saved   map[string][]byte
	removed []string
	nextRef int
}

func (f *fakeBlobStore) Save(filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return "", err
	}
	f.nextRef++
	ref := fmt.Sprintf("blob-%d-%s", f.nextRef, filename)
	f.saved[ref] = buf.Bytes()
	return ref, nil
}

func (f *fakeBlobStore) Remove(ref string) error {
	delete(f.saved, ref)
	f.removed = append(f.removed, ref)
	return nil
}

// fixture wires the fakes together with the cascade links
type fixture struct {
	categories *fakeCategoryStore
	products   *fakeProductStore
	images     *fakeImageStore
	variants   *fakeVariantStore
	carts      *fakeCartStore
	blobs      *fakeBlobStore
}

func newFixture() *fixture {
	images := &fakeImageStore{items: map[uint]model.ProductImage{}}
	variants := &fakeVariantStore{items: map[uint]model.ProductVariant{}}
	products := &fakeProductStore{
		items:    map[uint]model.Product{},
		clock:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		images:   images,
		variants: variants,
	}
	categories := &fakeCategoryStore{items: map[uint]model.Category{}, products: products}
	carts := &fakeCartStore{
		carts:    map[uint]model.Cart{},
		items:    map[uint]model.CartItem{},
		products: products,
		variants: variants,
	}
	return &fixture{
		categories: categories,
		products:   products,
		images:     images,
		variants:   variants,
		carts:      carts,
		blobs:      &fakeBlobStore{saved: map[string][]byte{}},
	}
}

func (f *fixture) manage() *Manage {
	return NewManage(f.products, f.categories, f.images, f.variants, f.blobs)
}

func (f *fixture) cartSvc() *Cart {
	return NewCart(f.carts, f.products, f.variants)
}

func (f *fixture) catalogSvc() *Catalog {
	return NewCatalog(f.products, f.categories)
}

// seedCategory creates a category directly in the store
func (f *fixture) seedCategory(name, slug string) model.Category {
	c := model.Category{Name: name, Slug: slug}
	f.categories.Create(&c)
	return c
}
