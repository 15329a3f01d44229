package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwellgoods/storefront/internal/model"
	"github.com/inkwellgoods/storefront/internal/repository"
	"github.com/inkwellgoods/storefront/internal/service"
	"github.com/inkwellgoods/storefront/pkg/config"
	"github.com/inkwellgoods/storefront/prometheus"
)

func TestMain(m *testing.M) {
	// Handlers touch the metric vecs; register them once for the binary.
	prometheus.InitMetrics(&config.Config{Metrics: config.MetricsConfig{Prefix: "handlertest"}})
	os.Exit(m.Run())
}

// Stub stores: just enough behavior for the boundary cases under test.

type stubProductStore struct {
	bySlug map[string]model.Product
}

func (s *stubProductStore) List(repository.Sort) ([]model.Product, error) { return nil, nil }
func (s *stubProductStore) ListFeatured(repository.Sort) ([]model.Product, error) { return nil, nil }
func (s *stubProductStore) GetByID(id uint) (*model.Product, error) {
	return nil, service.ErrNotFound
}
func (s *stubProductStore) GetBySlug(slug string) (*model.Product, error) {
	if p, ok := s.bySlug[slug]; ok {
		return &p, nil
	}
	return nil, service.ErrNotFound
}
func (s *stubProductStore) CountBySlug(string, uint) (int64, error) { return 0, nil }
func (s *stubProductStore) Create(*model.Product) error             { return nil }
func (s *stubProductStore) Update(*model.Product) error             { return nil }
func (s *stubProductStore) Delete(uint) error                       { return service.ErrNotFound }
func (s *stubProductStore) DeleteMany([]uint) (int64, error)        { return 0, nil }

type stubCategoryStore struct{}

func (s *stubCategoryStore) List(repository.Sort) ([]model.Category, error) { return nil, nil }
func (s *stubCategoryStore) GetByID(uint) (*model.Category, error) {
	return nil, service.ErrNotFound
}
func (s *stubCategoryStore) CountByName(string, uint) (int64, error) { return 0, nil }
func (s *stubCategoryStore) CountBySlug(string, uint) (int64, error) { return 0, nil }
func (s *stubCategoryStore) Create(*model.Category) error            { return nil }
func (s *stubCategoryStore) Update(*model.Category) error            { return nil }
func (s *stubCategoryStore) Delete(uint) error                       { return service.ErrNotFound }

type stubVariantStore struct{}

func (s *stubVariantStore) ListByProduct(uint) ([]model.ProductVariant, error) { return nil, nil }
func (s *stubVariantStore) GetByID(uint) (*model.ProductVariant, error) {
	return nil, service.ErrNotFound
}
func (s *stubVariantStore) Create(*model.ProductVariant) error { return nil }
func (s *stubVariantStore) Update(*model.ProductVariant) error { return nil }
func (s *stubVariantStore) Delete(uint) error                  { return service.ErrNotFound }

type stubCartStore struct {
	cart  model.Cart
	items []model.CartItem
}

func (s *stubCartStore) GetByUser(userID uint) (*model.Cart, error) {
	cart := s.cart
	cart.UserID = userID
	return &cart, nil
}
func (s *stubCartStore) Create(*model.Cart) error { return nil }
func (s *stubCartStore) ListItems(uint) ([]model.CartItem, error) {
	return s.items, nil
}
func (s *stubCartStore) GetItem(id uint) (*model.CartItem, error) {
	for _, item := range s.items {
		if item.ID == id {
			return &item, nil
		}
	}
	return nil, service.ErrNotFound
}
func (s *stubCartStore) CreateItem(*model.CartItem) error   { return nil }
func (s *stubCartStore) UpdateItemQuantity(uint, int) error { return nil }
func (s *stubCartStore) DeleteItem(uint) error              { return nil }

func newContext(t *testing.T, method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func authed(c echo.Context, userID uint) {
	c.Set("user_id", userID)
	c.Set("is_staff", false)
}

func TestProductDetailNotFound(t *testing.T) {
	catalog := service.NewCatalog(&stubProductStore{}, &stubCategoryStore{})
	h := NewCatalogHandler(catalog)

	c, rec := newContext(t, http.MethodGet, "/missing/", "")
	c.SetParamNames("slug")
	c.SetParamValues("missing")

	require.NoError(t, h.ProductDetail(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "product not found")
}

func TestProductDetailFound(t *testing.T) {
	products := &stubProductStore{bySlug: map[string]model.Product{
		"issue-one": {ID: 1, Title: "Issue One", Slug: "issue-one"},
	}}
	h := NewCatalogHandler(service.NewCatalog(products, &stubCategoryStore{}))

	c, rec := newContext(t, http.MethodGet, "/issue-one/", "")
	c.SetParamNames("slug")
	c.SetParamValues("issue-one")

	require.NoError(t, h.ProductDetail(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"slug":"issue-one"`)
}

func TestUpdateItemNonNumericQuantity(t *testing.T) {
	carts := &stubCartStore{cart: model.Cart{ID: 1}}
	h := NewCartHandler(service.NewCart(carts, &stubProductStore{}, &stubVariantStore{}))

	c, rec := newContext(t, http.MethodPost, "/cart/item/5/update/", `{"quantity":"lots"}`)
	c.SetParamNames("itemId")
	c.SetParamValues("5")
	authed(c, 1)

	require.NoError(t, h.UpdateItem(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"quantity"`)
}

func TestUpdateItemRequiresIdentity(t *testing.T) {
	carts := &stubCartStore{cart: model.Cart{ID: 1}}
	h := NewCartHandler(service.NewCart(carts, &stubProductStore{}, &stubVariantStore{}))

	c, rec := newContext(t, http.MethodPost, "/cart/item/5/update/", `{"quantity":"2"}`)
	c.SetParamNames("itemId")
	c.SetParamValues("5")

	require.NoError(t, h.UpdateItem(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCheckoutEmptyCart(t *testing.T) {
	carts := &stubCartStore{cart: model.Cart{ID: 1}}
	h := NewCartHandler(service.NewCart(carts, &stubProductStore{}, &stubVariantStore{}))

	c, rec := newContext(t, http.MethodPost, "/cart/checkout/", "")
	authed(c, 1)

	require.NoError(t, h.Checkout(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "cart is empty")
}

func TestCheckoutWithItems(t *testing.T) {
	price := decimal.RequireFromString("5.00")
	carts := &stubCartStore{
		cart: model.Cart{ID: 1},
		items: []model.CartItem{
			{ID: 1, CartID: 1, Quantity: 3, Product: model.Product{ID: 1, Price: price}},
			{ID: 2, CartID: 1, Quantity: 1, Product: model.Product{ID: 1, Price: price}},
		},
	}
	h := NewCartHandler(service.NewCart(carts, &stubProductStore{}, &stubVariantStore{}))

	c, rec := newContext(t, http.MethodPost, "/cart/checkout/", "")
	authed(c, 1)

	require.NoError(t, h.Checkout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":"20"`)
}

func TestCreateProductValidationSurfacesField(t *testing.T) {
	manage := service.NewManage(&stubProductStore{}, &stubCategoryStore{}, nil, nil, nil)
	h := NewManageProductHandler(manage)

	c, rec := newContext(t, http.MethodPost, "/manage/products/add/", `{"title":""}`)

	require.NoError(t, h.CreateProduct(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"title"`)
}

func TestParseIDRejectsGarbage(t *testing.T) {
	h := NewManageProductHandler(service.NewManage(&stubProductStore{}, &stubCategoryStore{}, nil, nil, nil))

	c, rec := newContext(t, http.MethodPost, "/manage/products/abc/delete/", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, h.DeleteProduct(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	c, rec := newContext(t, http.MethodGet, "/health", "")
	require.NoError(t, Health(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
