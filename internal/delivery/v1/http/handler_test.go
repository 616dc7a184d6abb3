package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/emporiodaserra/storefront-backend/internal/domain"
	"github.com/emporiodaserra/storefront-backend/internal/usecase"
	"github.com/emporiodaserra/storefront-backend/pkg/e"
	"github.com/emporiodaserra/storefront-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalogUC struct {
	page      *usecase.CatalogPageRes
	product   *domain.Product
	err       error
	lastState *usecase.FilterState
}

func (f *fakeCatalogUC) GetCatalogPage(_ context.Context, state *usecase.FilterState) (*usecase.CatalogPageRes, error) {
	f.lastState = state
	if f.err != nil {
		return nil, f.err
	}
	return f.page, nil
}

func (f *fakeCatalogUC) GetProductBySlug(_ context.Context, _ string) (*domain.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.product, nil
}

type fakeCartUC struct {
	lines []domain.CartLine
	err   error

	removedSku     string
	removedVariant string
}

func (f *fakeCartUC) GetAll(_ context.Context, _ string) ([]domain.CartLine, error) {
	return f.lines, f.err
}

func (f *fakeCartUC) Add(_ context.Context, _ string, _ *usecase.AddCartItemReq) ([]domain.CartLine, error) {
	return f.lines, f.err
}

func (f *fakeCartUC) UpdateQuantity(_ context.Context, _ string, _ *usecase.UpdateCartQtyReq) ([]domain.CartLine, error) {
	return f.lines, f.err
}

func (f *fakeCartUC) Remove(_ context.Context, _, sku, variantLabel string) ([]domain.CartLine, error) {
	f.removedSku = sku
	f.removedVariant = variantLabel
	return f.lines, f.err
}

func (f *fakeCartUC) Clear(_ context.Context, _ string) error {
	return f.err
}

func (f *fakeCartUC) Subscribe(_ context.Context, _ string, _ func(usecase.CartEvent)) (func(), error) {
	return func() {}, f.err
}

type fakeCheckoutUC struct {
	res *usecase.ComposeOrderRes
	err error
}

func (f *fakeCheckoutUC) ComposeOrder(_ context.Context, _ *usecase.ComposeOrderReq) (*usecase.ComposeOrderRes, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.res, nil
}

func newTestRouter(catalogUC usecase.CatalogUC, cartUC usecase.CartUC, checkoutUC usecase.CheckoutUC) *chi.Mux {
	r := chi.NewRouter()
	NewRouter(r, logger.NewSlogLogger()).Init(catalogUC, cartUC, checkoutUC)
	return r
}

func TestGetCatalogPage_HTTP(t *testing.T) {
	catalogUC := &fakeCatalogUC{
		page: usecase.NewCatalogPageRes([]domain.Product{
			{ID: "A", Slug: "cafe", Name: "Café", Images: []string{"u"}, Variants: []domain.Variant{domain.NewDefaultVariant()}},
		}, 1, 1, []string{usecase.AllCategories}),
	}

	router := newTestRouter(catalogUC, &fakeCartUC{}, &fakeCheckoutUC{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog?q=caf%C3%A9&category=Caf%C3%A9s&page=2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body CatalogPageView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Items, 1)
	assert.Equal(t, "cafe", body.Items[0].Slug)

	// O estado chega ao usecase com os filtros da query e a página pedida.
	require.NotNil(t, catalogUC.lastState)
	assert.Equal(t, "café", catalogUC.lastState.Query)
	assert.Equal(t, "Cafés", catalogUC.lastState.Category)
	assert.Equal(t, 2, catalogUC.lastState.Page)
}

func TestGetCatalogPage_InvalidPage(t *testing.T) {
	router := newTestRouter(&fakeCatalogUC{}, &fakeCartUC{}, &fakeCheckoutUC{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog?page=abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCatalogPage_Unavailable(t *testing.T) {
	router := newTestRouter(&fakeCatalogUC{err: e.ErrCatalogUnavailable}, &fakeCartUC{}, &fakeCheckoutUC{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGetProductBySlug_NotFound(t *testing.T) {
	router := newTestRouter(&fakeCatalogUC{err: e.ErrProductNotFound}, &fakeCartUC{}, &fakeCheckoutUC{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products/nao-existe", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusNotFound, body.Code)
}

func TestCartRoutes(t *testing.T) {
	cartUC := &fakeCartUC{
		lines: []domain.CartLine{domain.NewCartLine("A", "250g", "Café", "", 2)},
	}

	router := newTestRouter(&fakeCatalogUC{}, cartUC, &fakeCheckoutUC{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/carts/c1/items", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var view CartView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, 2, view.Count)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "A", view.Items[0].Sku)

	body := strings.NewReader(`{"sku":"A","variant_label":"250g","name":"Café","qty":1}`)
	req = httptest.NewRequest(http.MethodPost, "/api/v1/carts/c1/items", body)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// A remoção identifica a variante pelo mesmo nome de campo dos bodies.
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/carts/c1/items?sku=A&variant_label=250g", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "A", cartUC.removedSku)
	assert.Equal(t, "250g", cartUC.removedVariant)

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/carts/c1", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCartAdd_MalformedBody(t *testing.T) {
	router := newTestRouter(&fakeCatalogUC{}, &fakeCartUC{}, &fakeCheckoutUC{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/carts/c1/items", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckout_PreconditionMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"carrinho vazio", e.ErrEmptyCart, http.StatusUnprocessableEntity},
		{"entrega ausente", e.ErrMissingDeliveryChoice, http.StatusUnprocessableEntity},
		{"cart id ausente", e.ErrCartIDRequired, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&fakeCatalogUC{}, &fakeCartUC{}, &fakeCheckoutUC{err: tt.err})

			body := strings.NewReader(`{"cart_id":"c1","profile":"entrega","address":{}}`)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", body)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestCheckout_Success(t *testing.T) {
	checkoutUC := &fakeCheckoutUC{
		res: &usecase.ComposeOrderRes{
			Message:   "Olá!",
			Link:      "https://wa.me/5531999990000?text=Ol%C3%A1!",
			ItemCount: 3,
		},
	}

	router := newTestRouter(&fakeCatalogUC{}, &fakeCartUC{}, checkoutUC)

	body := strings.NewReader(`{"cart_id":"c1","profile":"online","address":{}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var view ComposeOrderView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, 3, view.ItemCount)
	assert.Contains(t, view.Link, "wa.me")
}
