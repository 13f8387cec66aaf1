package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hritvik715/LanguageKeyboardCentral/internal/domain"
	"github.com/hritvik715/LanguageKeyboardCentral/internal/event"
	"github.com/hritvik715/LanguageKeyboardCentral/internal/repository/memory"
	"github.com/hritvik715/LanguageKeyboardCentral/internal/seed"
	"github.com/hritvik715/LanguageKeyboardCentral/internal/service"
	"github.com/hritvik715/LanguageKeyboardCentral/pkg/health"
	pkgkafka "github.com/hritvik715/LanguageKeyboardCentral/pkg/kafka"
	"github.com/hritvik715/LanguageKeyboardCentral/pkg/middleware"
)

// testServer builds the full router over fresh in-memory stores seeded with
// the built-in catalog. Kafka publishes go to a dead broker address and fail
// silently, as in production when the broker is unreachable.
func testServer(t *testing.T) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	catalogRepo := memory.NewCatalogRepository()
	cartRepo := memory.NewCartRepository()
	require.NoError(t, seed.Run(context.Background(), catalogRepo, logger))

	kafkaCfg := pkgkafka.DefaultProducerConfig([]string{"localhost:19092"})
	producer := event.NewProducer(pkgkafka.NewProducer(kafkaCfg, logger), logger)

	catalogService := service.NewCatalogService(catalogRepo, producer, logger)
	cartService := service.NewCartService(cartRepo, catalogRepo, producer, logger)

	return NewRouter(catalogService, cartService, health.NewHandler(), middleware.DefaultCORSConfig(), logger)
}

func doJSON(t *testing.T, h http.Handler, method, path, session string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set(HeaderSessionID, session)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

// --- Products ---

func TestRouter_ListProducts(t *testing.T) {
	h := testServer(t)

	rec := doJSON(t, h, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	products := decode[[]domain.Product](t, rec)
	assert.Len(t, products, 12)
	assert.Equal(t, "hindi-keyboard-pro", products[0].Slug)
	assert.Equal(t, int64(1), products[0].ID)
}

func TestRouter_ListFeatured(t *testing.T) {
	h := testServer(t)

	rec := doJSON(t, h, http.MethodGet, "/api/products/featured", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	products := decode[[]domain.Product](t, rec)
	require.Len(t, products, 3)

	ids := make([]int64, 0, len(products))
	for _, p := range products {
		assert.True(t, p.IsFeatured)
		ids = append(ids, p.ID)
	}
	assert.Contains(t, ids, int64(1))
}

func TestRouter_ListByCategory(t *testing.T) {
	h := testServer(t)

	rec := doJSON(t, h, http.MethodGet, "/api/products/category/display_combo", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	products := decode[[]domain.Product](t, rec)
	require.Len(t, products, 3)
	for _, p := range products {
		assert.Equal(t, domain.CategoryDisplayCombo, p.Category)
	}
}

func TestRouter_ListByCategory_UnknownIsEmpty(t *testing.T) {
	h := testServer(t)

	rec := doJSON(t, h, http.MethodGet, "/api/products/category/accessory", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestRouter_GetProductBySlug(t *testing.T) {
	h := testServer(t)

	rec := doJSON(t, h, http.MethodGet, "/api/products/hindi-keyboard-pro", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	p := decode[domain.Product](t, rec)
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, int64(649900), p.Price)
	assert.True(t, p.IsFeatured)
}

func TestRouter_GetProductBySlug_NotFound(t *testing.T) {
	h := testServer(t)

	rec := doJSON(t, h, http.MethodGet, "/api/products/nonexistent-slug", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}

func TestRouter_CreateProduct(t *testing.T) {
	h := testServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/products", "", map[string]any{
		"name":               "Sanskrit Scholar Keyboard",
		"description":        "For classical texts.",
		"price":              549900,
		"category":           "keyboard",
		"languagesSupported": []string{"hi", "en"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	p := decode[domain.Product](t, rec)
	assert.Equal(t, "sanskrit-scholar-keyboard", p.Slug)
	assert.Equal(t, int64(13), p.ID)

	rec = doJSON(t, h, http.MethodGet, "/api/products/sanskrit-scholar-keyboard", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_CreateProduct_InvalidBody(t *testing.T) {
	h := testServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/products", "", map[string]any{
		"description": "no name or price",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// --- Languages ---

func TestRouter_ListLanguages(t *testing.T) {
	h := testServer(t)

	rec := doJSON(t, h, http.MethodGet, "/api/languages", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	languages := decode[[]domain.Language](t, rec)
	assert.Len(t, languages, 11)
	assert.Equal(t, "hi", languages[0].Code)
}

func TestRouter_GetLanguageByCode(t *testing.T) {
	h := testServer(t)

	rec := doJSON(t, h, http.MethodGet, "/api/languages/ta", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	l := decode[domain.Language](t, rec)
	assert.Equal(t, "Tamil", l.Name)
	assert.Equal(t, "தமிழ்", l.NativeName)
}

func TestRouter_GetLanguageByCode_NotFound(t *testing.T) {
	h := testServer(t)

	rec := doJSON(t, h, http.MethodGet, "/api/languages/xx", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// --- Cart ---

type cartEntry struct {
	Item    domain.CartLine `json:"item"`
	Product domain.Product  `json:"product"`
}

func TestRouter_Cart_AddTwiceMerges(t *testing.T) {
	h := testServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/cart/add", "abc", map[string]any{"productId": 1, "quantity": 2})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/cart/add", "abc", map[string]any{"productId": 1, "quantity": 3})
	require.Equal(t, http.StatusCreated, rec.Code)
	line := decode[domain.CartLine](t, rec)
	assert.Equal(t, 5, line.Quantity)

	rec = doJSON(t, h, http.MethodGet, "/api/cart", "abc", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	entries := decode[[]cartEntry](t, rec)
	require.Len(t, entries, 1)
	assert.Equal(t, 5, entries[0].Item.Quantity)
	assert.Equal(t, "hindi-keyboard-pro", entries[0].Product.Slug)
}

func TestRouter_Cart_QuantityDefaultsToOne(t *testing.T) {
	h := testServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/cart/add", "abc", map[string]any{"productId": 2})
	require.Equal(t, http.StatusCreated, rec.Code)
	line := decode[domain.CartLine](t, rec)
	assert.Equal(t, 1, line.Quantity)
}

func TestRouter_Cart_AddUnknownProduct(t *testing.T) {
	h := testServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/cart/add", "abc", map[string]any{"productId": 999, "quantity": 1})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_Cart_AddInvalidQuantity(t *testing.T) {
	h := testServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/cart/add", "abc", map[string]any{"productId": 1, "quantity": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_Cart_RepeatedAddsCannotPassQuantityCap(t *testing.T) {
	h := testServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/cart/add", "abc", map[string]any{"productId": 1, "quantity": 60})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/cart/add", "abc", map[string]any{"productId": 1, "quantity": 60})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")

	// The rejected add leaves the line at its previous quantity.
	rec = doJSON(t, h, http.MethodGet, "/api/cart", "abc", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	entries := decode[[]cartEntry](t, rec)
	require.Len(t, entries, 1)
	assert.Equal(t, 60, entries[0].Item.Quantity)
}

func TestRouter_Cart_SessionsAreIsolated(t *testing.T) {
	h := testServer(t)

	doJSON(t, h, http.MethodPost, "/api/cart/add", "abc", map[string]any{"productId": 1, "quantity": 1})

	rec := doJSON(t, h, http.MethodGet, "/api/cart", "xyz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestRouter_Cart_FallbackSession(t *testing.T) {
	h := testServer(t)

	// No session header on either request; both land on the shared demo cart.
	rec := doJSON(t, h, http.MethodPost, "/api/cart/add", "", map[string]any{"productId": 1, "quantity": 1})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/cart", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	entries := decode[[]cartEntry](t, rec)
	require.Len(t, entries, 1)
	assert.Equal(t, FallbackSessionID, entries[0].Item.SessionID)
}

func TestRouter_Cart_UpdateThenRemove(t *testing.T) {
	h := testServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/cart/add", "abc", map[string]any{"productId": 1, "quantity": 2})
	require.Equal(t, http.StatusCreated, rec.Code)
	line := decode[domain.CartLine](t, rec)

	rec = doJSON(t, h, http.MethodPut, fmt.Sprintf("/api/cart/update/%d", line.ID), "abc", map[string]any{"quantity": 10})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[domain.CartLine](t, rec)
	assert.Equal(t, 10, updated.Quantity)

	rec = doJSON(t, h, http.MethodDelete, fmt.Sprintf("/api/cart/remove/%d", line.ID), "abc", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	rec = doJSON(t, h, http.MethodGet, "/api/cart", "abc", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestRouter_Cart_UpdateRejectsZeroQuantityWithoutMutation(t *testing.T) {
	h := testServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/cart/add", "abc", map[string]any{"productId": 1, "quantity": 2})
	require.Equal(t, http.StatusCreated, rec.Code)
	line := decode[domain.CartLine](t, rec)

	rec = doJSON(t, h, http.MethodPut, fmt.Sprintf("/api/cart/update/%d", line.ID), "abc", map[string]any{"quantity": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/cart", "abc", nil)
	entries := decode[[]cartEntry](t, rec)
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Item.Quantity)
}

func TestRouter_Cart_UpdateUnknownLine(t *testing.T) {
	h := testServer(t)

	rec := doJSON(t, h, http.MethodPut, "/api/cart/update/999", "abc", map[string]any{"quantity": 3})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_Cart_RemoveUnknownLine(t *testing.T) {
	h := testServer(t)

	rec := doJSON(t, h, http.MethodDelete, "/api/cart/remove/999", "abc", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_Cart_Clear(t *testing.T) {
	h := testServer(t)

	doJSON(t, h, http.MethodPost, "/api/cart/add", "abc", map[string]any{"productId": 1, "quantity": 1})
	doJSON(t, h, http.MethodPost, "/api/cart/add", "abc", map[string]any{"productId": 2, "quantity": 1})

	rec := doJSON(t, h, http.MethodDelete, "/api/cart/clear", "abc", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	rec = doJSON(t, h, http.MethodGet, "/api/cart", "abc", nil)
	assert.JSONEq(t, "[]", rec.Body.String())

	// Clearing an already empty cart succeeds.
	rec = doJSON(t, h, http.MethodDelete, "/api/cart/clear", "abc", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// --- Health ---

func TestRouter_HealthEndpoints(t *testing.T) {
	h := testServer(t)

	rec := doJSON(t, h, http.MethodGet, "/health/live", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/health/ready", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_CatalogCacheHeaders(t *testing.T) {
	h := testServer(t)

	rec := doJSON(t, h, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Cache-Control"), "max-age=60")
}

func TestRouter_CORSPreflight(t *testing.T) {
	h := testServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/products", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), HeaderSessionID)
}

func TestRouter_RejectsNonJSONBody(t *testing.T) {
	h := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/cart/add", bytes.NewBufferString("productId=1"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNSUPPORTED_MEDIA_TYPE")
}
