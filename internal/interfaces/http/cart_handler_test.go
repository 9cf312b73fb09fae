package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcart "github.com/jhoicas/boutique-api/internal/application/cart"
	"github.com/jhoicas/boutique-api/internal/application/dto"
	"github.com/jhoicas/boutique-api/internal/application/usecase"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	apphttp "github.com/jhoicas/boutique-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.ProductWithSizes
}

func (f *fakeProductRepo) Create(*entity.Product) error { return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p := f.products[id]
	if p == nil {
		return nil, nil
	}
	return &p.Product, nil
}
func (f *fakeProductRepo) GetWithSizes(id string) (*entity.ProductWithSizes, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) List(bool, string) ([]*entity.ProductWithSizes, error) { return nil, nil }
func (f *fakeProductRepo) Update(*entity.Product) error                          { return nil }
func (f *fakeProductRepo) Delete(string) error                                   { return nil }

// fakeSettingRepo sin valor guardado: fuerza la tasa de respaldo.
type fakeSettingRepo struct{}

func (f *fakeSettingRepo) Get(string) (*entity.Setting, error) { return nil, nil }
func (f *fakeSettingRepo) Upsert(string, decimal.Decimal) (*entity.Setting, error) {
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

const testWhatsApp = "584140257059"

func buildCartApp() *fiber.App {
	products := &fakeProductRepo{products: map[string]*entity.ProductWithSizes{
		"prod-1": {
			Product: entity.Product{
				ID:       "prod-1",
				Name:     "Vestido Flores",
				Price:    decimal.RequireFromString("12.50"),
				Category: entity.CategoryNina,
				IsActive: true,
			},
		},
	}}
	rateUC := usecase.NewExchangeRateUseCase(&fakeSettingRepo{}, decimal.RequireFromString("50"))
	store := appcart.NewStore()
	cartUC := appcart.NewUseCase(store, products, rateUC, testWhatsApp)

	app := fiber.New()
	handler := apphttp.NewCartHandler(cartUC, store)
	app.Get("/api/cart", handler.Get)
	app.Post("/api/cart/items", handler.AddItem)
	app.Put("/api/cart/items", handler.UpdateItem)
	app.Post("/api/cart/checkout", handler.Checkout)
	return app
}

func cartRequest(t *testing.T, app *fiber.App, method, path, sessionID string, body interface{}) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set(apphttp.HeaderSessionID, sessionID)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeCart(t *testing.T, resp *http.Response) dto.CartResponse {
	t.Helper()
	defer resp.Body.Close()
	var out dto.CartResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Sin header X-Session-ID el handler emite una sesión nueva y la devuelve.
func TestCartHandler_EmiteSesionNueva(t *testing.T) {
	app := buildCartApp()

	resp := cartRequest(t, app, http.MethodGet, "/api/cart", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	sessionID := resp.Header.Get(apphttp.HeaderSessionID)
	assert.NotEmpty(t, sessionID, "la respuesta debe incluir el session ID emitido")

	out := decodeCart(t, resp)
	assert.Equal(t, sessionID, out.SessionID)
	assert.Equal(t, 0, out.TotalItems)
}

// Agregar dos veces la misma (producto, talla) acumula cantidad en una línea
// y los totales salen en USD y en bolívares a la tasa de respaldo (50).
func TestCartHandler_AgregarAcumulaYConvierte(t *testing.T) {
	app := buildCartApp()
	body := dto.AddCartItemRequest{ProductID: "prod-1", Size: "6"}

	resp := cartRequest(t, app, http.MethodPost, "/api/cart/items", "", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sessionID := resp.Header.Get(apphttp.HeaderSessionID)
	resp.Body.Close()

	resp = cartRequest(t, app, http.MethodPost, "/api/cart/items", sessionID, body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeCart(t, resp)

	require.Len(t, out.Lines, 1, "misma (producto, talla) debe acumular en una línea")
	assert.Equal(t, 2, out.Lines[0].Quantity)
	assert.Equal(t, 2, out.TotalItems)
	assert.True(t, out.TotalUSD.Equal(decimal.RequireFromString("25.00")),
		"total USD esperado 25.00, obtenido %s", out.TotalUSD)
	assert.True(t, out.TotalBs.Equal(decimal.RequireFromString("1250.00")),
		"total Bs esperado 1250.00 (tasa 50), obtenido %s", out.TotalBs)
}

func TestCartHandler_ProductoInexistente_Retorna404(t *testing.T) {
	app := buildCartApp()
	resp := cartRequest(t, app, http.MethodPost, "/api/cart/items", "",
		dto.AddCartItemRequest{ProductID: "no-existe", Size: "6"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCartHandler_ActualizarACero_EliminaLinea(t *testing.T) {
	app := buildCartApp()

	resp := cartRequest(t, app, http.MethodPost, "/api/cart/items", "",
		dto.AddCartItemRequest{ProductID: "prod-1", Size: "6"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sessionID := resp.Header.Get(apphttp.HeaderSessionID)
	resp.Body.Close()

	resp = cartRequest(t, app, http.MethodPut, "/api/cart/items", sessionID,
		dto.UpdateCartItemRequest{ProductID: "prod-1", Size: "6", Quantity: 0})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeCart(t, resp)

	assert.Empty(t, out.Lines)
	assert.Equal(t, 0, out.TotalItems)
}

// Checkout arma el mensaje de WhatsApp con el formato de la tienda y el
// enlace wa.me con el número configurado.
func TestCartHandler_Checkout(t *testing.T) {
	app := buildCartApp()

	resp := cartRequest(t, app, http.MethodPost, "/api/cart/items", "",
		dto.AddCartItemRequest{ProductID: "prod-1", Size: "6"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sessionID := resp.Header.Get(apphttp.HeaderSessionID)
	resp.Body.Close()

	resp = cartRequest(t, app, http.MethodPost, "/api/cart/checkout", sessionID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	var out dto.CheckoutResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Contains(t, out.Message, "¡Hola! Quiero comprar:")
	assert.Contains(t, out.Message, "Vestido Flores - Talla: 6 (x1)")
	assert.Contains(t, out.Link, "https://wa.me/"+testWhatsApp)
}

func TestCartHandler_CheckoutCarritoVacio_Retorna400(t *testing.T) {
	app := buildCartApp()
	resp := cartRequest(t, app, http.MethodPost, "/api/cart/checkout", "", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
