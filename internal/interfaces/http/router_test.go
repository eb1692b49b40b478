package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/cazuela-chapina-api/internal/application/analytics"
	"github.com/jhoicas/cazuela-chapina-api/internal/application/pos"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/cart"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/repository"
	apphttp "github.com/jhoicas/cazuela-chapina-api/internal/interfaces/http"
	"github.com/jhoicas/cazuela-chapina-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para armar el router completo
// ──────────────────────────────────────────────────────────────────────────────

type memCarts struct{ m map[string]*cart.Cart }

func (s *memCarts) Load(_ context.Context, id string) (*cart.Cart, error) {
	if c, ok := s.m[id]; ok {
		return c, nil
	}
	return cart.New(), nil
}

func (s *memCarts) Save(_ context.Context, id string, c *cart.Cart) error {
	s.m[id] = c
	return nil
}

func (s *memCarts) Delete(_ context.Context, id string) error {
	delete(s.m, id)
	return nil
}

type memVariants struct{ items map[string]*entity.Variant }

func (r *memVariants) Create(_ context.Context, v *entity.Variant) error {
	r.items[v.ID] = v
	return nil
}
func (r *memVariants) GetByID(_ context.Context, id string) (*entity.Variant, error) {
	return r.items[id], nil
}
func (r *memVariants) GetByIDs(_ context.Context, ids []string) ([]*entity.Variant, error) {
	var out []*entity.Variant
	for _, id := range ids {
		if v, ok := r.items[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}
func (r *memVariants) List(context.Context, entity.Category, bool) ([]*entity.Variant, error) {
	out := make([]*entity.Variant, 0, len(r.items))
	for _, v := range r.items {
		out = append(out, v)
	}
	return out, nil
}
func (r *memVariants) Update(_ context.Context, v *entity.Variant) error {
	r.items[v.ID] = v
	return nil
}

type memCombos struct{}

func (memCombos) Create(context.Context, *entity.Combo) error { return nil }
func (memCombos) GetByID(context.Context, string) (*entity.Combo, error) { return nil, nil }
func (memCombos) List(context.Context, bool) ([]*entity.Combo, error) { return nil, nil }
func (memCombos) SetActive(context.Context, string, bool) error { return nil }

// memSales también hace de SalesTxRunner.
type memSales struct{ sales []entity.Sale }

func (r *memSales) Create(_ context.Context, s *entity.Sale) error {
	r.sales = append(r.sales, *s)
	return nil
}
func (r *memSales) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	for i := range r.sales {
		if r.sales[i].ID == id {
			return &r.sales[i], nil
		}
	}
	return nil, nil
}
func (r *memSales) ListBetween(_ context.Context, _ string, start, end time.Time) ([]entity.Sale, error) {
	var out []entity.Sale
	for _, s := range r.sales {
		if !s.Timestamp.Before(start) && s.Timestamp.Before(end) {
			out = append(out, s)
		}
	}
	return out, nil
}
func (r *memSales) RunSale(_ context.Context, fn func(repository.SaleRepository) error) error {
	return fn(r)
}

type routerFixture struct {
	app      *fiber.App
	sessions *fakeSessions
	carts    *memCarts
	sales    *memSales
}

// newRouterFixture arma la app con Router. Solo POS y dashboard tienen casos de uso reales;
// el resto queda en nil y se ejercita únicamente por sus rechazos de rol.
func newRouterFixture() *routerFixture {
	f := &routerFixture{
		sessions: newFakeSessions(),
		carts:    &memCarts{m: map[string]*cart.Cart{}},
		sales:    &memSales{},
	}
	variants := &memVariants{items: map[string]*entity.Variant{
		"rojo": {ID: "rojo", ProductName: "Tamal rojo", Category: entity.CategoryTamal, Price: decimal.NewFromInt(10), Active: true},
	}}
	checkout := pos.NewCheckoutUseCase(f.carts, variants, memCombos{}, f.sales, nil,
		pos.CheckoutConfig{TaxRate: decimal.RequireFromString("0.12"), CurrencyPrefix: "Q"}, logger.Nop())

	f.app = fiber.New()
	apphttp.Router(f.app, apphttp.RouterDeps{
		Checkout:       checkout,
		DashboardUC:    appanalytics.NewDashboardUseCase(f.sales, variants, time.UTC, "Q"),
		Sessions:       f.sessions,
		JWTSecret:      testJWTSecret,
		LoginPerMinute: 0,
		Location:       time.UTC,
		Log:            logger.Nop(),
	})
	return f
}

func (f *routerFixture) call(t *testing.T, method, path, auth, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Matriz de roles
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_MatrizDeRoles(t *testing.T) {
	f := newRouterFixture()
	cook := loginAs(t, f.sessions, "s-cocina", entity.RoleCook)
	cashier := loginAs(t, f.sessions, "s-caja", entity.RoleCashier)

	cases := []struct {
		name   string
		method string
		path   string
		auth   string
		body   string
		want   int
	}{
		{"login es público", http.MethodPost, "/api/v1/auth/login", "", "{}", http.StatusBadRequest},
		{"sin token", http.MethodGet, "/api/v1/cart", "", "", http.StatusUnauthorized},
		{"cocinero no envía órdenes", http.MethodPost, "/api/v1/ordenes", cook, `{"metodo_pago":"tarjeta"}`, http.StatusForbidden},
		{"cocinero no ve el carrito", http.MethodGet, "/api/v1/cart", cook, "", http.StatusForbidden},
		{"cajero no ve el dashboard", http.MethodGet, "/api/v1/dashboard", cashier, "", http.StatusForbidden},
		{"cajero no ve el inventario", http.MethodGet, "/api/v1/inventory/report", cashier, "", http.StatusForbidden},
		{"cajero no registra empleados", http.MethodPost, "/api/v1/auth/register", cashier, "{}", http.StatusForbidden},
		{"cajero no edita el catálogo", http.MethodPost, "/api/v1/catalog/variants", cashier, "{}", http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := f.call(t, tc.method, tc.path, tc.auth, tc.body)
			defer resp.Body.Close()
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo de caja y dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_CarritoYOrden(t *testing.T) {
	f := newRouterFixture()
	cashier := loginAs(t, f.sessions, "s-caja", entity.RoleCashier)

	resp := f.call(t, http.MethodPost, "/api/v1/cart/items", cashier, `{"item_id":"rojo","cantidad":2}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cartBody map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cartBody))
	assert.Equal(t, float64(2), cartBody["unidades"])

	resp = f.call(t, http.MethodPost, "/api/v1/ordenes", cashier, `{"metodo_pago":"tarjeta"}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var order map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&order))
	assert.NotEmpty(t, order["orden_id"])
	require.Len(t, f.sales.sales, 1)
	assert.Equal(t, 2, f.sales.sales[0].Items[0].Quantity)
	assert.Empty(t, f.carts.m, "el carrito se vacía al registrar la venta")
}

func TestRouter_DashboardAdmin(t *testing.T) {
	f := newRouterFixture()
	admin := loginAs(t, f.sessions, "s-admin", entity.RoleAdmin)

	resp := f.call(t, http.MethodGet, "/api/v1/dashboard?rango=week", admin, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "week", body["rango"])
}

func TestRouter_SinDashboardConfigurado(t *testing.T) {
	app := fiber.New()
	require.NotPanics(t, func() {
		apphttp.Router(app, apphttp.RouterDeps{Sessions: newFakeSessions(), JWTSecret: testJWTSecret, Log: logger.Nop()})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
