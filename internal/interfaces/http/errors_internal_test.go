package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cazuela-chapina-api/internal/domain"
)

func TestRespondError_MapeaErroresEnvueltos(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrEmptyCart, http.StatusBadRequest, "EMPTY_CART"},
		{fmt.Errorf("checkout: %w", domain.ErrInsufficientStock), http.StatusConflict, "INSUFFICIENT_STOCK"},
		{fmt.Errorf("dashboard: ventas: x: %w", domain.ErrNoData), http.StatusServiceUnavailable, "NO_DATA"},
		{domain.ErrSessionNotFound, http.StatusUnauthorized, "INVALID_SESSION"},
		{fmt.Errorf("pg caído"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		app := fiber.New()
		err := tc.err
		app.Get("/", func(c *fiber.Ctx) error { return respondError(c, err) })

		resp, tErr := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
		require.NoError(t, tErr)
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		assert.Equal(t, tc.status, resp.StatusCode, tc.err.Error())
		assert.Contains(t, string(body), tc.code)
	}
}

func TestRespondError_NoExponeDetalleInterno(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return respondError(c, fmt.Errorf("repo: %w", errors.New(`pq: relation "sales" does not exist`)))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, string(body), `"INTERNAL"`)
	assert.NotContains(t, string(body), "relation")
	assert.NotContains(t, string(body), "repo:")
}

func TestParseDateRange(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 10, 15, 14, 0, 0, 0, loc)

	run := func(query string) (time.Time, time.Time, error) {
		var (
			start, end time.Time
			err        error
		)
		app := fiber.New()
		app.Get("/", func(c *fiber.Ctx) error {
			start, end, err = parseDateRange(c, loc, now, 30)
			return nil
		})
		resp, tErr := app.Test(httptest.NewRequest(http.MethodGet, "/"+query, nil), -1)
		require.NoError(t, tErr)
		resp.Body.Close()
		return start, end, err
	}

	start, end, err := run("")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 16, 0, 0, 0, 0, loc), end)
	assert.Equal(t, time.Date(2026, 9, 16, 0, 0, 0, 0, loc), start)

	start, end, err = run("?desde=2026-10-01&hasta=2026-10-07")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, 10, 8, 0, 0, 0, 0, loc), end)

	_, _, err = run("?desde=2026-10-09&hasta=2026-10-07")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = run("?desde=ayer")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
