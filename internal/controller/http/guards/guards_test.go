package guards_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Egor213/LogViewer/internal/config"
	"github.com/Egor213/LogViewer/internal/controller/http/guards"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, mws []echo.MiddlewareFunc, prepare func(r *http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "ok") }, mws...)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if prepare != nil {
		prepare(req)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAjaxOnly(t *testing.T) {
	rec := serve(t, []echo.MiddlewareFunc{guards.AjaxOnly}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, []echo.MiddlewareFunc{guards.AjaxOnly}, func(r *http.Request) {
		r.Header.Set(guards.HeaderXRequestedWith, guards.XMLHttpRequest)
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegistry_BasicAuth(t *testing.T) {
	reg := guards.NewRegistry(config.Guards{BasicUser: "admin", BasicPassword: "hunter2"})
	chain, err := reg.Resolve([]string{guards.BasicAuth})
	require.NoError(t, err)

	rec := serve(t, chain, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(t, chain, func(r *http.Request) { r.SetBasicAuth("admin", "wrong") })
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(t, chain, func(r *http.Request) { r.SetBasicAuth("admin", "hunter2") })
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegistry_Secure(t *testing.T) {
	chain, err := guards.NewRegistry(config.Guards{}).Resolve([]string{guards.Secure})
	require.NoError(t, err)

	rec := serve(t, chain, nil)
	assert.Equal(t, "SAMEORIGIN", rec.Header().Get(echo.HeaderXFrameOptions))
}

func TestRegistry_Resolve_Errors(t *testing.T) {
	reg := guards.NewRegistry(config.Guards{ThrottleRPS: 5})

	_, err := reg.Resolve([]string{guards.Throttle, "csrf"})
	assert.ErrorIs(t, err, guards.ErrUnknownGuard)

	_, err = reg.Resolve([]string{guards.BasicAuth})
	assert.ErrorIs(t, err, guards.ErrMissingCredential)

	chain, err := reg.Resolve(nil)
	require.NoError(t, err)
	assert.Empty(t, chain)
}
