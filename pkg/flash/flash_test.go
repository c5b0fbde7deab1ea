package flash_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Egor213/LogViewer/pkg/flash"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type client struct {
	t      *testing.T
	e      *echo.Echo
	cookie *http.Cookie
}

func newClient(t *testing.T) *client {
	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("flash-test-secret-0123456789abcd"))))
	e.Use(flash.Middleware)

	e.GET("/set/:kind", func(c echo.Context) error {
		flash.Set(c, flash.Kind(c.Param("kind")), "message for "+c.Param("kind"))
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/peek", func(c echo.Context) error {
		n, ok := flash.Peek(c)
		if !ok {
			return c.String(http.StatusOK, "none")
		}
		return c.String(http.StatusOK, string(n.Kind)+":"+n.Message)
	})
	e.GET("/consume", func(c echo.Context) error {
		n, ok := flash.Consume(c)
		if !ok {
			return c.String(http.StatusOK, "none")
		}
		return c.String(http.StatusOK, string(n.Kind)+":"+n.Message)
	})
	e.GET("/reflash", func(c echo.Context) error {
		flash.Reflash(c)
		return c.NoContent(http.StatusNoContent)
	})

	return &client{t: t, e: e}
}

func (cl *client) get(path string) string {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cl.cookie != nil {
		req.AddCookie(cl.cookie)
	}
	rec := httptest.NewRecorder()
	cl.e.ServeHTTP(rec, req)

	for _, ck := range rec.Result().Cookies() {
		if ck.Name == flash.SessionName {
			cl.cookie = ck
		}
	}
	require.NotNil(cl.t, cl.cookie)
	return rec.Body.String()
}

func TestFlash_VisibleOnNextRequestOnly(t *testing.T) {
	cl := newClient(t)

	cl.get("/set/success")
	assert.Equal(t, "success:message for success", cl.get("/peek"))
	assert.Equal(t, "none", cl.get("/peek"))
}

func TestFlash_Consume(t *testing.T) {
	cl := newClient(t)

	cl.get("/set/error")
	assert.Equal(t, "error:message for error", cl.get("/consume"))
	assert.Equal(t, "none", cl.get("/peek"))
}

func TestFlash_ReflashSurvivesOneMoreRequest(t *testing.T) {
	cl := newClient(t)

	cl.get("/set/success")
	cl.get("/reflash")
	assert.Equal(t, "success:message for success", cl.get("/peek"))
	assert.Equal(t, "none", cl.get("/peek"))
}

func TestFlash_SetReplacesPending(t *testing.T) {
	cl := newClient(t)

	cl.get("/set/success")
	cl.get("/set/error")
	assert.Equal(t, "error:message for error", cl.get("/consume"))
}

func TestFlash_NoSessionStore(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	flash.Set(c, flash.Success, "ignored")
	flash.Reflash(c)

	assert.False(t, flash.Pending(c))
}
