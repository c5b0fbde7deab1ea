// Package guards holds the access filters that can be put in front of the
// viewer routes. Filters are referenced by name from configuration.
package guards

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"

	"github.com/Egor213/LogViewer/internal/config"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const (
	HeaderXRequestedWith = "X-Requested-With"
	XMLHttpRequest       = "XMLHttpRequest"
)

const (
	BasicAuth = "auth.basic"
	Throttle  = "throttle"
	Secure    = "secure"
)

var (
	ErrUnknownGuard      = errors.New("unknown guard")
	ErrMissingCredential = errors.New("basic auth guard needs a user and a password")
)

// AjaxOnly rejects requests that were not sent by XMLHttpRequest.
func AjaxOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get(HeaderXRequestedWith) != XMLHttpRequest {
			return echo.NewHTTPError(http.StatusBadRequest, "ajax requests only")
		}
		return next(c)
	}
}

type Registry map[string]func() (echo.MiddlewareFunc, error)

func NewRegistry(cfg config.Guards) Registry {
	return Registry{
		BasicAuth: func() (echo.MiddlewareFunc, error) {
			if cfg.BasicUser == "" || cfg.BasicPassword == "" {
				return nil, ErrMissingCredential
			}
			return basicAuth(cfg.BasicUser, cfg.BasicPassword), nil
		},
		Throttle: func() (echo.MiddlewareFunc, error) {
			store := middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.ThrottleRPS))
			return middleware.RateLimiter(store), nil
		},
		Secure: func() (echo.MiddlewareFunc, error) {
			return middleware.SecureWithConfig(middleware.SecureConfig{
				XSSProtection:         "1; mode=block",
				ContentTypeNosniff:    "nosniff",
				XFrameOptions:         "SAMEORIGIN",
				ContentSecurityPolicy: "default-src 'self'; style-src 'self' 'unsafe-inline'; script-src 'self' 'unsafe-inline'",
			}), nil
		},
	}
}

// Resolve builds the middleware chain for names, in order.
func (r Registry) Resolve(names []string) ([]echo.MiddlewareFunc, error) {
	chain := make([]echo.MiddlewareFunc, 0, len(names))
	for _, name := range names {
		build, ok := r[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownGuard, name)
		}
		mw, err := build()
		if err != nil {
			return nil, fmt.Errorf("guard %q: %w", name, err)
		}
		chain = append(chain, mw)
	}
	return chain, nil
}

func basicAuth(user, password string) echo.MiddlewareFunc {
	return middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
		Realm: "Log Viewer",
		Validator: func(u, p string, c echo.Context) (bool, error) {
			userOK := subtle.ConstantTimeCompare([]byte(u), []byte(user)) == 1
			passOK := subtle.ConstantTimeCompare([]byte(p), []byte(password)) == 1
			return userOK && passOK, nil
		},
	})
}
