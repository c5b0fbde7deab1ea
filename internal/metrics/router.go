package metrics

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

const httpSubsystem = "logviewer_http"

func ConfigureRouter(handler *echo.Echo) {
	handler.GET("/metrics", echoprometheus.NewHandler())
}

// Middleware records request metrics of the viewer's own router.
func Middleware() echo.MiddlewareFunc {
	return MiddlewareFor(prometheus.DefaultRegisterer)
}

func MiddlewareFor(reg prometheus.Registerer) echo.MiddlewareFunc {
	return echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  httpSubsystem,
		Registerer: reg,
	})
}
