package httpv1

import (
	"github.com/Egor213/LogViewer/internal/controller/http/guards"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes mounts the viewer under the controller prefix. filters
// guard every route; the data routes additionally accept ajax requests only.
func RegisterRoutes(e *echo.Echo, lc *LogViewerController, filters ...echo.MiddlewareFunc) {
	g := e.Group(lc.prefix, filters...)

	g.GET("", lc.RedirectToToday)
	g.GET("/delete/:date", lc.DeleteDay)

	data := g.Group("/data", guards.AjaxOnly)
	data.GET("/:date", lc.DataPage)
	data.GET("/:date/:level", lc.DataPage)

	g.GET("/:date", lc.ShowPage)
	g.GET("/:date/:level", lc.ShowPage)
}
