package httpv1

import (
	"strconv"

	"github.com/Egor213/LogViewer/internal/domain"
	"github.com/Egor213/LogViewer/pkg/paginator"
	"github.com/labstack/echo/v4"
)

// levelParam returns the level path segment, or LevelAll when it is absent.
func levelParam(c echo.Context) domain.LogLevel {
	level := domain.ParseLevel(c.Param("level"))
	if level == "" {
		return domain.LevelAll
	}
	return level
}

// pageParam returns the 1-based page from the query, or 1 when it is
// missing, empty or not a positive number.
func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam(paginator.PageParam))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
