package httpv1

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	logginghelper "github.com/Egor213/LogViewer/internal/controller/common/logging"
	"github.com/Egor213/LogViewer/internal/domain"
	"github.com/Egor213/LogViewer/internal/metrics"
	"github.com/Egor213/LogViewer/internal/service"
	"github.com/Egor213/LogViewer/internal/view"
	"github.com/Egor213/LogViewer/pkg/flash"
	"github.com/Egor213/LogViewer/pkg/paginator"
	"github.com/labstack/echo/v4"
)

const (
	MsgDeleted        = "Log deleted successfully!"
	MsgDeleteFailed   = "There was an error while deleting the log."
	MsgDeleteNotFound = "The log you tried to delete does not exist."
)

type LogViewerController struct {
	logService service.LogViewer
	counters   *metrics.Counters
	perPage    int
	prefix     string
	now        func() time.Time
}

type ControllerConfig struct {
	PerPage int
	Prefix  string
	Clock   func() time.Time
}

func NewLogViewerController(ls service.LogViewer, cnt *metrics.Counters, cfg ControllerConfig) *LogViewerController {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.PerPage <= 0 {
		cfg.PerPage = paginator.DefaultPerPage
	}
	return &LogViewerController{
		logService: ls,
		counters:   cnt,
		perPage:    cfg.PerPage,
		prefix:     cfg.Prefix,
		now:        cfg.Clock,
	}
}

func (lc *LogViewerController) showURL(date domain.LogDate, level domain.LogLevel) string {
	return lc.prefix + "/" + url.PathEscape(date) + "/" + url.PathEscape(string(level))
}

func (lc *LogViewerController) dataURL(date domain.LogDate, level domain.LogLevel, page int) string {
	return lc.prefix + "/data/" + url.PathEscape(date) + "/" + url.PathEscape(string(level)) +
		"?" + paginator.PageParam + "=" + strconv.Itoa(page)
}

func (lc *LogViewerController) today() domain.LogDate {
	return domain.FormatDate(lc.now())
}

// RedirectToToday sends the browser to today's page, keeping any pending
// notice for that page.
func (lc *LogViewerController) RedirectToToday(c echo.Context) error {
	if flash.Pending(c) {
		flash.Reflash(c)
	}
	lc.counters.HTTPRequests.Inc("RedirectToToday", "ok")
	return c.Redirect(http.StatusFound, lc.showURL(lc.today(), domain.LevelAll))
}

// DeleteDay never fails the request: the outcome is reported through a
// flash notice on the page it redirects to.
func (lc *LogViewerController) DeleteDay(c echo.Context) error {
	date := c.Param("date")

	if err := lc.logService.Delete(c.Request().Context(), date); err != nil {
		logginghelper.LogDeleteFailed(date, err)
		lc.counters.HTTPRequests.Inc("DeleteDay", "failed")

		msg := MsgDeleteFailed
		if errors.Is(err, service.ErrLogNotFound) {
			msg = MsgDeleteNotFound
		}
		flash.Set(c, flash.Error, msg)
		return c.Redirect(http.StatusFound, lc.showURL(date, domain.LevelAll))
	}

	logginghelper.LogDeleted(date, c.RealIP())
	lc.counters.HTTPRequests.Inc("DeleteDay", "ok")

	flash.Set(c, flash.Success, MsgDeleted)
	return c.Redirect(http.StatusFound, lc.showURL(lc.today(), domain.LevelAll))
}

func (lc *LogViewerController) ShowPage(c echo.Context) error {
	date := c.Param("date")
	level := levelParam(c)
	page := pageParam(c)

	dates, err := lc.logService.Dates(c.Request().Context())
	if err != nil {
		lc.counters.HTTPRequests.Inc("ShowPage", "failed")
		return err
	}

	data := view.ShowPage{
		Dates:   dates,
		Date:    date,
		URL:     lc.prefix,
		DataURL: lc.dataURL(date, level, page),
		Levels:  lc.logService.Levels(),
		Current: level,
	}
	if n, ok := flash.Consume(c); ok {
		data.Flash = &n
	}

	lc.counters.HTTPRequests.Inc("ShowPage", "ok")
	return c.Render(http.StatusOK, view.ShowTemplate, data)
}

// DataPage renders one page of the day's entries. The whole day is read and
// paginated in memory.
func (lc *LogViewerController) DataPage(c echo.Context) error {
	date := c.Param("date")
	level := levelParam(c)
	page := pageParam(c)

	entries, err := lc.logService.Data(c.Request().Context(), date, level)
	if err != nil {
		lc.counters.HTTPRequests.Inc("DataPage", "failed")
		switch {
		case errors.Is(err, service.ErrLogNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "log not found").SetInternal(err)
		case errors.Is(err, service.ErrInvalidDate):
			return echo.NewHTTPError(http.StatusBadRequest, "invalid date").SetInternal(err)
		}
		return err
	}

	p := paginator.New(len(entries), lc.perPage, page, lc.showURL(date, level))

	window := entries
	if len(entries) > p.PerPage() {
		window = paginator.Slice(entries, p)
	}

	logginghelper.LogPageServed(date, level, page, len(window))
	lc.counters.HTTPRequests.Inc("DataPage", "ok")

	return c.Render(http.StatusOK, view.DataTemplate, view.DataPage{
		Paginator: p,
		Log:       window,
	})
}
