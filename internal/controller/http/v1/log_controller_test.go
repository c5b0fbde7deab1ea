package httpv1_test

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Egor213/LogViewer/internal/controller/http/guards"
	httpv1 "github.com/Egor213/LogViewer/internal/controller/http/v1"
	"github.com/Egor213/LogViewer/internal/domain"
	"github.com/Egor213/LogViewer/internal/metrics"
	service_mock "github.com/Egor213/LogViewer/internal/mocks/service"
	"github.com/Egor213/LogViewer/internal/service"
	"github.com/Egor213/LogViewer/internal/view"
	"github.com/Egor213/LogViewer/pkg/flash"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2024, 1, 5, 14, 0, 0, 0, time.UTC)

type captureRenderer struct {
	name string
	data any
}

func (r *captureRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	r.name = name
	r.data = data
	_, err := io.WriteString(w, name)
	return err
}

type testServer struct {
	t        *testing.T
	e        *echo.Echo
	renderer *captureRenderer
	cookie   *http.Cookie
}

func newTestServer(t *testing.T, svc service.LogViewer, perPage int, filters ...echo.MiddlewareFunc) *testServer {
	e := echo.New()
	r := &captureRenderer{}
	e.Renderer = r
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("controller-test-secret-012345678"))))
	e.Use(flash.Middleware)

	lc := httpv1.NewLogViewerController(svc, metrics.NewTestCounters(), httpv1.ControllerConfig{
		PerPage: perPage,
		Prefix:  "/logviewer",
		Clock:   func() time.Time { return now },
	})
	httpv1.RegisterRoutes(e, lc, filters...)

	return &testServer{t: t, e: e, renderer: r}
}

func (s *testServer) do(target string, ajax bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if ajax {
		req.Header.Set(guards.HeaderXRequestedWith, guards.XMLHttpRequest)
	}
	if s.cookie != nil {
		req.AddCookie(s.cookie)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	for _, ck := range rec.Result().Cookies() {
		if ck.Name == flash.SessionName {
			s.cookie = ck
		}
	}
	return rec
}

func (s *testServer) showPage() view.ShowPage {
	s.t.Helper()
	require.Equal(s.t, view.ShowTemplate, s.renderer.name)
	page, ok := s.renderer.data.(view.ShowPage)
	require.True(s.t, ok)
	return page
}

func (s *testServer) dataPage() view.DataPage {
	s.t.Helper()
	require.Equal(s.t, view.DataTemplate, s.renderer.name)
	page, ok := s.renderer.data.(view.DataPage)
	require.True(s.t, ok)
	return page
}

func expectShow(svc *service_mock.MockLogViewer) {
	svc.EXPECT().Dates(gomock.Any()).Return([]domain.LogDate{"2024-01-05", "2024-01-01"}, nil)
	svc.EXPECT().Levels().Return(domain.Levels())
}

func makeEntries(n int) []domain.LogEntry {
	entries := make([]domain.LogEntry, n)
	for i := range entries {
		entries[i] = domain.LogEntry{
			Level:  domain.LevelInfo,
			Header: fmt.Sprintf("entry %d", i+1),
		}
	}
	return entries
}

func TestRedirectToToday(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newTestServer(t, service_mock.NewMockLogViewer(ctrl), 10)

	rec := srv.do("/logviewer", false)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/logviewer/2024-01-05/all", rec.Header().Get(echo.HeaderLocation))
}

func TestDeleteDay(t *testing.T) {
	testCases := []struct {
		name         string
		date         string
		serviceErr   error
		wantLocation string
		wantFlash    flash.Notice
	}{
		{
			name:         "success goes to today",
			date:         "2024-01-01",
			wantLocation: "/logviewer/2024-01-05/all",
			wantFlash:    flash.Notice{Kind: flash.Success, Message: httpv1.MsgDeleted},
		},
		{
			name:         "failure stays on the requested day",
			date:         "2023-12-31",
			serviceErr:   service.ErrCannotDeleteLog,
			wantLocation: "/logviewer/2023-12-31/all",
			wantFlash:    flash.Notice{Kind: flash.Error, Message: httpv1.MsgDeleteFailed},
		},
		{
			name:         "permission failure",
			date:         "2023-12-30",
			serviceErr:   service.ErrLogPermissionDenied,
			wantLocation: "/logviewer/2023-12-30/all",
			wantFlash:    flash.Notice{Kind: flash.Error, Message: httpv1.MsgDeleteFailed},
		},
		{
			name:         "missing day",
			date:         "2023-12-29",
			serviceErr:   fmt.Errorf("wrapped: %w", service.ErrLogNotFound),
			wantLocation: "/logviewer/2023-12-29/all",
			wantFlash:    flash.Notice{Kind: flash.Error, Message: httpv1.MsgDeleteNotFound},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := service_mock.NewMockLogViewer(ctrl)
			srv := newTestServer(t, svc, 10)

			svc.EXPECT().Delete(gomock.Any(), tc.date).Return(tc.serviceErr)
			rec := srv.do("/logviewer/delete/"+tc.date, false)

			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, tc.wantLocation, rec.Header().Get(echo.HeaderLocation))

			expectShow(svc)
			srv.do(tc.wantLocation, false)

			page := srv.showPage()
			require.NotNil(t, page.Flash)
			assert.Equal(t, tc.wantFlash, *page.Flash)
		})
	}
}

func TestRedirectToToday_KeepsPendingFlash(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service_mock.NewMockLogViewer(ctrl)
	srv := newTestServer(t, svc, 10)

	svc.EXPECT().Delete(gomock.Any(), "2024-01-01").Return(nil)
	srv.do("/logviewer/delete/2024-01-01", false)
	srv.do("/logviewer", false)

	expectShow(svc)
	srv.do("/logviewer/2024-01-05/all", false)
	page := srv.showPage()
	require.NotNil(t, page.Flash)
	assert.Equal(t, httpv1.MsgDeleted, page.Flash.Message)

	expectShow(svc)
	srv.do("/logviewer/2024-01-05/all", false)
	assert.Nil(t, srv.showPage().Flash)
}

func TestShowPage(t *testing.T) {
	testCases := []struct {
		name        string
		target      string
		wantLevel   domain.LogLevel
		wantDataURL string
	}{
		{
			name:        "level absent",
			target:      "/logviewer/2024-01-01",
			wantLevel:   domain.LevelAll,
			wantDataURL: "/logviewer/data/2024-01-01/all?page=1",
		},
		{
			name:        "explicit all",
			target:      "/logviewer/2024-01-01/all",
			wantLevel:   domain.LevelAll,
			wantDataURL: "/logviewer/data/2024-01-01/all?page=1",
		},
		{
			name:        "level and page",
			target:      "/logviewer/2024-01-01/error?page=3",
			wantLevel:   domain.LevelError,
			wantDataURL: "/logviewer/data/2024-01-01/error?page=3",
		},
		{
			name:        "empty page",
			target:      "/logviewer/2024-01-01/warning?page=",
			wantLevel:   domain.LevelWarning,
			wantDataURL: "/logviewer/data/2024-01-01/warning?page=1",
		},
		{
			name:        "garbage page",
			target:      "/logviewer/2024-01-01/info?page=abc",
			wantLevel:   domain.LevelInfo,
			wantDataURL: "/logviewer/data/2024-01-01/info?page=1",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := service_mock.NewMockLogViewer(ctrl)
			srv := newTestServer(t, svc, 10)
			expectShow(svc)

			rec := srv.do(tc.target, false)
			require.Equal(t, http.StatusOK, rec.Code)

			page := srv.showPage()
			assert.Equal(t, []domain.LogDate{"2024-01-05", "2024-01-01"}, page.Dates)
			assert.Equal(t, "2024-01-01", page.Date)
			assert.Equal(t, "/logviewer", page.URL)
			assert.Equal(t, tc.wantDataURL, page.DataURL)
			assert.Equal(t, domain.Levels(), page.Levels)
			assert.Equal(t, tc.wantLevel, page.Current)
			assert.Nil(t, page.Flash)
		})
	}
}

func TestShowPage_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service_mock.NewMockLogViewer(ctrl)
	srv := newTestServer(t, svc, 10)

	svc.EXPECT().Dates(gomock.Any()).Return(nil, errors.New("disk gone"))
	rec := srv.do("/logviewer/2024-01-01", false)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestDataPage(t *testing.T) {
	testCases := []struct {
		name      string
		target    string
		total     int
		perPage   int
		wantLevel domain.LogLevel
		wantFirst string
		wantCount int
		wantPage  int
		wantPath  string
	}{
		{
			name:      "last partial page",
			target:    "/logviewer/data/2024-01-01/all?page=3",
			total:     25,
			perPage:   10,
			wantLevel: domain.LevelAll,
			wantFirst: "entry 21",
			wantCount: 5,
			wantPage:  3,
			wantPath:  "/logviewer/2024-01-01/all",
		},
		{
			name:      "fits on one page",
			target:    "/logviewer/data/2024-01-01/all?page=1",
			total:     5,
			perPage:   10,
			wantLevel: domain.LevelAll,
			wantFirst: "entry 1",
			wantCount: 5,
			wantPage:  1,
			wantPath:  "/logviewer/2024-01-01/all",
		},
		{
			name:      "missing page and level",
			target:    "/logviewer/data/2024-01-01",
			total:     25,
			perPage:   10,
			wantLevel: domain.LevelAll,
			wantFirst: "entry 1",
			wantCount: 10,
			wantPage:  1,
			wantPath:  "/logviewer/2024-01-01/all",
		},
		{
			name:      "level filter keeps base path",
			target:    "/logviewer/data/2024-01-01/error?page=2",
			total:     12,
			perPage:   10,
			wantLevel: domain.LevelError,
			wantFirst: "entry 11",
			wantCount: 2,
			wantPage:  2,
			wantPath:  "/logviewer/2024-01-01/error",
		},
		{
			name:      "page beyond the end",
			target:    "/logviewer/data/2024-01-01/all?page=9",
			total:     25,
			perPage:   10,
			wantLevel: domain.LevelAll,
			wantCount: 0,
			wantPage:  9,
			wantPath:  "/logviewer/2024-01-01/all",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := service_mock.NewMockLogViewer(ctrl)
			srv := newTestServer(t, svc, tc.perPage)

			svc.EXPECT().Data(gomock.Any(), "2024-01-01", tc.wantLevel).Return(makeEntries(tc.total), nil)

			rec := srv.do(tc.target, true)
			require.Equal(t, http.StatusOK, rec.Code)

			page := srv.dataPage()
			assert.Len(t, page.Log, tc.wantCount)
			if tc.wantCount > 0 {
				assert.Equal(t, tc.wantFirst, page.Log[0].Header)
			}
			assert.Equal(t, tc.wantPage, page.Paginator.CurrentPage())
			assert.Equal(t, tc.perPage, page.Paginator.PerPage())
			assert.Equal(t, tc.total, page.Paginator.Total())
			assert.Equal(t, tc.wantPath, page.Paginator.Path())
		})
	}
}

func TestDataPage_Errors(t *testing.T) {
	testCases := []struct {
		name       string
		ajax       bool
		serviceErr error
		wantCode   int
	}{
		{name: "not ajax", ajax: false, wantCode: http.StatusBadRequest},
		{name: "missing day", ajax: true, serviceErr: service.ErrLogNotFound, wantCode: http.StatusNotFound},
		{name: "malformed date", ajax: true, serviceErr: service.ErrInvalidDate, wantCode: http.StatusBadRequest},
		{name: "read failure", ajax: true, serviceErr: service.ErrCannotReadLog, wantCode: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := service_mock.NewMockLogViewer(ctrl)
			srv := newTestServer(t, svc, 10)

			if tc.serviceErr != nil {
				svc.EXPECT().Data(gomock.Any(), "2024-01-01", domain.LevelAll).Return(nil, tc.serviceErr)
			}

			rec := srv.do("/logviewer/data/2024-01-01/all", tc.ajax)
			assert.Equal(t, tc.wantCode, rec.Code)
		})
	}
}

func TestRegisterRoutes_Filters(t *testing.T) {
	ctrl := gomock.NewController(t)
	deny := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return echo.NewHTTPError(http.StatusForbidden)
		}
	}
	srv := newTestServer(t, service_mock.NewMockLogViewer(ctrl), 10, deny)

	for _, target := range []string{
		"/logviewer",
		"/logviewer/delete/2024-01-01",
		"/logviewer/2024-01-01/all",
		"/logviewer/data/2024-01-01/all",
	} {
		rec := srv.do(target, true)
		assert.Equal(t, http.StatusForbidden, rec.Code, target)
	}
}
