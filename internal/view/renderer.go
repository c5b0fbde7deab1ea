package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/Egor213/LogViewer/internal/domain"
	"github.com/Egor213/LogViewer/pkg/flash"
	"github.com/Egor213/LogViewer/pkg/paginator"
	"github.com/labstack/echo/v4"
	"github.com/microcosm-cc/bluemonday"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

const (
	ShowTemplate = "show"
	DataTemplate = "data"
)

type ShowPage struct {
	Dates   []domain.LogDate
	Date    domain.LogDate
	URL     string
	DataURL string
	Levels  []domain.LogLevel
	Current domain.LogLevel
	Flash   *flash.Notice
}

type DataPage struct {
	Paginator *paginator.Paginator
	Log       []domain.LogEntry
}

// Renderer is the echo.Renderer for the viewer pages.
type Renderer struct {
	templates *template.Template
}

func New() (*Renderer, error) {
	policy := bluemonday.StrictPolicy()

	tmpl, err := template.New("").Funcs(template.FuncMap{
		"stack":      stackFunc(policy),
		"levelClass": levelClass,
		"levelURL":   levelURL,
	}).ParseFS(templatesFS, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Renderer{templates: tmpl}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	if err := r.templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return nil
}

// stackFunc strips markup from a stack trace and keeps its line breaks.
func stackFunc(policy *bluemonday.Policy) func(string) template.HTML {
	return func(stack string) template.HTML {
		clean := policy.Sanitize(stack)
		return template.HTML(strings.ReplaceAll(clean, "\n", "<br>\n"))
	}
}

func levelClass(level domain.LogLevel) string {
	switch level {
	case domain.LevelEmergency, domain.LevelAlert, domain.LevelCritical, domain.LevelError:
		return "danger"
	case domain.LevelWarning:
		return "warning"
	case domain.LevelNotice, domain.LevelInfo:
		return "info"
	default:
		return "default"
	}
}

func levelURL(base string, date domain.LogDate, level domain.LogLevel) string {
	return base + "/" + date + "/" + string(level)
}
