// Package paginator windows an in-memory sequence into numbered pages whose
// links share a fixed base path.
package paginator

import (
	"strconv"
	"strings"
)

const (
	DefaultPerPage = 20
	PageParam      = "page"
)

type Paginator struct {
	total       int
	perPage     int
	currentPage int
	lastPage    int
	path        string
}

// New builds a paginator for total items. A current page below 1 is treated
// as page 1; a non-positive perPage falls back to DefaultPerPage.
func New(total, perPage, currentPage int, path string) *Paginator {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if currentPage < 1 {
		currentPage = 1
	}
	if total < 0 {
		total = 0
	}

	lastPage := (total + perPage - 1) / perPage
	if lastPage < 1 {
		lastPage = 1
	}

	return &Paginator{
		total:       total,
		perPage:     perPage,
		currentPage: currentPage,
		lastPage:    lastPage,
		path:        path,
	}
}

func (p *Paginator) Total() int       { return p.total }
func (p *Paginator) PerPage() int     { return p.perPage }
func (p *Paginator) CurrentPage() int { return p.currentPage }
func (p *Paginator) LastPage() int    { return p.lastPage }
func (p *Paginator) Path() string     { return p.path }

// Offset is the zero-based index of the first item on the current page.
func (p *Paginator) Offset() int {
	return (p.currentPage - 1) * p.perPage
}

// FirstItem is the 1-based position of the first item on the current page,
// or 0 when the page is empty.
func (p *Paginator) FirstItem() int {
	if p.Offset() >= p.total {
		return 0
	}
	return p.Offset() + 1
}

func (p *Paginator) LastItem() int {
	first := p.FirstItem()
	if first == 0 {
		return 0
	}
	return min(first+p.perPage-1, p.total)
}

func (p *Paginator) HasPages() bool {
	return p.lastPage > 1
}

func (p *Paginator) OnFirstPage() bool {
	return p.currentPage <= 1
}

func (p *Paginator) HasMorePages() bool {
	return p.currentPage < p.lastPage
}

func (p *Paginator) URL(page int) string {
	if page < 1 {
		page = 1
	}
	sep := "?"
	if strings.Contains(p.path, "?") {
		sep = "&"
	}
	return p.path + sep + PageParam + "=" + strconv.Itoa(page)
}

func (p *Paginator) PreviousPageURL() string {
	if p.OnFirstPage() {
		return ""
	}
	return p.URL(p.currentPage - 1)
}

func (p *Paginator) NextPageURL() string {
	if !p.HasMorePages() {
		return ""
	}
	return p.URL(p.currentPage + 1)
}

func (p *Paginator) Pages() []int {
	pages := make([]int, p.lastPage)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}

// Slice returns the current page's window of items, clipped to len(items).
func Slice[T any](items []T, p *Paginator) []T {
	start := p.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := min(start+p.perPage, len(items))
	return items[start:end]
}
