package filedb

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/Egor213/LogViewer/internal/domain"
	"github.com/Egor213/LogViewer/internal/repo/repoerrs"
	errorsUtils "github.com/Egor213/LogViewer/pkg/errors"
	"github.com/gobwas/glob"
)

type Options struct {
	Dir    string
	Prefix string
	Suffix string
}

// LogRepo reads one log file per day from a directory. The list of dates is
// cached only while a watcher keeps it fresh.
type LogRepo struct {
	dir     string
	prefix  string
	suffix  string
	matcher glob.Glob

	mu      sync.RWMutex
	caching bool
	gen     uint64
	dates   []domain.LogDate
}

func NewLogRepo(opts Options) (*LogRepo, error) {
	pattern := glob.QuoteMeta(opts.Prefix) + "????-??-??" + glob.QuoteMeta(opts.Suffix)
	matcher, err := glob.Compile(pattern)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return &LogRepo{
		dir:     opts.Dir,
		prefix:  opts.Prefix,
		suffix:  opts.Suffix,
		matcher: matcher,
	}, nil
}

func (r *LogRepo) fileName(date domain.LogDate) string {
	return r.prefix + date + r.suffix
}

func (r *LogRepo) path(date domain.LogDate) (string, error) {
	if !domain.ValidDate(date) {
		return "", repoerrs.ErrInvalidDate
	}
	return filepath.Join(r.dir, r.fileName(date)), nil
}

// dateOf extracts the date from a log file name, or "" when name is not a
// daily log.
func (r *LogRepo) dateOf(name string) domain.LogDate {
	if !r.matcher.Match(name) {
		return ""
	}
	date := strings.TrimSuffix(strings.TrimPrefix(name, r.prefix), r.suffix)
	if !domain.ValidDate(date) {
		return ""
	}
	return date
}

func (r *LogRepo) Dates(ctx context.Context) ([]domain.LogDate, error) {
	r.mu.RLock()
	if r.caching && r.dates != nil {
		out := append([]domain.LogDate(nil), r.dates...)
		r.mu.RUnlock()
		return out, nil
	}
	gen := r.gen
	r.mu.RUnlock()

	dates, err := r.scan()
	if err != nil {
		return nil, err
	}

	// a change seen while scanning makes this result stale
	r.mu.Lock()
	if r.caching && r.gen == gen {
		r.dates = dates
	}
	r.mu.Unlock()

	return append([]domain.LogDate(nil), dates...), nil
}

func (r *LogRepo) scan() ([]domain.LogDate, error) {
	items, err := os.ReadDir(r.dir)
	if err != nil {
		if errorsUtils.IsNotExist(err) {
			return []domain.LogDate{}, nil
		}
		return nil, errorsUtils.WrapPathErr(err)
	}

	dates := make([]domain.LogDate, 0, len(items))
	for _, item := range items {
		if item.IsDir() {
			continue
		}
		if date := r.dateOf(item.Name()); date != "" {
			dates = append(dates, date)
		}
	}

	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates, nil
}

func (r *LogRepo) Entries(ctx context.Context, date domain.LogDate, level domain.LogLevel) ([]domain.LogEntry, error) {
	path, err := r.path(date)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, mapFSErr(err)
	}
	defer f.Close()

	entries, err := ParseEntries(f, level)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	return entries, nil
}

func (r *LogRepo) Delete(ctx context.Context, date domain.LogDate) error {
	path, err := r.path(date)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		return mapFSErr(err)
	}

	r.invalidate()
	return nil
}

func (r *LogRepo) invalidate() {
	r.mu.Lock()
	r.gen++
	r.dates = nil
	r.mu.Unlock()
}

func mapFSErr(err error) error {
	switch {
	case errorsUtils.IsNotExist(err):
		return repoerrs.ErrNotFound
	case errorsUtils.IsPermission(err):
		return repoerrs.ErrPermissionDenied
	default:
		return errorsUtils.WrapPathErr(err)
	}
}
