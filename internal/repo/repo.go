package repo

import (
	"context"

	"github.com/Egor213/LogViewer/internal/domain"
	"github.com/Egor213/LogViewer/internal/repo/filedb"
	"github.com/Egor213/LogViewer/internal/repo/pgdb"
	"github.com/Egor213/LogViewer/pkg/postgres"
)

// Log is a store of daily logs. Missing days are reported as
// repoerrs.ErrNotFound, malformed dates as repoerrs.ErrInvalidDate.
type Log interface {
	Dates(ctx context.Context) ([]domain.LogDate, error)
	Entries(ctx context.Context, date domain.LogDate, level domain.LogLevel) ([]domain.LogEntry, error)
	Delete(ctx context.Context, date domain.LogDate) error
}

type Repositories struct {
	Log
}

func NewFileRepositories(lr *filedb.LogRepo) *Repositories {
	return &Repositories{
		Log: lr,
	}
}

func NewPostgresRepositories(pg *postgres.Postgres) *Repositories {
	return &Repositories{
		Log: pgdb.NewLogRepo(pg),
	}
}
