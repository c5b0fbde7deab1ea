package app

import (
	"context"

	"github.com/Egor213/LogViewer/internal/config"
	"github.com/Egor213/LogViewer/internal/repo"
	"github.com/Egor213/LogViewer/internal/repo/filedb"
	errorsUtils "github.com/Egor213/LogViewer/pkg/errors"
	"github.com/Egor213/LogViewer/pkg/postgres"
	log "github.com/sirupsen/logrus"
)

// NewRepositories opens the configured log store. The returned func releases
// it.
func NewRepositories(ctx context.Context, cfg *config.Config) (*repo.Repositories, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		Migrate(cfg.PG.URL)

		log.Info("Connecting to DB")
		pg, err := postgres.New(ctx, cfg.PG.URL, postgres.MaxPoolSize(cfg.PG.MaxPoolSize))
		if err != nil {
			return nil, nil, errorsUtils.WrapPathErr(err)
		}
		log.Info("Connected to DB")

		return repo.NewPostgresRepositories(pg), pg.Close, nil

	default:
		fileRepo, err := filedb.NewLogRepo(filedb.Options{
			Dir:    cfg.Storage.Dir,
			Prefix: cfg.Storage.FilePrefix,
			Suffix: cfg.Storage.FileSuffix,
		})
		if err != nil {
			return nil, nil, errorsUtils.WrapPathErr(err)
		}

		if cfg.Storage.Watch {
			if err := fileRepo.Watch(ctx); err != nil {
				log.WithError(err).Warn("Log directory is not watched, dates will be rescanned on every request")
			}
		}

		return repo.NewFileRepositories(fileRepo), func() {}, nil
	}
}
