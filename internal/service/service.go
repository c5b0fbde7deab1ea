package service

import (
	"context"
	"time"

	"github.com/Egor213/LogViewer/internal/broker"
	"github.com/Egor213/LogViewer/internal/domain"
	"github.com/Egor213/LogViewer/internal/metrics"
	"github.com/Egor213/LogViewer/internal/repo"
)

// LogViewer is the log reading service behind the viewer pages.
type LogViewer interface {
	Dates(ctx context.Context) ([]domain.LogDate, error)
	Levels() []domain.LogLevel
	Data(ctx context.Context, date domain.LogDate, level domain.LogLevel) ([]domain.LogEntry, error)
	Delete(ctx context.Context, date domain.LogDate) error
}

type Services struct {
	LogViewer
}

type ServicesDependencies struct {
	Repos          *repo.Repositories
	Counters       *metrics.Counters
	BrokerProducer broker.Producer
	Clock          func() time.Time
}

func NewServices(deps ServicesDependencies) *Services {
	return &Services{
		LogViewer: NewLogViewerService(deps.Repos.Log, deps.Counters, deps.BrokerProducer, deps.Clock),
	}
}
