package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Egor213/LogViewer/internal/broker"
	"github.com/Egor213/LogViewer/internal/domain"
	"github.com/Egor213/LogViewer/internal/metrics"
	"github.com/Egor213/LogViewer/internal/repo"
	"github.com/Egor213/LogViewer/internal/repo/repoerrs"
	errorsUtils "github.com/Egor213/LogViewer/pkg/errors"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type LogViewerService struct {
	logRepo  repo.Log
	counters *metrics.Counters
	producer broker.Producer
	now      func() time.Time
}

func NewLogViewerService(lr repo.Log, cnt *metrics.Counters, producer broker.Producer, clock func() time.Time) *LogViewerService {
	if producer == nil {
		producer = broker.NopProducer{}
	}
	if clock == nil {
		clock = time.Now
	}
	return &LogViewerService{
		logRepo:  lr,
		counters: cnt,
		producer: producer,
		now:      clock,
	}
}

func (s *LogViewerService) Dates(ctx context.Context) ([]domain.LogDate, error) {
	dates, err := s.logRepo.Dates(ctx)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(errors.Join(ErrCannotReadLog, err))
	}
	return dates, nil
}

func (s *LogViewerService) Levels() []domain.LogLevel {
	return domain.Levels()
}

func (s *LogViewerService) Data(ctx context.Context, date domain.LogDate, level domain.LogLevel) ([]domain.LogEntry, error) {
	entries, err := s.logRepo.Entries(ctx, date, level)
	if err != nil {
		return nil, mapRepoErr(err, ErrCannotReadLog)
	}
	return entries, nil
}

// DeletionEvent is published after a day's log has been removed.
type DeletionEvent struct {
	ID        string         `json:"id"`
	Date      domain.LogDate `json:"date"`
	DeletedAt time.Time      `json:"deleted_at"`
}

func (s *LogViewerService) Delete(ctx context.Context, date domain.LogDate) error {
	if err := s.logRepo.Delete(ctx, date); err != nil {
		s.counters.LogsDeleted.Inc("failed")
		return mapRepoErr(err, ErrCannotDeleteLog)
	}
	s.counters.LogsDeleted.Inc("ok")

	s.publishDeletion(ctx, date)
	return nil
}

// publishDeletion only logs failures; the log is already gone.
func (s *LogViewerService) publishDeletion(ctx context.Context, date domain.LogDate) {
	event := DeletionEvent{
		ID:        uuid.NewString(),
		Date:      date,
		DeletedAt: s.now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.WithError(err).Error("Failed to encode deletion event")
		return
	}

	if err := s.producer.SendMessage(ctx, []byte(date), payload); err != nil {
		log.WithFields(log.Fields{
			"date":     date,
			"event_id": event.ID,
			"error":    err,
		}).Warn("Failed to publish deletion event")
	}
}

func mapRepoErr(err, fallback error) error {
	switch {
	case errors.Is(err, repoerrs.ErrNotFound):
		return ErrLogNotFound
	case errors.Is(err, repoerrs.ErrInvalidDate):
		return ErrInvalidDate
	case errors.Is(err, repoerrs.ErrPermissionDenied):
		return ErrLogPermissionDenied
	default:
		return errorsUtils.WrapPathErr(errors.Join(fallback, err))
	}
}
