package pgdb

import (
	"time"

	"github.com/Egor213/LogViewer/internal/domain"
	"github.com/Egor213/LogViewer/internal/repo/repoerrs"
	sq "github.com/Masterminds/squirrel"
)

// DayBounds returns the UTC half-open interval [from, to) covering date.
func DayBounds(date domain.LogDate) (time.Time, time.Time, error) {
	from, err := time.ParseInLocation(domain.DateLayout, date, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, repoerrs.ErrInvalidDate
	}
	return from, from.AddDate(0, 0, 1), nil
}

func BuildDayFilters(date domain.LogDate, level domain.LogLevel) ([]sq.Sqlizer, error) {
	from, to, err := DayBounds(date)
	if err != nil {
		return nil, err
	}

	conds := []sq.Sqlizer{
		sq.GtOrEq{"logged_at": from},
		sq.Lt{"logged_at": to},
	}

	if level.IsSeverity() {
		conds = append(conds, sq.Eq{"level": string(level)})
	}

	return conds, nil
}
