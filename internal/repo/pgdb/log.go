package pgdb

import (
	"context"

	"github.com/Egor213/LogViewer/internal/domain"
	"github.com/Egor213/LogViewer/internal/repo/repoerrs"
	errorsUtils "github.com/Egor213/LogViewer/pkg/errors"
	"github.com/Egor213/LogViewer/pkg/postgres"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

type LogRepo struct {
	*postgres.Postgres
}

func NewLogRepo(pg *postgres.Postgres) *LogRepo {
	return &LogRepo{pg}
}

func (r *LogRepo) Dates(ctx context.Context) ([]domain.LogDate, error) {
	sql, args, err := r.Builder.
		Select("DISTINCT to_char(logged_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day").
		From("logs").
		OrderBy("day DESC").
		ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	dates, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return dates, nil
}

func (r *LogRepo) Entries(ctx context.Context, date domain.LogDate, level domain.LogLevel) ([]domain.LogEntry, error) {
	conds, err := BuildDayFilters(date, level)
	if err != nil {
		return nil, err
	}

	sql, args, err := r.Builder.
		Select("level", "header", "stack", "logged_at").
		From("logs").
		Where(sq.And(conds)).
		OrderBy("logged_at", "id").
		ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.LogEntry])
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	if len(entries) == 0 {
		exists, err := r.dayExists(ctx, date)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, repoerrs.ErrNotFound
		}
		return []domain.LogEntry{}, nil
	}

	return entries, nil
}

func (r *LogRepo) dayExists(ctx context.Context, date domain.LogDate) (bool, error) {
	conds, err := BuildDayFilters(date, domain.LevelAll)
	if err != nil {
		return false, err
	}

	sql, args, err := r.Builder.
		Select("1").
		From("logs").
		Where(sq.And(conds)).
		Limit(1).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, errorsUtils.WrapPathErr(err)
	}

	var exists bool
	if err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, errorsUtils.WrapPathErr(err)
	}
	return exists, nil
}

func (r *LogRepo) Delete(ctx context.Context, date domain.LogDate) error {
	conds, err := BuildDayFilters(date, domain.LevelAll)
	if err != nil {
		return err
	}

	sql, args, err := r.Builder.
		Delete("logs").
		Where(sq.And(conds)).
		ToSql()
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	tag, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Exec(ctx, sql, args...)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	if tag.RowsAffected() == 0 {
		return repoerrs.ErrNotFound
	}
	return nil
}
