package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/fundedrank/fundedrank-api/infrastructure/database/postgres"
	"github.com/fundedrank/fundedrank-api/internal/domain"
)

const clickEventsTable = "click_events ce"

type ClickRepository interface {
	Insert(ctx context.Context, event *domain.ClickEvent) error
	WindowCounts(ctx context.Context, ref time.Time) ([]domain.ClickWindow, error)
	UpsertStats(ctx context.Context, windows []domain.ClickWindow) error
	TotalClicksSince(ctx context.Context, since time.Time) (int, error)
}

type clickRepository struct {
	conn *postgres.Connection
}

func NewClickRepository(conn *postgres.Connection) ClickRepository {
	return &clickRepository{
		conn: conn,
	}
}

func (r *clickRepository) Insert(ctx context.Context, event *domain.ClickEvent) error {
	sqlQuery, args, err := squirrel.
		Insert("click_events").
		Columns("public_id", "company_id", "intent", "tab", "position", "ip_hash").
		Values(event.PublicID, event.CompanyID, event.Intent, event.Tab, event.Position, event.IPHash).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building click insert")
	}

	if _, err := r.conn.Exec(ctx, sqlQuery, args...); err != nil {
		return errors.Wrap(err, "inserting click event")
	}

	return nil
}

// WindowCounts counts clicks per company for the 30-day window ending
// at ref and the 30-day window before it.
func (r *clickRepository) WindowCounts(ctx context.Context, ref time.Time) ([]domain.ClickWindow, error) {
	windowStart := ref.AddDate(0, 0, -30)
	prevWindowStart := ref.AddDate(0, 0, -60)

	sqlQuery, args, err := squirrel.
		Select("ce.company_id").
		Column(squirrel.Expr(
			"COUNT(*) FILTER (WHERE ce.created_at >= ? AND ce.created_at < ?)",
			windowStart, ref,
		)).
		Column(squirrel.Expr(
			"COUNT(*) FILTER (WHERE ce.created_at >= ? AND ce.created_at < ?)",
			prevWindowStart, windowStart,
		)).
		From(clickEventsTable).
		Where(squirrel.GtOrEq{"ce.created_at": prevWindowStart}).
		Where(squirrel.Lt{"ce.created_at": ref}).
		GroupBy("ce.company_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building click window query")
	}

	rows, err := r.conn.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, errors.Wrap(err, "querying click windows")
	}
	defer rows.Close()

	windows := make([]domain.ClickWindow, 0)
	for rows.Next() {
		var w domain.ClickWindow
		if err := rows.Scan(&w.CompanyID, &w.Clicks30d, &w.ClicksPrev30d); err != nil {
			return nil, errors.Wrap(err, "scanning click window row")
		}
		windows = append(windows, w)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating click window rows")
	}

	return windows, nil
}

func (r *clickRepository) UpsertStats(ctx context.Context, windows []domain.ClickWindow) error {
	if len(windows) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("company_click_stats").
		Columns("company_id", "clicks_30d", "clicks_prev_30d").
		PlaceholderFormat(squirrel.Dollar)

	for _, w := range windows {
		query = query.Values(w.CompanyID, w.Clicks30d, w.ClicksPrev30d)
	}

	query = query.Suffix(`
		ON CONFLICT (company_id) DO UPDATE SET
			clicks_30d = EXCLUDED.clicks_30d,
			clicks_prev_30d = EXCLUDED.clicks_prev_30d,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return errors.Wrap(err, "building click stats upsert")
	}

	if _, err := r.conn.Exec(ctx, sqlQuery, args...); err != nil {
		return errors.Wrap(err, "upserting click stats")
	}

	return nil
}

func (r *clickRepository) TotalClicksSince(ctx context.Context, since time.Time) (int, error) {
	sqlQuery, args, err := squirrel.
		Select("COUNT(*)").
		From(clickEventsTable).
		Where(squirrel.GtOrEq{"ce.created_at": since}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "building click count query")
	}

	var count int
	if err := r.conn.QueryRow(ctx, sqlQuery, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "counting clicks")
	}

	return count, nil
}
