package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/fundedrank/fundedrank-api/infrastructure/database/postgres"
)

type FavoriteRepository interface {
	Add(ctx context.Context, userID int64, companyID int64) error
	Remove(ctx context.Context, userID int64, companyID int64) error
}

type favoriteRepository struct {
	conn *postgres.Connection
}

func NewFavoriteRepository(conn *postgres.Connection) FavoriteRepository {
	return &favoriteRepository{
		conn: conn,
	}
}

// Add stores the favorite and bumps the company counter in one
// transaction. Adding an existing favorite is a no-op.
func (r *favoriteRepository) Add(ctx context.Context, userID int64, companyID int64) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		insert, args, err := squirrel.
			Insert("favorites").
			Columns("user_id", "company_id").
			Values(userID, companyID).
			Suffix("ON CONFLICT (user_id, company_id) DO NOTHING").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return errors.Wrap(err, "building favorite insert")
		}

		result, err := tx.ExecContext(ctx, insert, args...)
		if err != nil {
			return errors.Wrap(err, "inserting favorite")
		}

		inserted, err := result.RowsAffected()
		if err != nil {
			return errors.Wrap(err, "reading favorite insert result")
		}
		if inserted == 0 {
			return nil
		}

		return adjustFavoritesCount(ctx, tx, companyID, 1)
	})
}

// Remove deletes the favorite and decrements the counter. Removing a
// favorite that does not exist is a no-op.
func (r *favoriteRepository) Remove(ctx context.Context, userID int64, companyID int64) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		del, args, err := squirrel.
			Delete("favorites").
			Where(squirrel.Eq{"user_id": userID, "company_id": companyID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return errors.Wrap(err, "building favorite delete")
		}

		result, err := tx.ExecContext(ctx, del, args...)
		if err != nil {
			return errors.Wrap(err, "deleting favorite")
		}

		deleted, err := result.RowsAffected()
		if err != nil {
			return errors.Wrap(err, "reading favorite delete result")
		}
		if deleted == 0 {
			return nil
		}

		return adjustFavoritesCount(ctx, tx, companyID, -1)
	})
}

func adjustFavoritesCount(ctx context.Context, tx *sql.Tx, companyID int64, delta int) error {
	upsert, args, err := squirrel.
		Insert("company_click_stats").
		Columns("company_id", "favorites_count").
		Values(companyID, maxInt(delta, 0)).
		Suffix(`
			ON CONFLICT (company_id) DO UPDATE SET
				favorites_count = GREATEST(company_click_stats.favorites_count + `+deltaLiteral(delta)+`, 0),
				updated_at = CURRENT_TIMESTAMP
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building favorites count upsert")
	}

	if _, err := tx.ExecContext(ctx, upsert, args...); err != nil {
		return errors.Wrap(err, "adjusting favorites count")
	}

	return nil
}

func deltaLiteral(delta int) string {
	if delta >= 0 {
		return "1"
	}
	return "-1"
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
