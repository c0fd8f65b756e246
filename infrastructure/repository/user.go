package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/fundedrank/fundedrank-api/infrastructure/database/postgres"
	"github.com/fundedrank/fundedrank-api/internal/domain"
)

const usersTable = "users u"

type UserRepository interface {
	GetByExternalID(ctx context.Context, externalID string) (*domain.User, error)
	UpsertFromClaims(ctx context.Context, claims *domain.Claims) (*domain.User, error)
	ListServiceTokenHashes(ctx context.Context) ([]string, error)
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) GetByExternalID(ctx context.Context, externalID string) (*domain.User, error) {
	sqlQuery, args, err := squirrel.
		Select(
			"u.id",
			"u.external_id",
			"u.name",
			"u.email",
			"u.role",
			"u.avatar_url",
			"u.deleted",
			"u.deleted_at",
			"u.created_at",
			"u.updated_at",
		).
		From(usersTable).
		Where(squirrel.Eq{"u.external_id": externalID, "u.deleted": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building user query")
	}

	user := &domain.User{}
	var avatarURL sql.NullString
	var deletedAt sql.NullTime

	err = r.conn.QueryRow(ctx, sqlQuery, args...).Scan(
		&user.ID,
		&user.ExternalID,
		&user.Name,
		&user.Email,
		&user.Role,
		&avatarURL,
		&user.Deleted,
		&deletedAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "scanning user")
	}

	if avatarURL.Valid {
		url := avatarURL.String
		user.AvatarURL = &url
	}
	if deletedAt.Valid {
		t := deletedAt.Time
		user.DeletedAt = &t
	}

	return user, nil
}

// UpsertFromClaims syncs the identity-provider profile into the local
// users table on every authenticated request that needs the user row.
func (r *userRepository) UpsertFromClaims(ctx context.Context, claims *domain.Claims) (*domain.User, error) {
	sqlQuery, args, err := squirrel.
		Insert("users").
		Columns("external_id", "name", "email", "role").
		Values(claims.ExternalID, claims.Name, claims.Email, claims.Role).
		Suffix(`
			ON CONFLICT (external_id) DO UPDATE SET
				name = EXCLUDED.name,
				email = EXCLUDED.email,
				role = EXCLUDED.role,
				updated_at = CURRENT_TIMESTAMP
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building user upsert")
	}

	if _, err := r.conn.Exec(ctx, sqlQuery, args...); err != nil {
		return nil, errors.Wrap(err, "upserting user")
	}

	return r.GetByExternalID(ctx, claims.ExternalID)
}

// ListServiceTokenHashes returns the bcrypt hashes of every active
// machine token allowed to trigger cron endpoints.
func (r *userRepository) ListServiceTokenHashes(ctx context.Context) ([]string, error) {
	sqlQuery, args, err := squirrel.
		Select("st.token_hash").
		From("service_tokens st").
		Where(squirrel.Eq{"st.revoked": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building service token query")
	}

	rows, err := r.conn.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, errors.Wrap(err, "querying service tokens")
	}
	defer rows.Close()

	hashes := make([]string, 0)
	for rows.Next() {
		var hash string
		if err := rows.Scan(&hash); err != nil {
			return nil, errors.Wrap(err, "scanning service token row")
		}
		hashes = append(hashes, hash)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating service token rows")
	}

	return hashes, nil
}
