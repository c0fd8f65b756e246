package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/fundedrank/fundedrank-api/infrastructure/database/postgres"
	"github.com/fundedrank/fundedrank-api/internal/domain"
)

const reviewsTable = "reviews r"

// ratingPrior and ratingPriorWeight smooth the display rating towards
// a neutral value so companies with very few reviews cannot jump to a
// perfect 5.0.
const (
	ratingPrior       = 3.5
	ratingPriorWeight = 10.0
)

type ReviewRepository interface {
	Insert(ctx context.Context, review *domain.Review) error
	GetByPublicID(ctx context.Context, publicID string) (*domain.Review, error)
	ListByStatus(ctx context.Context, status domain.ReviewStatus, limit int) ([]*domain.Review, error)
	UpdateStatus(ctx context.Context, publicID string, status domain.ReviewStatus, rejectReason *string) error
	CountByStatus(ctx context.Context, status domain.ReviewStatus) (int, error)
	RecomputeCompanyReviewStats(ctx context.Context, companyID int64) error
}

type reviewRepository struct {
	conn *postgres.Connection
}

func NewReviewRepository(conn *postgres.Connection) ReviewRepository {
	return &reviewRepository{
		conn: conn,
	}
}

func (r *reviewRepository) Insert(ctx context.Context, review *domain.Review) error {
	sqlQuery, args, err := squirrel.
		Insert("reviews").
		Columns(
			"public_id",
			"company_id",
			"author_name",
			"author_email",
			"rating",
			"title",
			"body",
			"recommended",
			"cat_trading_conditions",
			"cat_support",
			"cat_ux",
			"cat_payout_experience",
			"status",
		).
		Values(
			review.PublicID,
			review.CompanyID,
			review.AuthorName,
			review.AuthorEmail,
			review.Rating,
			review.Title,
			review.Body,
			review.Recommended,
			review.Categories.TradingConditions,
			review.Categories.Support,
			review.Categories.UX,
			review.Categories.PayoutExperience,
			review.Status,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building review insert")
	}

	if _, err := r.conn.Exec(ctx, sqlQuery, args...); err != nil {
		return errors.Wrap(err, "inserting review")
	}

	return nil
}

func (r *reviewRepository) GetByPublicID(ctx context.Context, publicID string) (*domain.Review, error) {
	sqlQuery, args, err := reviewSelect().
		Where(squirrel.Eq{"r.public_id": publicID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building review query")
	}

	rows, err := r.conn.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, errors.Wrap(err, "querying review by public ID")
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, errors.Wrap(err, "iterating review rows")
		}
		return nil, nil
	}

	review, err := scanReview(rows)
	if err != nil {
		return nil, errors.Wrap(err, "scanning review row")
	}

	return review, nil
}

func (r *reviewRepository) ListByStatus(ctx context.Context, status domain.ReviewStatus, limit int) ([]*domain.Review, error) {
	builder := reviewSelect().
		Where(squirrel.Eq{"r.status": status}).
		OrderBy("r.created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building review list query")
	}

	rows, err := r.conn.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, errors.Wrap(err, "querying reviews by status")
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scanning review row")
		}
		reviews = append(reviews, review)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating review rows")
	}

	return reviews, nil
}

func (r *reviewRepository) UpdateStatus(ctx context.Context, publicID string, status domain.ReviewStatus, rejectReason *string) error {
	sqlQuery, args, err := squirrel.
		Update("reviews").
		Set("status", status).
		Set("reject_reason", rejectReason).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"public_id": publicID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building review status update")
	}

	if _, err := r.conn.Exec(ctx, sqlQuery, args...); err != nil {
		return errors.Wrap(err, "updating review status")
	}

	return nil
}

func (r *reviewRepository) CountByStatus(ctx context.Context, status domain.ReviewStatus) (int, error) {
	sqlQuery, args, err := squirrel.
		Select("COUNT(*)").
		From(reviewsTable).
		Where(squirrel.Eq{"r.status": status}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "building review count query")
	}

	var count int
	if err := r.conn.QueryRow(ctx, sqlQuery, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "counting reviews")
	}

	return count, nil
}

// RecomputeCompanyReviewStats rebuilds the aggregate row that feeds the
// ranking from the approved reviews of one company, in a single
// transaction so a concurrent approval never observes half-updated
// aggregates.
func (r *reviewRepository) RecomputeCompanyReviewStats(ctx context.Context, companyID int64) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		aggQuery, args, err := squirrel.
			Select(
				"COUNT(*)",
				"AVG(r.rating)",
				"AVG(CASE WHEN r.recommended THEN 1.0 ELSE 0.0 END)",
				"COUNT(*) FILTER (WHERE r.created_at >= NOW() - INTERVAL '30 days')",
				"AVG(r.cat_trading_conditions)",
				"AVG(r.cat_support)",
				"AVG(r.cat_ux)",
				"AVG(r.cat_payout_experience)",
			).
			From(reviewsTable).
			Where(squirrel.Eq{"r.company_id": companyID, "r.status": domain.ReviewStatusApproved}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return errors.Wrap(err, "building review aggregate query")
		}

		var (
			reviewCount   int
			averageRating sql.NullFloat64
			recommended   sql.NullFloat64
			newReviews30d int
			catConditions sql.NullFloat64
			catSupport    sql.NullFloat64
			catUX         sql.NullFloat64
			catPayout     sql.NullFloat64
		)

		err = tx.QueryRowContext(ctx, aggQuery, args...).Scan(
			&reviewCount,
			&averageRating,
			&recommended,
			&newReviews30d,
			&catConditions,
			&catSupport,
			&catUX,
			&catPayout,
		)
		if err != nil {
			return errors.Wrap(err, "aggregating approved reviews")
		}

		var rating, avg interface{}
		if averageRating.Valid {
			smoothed := (averageRating.Float64*float64(reviewCount) + ratingPrior*ratingPriorWeight) /
				(float64(reviewCount) + ratingPriorWeight)
			rating = smoothed
			avg = averageRating.Float64
		}

		upsert, upsertArgs, err := squirrel.
			Insert("company_review_stats").
			Columns(
				"company_id",
				"rating",
				"review_count",
				"average_rating",
				"recommended_ratio",
				"new_reviews_30d",
				"cat_trading_conditions",
				"cat_support",
				"cat_ux",
				"cat_payout_experience",
			).
			Values(
				companyID,
				rating,
				reviewCount,
				avg,
				nullableFloat(recommended),
				newReviews30d,
				nullableFloat(catConditions),
				nullableFloat(catSupport),
				nullableFloat(catUX),
				nullableFloat(catPayout),
			).
			Suffix(`
				ON CONFLICT (company_id) DO UPDATE SET
					rating = EXCLUDED.rating,
					review_count = EXCLUDED.review_count,
					average_rating = EXCLUDED.average_rating,
					recommended_ratio = EXCLUDED.recommended_ratio,
					new_reviews_30d = EXCLUDED.new_reviews_30d,
					cat_trading_conditions = EXCLUDED.cat_trading_conditions,
					cat_support = EXCLUDED.cat_support,
					cat_ux = EXCLUDED.cat_ux,
					cat_payout_experience = EXCLUDED.cat_payout_experience,
					updated_at = CURRENT_TIMESTAMP
			`).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return errors.Wrap(err, "building review stats upsert")
		}

		if _, err := tx.ExecContext(ctx, upsert, upsertArgs...); err != nil {
			return errors.Wrap(err, "upserting review stats")
		}

		return nil
	})
}

func reviewSelect() squirrel.SelectBuilder {
	return squirrel.Select(
		"r.id",
		"r.public_id",
		"r.company_id",
		"c.slug",
		"r.author_name",
		"r.author_email",
		"r.rating",
		"r.title",
		"r.body",
		"r.recommended",
		"r.cat_trading_conditions",
		"r.cat_support",
		"r.cat_ux",
		"r.cat_payout_experience",
		"r.status",
		"r.reject_reason",
		"r.created_at",
		"r.updated_at",
	).
		From(reviewsTable).
		Join("companies c ON c.id = r.company_id")
}

func scanReview(rows *sql.Rows) (*domain.Review, error) {
	review := &domain.Review{}

	var (
		catConditions sql.NullFloat64
		catSupport    sql.NullFloat64
		catUX         sql.NullFloat64
		catPayout     sql.NullFloat64
		rejectReason  sql.NullString
	)

	err := rows.Scan(
		&review.ID,
		&review.PublicID,
		&review.CompanyID,
		&review.CompanySlug,
		&review.AuthorName,
		&review.AuthorEmail,
		&review.Rating,
		&review.Title,
		&review.Body,
		&review.Recommended,
		&catConditions,
		&catSupport,
		&catUX,
		&catPayout,
		&review.Status,
		&rejectReason,
		&review.CreatedAt,
		&review.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	review.Categories = domain.CategoryScores{
		TradingConditions: nullFloat(catConditions),
		Support:           nullFloat(catSupport),
		UX:                nullFloat(catUX),
		PayoutExperience:  nullFloat(catPayout),
	}

	if rejectReason.Valid {
		reason := rejectReason.String
		review.RejectReason = &reason
	}

	return review, nil
}

func nullableFloat(v sql.NullFloat64) interface{} {
	if !v.Valid {
		return nil
	}
	return v.Float64
}
