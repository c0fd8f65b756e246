// Package repository contains the data-access implementations.
package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/fundedrank/fundedrank-api/infrastructure/database/postgres"
	"github.com/fundedrank/fundedrank-api/internal/domain"
)

const (
	companiesTable = "companies c"

	reviewStatsJoin = "company_review_stats rs ON rs.company_id = c.id"
	clickStatsJoin  = "company_click_stats cs ON cs.company_id = c.id"
)

var companyFactsColumns = []string{
	"c.id",
	"c.slug",
	"c.name",
	"c.country",
	"c.founded_year",
	"c.headline",
	"c.logo_url",
	"rs.rating",
	"COALESCE(rs.review_count, 0)",
	"rs.average_rating",
	"rs.recommended_ratio",
	"COALESCE(rs.new_reviews_30d, 0)",
	"rs.cat_trading_conditions",
	"rs.cat_support",
	"rs.cat_ux",
	"rs.cat_payout_experience",
	"COALESCE(cs.favorites_count, 0)",
	"COALESCE(cs.clicks_30d, 0)",
	"COALESCE(cs.clicks_prev_30d, 0)",
	"c.cashback_average_points",
	"c.cashback_redeem_rate",
	"c.cashback_payout_hours",
	"c.has_cashback",
	"c.discount_code",
	"c.cashback_rate",
	"c.max_plan_price",
	"c.max_profit_split",
	"c.evaluation_models",
	"c.account_types",
}

type CompanyRepository interface {
	ListCompanyFacts(ctx context.Context) ([]*domain.CompanyFacts, error)
	GetFactsBySlug(ctx context.Context, slug string) (*domain.CompanyFacts, error)
	CountCompanies(ctx context.Context) (int, error)
}

type companyRepository struct {
	conn *postgres.Connection
}

func NewCompanyRepository(conn *postgres.Connection) CompanyRepository {
	return &companyRepository{
		conn: conn,
	}
}

func (r *companyRepository) ListCompanyFacts(ctx context.Context) ([]*domain.CompanyFacts, error) {
	sqlQuery, args, err := squirrel.
		Select(companyFactsColumns...).
		From(companiesTable).
		LeftJoin(reviewStatsJoin).
		LeftJoin(clickStatsJoin).
		Where(squirrel.Eq{"c.deleted": false}).
		OrderBy("c.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building company facts query")
	}

	rows, err := r.conn.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, errors.Wrap(err, "querying company facts")
	}
	defer rows.Close()

	facts := make([]*domain.CompanyFacts, 0)
	for rows.Next() {
		f, err := scanCompanyFacts(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scanning company facts row")
		}
		facts = append(facts, f)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating company facts rows")
	}

	return facts, nil
}

func (r *companyRepository) GetFactsBySlug(ctx context.Context, slug string) (*domain.CompanyFacts, error) {
	sqlQuery, args, err := squirrel.
		Select(companyFactsColumns...).
		From(companiesTable).
		LeftJoin(reviewStatsJoin).
		LeftJoin(clickStatsJoin).
		Where(squirrel.Eq{"c.slug": slug, "c.deleted": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building company facts query")
	}

	rows, err := r.conn.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, errors.Wrap(err, "querying company facts by slug")
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, errors.Wrap(err, "iterating company facts rows")
		}
		return nil, nil
	}

	f, err := scanCompanyFacts(rows)
	if err != nil {
		return nil, errors.Wrap(err, "scanning company facts row")
	}

	return f, nil
}

func (r *companyRepository) CountCompanies(ctx context.Context) (int, error) {
	sqlQuery, args, err := squirrel.
		Select("COUNT(*)").
		From(companiesTable).
		Where(squirrel.Eq{"c.deleted": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "building company count query")
	}

	var count int
	if err := r.conn.QueryRow(ctx, sqlQuery, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "counting companies")
	}

	return count, nil
}

func scanCompanyFacts(rows *sql.Rows) (*domain.CompanyFacts, error) {
	f := &domain.CompanyFacts{}

	var (
		foundedYear      sql.NullInt64
		rating           sql.NullFloat64
		averageRating    sql.NullFloat64
		recommendedRatio sql.NullFloat64
		catConditions    sql.NullFloat64
		catSupport       sql.NullFloat64
		catUX            sql.NullFloat64
		catPayout        sql.NullFloat64
		cashbackPoints   sql.NullFloat64
		cashbackRedeem   sql.NullFloat64
		cashbackPayout   sql.NullFloat64
		discountCode     sql.NullString
		cashbackRate     sql.NullFloat64
		maxPlanPrice     sql.NullFloat64
		maxProfitSplit   sql.NullFloat64
	)

	err := rows.Scan(
		&f.ID,
		&f.Slug,
		&f.Name,
		&f.Country,
		&foundedYear,
		&f.Headline,
		&f.LogoURL,
		&rating,
		&f.ReviewCount,
		&averageRating,
		&recommendedRatio,
		&f.NewReviews30d,
		&catConditions,
		&catSupport,
		&catUX,
		&catPayout,
		&f.FavoritesCount,
		&f.Clicks30d,
		&f.ClicksPrev30d,
		&cashbackPoints,
		&cashbackRedeem,
		&cashbackPayout,
		&f.HasCashback,
		&discountCode,
		&cashbackRate,
		&maxPlanPrice,
		&maxProfitSplit,
		pq.Array(&f.EvaluationModels),
		pq.Array(&f.AccountTypes),
	)
	if err != nil {
		return nil, err
	}

	if foundedYear.Valid {
		year := int(foundedYear.Int64)
		f.FoundedYear = &year
	}

	f.Rating = nullFloat(rating)
	f.AverageRating = nullFloat(averageRating)
	f.RecommendedRatio = nullFloat(recommendedRatio)
	f.CategoryScores = domain.CategoryScores{
		TradingConditions: nullFloat(catConditions),
		Support:           nullFloat(catSupport),
		UX:                nullFloat(catUX),
		PayoutExperience:  nullFloat(catPayout),
	}
	f.CashbackAveragePoints = nullFloat(cashbackPoints)
	f.CashbackRedeemRate = nullFloat(cashbackRedeem)
	f.CashbackPayoutHours = nullFloat(cashbackPayout)
	f.CashbackRate = nullFloat(cashbackRate)
	f.MaxPlanPrice = nullFloat(maxPlanPrice)
	f.MaxProfitSplit = nullFloat(maxProfitSplit)

	if discountCode.Valid {
		code := discountCode.String
		f.DiscountCode = &code
	}

	return f, nil
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	value := v.Float64
	return &value
}
