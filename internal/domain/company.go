// Package domain contains the data structures shared across the application.
package domain

// CategoryScores are the four review sub-ratings on a 1-5 scale. A nil
// field means the companies' reviews did not collect enough answers for
// that category yet.
type CategoryScores struct {
	TradingConditions *float64 `json:"tradingConditions"`
	Support           *float64 `json:"support"`
	UX                *float64 `json:"ux"`
	PayoutExperience  *float64 `json:"payoutExperience"`
}

// CompanyFacts is the raw per-company projection returned by the data
// layer. Every nullable metric is a pointer: nil means "insufficient
// data" and must never be read as zero.
type CompanyFacts struct {
	ID          int64   `json:"id"`
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	FoundedYear *int    `json:"foundedYear"`
	Headline    string  `json:"headline"`
	LogoURL     string  `json:"logoUrl"`

	Rating           *float64       `json:"rating"`
	ReviewCount      int            `json:"reviewCount"`
	AverageRating    *float64       `json:"averageRating"`
	RecommendedRatio *float64       `json:"recommendedRatio"`
	NewReviews30d    int            `json:"newReviews30d"`
	CategoryScores   CategoryScores `json:"categoryScores"`

	FavoritesCount int `json:"favoritesCount"`
	Clicks30d      int `json:"clicks30d"`
	ClicksPrev30d  int `json:"clicksPrev30d"`

	CashbackAveragePoints *float64 `json:"cashbackAveragePoints"`
	CashbackRedeemRate    *float64 `json:"cashbackRedeemRate"`
	CashbackPayoutHours   *float64 `json:"cashbackPayoutHours"`
	HasCashback           bool     `json:"hasCashback"`
	DiscountCode          *string  `json:"discountCode"`
	CashbackRate          *float64 `json:"cashbackRate"`

	MaxPlanPrice     *float64 `json:"maxPlanPrice"`
	MaxProfitSplit   *float64 `json:"maxProfitSplit"`
	EvaluationModels []string `json:"evaluationModels"`
	AccountTypes     []string `json:"accountTypes"`
}

// Scores is the six-dimension weighted record computed once per snapshot
// build. Overall is always the fixed-weight sum of the other five.
type Scores struct {
	Overall    float64 `json:"overall"`
	Conditions float64 `json:"conditions"`
	Payouts    float64 `json:"payouts"`
	Community  float64 `json:"community"`
	Cashback   float64 `json:"cashback"`
	Growth     float64 `json:"growth"`
}

// CompanySnapshot is the read-only ranking projection for one company.
// It is built fresh on every dataset request and immutable afterwards.
type CompanySnapshot struct {
	CompanyFacts

	// TrendRatio is the relative change between the two 30-day click
	// windows, always finite.
	TrendRatio float64 `json:"trendRatio"`
	Scores     Scores  `json:"scores"`
}

// RankingMaxValues holds the maximum observed value per metric across
// the current (filtered) result set, used for max-value normalization.
type RankingMaxValues struct {
	Favorites          float64 `json:"favorites"`
	Reviews            float64 `json:"reviews"`
	NewReviews30d      float64 `json:"newReviews30d"`
	Clicks30d          float64 `json:"clicks30d"`
	CashbackPoints     float64 `json:"cashbackPoints"`
	CashbackRedeemRate float64 `json:"cashbackRedeemRate"`
	MaxProfitSplit     float64 `json:"maxProfitSplit"`
	MaxPlanPrice       float64 `json:"maxPlanPrice"`
}
