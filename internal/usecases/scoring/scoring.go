// Package scoring turns raw per-company facts into the six-dimension
// score record used by every ranking view.
//
// All dimensions live on a 0-100 scale. Metrics whose absolute size
// depends on the dataset (favorites, review counts, clicks, cashback
// points) are normalized against the maximum observed value in the
// current result set, so one large company cannot flatten everyone
// else's scores.
package scoring

import (
	"math"

	"github.com/fundedrank/fundedrank-api/internal/config"
	"github.com/fundedrank/fundedrank-api/internal/domain"
	"github.com/fundedrank/fundedrank-api/pkg/utils"
)

const (
	// scoreFloor is the neutral low score used when a dimension has no
	// usable data. Every company gets a complete score record, so
	// downstream filtering and sorting never special-case nulls.
	scoreFloor = 5.0

	// trendClamp caps the trend ratio fed into the growth score at
	// ±300%, keeping a single viral spike from dominating the scale.
	trendClamp = 3.0

	// payoutHorizonHours is the payout time considered "slowest
	// reasonable"; payouts at or beyond it score zero on speed.
	payoutHorizonHours = 168.0
)

// TrendRatio is the relative change between the two consecutive 30-day
// click windows. The denominator is floored at 1, so the result is
// always finite.
func TrendRatio(clicks30d, clicksPrev30d int) float64 {
	prev := clicksPrev30d
	if prev < 1 {
		prev = 1
	}
	return float64(clicks30d-clicksPrev30d) / float64(prev)
}

// MaxValues scans the result set and records the maximum observed
// value per normalized metric.
func MaxValues(facts []*domain.CompanyFacts) domain.RankingMaxValues {
	var max domain.RankingMaxValues

	for _, f := range facts {
		max.Favorites = math.Max(max.Favorites, float64(f.FavoritesCount))
		max.Reviews = math.Max(max.Reviews, float64(f.ReviewCount))
		max.NewReviews30d = math.Max(max.NewReviews30d, float64(f.NewReviews30d))
		max.Clicks30d = math.Max(max.Clicks30d, float64(f.Clicks30d))

		if f.CashbackAveragePoints != nil {
			max.CashbackPoints = math.Max(max.CashbackPoints, *f.CashbackAveragePoints)
		}
		if f.CashbackRedeemRate != nil {
			max.CashbackRedeemRate = math.Max(max.CashbackRedeemRate, *f.CashbackRedeemRate)
		}
		if f.MaxProfitSplit != nil {
			max.MaxProfitSplit = math.Max(max.MaxProfitSplit, *f.MaxProfitSplit)
		}
		if f.MaxPlanPrice != nil {
			max.MaxPlanPrice = math.Max(max.MaxPlanPrice, *f.MaxPlanPrice)
		}
	}

	return max
}

// BuildSnapshot computes the derived fields for one company. The same
// facts, max values and weights always produce the same snapshot.
func BuildSnapshot(facts *domain.CompanyFacts, max domain.RankingMaxValues, weights config.ScoreWeights) domain.CompanySnapshot {
	trend := TrendRatio(facts.Clicks30d, facts.ClicksPrev30d)

	scores := domain.Scores{
		Conditions: conditionsScore(facts, max),
		Payouts:    payoutsScore(facts),
		Community:  communityScore(facts, max),
		Cashback:   cashbackScore(facts, max),
		Growth:     growthScore(trend),
	}
	scores.Overall = Overall(scores, weights)

	return domain.CompanySnapshot{
		CompanyFacts: *facts,
		TrendRatio:   utils.RoundWithTwoDecimalPlace(trend),
		Scores:       scores,
	}
}

// Overall is the fixed-weight sum of the five partial dimensions.
func Overall(scores domain.Scores, weights config.ScoreWeights) float64 {
	return utils.RoundWithTwoDecimalPlace(
		scores.Conditions*weights.Conditions +
			scores.Payouts*weights.Payouts +
			scores.Community*weights.Community +
			scores.Cashback*weights.Cashback +
			scores.Growth*weights.Growth,
	)
}

// conditionsScore blends the profit split, the trading-conditions
// category rating and the overall display rating.
func conditionsScore(facts *domain.CompanyFacts, max domain.RankingMaxValues) float64 {
	parts := make([]float64, 0, 3)

	if v := normalized(facts.MaxProfitSplit, max.MaxProfitSplit); v != nil {
		parts = append(parts, *v)
	}
	if v := ratingScale(facts.CategoryScores.TradingConditions); v != nil {
		parts = append(parts, *v)
	}
	if v := ratingScale(facts.Rating); v != nil {
		parts = append(parts, *v)
	}

	return finish(parts)
}

// payoutsScore blends the payout-experience category rating with the
// cashback payout speed.
func payoutsScore(facts *domain.CompanyFacts) float64 {
	parts := make([]float64, 0, 2)

	if v := ratingScale(facts.CategoryScores.PayoutExperience); v != nil {
		parts = append(parts, *v)
	}
	if h := facts.CashbackPayoutHours; h != nil && isUsable(*h) {
		hours := math.Min(math.Max(*h, 0), payoutHorizonHours)
		parts = append(parts, 100*(1-hours/payoutHorizonHours))
	}

	return finish(parts)
}

// communityScore blends favorites, fresh reviews and total review
// volume, each max-normalized against the current result set.
func communityScore(facts *domain.CompanyFacts, max domain.RankingMaxValues) float64 {
	parts := make([]float64, 0, 3)

	fav := float64(facts.FavoritesCount)
	if v := normalized(&fav, max.Favorites); v != nil {
		parts = append(parts, *v)
	}
	fresh := float64(facts.NewReviews30d)
	if v := normalized(&fresh, max.NewReviews30d); v != nil {
		parts = append(parts, *v)
	}
	total := float64(facts.ReviewCount)
	if v := normalized(&total, max.Reviews); v != nil {
		parts = append(parts, *v)
	}

	return finish(parts)
}

// cashbackScore rates the cashback program. Companies without one get
// the floor, never a null.
func cashbackScore(facts *domain.CompanyFacts, max domain.RankingMaxValues) float64 {
	if !facts.HasCashback {
		return scoreFloor
	}

	parts := make([]float64, 0, 3)

	if v := normalized(facts.CashbackAveragePoints, max.CashbackPoints); v != nil {
		parts = append(parts, *v)
	}
	if v := normalized(facts.CashbackRedeemRate, max.CashbackRedeemRate); v != nil {
		parts = append(parts, *v)
	}
	if r := facts.CashbackRate; r != nil && isUsable(*r) {
		parts = append(parts, utils.Clamp(*r*100, 0, 100))
	}

	return finish(parts)
}

// growthScore maps the clamped trend ratio onto 0-100, with a flat
// trend landing at the neutral 50.
func growthScore(trendRatio float64) float64 {
	clamped := utils.Clamp(trendRatio, -trendClamp, trendClamp)
	return utils.RoundWithTwoDecimalPlace((clamped + trendClamp) / (2 * trendClamp) * 100)
}

// normalized maps a metric onto 0-100 relative to the dataset maximum.
// Nil input, non-finite input or an empty dataset maximum all mean "no
// usable data" and yield nil.
func normalized(value *float64, max float64) *float64 {
	if value == nil || !isUsable(*value) || max <= 0 {
		return nil
	}
	v := utils.Clamp(*value/max*100, 0, 100)
	return &v
}

// ratingScale maps a 1-5 rating onto 0-100.
func ratingScale(rating *float64) *float64 {
	if rating == nil || !isUsable(*rating) {
		return nil
	}
	v := utils.Clamp(*rating/5*100, 0, 100)
	return &v
}

// finish averages the usable components, applying the floor when the
// result is below it or no component was usable at all.
func finish(parts []float64) float64 {
	if len(parts) == 0 {
		return scoreFloor
	}

	var sum float64
	for _, p := range parts {
		sum += p
	}

	return utils.RoundWithTwoDecimalPlace(math.Max(sum/float64(len(parts)), scoreFloor))
}

func isUsable(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
