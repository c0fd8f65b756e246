// Package ranking builds the public ranking views: the filterable
// dataset, the reviews ranking and the home-ranking tabs.
package ranking

import (
	"context"
	"sort"
	"strings"

	"github.com/fundedrank/fundedrank-api/infrastructure/repository"
	"github.com/fundedrank/fundedrank-api/internal/config"
	"github.com/fundedrank/fundedrank-api/internal/domain"
	"github.com/fundedrank/fundedrank-api/internal/usecases/scoring"
	"github.com/fundedrank/fundedrank-api/pkg/format"
	"github.com/fundedrank/fundedrank-api/pkg/utils"
)

const (
	defaultReviewsLimit = 50
	homeTabSize         = 10
)

type RankingService interface {
	GetRankingsDataset(ctx context.Context, filters domain.RankingFilters) (*domain.RankingsDataset, error)
	GetReviewsRanking(ctx context.Context, opts domain.ReviewsRankingOptions) (*domain.ReviewsRanking, error)
	GetHomeRanking(ctx context.Context, tab domain.RankingTab) (*domain.HomeRanking, error)
	GetCompanySnapshot(ctx context.Context, slug string) (*domain.CompanySnapshot, error)
}

type rankingService struct {
	companyRepo repository.CompanyRepository
	weights     config.ScoreWeights
}

func NewRankingService(companyRepo repository.CompanyRepository, weights config.ScoreWeights) RankingService {
	return &rankingService{
		companyRepo: companyRepo,
		weights:     weights.Normalize(),
	}
}

// GetRankingsDataset filters the company universe, then normalizes and
// scores against the filtered set, so the returned max values always
// describe what the caller can see.
func (s *rankingService) GetRankingsDataset(ctx context.Context, filters domain.RankingFilters) (*domain.RankingsDataset, error) {
	facts, err := s.companyRepo.ListCompanyFacts(ctx)
	if err != nil {
		return nil, err
	}

	filtered := applyFilters(facts, filters)
	maxValues := scoring.MaxValues(filtered)

	companies := make([]domain.CompanySnapshot, 0, len(filtered))
	for _, f := range filtered {
		companies = append(companies, scoring.BuildSnapshot(f, maxValues, s.weights))
	}

	sort.SliceStable(companies, func(i, j int) bool {
		if companies[i].Scores.Overall != companies[j].Scores.Overall {
			return companies[i].Scores.Overall > companies[j].Scores.Overall
		}
		return lessTieBreak(&companies[i], &companies[j])
	})

	return &domain.RankingsDataset{
		TotalCompanies:            len(facts),
		FilteredCompanies:         len(companies),
		Companies:                 companies,
		MaxValues:                 maxValues,
		AvailableCountries:        collectValues(filtered, func(f *domain.CompanyFacts) []string { return singleton(f.Country) }),
		AvailableEvaluationModels: collectValues(filtered, func(f *domain.CompanyFacts) []string { return f.EvaluationModels }),
		AvailableAccountTypes:     collectValues(filtered, func(f *domain.CompanyFacts) []string { return f.AccountTypes }),
	}, nil
}

// GetReviewsRanking orders companies by a review-centric sort key and
// positions them 1-based.
func (s *rankingService) GetReviewsRanking(ctx context.Context, opts domain.ReviewsRankingOptions) (*domain.ReviewsRanking, error) {
	facts, err := s.companyRepo.ListCompanyFacts(ctx)
	if err != nil {
		return nil, err
	}

	minReviews := opts.MinReviews
	if minReviews < 0 {
		minReviews = 0
	}

	eligible := make([]*domain.CompanyFacts, 0, len(facts))
	for _, f := range facts {
		if f.ReviewCount >= minReviews {
			eligible = append(eligible, f)
		}
	}

	maxValues := scoring.MaxValues(eligible)
	snapshots := make([]domain.CompanySnapshot, 0, len(eligible))
	for _, f := range eligible {
		snapshots = append(snapshots, scoring.BuildSnapshot(f, maxValues, s.weights))
	}

	sortSnapshots(snapshots, opts.Sort, opts.Direction)

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultReviewsLimit
	}
	if limit > len(snapshots) {
		limit = len(snapshots)
	}

	items := make([]domain.ReviewsRankingItem, 0, limit)
	for i := 0; i < limit; i++ {
		items = append(items, domain.ReviewsRankingItem{
			Position: i + 1,
			Company:  snapshots[i],
		})
	}

	return &domain.ReviewsRanking{
		Summary: summarize(snapshots),
		Items:   items,
	}, nil
}

// GetHomeRanking returns the top slice of one home tab, each entry
// carrying its deterministic tracking link.
func (s *rankingService) GetHomeRanking(ctx context.Context, tab domain.RankingTab) (*domain.HomeRanking, error) {
	facts, err := s.companyRepo.ListCompanyFacts(ctx)
	if err != nil {
		return nil, err
	}

	if tab == domain.TabCashback {
		withCashback := make([]*domain.CompanyFacts, 0, len(facts))
		for _, f := range facts {
			if f.HasCashback {
				withCashback = append(withCashback, f)
			}
		}
		facts = withCashback
	}

	maxValues := scoring.MaxValues(facts)
	snapshots := make([]domain.CompanySnapshot, 0, len(facts))
	for _, f := range facts {
		snapshots = append(snapshots, scoring.BuildSnapshot(f, maxValues, s.weights))
	}

	sort.SliceStable(snapshots, func(i, j int) bool {
		a, b := &snapshots[i], &snapshots[j]
		switch tab {
		case domain.TabCashback:
			if a.Scores.Cashback != b.Scores.Cashback {
				return a.Scores.Cashback > b.Scores.Cashback
			}
		case domain.TabTrending:
			if a.TrendRatio != b.TrendRatio {
				return a.TrendRatio > b.TrendRatio
			}
		case domain.TabNewest:
			ay, by := foundedYear(a), foundedYear(b)
			if ay != by {
				return ay > by
			}
		default:
			if a.Scores.Overall != b.Scores.Overall {
				return a.Scores.Overall > b.Scores.Overall
			}
		}
		return lessTieBreak(a, b)
	})

	size := homeTabSize
	if size > len(snapshots) {
		size = len(snapshots)
	}

	entries := make([]domain.HomeRankingEntry, 0, size)
	for i := 0; i < size; i++ {
		position := i + 1
		entries = append(entries, domain.HomeRankingEntry{
			Position: position,
			Href:     format.CompanyHref(snapshots[i].Slug, domain.ClickIntentPrimary, tab, position),
			Company:  snapshots[i],
		})
	}

	return &domain.HomeRanking{
		Tab:     tab,
		Entries: entries,
	}, nil
}

// GetCompanySnapshot builds the snapshot of a single company. The max
// values still come from the full universe, so the company's scores
// match what the rankings show. Returns nil when the slug is unknown.
func (s *rankingService) GetCompanySnapshot(ctx context.Context, slug string) (*domain.CompanySnapshot, error) {
	facts, err := s.companyRepo.ListCompanyFacts(ctx)
	if err != nil {
		return nil, err
	}

	maxValues := scoring.MaxValues(facts)
	for _, f := range facts {
		if f.Slug == slug {
			snapshot := scoring.BuildSnapshot(f, maxValues, s.weights)
			return &snapshot, nil
		}
	}

	return nil, nil
}

func applyFilters(facts []*domain.CompanyFacts, filters domain.RankingFilters) []*domain.CompanyFacts {
	search := strings.ToLower(strings.TrimSpace(filters.Search))

	out := make([]*domain.CompanyFacts, 0, len(facts))
	for _, f := range facts {
		if search != "" &&
			!strings.Contains(strings.ToLower(f.Name), search) &&
			!strings.Contains(strings.ToLower(f.Slug), search) {
			continue
		}
		if !matchesAny(f.Country, filters.Countries) {
			continue
		}
		if !matchesAnyOf(f.EvaluationModels, filters.EvaluationModels) {
			continue
		}
		if !matchesAnyOf(f.AccountTypes, filters.AccountTypes) {
			continue
		}
		if filters.MinReviews != nil && f.ReviewCount < maxInt(*filters.MinReviews, 0) {
			continue
		}
		if filters.HasCashback != nil && *filters.HasCashback && !f.HasCashback {
			continue
		}
		out = append(out, f)
	}

	return out
}

// matchesAny is the OR-within-field membership check; an empty filter
// matches everything.
func matchesAny(value string, filter []string) bool {
	if len(filter) == 0 {
		return true
	}
	for _, allowed := range filter {
		if strings.EqualFold(value, allowed) {
			return true
		}
	}
	return false
}

func matchesAnyOf(values []string, filter []string) bool {
	if len(filter) == 0 {
		return true
	}
	for _, v := range values {
		for _, allowed := range filter {
			if strings.EqualFold(v, allowed) {
				return true
			}
		}
	}
	return false
}

func sortSnapshots(snapshots []domain.CompanySnapshot, key domain.SortKey, direction domain.SortDirection) {
	desc := direction != domain.SortAsc

	sort.SliceStable(snapshots, func(i, j int) bool {
		a, b := &snapshots[i], &snapshots[j]

		av, bv, comparable := sortValues(a, b, key)
		if comparable && av != bv {
			if desc {
				return av > bv
			}
			return av < bv
		}
		if !comparable {
			// Companies without the sorted metric go last either way.
			aHas, bHas := hasSortValue(a, key), hasSortValue(b, key)
			if aHas != bHas {
				return aHas
			}
		}

		return lessTieBreak(a, b)
	})
}

func sortValues(a, b *domain.CompanySnapshot, key domain.SortKey) (float64, float64, bool) {
	switch key {
	case domain.SortByRating:
		if a.Rating == nil || b.Rating == nil {
			return 0, 0, false
		}
		return *a.Rating, *b.Rating, true
	case domain.SortByTrend:
		return a.TrendRatio, b.TrendRatio, true
	case domain.SortByFavorites:
		return float64(a.FavoritesCount), float64(b.FavoritesCount), true
	default:
		return float64(a.ReviewCount), float64(b.ReviewCount), true
	}
}

func hasSortValue(s *domain.CompanySnapshot, key domain.SortKey) bool {
	if key == domain.SortByRating {
		return s.Rating != nil
	}
	return true
}

// lessTieBreak orders equal-keyed companies by review count descending
// and then name ascending, keeping every ranking stable across
// requests.
func lessTieBreak(a, b *domain.CompanySnapshot) bool {
	if a.ReviewCount != b.ReviewCount {
		return a.ReviewCount > b.ReviewCount
	}
	return a.Name < b.Name
}

func summarize(snapshots []domain.CompanySnapshot) domain.ReviewsRankingSummary {
	summary := domain.ReviewsRankingSummary{
		TotalCompanies: len(snapshots),
	}

	var ratingSum float64
	var ratedReviews int
	for i := range snapshots {
		summary.TotalReviews += snapshots[i].ReviewCount
		summary.NewReviews30d += snapshots[i].NewReviews30d

		if avg := snapshots[i].AverageRating; avg != nil && snapshots[i].ReviewCount > 0 {
			ratingSum += *avg * float64(snapshots[i].ReviewCount)
			ratedReviews += snapshots[i].ReviewCount
		}
	}

	if ratedReviews > 0 {
		avg := utils.RoundWithTwoDecimalPlace(ratingSum / float64(ratedReviews))
		summary.AverageRating = &avg
	}

	return summary
}

func collectValues(facts []*domain.CompanyFacts, extract func(*domain.CompanyFacts) []string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)

	for _, f := range facts {
		for _, v := range extract(f) {
			if v == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}

	sort.Strings(out)
	return out
}

func singleton(v string) []string {
	if v == "" {
		return nil
	}
	return []string{v}
}

func foundedYear(s *domain.CompanySnapshot) int {
	if s.FoundedYear == nil {
		return 0
	}
	return *s.FoundedYear
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
