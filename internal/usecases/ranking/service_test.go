package ranking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fundedrank/fundedrank-api/infrastructure/repository/mocks"
	"github.com/fundedrank/fundedrank-api/internal/config"
	"github.com/fundedrank/fundedrank-api/internal/domain"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(n int) *int           { return &n }
func boolPtr(b bool) *bool        { return &b }

// companyFixtures returns a small universe with distinct metrics so
// every filter and sort in the tests has something to bite on.
func companyFixtures() []*domain.CompanyFacts {
	return []*domain.CompanyFacts{
		{
			ID:               1,
			Slug:             "apex-funding",
			Name:             "Apex Funding",
			Country:          "US",
			FoundedYear:      intPtr(2019),
			Rating:           floatPtr(4.6),
			AverageRating:    floatPtr(4.6),
			ReviewCount:      320,
			NewReviews30d:    24,
			FavoritesCount:   80,
			Clicks30d:        400,
			ClicksPrev30d:    200,
			HasCashback:      true,
			CashbackRate:     floatPtr(0.10),
			MaxProfitSplit:   floatPtr(90),
			MaxPlanPrice:     floatPtr(499),
			EvaluationModels: []string{"two-step", "instant"},
			AccountTypes:     []string{"standard", "swing"},
		},
		{
			ID:               2,
			Slug:             "nordic-traders",
			Name:             "Nordic Traders",
			Country:          "SE",
			FoundedYear:      intPtr(2022),
			Rating:           floatPtr(4.1),
			AverageRating:    floatPtr(4.1),
			ReviewCount:      90,
			NewReviews30d:    8,
			FavoritesCount:   30,
			Clicks30d:        150,
			ClicksPrev30d:    300,
			HasCashback:      false,
			MaxProfitSplit:   floatPtr(80),
			MaxPlanPrice:     floatPtr(299),
			EvaluationModels: []string{"one-step"},
			AccountTypes:     []string{"standard"},
		},
		{
			ID:               3,
			Slug:             "warsaw-capital",
			Name:             "Warsaw Capital",
			Country:          "PL",
			FoundedYear:      intPtr(2024),
			ReviewCount:      12,
			NewReviews30d:    12,
			FavoritesCount:   5,
			Clicks30d:        900,
			ClicksPrev30d:    50,
			HasCashback:      true,
			CashbackRate:     floatPtr(0.05),
			EvaluationModels: []string{"two-step"},
			AccountTypes:     []string{"swing"},
		},
	}
}

func TestGetRankingsDataset(t *testing.T) {
	tests := []struct {
		name     string
		filters  domain.RankingFilters
		validate func(t *testing.T, dataset *domain.RankingsDataset)
	}{
		{
			name:    "no filters returns the whole universe",
			filters: domain.RankingFilters{},
			validate: func(t *testing.T, dataset *domain.RankingsDataset) {
				assert.Equal(t, 3, dataset.TotalCompanies)
				assert.Equal(t, 3, dataset.FilteredCompanies)
				assert.Len(t, dataset.Companies, 3)

				assert.Equal(t, []string{"PL", "SE", "US"}, dataset.AvailableCountries)
				assert.Equal(t, []string{"instant", "one-step", "two-step"}, dataset.AvailableEvaluationModels)
				assert.Equal(t, []string{"standard", "swing"}, dataset.AvailableAccountTypes)

				// Max values describe the filtered set.
				assert.Equal(t, 320.0, dataset.MaxValues.Reviews)
				assert.Equal(t, 900.0, dataset.MaxValues.Clicks30d)

				// Ordered by overall score descending.
				for i := 1; i < len(dataset.Companies); i++ {
					assert.GreaterOrEqual(t,
						dataset.Companies[i-1].Scores.Overall,
						dataset.Companies[i].Scores.Overall,
					)
				}
			},
		},
		{
			name:    "search matches name case-insensitively",
			filters: domain.RankingFilters{Search: "  WARSAW "},
			validate: func(t *testing.T, dataset *domain.RankingsDataset) {
				require.Len(t, dataset.Companies, 1)
				assert.Equal(t, "warsaw-capital", dataset.Companies[0].Slug)
				assert.Equal(t, 3, dataset.TotalCompanies)
				assert.Equal(t, 1, dataset.FilteredCompanies)
			},
		},
		{
			name:    "country filter is OR within the field",
			filters: domain.RankingFilters{Countries: []string{"us", "pl"}},
			validate: func(t *testing.T, dataset *domain.RankingsDataset) {
				require.Len(t, dataset.Companies, 2)
				slugs := []string{dataset.Companies[0].Slug, dataset.Companies[1].Slug}
				assert.Contains(t, slugs, "apex-funding")
				assert.Contains(t, slugs, "warsaw-capital")
			},
		},
		{
			name: "filters combine with AND across fields",
			filters: domain.RankingFilters{
				EvaluationModels: []string{"two-step"},
				AccountTypes:     []string{"standard"},
			},
			validate: func(t *testing.T, dataset *domain.RankingsDataset) {
				require.Len(t, dataset.Companies, 1)
				assert.Equal(t, "apex-funding", dataset.Companies[0].Slug)
			},
		},
		{
			name:    "min reviews cuts small companies",
			filters: domain.RankingFilters{MinReviews: intPtr(50)},
			validate: func(t *testing.T, dataset *domain.RankingsDataset) {
				require.Len(t, dataset.Companies, 2)
				// Max values shrink with the filtered set.
				assert.Equal(t, 400.0, dataset.MaxValues.Clicks30d)
			},
		},
		{
			name:    "cashback filter keeps only companies with a program",
			filters: domain.RankingFilters{HasCashback: boolPtr(true)},
			validate: func(t *testing.T, dataset *domain.RankingsDataset) {
				require.Len(t, dataset.Companies, 2)
				for _, c := range dataset.Companies {
					assert.True(t, c.HasCashback)
				}
			},
		},
		{
			name:    "cashback false leaves the dimension unconstrained",
			filters: domain.RankingFilters{HasCashback: boolPtr(false)},
			validate: func(t *testing.T, dataset *domain.RankingsDataset) {
				assert.Len(t, dataset.Companies, 3)
			},
		},
		{
			name:    "no match yields an empty but complete dataset",
			filters: domain.RankingFilters{Search: "does-not-exist"},
			validate: func(t *testing.T, dataset *domain.RankingsDataset) {
				assert.Empty(t, dataset.Companies)
				assert.Equal(t, 0, dataset.FilteredCompanies)
				assert.Equal(t, domain.RankingMaxValues{}, dataset.MaxValues)
				assert.Empty(t, dataset.AvailableCountries)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			companyRepo := mocks.NewMockCompanyRepository(ctrl)
			companyRepo.EXPECT().
				ListCompanyFacts(gomock.Any()).
				Return(companyFixtures(), nil)

			service := NewRankingService(companyRepo, config.DefaultScoreWeights())

			dataset, err := service.GetRankingsDataset(context.Background(), tt.filters)
			require.NoError(t, err)
			tt.validate(t, dataset)
		})
	}
}

func TestGetRankingsDataset_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyRepo := mocks.NewMockCompanyRepository(ctrl)
	companyRepo.EXPECT().
		ListCompanyFacts(gomock.Any()).
		Return(nil, errors.New("connection refused"))

	service := NewRankingService(companyRepo, config.DefaultScoreWeights())

	dataset, err := service.GetRankingsDataset(context.Background(), domain.RankingFilters{})
	assert.Error(t, err)
	assert.Nil(t, dataset)
}

func TestGetReviewsRanking(t *testing.T) {
	tests := []struct {
		name     string
		opts     domain.ReviewsRankingOptions
		validate func(t *testing.T, result *domain.ReviewsRanking)
	}{
		{
			name: "default sort orders by review count descending",
			opts: domain.ReviewsRankingOptions{},
			validate: func(t *testing.T, result *domain.ReviewsRanking) {
				require.Len(t, result.Items, 3)
				assert.Equal(t, "apex-funding", result.Items[0].Company.Slug)
				assert.Equal(t, "nordic-traders", result.Items[1].Company.Slug)
				assert.Equal(t, "warsaw-capital", result.Items[2].Company.Slug)
				assert.Equal(t, 1, result.Items[0].Position)
				assert.Equal(t, 3, result.Items[2].Position)
			},
		},
		{
			name: "rating sort puts unrated companies last",
			opts: domain.ReviewsRankingOptions{Sort: domain.SortByRating, Direction: domain.SortDesc},
			validate: func(t *testing.T, result *domain.ReviewsRanking) {
				require.Len(t, result.Items, 3)
				assert.Equal(t, "apex-funding", result.Items[0].Company.Slug)
				assert.Equal(t, "nordic-traders", result.Items[1].Company.Slug)
				assert.Equal(t, "warsaw-capital", result.Items[2].Company.Slug, "company without a rating sorts last")
			},
		},
		{
			name: "rating ascending still keeps unrated companies last",
			opts: domain.ReviewsRankingOptions{Sort: domain.SortByRating, Direction: domain.SortAsc},
			validate: func(t *testing.T, result *domain.ReviewsRanking) {
				require.Len(t, result.Items, 3)
				assert.Equal(t, "nordic-traders", result.Items[0].Company.Slug)
				assert.Equal(t, "apex-funding", result.Items[1].Company.Slug)
				assert.Equal(t, "warsaw-capital", result.Items[2].Company.Slug)
			},
		},
		{
			name: "trend sort surfaces the spiking company",
			opts: domain.ReviewsRankingOptions{Sort: domain.SortByTrend, Direction: domain.SortDesc},
			validate: func(t *testing.T, result *domain.ReviewsRanking) {
				require.NotEmpty(t, result.Items)
				assert.Equal(t, "warsaw-capital", result.Items[0].Company.Slug)
			},
		},
		{
			name: "limit truncates items but not the summary",
			opts: domain.ReviewsRankingOptions{Limit: 1},
			validate: func(t *testing.T, result *domain.ReviewsRanking) {
				assert.Len(t, result.Items, 1)
				assert.Equal(t, 3, result.Summary.TotalCompanies)
				assert.Equal(t, 320+90+12, result.Summary.TotalReviews)
				assert.Equal(t, 24+8+12, result.Summary.NewReviews30d)
			},
		},
		{
			name: "min reviews removes companies from the summary too",
			opts: domain.ReviewsRankingOptions{MinReviews: 50},
			validate: func(t *testing.T, result *domain.ReviewsRanking) {
				assert.Len(t, result.Items, 2)
				assert.Equal(t, 2, result.Summary.TotalCompanies)
				assert.Equal(t, 320+90, result.Summary.TotalReviews)
			},
		},
		{
			name: "summary average weights by review count",
			opts: domain.ReviewsRankingOptions{},
			validate: func(t *testing.T, result *domain.ReviewsRanking) {
				require.NotNil(t, result.Summary.AverageRating)
				expected := (4.6*320 + 4.1*90) / float64(320+90)
				assert.InDelta(t, expected, *result.Summary.AverageRating, 0.01)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			companyRepo := mocks.NewMockCompanyRepository(ctrl)
			companyRepo.EXPECT().
				ListCompanyFacts(gomock.Any()).
				Return(companyFixtures(), nil)

			service := NewRankingService(companyRepo, config.DefaultScoreWeights())

			result, err := service.GetReviewsRanking(context.Background(), tt.opts)
			require.NoError(t, err)
			tt.validate(t, result)
		})
	}
}

func TestGetHomeRanking(t *testing.T) {
	tests := []struct {
		name     string
		tab      domain.RankingTab
		validate func(t *testing.T, result *domain.HomeRanking)
	}{
		{
			name: "cashback tab only lists companies with a program",
			tab:  domain.TabCashback,
			validate: func(t *testing.T, result *domain.HomeRanking) {
				require.Len(t, result.Entries, 2)
				for _, entry := range result.Entries {
					assert.True(t, entry.Company.HasCashback)
				}
			},
		},
		{
			name: "trending tab orders by trend ratio",
			tab:  domain.TabTrending,
			validate: func(t *testing.T, result *domain.HomeRanking) {
				require.Len(t, result.Entries, 3)
				assert.Equal(t, "warsaw-capital", result.Entries[0].Company.Slug)
			},
		},
		{
			name: "newest tab orders by founding year",
			tab:  domain.TabNewest,
			validate: func(t *testing.T, result *domain.HomeRanking) {
				require.Len(t, result.Entries, 3)
				assert.Equal(t, "warsaw-capital", result.Entries[0].Company.Slug)
				assert.Equal(t, "nordic-traders", result.Entries[1].Company.Slug)
				assert.Equal(t, "apex-funding", result.Entries[2].Company.Slug)
			},
		},
		{
			name: "entries carry deterministic tracking links",
			tab:  domain.TabTop,
			validate: func(t *testing.T, result *domain.HomeRanking) {
				require.NotEmpty(t, result.Entries)
				first := result.Entries[0]
				expected := "/firmy/" + first.Company.Slug +
					"?utm_source=home-ranking&utm_medium=primary&utm_campaign=rankings-tabs&tab=top&position=1"
				assert.Equal(t, expected, first.Href)
				assert.Equal(t, 1, first.Position)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			companyRepo := mocks.NewMockCompanyRepository(ctrl)
			companyRepo.EXPECT().
				ListCompanyFacts(gomock.Any()).
				Return(companyFixtures(), nil)

			service := NewRankingService(companyRepo, config.DefaultScoreWeights())

			result, err := service.GetHomeRanking(context.Background(), tt.tab)
			require.NoError(t, err)
			assert.Equal(t, tt.tab, result.Tab)
			tt.validate(t, result)
		})
	}
}

func TestGetCompanySnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyRepo := mocks.NewMockCompanyRepository(ctrl)
	companyRepo.EXPECT().
		ListCompanyFacts(gomock.Any()).
		Return(companyFixtures(), nil).
		Times(2)

	service := NewRankingService(companyRepo, config.DefaultScoreWeights())

	snapshot, err := service.GetCompanySnapshot(context.Background(), "apex-funding")
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, "Apex Funding", snapshot.Name)
	assert.Greater(t, snapshot.Scores.Overall, 0.0)

	unknown, err := service.GetCompanySnapshot(context.Background(), "no-such-firm")
	require.NoError(t, err)
	assert.Nil(t, unknown)
}

func TestSortSnapshots_TieBreak(t *testing.T) {
	snapshots := []domain.CompanySnapshot{
		{CompanyFacts: domain.CompanyFacts{Name: "Beta", ReviewCount: 10}},
		{CompanyFacts: domain.CompanyFacts{Name: "Alpha", ReviewCount: 10}},
		{CompanyFacts: domain.CompanyFacts{Name: "Gamma", ReviewCount: 10}},
	}

	sortSnapshots(snapshots, domain.SortByReviews, domain.SortDesc)

	assert.Equal(t, "Alpha", snapshots[0].Name)
	assert.Equal(t, "Beta", snapshots[1].Name)
	assert.Equal(t, "Gamma", snapshots[2].Name)
}
