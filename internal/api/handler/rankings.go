package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/fundedrank/fundedrank-api/internal/domain"
	"github.com/fundedrank/fundedrank-api/internal/usecases/ranking"
	"github.com/fundedrank/fundedrank-api/pkg/apiErrors"
	"github.com/fundedrank/fundedrank-api/pkg/params"
)

// Ranking responses are cacheable at the CDN; five minutes fresh plus a
// ten-minute stale window keeps the tables snappy without hammering
// the database.
const rankingCacheControl = "public, s-maxage=300, stale-while-revalidate=600"

// GetRankingsDataset returns the filtered, scored and sorted company
// dataset together with the max values of the filtered set.
func GetRankingsDataset(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := params.Filters(r.URL.Query())

		dataset, err := service.GetRankingsDataset(r.Context(), filters)
		if err != nil {
			logrus.WithError(err).Error("Failed to build rankings dataset")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to build rankings dataset", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", rankingCacheControl)
		if err := json.NewEncoder(w).Encode(dataset); err != nil {
			logrus.WithError(err).Error("Failed to encode rankings dataset")
		}
	}
}

// GetReviewsRanking returns the reviews-centric ranking variant.
func GetReviewsRanking(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		opts := domain.ReviewsRankingOptions{
			Sort:      domain.SortKey(params.String(query, "sort")),
			Direction: domain.SortDirection(params.String(query, "direction")),
		}
		if limit := params.Number(query, "limit"); limit != nil {
			opts.Limit = *limit
		}
		if minReviews := params.Number(query, "minReviews"); minReviews != nil {
			opts.MinReviews = *minReviews
		}

		result, err := service.GetReviewsRanking(r.Context(), opts)
		if err != nil {
			logrus.WithError(err).Error("Failed to build reviews ranking")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to build reviews ranking", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", rankingCacheControl)
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.WithError(err).Error("Failed to encode reviews ranking")
		}
	}
}

// GetHomeRanking returns the ten entries of one home-page tab, each
// with its deterministic tracking link.
func GetHomeRanking(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tab := params.Tab(r.URL.Query(), "tab")

		result, err := service.GetHomeRanking(r.Context(), tab)
		if err != nil {
			logrus.WithError(err).Error("Failed to build home ranking")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to build home ranking", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", rankingCacheControl)
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.WithError(err).Error("Failed to encode home ranking")
		}
	}
}
