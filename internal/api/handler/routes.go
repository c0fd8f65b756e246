package handler

import (
	"net/http"

	"github.com/fundedrank/fundedrank-api/infrastructure/repository"
	"github.com/fundedrank/fundedrank-api/internal/api/handler/router"
	"github.com/fundedrank/fundedrank-api/internal/usecases/authenticating"
	"github.com/fundedrank/fundedrank-api/internal/usecases/cashbacking"
	"github.com/fundedrank/fundedrank-api/internal/usecases/engaging"
	"github.com/fundedrank/fundedrank-api/internal/usecases/ranking"
	"github.com/fundedrank/fundedrank-api/internal/usecases/reviewing"
	"github.com/fundedrank/fundedrank-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Rankings(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/rankings",
			Method:  http.MethodGet,
			Handler: GetRankingsDataset(service),
		},
		{
			Path:    "/v1/rankings/reviews",
			Method:  http.MethodGet,
			Handler: GetReviewsRanking(service),
		},
		{
			Path:    "/v1/rankings/home",
			Method:  http.MethodGet,
			Handler: GetHomeRanking(service),
		},
	}
}

func Companies(
	rankingService ranking.RankingService,
	cashbackService cashbacking.CashbackService,
	engagementService engaging.EngagementService,
	authenticator authenticating.Authenticator,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/companies/:slug",
			Method:  http.MethodGet,
			Handler: GetCompany(rankingService, cashbackService),
		},
		{
			Path:    "/v1/companies/:slug/clicks",
			Method:  http.MethodPost,
			Handler: RecordClick(engagementService),
		},
		{
			Path:        "/v1/companies/:slug/favorite",
			Method:      http.MethodPost,
			Handler:     AddFavorite(engagementService, authenticator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies/:slug/favorite",
			Method:      http.MethodDelete,
			Handler:     RemoveFavorite(engagementService, authenticator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Reviews(service reviewing.ReviewService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/companies/:slug/reviews",
			Method:  http.MethodPost,
			Handler: SubmitReview(service),
		},
	}
}

func Admin(
	reviewService reviewing.ReviewService,
	companyRepo repository.CompanyRepository,
	clickRepo repository.ClickRepository,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/admin/reviews",
			Method:      http.MethodGet,
			Handler:     ListPendingReviews(reviewService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrModerator()},
		},
		{
			Path:        "/v1/admin/reviews/:id/approve",
			Method:      http.MethodPost,
			Handler:     ApproveReview(reviewService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrModerator()},
		},
		{
			Path:        "/v1/admin/reviews/:id/reject",
			Method:      http.MethodPost,
			Handler:     RejectReview(reviewService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrModerator()},
		},
		{
			Path:        "/v1/admin/stats",
			Method:      http.MethodGet,
			Handler:     GetAdminStats(reviewService, companyRepo, clickRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices, authenticator authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services, authenticator),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services, authenticator),
		},
	}
}
