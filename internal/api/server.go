package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/fundedrank/fundedrank-api/infrastructure/repository"
	"github.com/fundedrank/fundedrank-api/internal/api/handler"
	"github.com/fundedrank/fundedrank-api/internal/api/handler/router"
	"github.com/fundedrank/fundedrank-api/internal/config"
	"github.com/fundedrank/fundedrank-api/internal/scheduler"
	"github.com/fundedrank/fundedrank-api/internal/usecases/authenticating"
	"github.com/fundedrank/fundedrank-api/internal/usecases/cashbacking"
	"github.com/fundedrank/fundedrank-api/internal/usecases/engaging"
	"github.com/fundedrank/fundedrank-api/internal/usecases/ranking"
	"github.com/fundedrank/fundedrank-api/internal/usecases/reviewing"
	"github.com/fundedrank/fundedrank-api/pkg/middleware"
)

type Server struct {
	httpServer  *http.Server
	rateLimiter *middleware.RateLimiter
}

func New(
	config *config.Config,
	rankingService ranking.RankingService,
	reviewService reviewing.ReviewService,
	engagementService engaging.EngagementService,
	cashbackService cashbacking.CashbackService,
	authenticator authenticating.Authenticator,
	companyRepo repository.CompanyRepository,
	clickRepo repository.ClickRepository,
	trendSnapshotService *scheduler.TrendSnapshotService,
	ratesRefreshService *scheduler.RatesRefreshService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		TrendSnapshotService: trendSnapshotService,
		RatesRefreshService:  ratesRefreshService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Rankings(rankingService)...),
		router.WithRoutes(handler.Companies(rankingService, cashbackService, engagementService, authenticator)...),
		router.WithRoutes(handler.Reviews(reviewService)...),
		router.WithRoutes(handler.Admin(reviewService, companyRepo, clickRepo)...),
		router.WithRoutes(handler.CronJobs(cronServices, authenticator)...),
	)

	rateLimiter := middleware.NewRateLimiter(
		config.RateLimit.Requests,
		time.Duration(config.RateLimit.WindowSeconds)*time.Second,
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.RateLimitMiddleware(rateLimiter),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
		rateLimiter: rateLimiter,
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	s.rateLimiter.StartSweeper(ctx)

	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Server execution failed")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Interrupt signal received")
	case <-ctx.Done():
		logrus.Info("Application context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Starting graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server shutdown failed")
		return err
	}

	logrus.Info("Server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
