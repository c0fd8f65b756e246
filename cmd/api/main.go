package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fundedrank/fundedrank-api/infrastructure/database/postgres"
	"github.com/fundedrank/fundedrank-api/infrastructure/events"
	"github.com/fundedrank/fundedrank-api/infrastructure/repository"
	"github.com/fundedrank/fundedrank-api/internal/api"
	"github.com/fundedrank/fundedrank-api/internal/config"
	"github.com/fundedrank/fundedrank-api/internal/rates"
	"github.com/fundedrank/fundedrank-api/internal/scheduler"
	"github.com/fundedrank/fundedrank-api/internal/usecases/authenticating"
	"github.com/fundedrank/fundedrank-api/internal/usecases/cashbacking"
	"github.com/fundedrank/fundedrank-api/internal/usecases/engaging"
	"github.com/fundedrank/fundedrank-api/internal/usecases/ranking"
	"github.com/fundedrank/fundedrank-api/internal/usecases/reviewing"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	companyRepo := repository.NewCompanyRepository(pgConn)
	reviewRepo := repository.NewReviewRepository(pgConn)
	clickRepo := repository.NewClickRepository(pgConn)
	favoriteRepo := repository.NewFavoriteRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	producer, err := events.NewProducer(cfg.Events)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to start the event producer")
	}
	defer producer.Close()

	ratesProvider := rates.NewCachedProvider(&rates.HTTPSource{URL: cfg.RatesRefresh.SourceURL}, cfg.RatesRefresh)

	authenticator := authenticating.NewService(userRepo, cfg)
	rankingService := ranking.NewRankingService(companyRepo, cfg.ScoreWeights)
	reviewService := reviewing.NewReviewService(companyRepo, reviewRepo, producer)
	engagementService := engaging.NewEngagementService(companyRepo, clickRepo, favoriteRepo, producer)
	cashbackService := cashbacking.NewCashbackService(ratesProvider)

	trendSnapshotService := scheduler.NewTrendSnapshotService(clickRepo, cfg)
	ratesRefreshService := scheduler.NewRatesRefreshService(ratesProvider, cfg)

	if err := trendSnapshotService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Failed to start the trend snapshot scheduler")
	} else {
		logrus.Info("Trend snapshot scheduler started")
	}

	if err := ratesRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Failed to start the rates refresh scheduler")
	} else {
		logrus.Info("Rates refresh scheduler started")
	}

	server, err := api.New(
		cfg,
		rankingService,
		reviewService,
		engagementService,
		cashbackService,
		authenticator,
		companyRepo,
		clickRepo,
		trendSnapshotService,
		ratesRefreshService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
