// Package engaging records the engagement signals that feed the
// ranking: tracked outbound clicks and favorites.
package engaging

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/fundedrank/fundedrank-api/infrastructure/events"
	"github.com/fundedrank/fundedrank-api/infrastructure/repository"
	"github.com/fundedrank/fundedrank-api/internal/domain"
	"github.com/fundedrank/fundedrank-api/pkg/format"
	"github.com/fundedrank/fundedrank-api/pkg/utils"
)

var ErrCompanyNotFound = errors.New("company not found")

type EngagementService interface {
	RecordClick(ctx context.Context, companySlug string, intent domain.ClickIntent, tab domain.RankingTab, position int, clientIP string) (string, error)
	AddFavorite(ctx context.Context, user *domain.User, companySlug string) error
	RemoveFavorite(ctx context.Context, user *domain.User, companySlug string) error
}

type engagementService struct {
	companyRepo  repository.CompanyRepository
	clickRepo    repository.ClickRepository
	favoriteRepo repository.FavoriteRepository
	producer     events.Producer
}

func NewEngagementService(
	companyRepo repository.CompanyRepository,
	clickRepo repository.ClickRepository,
	favoriteRepo repository.FavoriteRepository,
	producer events.Producer,
) EngagementService {
	return &engagementService{
		companyRepo:  companyRepo,
		clickRepo:    clickRepo,
		favoriteRepo: favoriteRepo,
		producer:     producer,
	}
}

// RecordClick stores the click and returns the deterministic tracking
// href the caller should redirect to. The client IP is stored only as
// a hash, for dedup and abuse analysis.
func (s *engagementService) RecordClick(ctx context.Context, companySlug string, intent domain.ClickIntent, tab domain.RankingTab, position int, clientIP string) (string, error) {
	company, err := s.companyRepo.GetFactsBySlug(ctx, companySlug)
	if err != nil {
		return "", err
	}
	if company == nil {
		return "", ErrCompanyNotFound
	}

	publicID, err := utils.GenerateID()
	if err != nil {
		return "", errors.Wrap(err, "generating click ID")
	}

	if position < 1 {
		position = 1
	}

	event := &domain.ClickEvent{
		PublicID:  publicID,
		CompanyID: company.ID,
		Intent:    intent,
		Tab:       tab,
		Position:  position,
		IPHash:    hashIP(clientIP),
	}

	if err := s.clickRepo.Insert(ctx, event); err != nil {
		return "", err
	}

	if err := s.producer.PublishClick(event); err != nil {
		logrus.WithError(err).Warn("failed to publish click event")
	}

	return format.CompanyHref(company.Slug, intent, tab, position), nil
}

func (s *engagementService) AddFavorite(ctx context.Context, user *domain.User, companySlug string) error {
	company, err := s.companyRepo.GetFactsBySlug(ctx, companySlug)
	if err != nil {
		return err
	}
	if company == nil {
		return ErrCompanyNotFound
	}

	return s.favoriteRepo.Add(ctx, user.ID, company.ID)
}

func (s *engagementService) RemoveFavorite(ctx context.Context, user *domain.User, companySlug string) error {
	company, err := s.companyRepo.GetFactsBySlug(ctx, companySlug)
	if err != nil {
		return err
	}
	if company == nil {
		return ErrCompanyNotFound
	}

	return s.favoriteRepo.Remove(ctx, user.ID, company.ID)
}

func hashIP(ip string) string {
	if ip == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(sum[:16])
}
