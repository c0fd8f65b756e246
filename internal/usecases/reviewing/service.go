// Package reviewing handles review submission and the moderation
// queue. Only approved reviews reach the per-company aggregates the
// ranking reads.
package reviewing

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/fundedrank/fundedrank-api/infrastructure/events"
	"github.com/fundedrank/fundedrank-api/infrastructure/repository"
	"github.com/fundedrank/fundedrank-api/internal/domain"
	"github.com/fundedrank/fundedrank-api/pkg/utils"
)

var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrReviewNotFound  = errors.New("review not found")
	ErrInvalidReview   = errors.New("invalid review")
)

type ReviewService interface {
	Submit(ctx context.Context, companySlug string, submission *domain.ReviewSubmission) (*domain.Review, error)
	ListPending(ctx context.Context, limit int) ([]*domain.Review, error)
	Approve(ctx context.Context, publicID string) error
	Reject(ctx context.Context, publicID string, reason string) error
	Stats(ctx context.Context) (int, error)
}

type reviewService struct {
	companyRepo repository.CompanyRepository
	reviewRepo  repository.ReviewRepository
	producer    events.Producer
}

func NewReviewService(
	companyRepo repository.CompanyRepository,
	reviewRepo repository.ReviewRepository,
	producer events.Producer,
) ReviewService {
	return &reviewService{
		companyRepo: companyRepo,
		reviewRepo:  reviewRepo,
		producer:    producer,
	}
}

// Submit validates the payload and stores the review as pending.
func (s *reviewService) Submit(ctx context.Context, companySlug string, submission *domain.ReviewSubmission) (*domain.Review, error) {
	if err := validateSubmission(submission); err != nil {
		return nil, err
	}

	company, err := s.companyRepo.GetFactsBySlug(ctx, companySlug)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrCompanyNotFound
	}

	publicID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "generating review ID")
	}

	review := &domain.Review{
		PublicID:    publicID,
		CompanyID:   company.ID,
		CompanySlug: company.Slug,
		AuthorName:  strings.TrimSpace(submission.AuthorName),
		AuthorEmail: strings.TrimSpace(submission.AuthorEmail),
		Rating:      submission.Rating,
		Title:       strings.TrimSpace(submission.Title),
		Body:        strings.TrimSpace(submission.Body),
		Recommended: submission.Recommended,
		Categories:  submission.Categories,
		Status:      domain.ReviewStatusPending,
	}

	if err := s.reviewRepo.Insert(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

func (s *reviewService) ListPending(ctx context.Context, limit int) ([]*domain.Review, error) {
	return s.reviewRepo.ListByStatus(ctx, domain.ReviewStatusPending, limit)
}

// Approve publishes the review and rebuilds the company aggregates.
// Approving an already approved review is a no-op.
func (s *reviewService) Approve(ctx context.Context, publicID string) error {
	review, err := s.reviewRepo.GetByPublicID(ctx, publicID)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrReviewNotFound
	}
	if review.Status == domain.ReviewStatusApproved {
		return nil
	}

	if err := s.reviewRepo.UpdateStatus(ctx, publicID, domain.ReviewStatusApproved, nil); err != nil {
		return err
	}

	if err := s.reviewRepo.RecomputeCompanyReviewStats(ctx, review.CompanyID); err != nil {
		return err
	}

	review.Status = domain.ReviewStatusApproved
	if err := s.producer.PublishModeration(review); err != nil {
		logrus.WithError(err).Warn("failed to publish moderation event")
	}

	return nil
}

// Reject marks the review rejected. Aggregates are rebuilt as well in
// case an approved review is being retracted.
func (s *reviewService) Reject(ctx context.Context, publicID string, reason string) error {
	review, err := s.reviewRepo.GetByPublicID(ctx, publicID)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrReviewNotFound
	}

	wasApproved := review.Status == domain.ReviewStatusApproved

	var rejectReason *string
	if trimmed := strings.TrimSpace(reason); trimmed != "" {
		rejectReason = &trimmed
	}

	if err := s.reviewRepo.UpdateStatus(ctx, publicID, domain.ReviewStatusRejected, rejectReason); err != nil {
		return err
	}

	if wasApproved {
		if err := s.reviewRepo.RecomputeCompanyReviewStats(ctx, review.CompanyID); err != nil {
			return err
		}
	}

	review.Status = domain.ReviewStatusRejected
	if err := s.producer.PublishModeration(review); err != nil {
		logrus.WithError(err).Warn("failed to publish moderation event")
	}

	return nil
}

func (s *reviewService) Stats(ctx context.Context) (int, error) {
	return s.reviewRepo.CountByStatus(ctx, domain.ReviewStatusPending)
}

func validateSubmission(submission *domain.ReviewSubmission) error {
	if submission == nil {
		return errors.Wrap(ErrInvalidReview, "empty payload")
	}
	if submission.Rating < 1 || submission.Rating > 5 {
		return errors.Wrap(ErrInvalidReview, "rating must be between 1 and 5")
	}
	if strings.TrimSpace(submission.AuthorName) == "" {
		return errors.Wrap(ErrInvalidReview, "author name is required")
	}
	if strings.TrimSpace(submission.Body) == "" {
		return errors.Wrap(ErrInvalidReview, "review body is required")
	}

	for _, category := range []*float64{
		submission.Categories.TradingConditions,
		submission.Categories.Support,
		submission.Categories.UX,
		submission.Categories.PayoutExperience,
	} {
		if category != nil && (*category < 1 || *category > 5) {
			return errors.Wrap(ErrInvalidReview, "category scores must be between 1 and 5")
		}
	}

	return nil
}
