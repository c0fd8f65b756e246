package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/fundedrank/fundedrank-api/infrastructure/repository"
	"github.com/fundedrank/fundedrank-api/internal/domain"
	"github.com/fundedrank/fundedrank-api/internal/usecases/reviewing"
	"github.com/fundedrank/fundedrank-api/pkg/apiErrors"
	"github.com/fundedrank/fundedrank-api/pkg/params"
	"github.com/fundedrank/fundedrank-api/pkg/utils"
)

// ListPendingReviews returns the moderation queue, oldest first.
func ListPendingReviews(service reviewing.ReviewService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if l := params.Number(r.URL.Query(), "limit"); l != nil {
			limit = *l
		}

		reviews, err := service.ListPending(r.Context(), limit)
		if err != nil {
			logrus.WithError(err).Error("Failed to list pending reviews")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to list pending reviews", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(reviews); err != nil {
			logrus.WithError(err).Error("Failed to encode pending reviews")
		}
	}
}

// ApproveReview publishes a pending review and recomputes the
// company's review aggregates.
func ApproveReview(service reviewing.ReviewService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		publicID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if publicID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Review ID not provided", nil)
			return
		}

		if err := service.Approve(r.Context(), publicID); err != nil {
			if errors.Is(err, reviewing.ErrReviewNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrReviewNotFound, "Review not found", nil)
				return
			}
			logrus.WithError(err).Error("Failed to approve review")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to approve review", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

// RejectReview rejects a review with an optional reason shown to the
// author.
func RejectReview(service reviewing.ReviewService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		publicID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if publicID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Review ID not provided", nil)
			return
		}

		var req rejectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.WithError(err).Error("Failed to decode reject request")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Failed to decode request body", nil)
			return
		}

		if err := service.Reject(r.Context(), publicID, req.Reason); err != nil {
			if errors.Is(err, reviewing.ErrReviewNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrReviewNotFound, "Review not found", nil)
				return
			}
			logrus.WithError(err).Error("Failed to reject review")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to reject review", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GetAdminStats returns the dashboard counters. The click counter
// defaults to the last 30 days but accepts a ?since=YYYY-MM-DD cutoff.
func GetAdminStats(
	reviewService reviewing.ReviewService,
	companyRepo repository.CompanyRepository,
	clickRepo repository.ClickRepository,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		since := time.Now().AddDate(0, 0, -30)
		if sinceParam := params.String(r.URL.Query(), "since"); sinceParam != "" {
			parsed, err := utils.ParseDate(sinceParam)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid since date, expected YYYY-MM-DD", nil)
				return
			}
			since = *parsed
		}

		companies, err := companyRepo.CountCompanies(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Failed to count companies")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to load stats", nil)
			return
		}

		pending, err := reviewService.Stats(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Failed to count pending reviews")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to load stats", nil)
			return
		}

		clicks, err := clickRepo.TotalClicksSince(r.Context(), since)
		if err != nil {
			logrus.WithError(err).Error("Failed to count clicks")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to load stats", nil)
			return
		}

		stats := domain.AdminStats{
			Companies:      companies,
			PendingReviews: pending,
			Clicks30d:      clicks,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			logrus.WithError(err).Error("Failed to encode admin stats")
		}
	}
}
