package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/fundedrank/fundedrank-api/internal/domain"
	"github.com/fundedrank/fundedrank-api/internal/usecases/reviewing"
	"github.com/fundedrank/fundedrank-api/pkg/apiErrors"
)

// SubmitReview accepts a review from the public form. New reviews are
// always pending until a moderator approves them.
func SubmitReview(service reviewing.ReviewService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := httprouter.ParamsFromContext(r.Context()).ByName("slug")
		if slug == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Company slug not provided", nil)
			return
		}

		var submission domain.ReviewSubmission
		if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
			logrus.WithError(err).Error("Failed to decode review submission")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Failed to decode request body", nil)
			return
		}

		review, err := service.Submit(r.Context(), slug, &submission)
		if err != nil {
			switch {
			case errors.Is(err, reviewing.ErrCompanyNotFound):
				apiErrors.WriteError(w, apiErrors.ErrCompanyNotFound, "Company not found", nil)
			case errors.Is(err, reviewing.ErrInvalidReview):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
			default:
				logrus.WithError(err).Error("Failed to store review")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to store review", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(review); err != nil {
			logrus.WithError(err).Error("Failed to encode review response")
		}
	}
}
