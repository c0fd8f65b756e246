package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/fundedrank/fundedrank-api/internal/domain"
	"github.com/fundedrank/fundedrank-api/internal/usecases/authenticating"
	"github.com/fundedrank/fundedrank-api/internal/usecases/cashbacking"
	"github.com/fundedrank/fundedrank-api/internal/usecases/engaging"
	"github.com/fundedrank/fundedrank-api/internal/usecases/ranking"
	"github.com/fundedrank/fundedrank-api/pkg/apiErrors"
	"github.com/fundedrank/fundedrank-api/pkg/middleware"
	"github.com/fundedrank/fundedrank-api/pkg/params"
)

type companyResponse struct {
	Company  *domain.CompanySnapshot `json:"company"`
	Cashback *cashbacking.Estimate   `json:"cashback,omitempty"`
}

// GetCompany returns the scored snapshot of a single company plus a
// cashback estimate in the requested currency when the company has a
// cashback program.
func GetCompany(rankingService ranking.RankingService, cashbackService cashbacking.CashbackService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := httprouter.ParamsFromContext(r.Context()).ByName("slug")
		if slug == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Company slug not provided", nil)
			return
		}

		snapshot, err := rankingService.GetCompanySnapshot(r.Context(), slug)
		if err != nil {
			logrus.WithError(err).Error("Failed to load company snapshot")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to load company", nil)
			return
		}
		if snapshot == nil {
			apiErrors.WriteError(w, apiErrors.ErrCompanyNotFound, "Company not found", nil)
			return
		}

		currency := params.String(r.URL.Query(), "currency")
		if currency == "" {
			currency = "USD"
		}

		estimate, err := cashbackService.EstimateForCompany(r.Context(), &snapshot.CompanyFacts, currency)
		if err != nil {
			// The snapshot is still useful without the estimate.
			logrus.WithError(err).WithField("slug", slug).Warn("Failed to estimate cashback")
			estimate = nil
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(companyResponse{Company: snapshot, Cashback: estimate}); err != nil {
			logrus.WithError(err).Error("Failed to encode company response")
		}
	}
}

type clickRequest struct {
	Intent   domain.ClickIntent `json:"intent"`
	Tab      domain.RankingTab  `json:"tab"`
	Position int                `json:"position"`
}

type clickResponse struct {
	Href string `json:"href"`
}

// RecordClick stores an outbound-click event and answers with the
// tracking link the frontend should navigate to.
func RecordClick(service engaging.EngagementService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := httprouter.ParamsFromContext(r.Context()).ByName("slug")
		if slug == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Company slug not provided", nil)
			return
		}

		var req clickRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.WithError(err).Error("Failed to decode click request")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Failed to decode request body", nil)
			return
		}

		href, err := service.RecordClick(r.Context(), slug, req.Intent, req.Tab, req.Position, requestIP(r))
		if err != nil {
			if errors.Is(err, engaging.ErrCompanyNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrCompanyNotFound, "Company not found", nil)
				return
			}
			logrus.WithError(err).Error("Failed to record click")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to record click", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(clickResponse{Href: href}); err != nil {
			logrus.WithError(err).Error("Failed to encode click response")
		}
	}
}

// AddFavorite marks a company as a favorite of the authenticated user.
func AddFavorite(service engaging.EngagementService, authenticator authenticating.Authenticator) http.HandlerFunc {
	return favoriteHandler(authenticator, service.AddFavorite)
}

// RemoveFavorite removes a company from the user's favorites.
func RemoveFavorite(service engaging.EngagementService, authenticator authenticating.Authenticator) http.HandlerFunc {
	return favoriteHandler(authenticator, service.RemoveFavorite)
}

func favoriteHandler(
	authenticator authenticating.Authenticator,
	action func(ctx context.Context, user *domain.User, companySlug string) error,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := httprouter.ParamsFromContext(r.Context()).ByName("slug")
		if slug == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Company slug not provided", nil)
			return
		}

		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authentication required", nil)
			return
		}

		user, err := authenticator.SyncUser(r.Context(), claims)
		if err != nil {
			logrus.WithError(err).Error("Failed to sync user")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to load user", nil)
			return
		}

		if err := action(r.Context(), user, slug); err != nil {
			if errors.Is(err, engaging.ErrCompanyNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrCompanyNotFound, "Company not found", nil)
				return
			}
			logrus.WithError(err).Error("Failed to update favorite")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to update favorite", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// requestIP prefers the first X-Forwarded-For hop so click dedup works
// behind the load balancer.
func requestIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}

	host := r.RemoteAddr
	if idx := strings.LastIndex(host, ":"); idx != -1 {
		host = host[:idx]
	}
	return host
}
