package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/fundedrank/fundedrank-api/internal/domain"
	"github.com/fundedrank/fundedrank-api/internal/scheduler"
	"github.com/fundedrank/fundedrank-api/internal/usecases/authenticating"
	"github.com/fundedrank/fundedrank-api/pkg/apiErrors"
	"github.com/fundedrank/fundedrank-api/pkg/middleware"
)

const (
	CronJobTypeTrendSnapshot = "trend-snapshot"
	CronJobTypeRatesRefresh  = "rates-refresh"
	CronJobTypeAll           = "all"
)

// CronJobServices bundles the schedulers exposed through the cron
// endpoints.
type CronJobServices struct {
	TrendSnapshotService *scheduler.TrendSnapshotService
	RatesRefreshService  *scheduler.RatesRefreshService
}

// authorizeCron accepts either a valid service token, used by the
// external cron runner, or an authenticated admin.
func authorizeCron(r *http.Request, authenticator authenticating.Authenticator) bool {
	if token := r.Header.Get("X-Service-Token"); token != "" {
		if err := authenticator.ValidateServiceToken(r.Context(), token); err == nil {
			return true
		}
		return false
	}

	claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	return ok && claims.Role == domain.RoleAdmin
}

// RunCronJob triggers a scheduler run outside its cron schedule.
func RunCronJob(services CronJobServices, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorizeCron(r, authenticator) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Cron jobs require a service token or an admin account", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Cron job type not specified", nil)
			return
		}

		switch cronType {
		case CronJobTypeTrendSnapshot:
			if services.TrendSnapshotService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Trend snapshot service unavailable", nil)
				return
			}
			services.TrendSnapshotService.TriggerManualSync()

		case CronJobTypeRatesRefresh:
			if services.RatesRefreshService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Rates refresh service unavailable", nil)
				return
			}
			services.RatesRefreshService.TriggerManualSync()

		case CronJobTypeAll:
			if services.TrendSnapshotService != nil {
				services.TrendSnapshotService.TriggerManualSync()
			}
			if services.RatesRefreshService != nil {
				services.RatesRefreshService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Unknown cron job type. Accepted values: trend-snapshot, rates-refresh, all", nil)
			return
		}

		logrus.WithField("type", cronType).Info("Cron job triggered manually")

		response := map[string]any{
			"message": "Cron job started",
			"type":    cronType,
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.WithError(err).Error("Failed to encode cron response")
		}
	}
}

// GetCronStatus reports the state of every scheduler.
func GetCronStatus(services CronJobServices, authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorizeCron(r, authenticator) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Cron status requires a service token or an admin account", nil)
			return
		}

		status := map[string]any{
			CronJobTypeTrendSnapshot: services.TrendSnapshotService.GetStatus(),
			CronJobTypeRatesRefresh:  services.RatesRefreshService.GetStatus(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.WithError(err).Error("Failed to encode cron status")
		}
	}
}
