package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/fundedrank/fundedrank-api/internal/domain"
	"github.com/fundedrank/fundedrank-api/pkg/apiErrors"
)

// RoleMiddleware restricts a route to the given identity-provider
// roles. Requests without validated claims are rejected.
func RoleMiddleware(allowedRoles []domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)

			if !ok {
				logrus.Warning("unauthenticated access attempt to protected route")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authentication required", nil)
				return
			}

			isAllowed := false
			for _, role := range allowedRoles {
				if userClaims.Role == role {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.Warningf("access denied for subject=%s role=%s", userClaims.ExternalID, userClaims.Role)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "You do not have permission to access this resource", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly permits only administrators.
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]domain.Role{domain.RoleAdmin})
}

// AdminOrModerator permits administrators and moderators.
func AdminOrModerator() func(http.Handler) http.Handler {
	return RoleMiddleware([]domain.Role{domain.RoleAdmin, domain.RoleModerator})
}

// AllRoles permits any authenticated user.
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]domain.Role{domain.RoleAdmin, domain.RoleModerator, domain.RoleMember})
}
