package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes grouped by concern.
const (
	// Authentication / authorization (AUTH_*)
	ErrInvalidToken          = "AUTH_001" // invalid bearer token
	ErrExpiredToken          = "AUTH_002" // expired bearer token
	ErrInsufficientPrivilege = "AUTH_003" // role not allowed for this resource
	ErrInvalidServiceToken   = "AUTH_004" // unknown service token

	// Validation (VAL_*)
	ErrInvalidRequest      = "VAL_001" // malformed request body
	ErrMissingRequiredData = "VAL_002" // required fields absent
	ErrInvalidFormat       = "VAL_003" // field present but unusable

	// Resources (RES_*)
	ErrCompanyNotFound = "RES_001"
	ErrReviewNotFound  = "RES_002"

	// Server (SRV_*)
	ErrInternalServer    = "SRV_001"
	ErrDatabaseOperation = "SRV_002"
	ErrTooManyRequests   = "SRV_003"
)

var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidServiceToken:   http.StatusUnauthorized,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrCompanyNotFound:       http.StatusNotFound,
	ErrReviewNotFound:        http.StatusNotFound,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrTooManyRequests:       http.StatusTooManyRequests,
}

// APIError is the standardized error payload.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standardized error to the HTTP response.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError wraps a Go error into an API error payload.
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
