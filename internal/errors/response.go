package errors

import (
	"fmt"
	"net/http"
	"sort"
)

// ErrorResponse represents the standardized API error response structure
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the detailed error information
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption is a functional option for configuring error responses
type ErrorOption func(*ErrorResponse)

// WithDetails replaces the detail lines of the response
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse builds the standard error body for code
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{Error: ErrorDetail{
		Code:    string(code),
		Message: GetErrorMessage(code),
		Details: []string{},
		TraceID: traceID,
	}}
	for _, opt := range opts {
		opt(response)
	}
	return response
}

// NewValidationError builds a VALIDATION_001 body with one "field: message" detail per
// entry, sorted so the body is stable
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	details := make([]string, 0, len(fieldErrors))
	for field, message := range fieldErrors {
		details = append(details, fmt.Sprintf("%s: %s", field, message))
	}
	sort.Strings(details)
	return NewValidationErrorFromList(details, traceID)
}

// NewValidationErrorFromList builds a VALIDATION_001 body from prepared detail lines
func NewValidationErrorFromList(details []string, traceID string) *ErrorResponse {
	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

// WrapSystemError hides err behind a generic message; err is handed back for logging
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

var statusByCode = map[ErrorCode]int{
	ValidationGeneral:       http.StatusBadRequest,
	ValidationRequiredField: http.StatusBadRequest,
	ValidationInvalidFormat: http.StatusBadRequest,
	ValidationOutOfRange:    http.StatusBadRequest,
	ValidationInvalidDate:   http.StatusBadRequest,
	ValidationInvalidPatch:  http.StatusBadRequest,
	AccountInvalidID:        http.StatusBadRequest,
	TransactionInvalidID:    http.StatusBadRequest,
	GoalInvalidID:           http.StatusBadRequest,

	AuthMissingToken:       http.StatusUnauthorized,
	AuthExpiredToken:       http.StatusUnauthorized,
	AuthInvalidTokenFormat: http.StatusUnauthorized,
	AuthInvalidToken:       http.StatusUnauthorized,
	DashboardMissingOwner:  http.StatusUnauthorized,

	AuthInsufficientPermission: http.StatusForbidden,

	AccountNotFound:            http.StatusNotFound,
	TransactionNotFound:        http.StatusNotFound,
	GoalNotFound:               http.StatusNotFound,
	DashboardUnknownCollection: http.StatusNotFound,
	SystemRouteNotFound:        http.StatusNotFound,

	AccountAlreadyExists:  http.StatusConflict,
	DashboardOwnerHasData: http.StatusConflict,
	DashboardNotLoaded:    http.StatusConflict,

	AccountInvalidType:        http.StatusUnprocessableEntity,
	TransactionInvalidAmount:  http.StatusUnprocessableEntity,
	TransactionInvalidType:    http.StatusUnprocessableEntity,
	TransactionUnknownAccount: http.StatusUnprocessableEntity,
	GoalInvalidAmount:         http.StatusUnprocessableEntity,
	GoalInvalidStatus:         http.StatusUnprocessableEntity,

	SystemRateLimitExceeded: http.StatusTooManyRequests,

	SystemServiceUnavailable:  http.StatusServiceUnavailable,
	DashboardStoreUnavailable: http.StatusServiceUnavailable,
}

// GetHTTPStatus maps an error code to its HTTP status. Unknown codes are 500.
func GetHTTPStatus(code ErrorCode) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// GetHTTPStatus returns the HTTP status for the response's code
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}

func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Error.Code, er.Error.Message, er.Error.TraceID)
}
