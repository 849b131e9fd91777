package handlers

import (
	stderrors "errors"
	"net/http"

	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"
	"finance-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// Handlers report failures through SendError (known client errors) or
// SendSystemError (everything else, details stay in the server log).
// Raw echo.NewHTTPError and hand-built error bodies are not used.

const (
	// TraceIDContextKey is the echo context key holding the request's trace id
	TraceIDContextKey = "trace_id"
	// ErrorCodeContextKey holds the code of the error response a handler sent
	ErrorCodeContextKey = "error_code"
	// InternalErrorContextKey holds the error hidden by SendSystemError
	InternalErrorContextKey = "internal_error"
)

// ErrorResponse is the standardized error body
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	return sendErrorResponse(c, errors.NewErrorResponse(code, getTraceID(c), opts...))
}

func sendErrorResponse(c echo.Context, errorResponse *errors.ErrorResponse) error {
	c.Set(ErrorCodeContextKey, errors.ErrorCode(errorResponse.Error.Code))
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError hides err behind SYSTEM_001. err is kept on the context for the error logger.
func SendSystemError(c echo.Context, err error) error {
	errorResponse, internal := errors.WrapSystemError(err, getTraceID(c))
	c.Set(ErrorCodeContextKey, errors.SystemInternalError)
	c.Set(InternalErrorContextKey, internal)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// domainErrorCodes is checked in order; the first match wins
var domainErrorCodes = []struct {
	err  error
	code errors.ErrorCode
}{
	{models.ErrOwnerRequired, errors.DashboardMissingOwner},
	{services.ErrNotLoaded, errors.DashboardNotLoaded},
	{services.ErrStoreBreakerOpen, errors.DashboardStoreUnavailable},
	{services.ErrOwnerHasData, errors.DashboardOwnerHasData},
	{models.ErrUnknownCollection, errors.DashboardUnknownCollection},
	{services.ErrCollectionMismatch, errors.ValidationGeneral},

	{models.ErrEmptyPatch, errors.ValidationInvalidPatch},
	{models.ErrUnknownPatchField, errors.ValidationInvalidPatch},
	{models.ErrImmutablePatchField, errors.ValidationInvalidPatch},
	{models.ErrInvalidPatchValue, errors.ValidationInvalidPatch},

	{repositories.ErrAccountNotFound, errors.AccountNotFound},
	{repositories.ErrAccountExists, errors.AccountAlreadyExists},
	{repositories.ErrTransactionNotFound, errors.TransactionNotFound},
	{repositories.ErrGoalNotFound, errors.GoalNotFound},

	{models.ErrInvalidAccountType, errors.AccountInvalidType},
	{models.ErrInvalidAmount, errors.TransactionInvalidAmount},
	{models.ErrInvalidTransactionType, errors.TransactionInvalidType},
	{models.ErrInvalidTargetAmount, errors.GoalInvalidAmount},
	{models.ErrInvalidCurrentAmount, errors.GoalInvalidAmount},
	{models.ErrInvalidGoalStatus, errors.GoalInvalidStatus},

	{models.ErrAccountNameRequired, errors.ValidationRequiredField},
	{models.ErrAccountRefRequired, errors.ValidationRequiredField},
	{models.ErrDescriptionRequired, errors.ValidationRequiredField},
	{models.ErrTransactionDateRequired, errors.ValidationRequiredField},
	{models.ErrGoalNameRequired, errors.ValidationRequiredField},
	{models.ErrGoalTargetDateMissing, errors.ValidationRequiredField},
	{models.ErrInvalidCurrency, errors.ValidationInvalidFormat},
	{models.ErrInvalidTransactionStatus, errors.ValidationInvalidFormat},
	{models.ErrInvalidGoalPriority, errors.ValidationInvalidFormat},
	{models.ErrCreditLimitNotAllowed, errors.ValidationGeneral},
	{models.ErrInvalidCreditLimit, errors.ValidationOutOfRange},
}

// errorCodeFor maps a service error onto its API error code
func errorCodeFor(err error) (errors.ErrorCode, bool) {
	for _, candidate := range domainErrorCodes {
		if stderrors.Is(err, candidate.err) {
			return candidate.code, true
		}
	}
	return "", false
}

// SendServiceError sends the mapped error for err, or a system error when err is unknown.
// Client errors carry the underlying message as their only detail.
func SendServiceError(c echo.Context, err error) error {
	code, ok := errorCodeFor(err)
	if !ok {
		return SendSystemError(c, err)
	}
	if errors.GetHTTPStatus(code) >= http.StatusInternalServerError {
		return SendError(c, code)
	}
	return SendError(c, code, errors.WithDetails(rootCause(err).Error()))
}

// rootCause unwraps the service error chain down to the error the store or model returned
func rootCause(err error) error {
	for {
		var mutation *services.MutationError
		if stderrors.As(err, &mutation) && mutation.Err != nil && mutation.Err != err {
			err = mutation.Err
			continue
		}
		return err
	}
}
