package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/handlers"
	"finance-dashboard/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ErrorHandler renders errors that escape handlers as standard error bodies, and logs
// and counts every error response the API sends
type ErrorHandler struct {
	logger  *slog.Logger
	metrics services.MetricsRecorderInterface
}

func NewErrorHandler(logger *slog.Logger, metrics services.MetricsRecorderInterface) *ErrorHandler {
	return &ErrorHandler{logger: logger, metrics: metrics}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler
func (h *ErrorHandler) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	var errorResponse *errors.ErrorResponse
	var httpStatus int

	var echoErr *echo.HTTPError
	var validationErrs validator.ValidationErrors
	switch {
	case stderrors.As(err, &echoErr):
		errorResponse = errors.NewErrorResponse(
			mapHTTPStatusToErrorCode(echoErr.Code),
			traceID,
			errors.WithMessage(fmt.Sprintf("%v", echoErr.Message)),
		)
		httpStatus = echoErr.Code
	case stderrors.As(err, &validationErrs):
		errorResponse = errors.NewValidationErrorFromList(handlers.ValidationDetails(validationErrs), traceID)
		httpStatus = http.StatusBadRequest
	default:
		errorResponse, _ = errors.WrapSystemError(err, traceID)
		httpStatus = errorResponse.GetHTTPStatus()
	}

	h.report(c, errorResponse.Error.Code, httpStatus, err)

	if sendErr := c.JSON(httpStatus, errorResponse); sendErr != nil {
		h.logger.Error("Failed to send error response",
			"trace_id", traceID,
			"error", sendErr.Error(),
		)
	}
}

// ReportErrors logs and counts the error responses handlers write through handlers.SendError.
// Errors returned to echo are reported by HandleHTTPError instead.
func (h *ErrorHandler) ReportErrors() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err != nil {
				return err
			}
			code, ok := c.Get(handlers.ErrorCodeContextKey).(errors.ErrorCode)
			if !ok {
				return nil
			}
			internal, _ := c.Get(handlers.InternalErrorContextKey).(error)
			h.report(c, string(code), c.Response().Status, internal)
			return nil
		}
	}
}

func (h *ErrorHandler) report(c echo.Context, code string, httpStatus int, cause error) {
	logLevel := slog.LevelWarn
	if httpStatus >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	attrs := []any{
		"trace_id", GetTraceID(c),
		"error_code", code,
		"status", httpStatus,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	}
	if cause != nil {
		attrs = append(attrs, "error", cause.Error())
	}
	h.logger.Log(c.Request().Context(), logLevel, "HTTP error occurred", attrs...)

	h.metrics.IncrementCounter(services.MetricAPIError, map[string]string{
		"code":   code,
		"status": strconv.Itoa(httpStatus),
	})
}

// mapHTTPStatusToErrorCode maps HTTP status codes to error codes
func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusMethodNotAllowed, http.StatusUnsupportedMediaType,
		http.StatusRequestEntityTooLarge, http.StatusUnprocessableEntity:
		return errors.ValidationGeneral
	case http.StatusUnauthorized:
		return errors.AuthMissingToken
	case http.StatusForbidden:
		return errors.AuthInsufficientPermission
	case http.StatusNotFound:
		return errors.SystemRouteNotFound
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return errors.SystemInternalError
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemUnexpectedError
	}
}
