package middleware

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/handlers"
	"finance-dashboard/internal/services"
	"finance-dashboard/internal/services/service_mocks"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ErrorHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	ctrl    *gomock.Controller
	metrics *service_mocks.MockMetricsRecorderInterface
	logs    *bytes.Buffer
	handler *ErrorHandler
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.ctrl = gomock.NewController(s.T())
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.logs = &bytes.Buffer{}
	s.handler = NewErrorHandler(slog.New(slog.NewJSONHandler(s.logs, nil)), s.metrics)
	s.echo.HTTPErrorHandler = s.handler.HandleHTTPError
}

func (s *ErrorHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil), rec)
	c.Set(TraceIDContextKey, "test-trace-id")
	return c, rec
}

func (s *ErrorHandlerTestSuite) expectAPIError(code, status string) {
	s.metrics.EXPECT().IncrementCounter(services.MetricAPIError, map[string]string{"code": code, "status": status})
}

func (s *ErrorHandlerTestSuite) decode(rec *httptest.ResponseRecorder) errors.ErrorResponse {
	var body errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (s *ErrorHandlerTestSuite) TestHandleHTTPError_EchoHTTPError() {
	c, rec := s.newContext()
	s.expectAPIError("SYSTEM_007", "404")

	s.handler.HandleHTTPError(echo.NewHTTPError(http.StatusNotFound, "Not Found"), c)

	s.Equal(http.StatusNotFound, rec.Code)
	body := s.decode(rec)
	s.Equal("SYSTEM_007", body.Error.Code)
	s.Equal("Not Found", body.Error.Message)
	s.Equal("test-trace-id", body.Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestHandleHTTPError_GenericErrorHidesCause() {
	c, rec := s.newContext()
	s.expectAPIError("SYSTEM_001", "500")

	s.handler.HandleHTTPError(stderrors.New("connection reset by peer"), c)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "connection reset")
	s.Contains(s.logs.String(), "connection reset by peer")
	s.Contains(s.logs.String(), `"level":"ERROR"`)
}

func (s *ErrorHandlerTestSuite) TestHandleHTTPError_ValidationErrors() {
	type goalForm struct {
		Name     string `json:"name" validate:"required"`
		Priority string `json:"priority" validate:"oneof=High Medium Low"`
	}
	verr := handlers.NewValidator().Validate(&goalForm{Priority: "Urgent"})
	s.Require().Error(verr)
	var validationErrs validator.ValidationErrors
	s.Require().True(stderrors.As(verr, &validationErrs))

	c, rec := s.newContext()
	s.expectAPIError("VALIDATION_001", "400")

	s.handler.HandleHTTPError(verr, c)

	s.Equal(http.StatusBadRequest, rec.Code)
	body := s.decode(rec)
	s.Contains(body.Error.Details, "name: is required")
	s.Contains(body.Error.Details, "priority: must be one of [High Medium Low]")
}

func (s *ErrorHandlerTestSuite) TestHandleHTTPError_NoTraceID() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	s.expectAPIError("SYSTEM_001", "500")

	s.handler.HandleHTTPError(stderrors.New("test error"), c)

	s.Equal("unknown", s.decode(rec).Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestHandleHTTPError_CommittedResponse() {
	c, rec := s.newContext()
	_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})

	s.handler.HandleHTTPError(stderrors.New("test error"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "ok")
}

func (s *ErrorHandlerTestSuite) TestMapHTTPStatusToErrorCode() {
	testCases := []struct {
		status       int
		expectedCode errors.ErrorCode
	}{
		{http.StatusBadRequest, errors.ValidationGeneral},
		{http.StatusUnauthorized, errors.AuthMissingToken},
		{http.StatusForbidden, errors.AuthInsufficientPermission},
		{http.StatusNotFound, errors.SystemRouteNotFound},
		{http.StatusMethodNotAllowed, errors.ValidationGeneral},
		{http.StatusTooManyRequests, errors.SystemRateLimitExceeded},
		{http.StatusInternalServerError, errors.SystemInternalError},
		{http.StatusServiceUnavailable, errors.SystemServiceUnavailable},
		{999, errors.SystemUnexpectedError},
	}

	for _, tc := range testCases {
		s.Run(http.StatusText(tc.status), func() {
			s.Equal(tc.expectedCode, mapHTTPStatusToErrorCode(tc.status))
		})
	}
}

func (s *ErrorHandlerTestSuite) TestReportErrors_CountsHandlerErrors() {
	c, rec := s.newContext()
	s.expectAPIError("GOAL_001", "404")

	next := s.handler.ReportErrors()(func(c echo.Context) error {
		return handlers.SendError(c, errors.GoalNotFound)
	})

	s.NoError(next(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(s.logs.String(), "GOAL_001")
	s.Contains(s.logs.String(), `"level":"WARN"`)
}

func (s *ErrorHandlerTestSuite) TestReportErrors_LogsHiddenSystemError() {
	c, _ := s.newContext()
	s.expectAPIError("SYSTEM_001", "500")

	next := s.handler.ReportErrors()(func(c echo.Context) error {
		return handlers.SendSystemError(c, stderrors.New("pq: relation \"goals\" does not exist"))
	})

	s.NoError(next(c))
	s.Contains(s.logs.String(), `relation \"goals\" does not exist`)
}

func (s *ErrorHandlerTestSuite) TestReportErrors_SuccessIsQuiet() {
	c, rec := s.newContext()

	next := s.handler.ReportErrors()(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	s.NoError(next(c))
	s.Equal(http.StatusNoContent, rec.Code)
	s.Empty(s.logs.String())
}

func (s *ErrorHandlerTestSuite) TestReportErrors_ReturnedErrorsLeftToEcho() {
	c, _ := s.newContext()
	boom := stderrors.New("boom")

	next := s.handler.ReportErrors()(func(c echo.Context) error {
		return boom
	})

	s.ErrorIs(next(c), boom)
	s.Empty(s.logs.String())
}
