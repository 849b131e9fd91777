package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"finance-dashboard/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type PanicRecoveryTestSuite struct {
	suite.Suite
	echo   *echo.Echo
	logger *slog.Logger
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_RecoverFromPanic() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil), rec)
	c.Set(TraceIDContextKey, "test-trace-id")

	handler := PanicRecovery(s.logger)(func(c echo.Context) error {
		panic("aggregator exploded")
	})

	s.NotPanics(func() {
		s.NoError(handler(c))
	})

	s.Equal(http.StatusInternalServerError, rec.Code)
	var errorResponse errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &errorResponse))
	s.Equal("SYSTEM_001", errorResponse.Error.Code)
	s.Equal("test-trace-id", errorResponse.Error.TraceID)
	s.Equal(errors.SystemInternalError, c.Get("error_code"))
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_NoTraceID() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	handler := PanicRecovery(s.logger)(func(c echo.Context) error {
		panic("test panic")
	})
	s.NotPanics(func() { _ = handler(c) })

	var errorResponse errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &errorResponse))
	s.Equal("unknown", errorResponse.Error.TraceID)
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_NormalFlow() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	handler := PanicRecovery(s.logger)(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	s.NoError(handler(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_DifferentPanicTypes() {
	testCases := []struct {
		name      string
		panicWith interface{}
	}{
		{"String panic", "string panic"},
		{"Int panic", 42},
		{"Error panic", io.ErrUnexpectedEOF},
		{"Nil panic", nil},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rec := httptest.NewRecorder()
			c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			handler := PanicRecovery(s.logger)(func(c echo.Context) error {
				panic(tc.panicWith)
			})
			s.NotPanics(func() { _ = handler(c) })

			s.Equal(http.StatusInternalServerError, rec.Code)
		})
	}
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_CommittedResponseLeftAlone() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	handler := PanicRecovery(s.logger)(func(c echo.Context) error {
		_ = c.String(http.StatusOK, "partial")
		panic("late panic")
	})
	s.NotPanics(func() { _ = handler(c) })

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("partial", rec.Body.String())
}
