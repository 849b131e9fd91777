package middleware

import (
	"net/http"
	"strings"
	"net/http/httptest"
	"testing"

	"finance-dashboard/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

func (s *RequestIDTestSuite) serve(req *http.Request, inner echo.HandlerFunc) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	s.Require().NoError(RequestID()(inner)(c))
	return rec
}

func (s *RequestIDTestSuite) TestRequestID_GeneratesUUIDTraceID() {
	var traceID string
	rec := s.serve(httptest.NewRequest(http.MethodGet, "/", nil), func(c echo.Context) error {
		traceID = GetTraceID(c)
		return c.NoContent(http.StatusOK)
	})

	s.Regexp(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, traceID)
	s.Equal(traceID, rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestRequestID_UsesExistingTraceID() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeader, "existing-trace-id-12345")

	rec := s.serve(req, func(c echo.Context) error {
		s.Equal("existing-trace-id-12345", c.Get(TraceIDContextKey))
		return c.NoContent(http.StatusOK)
	})

	s.Equal("existing-trace-id-12345", rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestRequestID_ReplacesOversizedTraceID() {
	oversized := strings.Repeat("a", maxTraceIDLength+1)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeader, oversized)

	rec := s.serve(req, func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	traceID := rec.Header().Get(TraceIDHeader)
	s.NotEqual(oversized, traceID)
	s.Len(traceID, 36)
}

func (s *RequestIDTestSuite) TestRequestID_PropagatesToRequestContext() {
	var fromContext, fromEcho string
	s.serve(httptest.NewRequest(http.MethodGet, "/", nil), func(c echo.Context) error {
		fromEcho = GetTraceID(c)
		fromContext = services.RequestIDFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	s.NotEmpty(fromEcho)
	s.Equal(fromEcho, fromContext)
}

func (s *RequestIDTestSuite) TestGetTraceID_ReturnsEmptyWhenNotSet() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	s.Empty(GetTraceID(c))
}
