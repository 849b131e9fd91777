package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_Defaults() {
	response := NewErrorResponse(DashboardOwnerHasData, s.traceID)

	s.Equal("DASHBOARD_004", response.Error.Code)
	s.Equal("Demo data can only be seeded for an empty dashboard", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.NotNil(response.Error.Details)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_Options() {
	response := NewErrorResponse(GoalNotFound, s.traceID,
		WithMessage("first"),
		WithDetails("a"),
		WithMessage("Goal was deleted"),
		WithDetails("goal 42", "owner 7"),
	)

	s.Equal("GOAL_001", response.Error.Code)
	s.Equal("Goal was deleted", response.Error.Message, "last option wins")
	s.Equal([]string{"goal 42", "owner 7"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError_SortsDetails() {
	response := NewValidationError(map[string]string{
		"target_date":   "is required",
		"amount":        "must be a decimal amount",
		"currency":      "must be a 3-letter currency code",
		"target_amount": "must be greater than 0",
	}, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal([]string{
		"amount: must be a decimal amount",
		"currency: must be a 3-letter currency code",
		"target_amount: must be greater than 0",
		"target_date: is required",
	}, response.Error.Details)
	s.Equal(http.StatusBadRequest, response.GetHTTPStatus())
}

func (s *ResponseTestSuite) TestNewValidationErrorFromList_KeepsOrder() {
	details := []string{"type: must be one of [credit debit]", "amount: is required"}

	response := NewValidationErrorFromList(details, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal(details, response.Error.Details)
}

func (s *ResponseTestSuite) TestWrapSystemError_HidesCause() {
	internalErr := errors.New(`pq: duplicate key value violates unique constraint "accounts_pkey"`)

	response, returned := WrapSystemError(internalErr, s.traceID)

	s.Same(internalErr, returned)
	s.Equal("SYSTEM_001", response.Error.Code)
	body, err := json.Marshal(response)
	s.Require().NoError(err)
	s.NotContains(string(body), "accounts_pkey")
}

func (s *ResponseTestSuite) TestJSONShape() {
	response := NewErrorResponse(TransactionInvalidAmount, s.traceID, WithDetails("amount: must be greater than 0"))

	body, err := json.Marshal(response)
	s.Require().NoError(err)

	var decoded map[string]map[string]interface{}
	s.Require().NoError(json.Unmarshal(body, &decoded))
	s.Equal("TRANSACTION_002", decoded["error"]["code"])
	s.Equal(s.traceID, decoded["error"]["trace_id"])
	s.Equal([]interface{}{"amount: must be greater than 0"}, decoded["error"]["details"])
	s.Contains(decoded["error"], "message")

	empty, err := json.Marshal(NewErrorResponse(SystemInternalError, s.traceID))
	s.Require().NoError(err)
	s.NotContains(string(empty), "details")
}

func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		name           string
		code           ErrorCode
		expectedStatus int
	}{
		{"Validation Invalid Patch", ValidationInvalidPatch, http.StatusBadRequest},
		{"Account Invalid ID", AccountInvalidID, http.StatusBadRequest},
		{"Auth Expired Token", AuthExpiredToken, http.StatusUnauthorized},
		{"Dashboard Missing Owner", DashboardMissingOwner, http.StatusUnauthorized},
		{"Auth Insufficient Permission", AuthInsufficientPermission, http.StatusForbidden},
		{"Transaction Not Found", TransactionNotFound, http.StatusNotFound},
		{"Dashboard Unknown Collection", DashboardUnknownCollection, http.StatusNotFound},
		{"System Route Not Found", SystemRouteNotFound, http.StatusNotFound},
		{"Account Already Exists", AccountAlreadyExists, http.StatusConflict},
		{"Dashboard Not Loaded", DashboardNotLoaded, http.StatusConflict},
		{"Goal Invalid Status", GoalInvalidStatus, http.StatusUnprocessableEntity},
		{"Transaction Unknown Account", TransactionUnknownAccount, http.StatusUnprocessableEntity},
		{"System Rate Limit Exceeded", SystemRateLimitExceeded, http.StatusTooManyRequests},
		{"Dashboard Store Unavailable", DashboardStoreUnavailable, http.StatusServiceUnavailable},
		{"System Database Error", SystemDatabaseError, http.StatusInternalServerError},
		{"Unknown", ErrorCode("UNKNOWN_999"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expectedStatus, GetHTTPStatus(tc.code))
			s.Equal(tc.expectedStatus, NewErrorResponse(tc.code, s.traceID).GetHTTPStatus())
		})
	}
}

func (s *ResponseTestSuite) TestEveryCataloguedCodeHasAStatus() {
	for code := range errorMessages {
		status := GetHTTPStatus(code)
		s.GreaterOrEqual(status, 400, string(code))
		s.Less(status, 600, string(code))
	}
}

func (s *ResponseTestSuite) TestString() {
	response := NewErrorResponse(AuthInvalidToken, "trace-1")
	s.Equal("[AUTH_004] "+GetErrorMessage(AuthInvalidToken)+" (trace: trace-1)", response.String())
}
