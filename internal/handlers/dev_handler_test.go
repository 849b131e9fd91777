package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/services"
	"finance-dashboard/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type DevHandlerSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	seeder    *service_mocks.MockDemoSeederInterface
	dashboard *service_mocks.MockDashboardServiceInterface
	verifier  *service_mocks.MockTokenVerifierInterface
	handler   *DevHandler
	echo      *echo.Echo
	ownerID   uuid.UUID
}

func TestDevHandlerSuite(t *testing.T) {
	suite.Run(t, new(DevHandlerSuite))
}

func (s *DevHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.seeder = service_mocks.NewMockDemoSeederInterface(s.ctrl)
	s.dashboard = service_mocks.NewMockDashboardServiceInterface(s.ctrl)
	s.verifier = service_mocks.NewMockTokenVerifierInterface(s.ctrl)
	s.handler = NewDevHandler(s.seeder, s.dashboard, s.verifier)
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ownerID = uuid.New()
}

func (s *DevHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DevHandlerSuite) newContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/dev/seed", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(OwnerIDContextKey, s.ownerID)
	return c, rec
}

func (s *DevHandlerSuite) TestSeedDemoData_SeedsAndReloads() {
	gomock.InOrder(
		s.seeder.EXPECT().
			SeedOwner(gomock.Any(), s.ownerID, services.SeedOptions{Transactions: 25, Seed: 9}).
			Return(&services.SeedResult{Accounts: 3, Transactions: 25, Goals: 3}, nil),
		s.dashboard.EXPECT().Reload(gomock.Any(), s.ownerID).Return(services.AggregateView{Mode: services.ModeReal}, nil),
	)

	c, rec := s.newContext(`{"transactions": 25, "seed": 9}`)
	err := s.handler.SeedDemoData(c)

	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)

	var resp dto.SeedResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(s.ownerID, resp.OwnerID)
	s.Equal(25, resp.Transactions)
	s.Equal(3, resp.Goals)
}

func (s *DevHandlerSuite) TestSeedDemoData_EmptyBodyUsesDefaults() {
	s.seeder.EXPECT().
		SeedOwner(gomock.Any(), s.ownerID, services.SeedOptions{}).
		Return(&services.SeedResult{Accounts: 3, Transactions: 40, Goals: 3}, nil)
	s.dashboard.EXPECT().Reload(gomock.Any(), s.ownerID).Return(services.AggregateView{}, nil)

	c, rec := s.newContext("")
	err := s.handler.SeedDemoData(c)

	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *DevHandlerSuite) TestSeedDemoData_OwnerHasData() {
	s.seeder.EXPECT().
		SeedOwner(gomock.Any(), s.ownerID, gomock.Any()).
		Return(nil, services.ErrOwnerHasData)

	c, rec := s.newContext(`{}`)
	err := s.handler.SeedDemoData(c)

	s.NoError(err)
	s.Equal(http.StatusConflict, rec.Code)
	s.Contains(rec.Body.String(), "DASHBOARD_004")
}

func (s *DevHandlerSuite) TestSeedDemoData_RejectsTooManyTransactions() {
	c, rec := s.newContext(`{"transactions": 5000}`)
	err := s.handler.SeedDemoData(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "transactions: failed max=500")
}

func (s *DevHandlerSuite) TestIssueToken_ForGivenOwner() {
	expiresAt := time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)
	s.verifier.EXPECT().
		MintToken(s.ownerID, "dev@example.com", devTokenTTL).
		Return("signed.jwt.value", expiresAt, nil)

	c, rec := s.newContext(`{"owner_id": "` + s.ownerID.String() + `", "email": "dev@example.com"}`)
	err := s.handler.IssueToken(c)

	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)
	var resp dto.DevTokenResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("signed.jwt.value", resp.AccessToken)
	s.Equal("Bearer", resp.TokenType)
	s.Equal(s.ownerID, resp.OwnerID)
	s.True(expiresAt.Equal(resp.ExpiresAt))
}

func (s *DevHandlerSuite) TestIssueToken_GeneratesOwner() {
	var minted uuid.UUID
	s.verifier.EXPECT().
		MintToken(gomock.Any(), "", devTokenTTL).
		DoAndReturn(func(ownerID uuid.UUID, _ string, ttl time.Duration) (string, time.Time, error) {
			minted = ownerID
			return "tok", time.Now().Add(ttl), nil
		})

	c, rec := s.newContext("")
	s.NoError(s.handler.IssueToken(c))

	s.Equal(http.StatusCreated, rec.Code)
	var resp dto.DevTokenResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.NotEqual(uuid.Nil, minted)
	s.Equal(minted, resp.OwnerID)
}

func (s *DevHandlerSuite) TestIssueToken_InvalidOwnerID() {
	c, rec := s.newContext(`{"owner_id": "nope"}`)
	s.NoError(s.handler.IssueToken(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "owner_id: failed uuid")
}

func (s *DevHandlerSuite) TestIssueToken_NoSigningKey() {
	s.verifier.EXPECT().
		MintToken(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", time.Time{}, services.ErrSigningKeyUnavailable)

	c, rec := s.newContext(`{}`)
	s.NoError(s.handler.IssueToken(c))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_004")
}
