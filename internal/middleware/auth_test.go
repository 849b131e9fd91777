package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/handlers"
	"finance-dashboard/internal/services"
	"finance-dashboard/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	verifier services.TokenVerifierInterface
	ownerID  uuid.UUID
	e        *echo.Echo
}

func (s *AuthMiddlewareSuite) SetupTest() {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	s.verifier = services.NewTokenVerifier(&config.AuthConfig{
		Issuer:     "test-idp",
		Audience:   "authenticated",
		PublicKey:  publicKey,
		PrivateKey: privateKey,
	})
	s.ownerID = uuid.New()
	s.e = echo.New()
}

func (s *AuthMiddlewareSuite) mint() string {
	token, _, err := s.verifier.MintToken(s.ownerID, "owner@example.com", time.Hour)
	s.Require().NoError(err)
	return token
}

func (s *AuthMiddlewareSuite) run(mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, echo.Context, bool) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	s.Require().NoError(handler(c))
	return rec, c, called
}

func (s *AuthMiddlewareSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var body errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error.Code
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ValidToken() {
	rec, c, called := s.run(RequireAuth(s.verifier), "Bearer "+s.mint())

	s.True(called)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(s.ownerID, c.Get(handlers.OwnerIDContextKey))
	s.Equal("owner@example.com", c.Get("user_email"))
	s.NotEmpty(c.Get("token_jti"))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MissingHeader() {
	rec, _, called := s.run(RequireAuth(s.verifier), "")

	s.False(called)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthMissingToken), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_WrongScheme() {
	rec, _, called := s.run(RequireAuth(s.verifier), "Basic dXNlcjpwYXNz")

	s.False(called)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthInvalidTokenFormat), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_GarbageToken() {
	rec, _, called := s.run(RequireAuth(s.verifier), "Bearer not.a.jwt")

	s.False(called)
	s.Equal(string(errors.AuthInvalidToken), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_TokenFromOtherKey() {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)
	other := services.NewTokenVerifier(&config.AuthConfig{
		Issuer: "test-idp", Audience: "authenticated", PublicKey: publicKey, PrivateKey: privateKey,
	})
	token, _, err := other.MintToken(s.ownerID, "", time.Hour)
	s.Require().NoError(err)

	rec, _, called := s.run(RequireAuth(s.verifier), "Bearer "+token)

	s.False(called)
	s.Equal(string(errors.AuthInvalidToken), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ExpiredToken() {
	ctrl := gomock.NewController(s.T())
	verifier := service_mocks.NewMockTokenVerifierInterface(ctrl)
	verifier.EXPECT().ExtractTokenFromHeader("Bearer stale").Return("stale", nil)
	verifier.EXPECT().VerifyAccessToken("stale").Return(nil, services.ErrExpiredToken)

	rec, _, called := s.run(RequireAuth(verifier), "Bearer stale")

	s.False(called)
	s.Equal(string(errors.AuthExpiredToken), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_BadOwnerClaim() {
	ctrl := gomock.NewController(s.T())
	verifier := service_mocks.NewMockTokenVerifierInterface(ctrl)
	verifier.EXPECT().ExtractTokenFromHeader(gomock.Any()).Return("tok", nil)
	verifier.EXPECT().VerifyAccessToken("tok").Return(&services.IdentityClaims{UserID: "not-a-uuid"}, nil)

	rec, _, called := s.run(RequireAuth(verifier), "Bearer tok")

	s.False(called)
	s.Equal(string(errors.AuthInvalidToken), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestOptionalAuth_AnonymousPassesThrough() {
	rec, c, called := s.run(OptionalAuth(s.verifier), "")

	s.True(called)
	s.Equal(http.StatusOK, rec.Code)
	s.Nil(c.Get(handlers.OwnerIDContextKey))
}

func (s *AuthMiddlewareSuite) TestOptionalAuth_ValidTokenSetsOwner() {
	_, c, called := s.run(OptionalAuth(s.verifier), "Bearer "+s.mint())

	s.True(called)
	s.Equal(s.ownerID, c.Get(handlers.OwnerIDContextKey))
}

func (s *AuthMiddlewareSuite) TestOptionalAuth_InvalidTokenStillRejected() {
	rec, _, called := s.run(OptionalAuth(s.verifier), "Bearer not.a.jwt")

	s.False(called)
	s.Equal(http.StatusUnauthorized, rec.Code)
}
