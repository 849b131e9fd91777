package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"finance-dashboard/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken          = errors.New("invalid token")
	ErrExpiredToken          = errors.New("token is expired")
	ErrEmptyToken            = errors.New("empty token")
	ErrInvalidAuthHeader     = errors.New("invalid authorization header format")
	ErrInvalidSubject        = errors.New("token subject is not a valid owner id")
	ErrSigningKeyUnavailable = errors.New("no signing key configured for local tokens")
)

// IdentityClaims are the claims the dashboard reads from an identity provider token.
// Providers that put the user id in a custom claim set user_id; otherwise sub is used.
type IdentityClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id,omitempty"`
	Email  string `json:"email,omitempty"`
}

// OwnerID returns the owner the token was issued for
func (c *IdentityClaims) OwnerID() (uuid.UUID, error) {
	raw := c.UserID
	if raw == "" {
		raw = c.Subject
	}
	ownerID, err := uuid.Parse(raw)
	if err != nil || ownerID == uuid.Nil {
		return uuid.Nil, ErrInvalidSubject
	}
	return ownerID, nil
}

type tokenVerifier struct {
	config.AuthConfig
	now func() time.Time
}

// NewTokenVerifier verifies RS256 tokens issued by the external identity provider
func NewTokenVerifier(authConfig *config.AuthConfig) TokenVerifierInterface {
	return &tokenVerifier{AuthConfig: *authConfig, now: time.Now}
}

// ExtractTokenFromHeader extracts the JWT from a "Bearer <token>" Authorization header
func (v *tokenVerifier) ExtractTokenFromHeader(authHeader string) (string, error) {
	const bearerPrefix = "bearer "
	if len(authHeader) < len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
		return "", ErrInvalidAuthHeader
	}

	token := strings.TrimSpace(authHeader[len(bearerPrefix):])
	if token == "" {
		return "", ErrInvalidAuthHeader
	}
	return token, nil
}

func (v *tokenVerifier) VerifyAccessToken(tokenString string) (*IdentityClaims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(v.ClockSkew),
		jwt.WithTimeFunc(v.now),
	}
	if v.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.Issuer))
	}
	if v.Audience != "" {
		opts = append(opts, jwt.WithAudience(v.Audience))
	}

	token, err := jwt.ParseWithClaims(tokenString, &IdentityClaims{}, v.keyFunc, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*IdentityClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if _, err := claims.OwnerID(); err != nil {
		return nil, err
	}
	return claims, nil
}

func (v *tokenVerifier) keyFunc(token *jwt.Token) (interface{}, error) {
	if v.PublicKey == nil {
		return nil, errors.New("identity provider public key is not configured")
	}
	return v.PublicKey, nil
}

// MintToken signs a token the way the identity provider would. It only works when a
// private key is configured, which is the case in development.
func (v *tokenVerifier) MintToken(ownerID uuid.UUID, email string, ttl time.Duration) (string, time.Time, error) {
	if v.PrivateKey == nil {
		return "", time.Time{}, ErrSigningKeyUnavailable
	}
	if ownerID == uuid.Nil {
		return "", time.Time{}, ErrInvalidSubject
	}

	now := v.now()
	expiresAt := now.Add(ttl)
	claims := IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    v.Issuer,
			Subject:   ownerID.String(),
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Email: email,
	}
	if v.Audience != "" {
		claims.Audience = jwt.ClaimStrings{v.Audience}
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(v.PrivateKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}
