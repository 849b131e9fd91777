package middleware

import (
	stderrors "errors"

	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/handlers"
	"finance-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// RequireAuth rejects requests without a valid identity provider token and puts the
// token's owner id on the context
func RequireAuth(verifier services.TokenVerifierInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := verifier.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := verifier.VerifyAccessToken(token)
			if err != nil {
				if stderrors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidToken)
			}

			ownerID, err := claims.OwnerID()
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidToken, errors.WithDetails("Invalid user ID in token"))
			}

			c.Set(handlers.OwnerIDContextKey, ownerID)
			c.Set("user_email", claims.Email)
			c.Set("token_jti", claims.ID)

			return next(c)
		}
	}
}

// OptionalAuth behaves like RequireAuth when an Authorization header is present and lets
// anonymous requests through without an owner
func OptionalAuth(verifier services.TokenVerifierInterface) echo.MiddlewareFunc {
	required := RequireAuth(verifier)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		authenticated := required(next)
		return func(c echo.Context) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return next(c)
			}
			return authenticated(c)
		}
	}
}
