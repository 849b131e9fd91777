package handlers

import (
	stderrors "errors"
	"net/http"
	"time"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints.
// Routes are registered only when the server runs in development.
type DevHandler struct {
	seeder    services.DemoSeederInterface
	dashboard services.DashboardServiceInterface
	verifier  services.TokenVerifierInterface
}

const devTokenTTL = 24 * time.Hour

// NewDevHandler creates a new development handler
func NewDevHandler(seeder services.DemoSeederInterface, dashboard services.DashboardServiceInterface, verifier services.TokenVerifierInterface) *DevHandler {
	return &DevHandler{
		seeder:    seeder,
		dashboard: dashboard,
		verifier:  verifier,
	}
}

// IssueToken signs a token with the local development key so the API can be exercised
// without the identity provider. A new owner id is generated when none is given.
//
// Method: POST /api/v1/dev/token
// Authentication: None
// Environment: Development only
func (h *DevHandler) IssueToken(c echo.Context) error {
	var req dto.DevTokenRequest
	if c.Request().ContentLength != 0 {
		if resp := bindAndValidate(c, &req); resp != nil {
			return sendErrorResponse(c, resp)
		}
	}

	ownerID := uuid.New()
	if req.OwnerID != "" {
		ownerID = uuid.MustParse(req.OwnerID)
	}

	token, expiresAt, err := h.verifier.MintToken(ownerID, req.Email, devTokenTTL)
	if err != nil {
		if stderrors.Is(err, services.ErrSigningKeyUnavailable) {
			return SendError(c, errors.SystemConfigurationError)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.DevTokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		OwnerID:     ownerID,
	})
}

// SeedDemoData fills the caller's empty dashboard with generated accounts, transactions
// and goals, then reloads the dashboard so it switches to real mode.
//
// Method: POST /api/v1/dev/seed
// Authentication: Required
// Environment: Development only
//
// Body (optional):
//   - transactions: number of transactions to generate (default 40, max 500)
//   - seed: random seed for reproducible data
//
// Error Responses:
//   - 400: invalid body
//   - 401: unauthorized
//   - 409: the owner already has accounts
//   - 500: internal server error
func (h *DevHandler) SeedDemoData(c echo.Context) error {
	ownerID, err := getOwnerIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.SeedRequest
	if c.Request().ContentLength != 0 {
		if resp := bindAndValidate(c, &req); resp != nil {
			return sendErrorResponse(c, resp)
		}
	}

	ctx := requestContext(c)
	result, err := h.seeder.SeedOwner(ctx, ownerID, services.SeedOptions{
		Transactions: req.Transactions,
		Seed:         req.Seed,
	})
	if err != nil {
		return SendServiceError(c, err)
	}

	if _, err := h.dashboard.Reload(ctx, ownerID); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.SeedResponse{
		Message:      "demo data generated successfully",
		OwnerID:      ownerID,
		Accounts:     result.Accounts,
		Transactions: result.Transactions,
		Goals:        result.Goals,
	})
}
