package handlers

import (
	"context"
	"fmt"

	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// OwnerIDContextKey is set by the auth middleware to the token subject
const OwnerIDContextKey = "owner_id"

// ErrUnauthorized is returned when the request carries no usable owner
var ErrUnauthorized = fmt.Errorf("unauthorized")

func getOwnerIDFromContext(c echo.Context) (uuid.UUID, error) {
	ownerID, ok := c.Get(OwnerIDContextKey).(uuid.UUID)
	if !ok || ownerID == uuid.Nil {
		return uuid.Nil, ErrUnauthorized
	}
	return ownerID, nil
}

// ownerOrNil returns the authenticated owner, or uuid.Nil for an anonymous request.
// Dashboard reads degrade to sample data without an owner.
func ownerOrNil(c echo.Context) uuid.UUID {
	ownerID, err := getOwnerIDFromContext(c)
	if err != nil {
		return uuid.Nil
	}
	return ownerID
}

func getCollectionParam(c echo.Context) (models.Collection, error) {
	return models.ParseCollection(c.Param("collection"))
}

func getIDParam(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

var invalidIDCodes = map[models.Collection]errors.ErrorCode{
	models.CollectionAccounts:     errors.AccountInvalidID,
	models.CollectionTransactions: errors.TransactionInvalidID,
	models.CollectionGoals:        errors.GoalInvalidID,
}

// requestContext returns the request's context.Context for service calls
func requestContext(c echo.Context) context.Context {
	return c.Request().Context()
}
