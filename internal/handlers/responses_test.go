package handlers

import (
	"fmt"
	"testing"

	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"
	"finance-dashboard/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestErrorCodeFor(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want errors.ErrorCode
	}{
		{"missing owner", &services.MissingOwnerError{}, errors.DashboardMissingOwner},
		{"wrapped in mutation", &services.MutationError{Op: services.OpAdd, Err: &services.MissingOwnerError{}}, errors.DashboardMissingOwner},
		{"unknown collection", fmt.Errorf("%w: %q", models.ErrUnknownCollection, "budgets"), errors.DashboardUnknownCollection},
		{"breaker open", &services.RemoteQueryError{Collection: "store", Err: services.ErrStoreBreakerOpen}, errors.DashboardStoreUnavailable},
		{"unknown patch field", fmt.Errorf("%w: %q", models.ErrUnknownPatchField, "colour"), errors.ValidationInvalidPatch},
		{"transaction missing", repositories.ErrTransactionNotFound, errors.TransactionNotFound},
		{"goal status", models.ErrInvalidGoalStatus, errors.GoalInvalidStatus},
		{"currency", models.ErrInvalidCurrency, errors.ValidationInvalidFormat},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code, ok := errorCodeFor(tc.err)
			assert.True(t, ok)
			assert.Equal(t, tc.want, code)
		})
	}

	_, ok := errorCodeFor(fmt.Errorf("disk full"))
	assert.False(t, ok)
}

func TestRootCause(t *testing.T) {
	inner := repositories.ErrAccountNotFound
	err := &services.MutationError{
		Op:  services.OpUpdate,
		ID:  uuid.New(),
		Err: &services.MutationError{Op: services.OpUpdate, Err: inner},
	}

	assert.Equal(t, inner, rootCause(err))
	assert.Equal(t, inner, rootCause(inner))
}
