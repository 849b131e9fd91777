package handlers

import (
	stderrors "errors"
	"net/http"
	"time"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the dashboard aggregate and its collections
type DashboardHandler struct {
	dashboard services.DashboardServiceInterface
	now       func() time.Time
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboard services.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		now:       time.Now,
	}
}

// GetDashboard returns the owner's aggregate view, loading it on first access.
// A failed load is not an error response: the view itself carries the sample data and the error.
// @Summary Get dashboard
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} services.AggregateView
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	view, err := h.dashboard.GetSnapshot(requestContext(c), ownerOrNil(c))
	return h.sendView(c, view, err)
}

// Reload re-fetches every collection from the store
// @Summary Reload dashboard
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} services.AggregateView
// @Router /dashboard/reload [post]
func (h *DashboardHandler) Reload(c echo.Context) error {
	view, err := h.dashboard.Reload(requestContext(c), ownerOrNil(c))
	return h.sendView(c, view, err)
}

// MarkRealData promotes a sample view to real mode
// @Summary Mark real data present
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} services.AggregateView
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing authentication"
// @Router /dashboard/real-data [post]
func (h *DashboardHandler) MarkRealData(c echo.Context) error {
	ownerID, err := getOwnerIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	view, err := h.dashboard.MarkRealDataPresent(requestContext(c), ownerID)
	if err != nil {
		return SendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// sendView answers a load. Missing owner degrades to sample data, so only unknown errors fail.
func (h *DashboardHandler) sendView(c echo.Context, view services.AggregateView, err error) error {
	if err != nil {
		var missing *services.MissingOwnerError
		if !stderrors.As(err, &missing) {
			return SendSystemError(c, err)
		}
		if view.Error == "" {
			view.Error = err.Error()
		}
	}
	return c.JSON(http.StatusOK, view)
}

// GetCollection returns one collection with the page-level sample fallback applied
// @Summary Get collection view
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Param collection path string true "accounts, transactions or goals"
// @Success 200 {object} services.CollectionView
// @Failure 404 {object} errors.ErrorResponse "DASHBOARD_001 - Unknown collection"
// @Router /dashboard/{collection} [get]
func (h *DashboardHandler) GetCollection(c echo.Context) error {
	ownerID, err := getOwnerIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	collection, err := getCollectionParam(c)
	if err != nil {
		return SendError(c, errors.DashboardUnknownCollection, errors.WithDetails(err.Error()))
	}

	view, err := h.dashboard.GetCollectionView(requestContext(c), ownerID, collection)
	if err != nil {
		return SendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// AddEntity creates a record in the collection named by the path
// @Summary Add record
// @Tags Dashboard
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param collection path string true "accounts, transactions or goals"
// @Success 201 {object} dto.MutationResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 404 {object} errors.ErrorResponse "DASHBOARD_001 - Unknown collection"
// @Router /dashboard/{collection} [post]
func (h *DashboardHandler) AddEntity(c echo.Context) error {
	ownerID, err := getOwnerIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	collection, err := getCollectionParam(c)
	if err != nil {
		return SendError(c, errors.DashboardUnknownCollection, errors.WithDetails(err.Error()))
	}

	record, errResp := h.bindEntity(c, collection)
	if errResp != nil {
		return sendErrorResponse(c, errResp)
	}

	result := h.dashboard.AddEntity(requestContext(c), ownerID, collection, record)
	if !result.Success {
		return SendServiceError(c, result.Error)
	}

	return c.JSON(http.StatusCreated, dto.MutationResponse{
		Success:    true,
		Collection: string(collection),
		ID:         record.EntityID(),
		Message:    "Record created successfully",
		Entity:     record,
	})
}

// bindEntity decodes and validates the create body for collection
func (h *DashboardHandler) bindEntity(c echo.Context, collection models.Collection) (models.Entity, *errors.ErrorResponse) {
	var (
		record models.Entity
		err    error
	)

	switch collection {
	case models.CollectionAccounts:
		var body dto.CreateAccountRequest
		if resp := bindAndValidate(c, &body); resp != nil {
			return nil, resp
		}
		record, err = body.ToModel()
	case models.CollectionTransactions:
		var body dto.CreateTransactionRequest
		if resp := bindAndValidate(c, &body); resp != nil {
			return nil, resp
		}
		record, err = body.ToModel()
	case models.CollectionGoals:
		var body dto.CreateGoalRequest
		if resp := bindAndValidate(c, &body); resp != nil {
			return nil, resp
		}
		record, err = body.ToModel(h.now().UTC())
	}
	if err != nil {
		return nil, errors.NewErrorResponse(errors.ValidationInvalidFormat, getTraceID(c), errors.WithDetails(err.Error()))
	}
	return record, nil
}

// UpdateEntity applies a partial JSON patch to one record
// @Summary Update record
// @Tags Dashboard
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param collection path string true "accounts, transactions or goals"
// @Param id path string true "Record ID (UUID)"
// @Success 200 {object} dto.MutationResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid patch"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 / TRANSACTION_001 / GOAL_001 - Not found"
// @Router /dashboard/{collection}/{id} [patch]
func (h *DashboardHandler) UpdateEntity(c echo.Context) error {
	ownerID, err := getOwnerIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	collection, err := getCollectionParam(c)
	if err != nil {
		return SendError(c, errors.DashboardUnknownCollection, errors.WithDetails(err.Error()))
	}

	id, err := getIDParam(c)
	if err != nil {
		return SendError(c, invalidIDCodes[collection])
	}

	// path params must not leak into the patch, so only the body is bound
	patch := map[string]interface{}{}
	if err := (&echo.DefaultBinder{}).BindBody(c, &patch); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	result := h.dashboard.UpdateEntity(requestContext(c), ownerID, collection, id, patch)
	if !result.Success {
		return SendServiceError(c, result.Error)
	}

	return c.JSON(http.StatusOK, dto.MutationResponse{
		Success:    true,
		Collection: string(collection),
		ID:         id,
		Message:    "Record updated successfully",
	})
}

// DeleteEntity removes one record
// @Summary Delete record
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Param collection path string true "accounts, transactions or goals"
// @Param id path string true "Record ID (UUID)"
// @Success 200 {object} dto.MutationResponse
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 / TRANSACTION_001 / GOAL_001 - Not found"
// @Router /dashboard/{collection}/{id} [delete]
func (h *DashboardHandler) DeleteEntity(c echo.Context) error {
	ownerID, err := getOwnerIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	collection, err := getCollectionParam(c)
	if err != nil {
		return SendError(c, errors.DashboardUnknownCollection, errors.WithDetails(err.Error()))
	}

	id, err := getIDParam(c)
	if err != nil {
		return SendError(c, invalidIDCodes[collection])
	}

	result := h.dashboard.DeleteEntity(requestContext(c), ownerID, collection, id)
	if !result.Success {
		return SendServiceError(c, result.Error)
	}

	return c.JSON(http.StatusOK, dto.MutationResponse{
		Success:    true,
		Collection: string(collection),
		ID:         id,
		Message:    "Record deleted successfully",
	})
}

// bindAndValidate binds the request body into req and validates it
func bindAndValidate(c echo.Context, req interface{}) *errors.ErrorResponse {
	if err := c.Bind(req); err != nil {
		return errors.NewErrorResponse(errors.ValidationGeneral, getTraceID(c), errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return errors.NewErrorResponse(errors.ValidationGeneral, getTraceID(c), errors.WithDetails(ValidationDetails(err)...))
	}
	return nil
}
