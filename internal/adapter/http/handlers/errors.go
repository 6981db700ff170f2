package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"ordenes_campo/internal/domain/rules"
	"ordenes_campo/internal/usecase"
	"ordenes_campo/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOrderID = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Identificador de orden inválido", http.StatusBadRequest)

type errorMapping struct {
	target error
	code   string
	status int
}

// flowErrorMappings is checked in order; the first match wins.
var flowErrorMappings = []errorMapping{
	{usecase.ErrInvalidOrderID, "INVALID_REQUEST", http.StatusBadRequest},
	{usecase.ErrInvalidStatus, "INVALID_STATUS", http.StatusBadRequest},
	{usecase.ErrInvalidQuantity, "INVALID_QUANTITY", http.StatusBadRequest},
	{usecase.ErrNoMaterialSelected, "NO_MATERIAL_SELECTED", http.StatusBadRequest},
	{usecase.ErrOrderNotFound, "ORDER_NOT_FOUND", http.StatusNotFound},
	{usecase.ErrMaterialLineNotFound, "MATERIAL_LINE_NOT_FOUND", http.StatusNotFound},
	{usecase.ErrMaterialNotFound, "MATERIAL_NOT_FOUND", http.StatusNotFound},

	{rules.KindNotAuthenticated, string(rules.KindNotAuthenticated), http.StatusUnauthorized},
	{rules.KindNotOwner, string(rules.KindNotOwner), http.StatusForbidden},
	{rules.KindNoAssignedTechnician, string(rules.KindNoAssignedTechnician), http.StatusForbidden},
	{rules.KindOrderClosed, string(rules.KindOrderClosed), http.StatusConflict},
	{rules.KindInvalidSourceState, string(rules.KindInvalidSourceState), http.StatusConflict},
	{rules.KindMissingEvidence, string(rules.KindMissingEvidence), http.StatusUnprocessableEntity},

	{usecase.ErrActionInProgress, "ACTION_IN_PROGRESS", http.StatusConflict},
	{usecase.ErrNoPendingConfirm, "NO_PENDING_CONFIRMATION", http.StatusConflict},
	{usecase.ErrOrderNotEditable, "ORDER_NOT_EDITABLE", http.StatusConflict},
	{usecase.ErrWorkNotStarted, "WORK_NOT_STARTED", http.StatusUnprocessableEntity},
	{usecase.ErrDecreaseNotSupported, "DECREASE_NOT_SUPPORTED", http.StatusUnprocessableEntity},
	{usecase.ErrInsufficientStock, "INSUFFICIENT_STOCK", http.StatusUnprocessableEntity},
	{usecase.ErrMaterialInactive, "MATERIAL_INACTIVE", http.StatusUnprocessableEntity},

	{usecase.ErrStatusUpdateFailed, "STATUS_UPDATE_FAILED", http.StatusBadGateway},
	{usecase.ErrDeleteFailed, "DELETE_FAILED", http.StatusBadGateway},
	{usecase.ErrAddFailed, "ADD_FAILED", http.StatusBadGateway},

	{usecase.ErrCriticalAddAfterDelete, "CRITICAL_ADD_AFTER_DELETE", http.StatusInternalServerError},
}

// mapFlowError turns a use case error into the API envelope. The display message always
// comes from the flow; unknown errors get the generic one.
func mapFlowError(err error) *pkg.AppError {
	for _, m := range flowErrorMappings {
		if errors.Is(err, m.target) {
			return pkg.NewDomainError(m.code, usecase.MessageOf(err), err, m.status)
		}
	}
	return pkg.NewDomainError("INTERNAL_ERROR", usecase.MessageOf(err), err, http.StatusInternalServerError)
}

func orderIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidOrderID.HTTPStatus, errInvalidOrderID.ToHTTPError())
		return 0, false
	}
	return id, true
}
