package handlers

import (
	"context"
	"net/http"

	request "ordenes_campo/internal/adapter/http/dto/request"
	response "ordenes_campo/internal/adapter/http/dto/response"
	"ordenes_campo/internal/domain/session"
	"ordenes_campo/internal/usecase"
	"ordenes_campo/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidStatusPayload = pkg.NewDomainErrorSimple("INVALID_STATUS_INPUT", "Debes indicar el nuevo estado", http.StatusBadRequest)

// OrderStatusHandler exposes the status change flow of an order.
type OrderStatusHandler struct {
	usecase usecase.IOrderStatusUseCase
}

func NewOrderStatusHandler(uc usecase.IOrderStatusUseCase) *OrderStatusHandler {
	return &OrderStatusHandler{usecase: uc}
}

// StatusOptions godoc
// @Summary      Status catalog
// @Description  Statuses a technician can pick, with their confirmation prompts.
// @Tags         orders
// @Produce      json
// @Success      200  {array}  response.StatusOptionResponse
// @Router       /orders/status-options [get]
func (h *OrderStatusHandler) StatusOptions(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromStatusOptions(h.usecase.StatusOptions()))
}

// GetState godoc
// @Summary      Status change state
// @Description  Current step of the status change flow for the calling technician.
// @Tags         orders
// @Produce      json
// @Param        id   path      int  true  "Order ID"
// @Success      200  {object}  response.TransitionStateResponse
// @Failure      400  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /orders/{id}/status [get]
func (h *OrderStatusHandler) GetState(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	state, err := h.usecase.State(c.Request.Context(), orderID, session.CurrentUser(c.Request.Context()))
	if err != nil {
		appErr := mapFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTransitionState(state))
}

// RequestChange godoc
// @Summary      Request a status change
// @Description  Validates the change. FINALIZADA and CANCELADA answer confirmationRequired and wait for /confirm.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id       path      int                          true  "Order ID"
// @Param        payload  body      request.ChangeStatusRequest  true  "New status"
// @Success      200      {object}  response.StatusChangeResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      403      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /orders/{id}/status [post]
func (h *OrderStatusHandler) RequestChange(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	var payload request.ChangeStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}

	ctx := c.Request.Context()
	res, err := h.usecase.RequestChange(ctx, orderID, payload.ResolveStatus(), session.CurrentUser(ctx))
	h.write(c, res, err)
}

// ConfirmPending godoc
// @Summary      Confirm the pending status change
// @Tags         orders
// @Produce      json
// @Param        id   path      int  true  "Order ID"
// @Success      200  {object}  response.StatusChangeResponse
// @Failure      409  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /orders/{id}/status/confirm [post]
func (h *OrderStatusHandler) ConfirmPending(c *gin.Context) {
	h.resolvePending(c, h.usecase.ConfirmPending)
}

// CancelPending godoc
// @Summary      Discard the pending status change
// @Tags         orders
// @Produce      json
// @Param        id   path      int  true  "Order ID"
// @Success      200  {object}  response.StatusChangeResponse
// @Failure      409  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /orders/{id}/status/cancel [post]
func (h *OrderStatusHandler) CancelPending(c *gin.Context) {
	h.resolvePending(c, h.usecase.CancelPending)
}

func (h *OrderStatusHandler) resolvePending(
	c *gin.Context,
	resolver func(ctx context.Context, orderID int64, actor string) (usecase.StatusChangeResult, error),
) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	res, err := resolver(ctx, orderID, session.CurrentUser(ctx))
	h.write(c, res, err)
}

func (h *OrderStatusHandler) write(c *gin.Context, res usecase.StatusChangeResult, err error) {
	if err != nil {
		appErr := mapFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStatusChange(res))
}
