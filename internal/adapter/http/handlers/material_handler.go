package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	request "ordenes_campo/internal/adapter/http/dto/request"
	response "ordenes_campo/internal/adapter/http/dto/response"
	"ordenes_campo/internal/domain/entities"
	"ordenes_campo/internal/domain/session"
	"ordenes_campo/internal/usecase"
	"ordenes_campo/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidMaterialPayload = pkg.NewDomainErrorSimple("INVALID_MATERIAL_INPUT", "Datos de material inválidos", http.StatusBadRequest)
	errInvalidLineID          = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Identificador de material inválido", http.StatusBadRequest)
)

// MaterialHandler exposes the used-material flows of an order.
type MaterialHandler struct {
	usecase usecase.IMaterialUseCase
}

func NewMaterialHandler(uc usecase.IMaterialUseCase) *MaterialHandler {
	return &MaterialHandler{usecase: uc}
}

// ListCatalog godoc
// @Summary      Material catalog
// @Tags         materials
// @Produce      json
// @Param        q       query     string  false  "Code or name"
// @Param        activo  query     bool    false  "Only active materials (default true)"
// @Success      200     {array}   response.CatalogMaterialResponse
// @Failure      502     {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /materials [get]
func (h *MaterialHandler) ListCatalog(c *gin.Context) {
	query := entities.CatalogQuery{Search: c.Query("q"), OnlyActive: true}
	if v := c.Query("activo"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(errInvalidMaterialPayload.HTTPStatus, errInvalidMaterialPayload.ToHTTPError())
			return
		}
		query.OnlyActive = b
	}

	items, err := h.usecase.ListCatalog(c.Request.Context(), query)
	if err != nil {
		appErr := mapFlowError(err)
		if errors.Is(err, usecase.ErrUnexpected) {
			appErr.HTTPStatus = http.StatusBadGateway
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalog(items))
}

// AddMaterial godoc
// @Summary      Add a material to the order
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        id       path      int                         true  "Order ID"
// @Param        payload  body      request.AddMaterialRequest  true  "Catalog entry and quantity"
// @Success      201      {object}  response.MaterialResponse
// @Failure      400      {object}  response.MaterialResponse
// @Failure      422      {object}  response.MaterialResponse
// @Failure      502      {object}  response.MaterialResponse
// @Security     Bearer
// @Router       /orders/{id}/materials [post]
func (h *MaterialHandler) AddMaterial(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}
	var payload request.AddMaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMaterialPayload.HTTPStatus, errInvalidMaterialPayload.ToHTTPError())
		return
	}

	ctx := c.Request.Context()
	res, err := h.usecase.AddMaterial(ctx, usecase.AddMaterialCommand{
		OrderID:  orderID,
		Material: payload.ResolveMaterial(),
		Quantity: string(payload.Cantidad),
		Actor:    session.CurrentUser(ctx),
	})
	h.write(c, http.StatusCreated, res, err)
}

// EditMaterialQuantity godoc
// @Summary      Increase the quantity of a used material
// @Description  The backend has no update: the line is deleted and re-added. A failure after the delete answers critical=true.
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        id       path      int                          true  "Order ID"
// @Param        lineId   path      int                          true  "Used material line ID"
// @Param        payload  body      request.EditMaterialRequest  true  "New quantity"
// @Success      200      {object}  response.MaterialResponse
// @Failure      422      {object}  response.MaterialResponse
// @Failure      500      {object}  response.MaterialResponse
// @Security     Bearer
// @Router       /orders/{id}/materials/{lineId} [patch]
func (h *MaterialHandler) EditMaterialQuantity(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}
	lineID, ok := lineIDParam(c)
	if !ok {
		return
	}
	var payload request.EditMaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMaterialPayload.HTTPStatus, errInvalidMaterialPayload.ToHTTPError())
		return
	}

	ctx := c.Request.Context()
	res, err := h.usecase.EditMaterialQuantity(ctx, usecase.EditMaterialCommand{
		OrderID:     orderID,
		LineID:      lineID,
		NewQuantity: string(payload.Cantidad),
		Actor:       session.CurrentUser(ctx),
	})
	h.write(c, http.StatusOK, res, err)
}

// DeleteMaterial godoc
// @Summary      Remove a used material line
// @Tags         materials
// @Produce      json
// @Param        id      path      int  true  "Order ID"
// @Param        lineId  path      int  true  "Used material line ID"
// @Success      200     {object}  response.MaterialResponse
// @Failure      502     {object}  response.MaterialResponse
// @Security     Bearer
// @Router       /orders/{id}/materials/{lineId} [delete]
func (h *MaterialHandler) DeleteMaterial(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}
	lineID, ok := lineIDParam(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	res, err := h.usecase.DeleteMaterial(ctx, usecase.DeleteMaterialCommand{
		OrderID: orderID,
		LineID:  lineID,
		Actor:   session.CurrentUser(ctx),
	})
	h.write(c, http.StatusOK, res, err)
}

// ListReconciliations godoc
// @Summary      Quantity change log
// @Description  Delete-then-add runs of the order, newest first. inconsistent=true lists the ones that need manual remediation.
// @Tags         materials
// @Produce      json
// @Param        id            path      int   true   "Order ID"
// @Param        inconsistent  query     bool  false  "Only inconsistent runs"
// @Success      200           {array}   response.ReconciliationResponse
// @Failure      401           {object}  pkg.HTTPError
// @Failure      403           {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /orders/{id}/material-reconciliations [get]
func (h *MaterialHandler) ListReconciliations(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}
	onlyInconsistent := strings.EqualFold(c.Query("inconsistent"), "true")

	ctx := c.Request.Context()
	items, err := h.usecase.ListReconciliations(ctx, orderID, session.CurrentUser(ctx), onlyInconsistent)
	if err != nil {
		appErr := mapFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReconciliations(items))
}

func (h *MaterialHandler) write(c *gin.Context, okStatus int, res usecase.MaterialResult, err error) {
	if err != nil {
		appErr := mapFlowError(err)
		c.JSON(appErr.HTTPStatus, response.MaterialFailure(appErr.Code, appErr.Message, res))
		return
	}
	if !res.Changed {
		okStatus = http.StatusOK
	}
	c.JSON(okStatus, response.FromMaterialResult(res))
}

func lineIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("lineId"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidLineID.HTTPStatus, errInvalidLineID.ToHTTPError())
		return 0, false
	}
	return id, true
}
