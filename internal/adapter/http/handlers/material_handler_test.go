package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ordenes_campo/internal/adapter/http/handlers/mocks"
	"ordenes_campo/internal/domain/entities"
	"ordenes_campo/internal/domain/rules"
	"ordenes_campo/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func materialRouter(h *MaterialHandler) *gin.Engine {
	r := gin.New()
	r.Use(withActor(actor))
	r.GET("/v1/materials", h.ListCatalog)
	r.POST("/v1/orders/:id/materials", h.AddMaterial)
	r.PATCH("/v1/orders/:id/materials/:lineId", h.EditMaterialQuantity)
	r.DELETE("/v1/orders/:id/materials/:lineId", h.DeleteMaterial)
	r.GET("/v1/orders/:id/material-reconciliations", h.ListReconciliations)
	return r
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestMaterialHandler_ListCatalog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("defaults to active materials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		r := materialRouter(NewMaterialHandler(uc))

		uc.EXPECT().ListCatalog(gomock.Any(), entities.CatalogQuery{Search: "cable", OnlyActive: true}).Return([]entities.CatalogMaterial{
			{ID: 11, Code: "CAB-001", Name: "Cable UTP", AvailableStock: decimal.NewFromInt(2), UnitOfMeasure: "m", Active: true},
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/materials?q=cable", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var items []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil || len(items) != 1 || items[0]["codigo"] != "CAB-001" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("inactive included on request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		r := materialRouter(NewMaterialHandler(uc))

		uc.EXPECT().ListCatalog(gomock.Any(), entities.CatalogQuery{OnlyActive: false}).Return(nil, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/materials?activo=false", nil))
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("malformed flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		r := materialRouter(NewMaterialHandler(uc))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/materials?activo=maybe", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("backend failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		r := materialRouter(NewMaterialHandler(uc))

		uc.EXPECT().ListCatalog(gomock.Any(), gomock.Any()).
			Return(nil, &usecase.FlowError{Err: usecase.ErrUnexpected, Message: "No se pudo cargar el catálogo"})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/materials", nil))
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestMaterialHandler_AddMaterial(t *testing.T) {
	gin.SetMode(gin.TestMode)

	const body = `{"material":{"id":11,"codigo":"CAB-001","nombre":"Cable UTP","stockDisponible":"20","unidadMedida":"m","activo":true},"cantidad":3}`

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		r := materialRouter(NewMaterialHandler(uc))

		uc.EXPECT().AddMaterial(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cmd usecase.AddMaterialCommand) (usecase.MaterialResult, error) {
			if cmd.OrderID != 20 || cmd.Quantity != "3" || cmd.Actor != actor {
				t.Fatalf("unexpected command: %+v", cmd)
			}
			if cmd.Material == nil || cmd.Material.ID != 11 || !cmd.Material.AvailableStock.Equal(decimal.NewFromInt(20)) {
				t.Fatalf("unexpected material: %+v", cmd.Material)
			}
			return usecase.MaterialResult{Changed: true, Message: "Material agregado", MaterialID: 11}, nil
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/v1/orders/20/materials", body))
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		res := decode(t, w)
		if res["success"] != true || res["materialId"] != float64(11) {
			t.Fatalf("unexpected body: %v", res)
		}
	})

	t.Run("no material selected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		r := materialRouter(NewMaterialHandler(uc))

		uc.EXPECT().AddMaterial(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cmd usecase.AddMaterialCommand) (usecase.MaterialResult, error) {
			if cmd.Material != nil {
				t.Fatalf("expected no material, got %+v", cmd.Material)
			}
			return usecase.MaterialResult{}, &usecase.FlowError{Err: usecase.ErrNoMaterialSelected, Message: "Selecciona un material"}
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/v1/orders/20/materials", `{"cantidad":"3"}`))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if res := decode(t, w); res["code"] != "NO_MATERIAL_SELECTED" {
			t.Fatalf("unexpected body: %v", res)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		r := materialRouter(NewMaterialHandler(uc))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/v1/orders/20/materials", `{"cantidad":`))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestMaterialHandler_EditMaterialQuantity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("insufficient stock carries available stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		r := materialRouter(NewMaterialHandler(uc))

		stock := decimal.NewFromInt(2)
		uc.EXPECT().EditMaterialQuantity(gomock.Any(), usecase.EditMaterialCommand{OrderID: 20, LineID: 301, NewQuantity: "8", Actor: actor}).
			Return(usecase.MaterialResult{StockDisponible: &stock}, &usecase.FlowError{Err: usecase.ErrInsufficientStock, Message: "Stock insuficiente"})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPatch, "/v1/orders/20/materials/301", `{"cantidad":"8"}`))
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		res := decode(t, w)
		if res["success"] != false || res["code"] != "INSUFFICIENT_STOCK" || res["stockDisponible"] != "2" {
			t.Fatalf("unexpected body: %v", res)
		}
	})

	t.Run("critical add after delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		r := materialRouter(NewMaterialHandler(uc))

		uc.EXPECT().EditMaterialQuantity(gomock.Any(), gomock.Any()).Return(usecase.MaterialResult{
			Critical:         true,
			ReconciliationID: "rec-1",
			Order:            &entities.Order{ID: 20, Status: entities.OrderStatusEnProceso},
		}, &usecase.FlowError{Err: usecase.ErrCriticalAddAfterDelete, Message: "El material fue eliminado pero no se pudo volver a agregar"})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPatch, "/v1/orders/20/materials/301", `{"cantidad":8}`))
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		res := decode(t, w)
		if res["critical"] != true || res["code"] != "CRITICAL_ADD_AFTER_DELETE" || res["reconciliationId"] != "rec-1" || res["order"] == nil {
			t.Fatalf("unexpected body: %v", res)
		}
	})

	t.Run("no-op answers 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		r := materialRouter(NewMaterialHandler(uc))

		uc.EXPECT().EditMaterialQuantity(gomock.Any(), gomock.Any()).Return(usecase.MaterialResult{Message: "Sin cambios"}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPatch, "/v1/orders/20/materials/301", `{"cantidad":"5"}`))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if res := decode(t, w); res["changed"] != false {
			t.Fatalf("unexpected body: %v", res)
		}
	})

	t.Run("invalid line id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		r := materialRouter(NewMaterialHandler(uc))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPatch, "/v1/orders/20/materials/x", `{"cantidad":"5"}`))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		r := materialRouter(NewMaterialHandler(uc))

		uc.EXPECT().EditMaterialQuantity(gomock.Any(), gomock.Any()).
			Return(usecase.MaterialResult{}, &usecase.FlowError{Err: rules.KindNotOwner, Message: "No eres el técnico asignado"})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPatch, "/v1/orders/20/materials/301", `{"cantidad":"8"}`))
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestMaterialHandler_DeleteAndLog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("delete failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		r := materialRouter(NewMaterialHandler(uc))

		uc.EXPECT().DeleteMaterial(gomock.Any(), usecase.DeleteMaterialCommand{OrderID: 20, LineID: 301, Actor: actor}).
			Return(usecase.MaterialResult{}, &usecase.FlowError{Err: usecase.ErrDeleteFailed, Message: "No se pudo eliminar"})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/orders/20/materials/301", nil))
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("inconsistent filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		r := materialRouter(NewMaterialHandler(uc))

		created := time.Date(2025, 6, 2, 1, 15, 30, 0, time.UTC)
		uc.EXPECT().ListReconciliations(gomock.Any(), int64(20), actor, true).Return([]entities.MaterialReconciliation{
			{ID: "rec-1", OrderID: 20, LineID: 301, Step: entities.ReconciliationStepAdd, Outcome: entities.ReconciliationOutcomeInconsistent, CreatedAt: created, UpdatedAt: created},
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/orders/20/material-reconciliations?inconsistent=true", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var items []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil || len(items) != 1 || items[0]["outcome"] != "inconsistent" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("log requires a session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		h := NewMaterialHandler(uc)
		r := gin.New()
		r.Use(withActor(""))
		r.GET("/v1/orders/:id/material-reconciliations", h.ListReconciliations)

		uc.EXPECT().ListReconciliations(gomock.Any(), int64(20), "", false).
			Return(nil, &usecase.FlowError{Err: rules.KindNotAuthenticated, Message: "Debes iniciar sesión"})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/orders/20/material-reconciliations", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if strings.Contains(w.Body.String(), "rec-") {
			t.Fatalf("log entries leaked: %s", w.Body.String())
		}
	})

	t.Run("log of another technician's order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		r := materialRouter(NewMaterialHandler(uc))

		uc.EXPECT().ListReconciliations(gomock.Any(), int64(20), actor, false).
			Return(nil, &usecase.FlowError{Err: rules.KindNotOwner, Message: "Solo el técnico asignado puede modificar esta orden"})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/orders/20/material-reconciliations", nil))
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}
