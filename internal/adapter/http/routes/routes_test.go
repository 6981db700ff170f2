package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ordenes_campo/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func TestRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, handlers.NewOrderStatusHandler(nil))
	addMaterialRoutes(v1, handlers.NewMaterialHandler(nil))

	t.Run("ping", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		if w.Code != http.StatusOK || w.Body.String() != `{"message":"pong"}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("all endpoints registered", func(t *testing.T) {
		want := map[string]bool{
			"GET /v1/orders/status-options":               false,
			"GET /v1/orders/:id/status":                   false,
			"POST /v1/orders/:id/status":                  false,
			"POST /v1/orders/:id/status/confirm":          false,
			"POST /v1/orders/:id/status/cancel":           false,
			"GET /v1/materials":                           false,
			"POST /v1/orders/:id/materials":               false,
			"PATCH /v1/orders/:id/materials/:lineId":      false,
			"DELETE /v1/orders/:id/materials/:lineId":     false,
			"GET /v1/orders/:id/material-reconciliations": false,
		}
		for _, ri := range r.Routes() {
			key := ri.Method + " " + ri.Path
			if _, ok := want[key]; ok {
				want[key] = true
			}
		}
		for route, found := range want {
			if !found {
				t.Fatalf("route %s not registered", route)
			}
		}
	})

	t.Run("invalid order id never reaches the use case", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/orders/0/status", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
