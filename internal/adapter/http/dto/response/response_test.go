package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"ordenes_campo/internal/domain/entities"
	"ordenes_campo/internal/domain/rules"
	"ordenes_campo/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromOrder(t *testing.T) {
	if FromOrder(nil) != nil {
		t.Fatalf("expected nil for nil order")
	}

	started := time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC)
	o := &entities.Order{
		ID:                 42,
		Status:             entities.OrderStatusEnProceso,
		AssignedTechnician: &entities.Technician{ID: 7, Name: "Tomás", Email: "tecnico@empresa.com"},
		WorkStartedAt:      &started,
		Evidence:           []entities.Evidence{{ID: 1, Kind: entities.EvidenceKindComentario, Comment: "ok"}},
		UsedMaterials:      []entities.UsedMaterial{{ID: 301, MaterialCode: "CAB-001", MaterialName: "Cable UTP", QuantityUsed: 5, UnitOfMeasure: "m"}},
	}

	res := FromOrder(o)
	if res.Estado != "EN_PROCESO" || res.TecnicoAsignado.Email != "tecnico@empresa.com" || res.FechaFinTrabajo != nil {
		t.Fatalf("unexpected response: %+v", res)
	}
	if len(res.Evidencias) != 1 || res.Evidencias[0].Tipo != "COMENTARIO" {
		t.Fatalf("unexpected evidence: %+v", res.Evidencias)
	}
	if len(res.MaterialesUsados) != 1 || res.MaterialesUsados[0].CantidadUsada != 5 {
		t.Fatalf("unexpected materials: %+v", res.MaterialesUsados)
	}

	empty := FromOrder(&entities.Order{ID: 1})
	b, _ := json.Marshal(empty)
	if !strings.Contains(string(b), `"evidencias":[]`) || !strings.Contains(string(b), `"materialesUsados":[]`) {
		t.Fatalf("expected empty arrays, got %s", b)
	}
}

func TestFromTransitionState(t *testing.T) {
	cases := []struct {
		in   entities.TransitionState
		want TransitionStateResponse
	}{
		{nil, TransitionStateResponse{Phase: "idle"}},
		{entities.TransitionConfirmPending{Status: entities.OrderStatusFinalizada}, TransitionStateResponse{Phase: "confirm_pending", Status: "FINALIZADA"}},
		{entities.TransitionFailed{Message: "x"}, TransitionStateResponse{Phase: "failed", Message: "x"}},
		{entities.TransitionSucceeded{Status: entities.OrderStatusPausada, Message: "y"}, TransitionStateResponse{Phase: "succeeded", Status: "PAUSADA", Message: "y"}},
	}
	for _, c := range cases {
		if got := FromTransitionState(c.in); got != c.want {
			t.Fatalf("expected %+v, got %+v", c.want, got)
		}
	}
}

func TestFromStatusChangeAndOptions(t *testing.T) {
	res := FromStatusChange(usecase.StatusChangeResult{
		ConfirmationRequired: true,
		PendingStatus:        entities.OrderStatusCancelada,
		Message:              "¿Seguro?",
		State:                entities.TransitionConfirmPending{Status: entities.OrderStatusCancelada},
	})
	if !res.Success || !res.ConfirmationRequired || res.PendingStatus != "CANCELADA" || res.Order != nil {
		t.Fatalf("unexpected response: %+v", res)
	}

	opts := FromStatusOptions(rules.StatusOptions())
	if len(opts) != 5 {
		t.Fatalf("expected 5 options, got %d", len(opts))
	}
	for _, o := range opts {
		if (o.Value == "FINALIZADA" || o.Value == "CANCELADA") != o.RequiresConfirmation {
			t.Fatalf("unexpected confirmation flag on %+v", o)
		}
	}
}

func TestMaterialFailure(t *testing.T) {
	stock := decimal.NewFromInt(2)
	res := MaterialFailure("INSUFFICIENT_STOCK", "Stock insuficiente", usecase.MaterialResult{MaterialID: 11, StockDisponible: &stock})
	if res.Success || res.Code != "INSUFFICIENT_STOCK" || res.MaterialID != 11 || !res.StockDisponible.Equal(stock) {
		t.Fatalf("unexpected response: %+v", res)
	}

	b, _ := json.Marshal(res)
	if !strings.Contains(string(b), `"stockDisponible":"2"`) {
		t.Fatalf("unexpected json %s", b)
	}
}
