package rules

import (
	"testing"

	"ordenes_campo/internal/domain/entities"
)

const owner = "tecnico@empresa.com"

func orderWith(status entities.OrderStatus, evidence int) entities.Order {
	o := entities.Order{
		ID:                 10,
		Status:             status,
		AssignedTechnician: &entities.Technician{ID: 1, Name: "Ana", Email: owner},
	}
	for i := 0; i < evidence; i++ {
		o.Evidence = append(o.Evidence, entities.Evidence{ID: int64(i + 1), Kind: entities.EvidenceKindFoto})
	}
	return o
}

var allStatuses = []entities.OrderStatus{
	entities.OrderStatusAsignada,
	entities.OrderStatusEnProceso,
	entities.OrderStatusPausada,
	entities.OrderStatusFinalizada,
	entities.OrderStatusCancelada,
}

func TestIsOrderClosed(t *testing.T) {
	for _, s := range allStatuses {
		want := s == entities.OrderStatusFinalizada || s == entities.OrderStatusCancelada
		if got := IsOrderClosed(orderWith(s, 0)); got != want {
			t.Fatalf("IsOrderClosed(%s) = %v, want %v", s, got, want)
		}
	}
}

func TestCanTransitionFrom(t *testing.T) {
	cases := map[entities.OrderStatus]bool{
		entities.OrderStatusAsignada:   true,
		entities.OrderStatusEnProceso:  true,
		entities.OrderStatusPausada:    true,
		entities.OrderStatusFinalizada: false,
		entities.OrderStatusCancelada:  false,
		"DESCONOCIDO":                  false,
		"":                             false,
	}
	for status, want := range cases {
		if got := CanTransitionFrom(status); got != want {
			t.Fatalf("CanTransitionFrom(%q) = %v, want %v", status, got, want)
		}
	}
}

func TestRequiresConfirmation(t *testing.T) {
	for _, s := range allStatuses {
		want := s == entities.OrderStatusFinalizada || s == entities.OrderStatusCancelada
		if got := RequiresConfirmation(s); got != want {
			t.Fatalf("RequiresConfirmation(%s) = %v, want %v", s, got, want)
		}
		opt, ok := StatusOptionFor(s)
		if !ok {
			t.Fatalf("missing status option for %s", s)
		}
		if opt.RequiresConfirmation != want {
			t.Fatalf("catalog disagrees for %s", s)
		}
		if want && opt.ConfirmMessage == "" {
			t.Fatalf("expected confirm message for %s", s)
		}
	}
}

func TestCanModifyOrder(t *testing.T) {
	t.Run("not authenticated", func(t *testing.T) {
		r := CanModifyOrder(orderWith(entities.OrderStatusEnProceso, 0), "")
		if r.Valid || r.Kind != KindNotAuthenticated {
			t.Fatalf("unexpected result: %+v", r)
		}
	})

	t.Run("no assigned technician", func(t *testing.T) {
		o := orderWith(entities.OrderStatusEnProceso, 0)
		o.AssignedTechnician = nil
		r := CanModifyOrder(o, owner)
		if r.Valid || r.Kind != KindNoAssignedTechnician {
			t.Fatalf("unexpected result: %+v", r)
		}
	})

	t.Run("different case is not the owner", func(t *testing.T) {
		r := CanModifyOrder(orderWith(entities.OrderStatusEnProceso, 0), "TECNICO@empresa.com")
		if r.Valid || r.Kind != KindNotOwner {
			t.Fatalf("unexpected result: %+v", r)
		}
	})

	t.Run("owner", func(t *testing.T) {
		r := CanModifyOrder(orderWith(entities.OrderStatusEnProceso, 0), owner)
		if !r.Valid || r.Message != "" {
			t.Fatalf("unexpected result: %+v", r)
		}
	})
}

func TestRequisites(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7} {
		o := orderWith(entities.OrderStatusEnProceso, n)
		fin := ValidateFinalizarRequisitos(o)
		can := ValidateCancelarRequisitos(o)
		if fin.Valid != (n > 0) || can.Valid != (n > 0) {
			t.Fatalf("evidence=%d: finalizar=%+v cancelar=%+v", n, fin, can)
		}
		if n == 0 && (fin.Kind != KindMissingEvidence || can.Kind != KindMissingEvidence) {
			t.Fatalf("expected MissingEvidence kinds, got %s / %s", fin.Kind, can.Kind)
		}
	}

	t.Run("comment evidence counts", func(t *testing.T) {
		o := orderWith(entities.OrderStatusEnProceso, 0)
		o.Evidence = []entities.Evidence{{ID: 1, Kind: entities.EvidenceKindComentario}}
		if !ValidateFinalizarRequisitos(o).Valid {
			t.Fatalf("expected valid")
		}
	})
}

func TestValidateStatusChange(t *testing.T) {
	t.Run("closed orders are always rejected", func(t *testing.T) {
		for _, from := range []entities.OrderStatus{entities.OrderStatusFinalizada, entities.OrderStatusCancelada} {
			for _, to := range allStatuses {
				for _, actor := range []string{"", owner, "otro@empresa.com"} {
					r := ValidateStatusChange(orderWith(from, 3), to, actor)
					if r.Valid || r.Kind != KindOrderClosed {
						t.Fatalf("%s -> %s by %q: %+v", from, to, actor, r)
					}
				}
			}
		}
	})

	t.Run("non owner is rejected for every target", func(t *testing.T) {
		for _, from := range []entities.OrderStatus{entities.OrderStatusAsignada, entities.OrderStatusEnProceso, entities.OrderStatusPausada} {
			for _, to := range allStatuses {
				r := ValidateStatusChange(orderWith(from, 3), to, "otro@empresa.com")
				if r.Valid || r.Kind != KindNotOwner {
					t.Fatalf("%s -> %s: %+v", from, to, r)
				}
			}
		}
	})

	t.Run("unknown source state", func(t *testing.T) {
		r := ValidateStatusChange(orderWith("SUSPENDIDA", 1), entities.OrderStatusEnProceso, owner)
		if r.Valid || r.Kind != KindInvalidSourceState {
			t.Fatalf("unexpected result: %+v", r)
		}
	})

	t.Run("finalizar requires evidence", func(t *testing.T) {
		r := ValidateStatusChange(orderWith(entities.OrderStatusEnProceso, 0), entities.OrderStatusFinalizada, owner)
		if r.Valid || r.Kind != KindMissingEvidence {
			t.Fatalf("unexpected result: %+v", r)
		}
	})

	t.Run("cancelar requires evidence", func(t *testing.T) {
		r := ValidateStatusChange(orderWith(entities.OrderStatusPausada, 0), entities.OrderStatusCancelada, owner)
		if r.Valid || r.Kind != KindMissingEvidence {
			t.Fatalf("unexpected result: %+v", r)
		}
	})

	t.Run("non terminal targets skip evidence", func(t *testing.T) {
		r := ValidateStatusChange(orderWith(entities.OrderStatusAsignada, 0), entities.OrderStatusEnProceso, owner)
		if !r.Valid {
			t.Fatalf("unexpected result: %+v", r)
		}
	})

	t.Run("closed check wins over ownership", func(t *testing.T) {
		o := orderWith(entities.OrderStatusFinalizada, 0)
		o.AssignedTechnician = nil
		r := ValidateStatusChange(o, entities.OrderStatusEnProceso, "")
		if r.Kind != KindOrderClosed {
			t.Fatalf("expected ORDER_CLOSED first, got %s", r.Kind)
		}
	})
}

func TestStatusOptionsIsACopy(t *testing.T) {
	opts := StatusOptions()
	opts[0].Label = "changed"
	if StatusOptions()[0].Label == "changed" {
		t.Fatalf("catalog must not be mutable through the returned slice")
	}
}
