package request

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestQuantity_UnmarshalJSON(t *testing.T) {
	cases := map[string]Quantity{
		`{"cantidad":"8"}`:   "8",
		`{"cantidad":8}`:     "8",
		`{"cantidad":8.5}`:   "8.5",
		`{"cantidad":" 3 "}`: " 3 ",
		`{"cantidad":null}`:  "",
		`{}`:                 "",
	}
	for in, want := range cases {
		var r EditMaterialRequest
		if err := json.Unmarshal([]byte(in), &r); err != nil {
			t.Fatalf("%s: unexpected error: %v", in, err)
		}
		if r.Cantidad != want {
			t.Fatalf("%s: expected %q, got %q", in, want, r.Cantidad)
		}
	}

	var r EditMaterialRequest
	if err := json.Unmarshal([]byte(`{"cantidad":true}`), &r); err == nil {
		t.Fatalf("expected error for boolean quantity")
	}
}

func TestAddMaterialRequest_ResolveMaterial(t *testing.T) {
	t.Run("no material", func(t *testing.T) {
		if (AddMaterialRequest{}).ResolveMaterial() != nil {
			t.Fatalf("expected nil material")
		}
	})

	t.Run("maps catalog payload", func(t *testing.T) {
		var r AddMaterialRequest
		body := `{"material":{"id":11,"codigo":" CAB-001 ","nombre":"Cable UTP","stockDisponible":"2.5","unidadMedida":"m","activo":true},"cantidad":"2"}`
		if err := json.Unmarshal([]byte(body), &r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		m := r.ResolveMaterial()
		if m == nil || m.ID != 11 || m.Code != "CAB-001" || !m.Active || !m.AvailableStock.Equal(decimal.RequireFromString("2.5")) {
			t.Fatalf("unexpected material: %+v", m)
		}
		if r.Cantidad != "2" {
			t.Fatalf("unexpected quantity %q", r.Cantidad)
		}
	})
}

func TestChangeStatusRequest_ResolveStatus(t *testing.T) {
	if got := (ChangeStatusRequest{NuevoEstado: " finalizada "}).ResolveStatus(); got != "FINALIZADA" {
		t.Fatalf("unexpected status %q", got)
	}
}
