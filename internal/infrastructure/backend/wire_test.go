package backend

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
	"time"
)

func TestOrderDTO_ToEntityTimestamps(t *testing.T) {
	t.Run("civil start date is read in the backend zone", func(t *testing.T) {
		loc := bogota(t)
		o := orderDTO{ID: 42, Estado: "EN_PROCESO", FechaInicioTrabajo: "2025-06-01T08:00:00"}.toEntity(loc)
		if o.WorkStartedAt == nil {
			t.Fatalf("expected start date")
		}
		if want := time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC); !o.WorkStartedAt.Equal(want) {
			t.Fatalf("expected %s, got %s", want, o.WorkStartedAt)
		}
	})

	t.Run("unparseable start date is logged", func(t *testing.T) {
		var buf bytes.Buffer
		log.SetOutput(&buf)
		defer log.SetOutput(os.Stderr)

		o := orderDTO{ID: 42, Estado: "EN_PROCESO", FechaInicioTrabajo: "01/06/2025 08:00"}.toEntity(time.UTC)
		if o.WorkStartedAt != nil {
			t.Fatalf("expected nil start date, got %s", o.WorkStartedAt)
		}
		out := buf.String()
		for _, want := range []string{gatewayTag, "order_id=42", "field=fechaInicioTrabajo", `"01/06/2025 08:00"`} {
			if !strings.Contains(out, want) {
				t.Fatalf("log %q missing %q", out, want)
			}
		}
	})

	t.Run("empty values are silent", func(t *testing.T) {
		var buf bytes.Buffer
		log.SetOutput(&buf)
		defer log.SetOutput(os.Stderr)

		o := orderDTO{ID: 42, Estado: "ASIGNADA"}.toEntity(time.UTC)
		if o.WorkStartedAt != nil || o.WorkEndedAt != nil || buf.Len() != 0 {
			t.Fatalf("unexpected outcome: %+v log=%q", o, buf.String())
		}
	})
}
