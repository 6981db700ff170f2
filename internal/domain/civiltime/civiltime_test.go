package civiltime

import (
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	bogota, err := LoadLocation("America/Bogota")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	// 2025-03-10 02:30:00 UTC is the previous evening in Bogota (UTC-5).
	instant := time.Date(2025, 3, 10, 2, 30, 0, 0, time.UTC)
	if got := Format(instant, bogota); got != "2025-03-09T21:30:00" {
		t.Fatalf("unexpected civil rendering: %s", got)
	}

	if got := Format(instant, nil); len(got) != len(Layout) {
		t.Fatalf("unexpected layout: %s", got)
	}
}

func TestParse(t *testing.T) {
	bogota, _ := LoadLocation("America/Bogota")

	t.Run("civil time is read in the zone", func(t *testing.T) {
		got, err := Parse("2025-03-09T21:30:00", bogota)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equal(time.Date(2025, 3, 10, 2, 30, 0, 0, time.UTC)) {
			t.Fatalf("unexpected instant: %v", got.UTC())
		}
	})

	t.Run("fractional civil time", func(t *testing.T) {
		got, err := Parse("2025-03-09T21:30:00.123", bogota)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if Format(got, bogota) != "2025-03-09T21:30:00" {
			t.Fatalf("unexpected rendering: %s", Format(got, bogota))
		}
	})

	t.Run("rfc3339 keeps its offset", func(t *testing.T) {
		got, err := Parse("2025-03-10T02:30:00Z", bogota)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if Format(got, bogota) != "2025-03-09T21:30:00" {
			t.Fatalf("unexpected rendering: %s", Format(got, bogota))
		}
	})

	t.Run("round trip", func(t *testing.T) {
		in := "2024-12-31T23:59:59"
		got, err := Parse(in, bogota)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if Format(got, bogota) != in {
			t.Fatalf("round trip mismatch: %s", Format(got, bogota))
		}
	})

	t.Run("invalid", func(t *testing.T) {
		if _, err := Parse("   ", bogota); err == nil {
			t.Fatalf("expected error for empty input")
		}
		if _, err := Parse("ayer", bogota); err == nil {
			t.Fatalf("expected error for garbage input")
		}
	})
}

func TestLoadLocationEmpty(t *testing.T) {
	loc, err := LoadLocation("")
	if err != nil || loc != time.UTC {
		t.Fatalf("expected UTC, got %v %v", loc, err)
	}
	if _, err := LoadLocation("Nowhere/Invalid"); err == nil {
		t.Fatalf("expected error for invalid zone")
	}
}
