package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("ORDER_NOT_FOUND", "La orden no existe", http.StatusNotFound)
		body := e.ToHTTPError()
		if body.Success || body.Code != "ORDER_NOT_FOUND" || body.Message != "La orden no existe" {
			t.Fatalf("unexpected body: %+v", body)
		}
		if e.Error() != "ORDER_NOT_FOUND: La orden no existe" {
			t.Fatalf("unexpected error string %q", e.Error())
		}
	})

	t.Run("wraps cause", func(t *testing.T) {
		cause := errors.New("boom")
		e := NewDomainError("INTERNAL_ERROR", "x", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected cause to be reachable")
		}
		if e.HTTPStatus != http.StatusInternalServerError {
			t.Fatalf("unexpected status %d", e.HTTPStatus)
		}
	})
}
