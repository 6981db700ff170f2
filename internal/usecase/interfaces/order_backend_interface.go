package interfaces

import (
	"context"
	"fmt"

	"ordenes_campo/internal/domain/entities"
)

//go:generate mockgen -source=order_backend_interface.go -destination=mocks/mock_order_backend_interface.go -package=mock_interfaces

// IOrderBackend abstracts the externally owned work-order REST API.
//
// The backend only exposes add and delete for used-material lines, never an update.
// Not found conventions (same as the repositories):
//   - GetOrder returns a *BackendError with StatusCode 404.
//   - SearchMaterial returns a zero CatalogMaterial (ID == 0) and a nil error.
type IOrderBackend interface {
	GetOrder(ctx context.Context, orderID int64) (entities.Order, error)
	UpdateStatus(ctx context.Context, update entities.StatusUpdate) error
	SearchMaterial(ctx context.Context, code, name string) (entities.CatalogMaterial, error)
	ListCatalog(ctx context.Context, query entities.CatalogQuery) ([]entities.CatalogMaterial, error)
	AddMaterial(ctx context.Context, addition entities.MaterialAddition) error
	DeleteMaterial(ctx context.Context, orderID, lineID int64) error
}

// BackendError is a rejection returned by the backend (non-2xx response).
// Message is the backend-provided text and is shown to the technician verbatim.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("backend error: status=%d message=%s", e.StatusCode, e.Message)
}
