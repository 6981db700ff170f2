package interfaces

import (
	"context"

	"ordenes_campo/internal/domain/entities"
)

//go:generate mockgen -source=reconciliation_repository_interface.go -destination=mocks/mock_reconciliation_repository_interface.go -package=mock_interfaces

// IReconciliationRepository keeps the log of delete-then-add quantity changes.
// Save is an upsert keyed by ID.
type IReconciliationRepository interface {
	Save(ctx context.Context, r entities.MaterialReconciliation) error
	ListByOrderID(ctx context.Context, orderID int64) ([]entities.MaterialReconciliation, error)
}
