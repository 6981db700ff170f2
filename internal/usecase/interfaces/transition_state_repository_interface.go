package interfaces

import (
	"context"

	"ordenes_campo/internal/domain/entities"
)

//go:generate mockgen -source=transition_state_repository_interface.go -destination=mocks/mock_transition_state_repository_interface.go -package=mock_interfaces

// ITransitionStateRepository persists the status-change state machine per (order, actor).
//
// Get returns a zero OrderTransition (nil State) when nothing was stored.
type ITransitionStateRepository interface {
	Get(ctx context.Context, orderID int64, actor string) (entities.OrderTransition, error)
	Save(ctx context.Context, t entities.OrderTransition) error
}
