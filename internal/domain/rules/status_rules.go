// Package rules holds the pure status rules of a work order.
// Every function here is side-effect free and evaluates a snapshot the caller already holds.
package rules

import "ordenes_campo/internal/domain/entities"

// Kind is the machine-readable reason of a rule violation. It implements error so that a
// wrapped violation can be matched with errors.Is.
type Kind string

const (
	KindOrderClosed          Kind = "ORDER_CLOSED"
	KindNotAuthenticated     Kind = "NOT_AUTHENTICATED"
	KindNoAssignedTechnician Kind = "NO_ASSIGNED_TECHNICIAN"
	KindNotOwner             Kind = "NOT_OWNER"
	KindInvalidSourceState   Kind = "INVALID_SOURCE_STATE"
	KindMissingEvidence      Kind = "MISSING_EVIDENCE"
)

func (k Kind) Error() string { return string(k) }

// Result is the outcome of a rule. Message is display text (Spanish); Kind is for code.
type Result struct {
	Valid   bool
	Kind    Kind
	Message string
}

func valid() Result { return Result{Valid: true} }

func invalid(kind Kind, msg string) Result {
	return Result{Valid: false, Kind: kind, Message: msg}
}

// StatusOption is a static catalog entry shown by the status selector.
type StatusOption struct {
	Value                entities.OrderStatus
	Label                string
	RequiresConfirmation bool
	ConfirmMessage       string
}

var statusOptions = []StatusOption{
	{Value: entities.OrderStatusAsignada, Label: "Asignada"},
	{Value: entities.OrderStatusEnProceso, Label: "En proceso"},
	{Value: entities.OrderStatusPausada, Label: "Pausada"},
	{
		Value:                entities.OrderStatusFinalizada,
		Label:                "Finalizada",
		RequiresConfirmation: true,
		ConfirmMessage:       "¿Confirmas que deseas finalizar la orden? Una vez finalizada no podrá modificarse.",
	},
	{
		Value:                entities.OrderStatusCancelada,
		Label:                "Cancelada",
		RequiresConfirmation: true,
		ConfirmMessage:       "¿Confirmas que deseas cancelar la orden? Esta acción no se puede deshacer.",
	},
}

// StatusOptions returns a copy of the status catalog.
func StatusOptions() []StatusOption {
	out := make([]StatusOption, len(statusOptions))
	copy(out, statusOptions)
	return out
}

// StatusOptionFor returns the catalog entry for status.
func StatusOptionFor(status entities.OrderStatus) (StatusOption, bool) {
	for _, opt := range statusOptions {
		if opt.Value == status {
			return opt, true
		}
	}
	return StatusOption{}, false
}

func IsOrderClosed(order entities.Order) bool {
	return order.Status == entities.OrderStatusFinalizada || order.Status == entities.OrderStatusCancelada
}

// CanTransitionFrom reports whether status is a valid source of a transition.
// Closed and unknown states are not.
func CanTransitionFrom(status entities.OrderStatus) bool {
	switch status {
	case entities.OrderStatusAsignada, entities.OrderStatusEnProceso, entities.OrderStatusPausada:
		return true
	}
	return false
}

func RequiresConfirmation(status entities.OrderStatus) bool {
	return status == entities.OrderStatusFinalizada || status == entities.OrderStatusCancelada
}

// CanModifyOrder checks that actorEmail owns the order. The comparison is exact.
func CanModifyOrder(order entities.Order, actorEmail string) Result {
	if actorEmail == "" {
		return invalid(KindNotAuthenticated, "Debes iniciar sesión para modificar la orden")
	}
	assigned := order.AssignedTechnicianEmail()
	if assigned == "" {
		return invalid(KindNoAssignedTechnician, "La orden no tiene un técnico asignado")
	}
	if assigned != actorEmail {
		return invalid(KindNotOwner, "Solo el técnico asignado puede modificar esta orden")
	}
	return valid()
}

func ValidateFinalizarRequisitos(order entities.Order) Result {
	if len(order.Evidence) == 0 {
		return invalid(KindMissingEvidence, "Debes registrar al menos una evidencia antes de finalizar la orden")
	}
	return valid()
}

// ValidateCancelarRequisitos applies the same evidence rule as finalizing.
// TODO: confirm with operations whether cancelling should require a reason instead of evidence.
func ValidateCancelarRequisitos(order entities.Order) Result {
	if len(order.Evidence) == 0 {
		return invalid(KindMissingEvidence, "Debes registrar al menos una evidencia antes de cancelar la orden")
	}
	return valid()
}

// ValidateStatusChange composes the rules in order and returns the first failure:
//  1. the order is not closed
//  2. the actor owns the order
//  3. the current state is a valid transition source
//  4. FINALIZADA / CANCELADA requisites
func ValidateStatusChange(order entities.Order, newStatus entities.OrderStatus, actorEmail string) Result {
	if IsOrderClosed(order) {
		return invalid(KindOrderClosed, "La orden está cerrada y no admite más cambios")
	}

	if r := CanModifyOrder(order, actorEmail); !r.Valid {
		return r
	}

	if !CanTransitionFrom(order.Status) {
		return invalid(KindInvalidSourceState, "No se puede cambiar el estado desde "+string(order.Status))
	}

	switch newStatus {
	case entities.OrderStatusFinalizada:
		return ValidateFinalizarRequisitos(order)
	case entities.OrderStatusCancelada:
		return ValidateCancelarRequisitos(order)
	}
	return valid()
}
