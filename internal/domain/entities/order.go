package entities

import "time"

// OrderStatus represents the lifecycle of a work order (orden de trabajo).
//
// Domain notes:
//   - The backend is the source of truth for order state; this service only reads snapshots.
//   - FINALIZADA and CANCELADA are terminal ("closed") states.

type OrderStatus string

const (
	OrderStatusAsignada   OrderStatus = "ASIGNADA"
	OrderStatusEnProceso  OrderStatus = "EN_PROCESO"
	OrderStatusPausada    OrderStatus = "PAUSADA"
	OrderStatusFinalizada OrderStatus = "FINALIZADA"
	OrderStatusCancelada  OrderStatus = "CANCELADA"
)

// Known reports whether s belongs to the closed enumeration.
func (s OrderStatus) Known() bool {
	switch s {
	case OrderStatusAsignada, OrderStatusEnProceso, OrderStatusPausada, OrderStatusFinalizada, OrderStatusCancelada:
		return true
	}
	return false
}

type EvidenceKind string

const (
	EvidenceKindFoto       EvidenceKind = "FOTO"
	EvidenceKindComentario EvidenceKind = "COMENTARIO"
)

type Technician struct {
	ID    int64
	Name  string
	Email string
}

type Evidence struct {
	ID        int64
	Kind      EvidenceKind
	URL       string
	Comment   string
	CreatedAt *time.Time
}

// UsedMaterial is a committed consumption line. The backend offers no update for it:
// a quantity change is a delete followed by an add.
type UsedMaterial struct {
	ID            int64
	MaterialCode  string
	MaterialName  string
	QuantityUsed  int
	UnitOfMeasure string
}

// Order is a snapshot of a work order as returned by the backend.
type Order struct {
	ID                 int64
	Status             OrderStatus
	AssignedTechnician *Technician
	WorkStartedAt      *time.Time
	WorkEndedAt        *time.Time
	Evidence           []Evidence
	UsedMaterials      []UsedMaterial
}

// AssignedTechnicianEmail returns the owner e-mail or "" when nobody is assigned.
func (o Order) AssignedTechnicianEmail() string {
	if o.AssignedTechnician == nil {
		return ""
	}
	return o.AssignedTechnician.Email
}

// FindUsedMaterial looks up a used-material line by its line id.
func (o Order) FindUsedMaterial(lineID int64) (UsedMaterial, bool) {
	for _, m := range o.UsedMaterials {
		if m.ID == lineID {
			return m, true
		}
	}
	return UsedMaterial{}, false
}

// StatusUpdate is the mutation sent to the backend on a status change.
// Timestamps are already rendered in civil time (yyyy-MM-ddTHH:mm:ss, no offset).
type StatusUpdate struct {
	OrderID       int64
	NewStatus     OrderStatus
	WorkStartedAt string
	WorkEndedAt   string
}
