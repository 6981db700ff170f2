package entities

import "time"

// TransitionPhase names the variant held by a TransitionState.
type TransitionPhase string

const (
	TransitionPhaseIdle           TransitionPhase = "idle"
	TransitionPhaseConfirmPending TransitionPhase = "confirm_pending"
	TransitionPhaseSubmitting     TransitionPhase = "submitting"
	TransitionPhaseFailed         TransitionPhase = "failed"
	TransitionPhaseSucceeded      TransitionPhase = "succeeded"
)

// TransitionState is the status-change state machine of one order as seen by one actor.
//
// It is a closed set of variants so that a pending status without a confirmation step, or an
// error message while submitting, cannot be represented:
//
//	Idle | ConfirmPending{Status} | Submitting{Status} | Failed{Message} | Succeeded{Status, Message}
//
// Validation happens inside a single call and is never persisted.
type TransitionState interface {
	Phase() TransitionPhase
	isTransitionState()
}

type TransitionIdle struct{}

type TransitionConfirmPending struct {
	Status OrderStatus
}

type TransitionSubmitting struct {
	Status OrderStatus
}

type TransitionFailed struct {
	Message string
}

type TransitionSucceeded struct {
	Status  OrderStatus
	Message string
}

func (TransitionIdle) Phase() TransitionPhase           { return TransitionPhaseIdle }
func (TransitionConfirmPending) Phase() TransitionPhase { return TransitionPhaseConfirmPending }
func (TransitionSubmitting) Phase() TransitionPhase     { return TransitionPhaseSubmitting }
func (TransitionFailed) Phase() TransitionPhase         { return TransitionPhaseFailed }
func (TransitionSucceeded) Phase() TransitionPhase      { return TransitionPhaseSucceeded }

func (TransitionIdle) isTransitionState()           {}
func (TransitionConfirmPending) isTransitionState() {}
func (TransitionSubmitting) isTransitionState()     {}
func (TransitionFailed) isTransitionState()         {}
func (TransitionSucceeded) isTransitionState()      {}

// OrderTransition is the persisted orchestrator record.
//
// Storage model (DynamoDB):
//   - PK: id ("<order_id>#<actor>")
type OrderTransition struct {
	OrderID   int64
	Actor     string
	State     TransitionState
	UpdatedAt time.Time
}

// CurrentState never returns nil; a missing record is Idle.
func (t OrderTransition) CurrentState() TransitionState {
	if t.State == nil {
		return TransitionIdle{}
	}
	return t.State
}
