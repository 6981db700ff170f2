package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"ordenes_campo/internal/domain/civiltime"
	"ordenes_campo/internal/domain/entities"
	"ordenes_campo/internal/domain/rules"
	"ordenes_campo/internal/usecase/interfaces"
)

//go:generate mockgen -source=order_status_usecase.go -destination=../adapter/http/handlers/mocks/mock_order_status_usecase.go -package=mocks

const statusTag = "[order-status][usecase]"

// IOrderStatusUseCase drives the status field of an order through validation, optional
// confirmation and the remote update.
//
//	Idle -> (validate) -> ConfirmPending{s} -> ConfirmPending() -> Submitting{s} -> Succeeded | Failed
//	                   \-> Submitting{s} (no confirmation needed)
//	ConfirmPending{s} -> CancelPending() -> Idle
type IOrderStatusUseCase interface {
	StatusOptions() []rules.StatusOption
	State(ctx context.Context, orderID int64, actor string) (entities.TransitionState, error)
	RequestChange(ctx context.Context, orderID int64, newStatus entities.OrderStatus, actor string) (StatusChangeResult, error)
	ConfirmPending(ctx context.Context, orderID int64, actor string) (StatusChangeResult, error)
	CancelPending(ctx context.Context, orderID int64, actor string) (StatusChangeResult, error)
}

// StatusChangeResult is what the presentation layer receives from a status flow.
type StatusChangeResult struct {
	// Changed is false for no-ops: same status requested, pending confirmation, cancel.
	Changed              bool
	ConfirmationRequired bool
	PendingStatus        entities.OrderStatus
	Message              string
	State                entities.TransitionState
	// Order is the refetched order after a successful update; nil otherwise or when the
	// reload failed.
	Order *entities.Order
}

type OrderStatusUseCase struct {
	backend interfaces.IOrderBackend
	states  interfaces.ITransitionStateRepository
	locker  interfaces.ISubmissionLocker
	loc     *time.Location
	refresh refresher
	now     func() time.Time
}

var _ IOrderStatusUseCase = (*OrderStatusUseCase)(nil)

// NewOrderStatusUseCase builds the orchestrator. loc is the backend's civil timezone.
func NewOrderStatusUseCase(backend interfaces.IOrderBackend, states interfaces.ITransitionStateRepository, locker interfaces.ISubmissionLocker, loc *time.Location) *OrderStatusUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &OrderStatusUseCase{
		backend: backend,
		states:  states,
		locker:  locker,
		loc:     loc,
		refresh: refresher{backend: backend},
		now:     time.Now,
	}
}

// WithRefreshDelay sets the wait before the post-mutation reload.
func (u *OrderStatusUseCase) WithRefreshDelay(d time.Duration) *OrderStatusUseCase {
	u.refresh.delay = d
	return u
}

func (u *OrderStatusUseCase) StatusOptions() []rules.StatusOption {
	return rules.StatusOptions()
}

func (u *OrderStatusUseCase) State(ctx context.Context, orderID int64, actor string) (entities.TransitionState, error) {
	if orderID <= 0 {
		return nil, flowErr(ErrInvalidOrderID, "Identificador de orden inválido")
	}
	rec, err := u.states.Get(ctx, orderID, actor)
	if err != nil {
		log.Printf("%s load state failed order_id=%d err=%v", statusTag, orderID, err)
		return nil, flowErr(ErrUnexpected, genericErrorMessage)
	}
	return rec.CurrentState(), nil
}

func (u *OrderStatusUseCase) RequestChange(ctx context.Context, orderID int64, newStatus entities.OrderStatus, actor string) (StatusChangeResult, error) {
	log.Printf("%s request start order_id=%d new_status=%s actor=%q", statusTag, orderID, newStatus, actor)
	if orderID <= 0 {
		return StatusChangeResult{}, flowErr(ErrInvalidOrderID, "Identificador de orden inválido")
	}
	if !newStatus.Known() {
		return StatusChangeResult{}, flowErr(ErrInvalidStatus, "Estado %q no reconocido", string(newStatus))
	}

	order, err := u.backend.GetOrder(ctx, orderID)
	if err != nil {
		return StatusChangeResult{}, loadOrderFailure(ctx, statusTag, orderID, err)
	}

	if newStatus == order.Status {
		log.Printf("%s no-op same status order_id=%d status=%s", statusTag, orderID, newStatus)
		return StatusChangeResult{
			Changed: false,
			Message: fmt.Sprintf("La orden ya se encuentra en estado %s", statusLabel(newStatus)),
		}, nil
	}

	if r := rules.ValidateStatusChange(order, newStatus, actor); !r.Valid {
		log.Printf("%s validation failed order_id=%d kind=%s", statusTag, orderID, r.Kind)
		u.saveState(ctx, orderID, actor, entities.TransitionFailed{Message: r.Message})
		return StatusChangeResult{}, ruleErr(r)
	}

	if rules.RequiresConfirmation(newStatus) {
		state := entities.TransitionConfirmPending{Status: newStatus}
		if err := u.states.Save(ctx, u.record(orderID, actor, state)); err != nil {
			log.Printf("%s save pending failed order_id=%d err=%v", statusTag, orderID, err)
			return StatusChangeResult{}, flowErr(ErrUnexpected, genericErrorMessage)
		}
		opt, _ := rules.StatusOptionFor(newStatus)
		log.Printf("%s confirmation required order_id=%d pending_status=%s", statusTag, orderID, newStatus)
		return StatusChangeResult{
			ConfirmationRequired: true,
			PendingStatus:        newStatus,
			Message:              opt.ConfirmMessage,
			State:                state,
		}, nil
	}

	return u.execute(ctx, order, newStatus, actor)
}

func (u *OrderStatusUseCase) ConfirmPending(ctx context.Context, orderID int64, actor string) (StatusChangeResult, error) {
	log.Printf("%s confirm start order_id=%d actor=%q", statusTag, orderID, actor)
	pending, ferr := u.pending(ctx, orderID, actor)
	if ferr != nil {
		return StatusChangeResult{}, ferr
	}

	order, err := u.backend.GetOrder(ctx, orderID)
	if err != nil {
		return StatusChangeResult{}, loadOrderFailure(ctx, statusTag, orderID, err)
	}

	// The pending record has no expiry; the order may have moved on since it was stored.
	if order.Status == pending.Status {
		log.Printf("%s confirm no-op order_id=%d status=%s", statusTag, orderID, pending.Status)
		u.saveState(ctx, orderID, actor, entities.TransitionIdle{})
		return StatusChangeResult{
			Message: fmt.Sprintf("La orden ya se encuentra en estado %s", statusLabel(pending.Status)),
			State:   entities.TransitionIdle{},
		}, nil
	}
	if r := rules.ValidateStatusChange(order, pending.Status, actor); !r.Valid {
		log.Printf("%s confirm revalidation failed order_id=%d status=%s kind=%s", statusTag, orderID, order.Status, r.Kind)
		u.saveState(ctx, orderID, actor, entities.TransitionFailed{Message: r.Message})
		return StatusChangeResult{}, ruleErr(r)
	}
	return u.execute(ctx, order, pending.Status, actor)
}

func (u *OrderStatusUseCase) CancelPending(ctx context.Context, orderID int64, actor string) (StatusChangeResult, error) {
	log.Printf("%s cancel start order_id=%d actor=%q", statusTag, orderID, actor)
	pending, ferr := u.pending(ctx, orderID, actor)
	if ferr != nil {
		return StatusChangeResult{}, ferr
	}

	if err := u.states.Save(ctx, u.record(orderID, actor, entities.TransitionIdle{})); err != nil {
		log.Printf("%s save idle failed order_id=%d err=%v", statusTag, orderID, err)
		return StatusChangeResult{}, flowErr(ErrUnexpected, genericErrorMessage)
	}
	log.Printf("%s cancel done order_id=%d discarded_status=%s", statusTag, orderID, pending.Status)
	return StatusChangeResult{
		Message: "Cambio de estado cancelado",
		State:   entities.TransitionIdle{},
	}, nil
}

func (u *OrderStatusUseCase) pending(ctx context.Context, orderID int64, actor string) (entities.TransitionConfirmPending, *FlowError) {
	if orderID <= 0 {
		return entities.TransitionConfirmPending{}, flowErr(ErrInvalidOrderID, "Identificador de orden inválido")
	}
	rec, err := u.states.Get(ctx, orderID, actor)
	if err != nil {
		log.Printf("%s load state failed order_id=%d err=%v", statusTag, orderID, err)
		return entities.TransitionConfirmPending{}, flowErr(ErrUnexpected, genericErrorMessage)
	}
	pending, ok := rec.CurrentState().(entities.TransitionConfirmPending)
	if !ok {
		return entities.TransitionConfirmPending{}, flowErr(ErrNoPendingConfirm, "No hay un cambio de estado pendiente de confirmación")
	}
	return pending, nil
}

// execute sends exactly one status update. It holds the per-order submission lock for the
// duration so a second submission is rejected instead of queued.
func (u *OrderStatusUseCase) execute(ctx context.Context, order entities.Order, newStatus entities.OrderStatus, actor string) (StatusChangeResult, error) {
	release, ferr := acquire(ctx, u.locker, statusTag, fmt.Sprintf("order:%d:status", order.ID),
		"Ya hay un cambio de estado en curso para esta orden")
	if ferr != nil {
		return StatusChangeResult{}, ferr
	}
	defer release()

	ctx, cancel := detach(ctx)
	defer cancel()

	u.saveState(ctx, order.ID, actor, entities.TransitionSubmitting{Status: newStatus})

	update := entities.StatusUpdate{OrderID: order.ID, NewStatus: newStatus}
	if newStatus == entities.OrderStatusFinalizada {
		if order.WorkStartedAt == nil {
			fe := flowErr(ErrWorkNotStarted, "La orden debe pasar a En proceso antes de finalizarla: no tiene fecha de inicio de trabajo")
			u.saveState(ctx, order.ID, actor, entities.TransitionFailed{Message: fe.Message})
			log.Printf("%s work not started order_id=%d", statusTag, order.ID)
			return StatusChangeResult{}, fe
		}
		update.WorkStartedAt = civiltime.Format(*order.WorkStartedAt, u.loc)
		update.WorkEndedAt = civiltime.Format(u.now(), u.loc)
	}

	log.Printf("%s execute start order_id=%d new_status=%s started=%q ended=%q", statusTag, order.ID, newStatus, update.WorkStartedAt, update.WorkEndedAt)
	if err := u.backend.UpdateStatus(ctx, update); err != nil {
		fe := remoteFailure(ErrStatusUpdateFailed, err, "No se pudo actualizar el estado de la orden")
		u.saveState(ctx, order.ID, actor, entities.TransitionFailed{Message: fe.Message})
		log.Printf("%s execute failed order_id=%d err=%v", statusTag, order.ID, err)
		return StatusChangeResult{}, fe
	}

	state := entities.TransitionSucceeded{
		Status:  newStatus,
		Message: fmt.Sprintf("Estado actualizado a %s", statusLabel(newStatus)),
	}
	u.saveState(ctx, order.ID, actor, state)
	log.Printf("%s execute success order_id=%d new_status=%s", statusTag, order.ID, newStatus)

	return StatusChangeResult{
		Changed: true,
		Message: state.Message,
		State:   state,
		Order:   u.refresh.refetch(ctx, statusTag, order.ID),
	}, nil
}

// saveState persists informational states. Failures are logged only: the lock, not the
// stored state, is what guards concurrent submissions.
func (u *OrderStatusUseCase) saveState(ctx context.Context, orderID int64, actor string, state entities.TransitionState) {
	if actor == "" {
		return
	}
	if err := u.states.Save(ctx, u.record(orderID, actor, state)); err != nil {
		log.Printf("%s save state failed order_id=%d phase=%s err=%v", statusTag, orderID, state.Phase(), err)
	}
}

func (u *OrderStatusUseCase) record(orderID int64, actor string, state entities.TransitionState) entities.OrderTransition {
	return entities.OrderTransition{
		OrderID:   orderID,
		Actor:     actor,
		State:     state,
		UpdatedAt: u.now().UTC(),
	}
}

func statusLabel(s entities.OrderStatus) string {
	if opt, ok := rules.StatusOptionFor(s); ok {
		return opt.Label
	}
	return string(s)
}
