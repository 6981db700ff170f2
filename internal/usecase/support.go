package usecase

import (
	"context"
	"log"
	"time"

	"ordenes_campo/internal/domain/entities"
	"ordenes_campo/internal/usecase/interfaces"
)

// dispatchTimeout bounds a flow once it starts talking to the backend.
const dispatchTimeout = 30 * time.Second

// detach keeps the request values (session token) but drops its cancellation: once a
// mutation may have been sent, a client disconnect must not abort the remaining steps.
func detach(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), dispatchTimeout)
}

// refresher reloads an order after a mutation. The server copy is the only source of
// truth, so flows never patch the snapshot they started from.
type refresher struct {
	backend interfaces.IOrderBackend
	delay   time.Duration
}

// refetch waits the configured propagation delay and reloads the order. A failed reload is
// logged and reported as nil; it never turns a successful mutation into a failure.
func (r refresher) refetch(ctx context.Context, tag string, orderID int64) *entities.Order {
	if r.delay > 0 {
		t := time.NewTimer(r.delay)
		select {
		case <-ctx.Done():
			t.Stop()
			log.Printf("%s refresh cancelled order_id=%d err=%v", tag, orderID, ctx.Err())
			return nil
		case <-t.C:
		}
	}

	order, err := r.backend.GetOrder(ctx, orderID)
	if err != nil {
		log.Printf("%s refresh failed order_id=%d err=%v", tag, orderID, err)
		return nil
	}
	log.Printf("%s refresh done order_id=%d status=%s materials=%d", tag, orderID, order.Status, len(order.UsedMaterials))
	return &order
}

// acquire takes the submission lock for key. The returned release func is always safe to
// call and releases with a context that survives cancellation of the request.
func acquire(ctx context.Context, locker interfaces.ISubmissionLocker, tag, key, busyMessage string) (func(), *FlowError) {
	token, ok, err := locker.Acquire(ctx, key)
	if err != nil {
		log.Printf("%s lock acquire failed key=%s err=%v", tag, key, err)
		return func() {}, flowErr(ErrUnexpected, genericErrorMessage)
	}
	if !ok {
		log.Printf("%s lock busy key=%s", tag, key)
		return func() {}, &FlowError{Err: ErrActionInProgress, Message: busyMessage}
	}

	release := func() {
		if err := locker.Release(context.WithoutCancel(ctx), key, token); err != nil {
			log.Printf("%s lock release failed key=%s err=%v", tag, key, err)
		}
	}
	return release, nil
}
