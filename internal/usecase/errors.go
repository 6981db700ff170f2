package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"ordenes_campo/internal/domain/rules"
	"ordenes_campo/internal/usecase/interfaces"
)

var (
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrActionInProgress   = errors.New("action already in progress")
	ErrNoPendingConfirm   = errors.New("no pending confirmation")
	ErrWorkNotStarted     = errors.New("work not started")
	ErrStatusUpdateFailed = errors.New("status update rejected")

	ErrOrderNotEditable     = errors.New("order not editable")
	ErrInvalidQuantity      = errors.New("invalid quantity")
	ErrDecreaseNotSupported = errors.New("decrease not supported")
	ErrMaterialLineNotFound = errors.New("material line not found")
	ErrMaterialNotFound     = errors.New("material not found")
	ErrInsufficientStock    = errors.New("insufficient stock")
	ErrDeleteFailed         = errors.New("delete failed")
	ErrAddFailed            = errors.New("add failed")
	ErrNoMaterialSelected   = errors.New("no material selected")
	ErrMaterialInactive     = errors.New("material inactive")

	// ErrCriticalAddAfterDelete means the used-material line was deleted and the
	// replacement could not be added. Retrying does not fix it; the technician must re-add
	// the material manually.
	ErrCriticalAddAfterDelete = errors.New("CRITICAL_ADD_AFTER_DELETE")

	ErrUnexpected = errors.New("unexpected error")
)

const genericErrorMessage = "Ocurrió un error inesperado. Intenta nuevamente."

// FlowError is the failure of one user action: Err is the machine kind (a sentinel above or a
// rules.Kind) and Message is what the technician sees.
type FlowError struct {
	Err     error
	Message string
}

func (e *FlowError) Error() string { return e.Message }

func (e *FlowError) Unwrap() error { return e.Err }

func flowErr(kind error, format string, args ...any) *FlowError {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return &FlowError{Err: kind, Message: msg}
}

func ruleErr(r rules.Result) *FlowError {
	return &FlowError{Err: r.Kind, Message: r.Message}
}

// MessageOf returns the display message of err, or the generic message for errors that did
// not come out of a flow.
func MessageOf(err error) string {
	var fe *FlowError
	if errors.As(err, &fe) && fe.Message != "" {
		return fe.Message
	}
	return genericErrorMessage
}

// remoteFailure converts a backend call error into a FlowError of the given kind.
// Backend rejections keep their message verbatim; transport errors get the fallback.
func remoteFailure(kind error, err error, fallback string) *FlowError {
	if msg := backendMessage(err); msg != "" {
		return &FlowError{Err: kind, Message: msg}
	}
	return &FlowError{Err: kind, Message: fallback}
}

// backendMessage returns the backend-provided rejection text, or "".
func backendMessage(err error) string {
	var be *interfaces.BackendError
	if errors.As(err, &be) {
		return be.Message
	}
	return ""
}

// loadOrderFailure maps a GetOrder error to ErrOrderNotFound or ErrUnexpected.
func loadOrderFailure(ctx context.Context, tag string, orderID int64, err error) *FlowError {
	var be *interfaces.BackendError
	if errors.As(err, &be) && be.StatusCode == http.StatusNotFound {
		return flowErr(ErrOrderNotFound, "La orden %d no existe", orderID)
	}
	log.Printf("%s load order failed order_id=%d err=%v", tag, orderID, err)
	if ctx.Err() != nil {
		return flowErr(ErrUnexpected, "La solicitud fue cancelada")
	}
	return remoteFailure(ErrUnexpected, err, "No se pudo obtener la orden. Intenta nuevamente.")
}
