package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"ordenes_campo/internal/domain/entities"
	"ordenes_campo/internal/domain/rules"
	"ordenes_campo/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=material_usecase.go -destination=../adapter/http/handlers/mocks/mock_material_usecase.go -package=mocks

const materialTag = "[material][usecase]"

// IMaterialUseCase exposes the used-material flows of an order.
//
// The backend has no update for a used-material line, so a quantity change is a saga:
//
//	resolve (catalog lookup) -> stock check -> delete line -> add line
//
// A failure before or at the delete leaves the order untouched. A failure at the add, after a
// successful delete, leaves the order without the line; that run is logged as inconsistent
// and reported as ErrCriticalAddAfterDelete.
type IMaterialUseCase interface {
	ListCatalog(ctx context.Context, query entities.CatalogQuery) ([]entities.CatalogMaterial, error)
	AddMaterial(ctx context.Context, cmd AddMaterialCommand) (MaterialResult, error)
	EditMaterialQuantity(ctx context.Context, cmd EditMaterialCommand) (MaterialResult, error)
	DeleteMaterial(ctx context.Context, cmd DeleteMaterialCommand) (MaterialResult, error)
	ListReconciliations(ctx context.Context, orderID int64, actor string, onlyInconsistent bool) ([]entities.MaterialReconciliation, error)
}

// AddMaterialCommand carries the catalog entry the technician picked. It only selects the
// material: stock and active flag are re-read from the backend before the guards run.
type AddMaterialCommand struct {
	OrderID  int64
	Material *entities.CatalogMaterial
	Quantity string
	Actor    string
}

type EditMaterialCommand struct {
	OrderID     int64
	LineID      int64
	NewQuantity string
	Actor       string
}

type DeleteMaterialCommand struct {
	OrderID int64
	LineID  int64
	Actor   string
}

// MaterialResult is what the presentation layer receives from a material flow.
//
// On ErrCriticalAddAfterDelete the result is returned together with the error: Critical is
// set and Order holds the reloaded order so the missing line is visible.
type MaterialResult struct {
	Changed          bool
	Message          string
	MaterialID       int64
	StockDisponible  *decimal.Decimal
	Critical         bool
	ReconciliationID string
	Order            *entities.Order
}

type MaterialUseCase struct {
	backend         interfaces.IOrderBackend
	reconciliations interfaces.IReconciliationRepository
	locker          interfaces.ISubmissionLocker
	refresh         refresher
	now             func() time.Time
}

var _ IMaterialUseCase = (*MaterialUseCase)(nil)

func NewMaterialUseCase(backend interfaces.IOrderBackend, reconciliations interfaces.IReconciliationRepository, locker interfaces.ISubmissionLocker) *MaterialUseCase {
	return &MaterialUseCase{
		backend:         backend,
		reconciliations: reconciliations,
		locker:          locker,
		refresh:         refresher{backend: backend},
		now:             time.Now,
	}
}

// WithRefreshDelay sets the wait before the post-mutation reload.
func (u *MaterialUseCase) WithRefreshDelay(d time.Duration) *MaterialUseCase {
	u.refresh.delay = d
	return u
}

func (u *MaterialUseCase) ListCatalog(ctx context.Context, query entities.CatalogQuery) ([]entities.CatalogMaterial, error) {
	query.Search = strings.TrimSpace(query.Search)
	items, err := u.backend.ListCatalog(ctx, query)
	if err != nil {
		log.Printf("%s list catalog failed search=%q err=%v", materialTag, query.Search, err)
		return nil, remoteFailure(ErrUnexpected, err, "No se pudo obtener el catálogo de materiales")
	}
	return items, nil
}

func (u *MaterialUseCase) AddMaterial(ctx context.Context, cmd AddMaterialCommand) (MaterialResult, error) {
	log.Printf("%s add start order_id=%d actor=%q quantity=%q", materialTag, cmd.OrderID, cmd.Actor, cmd.Quantity)
	order, fe := u.editableOrder(ctx, cmd.OrderID, cmd.Actor)
	if fe != nil {
		return MaterialResult{}, fe
	}

	if cmd.Material == nil || cmd.Material.ID <= 0 {
		return MaterialResult{}, flowErr(ErrNoMaterialSelected, "Selecciona un material del catálogo")
	}
	qty, ok := parseQuantity(cmd.Quantity)
	if !ok {
		return MaterialResult{}, flowErr(ErrInvalidQuantity, "La cantidad debe ser un número entero positivo")
	}
	mat, fe := u.resolveSelected(ctx, *cmd.Material)
	if fe != nil {
		return MaterialResult{}, fe
	}
	stock := mat.AvailableStock
	if decimal.NewFromInt(int64(qty)).GreaterThan(stock) {
		return MaterialResult{MaterialID: mat.ID, StockDisponible: &stock},
			flowErr(ErrInsufficientStock, "Stock insuficiente: solicitaste %d %s de %s y solo hay %s disponibles",
				qty, mat.UnitOfMeasure, mat.Name, stock.String())
	}
	if !mat.Active {
		return MaterialResult{MaterialID: mat.ID}, flowErr(ErrMaterialInactive, "El material %s está inactivo y no puede agregarse", mat.Name)
	}

	release, fe := acquire(ctx, u.locker, materialTag, fmt.Sprintf("order:%d:material-add:%d", order.ID, mat.ID),
		"Ya se está agregando este material a la orden")
	if fe != nil {
		return MaterialResult{}, fe
	}
	defer release()

	ctx, cancel := detach(ctx)
	defer cancel()

	if err := u.backend.AddMaterial(ctx, entities.MaterialAddition{OrderID: order.ID, MaterialID: mat.ID, Quantity: qty}); err != nil {
		log.Printf("%s add failed order_id=%d material_id=%d err=%v", materialTag, order.ID, mat.ID, err)
		return MaterialResult{}, remoteFailure(ErrAddFailed, err, "No se pudo agregar el material a la orden")
	}
	log.Printf("%s add success order_id=%d material_id=%d quantity=%d", materialTag, order.ID, mat.ID, qty)

	return MaterialResult{
		Changed:         true,
		Message:         fmt.Sprintf("Material %s agregado: %d %s", mat.Name, qty, mat.UnitOfMeasure),
		MaterialID:      mat.ID,
		StockDisponible: &stock,
		Order:           u.refresh.refetch(ctx, materialTag, order.ID),
	}, nil
}

func (u *MaterialUseCase) DeleteMaterial(ctx context.Context, cmd DeleteMaterialCommand) (MaterialResult, error) {
	log.Printf("%s delete start order_id=%d line_id=%d actor=%q", materialTag, cmd.OrderID, cmd.LineID, cmd.Actor)
	order, fe := u.editableOrder(ctx, cmd.OrderID, cmd.Actor)
	if fe != nil {
		return MaterialResult{}, fe
	}
	if cmd.LineID <= 0 {
		return MaterialResult{}, flowErr(ErrMaterialLineNotFound, "Identificador de material inválido")
	}

	release, fe := acquire(ctx, u.locker, materialTag, lineLockKey(order.ID, cmd.LineID),
		"Ya hay una operación en curso sobre este material")
	if fe != nil {
		return MaterialResult{}, fe
	}
	defer release()

	ctx, cancel := detach(ctx)
	defer cancel()

	if err := u.backend.DeleteMaterial(ctx, order.ID, cmd.LineID); err != nil {
		log.Printf("%s delete failed order_id=%d line_id=%d err=%v", materialTag, order.ID, cmd.LineID, err)
		return MaterialResult{}, remoteFailure(ErrDeleteFailed, err, "No se pudo eliminar el material de la orden")
	}
	log.Printf("%s delete success order_id=%d line_id=%d", materialTag, order.ID, cmd.LineID)

	return MaterialResult{
		Changed: true,
		Message: "Material eliminado de la orden",
		Order:   u.refresh.refetch(ctx, materialTag, order.ID),
	}, nil
}

func (u *MaterialUseCase) EditMaterialQuantity(ctx context.Context, cmd EditMaterialCommand) (MaterialResult, error) {
	log.Printf("%s edit start order_id=%d line_id=%d actor=%q new_quantity=%q", materialTag, cmd.OrderID, cmd.LineID, cmd.Actor, cmd.NewQuantity)
	order, fe := u.editableOrder(ctx, cmd.OrderID, cmd.Actor)
	if fe != nil {
		return MaterialResult{}, fe
	}

	line, ok := order.FindUsedMaterial(cmd.LineID)
	if !ok {
		return MaterialResult{}, flowErr(ErrMaterialLineNotFound, "El material no está registrado en esta orden")
	}
	next, ok := parseQuantity(cmd.NewQuantity)
	if !ok {
		return MaterialResult{}, flowErr(ErrInvalidQuantity, "La cantidad debe ser un número entero positivo")
	}
	current := line.QuantityUsed
	if next == current {
		log.Printf("%s edit no-op order_id=%d line_id=%d quantity=%d", materialTag, order.ID, line.ID, current)
		return MaterialResult{Message: "La cantidad no ha cambiado"}, nil
	}
	if next < current {
		return MaterialResult{}, flowErr(ErrDecreaseNotSupported,
			"No se puede disminuir la cantidad (actual: %d %s). Elimina el material y agrégalo de nuevo con la cantidad correcta",
			current, line.UnitOfMeasure)
	}

	release, fe := acquire(ctx, u.locker, materialTag, lineLockKey(order.ID, line.ID),
		"Ya hay una operación en curso sobre este material")
	if fe != nil {
		return MaterialResult{}, fe
	}
	defer release()

	return u.reconcile(ctx, order, line, next, cmd.Actor)
}

// reconcile runs the four saga steps. Every run is written to the reconciliation log.
// The steps run detached from the request so a disconnect between delete and add cannot
// strand the order without its line.
func (u *MaterialUseCase) reconcile(ctx context.Context, order entities.Order, line entities.UsedMaterial, next int, actor string) (MaterialResult, error) {
	ctx, cancel := detach(ctx)
	defer cancel()

	current := line.QuantityUsed
	now := u.now().UTC()
	run := entities.MaterialReconciliation{
		ID:            uuid.NewString(),
		OrderID:       order.ID,
		LineID:        line.ID,
		MaterialCode:  line.MaterialCode,
		MaterialName:  line.MaterialName,
		UnitOfMeasure: line.UnitOfMeasure,
		FromQuantity:  current,
		ToQuantity:    next,
		Actor:         actor,
		CreatedAt:     now,
	}

	// 1. resolve
	mat, err := u.backend.SearchMaterial(ctx, line.MaterialCode, line.MaterialName)
	if err != nil && !isNotFound(err) {
		fe := remoteFailure(ErrUnexpected, err, "No se pudo consultar el catálogo de materiales")
		u.logRun(ctx, &run, entities.ReconciliationStepResolve, entities.ReconciliationOutcomeAborted, fe.Message)
		return MaterialResult{}, fe
	}
	if mat.ID <= 0 {
		fe := flowErr(ErrMaterialNotFound, "No se encontró el material %s (%s) en el catálogo", line.MaterialName, line.MaterialCode)
		u.logRun(ctx, &run, entities.ReconciliationStepResolve, entities.ReconciliationOutcomeAborted, fe.Message)
		return MaterialResult{}, fe
	}
	if !sameCode(mat.Code, line.MaterialCode) {
		fe := flowErr(ErrMaterialNotFound, "El catálogo devolvió %s para %s (%s); la cantidad no se modificó", mat.Code, line.MaterialName, line.MaterialCode)
		u.logRun(ctx, &run, entities.ReconciliationStepResolve, entities.ReconciliationOutcomeAborted, fe.Message)
		log.Printf("%s reconcile code mismatch order_id=%d line_id=%d want=%s got=%s", materialTag, order.ID, line.ID, line.MaterialCode, mat.Code)
		return MaterialResult{}, fe
	}
	run.MaterialID = mat.ID
	stock := mat.AvailableStock

	// 2. stock check, against the freshly resolved stock
	additional := decimal.NewFromInt(int64(next - current))
	if additional.GreaterThan(stock) {
		shortfall := additional.Sub(stock)
		fe := flowErr(ErrInsufficientStock,
			"Stock insuficiente para %s: necesitas %d %s adicionales y solo hay %s disponibles (faltan %s). Cantidad actual asignada: %d %s",
			line.MaterialName, next-current, line.UnitOfMeasure, stock.String(), shortfall.String(), current, line.UnitOfMeasure)
		u.logRun(ctx, &run, entities.ReconciliationStepStockCheck, entities.ReconciliationOutcomeAborted, fe.Message)
		return MaterialResult{MaterialID: mat.ID, StockDisponible: &stock}, fe
	}

	// 3. delete
	if err := u.backend.DeleteMaterial(ctx, order.ID, line.ID); err != nil {
		fe := remoteFailure(ErrDeleteFailed, err, "No se pudo actualizar el material: la eliminación de la cantidad actual falló y la orden no fue modificada")
		u.logRun(ctx, &run, entities.ReconciliationStepDelete, entities.ReconciliationOutcomeAborted, fe.Message)
		log.Printf("%s reconcile delete failed order_id=%d line_id=%d err=%v", materialTag, order.ID, line.ID, err)
		return MaterialResult{}, fe
	}

	// 4. add
	if err := u.backend.AddMaterial(ctx, entities.MaterialAddition{OrderID: order.ID, MaterialID: mat.ID, Quantity: next}); err != nil {
		msg := fmt.Sprintf("Error crítico: se eliminó %s (%d %s) pero no se pudo registrar la nueva cantidad (%d %s). Debes agregar el material nuevamente de forma manual.",
			line.MaterialName, current, line.UnitOfMeasure, next, line.UnitOfMeasure)
		if detail := backendMessage(err); detail != "" {
			msg += " Detalle: " + detail
		}
		u.logRun(ctx, &run, entities.ReconciliationStepAdd, entities.ReconciliationOutcomeInconsistent, msg)
		log.Printf("%s CRITICAL add after delete failed order_id=%d line_id=%d material_id=%d quantity=%d reconciliation_id=%s err=%v",
			materialTag, order.ID, line.ID, mat.ID, next, run.ID, err)
		return MaterialResult{
			Changed:          true,
			Message:          msg,
			MaterialID:       mat.ID,
			Critical:         true,
			ReconciliationID: run.ID,
			Order:            u.refresh.refetch(ctx, materialTag, order.ID),
		}, &FlowError{Err: ErrCriticalAddAfterDelete, Message: msg}
	}

	msg := fmt.Sprintf("Cantidad de %s actualizada: %d → %d %s", line.MaterialName, current, next, line.UnitOfMeasure)
	u.logRun(ctx, &run, entities.ReconciliationStepAdd, entities.ReconciliationOutcomeCompleted, msg)
	log.Printf("%s reconcile success order_id=%d line_id=%d from=%d to=%d", materialTag, order.ID, line.ID, current, next)

	return MaterialResult{
		Changed:          true,
		Message:          msg,
		MaterialID:       mat.ID,
		StockDisponible:  &stock,
		ReconciliationID: run.ID,
		Order:            u.refresh.refetch(ctx, materialTag, order.ID),
	}, nil
}

// ListReconciliations is restricted to the technician assigned to the order. Closed orders
// stay readable so an inconsistent run can still be remediated.
func (u *MaterialUseCase) ListReconciliations(ctx context.Context, orderID int64, actor string, onlyInconsistent bool) ([]entities.MaterialReconciliation, error) {
	if orderID <= 0 {
		return nil, flowErr(ErrInvalidOrderID, "Identificador de orden inválido")
	}
	if actor == "" {
		return nil, flowErr(rules.KindNotAuthenticated, "Debes iniciar sesión para consultar el historial de materiales")
	}
	order, err := u.backend.GetOrder(ctx, orderID)
	if err != nil {
		return nil, loadOrderFailure(ctx, materialTag, orderID, err)
	}
	if r := rules.CanModifyOrder(order, actor); !r.Valid {
		return nil, ruleErr(r)
	}

	items, err := u.reconciliations.ListByOrderID(ctx, orderID)
	if err != nil {
		log.Printf("%s list reconciliations failed order_id=%d err=%v", materialTag, orderID, err)
		return nil, flowErr(ErrUnexpected, genericErrorMessage)
	}

	out := make([]entities.MaterialReconciliation, 0, len(items))
	for _, it := range items {
		if onlyInconsistent && it.Outcome != entities.ReconciliationOutcomeInconsistent {
			continue
		}
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// editableOrder loads the order and applies the shared material preconditions: the order is
// EN_PROCESO and the actor owns it.
func (u *MaterialUseCase) editableOrder(ctx context.Context, orderID int64, actor string) (entities.Order, *FlowError) {
	if orderID <= 0 {
		return entities.Order{}, flowErr(ErrInvalidOrderID, "Identificador de orden inválido")
	}
	order, err := u.backend.GetOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, loadOrderFailure(ctx, materialTag, orderID, err)
	}
	if order.Status != entities.OrderStatusEnProceso {
		return entities.Order{}, flowErr(ErrOrderNotEditable, "Solo se pueden modificar materiales de órdenes En proceso (estado actual: %s)", statusLabel(order.Status))
	}
	if r := rules.CanModifyOrder(order, actor); !r.Valid {
		return entities.Order{}, ruleErr(r)
	}
	return order, nil
}

// resolveSelected re-reads the picked catalog entry from the backend. The client copy is
// trusted only for which material was meant.
func (u *MaterialUseCase) resolveSelected(ctx context.Context, picked entities.CatalogMaterial) (entities.CatalogMaterial, *FlowError) {
	mat, err := u.backend.SearchMaterial(ctx, picked.Code, picked.Name)
	if err != nil && !isNotFound(err) {
		log.Printf("%s resolve failed material_id=%d err=%v", materialTag, picked.ID, err)
		return entities.CatalogMaterial{}, remoteFailure(ErrUnexpected, err, "No se pudo consultar el catálogo de materiales")
	}
	if mat.ID <= 0 || mat.ID != picked.ID {
		log.Printf("%s resolve mismatch picked_id=%d resolved_id=%d code=%q", materialTag, picked.ID, mat.ID, picked.Code)
		return entities.CatalogMaterial{}, flowErr(ErrMaterialNotFound, "No se encontró el material %s en el catálogo", picked.Name)
	}
	return mat, nil
}

// logRun records the run; a log failure never changes the flow outcome.
func (u *MaterialUseCase) logRun(ctx context.Context, run *entities.MaterialReconciliation, step entities.ReconciliationStep, outcome entities.ReconciliationOutcome, msg string) {
	run.Step = step
	run.Outcome = outcome
	run.Message = msg
	run.UpdatedAt = u.now().UTC()
	if u.reconciliations == nil {
		return
	}
	if err := u.reconciliations.Save(context.WithoutCancel(ctx), *run); err != nil {
		log.Printf("%s reconciliation log failed id=%s outcome=%s err=%v", materialTag, run.ID, outcome, err)
	}
}

func lineLockKey(orderID, lineID int64) string {
	return fmt.Sprintf("order:%d:material:%d", orderID, lineID)
}

// parseQuantity accepts only plain positive integers ("8"; not "+8", "8.0" or "0").
func parseQuantity(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func sameCode(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func isNotFound(err error) bool {
	var be *interfaces.BackendError
	return errors.As(err, &be) && be.StatusCode == http.StatusNotFound
}
