package entities

import "time"

// ReconciliationStep names the saga step a reconciliation run reached last.
type ReconciliationStep string

const (
	ReconciliationStepResolve    ReconciliationStep = "resolve"
	ReconciliationStepStockCheck ReconciliationStep = "stock_check"
	ReconciliationStepDelete     ReconciliationStep = "delete"
	ReconciliationStepAdd        ReconciliationStep = "add"
)

// ReconciliationOutcome is the terminal result of a reconciliation run.
//
//   - completed: delete and add both succeeded.
//   - aborted: a step failed before anything was deleted, or the delete itself failed.
//   - inconsistent: the delete succeeded and the add failed. The original line is gone and
//     the technician must re-add the material by hand.
type ReconciliationOutcome string

const (
	ReconciliationOutcomeCompleted    ReconciliationOutcome = "completed"
	ReconciliationOutcomeAborted      ReconciliationOutcome = "aborted"
	ReconciliationOutcomeInconsistent ReconciliationOutcome = "inconsistent"
)

// MaterialReconciliation records one delete-then-add quantity change.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id + created_at
type MaterialReconciliation struct {
	ID            string
	OrderID       int64
	LineID        int64
	MaterialID    int64
	MaterialCode  string
	MaterialName  string
	UnitOfMeasure string
	FromQuantity  int
	ToQuantity    int
	Step          ReconciliationStep
	Outcome       ReconciliationOutcome
	Message       string
	Actor         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
