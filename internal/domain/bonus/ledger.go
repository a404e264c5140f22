package bonus

import (
	"github.com/shopspring/decimal"
)

type OperationKind string

const (
	OpNone   OperationKind = "none"
	OpInsert OperationKind = "insert"
	OpUpdate OperationKind = "update"
	OpDelete OperationKind = "delete"
)

// Operation is the single persistence action the caller applies. For
// OpDelete only Bonus.ID is meaningful.
type Operation struct {
	Kind  OperationKind
	Bonus Bonus
}

// ResolveEdit resolves an amount edit against the employee's current bonus,
// mirroring the shift ledger's tri-state rules but keyed on the amount alone.
// existing is nil when the employee has no bonus for the period. The returned
// *Bonus is the next state (nil = absent); inputs are never mutated.
func ResolveEdit(existing *Bonus, employeeID int64, amount decimal.Decimal, reason *string, year int, month int) (Operation, *Bonus, error) {
	switch {
	case existing == nil && amount.IsZero():
		// nothing recorded and nothing to record
		return Operation{Kind: OpNone}, nil, nil

	case existing == nil:
		created := Bonus{
			EmployeeID:  employeeID,
			Amount:      amount,
			Reason:      reason,
			PeriodMonth: month,
			PeriodYear:  year,
		}
		return Operation{Kind: OpInsert, Bonus: created}, &created, nil

	case amount.IsZero():
		return Operation{Kind: OpDelete, Bonus: *existing}, nil, nil

	default:
		updated := *existing
		updated.Amount = amount
		if reason != nil {
			updated.Reason = reason
		}
		return Operation{Kind: OpUpdate, Bonus: updated}, &updated, nil
	}
}

// ResolveReasonEdit updates the free-text reason without touching the amount.
// It never triggers insert or delete transitions; editing the reason of an
// absent bonus is a caller error.
func ResolveReasonEdit(existing *Bonus, reason *string) (Operation, *Bonus, error) {
	if existing == nil {
		return Operation{Kind: OpNone}, nil, ErrBonusNotFound
	}

	updated := *existing
	updated.Reason = reason
	return Operation{Kind: OpUpdate, Bonus: updated}, &updated, nil
}
