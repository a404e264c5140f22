package shift

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ledger is the in-memory set of shift records for the active month.
// At most one shift exists per (employee, calendar day).
type Ledger []Shift

// findIndex returns the position of the shift for the employee on the given
// calendar day, or -1.
func (l Ledger) findIndex(employeeID int64, date time.Time) int {
	for i, s := range l {
		if s.EmployeeID == employeeID && SameDay(s.Date, date) {
			return i
		}
	}
	return -1
}

// Find returns the shift for the employee on the given calendar day.
func (l Ledger) Find(employeeID int64, date time.Time) (Shift, bool) {
	if i := l.findIndex(employeeID, date); i >= 0 {
		return l[i], true
	}
	return Shift{}, false
}

// DurationOn returns the hours the employee worked on the given day, zero if
// no shift exists.
func (l Ledger) DurationOn(employeeID int64, date time.Time) decimal.Decimal {
	if s, ok := l.Find(employeeID, date); ok {
		return s.Duration
	}
	return decimal.Zero
}

// TotalHours sums the employee's shift durations across the ledger.
func (l Ledger) TotalHours(employeeID int64) decimal.Decimal {
	total := decimal.Zero
	for _, s := range l {
		if s.EmployeeID == employeeID {
			total = total.Add(s.Duration)
		}
	}
	return total
}

type OperationKind string

const (
	OpNone   OperationKind = "none"
	OpInsert OperationKind = "insert"
	OpUpdate OperationKind = "update"
	OpDelete OperationKind = "delete"
)

// Operation is the single persistence action the caller applies to the
// system of record. For OpDelete only Shift.ID is meaningful.
type Operation struct {
	Kind  OperationKind
	Shift Shift
}

// ResolveEdit resolves a proposed edit against the ledger snapshot into the
// next snapshot and exactly one persistence operation. It never mutates its
// arguments; the caller owns applying the operation and refreshing.
func ResolveEdit(ledger Ledger, edit Edit) (Ledger, Operation, error) {
	if err := edit.Validate(); err != nil {
		return nil, Operation{Kind: OpNone}, err
	}

	i := ledger.findIndex(edit.EmployeeID, edit.Date)

	switch {
	case i >= 0 && ledger[i].Duration.Equal(edit.Duration):
		// no-op: the record already says exactly this
		return ledger, Operation{Kind: OpNone}, nil

	case i >= 0 && edit.Duration.IsZero():
		next := make(Ledger, 0, len(ledger)-1)
		next = append(next, ledger[:i]...)
		next = append(next, ledger[i+1:]...)
		return next, Operation{Kind: OpDelete, Shift: ledger[i]}, nil

	case i >= 0:
		updated := ledger[i]
		updated.Duration = edit.Duration
		next := make(Ledger, len(ledger))
		copy(next, ledger)
		next[i] = updated
		return next, Operation{Kind: OpUpdate, Shift: updated}, nil

	default:
		// No prior record: insert even when the duration is zero. A zero-hour
		// row is a confirmed absence and must not be silently dropped; only an
		// existing record turns a zero edit into a delete.
		created := Shift{EmployeeID: edit.EmployeeID, Date: edit.Date, Duration: edit.Duration}
		next := make(Ledger, len(ledger), len(ledger)+1)
		copy(next, ledger)
		next = append(next, created)
		return next, Operation{Kind: OpInsert, Shift: created}, nil
	}
}
