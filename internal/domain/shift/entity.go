package shift

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shift is one worked (or confirmed absent) day for an employee. ID zero
// means the record has not been persisted yet.
type Shift struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	Duration   decimal.Decimal // hours
}

// SameDay compares at calendar-day granularity; time-of-day is ignored when
// matching shifts.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
