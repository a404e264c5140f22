package bonus

import "github.com/shopspring/decimal"

// Bonus is the manually-entered monthly bonus for an employee. At most one
// open bonus exists per employee per period; ID zero means not yet persisted.
type Bonus struct {
	ID          int64
	EmployeeID  int64
	Amount      decimal.Decimal
	Reason      *string
	PeriodMonth int
	PeriodYear  int
}
