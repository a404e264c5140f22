package payroll

import (
	"github.com/ANDREYDEN/acacio-sub000/internal/domain/deduction"
	"github.com/shopspring/decimal"
)

// Row is the fully aggregated, per-employee summary of one reconciliation
// period. Rows are recomputed from scratch every pass and never persisted.
type Row struct {
	EmployeeID   int64
	EmployeeName string
	HourlyWage   decimal.Decimal
	TotalHours   decimal.Decimal
	BaseSalary   decimal.Decimal // TotalHours * HourlyWage
	Commission   decimal.Decimal
	Deductions   decimal.Decimal
	Bonus        decimal.Decimal
	NetIncome    decimal.Decimal // BaseSalary + Commission + Bonus - Deductions
}

// AmbiguousDeduction is a feed event whose label matched more than one
// employee name. Such events are excluded from the totals and surfaced for
// manual review instead of being attributed to a guessed employee.
type AmbiguousDeduction struct {
	Event       deduction.Event
	EmployeeIDs []int64
}
