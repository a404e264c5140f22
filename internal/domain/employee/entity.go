package employee

import (
	"github.com/ANDREYDEN/acacio-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// Employee is a read-only snapshot from the staff directory. It is immutable
// for the duration of one reconciliation pass.
type Employee struct {
	ID            int64
	FirstName     string
	LastName      *string
	HourlyWage    decimal.Decimal
	CommissionPct decimal.Decimal // percentage, 0-100
}

// DisplayName is the name shown on the payroll table.
func (e Employee) DisplayName() string {
	if e.LastName != nil && *e.LastName != "" {
		return e.FirstName + " " + *e.LastName
	}
	return e.FirstName
}

// Validate rejects directory rows that would produce a quietly wrong payroll
// figure: upstream form bugs must surface here, not in the totals.
func (e Employee) Validate() error {
	var errs validator.ValidationErrors

	if e.ID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "must be positive"})
	}
	if validator.IsEmpty(e.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if e.HourlyWage.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_wage", Message: "must be non-negative"})
	}
	hundred := decimal.NewFromInt(100)
	if e.CommissionPct.IsNegative() || e.CommissionPct.GreaterThan(hundred) {
		errs = append(errs, validator.ValidationError{Field: "commission_pct", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
