package shift

import (
	"time"

	"github.com/ANDREYDEN/acacio-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// Edit is a proposed change to an employee's shift on a calendar day. Any
// identifier the UI sends along is resolved against the ledger, never trusted.
type Edit struct {
	EmployeeID int64
	Date       time.Time
	Duration   decimal.Decimal
}

func (e Edit) Validate() error {
	var errs validator.ValidationErrors

	if e.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be positive"})
	}
	if e.Date.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "is required"})
	}
	if e.Duration.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "duration", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EditShiftRequest struct {
	EmployeeID int64           `json:"employee_id"`
	Date       string          `json:"date"` // "2006-01-02"
	Duration   decimal.Decimal `json:"duration"`
}

func (r *EditShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be positive"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.Duration.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "duration", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEdit converts the request into a domain edit. Validate must pass first.
func (r *EditShiftRequest) ToEdit() Edit {
	date, _ := validator.IsValidDate(r.Date)
	return Edit{
		EmployeeID: r.EmployeeID,
		Date:       date,
		Duration:   r.Duration,
	}
}

type ShiftResponse struct {
	ID         int64           `json:"id"`
	EmployeeID int64           `json:"employee_id"`
	Date       string          `json:"date"`
	Duration   decimal.Decimal `json:"duration"`
}

func ToResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:         s.ID,
		EmployeeID: s.EmployeeID,
		Date:       s.Date.Format("2006-01-02"),
		Duration:   s.Duration,
	}
}

type EditShiftResponse struct {
	Operation OperationKind  `json:"operation"`
	Shift     *ShiftResponse `json:"shift,omitempty"`
}
