package bonus

import (
	"github.com/ANDREYDEN/acacio-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type EditBonusRequest struct {
	EmployeeID  int64           `json:"employee_id"`
	PeriodMonth int             `json:"period_month"`
	PeriodYear  int             `json:"period_year"`
	Amount      decimal.Decimal `json:"amount"`
	Reason      *string         `json:"reason,omitempty"`
}

func (r *EditBonusRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be positive"})
	}
	if !validator.IsValidMonth(r.PeriodMonth) {
		errs = append(errs, validator.ValidationError{Field: "period_month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.PeriodYear) {
		errs = append(errs, validator.ValidationError{Field: "period_year", Message: "must be a valid year"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EditBonusReasonRequest struct {
	EmployeeID  int64   `json:"employee_id"`
	PeriodMonth int     `json:"period_month"`
	PeriodYear  int     `json:"period_year"`
	Reason      *string `json:"reason"`
}

func (r *EditBonusReasonRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be positive"})
	}
	if !validator.IsValidMonth(r.PeriodMonth) {
		errs = append(errs, validator.ValidationError{Field: "period_month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.PeriodYear) {
		errs = append(errs, validator.ValidationError{Field: "period_year", Message: "must be a valid year"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BonusResponse struct {
	ID          int64           `json:"id"`
	EmployeeID  int64           `json:"employee_id"`
	Amount      decimal.Decimal `json:"amount"`
	Reason      *string         `json:"reason,omitempty"`
	PeriodMonth int             `json:"period_month"`
	PeriodYear  int             `json:"period_year"`
}

func ToResponse(b Bonus) BonusResponse {
	return BonusResponse{
		ID:          b.ID,
		EmployeeID:  b.EmployeeID,
		Amount:      b.Amount,
		Reason:      b.Reason,
		PeriodMonth: b.PeriodMonth,
		PeriodYear:  b.PeriodYear,
	}
}

type EditBonusResponse struct {
	Operation OperationKind  `json:"operation"`
	Bonus     *BonusResponse `json:"bonus,omitempty"`
}
