package payroll

import (
	"github.com/shopspring/decimal"
)

type RowResponse struct {
	EmployeeID   int64           `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	HourlyWage   decimal.Decimal `json:"hourly_wage"`
	TotalHours   decimal.Decimal `json:"total_hours"`
	BaseSalary   decimal.Decimal `json:"base_salary"`
	Commission   decimal.Decimal `json:"commission"`
	Deductions   decimal.Decimal `json:"deductions"`
	Bonus        decimal.Decimal `json:"bonus"`
	NetIncome    decimal.Decimal `json:"net_income"`
}

type FlaggedDeductionResponse struct {
	Label       string          `json:"label"`
	Amount      decimal.Decimal `json:"amount"`
	EmployeeIDs []int64         `json:"employee_ids"`
}

type TableResponse struct {
	PeriodMonth int                        `json:"period_month"`
	PeriodYear  int                        `json:"period_year"`
	Rows        []RowResponse              `json:"rows"`
	// Deduction events that matched more than one employee; excluded from
	// the totals, pending manual review.
	FlaggedDeductions []FlaggedDeductionResponse `json:"flagged_deductions,omitempty"`
}

func ToRowResponse(r Row) RowResponse {
	return RowResponse{
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		HourlyWage:   r.HourlyWage,
		TotalHours:   r.TotalHours,
		BaseSalary:   r.BaseSalary,
		Commission:   r.Commission,
		Deductions:   r.Deductions,
		Bonus:        r.Bonus,
		NetIncome:    r.NetIncome,
	}
}
