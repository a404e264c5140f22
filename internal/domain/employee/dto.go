package employee

import "github.com/shopspring/decimal"

type EmployeeResponse struct {
	ID            int64           `json:"id"`
	FirstName     string          `json:"first_name"`
	LastName      *string         `json:"last_name,omitempty"`
	HourlyWage    decimal.Decimal `json:"hourly_wage"`
	CommissionPct decimal.Decimal `json:"commission_pct"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		HourlyWage:    e.HourlyWage,
		CommissionPct: e.CommissionPct,
	}
}
