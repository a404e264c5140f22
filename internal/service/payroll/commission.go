package payroll

import (
	"time"

	"github.com/ANDREYDEN/acacio-sub000/internal/domain/employee"
	"github.com/ANDREYDEN/acacio-sub000/internal/domain/shift"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CommissionCalculator derives per-employee commission income from the daily
// sales feed and the hours each employee worked on each day.
type CommissionCalculator struct {
}

func NewCommissionCalculator() *CommissionCalculator {
	return &CommissionCalculator{}
}

// Totals computes each employee's commission for the month. dailySales is
// ordered by offset from monthStart; the caller aligns the sequence to the
// month, offset zero is the first element by definition. An employee with no
// shifts contributes zero regardless of the sales figures.
func (c *CommissionCalculator) Totals(
	employees []employee.Employee,
	shifts shift.Ledger,
	monthStart time.Time,
	dailySales []decimal.Decimal,
) (map[int64]decimal.Decimal, error) {
	totals := make(map[int64]decimal.Decimal, len(employees))

	for _, emp := range employees {
		if err := emp.Validate(); err != nil {
			return nil, err
		}

		rate := emp.CommissionPct.Div(hundred)
		total := decimal.Zero
		for d, figure := range dailySales {
			hours := shifts.DurationOn(emp.ID, monthStart.AddDate(0, 0, d))
			if hours.IsZero() {
				continue
			}
			total = total.Add(hours.Mul(rate).Mul(figure))
		}
		totals[emp.ID] = total
	}

	return totals, nil
}
