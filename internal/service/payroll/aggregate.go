package payroll

import (
	"github.com/ANDREYDEN/acacio-sub000/internal/domain/bonus"
	"github.com/ANDREYDEN/acacio-sub000/internal/domain/employee"
	"github.com/ANDREYDEN/acacio-sub000/internal/domain/payroll"
	"github.com/ANDREYDEN/acacio-sub000/internal/domain/shift"
	"github.com/shopspring/decimal"
)

// ComputeRows composes the four sources into one payroll row per employee.
// It is pure: no I/O, no mutation of its arguments. Output order follows the
// employee list order; commission, deductions and bonus default to zero when
// absent. Net income = base + commission + bonus - deductions.
func ComputeRows(
	employees []employee.Employee,
	shifts shift.Ledger,
	bonuses []bonus.Bonus,
	commissionTotals map[int64]decimal.Decimal,
	deductionTotals map[int64]decimal.Decimal,
) ([]payroll.Row, error) {
	bonusByEmployee := make(map[int64]bonus.Bonus, len(bonuses))
	for _, b := range bonuses {
		bonusByEmployee[b.EmployeeID] = b
	}

	rows := make([]payroll.Row, 0, len(employees))
	for _, emp := range employees {
		if err := emp.Validate(); err != nil {
			return nil, err
		}

		hours := shifts.TotalHours(emp.ID)
		base := hours.Mul(emp.HourlyWage)

		commission := commissionTotals[emp.ID]
		deductions := deductionTotals[emp.ID]

		bonusAmount := decimal.Zero
		if b, ok := bonusByEmployee[emp.ID]; ok {
			bonusAmount = b.Amount
		}

		rows = append(rows, payroll.Row{
			EmployeeID:   emp.ID,
			EmployeeName: emp.DisplayName(),
			HourlyWage:   emp.HourlyWage,
			TotalHours:   hours,
			BaseSalary:   base,
			Commission:   commission,
			Deductions:   deductions,
			Bonus:        bonusAmount,
			NetIncome:    base.Add(commission).Add(bonusAmount).Sub(deductions),
		})
	}

	return rows, nil
}
