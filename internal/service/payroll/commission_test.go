package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ANDREYDEN/acacio-sub000/internal/domain/employee"
	"github.com/ANDREYDEN/acacio-sub000/internal/domain/shift"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func strptr(s string) *string { return &s }

var juneStart = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

func juneDay(d int) time.Time {
	return time.Date(2024, time.June, d, 0, 0, 0, 0, time.UTC)
}

func TestCommissionTotals_SingleDay(t *testing.T) {
	calc := NewCommissionCalculator()

	employees := []employee.Employee{
		{ID: 1, FirstName: "Ann", HourlyWage: dec("10"), CommissionPct: dec("5")},
	}
	shifts := shift.Ledger{
		{ID: 1, EmployeeID: 1, Date: juneDay(1), Duration: dec("8")},
	}
	dailySales := []decimal.Decimal{dec("1000")}

	totals, err := calc.Totals(employees, shifts, juneStart, dailySales)

	require.NoError(t, err)
	// 8h x 5% x 1000
	assert.True(t, totals[1].Equal(dec("400")), "got %s", totals[1])
}

func TestCommissionTotals_SumsAcrossDays(t *testing.T) {
	calc := NewCommissionCalculator()

	employees := []employee.Employee{
		{ID: 1, FirstName: "Ann", HourlyWage: dec("10"), CommissionPct: dec("10")},
	}
	shifts := shift.Ledger{
		{ID: 1, EmployeeID: 1, Date: juneDay(1), Duration: dec("4")},
		{ID: 2, EmployeeID: 1, Date: juneDay(3), Duration: dec("2")},
	}
	dailySales := []decimal.Decimal{dec("100"), dec("500"), dec("50")}

	totals, err := calc.Totals(employees, shifts, juneStart, dailySales)

	require.NoError(t, err)
	// day 1: 4 x 0.1 x 100 = 40; day 2: no shift; day 3: 2 x 0.1 x 50 = 10
	assert.True(t, totals[1].Equal(dec("50")), "got %s", totals[1])
}

func TestCommissionTotals_ZeroWithoutShifts(t *testing.T) {
	calc := NewCommissionCalculator()

	employees := []employee.Employee{
		{ID: 1, FirstName: "Ann", HourlyWage: dec("10"), CommissionPct: dec("50")},
	}
	dailySales := []decimal.Decimal{dec("1000"), dec("2000"), dec("3000")}

	totals, err := calc.Totals(employees, shift.Ledger{}, juneStart, dailySales)

	require.NoError(t, err)
	assert.True(t, totals[1].IsZero())
}

func TestCommissionTotals_IgnoresOtherEmployeesShifts(t *testing.T) {
	calc := NewCommissionCalculator()

	employees := []employee.Employee{
		{ID: 1, FirstName: "Ann", HourlyWage: dec("10"), CommissionPct: dec("5")},
		{ID: 2, FirstName: "Bob", HourlyWage: dec("12"), CommissionPct: dec("5")},
	}
	shifts := shift.Ledger{
		{ID: 1, EmployeeID: 2, Date: juneDay(1), Duration: dec("8")},
	}
	dailySales := []decimal.Decimal{dec("1000")}

	totals, err := calc.Totals(employees, shifts, juneStart, dailySales)

	require.NoError(t, err)
	assert.True(t, totals[1].IsZero())
	assert.True(t, totals[2].Equal(dec("400")))
}

func TestCommissionTotals_RejectsInvalidCommissionPct(t *testing.T) {
	calc := NewCommissionCalculator()

	tests := []struct {
		name string
		pct  decimal.Decimal
	}{
		{"negative", dec("-1")},
		{"over one hundred", dec("101")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			employees := []employee.Employee{
				{ID: 1, FirstName: "Ann", HourlyWage: dec("10"), CommissionPct: tt.pct},
			}

			_, err := calc.Totals(employees, shift.Ledger{}, juneStart, nil)
			assert.Error(t, err)
		})
	}
}
