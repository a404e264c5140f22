package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ANDREYDEN/acacio-sub000/internal/domain/bonus"
	"github.com/ANDREYDEN/acacio-sub000/internal/domain/employee"
	"github.com/ANDREYDEN/acacio-sub000/internal/domain/shift"
)

func TestComputeRows_NetIncomeFormula(t *testing.T) {
	employees := []employee.Employee{
		{ID: 1, FirstName: "Ann", HourlyWage: dec("10"), CommissionPct: dec("5")},
	}
	shifts := shift.Ledger{
		{ID: 1, EmployeeID: 1, Date: juneDay(1), Duration: dec("8")},
		{ID: 2, EmployeeID: 1, Date: juneDay(2), Duration: dec("4")},
	}
	bonuses := []bonus.Bonus{
		{ID: 1, EmployeeID: 1, Amount: dec("30"), PeriodMonth: 6, PeriodYear: 2024},
	}
	commission := map[int64]decimal.Decimal{1: dec("25")}
	deductions := map[int64]decimal.Decimal{1: dec("10")}

	rows, err := ComputeRows(employees, shifts, bonuses, commission, deductions)

	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.True(t, row.TotalHours.Equal(dec("12")))
	assert.True(t, row.BaseSalary.Equal(dec("120")))
	assert.True(t, row.Commission.Equal(dec("25")))
	assert.True(t, row.Deductions.Equal(dec("10")))
	assert.True(t, row.Bonus.Equal(dec("30")))
	// 120 + 25 + 30 - 10
	assert.True(t, row.NetIncome.Equal(dec("165")), "got %s", row.NetIncome)
}

func TestComputeRows_ZeroDefaultsForAbsentSources(t *testing.T) {
	employees := []employee.Employee{
		{ID: 1, FirstName: "Ann", HourlyWage: dec("10"), CommissionPct: dec("5")},
	}

	rows, err := ComputeRows(employees, shift.Ledger{}, nil, nil, nil)

	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.True(t, row.TotalHours.IsZero())
	assert.True(t, row.BaseSalary.IsZero())
	assert.True(t, row.Commission.IsZero())
	assert.True(t, row.Deductions.IsZero())
	assert.True(t, row.Bonus.IsZero())
	assert.True(t, row.NetIncome.IsZero())
}

func TestComputeRows_PreservesEmployeeOrder(t *testing.T) {
	employees := []employee.Employee{
		{ID: 3, FirstName: "Cara", HourlyWage: dec("10"), CommissionPct: dec("0")},
		{ID: 1, FirstName: "Ann", HourlyWage: dec("10"), CommissionPct: dec("0")},
		{ID: 2, FirstName: "Bob", HourlyWage: dec("10"), CommissionPct: dec("0")},
	}

	rows, err := ComputeRows(employees, shift.Ledger{}, nil, nil, nil)

	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, int64(3), rows[0].EmployeeID)
	assert.Equal(t, int64(1), rows[1].EmployeeID)
	assert.Equal(t, int64(2), rows[2].EmployeeID)
}

func TestComputeRows_RejectsNegativeWage(t *testing.T) {
	employees := []employee.Employee{
		{ID: 1, FirstName: "Ann", HourlyWage: dec("-1"), CommissionPct: dec("0")},
	}

	_, err := ComputeRows(employees, shift.Ledger{}, nil, nil, nil)
	assert.Error(t, err)
}

// The reference scenario: Ann works 8 hours at wage 10 with 5% commission on
// a single day with sales of 1000. Base 80, commission 400, net 480.
func TestComputeRows_EndToEndWithCalculators(t *testing.T) {
	employees := []employee.Employee{
		{ID: 1, FirstName: "Ann", HourlyWage: dec("10"), CommissionPct: dec("5")},
	}
	shifts := shift.Ledger{
		{ID: 1, EmployeeID: 1, Date: juneDay(1), Duration: dec("8")},
	}

	commission, err := NewCommissionCalculator().Totals(employees, shifts, juneStart, []decimal.Decimal{dec("1000")})
	require.NoError(t, err)

	deductions, flagged := NewDeductionAggregator().Totals(employees, nil)
	require.Empty(t, flagged)

	rows, err := ComputeRows(employees, shifts, nil, commission, deductions)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.True(t, row.TotalHours.Equal(dec("8")))
	assert.True(t, row.BaseSalary.Equal(dec("80")))
	assert.True(t, row.Commission.Equal(dec("400")))
	assert.True(t, row.NetIncome.Equal(dec("480")), "got %s", row.NetIncome)
}
