package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ANDREYDEN/acacio-sub000/internal/domain/deduction"
	"github.com/ANDREYDEN/acacio-sub000/internal/domain/employee"
)

func TestDeductionTotals_AttributesByNameSubstring(t *testing.T) {
	agg := NewDeductionAggregator()

	employees := []employee.Employee{
		{ID: 1, FirstName: "John", LastName: strptr("Doe"), HourlyWage: dec("10"), CommissionPct: dec("0")},
		{ID: 2, FirstName: "Jane", LastName: strptr("Smith"), HourlyWage: dec("10"), CommissionPct: dec("0")},
	}
	events := []deduction.Event{
		{ID: 1, Label: "Waste: John Doe spill", AmountMinor: 1250, Date: juneDay(3)},
	}

	totals, flagged := agg.Totals(employees, events)

	assert.Empty(t, flagged)
	assert.True(t, totals[1].Equal(dec("12.5")), "got %s", totals[1])
	assert.True(t, totals[2].IsZero())
}

func TestDeductionTotals_MatchIsCaseInsensitive(t *testing.T) {
	agg := NewDeductionAggregator()

	employees := []employee.Employee{
		{ID: 1, FirstName: "John", LastName: strptr("Doe"), HourlyWage: dec("10"), CommissionPct: dec("0")},
	}
	events := []deduction.Event{
		{ID: 1, Label: "broken glass JOHN", AmountMinor: 500, Date: juneDay(3)},
	}

	totals, _ := agg.Totals(employees, events)

	assert.True(t, totals[1].Equal(dec("5")))
}

func TestDeductionTotals_SumsMultipleEvents(t *testing.T) {
	agg := NewDeductionAggregator()

	employees := []employee.Employee{
		{ID: 1, FirstName: "John", LastName: strptr("Doe"), HourlyWage: dec("10"), CommissionPct: dec("0")},
	}
	events := []deduction.Event{
		{ID: 1, Label: "spill john", AmountMinor: 500, Date: juneDay(3)},
		{ID: 2, Label: "breakage doe", AmountMinor: 750, Date: juneDay(9)},
	}

	totals, _ := agg.Totals(employees, events)

	assert.True(t, totals[1].Equal(dec("12.5")))
}

func TestDeductionTotals_DropsUnmatchedEvents(t *testing.T) {
	agg := NewDeductionAggregator()

	employees := []employee.Employee{
		{ID: 1, FirstName: "John", LastName: strptr("Doe"), HourlyWage: dec("10"), CommissionPct: dec("0")},
	}
	events := []deduction.Event{
		{ID: 1, Label: "general shrinkage", AmountMinor: 9999, Date: juneDay(3)},
	}

	totals, flagged := agg.Totals(employees, events)

	assert.Empty(t, flagged)
	assert.True(t, totals[1].IsZero())
}

func TestDeductionTotals_FlagsAmbiguousMatches(t *testing.T) {
	agg := NewDeductionAggregator()

	employees := []employee.Employee{
		{ID: 1, FirstName: "John", LastName: strptr("Doe"), HourlyWage: dec("10"), CommissionPct: dec("0")},
		{ID: 2, FirstName: "Johnny", LastName: strptr("Park"), HourlyWage: dec("10"), CommissionPct: dec("0")},
	}
	events := []deduction.Event{
		// "johnny" contains "john" as a substring, so both employees match.
		{ID: 1, Label: "breakage johnny", AmountMinor: 1500, Date: juneDay(3)},
	}

	totals, flagged := agg.Totals(employees, events)

	assert.True(t, totals[1].IsZero())
	assert.True(t, totals[2].IsZero())
	require.Len(t, flagged, 1)
	assert.Equal(t, int64(1), flagged[0].Event.ID)
	assert.ElementsMatch(t, []int64{1, 2}, flagged[0].EmployeeIDs)
}

func TestDeductionTotals_IgnoresEmptyLastName(t *testing.T) {
	agg := NewDeductionAggregator()

	employees := []employee.Employee{
		{ID: 1, FirstName: "Ann", HourlyWage: dec("10"), CommissionPct: dec("0")},
	}
	events := []deduction.Event{
		{ID: 1, Label: "misc loss", AmountMinor: 100, Date: juneDay(3)},
	}

	// nil last name must not match everything via the empty substring
	totals, flagged := agg.Totals(employees, events)

	assert.Empty(t, flagged)
	assert.True(t, totals[1].IsZero())
}

func TestEventAmount_ConvertsMinorUnits(t *testing.T) {
	e := deduction.Event{AmountMinor: 1234}
	assert.True(t, e.Amount().Equal(dec("12.34")))
}
