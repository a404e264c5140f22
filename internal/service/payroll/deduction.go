package payroll

import (
	"strings"

	"github.com/ANDREYDEN/acacio-sub000/internal/domain/deduction"
	"github.com/ANDREYDEN/acacio-sub000/internal/domain/employee"
	"github.com/ANDREYDEN/acacio-sub000/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// DeductionAggregator attributes named deduction events to employees by
// fuzzy name matching and sums the totals per employee.
type DeductionAggregator struct {
}

func NewDeductionAggregator() *DeductionAggregator {
	return &DeductionAggregator{}
}

// Totals attributes each event to the employee whose first or last name the
// event label contains (case-insensitive substring). Events matching no
// employee are dropped. Events matching more than one employee are excluded
// from the totals and returned flagged for manual review; attribution is
// never guessed.
func (a *DeductionAggregator) Totals(
	employees []employee.Employee,
	events []deduction.Event,
) (map[int64]decimal.Decimal, []payroll.AmbiguousDeduction) {
	totals := make(map[int64]decimal.Decimal, len(employees))
	var flagged []payroll.AmbiguousDeduction

	for _, event := range events {
		label := strings.ToLower(event.Label)

		var matched []int64
		for _, emp := range employees {
			if matchesName(label, emp) {
				matched = append(matched, emp.ID)
			}
		}

		switch len(matched) {
		case 0:
			// unattributable, drop
		case 1:
			id := matched[0]
			totals[id] = totals[id].Add(event.Amount())
		default:
			flagged = append(flagged, payroll.AmbiguousDeduction{
				Event:       event,
				EmployeeIDs: matched,
			})
		}
	}

	return totals, flagged
}

func matchesName(lowerLabel string, emp employee.Employee) bool {
	first := strings.ToLower(strings.TrimSpace(emp.FirstName))
	if first != "" && strings.Contains(lowerLabel, first) {
		return true
	}
	if emp.LastName != nil {
		last := strings.ToLower(strings.TrimSpace(*emp.LastName))
		if last != "" && strings.Contains(lowerLabel, last) {
			return true
		}
	}
	return false
}
