package deduction

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event is a named charge from the waste/loss feed. The feed reports
// amounts in minor currency units; Amount converts to major units.
type Event struct {
	ID          int64
	Label       string
	AmountMinor int64
	Date        time.Time
}

var minorUnitsPerMajor = decimal.NewFromInt(100)

// Amount returns the event total in major currency units.
func (e Event) Amount() decimal.Decimal {
	return decimal.NewFromInt(e.AmountMinor).Div(minorUnitsPerMajor)
}
