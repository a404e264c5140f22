package sales

import (
	"time"

	"github.com/shopspring/decimal"
)

// Figure is one day's aggregate revenue for the business, as reported by the
// sales feed. The feed is read-only for payroll purposes.
type Figure struct {
	Date   time.Time
	Amount decimal.Decimal
}
