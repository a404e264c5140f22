package deduction

import (
	"context"
	"time"
)

type DeductionRepository interface {
	// ListRange returns the named deduction events recorded inside [from, to].
	ListRange(ctx context.Context, from, to time.Time) ([]Event, error)
}
