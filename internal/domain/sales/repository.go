package sales

import (
	"context"
	"time"
)

type SalesRepository interface {
	// ListRange returns one figure per day that has revenue recorded inside
	// [from, to], ordered by date. Days without a row count as zero revenue.
	ListRange(ctx context.Context, from, to time.Time) ([]Figure, error)
}
