package shift

import (
	"context"
	"time"
)

type ShiftRepository interface {
	ListForMonth(ctx context.Context, year int, month time.Month) (Ledger, error)
	Insert(ctx context.Context, s Shift) (Shift, error)
	Update(ctx context.Context, s Shift) error
	Delete(ctx context.Context, id int64) error
}
