package bonus

import (
	"context"
	"time"
)

type BonusRepository interface {
	ListForMonth(ctx context.Context, year int, month time.Month) ([]Bonus, error)
	// GetByEmployeeAndMonth returns nil when the employee has no bonus for
	// the period.
	GetByEmployeeAndMonth(ctx context.Context, employeeID int64, year int, month time.Month) (*Bonus, error)
	Insert(ctx context.Context, b Bonus) (Bonus, error)
	Update(ctx context.Context, b Bonus) error
	Delete(ctx context.Context, id int64) error
}
