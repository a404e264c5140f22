package payroll

import (
	"context"
	"time"
)

type PayrollService interface {
	// GetTable recomputes the complete payroll table for the month from
	// fresh snapshots of all four sources.
	GetTable(ctx context.Context, year int, month time.Month) (TableResponse, error)
}
