package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/ANDREYDEN/acacio-sub000/internal/domain/deduction"
	"github.com/ANDREYDEN/acacio-sub000/internal/pkg/database"
)

type deductionRepository struct {
	db *database.DB
}

func NewDeductionRepository(db *database.DB) deduction.DeductionRepository {
	return &deductionRepository{db: db}
}

func (r *deductionRepository) ListRange(ctx context.Context, from, to time.Time) ([]deduction.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, label, amount_minor, date
		FROM deduction_events
		WHERE date >= $1 AND date <= $2
		ORDER BY date, id
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list deduction events: %w", err)
	}
	defer rows.Close()

	var events []deduction.Event
	for rows.Next() {
		var e deduction.Event
		if err := rows.Scan(&e.ID, &e.Label, &e.AmountMinor, &e.Date); err != nil {
			return nil, fmt.Errorf("failed to scan deduction event: %w", err)
		}
		events = append(events, e)
	}

	return events, rows.Err()
}
