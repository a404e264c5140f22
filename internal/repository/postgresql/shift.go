package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/ANDREYDEN/acacio-sub000/internal/domain/shift"
	"github.com/ANDREYDEN/acacio-sub000/internal/pkg/database"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

func (r *shiftRepository) ListForMonth(ctx context.Context, year int, month time.Month) (shift.Ledger, error) {
	q := GetQuerier(ctx, r.db)

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	query := `
		SELECT id, employee_id, date, duration
		FROM shifts
		WHERE date >= $1 AND date < $2
		ORDER BY date, employee_id
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var ledger shift.Ledger
	for rows.Next() {
		var s shift.Shift
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.Date, &s.Duration); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		ledger = append(ledger, s)
	}

	return ledger, rows.Err()
}

func (r *shiftRepository) Insert(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (employee_id, date, duration)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := q.QueryRow(ctx, query, s.EmployeeID, s.Date, s.Duration).Scan(&s.ID)
	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to insert shift: %w", err)
	}

	return s, nil
}

func (r *shiftRepository) Update(ctx context.Context, s shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE shifts SET duration = $1 WHERE id = $2`, s.Duration, s.ID)
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

func (r *shiftRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}
