package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/ANDREYDEN/acacio-sub000/internal/domain/bonus"
	"github.com/ANDREYDEN/acacio-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type bonusRepository struct {
	db *database.DB
}

func NewBonusRepository(db *database.DB) bonus.BonusRepository {
	return &bonusRepository{db: db}
}

func (r *bonusRepository) ListForMonth(ctx context.Context, year int, month time.Month) ([]bonus.Bonus, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, amount, reason, period_month, period_year
		FROM bonuses
		WHERE period_year = $1 AND period_month = $2
		ORDER BY employee_id
	`

	rows, err := q.Query(ctx, query, year, int(month))
	if err != nil {
		return nil, fmt.Errorf("failed to list bonuses: %w", err)
	}
	defer rows.Close()

	var bonuses []bonus.Bonus
	for rows.Next() {
		var b bonus.Bonus
		if err := rows.Scan(&b.ID, &b.EmployeeID, &b.Amount, &b.Reason, &b.PeriodMonth, &b.PeriodYear); err != nil {
			return nil, fmt.Errorf("failed to scan bonus: %w", err)
		}
		bonuses = append(bonuses, b)
	}

	return bonuses, rows.Err()
}

func (r *bonusRepository) GetByEmployeeAndMonth(ctx context.Context, employeeID int64, year int, month time.Month) (*bonus.Bonus, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, amount, reason, period_month, period_year
		FROM bonuses
		WHERE employee_id = $1 AND period_year = $2 AND period_month = $3
	`

	var b bonus.Bonus
	err := q.QueryRow(ctx, query, employeeID, year, int(month)).Scan(
		&b.ID, &b.EmployeeID, &b.Amount, &b.Reason, &b.PeriodMonth, &b.PeriodYear,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get bonus: %w", err)
	}

	return &b, nil
}

func (r *bonusRepository) Insert(ctx context.Context, b bonus.Bonus) (bonus.Bonus, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO bonuses (employee_id, amount, reason, period_month, period_year)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := q.QueryRow(ctx, query, b.EmployeeID, b.Amount, b.Reason, b.PeriodMonth, b.PeriodYear).Scan(&b.ID)
	if err != nil {
		return bonus.Bonus{}, fmt.Errorf("failed to insert bonus: %w", err)
	}

	return b, nil
}

func (r *bonusRepository) Update(ctx context.Context, b bonus.Bonus) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE bonuses SET amount = $1, reason = $2 WHERE id = $3`, b.Amount, b.Reason, b.ID)
	if err != nil {
		return fmt.Errorf("failed to update bonus: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return bonus.ErrBonusNotFound
	}

	return nil
}

func (r *bonusRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM bonuses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete bonus: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return bonus.ErrBonusNotFound
	}

	return nil
}
