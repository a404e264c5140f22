package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/ANDREYDEN/acacio-sub000/internal/domain/sales"
	"github.com/ANDREYDEN/acacio-sub000/internal/pkg/database"
)

type salesRepository struct {
	db *database.DB
}

func NewSalesRepository(db *database.DB) sales.SalesRepository {
	return &salesRepository{db: db}
}

func (r *salesRepository) ListRange(ctx context.Context, from, to time.Time) ([]sales.Figure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date, amount
		FROM daily_sales
		WHERE date >= $1 AND date <= $2
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales figures: %w", err)
	}
	defer rows.Close()

	var figures []sales.Figure
	for rows.Next() {
		var f sales.Figure
		if err := rows.Scan(&f.Date, &f.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan sales figure: %w", err)
		}
		figures = append(figures, f)
	}

	return figures, rows.Err()
}
