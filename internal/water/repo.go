package water

import (
	"context"
	"fmt"

	"github.com/realjbmangum/clarkstark/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// Add logs one drink and returns the day's new total.
func (r *Repo) Add(ctx context.Context, date string, amountLiters float64) (_ float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "water.repo.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err = r.db.Exec(ctx,
		`INSERT INTO water_log (date, amount_liters) VALUES ($1, $2)`,
		date, amountLiters,
	); err != nil {
		return 0, fmt.Errorf("insert water log: %w", err)
	}

	return r.DayTotal(ctx, date)
}

func (r *Repo) DayTotal(ctx context.Context, date string) (_ float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "water.repo.dayTotal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var total float64
	if err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount_liters), 0) FROM water_log WHERE date = $1`,
		date,
	).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum water log: %w", err)
	}
	return total, nil
}

func (r *Repo) Entries(ctx context.Context, date string) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "water.repo.entries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, amount_liters, logged_at
		FROM water_log
		WHERE date = $1
		ORDER BY logged_at
	`, date)
	if err != nil {
		return nil, fmt.Errorf("query water log: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Amount, &e.LoggedAt); err != nil {
			return nil, fmt.Errorf("scan water entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
