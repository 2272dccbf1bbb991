package challenge

import (
	"context"
	"fmt"

	"github.com/realjbmangum/clarkstark/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo runs the weekly aggregate queries behind challenge progress. All
// methods take the week anchor date (Monday, YYYY-MM-DD) and count only rows
// on or after it.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) CompletedWorkoutsSince(ctx context.Context, monday string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "challenge.repo.completedWorkoutsSince")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM workout_log WHERE date >= $1 AND completed = TRUE`,
		monday,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("count completed workouts: %w", err)
	}
	return count, nil
}

func (r *Repo) WeekdayWorkoutsSince(ctx context.Context, monday string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "challenge.repo.weekdayWorkoutsSince")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM workout_log
			WHERE date >= $1
			AND completed = TRUE
			AND EXTRACT(ISODOW FROM date::date) BETWEEN 1 AND 5`,
		monday,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("count weekday workouts: %w", err)
	}
	return count, nil
}

// ProteinDaysSince counts the distinct days whose summed protein met the
// target.
func (r *Repo) ProteinDaysSince(ctx context.Context, monday string, target int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "challenge.repo.proteinDaysSince")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM (
			SELECT date FROM meals
			WHERE date >= $1
			GROUP BY date
			HAVING SUM(protein) >= $2
		) AS hit_days`,
		monday, target,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("count protein days: %w", err)
	}
	return count, nil
}

// WaterDaysSince counts the distinct days whose summed water volume met the
// target.
func (r *Repo) WaterDaysSince(ctx context.Context, monday string, target float64) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "challenge.repo.waterDaysSince")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM (
			SELECT date FROM water_log
			WHERE date >= $1
			GROUP BY date
			HAVING SUM(amount_liters) >= $2
		) AS hit_days`,
		monday, target,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("count water days: %w", err)
	}
	return count, nil
}
