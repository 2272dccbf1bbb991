package nutrition

import (
	"context"
	"errors"
	"fmt"

	"github.com/realjbmangum/clarkstark/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// AddMeal inserts the meal and folds its macros into the daily summary, in
// one transaction.
func (r *Repo) AddMeal(ctx context.Context, meal *Meal) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutrition.repo.addMeal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `
		INSERT INTO meals (date, meal_type, description, calories, protein, carbs, fat)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, meal.Date, meal.MealType, meal.Description,
		meal.Calories, meal.Protein, meal.Carbs, meal.Fat,
	); err != nil {
		return fmt.Errorf("insert meal: %w", err)
	}

	if _, err = tx.Exec(ctx, `
		INSERT INTO nutrition_log (date, calories, protein, carbs, fat)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (date) DO UPDATE SET
			calories = nutrition_log.calories + EXCLUDED.calories,
			protein = nutrition_log.protein + EXCLUDED.protein,
			carbs = nutrition_log.carbs + EXCLUDED.carbs,
			fat = nutrition_log.fat + EXCLUDED.fat
	`, meal.Date, meal.Calories, meal.Protein, meal.Carbs, meal.Fat); err != nil {
		return fmt.Errorf("update daily summary: %w", err)
	}

	return nil
}

// SetDailySummary overwrites the day's summary with the given totals.
func (r *Repo) SetDailySummary(ctx context.Context, summary *DailySummary) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutrition.repo.setDailySummary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, `
		INSERT INTO nutrition_log (date, calories, protein, carbs, fat, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (date) DO UPDATE SET
			calories = EXCLUDED.calories,
			protein = EXCLUDED.protein,
			carbs = EXCLUDED.carbs,
			fat = EXCLUDED.fat,
			notes = EXCLUDED.notes
	`, summary.Date, summary.Calories, summary.Protein,
		summary.Carbs, summary.Fat, summary.Notes,
	)
	if err != nil {
		return fmt.Errorf("set daily summary: %w", err)
	}
	return nil
}

// GetDay returns the day's summary (nil when nothing logged) and its meals
// ordered by meal type.
func (r *Repo) GetDay(ctx context.Context, date string) (_ *DailySummary, _ []Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutrition.repo.getDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	summary := &DailySummary{}
	err = r.db.QueryRow(ctx, `
		SELECT date, calories, protein, carbs, fat, notes
		FROM nutrition_log WHERE date = $1
	`, date).Scan(
		&summary.Date, &summary.Calories, &summary.Protein,
		&summary.Carbs, &summary.Fat, &summary.Notes,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		summary = nil
	} else if err != nil {
		return nil, nil, fmt.Errorf("get daily summary: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, date, meal_type, description, calories, protein, carbs, fat
		FROM meals
		WHERE date = $1
		ORDER BY meal_type
	`, date)
	if err != nil {
		return nil, nil, fmt.Errorf("query meals: %w", err)
	}
	defer rows.Close()

	var meals []Meal
	for rows.Next() {
		var m Meal
		if err := rows.Scan(
			&m.ID, &m.Date, &m.MealType, &m.Description,
			&m.Calories, &m.Protein, &m.Carbs, &m.Fat,
		); err != nil {
			return nil, nil, fmt.Errorf("scan meal: %w", err)
		}
		meals = append(meals, m)
	}
	return summary, meals, rows.Err()
}

// GetSummaries returns daily summaries between the two dates inclusive,
// newest first.
func (r *Repo) GetSummaries(ctx context.Context, start, end string) (_ []DailySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutrition.repo.getSummaries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT date, calories, protein, carbs, fat, notes
		FROM nutrition_log
		WHERE date BETWEEN $1 AND $2
		ORDER BY date DESC
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("query summaries: %w", err)
	}
	return scanSummaries(rows)
}

// GetRecentSummaries returns the most recent daily summaries up to the
// given limit, newest first.
func (r *Repo) GetRecentSummaries(ctx context.Context, limit int) (_ []DailySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutrition.repo.getRecentSummaries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT date, calories, protein, carbs, fat, notes
		FROM nutrition_log
		ORDER BY date DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent summaries: %w", err)
	}
	return scanSummaries(rows)
}

func scanSummaries(rows pgx.Rows) ([]DailySummary, error) {
	defer rows.Close()

	var summaries []DailySummary
	for rows.Next() {
		var s DailySummary
		if err := rows.Scan(
			&s.Date, &s.Calories, &s.Protein, &s.Carbs, &s.Fat, &s.Notes,
		); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
