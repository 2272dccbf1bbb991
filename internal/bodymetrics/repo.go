package bodymetrics

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

// Upsert writes the metric for its date, replacing any previous entry for
// the same day.
func (r *Repo) Upsert(ctx context.Context, metric *Metric) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "bodymetrics.repo.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, `
		INSERT INTO body_metrics (date, weight, waist, chest, arms, thighs, neck, body_fat, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (date) DO UPDATE SET
			weight = EXCLUDED.weight,
			waist = EXCLUDED.waist,
			chest = EXCLUDED.chest,
			arms = EXCLUDED.arms,
			thighs = EXCLUDED.thighs,
			neck = EXCLUDED.neck,
			body_fat = EXCLUDED.body_fat,
			notes = EXCLUDED.notes
	`, metric.Date, metric.Weight, metric.Waist, metric.Chest,
		metric.Arms, metric.Thighs, metric.Neck, metric.BodyFat, metric.Notes,
	)
	if err != nil {
		return fmt.Errorf("upsert body metric: %w", err)
	}
	return nil
}

// GetByDate returns the metric for one date, nil when none was logged.
func (r *Repo) GetByDate(ctx context.Context, date string) (_ *Metric, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "bodymetrics.repo.getByDate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	m := &Metric{}
	err = r.db.QueryRow(ctx, `
		SELECT id, date, weight, waist, chest, arms, thighs, neck, body_fat, notes
		FROM body_metrics WHERE date = $1
	`, date).Scan(
		&m.ID, &m.Date, &m.Weight, &m.Waist, &m.Chest,
		&m.Arms, &m.Thighs, &m.Neck, &m.BodyFat, &m.Notes,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get body metric: %w", err)
	}
	return m, nil
}

// GetEarliest returns the oldest logged metric, nil when the table is
// empty. The dashboard uses it as the starting point for progress.
func (r *Repo) GetEarliest(ctx context.Context) (_ *Metric, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "bodymetrics.repo.getEarliest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	m := &Metric{}
	err = r.db.QueryRow(ctx, `
		SELECT id, date, weight, waist, chest, arms, thighs, neck, body_fat, notes
		FROM body_metrics ORDER BY date ASC LIMIT 1
	`).Scan(
		&m.ID, &m.Date, &m.Weight, &m.Waist, &m.Chest,
		&m.Arms, &m.Thighs, &m.Neck, &m.BodyFat, &m.Notes,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get earliest body metric: %w", err)
	}
	return m, nil
}

// GetRecent returns the most recent metrics up to the given limit, newest
// first.
func (r *Repo) GetRecent(ctx context.Context, limit int) (_ []Metric, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "bodymetrics.repo.getRecent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, date, weight, waist, chest, arms, thighs, neck, body_fat, notes
		FROM body_metrics
		ORDER BY date DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query body metrics: %w", err)
	}
	defer rows.Close()

	var metrics []Metric
	for rows.Next() {
		var m Metric
		if err := rows.Scan(
			&m.ID, &m.Date, &m.Weight, &m.Waist, &m.Chest,
			&m.Arms, &m.Thighs, &m.Neck, &m.BodyFat, &m.Notes,
		); err != nil {
			return nil, fmt.Errorf("scan body metric: %w", err)
		}
		metrics = append(metrics, m)
	}
	return metrics, rows.Err()
}
