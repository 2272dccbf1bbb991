package goals

import (
	"context"
	"errors"
	"fmt"

	"github.com/realjbmangum/clarkstark/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrGoalNotFound = errors.New("goal not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// List returns all goals, open ones first, newest within each group.
func (r *Repo) List(ctx context.Context) (_ []Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "goals.repo.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, type, target_value, target_date, current_value, unit, description, achieved, created_at
		FROM goals
		ORDER BY achieved ASC, created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query goals: %w", err)
	}
	defer rows.Close()

	var goals []Goal
	for rows.Next() {
		var g Goal
		if err := rows.Scan(
			&g.ID, &g.Type, &g.TargetValue, &g.TargetDate,
			&g.CurrentValue, &g.Unit, &g.Description, &g.Achieved, &g.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (r *Repo) Add(ctx context.Context, goal *Goal) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "goals.repo.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id int
	err = r.db.QueryRow(ctx, `
		INSERT INTO goals (type, target_value, target_date, current_value, unit, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, goal.Type, goal.TargetValue, goal.TargetDate,
		goal.CurrentValue, goal.Unit, goal.Description,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert goal: %w", err)
	}
	return id, nil
}

func (r *Repo) Update(ctx context.Context, goal *Goal) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "goals.repo.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		UPDATE goals
		SET type = $1, target_value = $2, target_date = $3,
			current_value = $4, unit = $5, description = $6
		WHERE id = $7
	`, goal.Type, goal.TargetValue, goal.TargetDate,
		goal.CurrentValue, goal.Unit, goal.Description, goal.ID,
	)
	if err != nil {
		return fmt.Errorf("update goal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func (r *Repo) UpdateProgress(ctx context.Context, id int, currentValue float64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "goals.repo.updateProgress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx,
		`UPDATE goals SET current_value = $1 WHERE id = $2`,
		currentValue, id,
	)
	if err != nil {
		return fmt.Errorf("update goal progress: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func (r *Repo) MarkAchieved(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "goals.repo.markAchieved")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `UPDATE goals SET achieved = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark goal achieved: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "goals.repo.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM goals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}
