package workouts

import (
	"context"
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

// Add inserts the workout log together with its exercise sets in one
// transaction and returns the new workout id.
func (r *Repo) Add(ctx context.Context, workout *Workout) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.repo.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
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

	var workoutID int
	err = tx.QueryRow(ctx, `
		INSERT INTO workout_log (date, template_id, workout_name, duration_minutes, notes, energy_level, completed)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, workout.Date, workout.TemplateID, workout.WorkoutName,
		workout.DurationMinutes, workout.Notes, workout.EnergyLevel, workout.Completed,
	).Scan(&workoutID)
	if err != nil {
		return 0, fmt.Errorf("insert workout log: %w", err)
	}

	for _, ex := range workout.Exercises {
		if _, err = tx.Exec(ctx, `
			INSERT INTO exercise_log (workout_log_id, exercise_name, set_number, reps, weight, notes)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, workoutID, ex.ExerciseName, ex.SetNumber, ex.Reps, ex.Weight, ex.Notes); err != nil {
			return 0, fmt.Errorf("insert exercise log: %w", err)
		}
	}

	return workoutID, nil
}

// GetByDate returns the workouts logged for one date, newest first, each
// with its exercise sets filled in.
func (r *Repo) GetByDate(ctx context.Context, date string) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.repo.getByDate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, date, template_id, workout_name, duration_minutes, notes, energy_level, completed, created_at
		FROM workout_log
		WHERE date = $1
		ORDER BY created_at DESC
	`, date)
	if err != nil {
		return nil, fmt.Errorf("query workouts: %w", err)
	}

	workouts, err := scanWorkouts(rows)
	if err != nil {
		return nil, err
	}

	for i := range workouts {
		exercises, err := r.exercisesFor(ctx, workouts[i].ID)
		if err != nil {
			return nil, err
		}
		workouts[i].Exercises = exercises
	}

	return workouts, nil
}

// GetRange returns the workouts between the two dates inclusive, newest
// first, without exercise sets.
func (r *Repo) GetRange(ctx context.Context, start, end string) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.repo.getRange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, date, template_id, workout_name, duration_minutes, notes, energy_level, completed, created_at
		FROM workout_log
		WHERE date BETWEEN $1 AND $2
		ORDER BY date DESC
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("query workouts range: %w", err)
	}

	return scanWorkouts(rows)
}

// GetRecent returns the most recent workouts up to the given limit, without
// exercise sets.
func (r *Repo) GetRecent(ctx context.Context, limit int) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.repo.getRecent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, date, template_id, workout_name, duration_minutes, notes, energy_level, completed, created_at
		FROM workout_log
		ORDER BY date DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent workouts: %w", err)
	}

	return scanWorkouts(rows)
}

func (r *Repo) exercisesFor(ctx context.Context, workoutID int) ([]ExerciseSet, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, exercise_name, set_number, reps, weight, notes
		FROM exercise_log
		WHERE workout_log_id = $1
		ORDER BY set_number
	`, workoutID)
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}
	defer rows.Close()

	var exercises []ExerciseSet
	for rows.Next() {
		var ex ExerciseSet
		if err := rows.Scan(&ex.ID, &ex.ExerciseName, &ex.SetNumber, &ex.Reps, &ex.Weight, &ex.Notes); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		exercises = append(exercises, ex)
	}
	return exercises, rows.Err()
}

func scanWorkouts(rows pgx.Rows) ([]Workout, error) {
	defer rows.Close()

	var workouts []Workout
	for rows.Next() {
		var w Workout
		if err := rows.Scan(
			&w.ID, &w.Date, &w.TemplateID, &w.WorkoutName,
			&w.DurationMinutes, &w.Notes, &w.EnergyLevel, &w.Completed, &w.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}
