package supplements

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/realjbmangum/clarkstark/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrSupplementNotFound = errors.New("supplement not found")

// Repo stores the supplement stack plus the per-date checklist of taken
// supplement ids. The checklist lives in daily_checklist as a JSON array.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// List returns all supplements ordered by timing then name.
func (r *Repo) List(ctx context.Context) (_ []Supplement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "supplements.repo.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, name, dosage, timing, notes, active
		FROM supplements
		ORDER BY timing, name
	`)
	if err != nil {
		return nil, fmt.Errorf("query supplements: %w", err)
	}
	defer rows.Close()

	var supplements []Supplement
	for rows.Next() {
		var s Supplement
		if err := rows.Scan(&s.ID, &s.Name, &s.Dosage, &s.Timing, &s.Notes, &s.Active); err != nil {
			return nil, fmt.Errorf("scan supplement: %w", err)
		}
		supplements = append(supplements, s)
	}
	return supplements, rows.Err()
}

func (r *Repo) Add(ctx context.Context, s *Supplement) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "supplements.repo.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id int
	err = r.db.QueryRow(ctx, `
		INSERT INTO supplements (name, dosage, timing, notes, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, s.Name, s.Dosage, s.Timing, s.Notes, s.Active).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert supplement: %w", err)
	}
	return id, nil
}

func (r *Repo) Update(ctx context.Context, s *Supplement) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "supplements.repo.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		UPDATE supplements
		SET name = $1, dosage = $2, timing = $3, notes = $4, active = $5
		WHERE id = $6
	`, s.Name, s.Dosage, s.Timing, s.Notes, s.Active, s.ID)
	if err != nil {
		return fmt.Errorf("update supplement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSupplementNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "supplements.repo.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM supplements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSupplementNotFound
	}
	return nil
}

// TakenOn returns the ids of the supplements checked off for the date. A
// missing checklist row, or one with unparseable JSON, is an empty list.
func (r *Repo) TakenOn(ctx context.Context, date string) (_ []int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "supplements.repo.takenOn")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var takenJson string
	err = r.db.QueryRow(ctx,
		`SELECT supplements_taken FROM daily_checklist WHERE date = $1`,
		date,
	).Scan(&takenJson)
	if errors.Is(err, pgx.ErrNoRows) {
		return []int{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get daily checklist: %w", err)
	}

	var taken []int
	if err := json.Unmarshal([]byte(takenJson), &taken); err != nil {
		return []int{}, nil
	}
	return taken, nil
}

// SetTaken checks or unchecks one supplement for the date, within a
// transaction so two quick taps do not lose each other's updates.
func (r *Repo) SetTaken(ctx context.Context, date string, supplementID int, taken bool) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "supplements.repo.setTaken")
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

	var current []int
	var takenJson string
	err = tx.QueryRow(ctx,
		`SELECT supplements_taken FROM daily_checklist WHERE date = $1 FOR UPDATE`,
		date,
	).Scan(&takenJson)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("get daily checklist: %w", err)
	}
	if err == nil {
		if unmarshalErr := json.Unmarshal([]byte(takenJson), &current); unmarshalErr != nil {
			current = nil
		}
	}
	err = nil

	if taken {
		if !slices.Contains(current, supplementID) {
			current = append(current, supplementID)
		}
	} else {
		current = slices.DeleteFunc(current, func(id int) bool {
			return id == supplementID
		})
	}
	if current == nil {
		current = []int{}
	}

	updatedJson, err := json.Marshal(current)
	if err != nil {
		return fmt.Errorf("marshal checklist: %w", err)
	}

	if _, err = tx.Exec(ctx, `
		INSERT INTO daily_checklist (date, supplements_taken)
		VALUES ($1, $2)
		ON CONFLICT (date) DO UPDATE SET supplements_taken = EXCLUDED.supplements_taken
	`, date, string(updatedJson)); err != nil {
		return fmt.Errorf("upsert daily checklist: %w", err)
	}

	return nil
}
