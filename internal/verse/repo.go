package verse

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

// Cached returns the verse stored for a date, nil when none was cached.
func (r *Repo) Cached(ctx context.Context, date string) (_ *DailyVerse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "verse.repo.cached")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cached := &DailyVerse{Source: "cache"}
	err = r.db.QueryRow(ctx, `
		SELECT reference, text, category FROM verse_cache WHERE date = $1
	`, date).Scan(&cached.Reference, &cached.Text, &cached.Category)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cached verse: %w", err)
	}
	return cached, nil
}

// Cache stores the verse served for a date, replacing any previous one.
func (r *Repo) Cache(ctx context.Context, date string, verse *DailyVerse) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "verse.repo.cache")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, `
		INSERT INTO verse_cache (date, reference, text, category)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (date) DO UPDATE SET
			reference = EXCLUDED.reference,
			text = EXCLUDED.text,
			category = EXCLUDED.category
	`, date, verse.Reference, verse.Text, verse.Category)
	if err != nil {
		return fmt.Errorf("cache verse: %w", err)
	}
	return nil
}
