package verse

import (
	"context"
	"time"

	"github.com/realjbmangum/clarkstark/internal/clock"

	log "github.com/sirupsen/logrus"
)

type verseStore interface {
	Cached(ctx context.Context, date string) (*DailyVerse, error)
	Cache(ctx context.Context, date string, verse *DailyVerse) error
}

type passageClient interface {
	GetPassage(ctx context.Context, reference string) (*Passage, error)
}

// Service picks the verse of the day. The first request of a day decides
// the verse and caches it, every later request that day serves the
// cached one regardless of workout type.
type Service struct {
	store  verseStore
	client passageClient

	now func() time.Time
}

// NewService creates the verse service. client may be nil when no API
// key is configured, the curated text is served directly then.
func NewService(store verseStore, client passageClient) *Service {
	return &Service{
		store:  store,
		client: client,
		now:    time.Now,
	}
}

func (s *Service) VerseOfTheDay(ctx context.Context, workoutType string) *DailyVerse {
	now := s.now()
	today := clock.TodayAt(now)

	cached, err := s.store.Cached(ctx, today)
	if err != nil {
		log.Errorf("verse cache lookup failed: %s", err)
	} else if cached != nil {
		return cached
	}

	category := categoryForWorkoutType(workoutType)
	curated := category.Verses[now.In(clock.Eastern).YearDay()%len(category.Verses)]

	daily := &DailyVerse{
		Reference: curated.Reference,
		Text:      curated.Text,
		Category:  category.Name,
		Source:    "curated",
	}

	if s.client != nil {
		passage, err := s.client.GetPassage(ctx, curated.Reference)
		if err != nil {
			log.Errorf("fetch passage %s: %s", curated.Reference, err)
		} else {
			daily.Reference = passage.Reference
			daily.Text = passage.Text
			daily.Source = "api-nlt"
		}
	}

	if err := s.store.Cache(ctx, today, daily); err != nil {
		log.Errorf("failed to cache verse for %s: %s", today, err)
	}

	return daily
}
