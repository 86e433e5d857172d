package service

import (
	"context"
	"fmt"

	"github.com/Rrens/autocatalog/internal/feed"
	"github.com/rs/zerolog/log"
)

// FeedFetcher retrieves vehicle records from the external feed
type FeedFetcher interface {
	FetchVehicles(ctx context.Context) ([]feed.VehicleRecord, error)
}

// SyncService pulls the external feed into the reference tables. Runs are
// best-effort and idempotent: each record upserts its make, model and year,
// so a rerun after a partial failure converges to the same state.
type SyncService struct {
	feed    FeedFetcher
	makes   CarMakeRepository
	models  CarModelRepository
	years   CarYearRepository
	cache   PageCache
	minYear int
	maxYear int
}

// NewSyncService creates a new sync service
func NewSyncService(fetcher FeedFetcher, makes CarMakeRepository, models CarModelRepository, years CarYearRepository, cache PageCache, minYear, maxYear int) *SyncService {
	return &SyncService{
		feed:    fetcher,
		makes:   makes,
		models:  models,
		years:   years,
		cache:   cache,
		minYear: minYear,
		maxYear: maxYear,
	}
}

// Run fetches the feed and upserts every record inside the configured year
// window. Returns the number of records synced.
func (s *SyncService) Run(ctx context.Context) (int, error) {
	records, err := s.feed.FetchVehicles(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch feed: %w", err)
	}

	// Memoize upserted IDs within the run; feeds repeat makes and models
	// across thousands of records.
	makeIDs := make(map[string]int64)
	modelIDs := make(map[string]int64)

	synced := 0
	skipped := 0
	for _, rec := range records {
		if rec.Make == "" || rec.Model == "" || rec.Year < s.minYear || rec.Year > s.maxYear {
			skipped++
			continue
		}

		makeID, ok := makeIDs[rec.Make]
		if !ok {
			makeID, err = s.makes.Upsert(ctx, rec.Make)
			if err != nil {
				return synced, fmt.Errorf("failed to sync make %q: %w", rec.Make, err)
			}
			makeIDs[rec.Make] = makeID
		}

		modelKey := fmt.Sprintf("%d:%s", makeID, rec.Model)
		modelID, ok := modelIDs[modelKey]
		if !ok {
			modelID, err = s.models.Upsert(ctx, rec.Model, makeID)
			if err != nil {
				return synced, fmt.Errorf("failed to sync model %q: %w", rec.Model, err)
			}
			modelIDs[modelKey] = modelID
		}

		if _, err := s.years.Upsert(ctx, rec.Year, modelID); err != nil {
			return synced, fmt.Errorf("failed to sync year %d: %w", rec.Year, err)
		}

		synced++
	}

	if s.cache != nil && synced > 0 {
		for _, resource := range []string{resourceMakes, resourceModels, resourceYears} {
			if _, err := s.cache.Invalidate(ctx, resource); err != nil {
				log.Warn().Err(err).Str("resource", resource).Msg("Failed to invalidate listing cache after sync")
			}
		}
	}

	log.Info().
		Int("synced", synced).
		Int("skipped", skipped).
		Int("total", len(records)).
		Msg("Reference data sync completed")

	return synced, nil
}
