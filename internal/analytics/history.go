package analytics

import (
	"context"
	"fmt"

	"github.com/alexpan006/blockdash-api/internal/domain"
	"github.com/alexpan006/blockdash-api/internal/store"
)

func (s *service) EventHistory(ctx context.Context, relation domain.RelationType, collectionSlug string, window domain.TimeWindow) (*Series, error) {
	collection, err := s.resolveCollection(collectionSlug)
	if err != nil {
		return nil, err
	}

	counts, err := s.graph.CountDailyEvents(ctx, relation, collection, window)
	if err != nil {
		return nil, err
	}
	return fillDaily(window, counts), nil
}

func (s *service) ActiveAccountHistory(ctx context.Context, relations []domain.RelationType, collectionSlug string, window domain.TimeWindow) (*Series, error) {
	collection, err := s.resolveCollection(collectionSlug)
	if err != nil {
		return nil, err
	}

	transacted, mint := false, false
	for _, relation := range relations {
		switch relation {
		case domain.RelationTransacted:
			transacted = true
		case domain.RelationMint:
			mint = true
		}
	}
	if !transacted && !mint {
		return nil, domain.ErrRelationTypeNotFound
	}

	// An account active through both edge types counts once per type; the
	// per-day numbers are summed, not deduplicated across types
	byDay := make(map[string]int64)
	if transacted {
		counts, err := s.graph.CountDailyActiveAccounts(ctx, domain.RelationTransacted, collection, window)
		if err != nil {
			return nil, fmt.Errorf("failed to count transacting accounts: %w", err)
		}
		for _, c := range counts {
			byDay[c.Date] += c.Count
		}
	}
	if mint {
		counts, err := s.graph.CountDailyActiveAccounts(ctx, domain.RelationMint, collection, window)
		if err != nil {
			return nil, fmt.Errorf("failed to count minting accounts: %w", err)
		}
		for _, c := range counts {
			byDay[c.Date] += c.Count
		}
	}

	series := &Series{}
	window.Days(func(day string) {
		series.Dates = append(series.Dates, day)
		series.Counts = append(series.Counts, float64(byDay[day]))
	})
	return series, nil
}

// fillDaily spreads sparse daily counts over every day of the window so the
// series plots with one point per day
func fillDaily(window domain.TimeWindow, counts []store.DailyCount) *Series {
	byDay := make(map[string]int64, len(counts))
	for _, c := range counts {
		byDay[c.Date] = c.Count
	}

	series := &Series{}
	window.Days(func(day string) {
		series.Dates = append(series.Dates, day)
		series.Counts = append(series.Counts, float64(byDay[day]))
	})
	return series
}
