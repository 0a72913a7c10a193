package analytics

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/alexpan006/blockdash-api/internal/domain"
)

func (s *service) Inequality(ctx context.Context, coeff Coefficient, relation domain.RelationType, collectionSlug string, window domain.TimeWindow) (float64, error) {
	collection, err := s.resolveCollection(collectionSlug)
	if err != nil {
		return 0, err
	}
	if relation != domain.RelationTransacted && relation != domain.RelationMint {
		return 0, domain.ErrRelationTypeNotFound
	}

	amounts, err := s.graph.CountAccountEvents(ctx, relation, collection, window)
	if err != nil {
		return 0, fmt.Errorf("failed to count account events: %w", err)
	}

	switch coeff {
	case CoefficientNakamoto:
		return float64(Nakamoto(amounts)), nil
	default:
		return Gini(amounts), nil
	}
}

func (s *service) InequalityHistory(ctx context.Context, coeff Coefficient, relation domain.RelationType, collectionSlug string, window domain.TimeWindow) (*Series, error) {
	collection, err := s.resolveCollection(collectionSlug)
	if err != nil {
		return nil, err
	}

	series := &Series{}
	var monthErr error
	window.Months(func(year, month int) {
		if monthErr != nil {
			return
		}

		var amounts []int64
		var err error
		if relation == domain.RelationOwned {
			amounts, err = s.graph.CountAccountOwnership(ctx, collection, year, month)
		} else {
			amounts, err = s.graph.CountAccountEvents(ctx, relation, collection, domain.MonthWindow(year, month))
		}
		if err != nil {
			monthErr = fmt.Errorf("failed to count %d-%02d amounts: %w", year, month, err)
			return
		}

		score := -1.0
		if len(amounts) > 0 {
			if coeff == CoefficientNakamoto {
				score = float64(Nakamoto(amounts))
			} else {
				score = Gini(amounts)
			}
		}
		series.Dates = append(series.Dates, fmt.Sprintf("%04d-%02d", year, month))
		series.Counts = append(series.Counts, score)
	})
	if monthErr != nil {
		return nil, monthErr
	}
	return series, nil
}

// Gini computes the Gini coefficient of the amounts by mean absolute
// difference, rounded to four decimals. Empty input reports -1: no activity
// is not the same as perfect equality.
func Gini(amounts []int64) float64 {
	n := len(amounts)
	if n == 0 {
		return -1
	}

	var total int64
	for _, amount := range amounts {
		total += amount
	}
	mean := float64(total) / float64(n)

	var diffSum float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			diffSum += math.Abs(float64(amounts[i] - amounts[j]))
		}
	}

	gini := diffSum / (2*float64(n)*float64(n)*mean + 1e-7)
	return math.Round(gini*10000) / 10000
}

// Nakamoto computes the minimum number of top accounts holding more than
// half of the total amount. Zero totals report 0.
func Nakamoto(amounts []int64) int {
	sorted := make([]int64, len(amounts))
	copy(sorted, amounts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] > sorted[j] })

	var total int64
	for _, amount := range sorted {
		total += amount
	}
	if total == 0 {
		return 0
	}

	var cumulative int64
	for i, amount := range sorted {
		cumulative += amount
		if float64(cumulative) > 0.5*float64(total) {
			return i + 1
		}
	}
	return len(sorted)
}
