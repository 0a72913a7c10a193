package domain

import (
	"fmt"
	"strings"
	"time"
)

// RankScope selects what an activity ranking counts
type RankScope string

const (
	// RankAccountTransaction ranks accounts by transaction count
	RankAccountTransaction RankScope = "account_transaction"
	// RankConcentrationOwnership ranks accounts by held ownership edges
	RankConcentrationOwnership RankScope = "concentration_ownership"
	// RankContribution ranks accounts by minted tokens
	RankContribution RankScope = "contribution"
	// RankOwnershipChanges ranks tokens by ownership turnover. Only defined
	// for a concrete collection, since identifiers repeat across collections.
	RankOwnershipChanges RankScope = "ownership_changes"
)

// ParseRankScope maps a ranking scope label to a RankScope. Unknown labels
// are rejected with ErrRankScopeNotFound.
func ParseRankScope(s string) (RankScope, error) {
	switch RankScope(strings.ToLower(s)) {
	case RankAccountTransaction:
		return RankAccountTransaction, nil
	case RankConcentrationOwnership:
		return RankConcentrationOwnership, nil
	case RankContribution:
		return RankContribution, nil
	case RankOwnershipChanges:
		return RankOwnershipChanges, nil
	default:
		return "", ErrRankScopeNotFound
	}
}

// RelationType names one of the three edge types of the graph
type RelationType string

const (
	RelationTransacted RelationType = "transacted"
	RelationMint       RelationType = "mint"
	RelationOwned      RelationType = "owned"
)

// ParseRelationType maps a relationship label to a RelationType. Unknown
// labels are rejected with ErrRelationTypeNotFound.
func ParseRelationType(s string) (RelationType, error) {
	switch RelationType(strings.ToLower(s)) {
	case RelationTransacted:
		return RelationTransacted, nil
	case RelationMint:
		return RelationMint, nil
	case RelationOwned:
		return RelationOwned, nil
	default:
		return "", ErrRelationTypeNotFound
	}
}

// TimeWindow is an inclusive month-granular time range. Temporal queries
// cover the first day of (YearFrom, MonthFrom) through the last day of
// (YearTo, MonthTo).
type TimeWindow struct {
	YearFrom  int `json:"year_from"`
	YearTo    int `json:"year_to"`
	MonthFrom int `json:"month_from"`
	MonthTo   int `json:"month_to"`
}

// Validate checks the months are calendar months and the window does not end
// before it starts
func (w TimeWindow) Validate() error {
	if w.MonthFrom < 1 || w.MonthFrom > 12 || w.MonthTo < 1 || w.MonthTo > 12 {
		return fmt.Errorf("months must be between 1 and 12")
	}
	if w.YearTo < w.YearFrom || (w.YearTo == w.YearFrom && w.MonthTo < w.MonthFrom) {
		return fmt.Errorf("time window ends before it starts")
	}
	return nil
}

// Bounds returns the window as inclusive unix-second bounds
func (w TimeWindow) Bounds() (start, end int64) {
	first := time.Date(w.YearFrom, time.Month(w.MonthFrom), 1, 0, 0, 0, 0, time.UTC)
	next := time.Date(w.YearTo, time.Month(w.MonthTo), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return first.Unix(), next.Unix() - 1
}

// Months calls fn for every (year, month) the window covers, in order
func (w TimeWindow) Months(fn func(year, month int)) {
	year, month := w.YearFrom, w.MonthFrom
	for year < w.YearTo || (year == w.YearTo && month <= w.MonthTo) {
		fn(year, month)
		if month == 12 {
			month = 1
			year++
		} else {
			month++
		}
	}
}

// MonthWindow returns the single-month window covering (year, month)
func MonthWindow(year, month int) TimeWindow {
	return TimeWindow{YearFrom: year, YearTo: year, MonthFrom: month, MonthTo: month}
}

// Days calls fn for every day the window covers, formatted as YYYY-MM-DD
func (w TimeWindow) Days(fn func(day string)) {
	current := time.Date(w.YearFrom, time.Month(w.MonthFrom), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(w.YearTo, time.Month(w.MonthTo), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1)
	for !current.After(end) {
		fn(current.Format("2006-01-02"))
		current = current.AddDate(0, 0, 1)
	}
}
