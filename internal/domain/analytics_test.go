package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRankScope(t *testing.T) {
	scope, err := ParseRankScope("Concentration_Ownership")
	require.NoError(t, err)
	assert.Equal(t, RankConcentrationOwnership, scope)

	_, err = ParseRankScope("velocity")
	assert.ErrorIs(t, err, ErrRankScopeNotFound)
}

func TestParseRelationType(t *testing.T) {
	relation, err := ParseRelationType("MINT")
	require.NoError(t, err)
	assert.Equal(t, RelationMint, relation)

	_, err = ParseRelationType("staked")
	assert.ErrorIs(t, err, ErrRelationTypeNotFound)
}

func TestTimeWindowValidate(t *testing.T) {
	valid := TimeWindow{YearFrom: 2023, YearTo: 2024, MonthFrom: 7, MonthTo: 6}
	assert.NoError(t, valid.Validate())

	badMonth := TimeWindow{YearFrom: 2024, YearTo: 2024, MonthFrom: 0, MonthTo: 12}
	assert.Error(t, badMonth.Validate())

	inverted := TimeWindow{YearFrom: 2024, YearTo: 2024, MonthFrom: 6, MonthTo: 1}
	assert.Error(t, inverted.Validate())
}

func TestTimeWindowBounds(t *testing.T) {
	window := TimeWindow{YearFrom: 2024, YearTo: 2024, MonthFrom: 2, MonthTo: 2}
	start, end := window.Bounds()

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC).Unix(), start)
	// Leap February runs through the 29th
	assert.Equal(t, time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC).Unix(), end)
}

func TestTimeWindowMonths(t *testing.T) {
	window := TimeWindow{YearFrom: 2023, YearTo: 2024, MonthFrom: 11, MonthTo: 2}

	var months []string
	window.Months(func(year, month int) {
		months = append(months, time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01"))
	})
	assert.Equal(t, []string{"2023-11", "2023-12", "2024-01", "2024-02"}, months)
}

func TestTimeWindowDays(t *testing.T) {
	window := TimeWindow{YearFrom: 2024, YearTo: 2024, MonthFrom: 2, MonthTo: 2}

	var days []string
	window.Days(func(day string) {
		days = append(days, day)
	})
	require.Len(t, days, 29)
	assert.Equal(t, "2024-02-01", days[0])
	assert.Equal(t, "2024-02-29", days[28])
}
