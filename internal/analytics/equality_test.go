package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexpan006/blockdash-api/internal/analytics"
)

func TestGini(t *testing.T) {
	tests := []struct {
		name     string
		amounts  []int64
		expected float64
	}{
		{
			name:     "no accounts",
			amounts:  nil,
			expected: -1,
		},
		{
			name:     "perfect equality",
			amounts:  []int64{5, 5, 5, 5},
			expected: 0,
		},
		{
			name:     "single holder",
			amounts:  []int64{10},
			expected: 0,
		},
		{
			name:     "full concentration",
			amounts:  []int64{100, 0, 0, 0},
			expected: 0.75,
		},
		{
			name:     "mixed amounts",
			amounts:  []int64{1, 2, 3, 4},
			expected: 0.25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, analytics.Gini(tt.amounts))
		})
	}
}

func TestNakamoto(t *testing.T) {
	tests := []struct {
		name     string
		amounts  []int64
		expected int
	}{
		{
			name:     "no accounts",
			amounts:  nil,
			expected: 0,
		},
		{
			name:     "zero total",
			amounts:  []int64{0, 0, 0},
			expected: 0,
		},
		{
			name:     "dominant holder",
			amounts:  []int64{60, 20, 10, 10},
			expected: 1,
		},
		{
			name:     "even split needs a majority",
			amounts:  []int64{25, 25, 25, 25},
			expected: 3,
		},
		{
			name:     "unsorted input",
			amounts:  []int64{5, 40, 5, 50},
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, analytics.Nakamoto(tt.amounts))
		})
	}
}
