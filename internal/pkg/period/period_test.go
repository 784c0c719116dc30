package period

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		name  string
		input string
		start YearMonth
		end   YearMonth
	}{
		{"empty is unbounded", "", 0, 999999},
		{"whitespace is unbounded", "   ", 0, 999999},
		{"whole year", "2024", 202401, 202412},
		{"single month", "2024-03", 202403, 202403},
		{"dotted range", "2024-01..2024-06", 202401, 202406},
		{"colon range", "2024-01:2024-06", 202401, 202406},
		{"comma range", "2024-01,2024-06", 202401, 202406},
		{"underscore range", "2024-01_2024-06", 202401, 202406},
		{"year to month", "2023..2024-06", 202301, 202406},
		{"month to year", "2023-07..2024", 202307, 202412},
		{"garbage start falls back", "bogus..2024-06", 1, 202406},
		{"garbage end falls back", "2024-01..bogus", 202401, 999912},
		{"garbage single token falls back to start bound", "bogus", 1, 1},
		{"signed token is not a year", "-123", 1, 1},
		{"signed end side falls back", "2024-01..-999", 202401, 999912},
		{"empty start side", "..2024-06", 1, 202406},
		{"empty end side", "2024-01..", 202401, 999912},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseRange(tc.input)
			assert.Equal(t, tc.start, got.Start)
			assert.Equal(t, tc.end, got.End)
		})
	}
}

func TestRangeContains(t *testing.T) {
	r := ParseRange("2024-01..2024-06")

	assert.True(t, r.Contains(New(2024, 1)))
	assert.True(t, r.Contains(New(2024, 6)))
	assert.False(t, r.Contains(New(2023, 12)))
	assert.False(t, r.Contains(New(2024, 7)))

	assert.True(t, Unbounded().Contains(New(1998, 2)))
}

func TestYearMonth(t *testing.T) {
	ym := New(2024, 3)
	assert.Equal(t, YearMonth(202403), ym)
	assert.Equal(t, 2024, ym.Year())
	assert.Equal(t, 3, ym.Month())

	// Numeric order matches chronological order.
	assert.Less(t, New(2023, 12), New(2024, 1))
}
