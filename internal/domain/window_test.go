package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func window(startHour, startMin, endHour, endMin int) TimeWindow {
	day := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	return TimeWindow{
		Start: day.Add(time.Duration(startHour)*time.Hour + time.Duration(startMin)*time.Minute),
		End:   day.Add(time.Duration(endHour)*time.Hour + time.Duration(endMin)*time.Minute),
	}
}

func TestTimeWindow_Overlaps(t *testing.T) {
	tests := []struct {
		name     string
		a        TimeWindow
		b        TimeWindow
		expected bool
	}{
		{
			name:     "touching at endpoint is not an overlap",
			a:        window(10, 0, 12, 0),
			b:        window(12, 0, 13, 0),
			expected: false,
		},
		{
			name:     "one minute of intersection is an overlap",
			a:        window(10, 0, 12, 0),
			b:        window(11, 59, 13, 0),
			expected: true,
		},
		{
			name:     "fully contained window overlaps",
			a:        window(10, 0, 18, 0),
			b:        window(12, 0, 13, 0),
			expected: true,
		},
		{
			name:     "identical windows overlap",
			a:        window(10, 0, 12, 0),
			b:        window(10, 0, 12, 0),
			expected: true,
		},
		{
			name:     "disjoint windows do not overlap",
			a:        window(8, 0, 9, 0),
			b:        window(14, 0, 16, 0),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.expected, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestTimeWindow_IsValid(t *testing.T) {
	assert.True(t, window(10, 0, 11, 0).IsValid())
	assert.False(t, window(11, 0, 10, 0).IsValid())
	assert.False(t, window(10, 0, 10, 0).IsValid(), "zero-length window is invalid")
}
