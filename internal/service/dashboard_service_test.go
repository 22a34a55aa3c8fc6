package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWeekTrend(t *testing.T) {
	tests := []struct {
		name      string
		current   float64
		last      float64
		change    float64
		direction string
	}{
		{"rising", 30, 20, 50, "up"},
		{"falling", 15, 20, 25, "down"},
		{"flat", 20, 20, 0, "up"},
		{"first week with hours", 8, 0, 100, "up"},
		{"no hours at all", 0, 0, 0, "up"},
		{"dropped to zero", 0, 20, 100, "down"},
		{"rounds to one decimal", 10, 30, 66.7, "down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			change, direction := WeekTrend(tt.current, tt.last)
			require.Equal(t, tt.change, change)
			require.Equal(t, tt.direction, direction)
		})
	}
}
