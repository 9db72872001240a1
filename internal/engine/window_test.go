package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablebook/reservation-api/internal/model"
)

func TestMondayFirstWeekday(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2025-03-03", 1}, // Monday
		{"2025-03-05", 3}, // Wednesday
		{"2025-03-08", 6}, // Saturday
		{"2025-03-09", 7}, // Sunday maps to 7, not 0
	}
	for _, tt := range tests {
		d, err := time.Parse(model.DateFormat, tt.date)
		require.NoError(t, err)
		assert.Equal(t, tt.want, mondayFirstWeekday(d.Weekday()), "date %s", tt.date)
	}
}

func TestOpeningWindow(t *testing.T) {
	hours := []model.OpeningHoursSpec{
		{DayOfWeek: 1, Opens: "14:00", Closes: "16:00"},
		{DayOfWeek: 3, Opens: "09:30", Closes: "22:00"},
	}

	t.Run("open day", func(t *testing.T) {
		date, _ := time.Parse(model.DateFormat, "2025-03-03")
		opens, closes, err := openingWindow(hours, date)
		require.NoError(t, err)
		assert.Equal(t, mondayAt("14:00"), opens)
		assert.Equal(t, mondayAt("16:00"), closes)
	})

	t.Run("closed day", func(t *testing.T) {
		date, _ := time.Parse(model.DateFormat, "2025-03-04")
		_, _, err := openingWindow(hours, date)
		assert.ErrorIs(t, err, ErrVenueClosed)
	})

	t.Run("malformed clock", func(t *testing.T) {
		bad := []model.OpeningHoursSpec{{DayOfWeek: 1, Opens: "2pm", Closes: "16:00"}}
		date, _ := time.Parse(model.DateFormat, "2025-03-03")
		_, _, err := openingWindow(bad, date)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrVenueClosed)
	})
}

func TestCombineDateAndTime(t *testing.T) {
	date, _ := time.Parse(model.DateFormat, "2025-03-03")
	got, err := combineDateAndTime(date, "09:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 3, 9, 30, 0, 0, time.UTC), got)
}
