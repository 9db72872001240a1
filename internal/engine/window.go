package engine

import (
	"fmt"
	"time"

	"github.com/tablebook/reservation-api/internal/model"
)

// mondayFirstWeekday maps time.Weekday (Sunday=0) onto the Monday-first
// numbering used by opening hours entries (Monday=1 ... Sunday=7).
func mondayFirstWeekday(d time.Weekday) int {
	if d == time.Sunday {
		return 7
	}
	return int(d)
}

// openingWindow resolves a venue's opening and closing instants for a
// calendar date by matching the weekly entry for the date's weekday and
// combining its wall-clock times with the date in UTC. A venue with no
// entry for the weekday is closed that day and resolves to ErrVenueClosed.
// Special opening hours are not consulted here.
func openingWindow(hours []model.OpeningHoursSpec, date time.Time) (opens, closes time.Time, err error) {
	weekday := mondayFirstWeekday(date.Weekday())

	var spec *model.OpeningHoursSpec
	for i := range hours {
		if hours[i].DayOfWeek == weekday {
			spec = &hours[i]
			break
		}
	}
	if spec == nil {
		return time.Time{}, time.Time{}, ErrVenueClosed
	}

	opens, err = combineDateAndTime(date, spec.Opens)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("could not parse opens time %q: %w", spec.Opens, err)
	}
	closes, err = combineDateAndTime(date, spec.Closes)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("could not parse closes time %q: %w", spec.Closes, err)
	}
	return opens, closes, nil
}

// combineDateAndTime anchors an HH:MM wall-clock string onto a calendar
// date, producing an absolute UTC instant.
func combineDateAndTime(date time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}
