package engine

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/tablebook/reservation-api/internal/model"
)

type mockVenueDirectory struct {
	mock.Mock
}

func (m *mockVenueDirectory) GetVenue(ctx context.Context, venueID string) (*model.Venue, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Venue), args.Error(1)
}

type mockTableDirectory struct {
	mock.Mock
}

func (m *mockTableDirectory) GetTablesWithCapacity(ctx context.Context, venueID string, capacity int) ([]string, error) {
	args := m.Called(ctx, venueID, capacity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type mockBookingStore struct {
	mock.Mock
}

func (m *mockBookingStore) GetBookings(ctx context.Context, filter model.BookingsFilter, offset, limit int) ([]model.Booking, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Booking), args.Error(1)
}

func (m *mockBookingStore) CountBookings(ctx context.Context, filter model.BookingsFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookingStore) CreateBooking(ctx context.Context, booking model.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *mockBookingStore) DeleteBooking(ctx context.Context, id string) (*model.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

// fixedIDs satisfies IDGenerator with a constant value so created bookings
// are fully deterministic under test.
type fixedIDs struct {
	id string
}

func (f fixedIDs) NewID() string { return f.id }

// mondayVenue is open 14:00-16:00 on Mondays only. The test date
// 2025-03-03 is a Monday.
func mondayVenue(id string) *model.Venue {
	return &model.Venue{
		ID:   id,
		Name: "The Fig Tree",
		OpeningHours: []model.OpeningHoursSpec{
			{DayOfWeek: 1, Opens: "14:00", Closes: "16:00"},
		},
	}
}

func mondayAt(clock string) time.Time {
	t, err := time.Parse(time.RFC3339, "2025-03-03T"+clock+":00Z")
	if err != nil {
		panic(err)
	}
	return t
}

func bookingOn(tableID string, start time.Time, minutes int) model.Booking {
	return model.Booking{
		ID:       "b-" + tableID,
		TableID:  tableID,
		Date:     start.Format(model.DateFormat),
		StartsAt: start,
		EndsAt:   start.Add(time.Duration(minutes) * time.Minute),
		Duration: minutes,
	}
}
