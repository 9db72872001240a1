package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablebook/reservation-api/internal/engine"
	"github.com/tablebook/reservation-api/internal/model"
	"github.com/tablebook/reservation-api/internal/repository"
)

// The fakes below stand in for the directories and the store so handler
// tests exercise the full binding -> engine -> status-code path without
// external services.

type fakeVenues struct {
	venue *model.Venue
	err   error
}

func (f fakeVenues) GetVenue(ctx context.Context, venueID string) (*model.Venue, error) {
	return f.venue, f.err
}

type fakeTables struct {
	ids []string
	err error
}

func (f fakeTables) GetTablesWithCapacity(ctx context.Context, venueID string, capacity int) ([]string, error) {
	return f.ids, f.err
}

type fakeStore struct {
	bookings []model.Booking
	created  *model.Booking
}

func (f *fakeStore) GetBookings(ctx context.Context, filter model.BookingsFilter, offset, limit int) ([]model.Booking, error) {
	return f.bookings, nil
}

func (f *fakeStore) CountBookings(ctx context.Context, filter model.BookingsFilter) (int64, error) {
	return int64(len(f.bookings)), nil
}

func (f *fakeStore) CreateBooking(ctx context.Context, booking model.Booking) error {
	f.created = &booking
	return nil
}

func (f *fakeStore) DeleteBooking(ctx context.Context, id string) (*model.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			return &f.bookings[i], nil
		}
	}
	return nil, repository.ErrBookingNotFound
}

type staticIDs struct{ id string }

func (s staticIDs) NewID() string { return s.id }

func openVenue() *model.Venue {
	return &model.Venue{
		ID:   "v1",
		Name: "The Fig Tree",
		OpeningHours: []model.OpeningHoursSpec{
			{DayOfWeek: 1, Opens: "14:00", Closes: "16:00"},
		},
	}
}

func newHandler(store *fakeStore, tables []string) *BookingHandler {
	eng := engine.New(fakeVenues{venue: openVenue()}, fakeTables{ids: tables}, store, staticIDs{id: "fixed-id"})
	return NewBookingHandler(eng, false)
}

func doRequest(t *testing.T, h echo.HandlerFunc, method, target, body string, params map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for k, v := range params {
		c.SetParamNames(k)
		c.SetParamValues(v)
	}
	require.NoError(t, h(c))
	return rec
}

func TestCheckAvailabilityHandler(t *testing.T) {
	body := `{"venue_id":"v1","email":"guest@example.com","people":4,"starts_at":"2025-03-03T15:00:00Z","duration":60}`

	t.Run("match and others", func(t *testing.T) {
		h := newHandler(&fakeStore{}, []string{"t1"})
		rec := doRequest(t, h.CheckAvailability, http.MethodPost, "/v1/availability", body, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var avail model.Availability
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &avail))
		require.NotNil(t, avail.Match)
		assert.Equal(t, time.Date(2025, 3, 3, 15, 0, 0, 0, time.UTC), avail.Match.StartsAt)
		assert.Len(t, avail.OtherAvailableSlots, 3)
	})

	t.Run("closed venue maps to 400", func(t *testing.T) {
		h := newHandler(&fakeStore{}, []string{"t1"})
		late := strings.Replace(body, "15:00:00Z", "21:00:00Z", 1)
		rec := doRequest(t, h.CheckAvailability, http.MethodPost, "/v1/availability", late, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "venue is closed at that time")
	})

	t.Run("no table capacity maps to 400", func(t *testing.T) {
		h := newHandler(&fakeStore{}, []string{})
		rec := doRequest(t, h.CheckAvailability, http.MethodPost, "/v1/availability", body, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "venue does not have tables that large")
	})

	t.Run("malformed body", func(t *testing.T) {
		h := newHandler(&fakeStore{}, []string{"t1"})
		rec := doRequest(t, h.CheckAvailability, http.MethodPost, "/v1/availability", "{not json", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCreateBookingHandler(t *testing.T) {
	body := `{"venue_id":"v1","email":"guest@example.com","family_name":"Porter","given_name":"June","people":4,"starts_at":"2025-03-03T15:00:00Z","duration":60}`

	t.Run("created", func(t *testing.T) {
		store := &fakeStore{}
		h := newHandler(store, []string{"t1"})
		rec := doRequest(t, h.CreateBooking, http.MethodPost, "/v1/bookings", body, nil)
		require.Equal(t, http.StatusCreated, rec.Code)

		var got model.Booking
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "fixed-id", got.ID)
		assert.Equal(t, "t1", got.TableID)
		require.NotNil(t, store.created)
		assert.Equal(t, got.ID, store.created.ID)
	})

	t.Run("fully booked maps to 404", func(t *testing.T) {
		store := &fakeStore{bookings: []model.Booking{{
			ID:       "existing",
			TableID:  "t1",
			StartsAt: time.Date(2025, 3, 3, 14, 30, 0, 0, time.UTC),
			EndsAt:   time.Date(2025, 3, 3, 16, 0, 0, 0, time.UTC),
		}}}
		h := newHandler(store, []string{"t1"})
		rec := doRequest(t, h.CreateBooking, http.MethodPost, "/v1/bookings", body, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "could not find a free slot")
	})
}

func TestListBookingsHandler(t *testing.T) {
	store := &fakeStore{bookings: []model.Booking{{ID: "b1"}, {ID: "b2"}}}
	h := newHandler(store, []string{"t1"})

	t.Run("ok", func(t *testing.T) {
		rec := doRequest(t, h.ListBookings, http.MethodGet, "/v1/bookings?venue_id=v1", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var page model.BookingsPage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
		assert.Len(t, page.Bookings, 2)
		assert.False(t, page.HasNextPage)
	})

	t.Run("bad date", func(t *testing.T) {
		rec := doRequest(t, h.ListBookings, http.MethodGet, "/v1/bookings?date=03-03-2025", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad page", func(t *testing.T) {
		rec := doRequest(t, h.ListBookings, http.MethodGet, "/v1/bookings?page=minusone", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCancelBookingHandler(t *testing.T) {
	id := "7b8a1c52-68d1-4d60-a7e8-9f0f2a1f3b4c"

	t.Run("deleted record returned", func(t *testing.T) {
		store := &fakeStore{bookings: []model.Booking{{ID: id, TableID: "t1"}}}
		h := newHandler(store, []string{"t1"})
		rec := doRequest(t, h.CancelBooking, http.MethodDelete, "/v1/bookings/"+id, "", map[string]string{"id": id})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), id)
	})

	t.Run("unknown id maps to 404", func(t *testing.T) {
		store := &fakeStore{}
		h := newHandler(store, []string{"t1"})
		missing := "0e5ad0c2-9d2f-4a5e-b0cb-16f5b0e0d3aa"
		rec := doRequest(t, h.CancelBooking, http.MethodDelete, "/v1/bookings/"+missing, "", map[string]string{"id": missing})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id maps to 400", func(t *testing.T) {
		store := &fakeStore{}
		h := newHandler(store, []string{"t1"})
		rec := doRequest(t, h.CancelBooking, http.MethodDelete, "/v1/bookings/nope", "", map[string]string{"id": "nope"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHealth(t *testing.T) {
	rec := doRequest(t, Health, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
