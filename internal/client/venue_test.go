package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablebook/reservation-api/internal/model"
)

func TestVenueClientGetVenue(t *testing.T) {
	want := model.Venue{
		ID:   "v1",
		Name: "The Fig Tree",
		OpeningHours: []model.OpeningHoursSpec{
			{DayOfWeek: 1, Opens: "14:00", Closes: "16:00"},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/venues/v1", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	c := NewVenueClient(srv.URL, "secret")
	got, err := c.GetVenue(context.Background(), "v1")
	require.NoError(t, err)
	assert.Equal(t, &want, got)
}

func TestVenueClientNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewVenueClient(srv.URL, "secret")
	_, err := c.GetVenue(context.Background(), "missing")
	assert.Error(t, err)
}
