package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/tablebook/reservation-api/internal/model"
)

// TableClient fetches a venue's tables from the table directory.
type TableClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewTableClient constructs a client with a base URL and service token.
func NewTableClient(baseURL, token string) *TableClient {
	return &TableClient{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// GetTablesWithCapacity returns the identifiers of every table in the venue
// able to seat the given party, in directory order. The directory serves
// the full table list; the capacity cut happens here. An empty result is a
// legitimate outcome, not an error.
func (c *TableClient) GetTablesWithCapacity(ctx context.Context, venueID string, capacity int) ([]string, error) {
	endpoint := fmt.Sprintf("%s/v1/venues/%s/tables", c.baseURL, url.PathEscape(venueID))
	var wrap struct {
		Tables []model.Table `json:"tables"`
	}
	if err := doGet(ctx, c.httpClient, c.token, endpoint, &wrap); err != nil {
		return nil, fmt.Errorf("table directory: %w", err)
	}
	return FilterByCapacity(wrap.Tables, capacity), nil
}

// FilterByCapacity keeps the identifiers of tables whose capacity meets or
// exceeds the required party size, preserving input order.
func FilterByCapacity(tables []model.Table, capacity int) []string {
	ids := make([]string, 0, len(tables))
	for _, t := range tables {
		if t.Capacity >= capacity {
			ids = append(ids, t.ID)
		}
	}
	return ids
}
