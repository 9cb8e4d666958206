// Package client is a typed HTTP client for the booking services. It is
// what an orchestrating caller uses: one Client per service, plus a Fleet
// that routes booking ids to the owning service by prefix (BK vs FL).
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"travel-booking-backend/internal/inventory"
	"travel-booking-backend/internal/parse"
)

// Client talks to one booking service.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the service at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Dates fetches the bookable dates.
func (c *Client) Dates(ctx context.Context) ([]string, error) {
	var out struct {
		Dates []string `json:"dates"`
	}
	if err := c.get(ctx, "/dates", &out); err != nil {
		return nil, err
	}
	return out.Dates, nil
}

// Seats fetches seat availability for a date.
func (c *Client) Seats(ctx context.Context, date string) (inventory.Availability, error) {
	var out inventory.Availability
	err := c.get(ctx, "/seats/"+date, &out)
	return out, err
}

// Book books a seat for the given customer.
func (c *Client) Book(ctx context.Context, date, seatID string, customer map[string]any) (inventory.BookingResult, error) {
	var out inventory.BookingResult
	err := c.post(ctx, "/book", map[string]any{
		"date":     date,
		"seat_id":  seatID,
		"customer": customer,
	}, &out)
	return out, err
}

// Cancel cancels a booking by id.
func (c *Client) Cancel(ctx context.Context, bookingID string) (inventory.CancelResult, error) {
	var out inventory.CancelResult
	err := c.post(ctx, "/cancel", map[string]any{"booking_id": bookingID}, &out)
	return out, err
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s %s: unexpected status %d", req.Method, req.URL.Path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Fleet routes requests across multiple booking services keyed by their
// booking-id prefix.
type Fleet struct {
	services map[string]*Client
}

// NewFleet builds a fleet from a prefix -> client mapping.
func NewFleet(services map[string]*Client) *Fleet {
	return &Fleet{services: services}
}

// ForBookingID returns the client owning the given booking id, selected by
// its prefix.
func (f *Fleet) ForBookingID(bookingID string) (*Client, bool) {
	c, ok := f.services[parse.Prefix(bookingID)]
	return c, ok
}

// ForPrefix returns the client registered under the given prefix.
func (f *Fleet) ForPrefix(prefix string) (*Client, bool) {
	c, ok := f.services[prefix]
	return c, ok
}
