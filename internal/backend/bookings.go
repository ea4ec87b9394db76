package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/Sonalgupta2005/game-time-go/internal/core/ports"
)

// BookingClient implements ports.BookingBackend against /bookings.
type BookingClient struct {
	c *Client
}

func NewBookingClient(c *Client) *BookingClient {
	return &BookingClient{c: c}
}

func (b *BookingClient) Create(ctx context.Context, input ports.CreateBookingInput) (*ports.Booking, error) {
	var booking ports.Booking
	if err := b.c.postJSON(ctx, "/bookings", input, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (b *BookingClient) ListForUser(ctx context.Context) ([]ports.Booking, error) {
	var bookings []ports.Booking
	if err := b.c.getJSON(ctx, "/bookings/user", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (b *BookingClient) Cancel(ctx context.Context, bookingID int64) error {
	return b.c.putJSON(ctx, fmt.Sprintf("/bookings/%d/cancel", bookingID), nil, nil)
}

func (b *BookingClient) AvailableSlots(ctx context.Context, venueID, courtID int64, date string) ([]string, error) {
	query := url.Values{}
	query.Set("venueId", strconv.FormatInt(venueID, 10))
	query.Set("courtId", strconv.FormatInt(courtID, 10))
	query.Set("date", date)

	var slots []string
	if err := b.c.getJSON(ctx, "/bookings/available-slots", query, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}
