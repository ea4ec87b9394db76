package backend

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Sonalgupta2005/game-time-go/internal/core/ports"
)

// VenueClient implements ports.VenueBackend against /venues.
type VenueClient struct {
	c *Client
}

func NewVenueClient(c *Client) *VenueClient {
	return &VenueClient{c: c}
}

func (v *VenueClient) List(ctx context.Context) ([]ports.Venue, error) {
	var venues []ports.Venue
	if err := v.c.getJSON(ctx, "/venues", nil, &venues); err != nil {
		return nil, err
	}
	return venues, nil
}

func (v *VenueClient) Get(ctx context.Context, venueID int64) (*ports.Venue, error) {
	var venue ports.Venue
	if err := v.c.getJSON(ctx, fmt.Sprintf("/venues/%d", venueID), nil, &venue); err != nil {
		return nil, err
	}
	return &venue, nil
}

func (v *VenueClient) Search(ctx context.Context, q ports.VenueSearch) ([]ports.Venue, error) {
	query := url.Values{}
	if q.Sport != "" {
		query.Set("sport", q.Sport)
	}
	if q.Location != "" {
		query.Set("location", q.Location)
	}
	if q.Date != "" {
		query.Set("date", q.Date)
	}

	var venues []ports.Venue
	if err := v.c.getJSON(ctx, "/venues/search", query, &venues); err != nil {
		return nil, err
	}
	return venues, nil
}
