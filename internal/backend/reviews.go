package backend

import (
	"context"
	"fmt"

	"github.com/Sonalgupta2005/game-time-go/internal/core/ports"
)

// ReviewClient implements ports.ReviewBackend against /reviews.
type ReviewClient struct {
	c *Client
}

func NewReviewClient(c *Client) *ReviewClient {
	return &ReviewClient{c: c}
}

func (r *ReviewClient) Create(ctx context.Context, input ports.CreateReviewInput) (*ports.Review, error) {
	var review ports.Review
	if err := r.c.postJSON(ctx, "/reviews", input, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewClient) ListByVenue(ctx context.Context, venueID int64) ([]ports.Review, error) {
	var reviews []ports.Review
	if err := r.c.getJSON(ctx, fmt.Sprintf("/reviews/venue/%d", venueID), nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
