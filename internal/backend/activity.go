package backend

import (
	"context"

	"github.com/Sonalgupta2005/game-time-go/internal/core/ports"
)

// ActivityClient implements ports.ActivitySink, posting usage events to the
// upstream audit endpoint. Callers treat delivery as best-effort.
type ActivityClient struct {
	c *Client
}

func NewActivityClient(c *Client) *ActivityClient {
	return &ActivityClient{c: c}
}

func (a *ActivityClient) Record(ctx context.Context, event ports.ActivityEvent) error {
	return a.c.postJSON(ctx, "/activity", event, nil)
}
