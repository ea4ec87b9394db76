package ports

import (
	"context"
	"time"
)

// ActivityEvent is a fire-and-forget usage signal forwarded upstream.
type ActivityEvent struct {
	SessionID string    `json:"session_id"`
	UserID    int64     `json:"user_id,omitempty"`
	Kind      string    `json:"kind"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Event kinds emitted by the portal.
const (
	ActivityLogin            = "login"
	ActivityLogout           = "logout"
	ActivityBookingCreated   = "booking_created"
	ActivityFacilityDecision = "facility_decision"
)

// ActivitySink delivers a single activity event. Delivery is best-effort;
// callers never block on or propagate sink errors.
type ActivitySink interface {
	Record(ctx context.Context, event ActivityEvent) error
}

// ActivityDispatcher accepts events for asynchronous delivery.
type ActivityDispatcher interface {
	Enqueue(event ActivityEvent)
}
