package ports

import (
	"context"
	"errors"

	"github.com/Sonalgupta2005/game-time-go/internal/core/domain"
)

// ErrSessionNotFound is returned when the slot for a session ID is empty.
var ErrSessionNotFound = errors.New("session not found")

// ErrSessionCorrupt is returned when the slot holds bytes that do not decode
// into an Identity. Callers treat it the same as absence.
var ErrSessionCorrupt = errors.New("session payload corrupt")

// SessionRepository is the durable single-slot store for serialized
// identities. One key per session ID, no transactional guarantees.
type SessionRepository interface {
	Load(ctx context.Context, sessionID string) (*domain.Identity, error)
	Save(ctx context.Context, sessionID string, identity *domain.Identity) error
	Delete(ctx context.Context, sessionID string) error
}
