package ports

import (
	"context"

	"github.com/Sonalgupta2005/game-time-go/internal/core/domain"
)

// SessionStore is the single source of truth for "who is logged in" within one
// principal-session. All mutations synchronously rewrite the persisted copy.
type SessionStore interface {
	// Hydrate performs the one-time read of persisted state. Corrupt entries
	// are discarded silently; the loading flag clears exactly once.
	Hydrate(ctx context.Context)

	// Login delegates credential verification upstream. On success the
	// returned identity becomes current and is persisted. On failure the
	// session is left unauthenticated and the upstream message is returned.
	Login(ctx context.Context, email, password string) (*domain.Identity, error)

	// Logout notifies upstream best-effort, then unconditionally clears
	// local state and storage. It never fails the caller.
	Logout(ctx context.Context)

	// Adopt installs an already-verified identity (OTP completion, admin
	// login) as the current one and persists it.
	Adopt(ctx context.Context, identity *domain.Identity) error

	// UpdateIdentity merges the patch into the current identity and
	// re-persists it. No-op when unauthenticated.
	UpdateIdentity(ctx context.Context, patch domain.IdentityPatch)

	// HasRole reports whether the current identity holds the given role.
	HasRole(role domain.Role) bool

	// Session exposes the wrapped session state for the route guard.
	Session() *domain.Session
}
