package service

import (
	"github.com/Sonalgupta2005/game-time-go/internal/core/domain"
)

// Outcome is the route guard's verdict for one navigation.
type Outcome int

const (
	// Wait means hydration has not completed yet; render nothing rather
	// than flash a redirect to login.
	Wait Outcome = iota
	// Redirect means send the caller to Decision.Target.
	Redirect
	// Allow means render the protected content.
	Allow
)

// Decision carries the guard outcome and, for redirects, the target path.
type Decision struct {
	Outcome Outcome
	Target  string
}

// Login entry points the guard redirects unauthenticated callers to.
const (
	LoginPath      = "/login"
	AdminLoginPath = "/admin/login"
)

// Decide gates rendering of a protected view. It is a pure function over
// (session, requiredRole) with no state of its own, re-evaluated on every
// navigation and on every session change. It never errors:
//
//  1. Session still loading            -> Wait.
//  2. No identity                      -> Redirect to the login entry point.
//  3. Required role set and mismatched -> Redirect to the identity's own
//     role home, not the requested one and not an error page.
//  4. Otherwise                        -> Allow.
//
// requiredRole == "" means any authenticated identity may pass.
func Decide(session *domain.Session, requiredRole domain.Role) Decision {
	if session == nil || session.Loading {
		return Decision{Outcome: Wait}
	}

	if !session.Authenticated() {
		target := LoginPath
		if requiredRole == domain.RoleAdmin {
			target = AdminLoginPath
		}
		return Decision{Outcome: Redirect, Target: target}
	}

	if requiredRole != "" && session.Identity.Role != requiredRole {
		return Decision{Outcome: Redirect, Target: session.Identity.Role.HomePath()}
	}

	return Decision{Outcome: Allow}
}
