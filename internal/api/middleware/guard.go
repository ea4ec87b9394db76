package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Sonalgupta2005/game-time-go/internal/api/metrics"
	"github.com/Sonalgupta2005/game-time-go/internal/core/domain"
	"github.com/Sonalgupta2005/game-time-go/internal/core/ports"
	"github.com/Sonalgupta2005/game-time-go/internal/core/service"
)

// Guard gates a route behind authentication and, when role is non-empty, a
// specific required role. The decision is re-evaluated on every request:
//   - Wait     -> 204, nothing rendered (hydration not settled)
//   - Redirect -> 302 to the login entry or the identity's role home
//   - Allow    -> next handler
func Guard(role domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			store, _ := c.Get("session").(ports.SessionStore)

			var session *domain.Session
			if store != nil {
				session = store.Session()
			}

			decision := service.Decide(session, role)
			switch decision.Outcome {
			case service.Allow:
				metrics.GuardDecisionsTotal.WithLabelValues("allow").Inc()
				return next(c)
			case service.Redirect:
				metrics.GuardDecisionsTotal.WithLabelValues("redirect").Inc()
				return c.Redirect(http.StatusFound, decision.Target)
			default:
				metrics.GuardDecisionsTotal.WithLabelValues("wait").Inc()
				return c.NoContent(http.StatusNoContent)
			}
		}
	}
}

// RequireSession gates a route behind authentication only.
func RequireSession() echo.MiddlewareFunc {
	return Guard("")
}
