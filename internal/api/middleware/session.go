package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Sonalgupta2005/game-time-go/internal/api/metrics"
	"github.com/Sonalgupta2005/game-time-go/internal/api/sessioncookie"
	"github.com/Sonalgupta2005/game-time-go/internal/backend"
	"github.com/Sonalgupta2005/game-time-go/internal/core/ports"
	"github.com/Sonalgupta2005/game-time-go/internal/core/service"
)

// Session resolves the session cookie, hydrates a fresh session store for
// this request, and injects it into the echo context under "session".
//
// An absent or invalid cookie still yields a hydrated (empty, settled)
// session so the guard always sees Loading == false downstream.
func Session(jwtSecret, cookieName string, repo ports.SessionRepository, auth ports.AuthBackend, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var sid string
			if cookie, err := c.Cookie(cookieName); err == nil {
				// A bad token is treated as no session, never an error.
				sid, _ = sessioncookie.Parse(jwtSecret, cookie.Value)
			}

			store := service.NewSessionService(sid, repo, auth, log)
			store.Hydrate(c.Request().Context())

			result := "empty"
			if store.Session().Authenticated() {
				result = "restored"
				// Forward the principal on every upstream call made
				// while serving this request.
				ctx := backend.WithIdentity(c.Request().Context(), store.Session().Identity)
				c.SetRequest(c.Request().WithContext(ctx))
			}
			metrics.SessionsHydratedTotal.WithLabelValues(result).Inc()

			c.Set("session", store)
			return next(c)
		}
	}
}
