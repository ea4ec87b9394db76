package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Sonalgupta2005/game-time-go/internal/core/ports"
	"github.com/Sonalgupta2005/game-time-go/internal/core/service"
)

// sessionFrom extracts the session store injected by the Session middleware.
// A missing store means the middleware chain is misassembled; reject rather
// than proceed with an unknown principal.
func sessionFrom(c echo.Context) (ports.SessionStore, error) {
	store, ok := c.Get("session").(ports.SessionStore)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return store, nil
}

// principal returns the session ID and user ID of the caller, or zero values
// when the request is unauthenticated.
func principal(c echo.Context) (string, int64) {
	store, ok := c.Get("session").(ports.SessionStore)
	if !ok {
		return "", 0
	}
	var sid string
	if svc, ok := store.(*service.SessionService); ok {
		sid = svc.ID()
	}
	var userID int64
	if identity := store.Session().Identity; identity != nil {
		userID = identity.ID
	}
	return sid, userID
}
