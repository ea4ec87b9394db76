package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Sonalgupta2005/game-time-go/internal/backend"
	"github.com/Sonalgupta2005/game-time-go/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, resp["error"]
}

func TestErrorHandler_UpstreamMessagePassesThrough(t *testing.T) {
	code, msg := renderError(t, &backend.Error{Status: http.StatusConflict, Message: "Slot already booked"})
	if code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", code)
	}
	if msg != "Slot already booked" {
		t.Fatalf("expected verbatim upstream message, got %q", msg)
	}
}

func TestErrorHandler_NetworkErrorBecomesBadGateway(t *testing.T) {
	code, msg := renderError(t, &backend.Error{Status: 0, Message: "network error"})
	if code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", code)
	}
	if msg != "network error" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrAccessKeyRejected, http.StatusUnauthorized},
		{domain.ErrNotAuthenticated, http.StatusUnauthorized},
		{domain.ErrUnknownRole, http.StatusBadGateway},
	}
	for _, tc := range cases {
		if code, _ := renderError(t, tc.err); code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, code)
		}
	}
}

func TestErrorHandler_UnknownErrorHidesDetails(t *testing.T) {
	code, msg := renderError(t, errors.New("pq: connection refused on host 10.0.0.3"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal details must not leak, got %q", msg)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))
	if code != http.StatusNotFound || msg != "Not Found" {
		t.Fatalf("unexpected mapping: %d %q", code, msg)
	}
}
