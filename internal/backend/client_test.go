package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Sonalgupta2005/game-time-go/internal/core/domain"
	"github.com/Sonalgupta2005/game-time-go/internal/core/ports"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, zerolog.Nop())
}

func TestLogin_MapsUpstreamIdentity(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":{"id":7,"email":"a@b.com","name":"Bob","role":"facility_owner","isVerified":true,"facilityId":3}}`))
	})

	identity, err := NewAuthClient(client).Login(context.Background(), "a@b.com", "secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if identity.ID != 7 || identity.Role != domain.RoleFacilityOwner || identity.FacilityID != 3 {
		t.Fatalf("unexpected identity: %+v", identity)
	}
	if !identity.IsVerified {
		t.Fatalf("verified flag lost in mapping")
	}
}

func TestLogin_UnknownRoleRejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"user":{"id":1,"email":"a@b.com","name":"A","role":"superuser"}}`))
	})

	if _, err := NewAuthClient(client).Login(context.Background(), "a@b.com", "x"); err == nil {
		t.Fatalf("expected error for unknown role")
	}
}

func TestErrorEnvelope_MessagePropagatedVerbatim(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
	})

	_, err := NewAuthClient(client).Login(context.Background(), "a@b.com", "bad")
	if err == nil {
		t.Fatalf("expected error")
	}
	be, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *backend.Error, got %T", err)
	}
	if be.Status != http.StatusUnauthorized || be.Message != "Invalid credentials" {
		t.Fatalf("unexpected error: %+v", be)
	}
	if err.Error() != "Invalid credentials" {
		t.Fatalf("message not verbatim: %q", err.Error())
	}
}

func TestErrorEnvelope_GenericFallbackOnMalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	})

	_, err := NewVenueClient(client).List(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	be, ok := err.(*Error)
	if !ok || be.Message != msgRequestFailed {
		t.Fatalf("expected generic fallback, got %v", err)
	}
	if be.Status != http.StatusBadGateway {
		t.Fatalf("status lost: %d", be.Status)
	}
}

func TestTransportFailure_NetworkErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on
	client := NewClient(srv.URL, zerolog.Nop())

	_, err := NewVenueClient(client).List(context.Background())
	be, ok := err.(*Error)
	if !ok || be.Message != msgNetworkError {
		t.Fatalf("expected network error, got %v", err)
	}
}

func TestIdentityHeadersForwarded(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-User-ID"); got != "7" {
			t.Fatalf("X-User-ID = %q", got)
		}
		if got := r.Header.Get("X-User-Role"); got != "user" {
			t.Fatalf("X-User-Role = %q", got)
		}
		_, _ = w.Write([]byte(`[]`))
	})

	ctx := WithIdentity(context.Background(), &domain.Identity{ID: 7, Email: "a@b.com", Role: domain.RoleUser})
	if _, err := NewBookingClient(client).ListForUser(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}
}

func TestVenueSearch_QueryParameters(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("sport") != "badminton" || q.Get("location") != "Pune" || q.Get("date") != "2026-09-01" {
			t.Fatalf("unexpected query: %v", q)
		}
		_, _ = w.Write([]byte(`[{"id":1,"name":"Smash Arena","location":"Pune","sports":["badminton"],"rating":4.5}]`))
	})

	venues, err := NewVenueClient(client).Search(context.Background(), ports.VenueSearch{
		Sport: "badminton", Location: "Pune", Date: "2026-09-01",
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(venues) != 1 || venues[0].Name != "Smash Arena" {
		t.Fatalf("unexpected venues: %+v", venues)
	}
}

func TestRegister_MultipartForwarded(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if r.FormValue("fullName") != "Alice" || r.FormValue("role") != "user" {
			t.Fatalf("unexpected form: %v", r.MultipartForm.Value)
		}
		if len(r.MultipartForm.File["avatar"]) != 1 {
			t.Fatalf("avatar file missing")
		}
		w.WriteHeader(http.StatusCreated)
	})

	input := ports.RegisterInput{
		FullName:   "Alice",
		Email:      "alice@example.com",
		Password:   "secret",
		Phone:      "5550002",
		Role:       domain.RoleUser,
		Avatar:     strings.NewReader("fake-png"),
		AvatarName: "me.png",
	}
	if err := NewAuthClient(client).Register(context.Background(), input); err != nil {
		t.Fatalf("register failed: %v", err)
	}
}
