package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Sonalgupta2005/game-time-go/internal/core/domain"
	"github.com/Sonalgupta2005/game-time-go/internal/core/ports"
)

type stubAdminBackend struct {
	loginFn   func(ctx context.Context, adminID, password string) (*domain.Identity, error)
	approveFn func(ctx context.Context, facilityID int64, comments string) error
}

func (s *stubAdminBackend) Login(ctx context.Context, adminID, password string) (*domain.Identity, error) {
	return s.loginFn(ctx, adminID, password)
}

func (s *stubAdminBackend) Stats(ctx context.Context) (*ports.AdminStats, error) {
	return &ports.AdminStats{}, nil
}

func (s *stubAdminBackend) PendingFacilities(ctx context.Context) ([]ports.PendingFacility, error) {
	return nil, nil
}

func (s *stubAdminBackend) ApproveFacility(ctx context.Context, facilityID int64, comments string) error {
	return s.approveFn(ctx, facilityID, comments)
}

func (s *stubAdminBackend) RejectFacility(ctx context.Context, facilityID int64, comments string) error {
	return nil
}

func (s *stubAdminBackend) ListUsers(ctx context.Context) ([]ports.AdminUser, error) {
	return nil, nil
}

func (s *stubAdminBackend) BanUser(ctx context.Context, userID int64) error { return nil }

func (s *stubAdminBackend) UnbanUser(ctx context.Context, userID int64) error { return nil }

func newAdminHandler(t *testing.T, admin *stubAdminBackend, repo ports.SessionRepository, dispatcher *recordingDispatcher, accessKey string) *AdminHandler {
	t.Helper()
	var hash string
	if accessKey != "" {
		raw, err := bcrypt.GenerateFromPassword([]byte(accessKey), bcrypt.MinCost)
		if err != nil {
			t.Fatalf("hash access key: %v", err)
		}
		hash = string(raw)
	}
	return NewAdminHandler(admin, repo, &stubAuthBackend{}, dispatcher, "test-secret", "gt_session", time.Hour, hash, zerolog.Nop())
}

func TestAdminHandler_Access_CorrectKey(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	handler := newAdminHandler(t, &stubAdminBackend{}, newMemorySessionRepo(), &recordingDispatcher{}, "open-sesame")

	req := httptest.NewRequest(http.MethodPost, "/admin/access", strings.NewReader(`{"access_key":"open-sesame"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Access(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestAdminHandler_Access_WrongKey(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	handler := newAdminHandler(t, &stubAdminBackend{}, newMemorySessionRepo(), &recordingDispatcher{}, "open-sesame")

	req := httptest.NewRequest(http.MethodPost, "/admin/access", strings.NewReader(`{"access_key":"guess"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Access(c)
	if !errors.Is(err, domain.ErrAccessKeyRejected) {
		t.Fatalf("expected access key rejection, got %v", err)
	}
}

func TestAdminHandler_Login_StartsAdminSession(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	repo := newMemorySessionRepo()
	admin := &stubAdminBackend{
		loginFn: func(ctx context.Context, adminID, password string) (*domain.Identity, error) {
			if adminID != "root" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", adminID, password)
			}
			return &domain.Identity{ID: 1, Email: "admin@example.com", Name: "Root", Role: domain.RoleAdmin}, nil
		},
	}
	handler := newAdminHandler(t, admin, repo, &recordingDispatcher{}, "")

	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"adminId":"root","password":"secret"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(repo.slots) != 1 {
		t.Fatalf("expected one session slot, got %d", len(repo.slots))
	}
	if len(rec.Result().Cookies()) != 1 {
		t.Fatalf("expected session cookie")
	}
}

func TestAdminHandler_Login_RejectsNonAdminIdentity(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	admin := &stubAdminBackend{
		loginFn: func(ctx context.Context, adminID, password string) (*domain.Identity, error) {
			return &domain.Identity{ID: 2, Email: "bob@example.com", Role: domain.RoleUser}, nil
		},
	}
	repo := newMemorySessionRepo()
	handler := newAdminHandler(t, admin, repo, &recordingDispatcher{}, "")

	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"adminId":"bob","password":"secret"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if len(repo.slots) != 0 {
		t.Fatalf("no session expected, got %d", len(repo.slots))
	}
}

func TestAdminHandler_ApproveFacility_EmitsDecision(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	dispatcher := &recordingDispatcher{}
	admin := &stubAdminBackend{
		approveFn: func(ctx context.Context, facilityID int64, comments string) error {
			if facilityID != 42 || comments != "looks good" {
				t.Fatalf("unexpected args: %d %q", facilityID, comments)
			}
			return nil
		},
	}
	handler := newAdminHandler(t, admin, newMemorySessionRepo(), dispatcher, "")

	req := httptest.NewRequest(http.MethodPut, "/admin/facilities/42/approve", strings.NewReader(`{"comments":"looks good"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := handler.ApproveFacility(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if kinds := dispatcher.kinds(); len(kinds) != 1 || kinds[0] != ports.ActivityFacilityDecision {
		t.Fatalf("expected facility decision activity, got %v", kinds)
	}
}
