package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Sonalgupta2005/game-time-go/internal/backend"
	"github.com/Sonalgupta2005/game-time-go/internal/core/domain"
	"github.com/Sonalgupta2005/game-time-go/internal/core/ports"
)

type stubAuthBackend struct {
	loginFn     func(ctx context.Context, email, password string) (*domain.Identity, error)
	registerFn  func(ctx context.Context, input ports.RegisterInput) error
	verifyFn    func(ctx context.Context, email, otp string) (*domain.Identity, error)
	resendFn    func(ctx context.Context, email string) error
	logoutCalls int
}

func (s *stubAuthBackend) Login(ctx context.Context, email, password string) (*domain.Identity, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthBackend) Register(ctx context.Context, input ports.RegisterInput) error {
	return s.registerFn(ctx, input)
}

func (s *stubAuthBackend) VerifyOTP(ctx context.Context, email, otp string) (*domain.Identity, error) {
	return s.verifyFn(ctx, email, otp)
}

func (s *stubAuthBackend) ResendOTP(ctx context.Context, email string) error {
	return s.resendFn(ctx, email)
}

func (s *stubAuthBackend) Logout(ctx context.Context) error {
	s.logoutCalls++
	return nil
}

type memorySessionRepo struct {
	mu    sync.Mutex
	slots map[string]*domain.Identity
}

func newMemorySessionRepo() *memorySessionRepo {
	return &memorySessionRepo{slots: make(map[string]*domain.Identity)}
}

func (r *memorySessionRepo) Load(ctx context.Context, sessionID string) (*domain.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	identity, ok := r.slots[sessionID]
	if !ok {
		return nil, ports.ErrSessionNotFound
	}
	return identity, nil
}

func (r *memorySessionRepo) Save(ctx context.Context, sessionID string, identity *domain.Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[sessionID] = identity
	return nil
}

func (r *memorySessionRepo) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.slots, sessionID)
	return nil
}

type recordingDispatcher struct {
	mu     sync.Mutex
	events []ports.ActivityEvent
}

func (d *recordingDispatcher) Enqueue(event ports.ActivityEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
}

func (d *recordingDispatcher) kinds() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	kinds := make([]string, 0, len(d.events))
	for _, ev := range d.events {
		kinds = append(kinds, ev.Kind)
	}
	return kinds
}

func newAuthHandler(auth *stubAuthBackend, repo ports.SessionRepository, dispatcher *recordingDispatcher) *AuthHandler {
	return NewAuthHandler(auth, repo, dispatcher, "test-secret", "gt_session", time.Hour, zerolog.Nop())
}

func loggedInIdentity() *domain.Identity {
	return &domain.Identity{
		ID:    7,
		Email: "bob@example.com",
		Name:  "Bob",
		Role:  domain.RoleUser,
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	repo := newMemorySessionRepo()
	dispatcher := &recordingDispatcher{}
	auth := &stubAuthBackend{
		loginFn: func(ctx context.Context, email, password string) (*domain.Identity, error) {
			if email != "bob@example.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return loggedInIdentity(), nil
		},
	}
	handler := newAuthHandler(auth, repo, dispatcher)

	body := strings.NewReader(`{"email":"bob@example.com","password":"secret"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["email"] != "bob@example.com" || user["role"] != "user" {
		t.Fatalf("unexpected user payload: %+v", user)
	}

	// The identity must be persisted under the session carried by the cookie.
	if len(repo.slots) != 1 {
		t.Fatalf("expected one session slot, got %d", len(repo.slots))
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "gt_session" || cookies[0].Value == "" {
		t.Fatalf("expected session cookie, got %+v", cookies)
	}

	if kinds := dispatcher.kinds(); len(kinds) != 1 || kinds[0] != ports.ActivityLogin {
		t.Fatalf("expected login activity, got %v", kinds)
	}
}

func TestAuthHandler_Login_UpstreamRejection(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	auth := &stubAuthBackend{
		loginFn: func(ctx context.Context, email, password string) (*domain.Identity, error) {
			return nil, &backend.Error{Status: http.StatusUnauthorized, Message: "Invalid credentials"}
		},
	}
	handler := newAuthHandler(auth, newMemorySessionRepo(), &recordingDispatcher{})

	body := strings.NewReader(`{"email":"bob@example.com","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Login(c)
	if err == nil {
		t.Fatalf("expected error")
	}
	// The upstream message must survive verbatim for display to the user.
	if err.Error() != "Invalid credentials" {
		t.Fatalf("expected upstream message, got %q", err.Error())
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("no cookie expected on failed login")
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	auth := &stubAuthBackend{
		loginFn: func(ctx context.Context, email, password string) (*domain.Identity, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := newAuthHandler(auth, newMemorySessionRepo(), &recordingDispatcher{})

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"not-an-email"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Register_RejectsAdminRole(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	auth := &stubAuthBackend{
		registerFn: func(ctx context.Context, input ports.RegisterInput) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	handler := newAuthHandler(auth, newMemorySessionRepo(), &recordingDispatcher{})

	form := "fullName=Eve&email=eve%40example.com&password=secret&role=admin"
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(form))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_VerifyOTP_StartsSession(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	repo := newMemorySessionRepo()
	auth := &stubAuthBackend{
		verifyFn: func(ctx context.Context, email, otp string) (*domain.Identity, error) {
			if email != "bob@example.com" || otp != "123456" {
				t.Fatalf("unexpected args: %s %s", email, otp)
			}
			return loggedInIdentity(), nil
		},
	}
	handler := newAuthHandler(auth, repo, &recordingDispatcher{})

	body := strings.NewReader(`{"email":"bob@example.com","otp":"123456"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/verify-otp", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.VerifyOTP(c); err != nil {
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
