package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Sonalgupta2005/game-time-go/internal/api/metrics"
	"github.com/Sonalgupta2005/game-time-go/internal/api/sessioncookie"
	"github.com/Sonalgupta2005/game-time-go/internal/backend"
	"github.com/Sonalgupta2005/game-time-go/internal/core/domain"
	"github.com/Sonalgupta2005/game-time-go/internal/core/ports"
	"github.com/Sonalgupta2005/game-time-go/internal/core/service"
)

// AuthHandler owns the login, registration and OTP flows. Successful
// authentication issues a fresh session ID (never reusing the caller's old
// one) and sets the signed session cookie.
type AuthHandler struct {
	auth       ports.AuthBackend
	repo       ports.SessionRepository
	activity   ports.ActivityDispatcher
	jwtSecret  string
	cookieName string
	sessionTTL time.Duration
	logger     zerolog.Logger
}

func NewAuthHandler(auth ports.AuthBackend, repo ports.SessionRepository, activity ports.ActivityDispatcher, jwtSecret, cookieName string, sessionTTL time.Duration, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		auth:       auth,
		repo:       repo,
		activity:   activity,
		jwtSecret:  jwtSecret,
		cookieName: cookieName,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// Login authenticates a user and starts a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	store := service.NewSessionService(uuid.NewString(), h.repo, h.auth, h.logger)
	identity, err := store.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	if err := h.setSessionCookie(c, store.ID()); err != nil {
		return err
	}

	h.activity.Enqueue(ports.ActivityEvent{
		SessionID: store.ID(),
		UserID:    identity.ID,
		Kind:      ports.ActivityLogin,
		Timestamp: time.Now().UTC(),
	})

	return c.JSON(http.StatusOK, sessionResponse{User: identity})
}

// Register forwards the multipart registration form upstream. The account is
// not signed in until OTP verification completes.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       multipart/form-data
// @Produce      json
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	input := ports.RegisterInput{
		FullName: c.FormValue("fullName"),
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
		Phone:    c.FormValue("phone"),
	}
	if input.FullName == "" || input.Email == "" || input.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "fullName, email and password are required")
	}

	roleValue := c.FormValue("role")
	if roleValue == "" {
		roleValue = string(domain.RoleUser)
	}
	role, err := domain.ParseRole(roleValue)
	if err != nil || role == domain.RoleAdmin {
		return echo.NewHTTPError(http.StatusBadRequest, "role must be user or facility_owner")
	}
	input.Role = role

	if file, err := c.FormFile("avatar"); err == nil {
		src, err := file.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unreadable avatar file")
		}
		defer src.Close()
		input.Avatar = src
		input.AvatarName = file.Filename
	}

	if err := h.auth.Register(c.Request().Context(), input); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, messageResponse{Message: "verification code sent"})
}

// VerifyOTP completes registration and starts a session.
//
// @Summary      Verify the registration OTP
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      otpRequest  true  "Email and one-time code"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/verify-otp [post]
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req otpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	identity, err := h.auth.VerifyOTP(c.Request().Context(), req.Email, req.OTP)
	if err != nil {
		return err
	}

	store := service.NewSessionService(uuid.NewString(), h.repo, h.auth, h.logger)
	if err := store.Adopt(c.Request().Context(), identity); err != nil {
		return err
	}
	if err := h.setSessionCookie(c, store.ID()); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sessionResponse{User: identity})
}

// ResendOTP requests a fresh one-time code.
//
// @Summary      Resend the registration OTP
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      resendOTPRequest  true  "Email"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Router       /auth/resend-otp [post]
func (h *AuthHandler) ResendOTP(c echo.Context) error {
	var req resendOTPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.auth.ResendOTP(c.Request().Context(), req.Email); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "verification code sent"})
}

// Logout ends the session. Local teardown always succeeds even when the
// upstream acknowledgement fails.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200   {object}  messageResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	store, err := sessionFrom(c)
	if err != nil {
		return err
	}

	sid, userID := principal(c)
	store.Logout(c.Request().Context())
	c.SetCookie(sessioncookie.Expired(h.cookieName))

	h.activity.Enqueue(ports.ActivityEvent{
		SessionID: sid,
		UserID:    userID,
		Kind:      ports.ActivityLogout,
		Timestamp: time.Now().UTC(),
	})

	return c.JSON(http.StatusOK, messageResponse{Message: "logged out"})
}

func (h *AuthHandler) setSessionCookie(c echo.Context, sessionID string) error {
	token, err := sessioncookie.Mint(h.jwtSecret, sessionID, h.sessionTTL)
	if err != nil {
		return err
	}
	c.SetCookie(sessioncookie.New(h.cookieName, token, h.sessionTTL))
	return nil
}

// loginResult buckets a login failure for metrics.
func loginResult(err error) string {
	var be *backend.Error
	if errors.As(err, &be) && be.Status >= 400 && be.Status < 500 {
		return "rejected"
	}
	return "error"
}
