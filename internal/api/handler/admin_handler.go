package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Sonalgupta2005/game-time-go/internal/api/metrics"
	"github.com/Sonalgupta2005/game-time-go/internal/api/sessioncookie"
	"github.com/Sonalgupta2005/game-time-go/internal/core/domain"
	"github.com/Sonalgupta2005/game-time-go/internal/core/ports"
	"github.com/Sonalgupta2005/game-time-go/internal/core/service"
)

// AdminHandler serves the admin console: the access-key gate, the dedicated
// admin login and the moderation operations.
type AdminHandler struct {
	admin         ports.AdminBackend
	repo          ports.SessionRepository
	auth          ports.AuthBackend
	activity      ports.ActivityDispatcher
	jwtSecret     string
	cookieName    string
	sessionTTL    time.Duration
	accessKeyHash string
	logger        zerolog.Logger
}

func NewAdminHandler(admin ports.AdminBackend, repo ports.SessionRepository, auth ports.AuthBackend, activity ports.ActivityDispatcher, jwtSecret, cookieName string, sessionTTL time.Duration, accessKeyHash string, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		admin:         admin,
		repo:          repo,
		auth:          auth,
		activity:      activity,
		jwtSecret:     jwtSecret,
		cookieName:    cookieName,
		sessionTTL:    sessionTTL,
		accessKeyHash: accessKeyHash,
		logger:        logger,
	}
}

// Access checks the shared admin access key that unlocks the admin login
// screen. The key never travels upstream; it is compared against a local
// bcrypt hash.
//
// @Summary      Unlock the admin login
// @Tags         admin
// @Accept       json
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /admin/access [post]
func (h *AdminHandler) Access(c echo.Context) error {
	var req adminAccessRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// An empty hash disables the gate.
	if h.accessKeyHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(h.accessKeyHash), []byte(req.AccessKey)); err != nil {
			return domain.ErrAccessKeyRejected
		}
	}
	return c.NoContent(http.StatusNoContent)
}

// Login authenticates an administrator and starts an admin session.
//
// @Summary      Admin login
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      adminLoginRequest  true  "Admin credentials"
// @Success      200   {object}  sessionResponse
// @Failure      401   {object}  errorResponse
// @Router       /admin/login [post]
func (h *AdminHandler) Login(c echo.Context) error {
	var req adminLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	identity, err := h.admin.Login(c.Request().Context(), req.AdminID, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}
	if identity.Role != domain.RoleAdmin {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return domain.ErrInvalidCredentials
	}

	store := service.NewSessionService(uuid.NewString(), h.repo, h.auth, h.logger)
	if err := store.Adopt(c.Request().Context(), identity); err != nil {
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	token, err := sessioncookie.Mint(h.jwtSecret, store.ID(), h.sessionTTL)
	if err != nil {
		return err
	}
	c.SetCookie(sessioncookie.New(h.cookieName, token, h.sessionTTL))

	h.activity.Enqueue(ports.ActivityEvent{
		SessionID: store.ID(),
		UserID:    identity.ID,
		Kind:      ports.ActivityLogin,
		Detail:    "admin",
		Timestamp: time.Now().UTC(),
	})

	return c.JSON(http.StatusOK, sessionResponse{User: identity})
}

// Stats returns the dashboard aggregates.
//
// @Summary      Admin dashboard stats
// @Tags         admin
// @Produce      json
// @Success      200  {object}  ports.AdminStats
// @Router       /admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.admin.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// PendingFacilities lists facilities awaiting approval.
//
// @Summary      List pending facilities
// @Tags         admin
// @Produce      json
// @Success      200  {array}  ports.PendingFacility
// @Router       /admin/facilities/pending [get]
func (h *AdminHandler) PendingFacilities(c echo.Context) error {
	pending, err := h.admin.PendingFacilities(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pending)
}

// ApproveFacility approves a pending facility.
//
// @Summary      Approve a facility
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      int                      true   "Facility ID"
// @Param        body  body      facilityDecisionRequest  false  "Optional comments"
// @Success      200   {object}  messageResponse
// @Router       /admin/facilities/{id}/approve [put]
func (h *AdminHandler) ApproveFacility(c echo.Context) error {
	return h.decideFacility(c, "approved", h.admin.ApproveFacility)
}

// RejectFacility rejects a pending facility.
//
// @Summary      Reject a facility
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      int                      true   "Facility ID"
// @Param        body  body      facilityDecisionRequest  false  "Optional comments"
// @Success      200   {object}  messageResponse
// @Router       /admin/facilities/{id}/reject [put]
func (h *AdminHandler) RejectFacility(c echo.Context) error {
	return h.decideFacility(c, "rejected", h.admin.RejectFacility)
}

func (h *AdminHandler) decideFacility(c echo.Context, verdict string, decide func(ctx context.Context, facilityID int64, comments string) error) error {
	facilityID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req facilityDecisionRequest
	// Comments are optional; an empty body is fine.
	_ = c.Bind(&req)

	if err := decide(c.Request().Context(), facilityID, req.Comments); err != nil {
		return err
	}

	sid, userID := principal(c)
	h.activity.Enqueue(ports.ActivityEvent{
		SessionID: sid,
		UserID:    userID,
		Kind:      ports.ActivityFacilityDecision,
		Detail:    fmt.Sprintf("facility=%d verdict=%s", facilityID, verdict),
		Timestamp: time.Now().UTC(),
	})

	return c.JSON(http.StatusOK, messageResponse{Message: "facility " + verdict})
}

// ListUsers returns all accounts.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Success      200  {array}  ports.AdminUser
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.admin.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// BanUser bans an account.
//
// @Summary      Ban a user
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  messageResponse
// @Router       /admin/users/{id}/ban [put]
func (h *AdminHandler) BanUser(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.admin.BanUser(c.Request().Context(), userID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user banned"})
}

// UnbanUser lifts a ban.
//
// @Summary      Unban a user
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  messageResponse
// @Router       /admin/users/{id}/unban [put]
func (h *AdminHandler) UnbanUser(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.admin.UnbanUser(c.Request().Context(), userID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user unbanned"})
}
