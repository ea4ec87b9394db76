package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Sonalgupta2005/game-time-go/internal/core/domain"
	"github.com/Sonalgupta2005/game-time-go/internal/core/ports"
)

// UserHandler serves the signed-in user's profile page.
type UserHandler struct {
	profiles ports.ProfileBackend
}

func NewUserHandler(profiles ports.ProfileBackend) *UserHandler {
	return &UserHandler{profiles: profiles}
}

// Profile returns the caller's profile.
//
// @Summary      Get my profile
// @Tags         user
// @Produce      json
// @Success      200  {object}  ports.Profile
// @Router       /user/profile [get]
func (h *UserHandler) Profile(c echo.Context) error {
	profile, err := h.profiles.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateProfile updates the caller's profile and keeps the session identity
// in sync with the accepted values.
//
// @Summary      Update my profile
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {object}  ports.Profile
// @Failure      400   {object}  errorResponse
// @Router       /user/profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.profiles.Update(c.Request().Context(), ports.UpdateProfileInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		return err
	}

	if store, err := sessionFrom(c); err == nil {
		store.UpdateIdentity(c.Request().Context(), domain.IdentityPatch{
			Name:  &profile.Name,
			Email: &profile.Email,
			Phone: &profile.Phone,
		})
	}

	return c.JSON(http.StatusOK, profile)
}

// UploadAvatar replaces the caller's avatar image.
//
// @Summary      Upload my avatar
// @Tags         user
// @Accept       multipart/form-data
// @Produce      json
// @Success      200  {object}  avatarResponse
// @Failure      400  {object}  errorResponse
// @Router       /user/avatar [post]
func (h *UserHandler) UploadAvatar(c echo.Context) error {
	file, err := c.FormFile("avatar")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "avatar file is required")
	}
	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable avatar file")
	}
	defer src.Close()

	url, err := h.profiles.UploadAvatar(c.Request().Context(), file.Filename, src)
	if err != nil {
		return err
	}

	if store, err := sessionFrom(c); err == nil {
		store.UpdateIdentity(c.Request().Context(), domain.IdentityPatch{Avatar: &url})
	}

	return c.JSON(http.StatusOK, avatarResponse{Avatar: url})
}
