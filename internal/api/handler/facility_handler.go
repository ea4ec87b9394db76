package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Sonalgupta2005/game-time-go/internal/core/ports"
)

// FacilityHandler is the owner-dashboard surface. Every route requires the
// facility_owner role; the upstream resolves the facility from the forwarded
// principal.
type FacilityHandler struct {
	facility ports.FacilityBackend
}

func NewFacilityHandler(facility ports.FacilityBackend) *FacilityHandler {
	return &FacilityHandler{facility: facility}
}

// UpdateDetails saves the facility description fields.
//
// @Summary      Update facility details
// @Tags         facility
// @Accept       json
// @Produce      json
// @Param        body  body      facilityDetailsRequest  true  "Facility details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Router       /facility/details [put]
func (h *FacilityHandler) UpdateDetails(c echo.Context) error {
	var req facilityDetailsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.facility.UpdateDetails(c.Request().Context(), ports.FacilityDetailsInput{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Amenities:   req.Amenities,
		Sports:      req.Sports,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "facility updated"})
}

// UploadPhotos attaches photos to the facility.
//
// @Summary      Upload facility photos
// @Tags         facility
// @Accept       multipart/form-data
// @Produce      json
// @Success      200  {object}  photosResponse
// @Failure      400  {object}  errorResponse
// @Router       /facility/photos [post]
func (h *FacilityHandler) UploadPhotos(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid multipart form")
	}
	files := form.File["photos"]
	if len(files) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "at least one photo is required")
	}

	names := make([]string, 0, len(files))
	readers := make([]io.Reader, 0, len(files))
	for _, file := range files {
		src, err := file.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unreadable photo file")
		}
		defer src.Close()
		names = append(names, file.Filename)
		readers = append(readers, src)
	}

	urls, err := h.facility.UploadPhotos(c.Request().Context(), names, readers)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, photosResponse{Photos: urls})
}

// AddCourt creates a court.
//
// @Summary      Add a court
// @Tags         facility
// @Accept       json
// @Produce      json
// @Param        body  body      courtRequest  true  "Court"
// @Success      201   {object}  ports.Court
// @Failure      400   {object}  errorResponse
// @Router       /facility/courts [post]
func (h *FacilityHandler) AddCourt(c echo.Context) error {
	input, err := bindCourt(c)
	if err != nil {
		return err
	}
	court, err := h.facility.AddCourt(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, court)
}

// UpdateCourt updates a court.
//
// @Summary      Update a court
// @Tags         facility
// @Accept       json
// @Produce      json
// @Param        id    path      int           true  "Court ID"
// @Param        body  body      courtRequest  true  "Court"
// @Success      200   {object}  ports.Court
// @Failure      400   {object}  errorResponse
// @Router       /facility/courts/{id} [put]
func (h *FacilityHandler) UpdateCourt(c echo.Context) error {
	courtID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	input, err := bindCourt(c)
	if err != nil {
		return err
	}
	court, err := h.facility.UpdateCourt(c.Request().Context(), courtID, input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, court)
}

// DeleteCourt removes a court.
//
// @Summary      Delete a court
// @Tags         facility
// @Produce      json
// @Param        id   path      int  true  "Court ID"
// @Success      200  {object}  messageResponse
// @Router       /facility/courts/{id} [delete]
func (h *FacilityHandler) DeleteCourt(c echo.Context) error {
	courtID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.facility.DeleteCourt(c.Request().Context(), courtID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "court deleted"})
}

// AcceptBooking confirms a pending booking.
//
// @Summary      Accept a booking
// @Tags         facility
// @Produce      json
// @Param        id   path      int  true  "Booking ID"
// @Success      200  {object}  messageResponse
// @Router       /facility/bookings/{id}/accept [put]
func (h *FacilityHandler) AcceptBooking(c echo.Context) error {
	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.facility.AcceptBooking(c.Request().Context(), bookingID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "booking accepted"})
}

// RejectBooking declines a pending booking.
//
// @Summary      Reject a booking
// @Tags         facility
// @Produce      json
// @Param        id   path      int  true  "Booking ID"
// @Success      200  {object}  messageResponse
// @Router       /facility/bookings/{id}/reject [put]
func (h *FacilityHandler) RejectBooking(c echo.Context) error {
	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.facility.RejectBooking(c.Request().Context(), bookingID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "booking rejected"})
}

func bindCourt(c echo.Context) (ports.CourtInput, error) {
	var req courtRequest
	if err := c.Bind(&req); err != nil {
		return ports.CourtInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.CourtInput{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return ports.CourtInput{
		Name:         req.Name,
		Sport:        req.Sport,
		PricePerHour: req.PricePerHour,
	}, nil
}
