package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Sonalgupta2005/game-time-go/internal/core/ports"
)

// BookingHandler drives the booking form and the user's booking list.
type BookingHandler struct {
	bookings ports.BookingBackend
	activity ports.ActivityDispatcher
}

func NewBookingHandler(bookings ports.BookingBackend, activity ports.ActivityDispatcher) *BookingHandler {
	return &BookingHandler{bookings: bookings, activity: activity}
}

// Create books a court slot.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  ports.Booking
// @Failure      400   {object}  errorResponse
// @Router       /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.bookings.Create(c.Request().Context(), ports.CreateBookingInput{
		VenueID:     req.VenueID,
		CourtID:     req.CourtID,
		Date:        req.Date,
		TimeSlot:    req.TimeSlot,
		Duration:    req.Duration,
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		return err
	}

	sid, userID := principal(c)
	h.activity.Enqueue(ports.ActivityEvent{
		SessionID: sid,
		UserID:    userID,
		Kind:      ports.ActivityBookingCreated,
		Detail:    fmt.Sprintf("venue=%d court=%d date=%s", booking.VenueID, booking.CourtID, booking.Date),
		Timestamp: time.Now().UTC(),
	})

	return c.JSON(http.StatusCreated, booking)
}

// List returns the signed-in user's bookings.
//
// @Summary      List my bookings
// @Tags         bookings
// @Produce      json
// @Success      200  {array}  ports.Booking
// @Router       /bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	bookings, err := h.bookings.ListForUser(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// Cancel cancels a booking.
//
// @Summary      Cancel a booking
// @Tags         bookings
// @Produce      json
// @Param        id   path      int  true  "Booking ID"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Router       /bookings/{id}/cancel [put]
func (h *BookingHandler) Cancel(c echo.Context) error {
	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.bookings.Cancel(c.Request().Context(), bookingID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "booking cancelled"})
}

// AvailableSlots lists free time slots for a court on a date.
//
// @Summary      List available slots
// @Tags         bookings
// @Produce      json
// @Param        venueId  query  int     true  "Venue ID"
// @Param        courtId  query  int     true  "Court ID"
// @Param        date     query  string  true  "Date (YYYY-MM-DD)"
// @Success      200  {object}  availableSlotsResponse
// @Failure      400  {object}  errorResponse
// @Router       /bookings/available-slots [get]
func (h *BookingHandler) AvailableSlots(c echo.Context) error {
	venueID, err := queryID(c, "venueId")
	if err != nil {
		return err
	}
	courtID, err := queryID(c, "courtId")
	if err != nil {
		return err
	}
	date := c.QueryParam("date")
	if date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date is required")
	}

	slots, err := h.bookings.AvailableSlots(c.Request().Context(), venueID, courtID, date)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, availableSlotsResponse{Slots: slots})
}
