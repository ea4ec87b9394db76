package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Sonalgupta2005/game-time-go/internal/core/ports"
)

// VenueHandler exposes the venue browsing surface.
type VenueHandler struct {
	venues ports.VenueBackend
}

func NewVenueHandler(venues ports.VenueBackend) *VenueHandler {
	return &VenueHandler{venues: venues}
}

// List returns all venues.
//
// @Summary      List venues
// @Tags         venues
// @Produce      json
// @Success      200  {array}   ports.Venue
// @Failure      502  {object}  errorResponse
// @Router       /venues [get]
func (h *VenueHandler) List(c echo.Context) error {
	venues, err := h.venues.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, venues)
}

// Get returns one venue with its courts.
//
// @Summary      Get a venue
// @Tags         venues
// @Produce      json
// @Param        id   path      int  true  "Venue ID"
// @Success      200  {object}  ports.Venue
// @Failure      404  {object}  errorResponse
// @Router       /venues/{id} [get]
func (h *VenueHandler) Get(c echo.Context) error {
	venueID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	venue, err := h.venues.Get(c.Request().Context(), venueID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, venue)
}

// Search filters venues by sport, location and date.
//
// @Summary      Search venues
// @Tags         venues
// @Produce      json
// @Param        sport     query  string  false  "Sport"
// @Param        location  query  string  false  "Location"
// @Param        date      query  string  false  "Date (YYYY-MM-DD)"
// @Success      200  {array}  ports.Venue
// @Router       /venues/search [get]
func (h *VenueHandler) Search(c echo.Context) error {
	q := ports.VenueSearch{
		Sport:    c.QueryParam("sport"),
		Location: c.QueryParam("location"),
		Date:     c.QueryParam("date"),
	}
	venues, err := h.venues.Search(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, venues)
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a positive integer")
	}
	return id, nil
}

// queryID parses a numeric query parameter.
func queryID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.QueryParam(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a positive integer")
	}
	return id, nil
}
