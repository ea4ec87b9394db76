package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Sonalgupta2005/game-time-go/internal/core/ports"
)

// ReviewHandler submits and lists venue reviews.
type ReviewHandler struct {
	reviews ports.ReviewBackend
}

func NewReviewHandler(reviews ports.ReviewBackend) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// Create submits a review for a venue.
//
// @Summary      Create a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        body  body      createReviewRequest  true  "Review"
// @Success      201   {object}  ports.Review
// @Failure      400   {object}  errorResponse
// @Router       /reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	review, err := h.reviews.Create(c.Request().Context(), ports.CreateReviewInput{
		VenueID: req.VenueID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, review)
}

// ByVenue lists the reviews of a venue.
//
// @Summary      List venue reviews
// @Tags         reviews
// @Produce      json
// @Param        id   path     int  true  "Venue ID"
// @Success      200  {array}  ports.Review
// @Router       /reviews/venue/{id} [get]
func (h *ReviewHandler) ByVenue(c echo.Context) error {
	venueID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	reviews, err := h.reviews.ListByVenue(c.Request().Context(), venueID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}
