package handler

type createBookingRequest struct {
	VenueID     int64   `json:"venueId"     validate:"required,gt=0"`
	CourtID     int64   `json:"courtId"     validate:"required,gt=0"`
	Date        string  `json:"date"        validate:"required"`
	TimeSlot    string  `json:"timeSlot"    validate:"required"`
	Duration    int     `json:"duration"    validate:"required,min=1,max=8"`
	TotalAmount float64 `json:"totalAmount" validate:"required,gt=0"`
}

type availableSlotsResponse struct {
	Slots []string `json:"slots"`
}
