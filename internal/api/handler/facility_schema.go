package handler

type facilityDetailsRequest struct {
	Name        string   `json:"name"        validate:"required,min=2,max=100"`
	Description string   `json:"description" validate:"omitempty,max=2000"`
	Location    string   `json:"location"    validate:"required"`
	Amenities   []string `json:"amenities"`
	Sports      []string `json:"sports"      validate:"required,min=1"`
}

type courtRequest struct {
	Name         string  `json:"name"         validate:"required,min=1,max=100"`
	Sport        string  `json:"sport"        validate:"required"`
	PricePerHour float64 `json:"pricePerHour" validate:"required,gt=0"`
}

type photosResponse struct {
	Photos []string `json:"photos"`
}
