package handler

type facilityDecisionRequest struct {
	Comments string `json:"comments"`
}
