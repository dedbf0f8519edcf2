package response

import "tour-booking/internal/data/entity"

type TourResponse struct {
	Success bool         `json:"success"`
	Tour    *entity.Tour `json:"tour"`
	Message string       `json:"message,omitempty"`
}

type TourListResponse struct {
	Success bool          `json:"success"`
	Tours   []entity.Tour `json:"tours"`
	Message string        `json:"message,omitempty"`
}

type TourDeletedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
